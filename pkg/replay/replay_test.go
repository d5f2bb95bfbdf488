//nolint:funlen // ok for tests
package replay

import (
	"bytes"
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/handler"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

const gamePort = 20777

type frame struct {
	offset time.Duration
	port   int
	data   []byte
}

func udpFrame(t *testing.T, port int, payload []byte) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 1},
		DstMAC:       net.HardwareAddr{0x02, 0, 0, 0, 0, 2},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IP{192, 168, 1, 10},
		DstIP:    net.IP{192, 168, 1, 20},
	}
	udp := &layers.UDP{SrcPort: 54321, DstPort: layers.UDPPort(port)}
	require.NoError(t, udp.SetNetworkLayerForChecksum(ip))
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, eth, ip, udp, gopacket.Payload(payload)))
	return buf.Bytes()
}

func sampleFrames() []frame {
	return []frame{
		{0, gamePort, basedata.SampleDatagram(enums.Year24, packet.IDSession)},
		{100 * time.Millisecond, gamePort, basedata.SampleDatagram(enums.Year24, packet.IDLapData)},
		{150 * time.Millisecond, 53, []byte("dns")},
		{300 * time.Millisecond, gamePort, basedata.SampleDatagram(enums.Year24, packet.IDEvent)},
	}
}

func writePcap(t *testing.T, frames []frame) []byte {
	t.Helper()
	out := &bytes.Buffer{}
	w := pcapgo.NewWriter(out)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeEthernet))
	start := basedata.TestTime()
	for _, f := range frames {
		b := udpFrame(t, f.port, f.data)
		ci := gopacket.CaptureInfo{Timestamp: start.Add(f.offset), CaptureLength: len(b), Length: len(b)}
		require.NoError(t, w.WritePacket(ci, b))
	}
	return out.Bytes()
}

func writePcapng(t *testing.T, frames []frame) []byte {
	t.Helper()
	out := &bytes.Buffer{}
	w, err := pcapgo.NewNgWriter(out, layers.LinkTypeEthernet)
	require.NoError(t, err)
	start := basedata.TestTime()
	for _, f := range frames {
		b := udpFrame(t, f.port, f.data)
		ci := gopacket.CaptureInfo{Timestamp: start.Add(f.offset), CaptureLength: len(b), Length: len(b), InterfaceIndex: 0}
		require.NoError(t, w.WritePacket(ci, b))
	}
	require.NoError(t, w.Flush())
	return out.Bytes()
}

type recorder struct {
	mu     sync.Mutex
	ids    []packet.ID
	sleeps []time.Duration
}

func (r *recorder) Handle(_ context.Context, p packet.Packet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, p.Header().PacketID)
	return nil
}

func (r *recorder) sleep(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sleeps = append(r.sleeps, d)
	return nil
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name       string
		capture    func(*testing.T, []frame) []byte
		opts       []Option
		wantIDs    []packet.ID
		wantSleeps []time.Duration
	}{
		{
			name:       "pcap all ports",
			capture:    writePcap,
			opts:       []Option{WithSpeed(0)},
			wantIDs:    []packet.ID{packet.IDSession, packet.IDLapData, packet.IDEvent},
			wantSleeps: nil,
		},
		{
			name:       "pcap game port double speed",
			capture:    writePcap,
			opts:       []Option{WithPort(gamePort), WithSpeed(2)},
			wantIDs:    []packet.ID{packet.IDSession, packet.IDLapData, packet.IDEvent},
			wantSleeps: []time.Duration{50 * time.Millisecond, 100 * time.Millisecond},
		},
		{
			name:       "pcapng fast forward",
			capture:    writePcapng,
			opts:       []Option{WithPort(gamePort), WithFastForward(150 * time.Millisecond)},
			wantIDs:    []packet.ID{packet.IDSession, packet.IDLapData, packet.IDEvent},
			wantSleeps: []time.Duration{200 * time.Millisecond},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			d := handler.NewDispatcher(rec)
			r := NewReplay(d, tt.opts...)
			r.sleep = rec.sleep

			res, err := r.ReplayReader(context.Background(), bytes.NewReader(tt.capture(t, sampleFrames())))
			require.NoError(t, err)
			assert.Equal(t, 4, res.Frames)
			assert.Equal(t, tt.wantIDs, rec.ids)
			assert.Equal(t, tt.wantSleeps, rec.sleeps)
		})
	}
}

func TestReplayCountsDecodeErrors(t *testing.T) {
	d := handler.NewDispatcher(&recorder{})
	r := NewReplay(d, WithSpeed(0))
	res, err := r.ReplayReader(context.Background(), bytes.NewReader(writePcap(t, sampleFrames())))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Datagrams)
	assert.Equal(t, map[string]int64{handler.ErrKindLength: 1}, d.Stats().Snapshot().Errors)
}

func TestReplayInvalidCapture(t *testing.T) {
	r := NewReplay(handler.NewDispatcher(&recorder{}))
	_, err := r.ReplayReader(context.Background(), bytes.NewReader([]byte("no capture file")))
	require.Error(t, err)

	_, err = r.ReplayFile(context.Background(), "does-not-exist.pcap")
	require.Error(t, err)
}
