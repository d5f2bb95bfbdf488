//nolint:funlen // ok for tests
package handler_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/handler"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

type recorder struct {
	mu  sync.Mutex
	ids []packet.ID
}

func (r *recorder) Handle(_ context.Context, p packet.Packet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, p.Header().PacketID)
	return nil
}

func (r *recorder) received() []packet.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]packet.ID{}, r.ids...)
}

func TestDispatch(t *testing.T) {
	rec := &recorder{}
	d := handler.NewDispatcher(rec)
	ctx := context.Background()

	require.NoError(t, d.Dispatch(ctx, basedata.SampleDatagram(enums.Year24, packet.IDCarDamage)))
	require.NoError(t, d.Dispatch(ctx, basedata.SampleDatagram(enums.Year25, packet.IDLapPositions)))

	short := basedata.SampleDatagram(enums.Year23, packet.IDMotion)
	require.ErrorIs(t, d.Dispatch(ctx, short[:100]), packet.ErrInvalidLength)
	require.ErrorIs(t, d.Dispatch(ctx, short[:10]), packet.ErrInvalidLength)

	event := append(basedata.SampleHeader(enums.Year23, packet.IDEvent).Bytes(),
		basedata.EventPayload("XXXX")...)
	require.ErrorIs(t, d.Dispatch(ctx, event), packet.ErrUnknownEventCode)

	timeTrial := append(basedata.SampleHeader(enums.Year24, packet.IDTimeTrial).Bytes(), make([]byte, 72)...)
	timeTrial[0], timeTrial[1] = 0xe6, 0x07
	require.ErrorIs(t, d.Dispatch(ctx, timeTrial), packet.ErrUnsupportedFormat)

	assert.Equal(t, []packet.ID{packet.IDCarDamage, packet.IDLapPositions}, rec.received())
	snap := d.Stats().Snapshot()
	assert.Equal(t, map[string]int64{"car-damage": 1, "lap-positions": 1}, snap.Packets)
	assert.Equal(t, map[string]int64{
		handler.ErrKindLength:    2,
		handler.ErrKindEventCode: 1,
		handler.ErrKindFormat:    1,
	}, snap.Errors)
	assert.Equal(t, int64(29+924+29+1102), snap.Bytes)
}

func TestDispatchWithPackets(t *testing.T) {
	rec := &recorder{}
	d := handler.NewDispatcher(rec, handler.WithPackets(packet.IDEvent, packet.IDSession))
	ctx := context.Background()
	for _, id := range packet.IDs(enums.Year25) {
		require.NoError(t, d.Dispatch(ctx, basedata.SampleDatagram(enums.Year25, id)))
	}
	assert.Equal(t, []packet.ID{packet.IDSession, packet.IDEvent}, rec.received())
	assert.Equal(t, int64(14), d.Stats().Snapshot().Skipped)
}

func TestDispatchHandlerError(t *testing.T) {
	errTest := errors.New("test")
	d := handler.NewDispatcher(handler.Func(func(context.Context, packet.Packet) error {
		return errTest
	}))
	err := d.Dispatch(context.Background(), basedata.SampleDatagram(enums.Year24, packet.IDMotion))
	require.ErrorIs(t, err, errTest)
	assert.Equal(t, map[string]int64{handler.ErrKindHandler: 1}, d.Stats().Snapshot().Errors)
}

func TestFanout(t *testing.T) {
	ctx := context.Background()
	rec1, rec2 := &recorder{}, &recorder{}
	f := handler.NewFanout(ctx, "test", []handler.Handler{rec1, rec2})

	d := handler.NewDispatcher(f)
	ids := []packet.ID{packet.IDSession, packet.IDLapData, packet.IDEvent}
	for _, id := range ids {
		require.NoError(t, d.Dispatch(ctx, basedata.SampleDatagram(enums.Year23, id)))
	}
	f.Close()

	assert.Equal(t, ids, rec1.received())
	assert.Equal(t, ids, rec2.received())
	assert.Equal(t, int64(3), f.Stats().Received)
}

func TestFanoutHandleCanceled(t *testing.T) {
	f := handler.NewFanout(context.Background(), "test", nil)
	f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := packet.DecodeDatagram(basedata.SampleDatagram(enums.Year23, packet.IDMotion))
	require.NoError(t, err)
	require.ErrorIs(t, f.Handle(ctx, p), context.Canceled)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, handler.ErrKindLength,
		handler.ErrorKind(&packet.LengthError{Packet: "motion", Want: 1, Got: 2}))
	assert.Equal(t, handler.ErrKindUnclassified, handler.ErrorKind(errors.New("other")))
}
