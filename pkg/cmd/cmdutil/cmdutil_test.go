package cmdutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/log"
	"github.com/mpapenbr/f1tel/pkg/config"
	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLogLevel("debug", log.InfoLevel))
	assert.Equal(t, log.WarnLevel, ParseLogLevel("unknown", log.WarnLevel))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, ParseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("five", time.Minute))
}

func TestPacketIDs(t *testing.T) {
	ids, err := PacketIDs([]string{"lap-data", "event"})
	require.NoError(t, err)
	assert.Equal(t, []packet.ID{packet.IDLapData, packet.IDEvent}, ids)

	_, err = PacketIDs([]string{"laps"})
	require.ErrorIs(t, err, packet.ErrUnknownPacketID)
}

func TestPipelineWritesJSONL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.jsonl")
	config.OutputFile = out
	config.Packets = []string{"event"}
	config.NatsURL = ""
	t.Cleanup(func() {
		config.OutputFile = ""
		config.Packets = nil
	})

	p, err := NewPipeline(context.Background(), "test")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, p.Dispatcher.Dispatch(ctx, basedata.SampleDatagram(enums.Year24, packet.IDEvent)))
	require.NoError(t, p.Dispatcher.Dispatch(ctx, basedata.SampleDatagram(enums.Year24, packet.IDMotion)))
	p.Close()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"event-string-code":"SSTA"`)
}
