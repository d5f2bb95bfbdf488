package decode

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1tel/pkg/config"
	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

func setDecodeConfig(t *testing.T, format, path string) {
	t.Helper()
	config.Decode.Format = format
	config.Decode.Path = path
	config.Decode.Pretty = false
	t.Cleanup(func() {
		config.Decode.Format = formatHex
		config.Decode.Path = ""
	})
}

func TestDecodeHex(t *testing.T) {
	setDecodeConfig(t, formatHex, "")
	in := strings.Join([]string{
		hex.EncodeToString(basedata.SampleDatagram(enums.Year24, packet.IDEvent)),
		"",
		hex.EncodeToString(basedata.SampleDatagram(enums.Year23, packet.IDCarStatus)),
	}, "\n")
	out := &bytes.Buffer{}
	require.NoError(t, decode(strings.NewReader(in), out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	v, err := oj.ParseString(lines[0])
	require.NoError(t, err)
	assert.Equal(t, "SSTA", v.(map[string]any)["event-string-code"])
}

func TestDecodeHexWithSpaces(t *testing.T) {
	setDecodeConfig(t, formatHex, "$.header['packet-id']")
	s := hex.EncodeToString(basedata.SampleDatagram(enums.Year25, packet.IDLapPositions))
	spaced := &strings.Builder{}
	for i := 0; i < len(s); i += 2 {
		spaced.WriteString(s[i:i+2] + " ")
	}
	out := &bytes.Buffer{}
	require.NoError(t, decode(strings.NewReader(spaced.String()), out))
	assert.Equal(t, "lap-positions\n", out.String())
}

func TestDecodeBin(t *testing.T) {
	setDecodeConfig(t, formatBin, "$.header['frame-identifier']")
	out := &bytes.Buffer{}
	in := bytes.NewReader(basedata.SampleDatagram(enums.Year24, packet.IDTimeTrial))
	require.NoError(t, decode(in, out))
	assert.Equal(t, "4711\n", out.String())
}

func TestDecodeErrors(t *testing.T) {
	t.Run("invalid hex", func(t *testing.T) {
		setDecodeConfig(t, formatHex, "")
		err := decode(strings.NewReader("0g"), &bytes.Buffer{})
		require.ErrorContains(t, err, "line 1")
	})
	t.Run("truncated datagram", func(t *testing.T) {
		setDecodeConfig(t, formatBin, "")
		b := basedata.SampleDatagram(enums.Year24, packet.IDEvent)
		err := decode(bytes.NewReader(b[:len(b)-1]), &bytes.Buffer{})
		require.ErrorIs(t, err, packet.ErrInvalidLength)
	})
	t.Run("unknown format", func(t *testing.T) {
		setDecodeConfig(t, "base64", "")
		err := decode(strings.NewReader(""), &bytes.Buffer{})
		require.ErrorContains(t, err, "unknown format")
	})
}
