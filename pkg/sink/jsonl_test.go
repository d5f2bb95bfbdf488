package sink

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ohler55/ojg/oj"
	"gotest.tools/v3/assert"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

func TestJSONL(t *testing.T) {
	buf := &bytes.Buffer{}
	s := NewJSONL(buf)
	for _, id := range []packet.ID{packet.IDSession, packet.IDEvent} {
		p, err := packet.DecodeDatagram(basedata.SampleDatagram(enums.Year25, id))
		assert.NilError(t, err)
		assert.NilError(t, s.Handle(context.Background(), p))
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 2)

	v, err := oj.ParseString(lines[1])
	assert.NilError(t, err)
	m, ok := v.(map[string]any)
	assert.Assert(t, ok)
	assert.Equal(t, m["event-string-code"], "SSTA")
	assert.Equal(t, m["event-name"], "Session Started")
}
