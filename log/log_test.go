package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestWithFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l, err := New(buf, DebugLevel).WithFilter("info:keep")
	assert.NilError(t, err)

	l.Named("keep").Info("kept message")
	l.Named("drop").Info("dropped message")
	l.Named("keep").Debug("debug message")

	assert.Check(t, is.Contains(buf.String(), "kept message"))
	assert.Check(t, !bytes.Contains(buf.Bytes(), []byte("dropped message")))
	assert.Check(t, !bytes.Contains(buf.Bytes(), []byte("debug message")))
}

func TestFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.log")
	cfg := "level: warn\nencoding: json\noutputPaths:\n  - " + out + "\n"
	cfgFile := filepath.Join(dir, "log.yml")
	assert.NilError(t, os.WriteFile(cfgFile, []byte(cfg), 0o600))

	l, err := FromConfigFile(cfgFile)
	assert.NilError(t, err)
	assert.Equal(t, l.Level(), WarnLevel)
	l.Info("not written")
	l.Warn("written", String("packet", "lap-data"))
	assert.NilError(t, l.Sync())

	data, err := os.ReadFile(out)
	assert.NilError(t, err)
	assert.Check(t, is.Contains(string(data), `"packet":"lap-data"`))
	assert.Check(t, !bytes.Contains(data, []byte("not written")))
}

func TestFromConfigFileMissing(t *testing.T) {
	_, err := FromConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Check(t, os.IsNotExist(err))
}
