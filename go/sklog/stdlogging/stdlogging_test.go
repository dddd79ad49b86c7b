package stdlogging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.skia.org/rpncalc/go/sklog/sklogimpl"
)

type syncBuffer struct {
	bytes.Buffer
}

func (b *syncBuffer) Sync() error {
	return nil
}

func TestNew_DebugDisabled_DropsDebugLines(t *testing.T) {
	var buf syncBuffer
	l := New(&buf, false)
	l.Log(0, sklogimpl.Debug, "hidden %d", 1)
	l.Log(0, sklogimpl.Info, "shown %d", 2)
	l.Log(0, sklogimpl.Warning, "", "warned")
	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "warned")
}

func TestNew_DebugEnabled_WritesDebugLines(t *testing.T) {
	var buf syncBuffer
	l := New(&buf, true)
	l.Log(0, sklogimpl.Debug, "", "visible")
	assert.True(t, strings.Contains(buf.String(), "visible"))
}

func TestNewNop_WritesNothing(t *testing.T) {
	l := NewNop()
	l.Log(0, sklogimpl.Error, "nothing %s", "here")
	l.Flush()
}
