package sklog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.skia.org/rpncalc/go/sklog/sklogimpl"
	"go.skia.org/rpncalc/go/sklog/stdlogging"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	msg := fmt.Sprint(args...)
	if format != "" {
		msg = fmt.Sprintf(format, args...)
	}
	r.lines = append(r.lines, severity.String()+" "+msg)
}

func (r *recordingLogger) Flush() {}

func TestLoggingFunctions_UseSeverityAndFormat(t *testing.T) {
	r := &recordingLogger{}
	sklogimpl.SetLogger(r)
	defer sklogimpl.SetLogger(stdlogging.NewNop())

	Debug("end of ", "input")
	Debugf("evaluated %q", "1+1")
	Infof("%d expressions", 3)
	Errorf("failed to close %s", "exprs.txt")
	Flush()

	assert.Equal(t, []string{
		"DEBUG end of input",
		`DEBUG evaluated "1+1"`,
		"INFO 3 expressions",
		"ERROR failed to close exprs.txt",
	}, r.lines)
}
