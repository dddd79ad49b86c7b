package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, cfg Config) string {
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, cfg)
	require.NoError(t, s.Run(context.Background()))
	return out.String()
}

func TestRun_EvaluatesEachLine(t *testing.T) {
	got := run(t, "(2+3)*4-5/2\n2.5 + 3.1\n", Config{})
	assert.Equal(t, "RPN: 2 3 + 4 * 5 2 / -\nResult: 17.5\nRPN: 2.5 3.1 +\nResult: 5.6\n", got)
}

func TestRun_ErrorsDoNotEndSession(t *testing.T) {
	input := strings.Join([]string{
		"(2+3",
		"2 + a",
		"5/0",
		"2+",
		"1 + 1",
	}, "\n")
	got := run(t, input, Config{})
	want := strings.Join([]string{
		"Error: Mismatched parentheses",
		"Error: Invalid character: a",
		"RPN: 5 0 /",
		"Error: Division by zero",
		"RPN: 2 +",
		"Error: Not enough operands for operation +",
		"RPN: 1 1 +",
		"Result: 2",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRun_ExitIsCaseInsensitiveAndStopsReading(t *testing.T) {
	got := run(t, "1+1\n  EXIT  \n2+2\n", Config{})
	assert.Equal(t, "RPN: 1 1 +\nResult: 2\n", got)
}

func TestRun_LineLongerThanScannerDefault_SessionContinues(t *testing.T) {
	long := strings.Repeat("1+", 40000) + "1"
	require.Greater(t, len(long), 64*1024)

	got := run(t, long+"\n2+2\n", Config{})
	assert.True(t, strings.HasPrefix(got, "RPN: 1 1 + 1 + "))
	assert.True(t, strings.HasSuffix(got, "Result: 40001\nRPN: 2 2 +\nResult: 4\n"), got[len(got)-80:])
}

func TestRun_BlankLinesAreIgnored(t *testing.T) {
	got := run(t, "\n   \n\t\n3*3\n", Config{})
	assert.Equal(t, "RPN: 3 3 *\nResult: 9\n", got)
}

func TestRun_Prompt_WritesBannerAndPrompts(t *testing.T) {
	got := run(t, "2^3\nexit\n", Config{Prompt: true})
	want := banner + prompt + "RPN: 2 3 ^\nResult: 8\n" + prompt
	assert.Equal(t, want, got)
}

func TestRun_Color_WrapsLabels(t *testing.T) {
	got := run(t, "1+2\n", Config{Color: true})
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, "Result:")
	assert.Contains(t, got, " 3\n")
}

func TestRun_CancelledContext_ReturnsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := New(strings.NewReader("1+1\n"), &out, Config{}).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestRun_ReadError_IsWrapped(t *testing.T) {
	var out bytes.Buffer
	err := New(failingReader{}, &out, Config{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading expression: disk on fire")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestEval_WriteError_IsReturned(t *testing.T) {
	s := New(strings.NewReader(""), failingWriter{}, Config{})
	done, err := s.Eval("1+1")
	assert.False(t, done)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing RPN: pipe closed")
}

func TestEval_ExitCommand(t *testing.T) {
	s := New(strings.NewReader(""), &bytes.Buffer{}, Config{})
	for _, line := range []string{"exit", "Exit", " eXiT\t"} {
		done, err := s.Eval(line)
		require.NoError(t, err)
		assert.True(t, done, line)
	}
	done, err := s.Eval("exits")
	require.NoError(t, err)
	assert.False(t, done)
}
