// Package iostreams provides access to standard input/output/error streams.
// It follows the GitHub CLI pattern for testable I/O.
package iostreams

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams wraps the three standard streams with TTY and color detection.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// isInputTTY caches whether stdin is a terminal.
	// -1 = unchecked, 0 = false, 1 = true
	isInputTTY int

	// isOutputTTY caches whether stdout is a terminal.
	isOutputTTY int

	// isStderrTTY caches whether stderr is a terminal.
	isStderrTTY int

	// colorEnabled controls color output.
	// -1 = auto (detect from TTY), 0 = disabled, 1 = enabled
	colorEnabled int

	// Terminal size cache
	termWidthCache int
	termSizeCached bool
}

// NewIOStreams creates an IOStreams connected to standard streams.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		isInputTTY:   -1,
		isOutputTTY:  -1,
		isStderrTTY:  -1,
		colorEnabled: -1, // Auto-detect
	}
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool {
	if s.isInputTTY == -1 {
		if f, ok := s.In.(*os.File); ok {
			s.isInputTTY = boolToInt(term.IsTerminal(int(f.Fd())))
		} else {
			s.isInputTTY = 0
		}
	}
	return s.isInputTTY == 1
}

// IsOutputTTY returns true if stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		if f, ok := s.Out.(*os.File); ok {
			s.isOutputTTY = boolToInt(term.IsTerminal(int(f.Fd())))
		} else {
			s.isOutputTTY = 0
		}
	}
	return s.isOutputTTY == 1
}

// IsStderrTTY returns true if stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool {
	if s.isStderrTTY == -1 {
		if f, ok := s.ErrOut.(*os.File); ok {
			s.isStderrTTY = boolToInt(term.IsTerminal(int(f.Fd())))
		} else {
			s.isStderrTTY = 0
		}
	}
	return s.isStderrTTY == 1
}

// IsInteractive returns true if both stdin and stdout are terminals.
func (s *IOStreams) IsInteractive() bool {
	return s.IsInputTTY() && s.IsOutputTTY()
}

// ColorEnabled returns whether color output is enabled.
// Auto-detect mode follows stdout TTY status and honors NO_COLOR.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return s.IsOutputTTY()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled explicitly enables or disables color output.
func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = boolToInt(enabled)
}

// TerminalWidth returns the width of the terminal in columns.
// Returns 80 as a default if detection fails.
func (s *IOStreams) TerminalWidth() int {
	if s.termSizeCached {
		return s.termWidthCache
	}

	width := 80
	if f, ok := s.Out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	s.termWidthCache = width
	s.termSizeCached = true
	return width
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// TestIOStreams is an IOStreams wired to in-memory buffers for tests.
type TestIOStreams struct {
	*IOStreams
	InBuf  *testBuffer
	OutBuf *testBuffer
	ErrBuf *testBuffer
}

// testBuffer wraps a byte slice for use in tests.
type testBuffer struct {
	data []byte
}

func (b *testBuffer) Read(p []byte) (int, error) {
	if len(b.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *testBuffer) String() string {
	return string(b.data)
}

func (b *testBuffer) Reset() {
	b.data = nil
}

// SetInput sets the input data for the test buffer.
func (b *testBuffer) SetInput(s string) {
	b.data = []byte(s)
}

// NewTestIOStreams creates IOStreams for testing.
func NewTestIOStreams() *TestIOStreams {
	in := &testBuffer{}
	out := &testBuffer{}
	errOut := &testBuffer{}

	return &TestIOStreams{
		IOStreams: &IOStreams{
			In:           in,
			Out:          out,
			ErrOut:       errOut,
			isInputTTY:   0, // Tests are non-interactive by default
			isOutputTTY:  0,
			isStderrTTY:  0,
			colorEnabled: 0, // Colors disabled in tests by default
		},
		InBuf:  in,
		OutBuf: out,
		ErrBuf: errOut,
	}
}

// SetInteractive allows tests to simulate interactive mode.
func (t *TestIOStreams) SetInteractive(interactive bool) {
	v := boolToInt(interactive)
	t.IOStreams.isInputTTY = v
	t.IOStreams.isOutputTTY = v
	t.IOStreams.isStderrTTY = v
}

// SetTerminalWidth allows tests to simulate terminal width.
func (t *TestIOStreams) SetTerminalWidth(width int) {
	t.IOStreams.termWidthCache = width
	t.IOStreams.termSizeCached = true
}
