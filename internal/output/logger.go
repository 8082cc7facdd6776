package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes colored CLI feedback. Progress and results go to out,
// warnings, errors and debug lines to errOut. JSON mode silences both so a
// structured document can own stdout.
type Logger struct {
	out      io.Writer
	errOut   io.Writer
	verbose  bool
	jsonMode bool
}

var (
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	debugColor   = color.New(color.FgHiBlack)
	stepColor    = color.New(color.FgCyan)
	bannerColor  = color.New(color.Bold)
	labelColor   = color.New(color.Faint)
)

// NewLogger creates a Logger on stdout and stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a Logger with explicit writers.
func NewLoggerTo(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut}
}

// SetNoColor toggles color globally; fatih/color has no per-writer switch.
func (l *Logger) SetNoColor(noColor bool) {
	color.NoColor = noColor
}

func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

func (l *Logger) SetJSONMode(jsonMode bool) {
	l.jsonMode = jsonMode
}

func (l *Logger) IsJSONMode() bool {
	return l.jsonMode
}

func (l *Logger) emit(w io.Writer, c *color.Color, prefix, format string, args []interface{}) {
	if l.jsonMode {
		return
	}
	line := prefix + fmt.Sprintf(format, args...) + "\n"
	if c == nil {
		fmt.Fprint(w, line)
		return
	}
	c.Fprint(w, line)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(l.out, nil, "", format, args)
}

// Warn prints "Warning: ..." in yellow.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(l.errOut, warnColor, "Warning: ", format, args)
}

// Error prints "Error: ..." in red.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(l.errOut, errorColor, "Error: ", format, args)
}

// Success prints a green check line.
func (l *Logger) Success(format string, args ...interface{}) {
	l.emit(l.out, successColor, "✓ ", format, args)
}

// Debug prints only with --verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.emit(l.errOut, debugColor, "[DEBUG] ", format, args)
}

// Step prints a cyan "→ ..." progress line, used when no spinner can run.
func (l *Logger) Step(format string, args ...interface{}) {
	l.emit(l.out, stepColor, "→ ", format, args)
}

// Banner prints a bold line.
func (l *Logger) Banner(format string, args ...interface{}) {
	l.emit(l.out, bannerColor, "", format, args)
}

// Field prints an aligned "label: value" line with a faint label.
func (l *Logger) Field(label, value string) {
	l.emit(l.out, nil, "", "  %s %s", []interface{}{labelColor.Sprintf("%-16s", label+":"), value})
}

// DefaultLogger is the command layer's logger. Services receive one instead.
var DefaultLogger = NewLogger()

// Info prints on DefaultLogger.
func Info(format string, args ...interface{}) {
	DefaultLogger.Info(format, args...)
}

// Warn prints on DefaultLogger.
func Warn(format string, args ...interface{}) {
	DefaultLogger.Warn(format, args...)
}
