// Package ports defines the interfaces (ports) that the application layer
// requires from the infrastructure layer. Application services depend on
// these, never on concrete adapters.
package ports

// Logger defines the logging interface for the application layer.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// NopLogger discards everything. Useful as a default and in tests.
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})    {}
func (NopLogger) Warn(string, ...interface{})    {}
func (NopLogger) Error(string, ...interface{})   {}
func (NopLogger) Debug(string, ...interface{})   {}
func (NopLogger) Success(string, ...interface{}) {}

var _ Logger = NopLogger{}
