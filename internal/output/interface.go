package output

import "github.com/altuslabsxyz/token-launcher/internal/application/ports"

// LoggerInterface is the logger surface of the command layer and the console
// presenter. Application services only need ports.Logger.
type LoggerInterface interface {
	ports.Logger

	Step(format string, args ...interface{})
	Banner(format string, args ...interface{})
	Field(label, value string)

	SetVerbose(verbose bool)
	SetNoColor(noColor bool)
	SetJSONMode(jsonMode bool)
	IsJSONMode() bool
}

var _ LoggerInterface = (*Logger)(nil)
