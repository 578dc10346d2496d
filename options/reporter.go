package options

import (
	"github.com/RampantLions/wo-xmldoclet/logger"
)

// Reporter is the diagnostics sink consumed during a build. The host
// tool supplies its own implementation; errors on the fatal path also
// surface through the build's returned error.
type Reporter interface {
	Error(msg string)
	Warning(msg string)
	Notice(msg string)
}

// LogReporter routes diagnostics to a logger.Logger.
type LogReporter struct {
	log logger.Logger
}

// NewLogReporter wraps the given logger; a nil logger gets the package
// default.
func NewLogReporter(l logger.Logger) *LogReporter {
	if l == nil {
		l = logger.NewDefaultLogger("options")
	}
	return &LogReporter{log: l}
}

func (r *LogReporter) Error(msg string) {
	r.log.Error("%s", msg)
}

func (r *LogReporter) Warning(msg string) {
	r.log.Warn("%s", msg)
}

func (r *LogReporter) Notice(msg string) {
	r.log.Info("%s", msg)
}
