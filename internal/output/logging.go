package output

import (
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
	"go.uber.org/zap"
)

// LoggingHandler logs every event at debug level before passing it on.
type LoggingHandler struct {
	next   solution.OutputHandler
	runID  string
	logger *zap.SugaredLogger
}

func NewLoggingHandler(next solution.OutputHandler, runID string, logger *zap.SugaredLogger) *LoggingHandler {
	return &LoggingHandler{next: next, runID: runID, logger: logger}
}

func (l *LoggingHandler) SolutionName(name string) {
	l.logger.Debugf("[RunID: %s] Running solution %q", l.runID, name)
	l.next.SolutionName(name)
}

func (l *LoggingHandler) ParseStart() {
	l.logger.Debugf("[RunID: %s] Parsing input", l.runID)
	l.next.ParseStart()
}

func (l *LoggingHandler) ParseEnd() {
	l.logger.Debugf("[RunID: %s] Input parsed", l.runID)
	l.next.ParseEnd()
}

func (l *LoggingHandler) ParseEndTimed(d time.Duration) {
	l.logger.Debugf("[RunID: %s] Input parsed in %s", l.runID, d)
	l.next.ParseEndTimed(d)
}

func (l *LoggingHandler) PartStart(part solution.Part) {
	l.logger.Debugf("[RunID: %s] Starting %s", l.runID, part)
	l.next.PartStart(part)
}

func (l *LoggingHandler) PartOutput(part solution.Part, output any) {
	l.logger.Debugf("[RunID: %s] %s finished", l.runID, part)
	l.next.PartOutput(part, output)
}

func (l *LoggingHandler) PartOutputTimed(part solution.Part, output any, d time.Duration) {
	l.logger.Debugf("[RunID: %s] %s finished in %s", l.runID, part, d)
	l.next.PartOutputTimed(part, output, d)
}

func (l *LoggingHandler) PartNotImplemented(part solution.Part) {
	l.logger.Infof("[RunID: %s] %s is not implemented", l.runID, part)
	l.next.PartNotImplemented(part)
}
