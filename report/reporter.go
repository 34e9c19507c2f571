package report

import "sync"

// Enumeration of the possible log levels, lowest verbosity first.
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarn           // errors and warnings
	LogLevelVerbose        // errors, warnings, and progress banners (default)
)

// reporter accumulates diagnostics for a single binding invocation and
// gates display on the configured log level. Every binder invocation owns
// its own reporter; there is no binder-wide global state.
type reporter struct {
	m *sync.Mutex

	logLevel int

	errorCount int
	warnings   []*CompileMessage
}

// Reporter is the handle returned to callers of New; it wraps the internal
// reporter so the zero value is never used directly.
type Reporter struct {
	r *reporter
}

// New creates a reporter at the given log level.
func New(logLevel int) *Reporter {
	return &Reporter{r: &reporter{m: &sync.Mutex{}, logLevel: logLevel}}
}

// ShouldProceed reports whether any errors have been recorded so far. Passes
// check this between stages to stop the pipeline after an unrecoverable
// failure.
func (rp *Reporter) ShouldProceed() bool {
	rp.r.m.Lock()
	defer rp.r.m.Unlock()
	return rp.r.errorCount == 0
}

// ErrorCount returns the number of errors recorded so far.
func (rp *Reporter) ErrorCount() int {
	rp.r.m.Lock()
	defer rp.r.m.Unlock()
	return rp.r.errorCount
}

func (rp *Reporter) handle(cm *CompileMessage) {
	rp.r.m.Lock()
	defer rp.r.m.Unlock()

	if cm.isError() {
		rp.r.errorCount++
		if rp.r.logLevel > LogLevelSilent {
			cm.display()
		}
	} else {
		rp.r.warnings = append(rp.r.warnings, cm)
		if rp.r.logLevel >= LogLevelWarn {
			cm.display()
		}
	}
}
