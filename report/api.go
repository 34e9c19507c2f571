package report

import (
	"fmt"
	"os"
)

// CompileError reports a compilation error attached to a position.
func (rp *Reporter) CompileError(ctx *CompilationContext, pos *TextPosition, kind Kind, msg string, args ...interface{}) {
	rp.handle(&CompileMessage{
		Context:  ctx,
		Position: pos,
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		IsError:  true,
	})
}

// CompileWarning reports a compilation warning attached to a position.
func (rp *Reporter) CompileWarning(ctx *CompilationContext, pos *TextPosition, kind Kind, msg string, args ...interface{}) {
	rp.handle(&CompileMessage{
		Context:  ctx,
		Position: pos,
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		IsError:  false,
	})
}

// Report re-reports a diagnostic built with Raise, attaching the
// compilation context it was missing at construction time.
func (rp *Reporter) Report(ctx *CompilationContext, cm *CompileMessage) {
	cm.Context = ctx
	rp.handle(cm)
}

// ICE reports an internal binder error: a condition that should never
// happen given the binder's own invariants. Always displayed regardless
// of log level, and always fatal.
func ICE(message string, args ...interface{}) {
	displayICE(fmt.Sprintf(message, args...))
	os.Exit(2)
}

// Fatal reports a fatal, non-recoverable configuration error (a missing
// classpath entry, an unreadable archive) and exits. Unlike CompileError,
// fatal errors are not attached to source positions.
func Fatal(message string, args ...interface{}) {
	displayFatal(fmt.Sprintf(message, args...))
	os.Exit(1)
}
