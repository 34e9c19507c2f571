package report

// TextPosition represents a positional range in a source file. Lines and
// columns are zero-indexed; the end position is exclusive.
type TextPosition struct {
	StartLn, StartCol int
	EndLn, EndCol     int
}

// PositionFromRange computes the position spanning two positions.
func PositionFromRange(start, end *TextPosition) *TextPosition {
	return &TextPosition{
		StartLn:  start.StartLn,
		StartCol: start.StartCol,
		EndLn:    end.EndLn,
		EndCol:   end.EndCol,
	}
}

// CompilationContext identifies the source file an error or warning refers
// to, decoupled from the absolute filesystem path so that messages can be
// displayed with a shorter, module-relative name.
type CompilationContext struct {
	// FilePath is the absolute path to the source file.
	FilePath string

	// ReprPath is the path used when displaying messages to the user.
	ReprPath string
}
