package main

import (
	"github.com/cpovirk/turbine/report"
	"github.com/cpovirk/turbine/tree"
)

// Frontend turns a build's source file paths into the parsed
// compilation units the binder consumes. This module deliberately never
// implements a tokenizer or parser — that's provided by whatever
// embeds the binder. A caller that links this binary with a real
// front-end overwrites Frontend during package initialization (an
// init func in another file of this package, or a build-tag variant);
// the default reports why binding can't proceed and stops.
var Frontend = func(paths []string, rp *report.Reporter) ([]*tree.CompUnit, bool) {
	report.Fatal("no front-end parser is linked into this binary; Frontend must be set before sources can be bound")
	return nil, false
}
