package main

import (
	"fmt"
	"os"

	"github.com/cpovirk/turbine/binder"
	"github.com/cpovirk/turbine/config"
	"github.com/cpovirk/turbine/report"
)

// execute loads the build file, runs the front-end and binder, and
// prints a final summary. It returns the process exit code.
func (c *cli) execute() int {
	build, ok := config.Load(c.buildPath)
	if !ok {
		return 1
	}

	logLevel := build.LogLevel
	if c.hasLevel {
		logLevel = c.logLevel
	}
	rp := report.New(logLevel)

	units, ok := Frontend(build.Sources, rp)
	if !ok || !rp.ShouldProceed() {
		return 1
	}

	result, err := binder.Bind(rp, units, build.Bootclasspath, build.Classpath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !result.OK {
		return 1
	}

	fmt.Printf("bound %d classes\n", len(result.Classes))
	return 0
}
