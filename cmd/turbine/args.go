package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpovirk/turbine/report"
)

const version = "0.1.0"

// cli holds the state NewCompilerFromArgs-style parsing accumulates
// before execute runs the binder.
type cli struct {
	buildPath string
	logLevel  int
	hasLevel  bool
}

// argParser walks a flat argv slice, splitting it into flags, options
// (name plus following value), and the one positional argument.
type argParser struct {
	args []string
	ndx  int
}

var options = map[string]struct{}{
	"ll":        {},
	"-loglevel": {},
}

func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx >= len(ap.args) {
		return "", "", false
	}
	arg := ap.args[ap.ndx]
	ap.ndx++

	if !strings.HasPrefix(arg, "-") {
		return "", arg, true
	}

	name := arg[1:]
	if _, ok := options[name]; ok {
		if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
			value := ap.args[ap.ndx]
			ap.ndx++
			return name, value, true
		}
		argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
	}
	return name, "", true
}

func newCLIFromArgs(args []string) *cli {
	c := &cli{}
	ap := &argParser{args: args}

	for {
		name, value, ok := ap.nextArg()
		if !ok {
			break
		}
		c.useArg(name, value)
	}

	if c.buildPath == "" {
		argumentError("a build file or project directory must be specified")
	}
	return c
}

func (c *cli) useArg(name, value string) {
	switch name {
	case "h", "-help":
		os.Stdout.WriteString(usage)
		os.Exit(0)
	case "v", "-version":
		os.Stdout.WriteString(version + "\n")
		os.Exit(0)
	case "ll", "-loglevel":
		level, ok := logLevelByName(value)
		if !ok {
			argumentError("invalid log level %q", value)
		}
		c.logLevel, c.hasLevel = level, true
	case "":
		if c.buildPath != "" {
			argumentError("build path specified multiple times")
		}
		abs, err := filepath.Abs(value)
		if err != nil {
			argumentError("invalid path %q: %s", value, err)
		}
		c.buildPath = abs
	default:
		argumentError("unknown flag: %s", name)
	}
}

func logLevelByName(name string) (int, bool) {
	switch name {
	case "silent":
		return report.LogLevelSilent, true
	case "error":
		return report.LogLevelError, true
	case "warn":
		return report.LogLevelWarn, true
	case "verbose":
		return report.LogLevelVerbose, true
	default:
		return 0, false
	}
}
