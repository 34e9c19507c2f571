// Package config loads the TOML build file that tells the binder which
// source files to bind and which archives to search for everything
// they reference.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"github.com/cpovirk/turbine/report"
)

// BuildFileName is the name of the build file the binder looks for in a
// project root.
const BuildFileName = "turbine.toml"

// tomlBuild mirrors the on-disk shape of a build file.
type tomlBuild struct {
	LogLevel      string   `toml:"log-level"`
	Sources       []string `toml:"sources"`
	Classpath     []string `toml:"classpath"`
	Bootclasspath []string `toml:"bootclasspath"`
}

// Build is a fully resolved build configuration: every path made
// absolute against the directory the build file lives in, and the log
// level translated from its TOML name to the report package's
// enumeration.
type Build struct {
	AbsPath       string
	LogLevel      int
	Sources       []string
	Classpath     []string
	Bootclasspath []string
}

// Load reads and validates the build file at abspath, which may name
// either a build file directly or a directory containing one named
// BuildFileName.
func Load(abspath string) (*Build, bool) {
	if fi, err := os.Stat(abspath); err == nil && fi.IsDir() {
		abspath = filepath.Join(abspath, BuildFileName)
	}

	f, err := os.Open(abspath)
	if err != nil {
		report.Fatal("unable to open build file at `%s`: %s", abspath, err.Error())
		return nil, false
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		report.Fatal("error reading build file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	tb := &tomlBuild{}
	if err := toml.Unmarshal(buff, tb); err != nil {
		report.Fatal("error parsing build file at `%s`: %s", abspath, err.Error())
		return nil, false
	}

	dir := filepath.Dir(abspath)
	build := &Build{AbsPath: abspath}

	if len(tb.Sources) == 0 {
		report.Fatal("build file at `%s` declares no sources", abspath)
		return nil, false
	}

	logLevel, ok := logLevelByName(tb.LogLevel)
	if !ok {
		report.Fatal("build file at `%s` names an unknown log level %q", abspath, tb.LogLevel)
		return nil, false
	}
	build.LogLevel = logLevel

	build.Sources = resolveAll(dir, tb.Sources)
	build.Classpath = resolveAll(dir, tb.Classpath)
	build.Bootclasspath = resolveAll(dir, tb.Bootclasspath)

	return build, true
}

func resolveAll(dir string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(dir, p)
		}
	}
	return out
}

func logLevelByName(name string) (int, bool) {
	switch name {
	case "":
		return report.LogLevelVerbose, true
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
