package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpovirk/turbine/report"
)

func writeBuildFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, BuildFileName)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ResolvesRelativePathsAgainstBuildFileDir(t *testing.T) {
	dir := t.TempDir()
	writeBuildFile(t, dir, `
sources = ["src/A.java", "src/B.java"]
classpath = ["lib/dep.jar"]
log-level = "warn"
`)

	build, ok := Load(dir)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "src/A.java"), build.Sources[0])
	assert.Equal(t, filepath.Join(dir, "src/B.java"), build.Sources[1])
	assert.Equal(t, filepath.Join(dir, "lib/dep.jar"), build.Classpath[0])
	assert.Equal(t, report.LogLevelWarn, build.LogLevel)
	assert.Nil(t, build.Bootclasspath)
}

func TestLoad_AcceptsDirectFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeBuildFile(t, dir, `sources = ["A.java"]`)

	build, ok := Load(path)
	assert.True(t, ok)
	assert.Equal(t, path, build.AbsPath)
}

func TestLoad_AbsoluteSourcePathIsKeptAsIs(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "A.java")
	writeBuildFile(t, dir, `sources = ["`+filepath.ToSlash(abs)+`"]`)

	build, ok := Load(dir)
	assert.True(t, ok)
	assert.Equal(t, abs, build.Sources[0])
}

func TestLoad_DefaultLogLevelIsVerbose(t *testing.T) {
	dir := t.TempDir()
	writeBuildFile(t, dir, `sources = ["A.java"]`)

	build, ok := Load(dir)
	assert.True(t, ok)
	assert.Equal(t, report.LogLevelVerbose, build.LogLevel)
}

func TestResolveAll_EmptyIsNil(t *testing.T) {
	assert.Nil(t, resolveAll("/x", nil))
}

func TestLogLevelByName_KnownAndUnknown(t *testing.T) {
	cases := map[string]int{
		"":        report.LogLevelVerbose,
		"silent":  report.LogLevelSilent,
		"error":   report.LogLevelError,
		"warn":    report.LogLevelWarn,
		"verbose": report.LogLevelVerbose,
	}
	for name, want := range cases {
		got, ok := logLevelByName(name)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := logLevelByName("bogus")
	assert.False(t, ok)
}
