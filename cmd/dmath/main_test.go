package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmath/edgefile"
	"github.com/katalvlaran/dmath/internal/config"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeGraph(t *testing.T, name string, f *edgefile.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, edgefile.Save(path, f))
	return path
}

func triangleFile() *edgefile.File {
	return &edgefile.File{Edges: []edgefile.Record{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
		{From: "D", To: "E", Weight: 1},
	}}
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage: dmath")

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Commands:")

	code, _, stderr = runCLI(t, "bogus")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "bogus"`)
}

func TestPath_SingleTarget(t *testing.T) {
	path := writeGraph(t, "tri.yaml", triangleFile())

	code, stdout, stderr := runCLI(t, "path", "-graph", path, "-from", "A", "-to", "C")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "graph tri.yaml: 5 nodes, 4 edges")
	assert.Contains(t, stdout, "A → C: 3 via A → B → C")
}

func TestPath_AllTargetsAndUnreachable(t *testing.T) {
	path := writeGraph(t, "tri.json.gz", triangleFile())

	code, stdout, stderr := runCLI(t, "path", "-graph", path, "-from", "A,D", "-to", "E")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "A → E: unreachable")
	assert.Contains(t, stdout, "D → E: 1 via D → E")

	code, stdout, stderr = runCLI(t, "path", "-graph", path, "-from", "A")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "A → A: 0 via A\n")
	assert.Contains(t, stdout, "A → B: 1 via A → B\n")
	assert.Contains(t, stdout, "A: reached 3 of 5 nodes")
	assert.NotContains(t, stdout, "A → D")
}

func TestPath_Errors(t *testing.T) {
	path := writeGraph(t, "tri.toml", triangleFile())

	code, _, stderr := runCLI(t, "path", "-graph", path)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "-graph and -from are required")

	code, _, stderr = runCLI(t, "path", "-graph", path, "-from", "Z")
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, stderr, "unknown node")

	code, _, stderr = runCLI(t, "path", "-graph", path, "-from", "A", "-to", "Z")
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, stderr, "unknown node")

	code, _, _ = runCLI(t, "path", "-graph", filepath.Join(t.TempDir(), "none.yaml"), "-from", "A")
	assert.Equal(t, exitRuntime, code)

	code, _, _ = runCLI(t, "path", "-bogus")
	assert.Equal(t, exitUsage, code)
}

func TestPath_NegativeWeightRejected(t *testing.T) {
	path := writeGraph(t, "neg.yaml", &edgefile.File{Edges: []edgefile.Record{{From: "A", To: "B", Weight: -1}}})

	code, _, stderr := runCLI(t, "path", "-graph", path, "-from", "A")
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, stderr, "negative edge weight")
}

func TestNumericCommands(t *testing.T) {
	cases := []struct {
		args []string
		want []string
	}{
		{[]string{"primes", "30"}, []string{"2 3 5 7 11 13 17 19 23 29\n", "10 primes ≤ 30"}},
		{[]string{"factor", "5400"}, []string{"5400 = 2^3 · 3^3 · 5^2"}},
		{[]string{"factor", "1"}, []string{"1 = 1"}},
		{[]string{"phi", "60"}, []string{"φ(60) = 16"}},
		{[]string{"cfr", "-n", "4", "2"}, []string{"√2 = [1; 2] period 1", "c3 = 17/12"}},
		{[]string{"cfr", "7"}, []string{"√7 = [2; 1, 1, 1, 4] period 4"}},
		{[]string{"farey", "3"}, []string{"0/1 1/3 1/2 2/3 1/1", "|F_3| = 5"}},
		{[]string{"sums", "-n", "10", "1", "2", "5", "10"}, []string{"0: 1\n", "10: 11\n"}},
	}
	for _, tc := range cases {
		code, stdout, stderr := runCLI(t, tc.args...)
		require.Equal(t, exitOK, code, "%v: %s", tc.args, stderr)
		for _, w := range tc.want {
			assert.Contains(t, stdout, w, "%v", tc.args)
		}
	}
}

func TestNumericCommands_Errors(t *testing.T) {
	usage := [][]string{
		{"primes"},
		{"primes", "-5"},
		{"factor", "x"},
		{"phi", "1", "2"},
		{"cfr", "-n", "-1", "7"},
		{"sums", "-n", "5", "a"},
	}
	for _, args := range usage {
		code, _, _ := runCLI(t, args...)
		assert.Equal(t, exitUsage, code, "%v", args)
	}

	runtime := [][]string{
		{"factor", "0"},
		{"cfr", "9"},
		{"farey", "0"},
		{"cfr", "-max-iter", "1", "-n", "5", "13"},
		{"primes", "18446744073709551615"},
		{"sums", "-n", "18446744073709551615", "1"},
	}
	for _, args := range runtime {
		code, _, _ := runCLI(t, args...)
		assert.Equal(t, exitRuntime, code, "%v", args)
	}
}

func TestRun_ConfigErrorIsRuntime(t *testing.T) {
	t.Setenv("DMATH_WORKERS", "lots")
	code, _, stderr := runCLI(t, "phi", "5")
	assert.Equal(t, exitRuntime, code)
	assert.Contains(t, stderr, "failed to load config")
}

func TestRun_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dmath.log")
	t.Setenv("DMATH_LOG_FILE", logPath)
	t.Setenv("DMATH_LOG_LEVEL", "debug")

	path := writeGraph(t, "tri.yaml", triangleFile())
	code, _, stderr := runCLI(t, "path", "-graph", path, "-from", "A")
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph loaded")
	assert.Contains(t, string(data), "dijkstra run")
}

func TestNumericCommands_BoundTooLarge(t *testing.T) {
	code, stdout, stderr := runCLI(t, "primes", "18446744073709551615")
	assert.Equal(t, exitRuntime, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "bound too large")
}

func TestRun_DevelopmentLogsDebugWithoutLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "dev.log")
	t.Setenv("DMATH_LOG_DEV", "true")
	t.Setenv("DMATH_LOG_FILE", logPath)

	path := writeGraph(t, "tri.yaml", triangleFile())
	code, _, stderr := runCLI(t, "path", "-graph", path, "-from", "A")
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dijkstra run")
}

func TestLoggerConfig_LevelOverridesPreset(t *testing.T) {
	lc := loggerConfig(config.LogConfig{Development: true, Level: "warn", File: "x.log", MaxSizeMB: 3})
	assert.True(t, lc.Development)
	assert.Equal(t, "warn", lc.Level)
	assert.Equal(t, "x.log", lc.File)
	assert.Equal(t, 3, lc.MaxSizeMB)

	lc = loggerConfig(config.LogConfig{})
	assert.False(t, lc.Development)
	assert.Equal(t, "info", lc.Level)
	assert.Equal(t, []string{"stderr"}, lc.OutputPaths)
}
