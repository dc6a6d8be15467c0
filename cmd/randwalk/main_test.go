package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randwalk/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const smallScenario = `
walks: 2
max_steps: 200000
step: continuous
boundary:
  shape: sphere
  radius: 5
target:
  shape: sphere
  center: [2, 0, 0]
  radius: 1.5
logging:
  level: error
  format: json
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "randwalk.yaml")

	out, err := execute(t, "init", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = execute(t, "init", "-c", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "init", "-c", path, "--force")
	assert.NoError(t, err)
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "-c", writeScenario(t, smallScenario))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Walk characteristics:\n"))
	assert.Contains(t, out, "Boundary: sphere radius=5 centered at (0, 0, 0)")
	assert.Contains(t, out, "Target: sphere radius=1.5 centered at (2, 0, 0)")
	assert.Contains(t, out, "Distance from start to initial target: 2.00")
}

func TestDescribe_Invalid(t *testing.T) {
	path := writeScenario(t, strings.Replace(smallScenario, "[2, 0, 0]", "[9, 0, 0]", 1))
	_, err := execute(t, "describe", "-c", path)
	assert.ErrorContains(t, err, "target is not inside the boundary")
}

func TestRun(t *testing.T) {
	path := writeScenario(t, smallScenario)

	out, err := execute(t, "run", "-c", path, "--walks", "3", "--seed", "11", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Walk characteristics:")
	assert.Contains(t, out, "(seed 11)")
	for _, prefix := range []string{"walk 0: hit=true", "walk 1: hit=true", "walk 2: hit=true"} {
		assert.Contains(t, out, prefix)
	}
	assert.Contains(t, out, "3/3 walks hit the target")
	assert.NotContains(t, out, "path:")

	again, err := execute(t, "run", "-c", path, "--walks", "3", "--seed", "11", "--workers", "1")
	require.NoError(t, err)
	assert.Equal(t, walkLines(out), walkLines(again))
}

func TestRun_Paths(t *testing.T) {
	out, err := execute(t, "run", "-c", writeScenario(t, smallScenario), "--walks", "1", "--paths")
	require.NoError(t, err)
	assert.Contains(t, out, "  path: (0, 0, 0) ")
}

func TestRun_BadFlagValue(t *testing.T) {
	_, err := execute(t, "run", "-c", writeScenario(t, smallScenario), "--walks", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// walkLines drops the run header, whose id differs per run.
func walkLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "walk ") {
			lines = append(lines, l)
		}
	}
	return lines
}
