package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammal/riemann"
	"github.com/hammal/riemann/catalog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command line args against rootCmd and returns what the
// command wrote. Flag values are restored to their defaults first since the
// commands are package level values.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	for _, c := range rootCmd.Commands() {
		resetFlags(c)
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, catalog.Default().Len())
	assert.Equal(t, "1\tx²", lines[0])
	assert.Equal(t, "7\tcos(x)", lines[6])
}

func TestApproxCommand(t *testing.T) {
	out, err := run(t, "approx", "-f", "x²", "-n", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "f(x) = x², n = 10")
	assert.Contains(t, out, "Actual ≈ 2.667, Approx ≈ 2.280")

	out, err = run(t, "approx", "-n", "10", "-r", "--exact")
	require.NoError(t, err)
	assert.Contains(t, out, "Exact ≈ 2.666666667")
	// two summary lines, the exact line, the table header and ten rectangles
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3+1+10)
}

func TestApproxCommandJSON(t *testing.T) {
	out, err := run(t, "approx", "--json", "-f", "eˣ", "-n", "1")
	require.NoError(t, err)

	var res struct {
		Function    string
		N           int
		Approximate float64
		Rectangles  []riemann.Rectangle
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "eˣ", res.Function)
	assert.Equal(t, 1, res.N)
	assert.Equal(t, 2., res.Approximate)
	assert.Equal(t, []riemann.Rectangle{{X: 0, Width: 2, Height: 1}}, res.Rectangles)
}

func TestApproxCommandErrors(t *testing.T) {
	_, err := run(t, "approx", "-f", "tan(x)")
	var notFound *catalog.NotFoundError
	assert.True(t, errors.As(err, &notFound))

	_, err = run(t, "approx", "-n", "0")
	assert.ErrorIs(t, err, riemann.ErrInvalidCount)
}

func TestSweepCommand(t *testing.T) {
	out, err := run(t, "sweep", "--to", "6")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, n = 2..6 and the summary
	require.Len(t, lines, 1+5+1)
	assert.True(t, strings.HasPrefix(lines[1], "2 "))
	assert.True(t, strings.HasPrefix(lines[5], "6 "))
	assert.True(t, strings.HasPrefix(lines[6], "mean "))

	out, err = run(t, "sweep", "-f", "sin(x)", "--from", "10", "--to", "30", "--step", "10")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 1+3+1)

	_, err = run(t, "sweep", "--from", "10", "--to", "5")
	assert.Error(t, err)
}

func TestPlotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sgm.png")
	_, err := run(t, "plot", "-f", "sgm(x)", "-n", "25", "-o", path, "--width", "320", "--height", "240")
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "riemann version")
}
