package main

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/hammal/riemann"
	"github.com/hammal/riemann/catalog"
	"github.com/hammal/riemann/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	res, err := riemann.Approximate(catalog.Square, 10)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, "x²", res, nil, true))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "f(x) = x², n = 10", lines[0])
	assert.Equal(t, "Actual ≈ 2.667, Approx ≈ 2.280", lines[1])
	// header plus one line per rectangle
	assert.Len(t, lines, 2+1+10)
}

func TestWriteJSON(t *testing.T) {
	res, err := riemann.Approximate(catalog.Square, 2)
	require.NoError(t, err)
	res.Reference = math.NaN()
	exact := 8. / 3.

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, "x²", res, &exact))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "x²", out["function"])
	assert.Nil(t, out["reference"])
	assert.Equal(t, 1., out["approximate"])
	assert.InDelta(t, exact, out["exact"], 1e-15)
	assert.Len(t, out["rectangles"], 2)
}

func TestWriteSweep(t *testing.T) {
	points, err := sweep.Run(catalog.Square, []int{2, 4})
	require.NoError(t, err)
	summary, err := sweep.Summarize(points)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSweep(&buf, points, summary))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "n "))
	assert.Contains(t, out, "mean ")
}
