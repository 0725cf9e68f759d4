package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GridEyes-2010/transfinite"
	"github.com/GridEyes-2010/transfinite/fileio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestSampleLoopCloses(t *testing.T) {
	loop, err := sampleLoop(5)
	require.NoError(t, err)
	require.Len(t, loop, 5)

	for i, curve := range loop {
		next := loop[(i+1)%len(loop)]
		end, start := curve.Point(1), next.Point(0)
		assert.InDelta(t, 0, vec3.Distance(&end, &start), 1e-12, "curve %d", i)
		assert.False(t, curve.IsRational())

		top := curve.Point(0.5)
		assert.Greater(t, top[2], 0.1, "curve %d arches upward", i)
	}
}

func TestRunSideBased(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "loop.lop")

	loop, err := sampleLoop(4)
	require.NoError(t, err)
	require.NoError(t, fileio.SaveLOP(input, loop))

	for _, param := range []string{"bilinear", "Orthogonal"} {
		output := filepath.Join(dir, param+".obj")
		require.NoError(t, runSideBased(input, output, 6, param))

		mesh, err := fileio.LoadOBJ(output)
		require.NoError(t, err)
		assert.Len(t, mesh.Points, 1+4*6*7/2)
		assert.Len(t, mesh.Faces, 4*6*6)
	}

	assert.Error(t, runSideBased(input, filepath.Join(dir, "x.obj"), 6, "coons"))
	assert.Error(t, runSideBased(filepath.Join(dir, "missing.lop"), filepath.Join(dir, "x.obj"), 6, ""))
}

func TestRunBezier(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "dome.gbp")

	dome, err := sampleDome(6, 4)
	require.NoError(t, err)
	center, err := dome.Eval(dome.Domain().Center())
	require.NoError(t, err)
	assert.InDelta(t, 1, center[2], 1e-12)

	require.NoError(t, fileio.SaveBezier(input, dome))

	resave := filepath.Join(dir, "again.gbp")
	require.NoError(t, runBezier(input, filepath.Join(dir, "dome.obj"), resave, 5))

	original, err := os.ReadFile(input)
	require.NoError(t, err)
	again, err := os.ReadFile(resave)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(again))

	mesh, err := fileio.LoadOBJ(filepath.Join(dir, "dome.obj"))
	require.NoError(t, err)
	assert.Len(t, mesh.Faces, 6*5*5)

	require.NoError(t, runNet(input, filepath.Join(dir, "net.obj")))
	net, err := fileio.LoadOBJ(filepath.Join(dir, "net.obj"))
	require.NoError(t, err)
	assert.Len(t, net.Points, transfinite.ControlPointCount(6, 4))
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "a/b.obj", outputName(bezierCmd, "a/b.gbp", ".obj"))
	assert.Equal(t, "a.b/c-net.obj", outputName(netCmd, "a.b/c", "-net.obj"))
}
