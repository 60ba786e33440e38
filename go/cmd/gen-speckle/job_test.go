package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/field"
	"github.com/scottprahl/gospeckle/go/rng"
	"github.com/scottprahl/gospeckle/go/speckle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func writeJobs(t *testing.T, dir, text string) string {
	t.Helper()
	fname := filepath.Join(dir, "jobs.yaml")
	if err := os.WriteFile(fname, []byte(text), 0o644); err != nil {
		t.Fatalf("write jobs.yaml: %v", err)
	}
	return fname
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()
	fname := writeJobs(t, dir, `
jobs:
  - size: 32
    pix_per_speckle: 2
    output: a.csv
  - kind: rayleigh-3d
    size: 8
    pix_per_speckle: 2
    alpha: 0.5
    shape: cube
    polarization: 0
    count: 3
    seed: 7
    output: b.json
`)
	jobs, err := LoadJobs(fname)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	a := jobs[0]
	assert.Equal(t, KindExponential, a.Kind)
	assert.Equal(t, 1.0, a.Alpha)
	assert.Equal(t, 1.0, a.Beta)
	assert.Equal(t, 1.0, *a.Polarization)
	assert.Equal(t, 1, a.Count)

	b := jobs[1]
	assert.Equal(t, KindRayleigh3D, b.Kind)
	assert.Equal(t, 0.5, b.Alpha)
	assert.Equal(t, 0.0, *b.Polarization)
	assert.Equal(t, uint64(7), b.Seed)
	assert.Equal(t, "cube", b.params().Shape.Name3())
	assert.Equal(t, "b-2.json", b.outputName(2))
}

func TestLoadJobs_errors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadJobs(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadJobs(writeJobs(t, dir, "jobs: [size: 4"))
	assert.Error(t, err)

	_, err = LoadJobs(writeJobs(t, dir, "jobs:\n  - size: 4\n"))
	assert.Error(t, err)
}

func TestJob_Run(t *testing.T) {
	dir := t.TempDir()
	jobs, err := LoadJobs(writeJobs(t, dir, `
jobs:
  - size: 16
    pix_per_speckle: 2
    count: 2
    output: `+filepath.Join(dir, "im.csv")+`
  - kind: seq-gaussian
    size: 64
    stdev: 1
    corr_len: 4
    output: `+filepath.Join(dir, "seq.csv")+`
  - kind: exponential-3d
    size: 4
    pix_per_speckle: 2
    output: `+filepath.Join(dir, "vol.json")+`
`))
	require.NoError(t, err)
	for _, job := range jobs {
		require.NoError(t, job.Run(), job.String())
	}
	for _, i := range []string{"0", "1"} {
		im, err := field.LoadImageExt(filepath.Join(dir, "im-"+i+".csv"))
		require.NoError(t, err)
		r, c := im.Dims()
		assert.Equal(t, 16, r)
		assert.Equal(t, 16, c)
	}
	for _, name := range []string{"seq.csv", "vol.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestJob_Run_invalid(t *testing.T) {
	job := Job{Kind: KindSeqExponential, Size: 10, Stdev: 1, CorrLen: 5, Output: filepath.Join(t.TempDir(), "x.csv")}
	job.setDefaults()
	err := job.Run()
	assert.True(t, errors.Is(err, argerr.ErrInvalidArgument))

	job.Kind = "bogus"
	assert.Error(t, job.Run())
}

func TestJob_Run_polarization(t *testing.T) {
	dir := t.TempDir()
	half := 0.5
	job := Job{Kind: KindExponential, Size: 16, PixPerSpeckle: 2, Polarization: &half, Seed: 3, Output: filepath.Join(dir, "im.json")}
	job.setDefaults()
	require.NoError(t, job.Run())
	got, err := field.LoadImageExt(job.Output)
	require.NoError(t, err)

	p := speckle.DefaultParams(16, 2)
	p.Polarization = 0.5
	want, err := speckle.Exponential(rng.New(3), p)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(want, got, 1e-12), "want blended field")

	full, err := speckle.Exponential(rng.New(3), speckle.DefaultParams(16, 2))
	require.NoError(t, err)
	assert.False(t, mat.EqualApprox(full, got, 1e-6), "polarization was ignored")

	job.Kind = KindExponential3D
	job.Size = 4
	job.Output = filepath.Join(dir, "vol.json")
	outs, err := job.generate(rng.New(3))
	require.NoError(t, err)
	require.Len(t, outs, 1)
	p3 := speckle.DefaultParams(4, 2)
	p3.Polarization = 0.5
	vol, err := speckle.Exponential3D(rng.New(3), p3)
	require.NoError(t, err)
	assert.Equal(t, vol.Elems, outs[0].(*field.Volume).Elems)
}

func TestJob_Run_sliceZ(t *testing.T) {
	dir := t.TempDir()
	z := 2
	job := Job{Kind: KindRayleigh3D, Size: 4, PixPerSpeckle: 2, SliceZ: &z, Seed: 5, Output: filepath.Join(dir, "plane.json")}
	job.setDefaults()
	require.NoError(t, job.Run())
	got, err := field.LoadImageExt(job.Output)
	require.NoError(t, err)

	vol, err := speckle.Rayleigh3D(rng.New(5), job.params())
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(vol.Slice(2), got, 1e-12))

	for _, bad := range []int{-1, 4} {
		bad := bad
		job.SliceZ = &bad
		assert.True(t, errors.Is(job.Run(), argerr.ErrInvalidArgument), "z %d", bad)
	}
	job.SliceZ = &z
	job.Kind = KindRayleigh
	assert.True(t, errors.Is(job.Run(), argerr.ErrInvalidArgument))
}
