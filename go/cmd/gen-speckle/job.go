package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/scottprahl/gospeckle/go/argerr"
	"github.com/scottprahl/gospeckle/go/field"
	"github.com/scottprahl/gospeckle/go/mask"
	"github.com/scottprahl/gospeckle/go/rng"
	"github.com/scottprahl/gospeckle/go/seq"
	"github.com/scottprahl/gospeckle/go/speckle"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

const (
	KindExponential    = "exponential"
	KindRayleigh       = "rayleigh"
	KindUnmasked       = "unmasked"
	KindExponential3D  = "exponential-3d"
	KindRayleigh3D     = "rayleigh-3d"
	KindSeqExponential = "seq-exponential"
	KindSeqGaussian    = "seq-gaussian"
)

var kinds = []string{
	KindExponential, KindRayleigh, KindUnmasked,
	KindExponential3D, KindRayleigh3D,
	KindSeqExponential, KindSeqGaussian,
}

// Job describes one output to generate.
// For sequences, Size is the number of samples.
type Job struct {
	Kind          string   `yaml:"kind"`
	Size          int      `yaml:"size"`
	PixPerSpeckle float64  `yaml:"pix_per_speckle"`
	Alpha         float64  `yaml:"alpha"`
	Beta          float64  `yaml:"beta"`
	Shape         string   `yaml:"shape"`
	Polarization  *float64 `yaml:"polarization"`
	Mean          float64  `yaml:"mean"`
	Stdev         float64  `yaml:"stdev"`
	CorrLen       float64  `yaml:"corr_len"`
	// Writes only the x-y plane at this z of a 3-D field.
	SliceZ *int `yaml:"slice_z"`
	// Number of independent realizations.
	Count  int    `yaml:"count"`
	Seed   uint64 `yaml:"seed"`
	Output string `yaml:"output"`
}

type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads a list of jobs from a YAML file.
func LoadJobs(fname string) ([]Job, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	var f jobFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	for i := range f.Jobs {
		f.Jobs[i].setDefaults()
		if f.Jobs[i].Output == "" {
			return nil, fmt.Errorf("job %d: no output file", i+1)
		}
	}
	return f.Jobs, nil
}

func (j *Job) setDefaults() {
	if j.Kind == "" {
		j.Kind = KindExponential
	}
	if j.Alpha == 0 {
		j.Alpha = 1
	}
	if j.Beta == 0 {
		j.Beta = 1
	}
	if j.Polarization == nil {
		one := 1.0
		j.Polarization = &one
	}
	if j.Count == 0 {
		j.Count = 1
	}
}

func (j Job) String() string {
	if strings.HasPrefix(j.Kind, "seq-") {
		return fmt.Sprintf("%s: %d samples, mean %g, stdev %g, corr len %g -> %s",
			j.Kind, j.Size, j.Mean, j.Stdev, j.CorrLen, j.Output)
	}
	return fmt.Sprintf("%s: size %d, pix per speckle %g, %s, polarization %g, count %d -> %s",
		j.Kind, j.Size, j.PixPerSpeckle, mask.ParseShape(j.Shape), *j.Polarization, j.Count, j.Output)
}

func (j Job) params() speckle.Params {
	p := speckle.DefaultParams(j.Size, j.PixPerSpeckle)
	p.Alpha, p.Beta = j.Alpha, j.Beta
	p.Shape = mask.ParseShape(j.Shape)
	p.Polarization = *j.Polarization
	return p
}

// Run generates the outputs of the job and writes them to disk.
func (j Job) Run() error {
	outs, err := j.generate(rng.New(j.Seed))
	if err != nil {
		return err
	}
	for i, x := range outs {
		fname := j.outputName(i)
		if err := field.SaveExt(fname, x); err != nil {
			return err
		}
		log.Printf("wrote %s values to %s", humanize.Comma(int64(numValues(x))), fname)
	}
	return nil
}

func (j Job) generate(src *rng.Source) ([]interface{}, error) {
	var outs []interface{}
	add := func(x interface{}, err error) error {
		if err != nil {
			return err
		}
		outs = append(outs, x)
		return nil
	}
	is3D := j.Kind == KindExponential3D || j.Kind == KindRayleigh3D
	if j.SliceZ != nil {
		if !is3D {
			return nil, argerr.New("slice_z needs a 3-D kind, got %q", j.Kind)
		}
		if z := *j.SliceZ; z < 0 || z >= j.Size {
			return nil, argerr.New("slice_z must be in [0, %d), got %d", j.Size, z)
		}
	}
	addVolume := func(v *field.Volume, err error) error {
		if err != nil || j.SliceZ == nil {
			return add(v, err)
		}
		return add(v.Slice(*j.SliceZ), nil)
	}

	// Realizations shares the mask between fields, but only produces
	// fully polarized speckle.
	if *j.Polarization == 1 {
		switch j.Kind {
		case KindExponential:
			ims, err := speckle.Realizations(src, j.params(), j.Count)
			if err != nil {
				return nil, err
			}
			for _, im := range ims {
				outs = append(outs, im)
			}
			return outs, nil
		case KindExponential3D:
			vols, err := speckle.Realizations3D(src, j.params(), j.Count)
			if err != nil {
				return nil, err
			}
			for _, v := range vols {
				if err := addVolume(v, nil); err != nil {
					return nil, err
				}
			}
			return outs, nil
		}
	}

	var gen func() error
	switch j.Kind {
	case KindExponential:
		gen = func() error { return add(speckle.Exponential(src, j.params())) }
	case KindExponential3D:
		gen = func() error { return addVolume(speckle.Exponential3D(src, j.params())) }
	case KindRayleigh:
		gen = func() error { return add(speckle.Rayleigh(src, j.params())) }
	case KindUnmasked:
		gen = func() error { return add(speckle.Unmasked(src, j.Size, j.PixPerSpeckle)) }
	case KindRayleigh3D:
		gen = func() error { return addVolume(speckle.Rayleigh3D(src, j.params())) }
	case KindSeqExponential:
		gen = func() error { return add(seq.Exponential(src, j.Size, j.Mean, j.Stdev, j.CorrLen)) }
	case KindSeqGaussian:
		gen = func() error { return add(seq.Gaussian(src, j.Size, j.Mean, j.Stdev, j.CorrLen)) }
	default:
		return nil, fmt.Errorf("unknown kind %q (want one of %s)", j.Kind, strings.Join(kinds, ", "))
	}
	for i := 0; i < j.Count; i++ {
		if err := gen(); err != nil {
			return nil, err
		}
	}
	return outs, nil
}

// Inserts the index of the realization before the extension
// if there is more than one.
func (j Job) outputName(i int) string {
	if j.Count <= 1 {
		return j.Output
	}
	ext := filepath.Ext(j.Output)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(j.Output, ext), i, ext)
}

func numValues(x interface{}) int {
	switch x := x.(type) {
	case *mat.Dense:
		r, c := x.Dims()
		return r * c
	case *field.Volume:
		return len(x.Elems)
	case []float64:
		return len(x)
	}
	return 0
}
