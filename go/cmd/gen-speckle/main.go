package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] out.(csv|json)")
		fmt.Fprintln(os.Stderr, "   or:", os.Args[0], "-jobs jobs.yaml")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		jobsFile = flag.String("jobs", "", "YAML file listing jobs. Other flags are ignored.")
		kind     = flag.String("kind", KindExponential, "What to generate: "+strings.Join(kinds, ", ")+".")
		size     = flag.Int("size", 256, "Edge length of the output, or number of samples of a sequence.")
		pix      = flag.Float64("pix", 4, "Average number of pixels across a speckle.")
		alpha    = flag.Float64("alpha", 1, "Aperture aspect ratio, y radius over x radius.")
		beta     = flag.Float64("beta", 1, "Aperture aspect ratio, z radius over x radius (3-D only).")
		shape    = flag.String("shape", "ellipse", "Aperture shape: ellipse, rectangle or annulus.")
		pol      = flag.Float64("polarization", 1, "Degree of polarization in [0, 1].")
		mean     = flag.Float64("mean", 0, "Mean of a sequence.")
		stdev    = flag.Float64("stdev", 1, "Standard deviation of a sequence.")
		cl       = flag.Float64("corr-len", 8, "Correlation length of a sequence in samples.")
		sliceZ   = flag.Int("slice-z", -1, "Write only the x-y plane at this z of a 3-D field. Negative writes the volume.")
		count    = flag.Int("count", 1, "Number of independent realizations.")
		seed     = flag.Uint64("seed", 1, "Seed of the random source.")
	)
	flag.Parse()

	var jobs []Job
	if *jobsFile != "" {
		if flag.NArg() != 0 {
			flag.Usage()
			os.Exit(1)
		}
		var err error
		jobs, err = LoadJobs(*jobsFile)
		if err != nil {
			log.Fatalln("load jobs:", err)
		}
	} else {
		if flag.NArg() != 1 {
			flag.Usage()
			os.Exit(1)
		}
		job := Job{
			Kind:          *kind,
			Size:          *size,
			PixPerSpeckle: *pix,
			Alpha:         *alpha,
			Beta:          *beta,
			Shape:         *shape,
			Polarization:  pol,
			Mean:          *mean,
			Stdev:         *stdev,
			CorrLen:       *cl,
			Count:         *count,
			Seed:          *seed,
			Output:        flag.Arg(0),
		}
		if *sliceZ >= 0 {
			job.SliceZ = sliceZ
		}
		job.setDefaults()
		jobs = []Job{job}
	}

	for i, job := range jobs {
		log.Printf("job %d of %d: %s", i+1, len(jobs), job)
		if err := job.Run(); err != nil {
			log.Fatalln("run job:", err)
		}
	}
}
