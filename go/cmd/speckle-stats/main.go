package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/dustin/go-humanize"
	"github.com/scottprahl/gospeckle/go/autocov"
	"github.com/scottprahl/gospeckle/go/field"
	"github.com/scottprahl/gospeckle/go/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] image.(csv|json) ...")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		dir      = flag.String("images-dir", "", "Directory to which image paths are relative.")
		band     = flag.Int("bandwidth", 16, "Autocovariance bandwidth in pixels.")
		window   = flag.Int("window", 7, "Edge length of the square window for local contrast.")
		bins     = flag.Int("bins", 0, "Number of histogram bins to log. Zero disables the histogram.")
		totalOut = flag.String("totals", "", "File to which autocovariance totals are saved (csv or json).")
	)
	flag.Parse()
	if flag.NArg() == 0 || *band < 0 || *window <= 0 {
		flag.Usage()
		os.Exit(1)
	}

	kernel := mat.NewDense(*window, *window, nil)
	kernel.Apply(func(int, int, float64) float64 { return 1 }, kernel)

	total, err := totalStats(flag.Args(), *dir, kernel, *band, *bins)
	if err != nil {
		log.Fatalln("compute stats:", err)
	}
	distr := autocov.Normalize(total, true)
	sx, sy := autocov.SpeckleSize(distr.Covar)
	log.Printf("%d images, %s pixels: mean %.4g, speckle half-width (x %.3g, y %.3g)",
		total.Images, humanize.Comma(total.Count.At(0, 0)), distr.Mean, sx, sy)

	if *totalOut != "" {
		log.Print("save stats totals")
		if err := autocov.SaveTotalExt(*totalOut, total); err != nil {
			log.Fatalln("save stats totals:", err)
		}
	}
}

func totalStats(files []string, dir string, kernel *mat.Dense, band, bins int) (*autocov.Total, error) {
	var total *autocov.Total
	for i, file := range files {
		log.Printf("image %d of %d: %s", i+1, len(files), file)
		curr, err := imageStats(path.Join(dir, file), kernel, band, bins)
		if err != nil {
			return nil, err
		}
		total = autocov.AddTotalToEither(total, curr)
	}
	return total, nil
}

func imageStats(file string, kernel *mat.Dense, band, bins int) (*autocov.Total, error) {
	im, err := field.LoadImageExt(file)
	if err != nil {
		return nil, err
	}
	r, c := im.Dims()
	C, K, err := stats.LocalContrast(im, kernel)
	if err != nil {
		return nil, err
	}
	log.Printf("image: %d x %d, contrast %.4g, mean local contrast %.4g",
		c, r, K, stat.Mean(field.Flatten(C), nil))
	if bins > 0 {
		centers, density, err := stats.PDF(field.Flatten(im), bins)
		if err != nil {
			return nil, err
		}
		for k := range centers {
			log.Printf("  pdf(%.4g) = %.4g", centers[k], density[k])
		}
	}
	return autocov.Stats(im, band), nil
}
