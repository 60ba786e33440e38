package autocov

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"github.com/scottprahl/gospeckle/go/field"
)

// SaveTotalExt writes a total as CSV or, for any other extension
// that field.SaveExt understands, in that format.
func SaveTotalExt(fname string, total *Total) error {
	switch path.Ext(fname) {
	case ".csv":
		return saveTotalCSV(fname, total)
	default:
		return field.SaveExt(fname, total)
	}
}

func LoadTotalExt(fname string) (*Total, error) {
	switch path.Ext(fname) {
	case ".csv":
		return loadTotalCSV(fname)
	case ".json":
		file, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		var total *Total
		if err := json.NewDecoder(file).Decode(&total); err != nil {
			return nil, err
		}
		return total, nil
	}
	return nil, fmt.Errorf("unknown extension: %s", path.Ext(fname))
}

func saveTotalCSV(fname string, total *Total) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := EncodeTotalCSV(file, total); err != nil {
		return err
	}
	return file.Close()
}

func loadTotalCSV(fname string) (*Total, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	band, err := DecodeTotalBandCSV(file)
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return DecodeTotalCSV(file, band)
}

// EncodeTotalCSV writes one record per quantity:
//	num-images,n
//	mean,sum
//	count,dx,dy,n
//	covar,dx,dy,sum
func EncodeTotalCSV(w io.Writer, total *Total) error {
	band := total.CovarTotal.Band
	recs := [][]string{
		{"num-images", strconv.Itoa(total.Images)},
		{"mean", formatFloat(total.MeanTotal)},
	}
	for dx := -band; dx <= band; dx++ {
		for dy := -band; dy <= band; dy++ {
			recs = append(recs, []string{
				"count", strconv.Itoa(dx), strconv.Itoa(dy),
				strconv.FormatInt(total.Count.At(dx, dy), 10),
			})
		}
	}
	for dx := -band; dx <= band; dx++ {
		for dy := -band; dy <= band; dy++ {
			recs = append(recs, []string{
				"covar", strconv.Itoa(dx), strconv.Itoa(dy),
				formatFloat(total.CovarTotal.At(dx, dy)),
			})
		}
	}
	return csv.NewWriter(w).WriteAll(recs)
}

// DecodeTotalCSV reads a total with the given bandwidth.
func DecodeTotalCSV(r io.Reader, band int) (*Total, error) {
	total := &Total{CovarTotal: NewCovar(band), Count: NewCount(band)}
	err := eachRecord(r, func(kind string, rec []string) error {
		switch kind {
		case "num-images":
			n, err := parseInts(rec, 1)
			if err != nil {
				return err
			}
			total.Images = int(n[0])
		case "mean":
			if err := errIfLenNotEq(1, len(rec)); err != nil {
				return err
			}
			x, err := strconv.ParseFloat(rec[0], 64)
			if err != nil {
				return err
			}
			total.MeanTotal = x
		case "count":
			n, err := parseInts(rec, 3)
			if err != nil {
				return err
			}
			if err := errIfOutsideBand(int(n[0]), int(n[1]), band); err != nil {
				return err
			}
			total.Count.Set(int(n[0]), int(n[1]), n[2])
		case "covar":
			dx, dy, x, err := parseCovarElem(rec)
			if err != nil {
				return err
			}
			if err := errIfOutsideBand(dx, dy, band); err != nil {
				return err
			}
			total.CovarTotal.Set(dx, dy, x)
		default:
			return fmt.Errorf("unknown field: %s", kind)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return total, nil
}

// DecodeTotalBandCSV finds the bandwidth of an encoded total.
func DecodeTotalBandCSV(r io.Reader) (int, error) {
	var band int
	err := eachRecord(r, func(kind string, rec []string) error {
		switch kind {
		case "num-images", "mean":
			return nil
		case "count":
			n, err := parseInts(rec, 3)
			if err != nil {
				return err
			}
			band = max(band, abs(int(n[0])), abs(int(n[1])))
		case "covar":
			dx, dy, _, err := parseCovarElem(rec)
			if err != nil {
				return err
			}
			band = max(band, abs(dx), abs(dy))
		default:
			return fmt.Errorf("unknown field: %s", kind)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return band, nil
}

// Calls f with the first field and the rest of every non-empty record.
func eachRecord(r io.Reader, f func(kind string, rec []string) error) error {
	rr := csv.NewReader(r)
	rr.FieldsPerRecord = -1
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(rec) == 0 {
			continue
		}
		if err := f(rec[0], rec[1:]); err != nil {
			return err
		}
	}
}

func parseCovarElem(s []string) (dx, dy int, x float64, err error) {
	if err = errIfLenNotEq(3, len(s)); err != nil {
		return
	}
	n, err := parseInts(s[:2], 2)
	if err != nil {
		return
	}
	x, err = strconv.ParseFloat(s[2], 64)
	if err != nil {
		return
	}
	return int(n[0]), int(n[1]), x, nil
}

func parseInts(s []string, want int) ([]int64, error) {
	if err := errIfLenNotEq(want, len(s)); err != nil {
		return nil, err
	}
	n := make([]int64, len(s))
	for i := range s {
		var err error
		if n[i], err = strconv.ParseInt(s[i], 10, 64); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func errIfLenNotEq(want, got int) error {
	if want != got {
		return fmt.Errorf("wrong number of elements in line: %d (expect %d)", got, want)
	}
	return nil
}

func errIfOutsideBand(dx, dy, band int) error {
	if abs(dx) > band || abs(dy) > band {
		return fmt.Errorf("displacement outside band %d: (%d, %d)", band, dx, dy)
	}
	return nil
}
