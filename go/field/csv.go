package field

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// SaveExt writes an image (*mat.Dense), a *Volume or a sequence ([]float64)
// to a file, choosing the encoding from the extension (.csv or .json).
func SaveExt(fname string, x interface{}) error {
	file, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	switch path.Ext(fname) {
	case ".csv":
		err = encodeCSV(file, x)
	case ".json":
		err = encodeJSON(file, x)
	default:
		err = fmt.Errorf("unknown extension: %s", path.Ext(fname))
	}
	if err != nil {
		return err
	}
	return file.Close()
}

// LoadImageExt reads an image written by SaveExt.
func LoadImageExt(fname string) (*mat.Dense, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	switch path.Ext(fname) {
	case ".csv":
		return DecodeImageCSV(file)
	case ".json":
		var rows [][]float64
		if err := json.NewDecoder(file).Decode(&rows); err != nil {
			return nil, err
		}
		return fromRows(rows)
	}
	return nil, fmt.Errorf("unknown extension: %s", path.Ext(fname))
}

func encodeCSV(w io.Writer, x interface{}) error {
	switch x := x.(type) {
	case *mat.Dense:
		return EncodeImageCSV(w, x)
	case *Volume:
		return EncodeVolumeCSV(w, x)
	case []float64:
		return EncodeSequenceCSV(w, x)
	}
	return fmt.Errorf("cannot encode type as csv: %T", x)
}

func encodeJSON(w io.Writer, x interface{}) error {
	if m, ok := x.(*mat.Dense); ok {
		x = toRows(m)
	}
	return json.NewEncoder(w).Encode(x)
}

// EncodeImageCSV writes one record per row of the image.
func EncodeImageCSV(w io.Writer, im *mat.Dense) error {
	ww := csv.NewWriter(w)
	for _, row := range toRows(im) {
		if err := ww.Write(formatFloats(row)); err != nil {
			return err
		}
	}
	ww.Flush()
	return ww.Error()
}

// DecodeImageCSV reads an image written by EncodeImageCSV.
// All records must have the same length.
func DecodeImageCSV(r io.Reader) (*mat.Dense, error) {
	rr := csv.NewReader(r)
	var rows [][]float64
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			return fromRows(rows)
		}
		if err != nil {
			return nil, err
		}
		row, err := parseFloats(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows), err)
		}
		rows = append(rows, row)
	}
}

// EncodeVolumeCSV writes a size record followed by
// one record per (x, y) holding the values along z.
func EncodeVolumeCSV(w io.Writer, v *Volume) error {
	ww := csv.NewWriter(w)
	if err := ww.Write(formatSize(v.Size)); err != nil {
		return err
	}
	line := make([]float64, v.Size)
	for x := 0; x < v.Size; x++ {
		for y := 0; y < v.Size; y++ {
			for z := range line {
				line[z] = v.At(x, y, z)
			}
			if err := ww.Write(formatLine(x, y, line)); err != nil {
				return err
			}
		}
	}
	ww.Flush()
	return ww.Error()
}

// EncodeSequenceCSV writes one record (index, value) per element.
func EncodeSequenceCSV(w io.Writer, x []float64) error {
	ww := csv.NewWriter(w)
	for i, xi := range x {
		rec := []string{
			strconv.FormatInt(int64(i), 10),
			strconv.FormatFloat(xi, 'g', -1, 64),
		}
		if err := ww.Write(rec); err != nil {
			return err
		}
	}
	ww.Flush()
	return ww.Error()
}

func toRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(make([]float64, c), i, m)
	}
	return rows
}

func fromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for i, row := range rows {
		if err := errIfLenNotEq(c, len(row)); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), c, data), nil
}

func formatSize(n int) []string {
	return []string{"size", strconv.FormatInt(int64(n), 10)}
}

func formatLine(x, y int, vals []float64) []string {
	rec := []string{
		strconv.FormatInt(int64(x), 10),
		strconv.FormatInt(int64(y), 10),
	}
	return append(rec, formatFloats(vals)...)
}

func formatFloats(x []float64) []string {
	s := make([]string, len(x))
	for i := range x {
		s[i] = strconv.FormatFloat(x[i], 'g', -1, 64)
	}
	return s
}

func parseFloats(s []string) ([]float64, error) {
	x := make([]float64, len(s))
	for i := range s {
		v, err := strconv.ParseFloat(s[i], 64)
		if err != nil {
			return nil, err
		}
		x[i] = v
	}
	return x, nil
}

func errIfLenNotEq(want, got int) error {
	if want != got {
		return fmt.Errorf("wrong number of elements in line: %d (expect %d)", got, want)
	}
	return nil
}
