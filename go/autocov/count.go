package autocov

// Count holds the number of pixel pairs observed at each displacement.
type Count struct {
	Band  int
	Elems [][]int64
}

func NewCount(band int) *Count {
	n := 2*band + 1
	elems := make([][]int64, n)
	for i := range elems {
		elems[i] = make([]int64, n)
	}
	return &Count{band, elems}
}

func (cnt *Count) At(dx, dy int) int64 {
	return cnt.Elems[cnt.Band+dx][cnt.Band+dy]
}

func (cnt *Count) Set(dx, dy int, n int64) {
	cnt.Elems[cnt.Band+dx][cnt.Band+dy] = n
}

// Adds two counts, adopting the larger bandwidth.
// Does not modify either input.
func AddCount(lhs, rhs *Count) *Count {
	if lhs.Band < rhs.Band {
		lhs, rhs = rhs, lhs
	}
	dst := NewCount(lhs.Band)
	for i := -lhs.Band; i <= lhs.Band; i++ {
		for j := -lhs.Band; j <= lhs.Band; j++ {
			n := lhs.At(i, j)
			if abs(i) <= rhs.Band && abs(j) <= rhs.Band {
				n += rhs.At(i, j)
			}
			dst.Set(i, j, n)
		}
	}
	return dst
}

func abs(x int) int {
	return max(x, -x)
}
