package container

import "fmt"

const filterNone = 0

// addFilters prefixes every row with the none filter byte.
func addFilters(pixels []byte, stride, rows int) []byte {
	out := make([]byte, 0, rows*(stride+1))
	for y := 0; y < rows; y++ {
		out = append(out, filterNone)
		out = append(out, pixels[y*stride:(y+1)*stride]...)
	}
	return out
}

// stripFilters removes the filter byte from each complete row in raw, up to
// rows rows. A partial trailing row is dropped.
func stripFilters(raw []byte, stride, rows int) ([]byte, error) {
	complete := min(len(raw)/(stride+1), rows)
	out := make([]byte, 0, complete*stride)
	for y := 0; y < complete; y++ {
		line := raw[y*(stride+1) : (y+1)*(stride+1)]
		if line[0] != filterNone {
			return out, fmt.Errorf("%w: type %d on row %d", ErrUnsupportedFilter, line[0], y)
		}
		out = append(out, line[1:]...)
	}
	return out, nil
}
