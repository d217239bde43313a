package chess

// Side indexes the four edges of a box in rotation order.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// BoxEdges returns the edges of box b indexed by Side.
func BoxEdges(b Point) [4]Move {
	return [...]Move{
		Left:   V(b.Row, b.Col),
		Right:  V(b.Row, b.Col+1),
		Top:    H(b.Row, b.Col),
		Bottom: H(b.Row+1, b.Col),
	}
}

// Boxes lists every box of a width x height board in row-major order.
func Boxes(width, height int) (boxes []Point) {
	for r := range height {
		for c := range width {
			boxes = append(boxes, NewPoint(r, c))
		}
	}
	return
}

// Edges lists every edge of a width x height board: horizontals first, then
// verticals, each in row-major order.
func Edges(width, height int) (edges []Move) {
	for r := range height + 1 {
		for c := range width {
			edges = append(edges, H(r, c))
		}
	}
	for r := range height {
		for c := range width + 1 {
			edges = append(edges, V(r, c))
		}
	}
	return
}
