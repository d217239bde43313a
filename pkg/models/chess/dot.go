package chess

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Point addresses a box, or the anchor of an edge, by row and column.
type Point struct {
	Row int
	Col int
}

func NewPoint(row, col int) Point {
	return Point{Row: row, Col: col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// MarshalJSON writes the point as a [row, col] pair, the way the rules engine sends it.
func (p Point) MarshalJSON() ([]byte, error) {
	return sonic.Marshal([2]int{p.Row, p.Col})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := sonic.Unmarshal(data, &pair); err != nil {
		return err
	}

	p.Row, p.Col = pair[0], pair[1]
	return nil
}
