package chess

import (
	"fmt"

	"github.com/bytedance/sonic"
)

type Orientation byte

const (
	Horizontal Orientation = 'H'
	Vertical   Orientation = 'V'
)

func (o Orientation) String() string {
	return string(rune(o))
}

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// Move is one board edge: a horizontal edge (r, c) runs from dot (r, c) to
// dot (r, c+1), a vertical edge (r, c) from dot (r, c) to dot (r+1, c).
type Move struct {
	Row         int
	Col         int
	Orientation Orientation
}

func NewMove(row, col int, orientation Orientation) Move {
	return Move{Row: row, Col: col, Orientation: orientation}
}

func H(row, col int) Move { return NewMove(row, col, Horizontal) }

func V(row, col int) Move { return NewMove(row, col, Vertical) }

func (m Move) Point() Point {
	return Point{Row: m.Row, Col: m.Col}
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d, %s)", m.Row, m.Col, m.Orientation)
}

// InRange reports whether the edge exists on a width x height board.
func (m Move) InRange(width, height int) bool {
	switch m.Orientation {
	case Horizontal:
		return 0 <= m.Row && m.Row <= height && 0 <= m.Col && m.Col < width
	case Vertical:
		return 0 <= m.Row && m.Row < height && 0 <= m.Col && m.Col <= width
	}
	return false
}

// NearBoxes returns the one or two boxes the edge borders.
func (m Move) NearBoxes(width, height int) (nearBoxes []Point) {
	switch m.Orientation {
	case Horizontal:
		if m.Row > 0 {
			nearBoxes = append(nearBoxes, NewPoint(m.Row-1, m.Col))
		}
		if m.Row < height {
			nearBoxes = append(nearBoxes, NewPoint(m.Row, m.Col))
		}
	case Vertical:
		if m.Col > 0 {
			nearBoxes = append(nearBoxes, NewPoint(m.Row, m.Col-1))
		}
		if m.Col < width {
			nearBoxes = append(nearBoxes, NewPoint(m.Row, m.Col))
		}
	}
	return
}

// MarshalJSON writes the move as a [row, col, "H"|"V"] triple.
func (m Move) MarshalJSON() ([]byte, error) {
	return sonic.Marshal([]any{m.Row, m.Col, m.Orientation.String()})
}

func (m *Move) UnmarshalJSON(data []byte) error {
	var triple []any
	if err := sonic.Unmarshal(data, &triple); err != nil {
		return err
	}

	if len(triple) != 3 {
		return fmt.Errorf("%w: move %s is not a [row, col, orientation] triple", ErrInvalidSnapshot, data)
	}

	row, ok1 := triple[0].(float64)
	col, ok2 := triple[1].(float64)
	o, ok3 := triple[2].(string)
	if !ok1 || !ok2 || !ok3 || len(o) != 1 || !Orientation(o[0]).Valid() {
		return fmt.Errorf("%w: malformed move %s", ErrInvalidSnapshot, data)
	}

	*m = NewMove(int(row), int(col), Orientation(o[0]))
	return nil
}
