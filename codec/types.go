package codec

import "fmt"

// Position is the offset of a matrix corner within its enclosing section,
// in grid cells. X grows along columns, Y along rows.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Section identifies a rectangular tile of the infinite dot plane. The
// representable range per axis is [0, SectionExtent()).
type Section struct {
	X int
	Y int
}

func (s Section) String() string {
	return fmt.Sprintf("(%d,%d)", s.X, s.Y)
}

// Rotation is a pattern orientation in 90° counterclockwise steps.
// Rotation 0 is the canonical encoding orientation.
type Rotation int

const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 1
	Rotation180 Rotation = 2
	Rotation270 Rotation = 3
)

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", int(r)*90)
}
