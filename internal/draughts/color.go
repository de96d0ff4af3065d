package draughts

import "fmt"

// Color identifies a side. NoColor marks an empty square.
type Color int

const (
	NoColor Color = iota
	White
	Black
)

// initialRows is the number of rows each side fills at setup.
const initialRows = (Dimension - 2) / 2

func (that Color) Opposite() Color {
	switch that {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColor
	}
}

func (that Color) String() string {
	switch that {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return ""
	}
}

// ParseColor - inverse of Color.String for the two playing colors.
func ParseColor(value string) (Color, error) {
	switch value {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, value)
	}
}

// InitialColor - color of the piece standing on coordinate in the starting position.
func InitialColor(coordinate Coordinate) Color {
	if !coordinate.IsDark() {
		return NoColor
	}

	switch {
	case coordinate.Row() < initialRows:
		return Black
	case coordinate.Row() >= Dimension-initialRows:
		return White
	default:
		return NoColor
	}
}

// Turn tracks whose move it is.
type Turn struct {
	color Color
}

func NewTurn() *Turn {
	return &Turn{color: White}
}

func (that *Turn) Color() Color {
	return that.color
}

func (that *Turn) Opposite() Color {
	return that.color.Opposite()
}

func (that *Turn) Change() {
	that.color = that.color.Opposite()
}

func (that *Turn) String() string {
	return that.color.String()
}
