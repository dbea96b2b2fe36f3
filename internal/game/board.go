package game

// Position is a grid cell. Pixel coordinates are the cell times Board.Cell.
type Position struct{ X, Y int }

func (p Position) Add(q Position) Position {
	return Position{p.X + q.X, p.Y + q.Y}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{0, -1}
	case Down:
		return Position{0, 1}
	case Left:
		return Position{-1, 0}
	default:
		return Position{1, 0}
	}
}

func (d Direction) Vertical() bool { return d == Up || d == Down }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Board is the playfield every entity is built against. Cell is the sprite
// size in pixels; Cols and Rows count whole cells that fit the surface.
type Board struct {
	Cols, Rows int
	Cell       int
}

func NewBoard(width, height, cell int) Board {
	return Board{Cols: width / cell, Rows: height / cell, Cell: cell}
}

func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.Cols && p.Y < b.Rows
}

// Interior reports whether p is inside the board and off the one-cell edge.
func (b Board) Interior(p Position) bool {
	return p.X >= 1 && p.Y >= 1 && p.X <= b.Cols-2 && p.Y <= b.Rows-2
}

func (b Board) Pixel(p Position) (x, y int) {
	return p.X * b.Cell, p.Y * b.Cell
}
