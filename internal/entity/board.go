package entity

// Mark is the symbol occupying a cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"

	// MarkTie is stored as the winner of a drawn game.
	MarkTie Mark = "-"
)

// The human always plays X and minimizes, the computer always plays O and maximizes.
const (
	HumanMark    = MarkX
	ComputerMark = MarkO
)

const BoardSize = 9

// WinLines are the 8 index triples: rows, columns, diagonals.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}

// Board is the 3x3 grid stored row-major: row = index/3, column = index%3.
type Board [BoardSize]Mark

func (that *Board) IsEmpty(cell int) bool {
	return that[cell] == MarkEmpty
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// EmptyCells returns free indices in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == MarkEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

func ValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
