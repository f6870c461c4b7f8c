package engine

// Board is a rectangular grid of tile values. Zero marks an empty cell; all
// other values are positive tile magnitudes. Dimensions are fixed for the
// lifetime of a session.
type Board [][]int

// NewBoard creates an empty rows×cols board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]int, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// InBounds reports whether (row, col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < b.Cols()
}

// At returns the value at (row, col), or false if out of bounds.
func (b Board) At(row, col int) (int, bool) {
	if !b.InBounds(row, col) {
		return 0, false
	}
	return b[row][col], true
}

// Set writes a value at (row, col). It reports false for out-of-bounds
// coordinates without modifying the board.
func (b Board) Set(row, col, value int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	b[row][col] = value
	return true
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for r := range b {
		c[r] = make([]int, len(b[r]))
		copy(c[r], b[r])
	}
	return c
}

// Equal reports whether two boards have identical dimensions and cells.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for r := range b {
		if len(b[r]) != len(other[r]) {
			return false
		}
		for c := range b[r] {
			if b[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (b Board) EmptyCells() []Position {
	var cells []Position
	for r := range b {
		for c := range b[r] {
			if b[r][c] == 0 {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return cells
}

// OccupiedCount returns the number of non-empty cells.
func (b Board) OccupiedCount() int {
	count := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] != 0 {
				count++
			}
		}
	}
	return count
}

// MaxTile returns the largest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values. Slides and merges preserve it.
func (b Board) Sum() int {
	total := 0
	for r := range b {
		for c := range b[r] {
			total += b[r][c]
		}
	}
	return total
}

// HasEmptyCell reports whether at least one cell is empty.
func (b Board) HasEmptyCell() bool {
	for r := range b {
		for c := range b[r] {
			if b[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasMergeablePair reports whether any two adjacent cells hold equal tiles.
func (b Board) HasMergeablePair() bool {
	rows, cols := b.Rows(), b.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if c < cols-1 && b[r][c+1] == v {
				return true
			}
			if r < rows-1 && b[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any of the four directions would change the board.
// A board with an empty cell can always compact; a packed board needs an
// adjacent equal pair.
func (b Board) CanMove() bool {
	return b.HasEmptyCell() || b.HasMergeablePair()
}

// MergeablePairs counts adjacent equal pairs, scanning right and down so each
// pair is counted once.
func (b Board) MergeablePairs() int {
	rows, cols := b.Rows(), b.Cols()
	count := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if c < cols-1 && b[r][c+1] == v {
				count++
			}
			if r < rows-1 && b[r+1][c] == v {
				count++
			}
		}
	}
	return count
}
