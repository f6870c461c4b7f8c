package engine

import "fmt"

// MoveOutcome is the result of sliding a board in one direction.
type MoveOutcome struct {
	Board   Board
	Points  int
	Merges  int
	Changed bool
}

// MergeOccurred reports whether the slide merged at least one pair.
func (o MoveOutcome) MergeOccurred() bool {
	return o.Merges > 0
}

// compactLine removes empty cells, preserving the relative order of tiles.
func compactLine(line []int) []int {
	tiles := make([]int, 0, len(line))
	for _, v := range line {
		if v != 0 {
			tiles = append(tiles, v)
		}
	}
	return tiles
}

// mergeTiles merges a compacted run of tiles according to the strategy.
// Each resulting tile participates in at most one merge; a maximal run of k
// equal values produces floor(k/2) merges, with the odd leftover positioned
// by the scan edge. With secondary enabled, merged output is re-merged until
// stable, so a run can collapse into a single tile.
func mergeTiles(tiles []int, strategy MergeStrategy, secondary bool) ([]int, int, int) {
	if len(tiles) == 0 {
		return tiles, 0, 0
	}

	result := make([]int, 0, len(tiles))
	points := 0
	merges := 0

	if strategy == MergeReverse {
		// Scan from the trailing edge: odd runs keep their leftover tile
		// nearest the leading edge.
		for i := len(tiles) - 1; i >= 0; i-- {
			if i-1 >= 0 && tiles[i] == tiles[i-1] {
				merged := tiles[i] + tiles[i-1]
				result = append([]int{merged}, result...)
				points += merged
				merges++
				i--
			} else {
				result = append([]int{tiles[i]}, result...)
			}
		}
	} else {
		// Standard: scan from the leading edge.
		for i := 0; i < len(tiles); i++ {
			if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
				merged := tiles[i] + tiles[i+1]
				result = append(result, merged)
				points += merged
				merges++
				i++
			} else {
				result = append(result, tiles[i])
			}
		}
	}

	if secondary && merges > 0 && len(result) > 1 {
		cascaded, extraPoints, extraMerges := mergeTiles(result, strategy, secondary)
		if extraMerges > 0 {
			return cascaded, points + extraPoints, merges + extraMerges
		}
	}

	return result, points, merges
}

// slideLine compacts, merges, and re-pads a single line. The line is given
// leading-edge-first; tiles end up packed toward index zero.
func slideLine(line []int, strategy MergeStrategy, secondary bool) ([]int, int, int) {
	tiles := compactLine(line)
	merged, points, merges := mergeTiles(tiles, strategy, secondary)

	result := make([]int, len(line))
	copy(result, merged)
	return result, points, merges
}

// reverseLine returns a reversed copy of a line.
func reverseLine(line []int) []int {
	result := make([]int, len(line))
	for i, v := range line {
		result[len(line)-1-i] = v
	}
	return result
}

// Slide computes the result of sliding the board in the given direction.
// The input board is not modified. Rows are the lines for left/right moves
// and columns for up/down; each line is processed independently with its
// leading edge facing the direction of travel.
//
// Slide panics if the total tile sum changes, which would mean the merge
// algorithm violated conservation.
func Slide(b Board, dir Direction, strategy MergeStrategy, secondary bool) MoveOutcome {
	rows, cols := b.Rows(), b.Cols()
	out := MoveOutcome{Board: NewBoard(rows, cols)}

	processLine := func(line []int, reversed bool) []int {
		if reversed {
			line = reverseLine(line)
		}
		result, points, merges := slideLine(line, strategy, secondary)
		out.Points += points
		out.Merges += merges
		if reversed {
			result = reverseLine(result)
		}
		return result
	}

	switch dir {
	case DirectionLeft, DirectionRight:
		for r := 0; r < rows; r++ {
			newRow := processLine(b[r], dir == DirectionRight)
			copy(out.Board[r], newRow)
		}
	case DirectionUp, DirectionDown:
		for c := 0; c < cols; c++ {
			column := make([]int, rows)
			for r := 0; r < rows; r++ {
				column[r] = b[r][c]
			}
			newColumn := processLine(column, dir == DirectionDown)
			for r := 0; r < rows; r++ {
				out.Board[r][c] = newColumn[r]
			}
		}
	default:
		out.Board = b.Clone()
		return out
	}

	out.Changed = !b.Equal(out.Board)

	if before, after := b.Sum(), out.Board.Sum(); before != after {
		panic(fmt.Sprintf("engine: tile sum not conserved sliding %s: %d before, %d after", dir, before, after))
	}

	return out
}

// LegalMoves returns the directions in which a slide would change the board,
// in canonical order.
func LegalMoves(b Board, strategy MergeStrategy, secondary bool) []Direction {
	var legal []Direction
	for _, dir := range Directions() {
		if Slide(b, dir, strategy, secondary).Changed {
			legal = append(legal, dir)
		}
	}
	return legal
}
