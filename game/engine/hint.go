package engine

import (
	"math"
	"sort"
)

// HintWeights tunes the composite board evaluation used by SuggestMove.
// The relative weighting is policy, not contract; tests pin behavior against
// explicit weight sets.
type HintWeights struct {
	Empty        float64 `json:"empty"`
	Monotonicity float64 `json:"monotonicity"`
	Smoothness   float64 `json:"smoothness"`
	Mergeable    float64 `json:"mergeable"`
	Corner       float64 `json:"corner"`
}

// DefaultHintWeights favors open boards with the large tiles anchored in a
// corner.
func DefaultHintWeights() HintWeights {
	return HintWeights{
		Empty:        2.5,
		Monotonicity: 3.0,
		Smoothness:   0.3,
		Mergeable:    1.0,
		Corner:       2.0,
	}
}

// HintComponents breaks a direction's evaluation into its weighted parts.
type HintComponents struct {
	Empty        float64 `json:"empty"`
	Monotonicity float64 `json:"monotonicity"`
	Smoothness   float64 `json:"smoothness"`
	Mergeable    float64 `json:"mergeable"`
	Corner       float64 `json:"corner"`
	Composite    float64 `json:"composite"`
}

// RankedDirection pairs a legal direction with its composite score.
type RankedDirection struct {
	Direction Direction `json:"direction"`
	Score     float64   `json:"score"`
}

// Hint is the outcome of the local heuristic: the best direction, its score
// breakdown, and the remaining legal directions ranked below it.
type Hint struct {
	Direction    Direction         `json:"direction"`
	Components   HintComponents    `json:"components"`
	Alternatives []RankedDirection `json:"alternatives"`
}

// SuggestMove evaluates the four directions against the board, discards
// illegal ones, and returns the best by composite score. It is pure and
// deterministic: equal scores resolve to the earlier direction in canonical
// order. Returns ErrNoLegalMoves when no direction changes the board.
func SuggestMove(b Board, cfg *GameConfig, w HintWeights) (*Hint, error) {
	type candidate struct {
		dir        Direction
		components HintComponents
	}

	var candidates []candidate
	for _, dir := range Directions() {
		outcome := Slide(b, dir, cfg.MergeStrategy, cfg.AllowSecondaryMerge)
		if !outcome.Changed {
			continue
		}
		candidates = append(candidates, candidate{
			dir:        dir,
			components: EvaluateBoard(outcome.Board, w),
		})
	}

	if len(candidates) == 0 {
		return nil, ErrNoLegalMoves
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].components.Composite > candidates[j].components.Composite
	})

	best := candidates[0]
	hint := &Hint{
		Direction:  best.dir,
		Components: best.components,
	}
	for _, c := range candidates[1:] {
		hint.Alternatives = append(hint.Alternatives, RankedDirection{
			Direction: c.dir,
			Score:     c.components.Composite,
		})
	}
	return hint, nil
}

// EvaluateBoard scores a board position with the weighted heuristic mix:
// empty cells, monotonicity toward the best corner, smoothness of adjacent
// values, immediately mergeable pairs, and the largest tile sitting in a
// corner.
func EvaluateBoard(b Board, w HintWeights) HintComponents {
	c := HintComponents{
		Empty:        w.Empty * float64(len(b.EmptyCells())),
		Monotonicity: w.Monotonicity * monotonicity(b),
		Smoothness:   w.Smoothness * smoothness(b),
		Mergeable:    w.Mergeable * float64(b.MergeablePairs()),
		Corner:       w.Corner * cornerBonus(b),
	}
	c.Composite = c.Empty + c.Monotonicity + c.Smoothness + c.Mergeable + c.Corner
	return c
}

// monotonicity measures how close rows and columns come to being ordered
// toward a single corner. Each of the four corner orientations is scored by
// counting ordered adjacent pairs; the best orientation is normalized to
// [0, 1].
func monotonicity(b Board) float64 {
	rows, cols := b.Rows(), b.Cols()
	totalPairs := rows*(cols-1) + cols*(rows-1)
	if totalPairs == 0 {
		return 0
	}

	best := 0
	for _, fromTop := range []bool{true, false} {
		for _, fromLeft := range []bool{true, false} {
			score := orientationScore(b, fromTop, fromLeft)
			if score > best {
				best = score
			}
		}
	}
	return float64(best) / float64(totalPairs)
}

func orientationScore(b Board, fromTop, fromLeft bool) int {
	rows, cols := b.Rows(), b.Cols()
	score := 0

	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			c1, c2 := c, c+1
			if !fromLeft {
				c1, c2 = cols-1-c, cols-2-c
			}
			if b[r][c1] >= b[r][c2] {
				score++
			}
		}
	}

	for c := 0; c < cols; c++ {
		for r := 0; r < rows-1; r++ {
			r1, r2 := r, r+1
			if !fromTop {
				r1, r2 = rows-1-r, rows-2-r
			}
			if b[r1][c] >= b[r2][c] {
				score++
			}
		}
	}

	return score
}

// smoothness penalizes large differences between adjacent tiles, measured on
// a log2 scale. The result is zero or negative; identical neighbors cost
// nothing.
func smoothness(b Board) float64 {
	rows, cols := b.Rows(), b.Cols()
	penalty := 0.0

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := b[r][c]
			if v == 0 {
				continue
			}
			logV := math.Log2(float64(v))

			if c < cols-1 && b[r][c+1] != 0 {
				penalty += math.Abs(logV - math.Log2(float64(b[r][c+1])))
			}
			if r < rows-1 && b[r+1][c] != 0 {
				penalty += math.Abs(logV - math.Log2(float64(b[r+1][c])))
			}
		}
	}

	return -penalty
}

// cornerBonus returns 1 when the largest tile occupies a corner, 0 otherwise.
func cornerBonus(b Board) float64 {
	maxVal := b.MaxTile()
	if maxVal == 0 {
		return 0
	}

	rows, cols := b.Rows(), b.Cols()
	for _, pos := range []Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: cols - 1},
		{Row: rows - 1, Col: 0},
		{Row: rows - 1, Col: cols - 1},
	} {
		if b[pos.Row][pos.Col] == maxVal {
			return 1
		}
	}
	return 0
}
