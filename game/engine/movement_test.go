package engine

import (
	"reflect"
	"testing"
)

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name       string
		line       []int
		strategy   MergeStrategy
		secondary  bool
		want       []int
		wantPoints int
		wantMerges int
	}{
		{
			name:       "no tiles",
			line:       []int{0, 0, 0, 0},
			strategy:   MergeStandard,
			want:       []int{0, 0, 0, 0},
			wantPoints: 0,
		},
		{
			name:       "compaction only",
			line:       []int{0, 2, 0, 4},
			strategy:   MergeStandard,
			want:       []int{2, 4, 0, 0},
			wantPoints: 0,
		},
		{
			name:       "simple pair",
			line:       []int{2, 2, 0, 0},
			strategy:   MergeStandard,
			want:       []int{4, 0, 0, 0},
			wantPoints: 4,
			wantMerges: 1,
		},
		{
			name:       "odd run standard keeps leftover trailing",
			line:       []int{2, 2, 2, 0},
			strategy:   MergeStandard,
			want:       []int{4, 2, 0, 0},
			wantPoints: 4,
			wantMerges: 1,
		},
		{
			name:       "odd run reverse keeps leftover leading",
			line:       []int{2, 2, 2, 0},
			strategy:   MergeReverse,
			want:       []int{2, 4, 0, 0},
			wantPoints: 4,
			wantMerges: 1,
		},
		{
			name:       "even run standard",
			line:       []int{2, 2, 2, 2},
			strategy:   MergeStandard,
			want:       []int{4, 4, 0, 0},
			wantPoints: 8,
			wantMerges: 2,
		},
		{
			name:       "even run strategy-invariant",
			line:       []int{2, 2, 2, 2},
			strategy:   MergeReverse,
			want:       []int{4, 4, 0, 0},
			wantPoints: 8,
			wantMerges: 2,
		},
		{
			name:       "merged tile does not remerge",
			line:       []int{4, 2, 2, 0},
			strategy:   MergeStandard,
			want:       []int{4, 4, 0, 0},
			wantPoints: 4,
			wantMerges: 1,
		},
		{
			name:       "secondary cascade collapses run",
			line:       []int{2, 2, 2, 2},
			strategy:   MergeStandard,
			secondary:  true,
			want:       []int{8, 0, 0, 0},
			wantPoints: 16,
			wantMerges: 3,
		},
		{
			name:       "secondary cascade across gap",
			line:       []int{4, 0, 2, 2},
			strategy:   MergeStandard,
			secondary:  true,
			want:       []int{8, 0, 0, 0},
			wantPoints: 12,
			wantMerges: 2,
		},
		{
			name:       "distinct values never merge",
			line:       []int{2, 4, 8, 16},
			strategy:   MergeStandard,
			want:       []int{2, 4, 8, 16},
			wantPoints: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, points, merges := slideLine(tt.line, tt.strategy, tt.secondary)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("slideLine(%v) = %v, want %v", tt.line, got, tt.want)
			}
			if points != tt.wantPoints {
				t.Errorf("points = %d, want %d", points, tt.wantPoints)
			}
			if merges != tt.wantMerges {
				t.Errorf("merges = %d, want %d", merges, tt.wantMerges)
			}
		})
	}
}

func TestSlide_Directions(t *testing.T) {
	board := Board{
		{2, 0, 0, 2},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 4},
	}

	tests := []struct {
		name string
		dir  Direction
		want Board
	}{
		{
			name: "left",
			dir:  DirectionLeft,
			want: Board{
				{4, 0, 0, 0},
				{0, 0, 0, 0},
				{2, 0, 0, 0},
				{4, 0, 0, 0},
			},
		},
		{
			name: "right",
			dir:  DirectionRight,
			want: Board{
				{0, 0, 0, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 2},
				{0, 0, 0, 4},
			},
		},
		{
			name: "up",
			dir:  DirectionUp,
			want: Board{
				{4, 0, 0, 2},
				{0, 0, 0, 4},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "down",
			dir:  DirectionDown,
			want: Board{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 2},
				{4, 0, 0, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Slide(board, tt.dir, MergeStandard, false)
			if !out.Board.Equal(tt.want) {
				t.Errorf("Slide(%s) =\n%v\nwant\n%v", tt.dir, out.Board, tt.want)
			}
			if !out.Changed {
				t.Error("expected Changed")
			}
		})
	}
}

func TestSlide_LeadingEdgeFollowsDirection(t *testing.T) {
	// Three equal tiles slid right must merge at the right edge under the
	// standard strategy, mirroring the leftward case.
	board := Board{
		{0, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	out := Slide(board, DirectionRight, MergeStandard, false)
	want := []int{0, 0, 2, 4}
	if !reflect.DeepEqual(out.Board[0], want) {
		t.Errorf("row after right slide = %v, want %v", out.Board[0], want)
	}
}

func TestSlide_NoChange(t *testing.T) {
	board := Board{
		{2, 0, 0},
		{4, 0, 0},
		{8, 0, 0},
	}

	out := Slide(board, DirectionLeft, MergeStandard, false)
	if out.Changed {
		t.Error("packed-left board reported change on left slide")
	}
	if out.Points != 0 || out.Merges != 0 {
		t.Errorf("no-op slide scored %d points, %d merges", out.Points, out.Merges)
	}
}

func TestSlide_DoesNotModifyInput(t *testing.T) {
	board := Board{
		{2, 2, 0},
		{0, 0, 0},
		{0, 0, 4},
	}
	snapshot := board.Clone()

	Slide(board, DirectionLeft, MergeStandard, false)
	if !board.Equal(snapshot) {
		t.Error("Slide modified its input board")
	}
}

func TestSlide_ConservesTileSum(t *testing.T) {
	boards := []Board{
		{
			{2, 2, 4, 8},
			{0, 16, 16, 0},
			{2, 0, 2, 2},
			{4, 4, 4, 4},
		},
		{
			{2, 2, 2},
			{2, 2, 2},
			{2, 2, 2},
		},
		{
			{1024, 1024, 512, 512, 256},
			{0, 0, 0, 0, 0},
			{8, 8, 8, 8, 8},
		},
	}

	for _, b := range boards {
		for _, dir := range Directions() {
			for _, strategy := range []MergeStrategy{MergeStandard, MergeReverse} {
				for _, secondary := range []bool{false, true} {
					out := Slide(b, dir, strategy, secondary)
					if out.Board.Sum() != b.Sum() {
						t.Errorf("sum changed sliding %s (%s, secondary=%v): %d -> %d",
							dir, strategy, secondary, b.Sum(), out.Board.Sum())
					}
				}
			}
		}
	}
}

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  []Direction
	}{
		{
			name: "open board allows all",
			board: Board{
				{0, 0, 0},
				{0, 2, 0},
				{0, 0, 0},
			},
			want: []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight},
		},
		{
			name: "corner tile blocks two directions",
			board: Board{
				{2, 0, 0},
				{0, 0, 0},
				{0, 0, 0},
			},
			want: []Direction{DirectionDown, DirectionRight},
		},
		{
			name: "dead board allows none",
			board: Board{
				{2, 4, 8},
				{16, 32, 64},
				{128, 256, 512},
			},
			want: nil,
		},
		{
			name: "packed board with one mergeable column",
			board: Board{
				{2, 4, 8},
				{2, 32, 64},
				{128, 256, 512},
			},
			want: []Direction{DirectionUp, DirectionDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegalMoves(tt.board, MergeStandard, false)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LegalMoves() = %v, want %v", got, tt.want)
			}
		})
	}
}
