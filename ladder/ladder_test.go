package ladder_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordindex"
)

// ScenarioSuite runs the reference ladders through FindLadders.
type ScenarioSuite struct {
	suite.Suite
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// expectLadders searches start→end over words and diffs against want.
func (s *ScenarioSuite) expectLadders(start, end string, words []string, want []ladder.Path) *ladder.Result {
	idx := indexOf(len(start), words...)
	res, err := ladder.FindLadders(start, end, idx)
	require.NoError(s.T(), err)
	if diff := cmp.Diff(want, res.Ladders); diff != "" {
		s.T().Errorf("FindLadders(%s, %s) mismatch (-want +got):\n%s", start, end, diff)
	}
	return res
}

// TestNoLadder: airplane and tricycle share no neighborhood.
func (s *ScenarioSuite) TestNoLadder() {
	res := s.expectLadders("airplane", "tricycle",
		[]string{"airplane", "tricycle", "triangle", "airlines"}, nil)
	require.False(s.T(), res.Found())
	require.Equal(s.T(), ladder.StateExhausted, res.Outcome)
	require.Equal(s.T(), 1, res.Levels)
}

// TestSameWord returns the degenerate two-entry ladder.
func (s *ScenarioSuite) TestSameWord() {
	res := s.expectLadders("work", "work", wordsOf(workToPlay),
		[]ladder.Path{{"work", "work"}})
	require.Equal(s.T(), ladder.StateDone, res.Outcome)
	require.Zero(s.T(), res.Levels)
}

// TestOneHop: at → it.
func (s *ScenarioSuite) TestOneHop() {
	res := s.expectLadders("at", "it", []string{"at", "it", "an", "in", "on"},
		[]ladder.Path{{"at", "it"}})
	require.Equal(s.T(), ladder.StateFoundAtCurrentLevel, res.Outcome)
	require.Equal(s.T(), 1, res.Levels)
}

// TestWorkToPlay finds all twelve seven-word ladders.
func (s *ScenarioSuite) TestWorkToPlay() {
	res := s.expectLadders("work", "play", wordsOf(workToPlay), workToPlay)
	require.Len(s.T(), res.Ladders, 12)
	require.Equal(s.T(), 6, res.Levels)
}

// TestLongWords: ten-letter words, seven steps.
func (s *ScenarioSuite) TestLongWords() {
	s.expectLadders("blistering", "blithering", wordsOf(blisteringToBlithering), blisteringToBlithering)
}

// TestMediumDepth: nine steps.
func (s *ScenarioSuite) TestMediumDepth() {
	s.expectLadders("awake", "sleep", wordsOf(awakeToSleep), awakeToSleep)
}

// TestLongDepth: seventeen steps, branches merging and splitting twice.
func (s *ScenarioSuite) TestLongDepth() {
	s.expectLadders("decanting", "derailing", wordsOf(decantingToDerailing), decantingToDerailing)
}

// TestReverseDirection swaps start and end; every ladder reverses.
func (s *ScenarioSuite) TestReverseDirection() {
	var want []ladder.Path
	for _, p := range awakeToSleep {
		r := slices.Clone(p)
		slices.Reverse(r)
		want = append(want, r)
	}
	slices.SortFunc(want, func(a, b ladder.Path) int { return slices.Compare(a, b) })
	s.expectLadders("sleep", "awake", wordsOf(awakeToSleep), want)
}

// TestFindLadders_Degradations covers every "no ladder" precondition.
func TestFindLadders_Degradations(t *testing.T) {
	idx := indexOf(4, wordsOf(workToPlay)...)
	cases := []struct {
		name       string
		start, end string
		idx        *wordindex.Index
	}{
		{"length mismatch", "work", "plays", idx},
		{"start missing", "wark", "play", idx},
		{"end missing", "work", "plax", idx},
		{"both missing same word", "zzzz", "zzzz", idx},
		{"empty index", "work", "play", indexOf(4)},
		{"empty words", "", "", idx},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ladder.FindLadders(tc.start, tc.end, tc.idx)
			require.NoError(t, err)
			require.Empty(t, res.Ladders)
			require.False(t, res.Found())
		})
	}
}

// TestFindLadders_Errors verifies that invalid inputs and options are rejected.
func TestFindLadders_Errors(t *testing.T) {
	if _, err := ladder.FindLadders("a", "b", nil); !errors.Is(err, ladder.ErrIndexNil) {
		t.Errorf("nil index: want ErrIndexNil, got %v", err)
	}
	idx := indexOf(2, "at", "it")
	if _, err := ladder.FindLadders("at", "it", idx, ladder.WithMaxDepth(-1)); !errors.Is(err, ladder.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestFindLadders_MaxDepth cuts the search just short of, then exactly at, the distance.
func TestFindLadders_MaxDepth(t *testing.T) {
	idx := indexOf(4, wordsOf(workToPlay)...)

	res, err := ladder.FindLadders("work", "play", idx, ladder.WithMaxDepth(5))
	require.NoError(t, err)
	require.Empty(t, res.Ladders)
	require.Equal(t, ladder.StateExhausted, res.Outcome)
	require.Equal(t, 5, res.Levels)

	res, err = ladder.FindLadders("work", "play", idx, ladder.WithMaxDepth(6))
	require.NoError(t, err)
	require.Len(t, res.Ladders, 12)
}

// TestFindLadders_OnLevel sees one call per level, starting from the single start path.
func TestFindLadders_OnLevel(t *testing.T) {
	idx := indexOf(4, wordsOf(workToPlay)...)
	var depths, sizes []int
	_, err := ladder.FindLadders("work", "play", idx, ladder.WithOnLevel(func(d, n int) {
		depths = append(depths, d)
		sizes = append(sizes, n)
	}))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, depths)
	require.Equal(t, 1, sizes[0])
	// work has six neighbors: fork pork word worm worn wort
	require.Equal(t, 6, sizes[1])
}

// TestFindLadders_Cancellation verifies that a cancelled context halts the search.
func TestFindLadders_Cancellation(t *testing.T) {
	idx := indexOf(4, wordsOf(workToPlay)...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ladder.FindLadders("work", "play", idx, ladder.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestFindLadders_CancelMidSearch cancels from the level hook.
func TestFindLadders_CancelMidSearch(t *testing.T) {
	idx := indexOf(4, wordsOf(workToPlay)...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	res, err := ladder.FindLadders("work", "play", idx,
		ladder.WithContext(ctx),
		ladder.WithOnLevel(func(d, _ int) {
			if d == 2 {
				cancel()
			}
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
}

// TestFindLadders_Deterministic repeats a search and expects identical output.
func TestFindLadders_Deterministic(t *testing.T) {
	idx := indexOf(9, wordsOf(decantingToDerailing)...)
	first, err := ladder.FindLadders("decanting", "derailing", idx)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ladder.FindLadders("decanting", "derailing", idx)
		require.NoError(t, err)
		require.Equal(t, first.Ladders, again.Ladders)
	}
}

// TestFindLadders_ConcurrentSafety shares one index between concurrent searches.
func TestFindLadders_ConcurrentSafety(t *testing.T) {
	idx := indexOf(4, wordsOf(workToPlay)...)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := ladder.FindLadders("work", "play", idx)
			if err == nil && len(res.Ladders) != 12 {
				err = errors.New("wrong ladder count")
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("concurrent run #%d: %v", i, err)
		}
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "work fork form", ladder.Format(ladder.Path{"work", "fork", "form"}))
	require.Equal(t, "", ladder.Format(nil))
}

func TestState_String(t *testing.T) {
	require.Equal(t, "searching", ladder.StateSearching.String())
	require.Equal(t, "found", ladder.StateFoundAtCurrentLevel.String())
	require.Equal(t, "exhausted", ladder.StateExhausted.String())
	require.Equal(t, "done", ladder.StateDone.String())
	require.Equal(t, "State(9)", ladder.State(9).String())
}
