package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRewardByDifficulty(t *testing.T) {
	for difficulty, want := range map[int]int{4: 10, 6: 20, 8: 35} {
		got, err := Reward(Memory, Outcome{Difficulty: difficulty})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := Reward(Memory, Outcome{Difficulty: 5})
	assert.Error(t, err)
}

func TestTapRewardScalesAndCaps(t *testing.T) {
	cases := []struct{ taps, want int }{
		{0, 0}, {4, 0}, {5, 1}, {37, 7}, {75, 15}, {200, 15},
	}
	for _, c := range cases {
		got, err := Reward(Tap, Outcome{Taps: c.taps})
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "taps=%d", c.taps)
	}
	_, err := Reward(Tap, Outcome{Taps: -1})
	assert.Error(t, err)
}

func TestUnscrambleRewardIsFixed(t *testing.T) {
	got, err := Reward(Unscramble, Outcome{})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestGratitudeRewardEveryThirdEntry(t *testing.T) {
	for count, want := range map[int]int{0: 0, 1: 0, 2: 0, 3: 5, 4: 0, 6: 5, 9: 5} {
		got, err := Reward(Gratitude, Outcome{Count: count})
		require.NoError(t, err)
		assert.Equal(t, want, got, "count=%d", count)
	}
}

func TestPatternRewardScalesWithScore(t *testing.T) {
	for score, want := range map[int]int{0: 0, 1: 3, 7: 21} {
		got, err := Reward(Pattern, Outcome{Score: score})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestUnknownGame(t *testing.T) {
	_, err := Reward("chess", Outcome{})
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestLevelForXP(t *testing.T) {
	cases := []struct{ xp, level int }{
		{0, 1}, {99, 1}, {100, 2}, {199, 2}, {200, 3}, {1050, 11},
	}
	for _, c := range cases {
		assert.Equal(t, c.level, LevelForXP(c.xp), "xp=%d", c.xp)
	}
}
