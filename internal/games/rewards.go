package games

import (
	"errors"
	"fmt"
)

// Game identifiers accepted by the reward endpoint.
const (
	Memory     = "memory"
	Tap        = "tap"
	Unscramble = "unscramble"
	Gratitude  = "gratitude"
	Pattern    = "pattern"
)

var ErrUnknownGame = errors.New("unknown game")

// Outcome carries the per-game inputs the reward formulas scale on. Only the
// field matching the game is read.
type Outcome struct {
	Difficulty int // memory: board size 4, 6 or 8
	Taps       int // tap: taps landed within the countdown
	Count      int // gratitude: total entries in the jar
	Score      int // pattern: longest sequence repeated
}

// Reward computes the experience awarded for a finished game round.
func Reward(game string, o Outcome) (int, error) {
	switch game {
	case Memory:
		switch o.Difficulty {
		case 4:
			return 10, nil
		case 6:
			return 20, nil
		case 8:
			return 35, nil
		}
		return 0, fmt.Errorf("invalid memory difficulty %d", o.Difficulty)
	case Tap:
		if o.Taps < 0 {
			return 0, fmt.Errorf("invalid tap count %d", o.Taps)
		}
		xp := o.Taps / 5
		if xp > 15 {
			xp = 15
		}
		return xp, nil
	case Unscramble:
		return 5, nil
	case Gratitude:
		if o.Count < 0 {
			return 0, fmt.Errorf("invalid gratitude count %d", o.Count)
		}
		// 5 XP each time the jar fills another group of three.
		if o.Count > 0 && o.Count%3 == 0 {
			return 5, nil
		}
		return 0, nil
	case Pattern:
		if o.Score < 0 {
			return 0, fmt.Errorf("invalid pattern score %d", o.Score)
		}
		return o.Score * 3, nil
	}
	return 0, ErrUnknownGame
}

// LevelForXP derives the display tier from accumulated experience.
func LevelForXP(xp int) int {
	return xp/100 + 1
}
