package quiz

import "fmt"

// Difficulty is the quiz difficulty level. It is both a generation
// parameter and the output of the adaptive controller.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Difficulties lists all levels in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("invalid difficulty %q (want Easy, Medium, or Hard)", s)
}

func (d Difficulty) String() string { return string(d) }

// Valid reports whether d is one of the three known levels.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// NextDifficulty maps the current difficulty and an accuracy signal to the
// difficulty for the next quiz. Pure and total: it never errors, and with
// no history (total == 0) it returns the Medium cold-start default.
//
// Easy moves up above 70% accuracy and otherwise stays. Medium moves up
// above 70%, down below 40%, and otherwise stays. Hard drops to Medium
// below 50% and otherwise stays; it uses the single 0.5 threshold rather
// than the 0.4/0.7 pair.
func NextDifficulty(current Difficulty, correct, total int) Difficulty {
	if total == 0 {
		return Medium
	}

	accuracy := float64(correct) / float64(total)

	switch current {
	case Easy:
		if accuracy > 0.7 {
			return Medium
		}
		return Easy
	case Medium:
		if accuracy > 0.7 {
			return Hard
		}
		if accuracy < 0.4 {
			return Easy
		}
		return Medium
	default: // Hard
		if accuracy < 0.5 {
			return Medium
		}
		return Hard
	}
}
