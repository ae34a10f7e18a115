package quiz

import "testing"

func TestNextDifficulty_ColdStart(t *testing.T) {
	for _, d := range Difficulties {
		if got := NextDifficulty(d, 0, 0); got != Medium {
			t.Errorf("NextDifficulty(%s, 0, 0) = %s, want Medium", d, got)
		}
	}
}

func TestNextDifficulty_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current Difficulty
		correct int
		total   int
		want    Difficulty
	}{
		{"easy moves up above 70%", Easy, 8, 10, Medium},
		{"easy stays on low accuracy", Easy, 3, 10, Easy},
		{"easy stays in the middle band", Easy, 5, 10, Easy},
		{"easy stays at exactly 70%", Easy, 7, 10, Easy},
		{"medium moves up above 70%", Medium, 8, 10, Hard},
		{"medium moves down below 40%", Medium, 3, 10, Easy},
		{"medium holds in the middle band", Medium, 5, 10, Medium},
		{"medium holds at exactly 40%", Medium, 4, 10, Medium},
		{"hard drops below 50%", Hard, 4, 10, Medium},
		{"hard holds at 50%", Hard, 5, 10, Hard},
		{"hard holds above 50%", Hard, 6, 10, Hard},
		{"hard holds on perfect score", Hard, 10, 10, Hard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDifficulty(tt.current, tt.correct, tt.total)
			if got != tt.want {
				t.Errorf("NextDifficulty(%s, %d, %d) = %s, want %s",
					tt.current, tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(string(d))
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", d, err)
		}
		if got != d {
			t.Errorf("ParseDifficulty(%q) = %s", d, got)
		}
	}

	if _, err := ParseDifficulty("extreme"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
	if _, err := ParseDifficulty("easy"); err == nil {
		t.Error("expected error for lowercase difficulty")
	}
}
