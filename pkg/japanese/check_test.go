package japanese

import (
	"errors"
	"testing"
)

func TestCheckNumberAnswer(t *testing.T) {
	cases := []struct {
		name   string
		answer string
		n      int
		dir    Direction
		want   bool
	}{
		{"mixed case romaji", "YonJuuNana", 47, DirectionNumToJP, true},
		{"alternate reading", "shijuushichi", 47, DirectionNumToJP, true},
		{"inner spaces", "  yon juu  nana ", 47, DirectionNumToJP, true},
		{"wrong romaji", "yonjuuhachi", 47, DirectionNumToJP, false},
		{"zero", "Zero", 0, DirectionNumToJP, true},
		{"out of range target", "zero", 100000, DirectionNumToJP, false},
		{"padded digits", " 47 ", 47, DirectionJPToNum, true},
		{"wrong digits", "48", 47, DirectionJPToNum, false},
		{"trailing junk", "47abc", 47, DirectionJPToNum, true},
		{"plus sign", "+47", 47, DirectionJPToNum, true},
		{"negative", "-47", 47, DirectionJPToNum, false},
		{"not a number", "yonjuunana", 47, DirectionJPToNum, false},
		{"empty", "", 47, DirectionJPToNum, false},
		{"split digits", "4 7", 47, DirectionJPToNum, false},
		{"huge number", "99999999999999999999999", 47, DirectionJPToNum, false},
		{"unknown direction", "47", 47, Direction("sideways"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CheckNumberAnswer(c.answer, c.n, c.dir); got != c.want {
				t.Fatalf("CheckNumberAnswer(%q, %d, %q) = %v, want %v", c.answer, c.n, c.dir, got, c.want)
			}
		})
	}
}

func TestNormalizeAnswer_Idempotent(t *testing.T) {
	for _, in := range []string{"YonJuuNana", "  san\tbyaku\n", "ＳＡＮ", ""} {
		once := NormalizeAnswer(in)
		if twice := NormalizeAnswer(once); twice != once {
			t.Fatalf("NormalizeAnswer not idempotent for %q: %q then %q", in, once, twice)
		}
	}
	if got := NormalizeAnswer(" San Byaku "); got != "sanbyaku" {
		t.Fatalf("NormalizeAnswer = %q, want sanbyaku", got)
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection(" NUM-TO-JP "); err != nil || d != DirectionNumToJP {
		t.Fatalf("ParseDirection num-to-jp = (%q, %v)", d, err)
	}
	if d, err := ParseDirection("jp-to-num"); err != nil || d != DirectionJPToNum {
		t.Fatalf("ParseDirection jp-to-num = (%q, %v)", d, err)
	}
	if _, err := ParseDirection("jp-to-en"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}
