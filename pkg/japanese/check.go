package japanese

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Direction says which side of a number drill the learner answers.
type Direction string

const (
	// DirectionNumToJP shows digits; the learner types romaji.
	DirectionNumToJP Direction = "num-to-jp"
	// DirectionJPToNum shows romaji; the learner types digits.
	DirectionJPToNum Direction = "jp-to-num"
)

// ErrInvalidDirection is returned by ParseDirection for unknown values.
var ErrInvalidDirection = fmt.Errorf("invalid direction, want %q or %q", DirectionNumToJP, DirectionJPToNum)

// ParseDirection accepts num-to-jp or jp-to-num, ignoring case and
// surrounding space.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionNumToJP, DirectionJPToNum:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// NormalizeAnswer lowercases s and strips every whitespace rune.
func NormalizeAnswer(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// CheckNumberAnswer reports whether answer is a correct response for n.
// Romaji answers are normalized before comparison; digit answers are only
// trimmed and read as a leading base-10 integer.
func CheckNumberAnswer(answer string, n int, d Direction) bool {
	switch d {
	case DirectionNumToJP:
		normalized := NormalizeAnswer(answer)
		for _, valid := range AllValidJapanese(n) {
			if valid == normalized {
				return true
			}
		}
		return false
	case DirectionJPToNum:
		parsed, ok := parseLeadingInt(strings.TrimSpace(answer))
		return ok && parsed == n
	default:
		return false
	}
}

// parseLeadingInt reads an optional sign followed by decimal digits from the
// start of s and ignores whatever follows, e.g. "47abc" → 47.
func parseLeadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
