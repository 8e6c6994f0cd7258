// Package japanese converts integers to their Japanese romaji readings and
// checks learner answers against them.
package japanese

import (
	"errors"
	"fmt"
)

const (
	MinNumber = 0
	MaxNumber = 99999
)

// ErrOutOfRange is returned when a number falls outside [MinNumber, MaxNumber].
var ErrOutOfRange = errors.New("number out of range (0-99999)")

const zeroReading = "zero"

var onesReading = [10]string{"", "ichi", "ni", "san", "yon", "go", "roku", "nana", "hachi", "kyuu"}

// digitVariants lists every accepted reading of a bare digit, canonical first.
func digitVariants(digit int) []string {
	switch digit {
	case 4:
		return []string{"yon", "shi"}
	case 7:
		return []string{"nana", "shichi"}
	case 9:
		return []string{"kyuu", "ku"}
	default:
		return []string{onesReading[digit]}
	}
}

type placeGroup struct {
	value     int
	place     string
	irregular map[int]string
}

// placeGroups is ordered from the most significant place down to the tens.
var placeGroups = []placeGroup{
	{value: 10000, place: "man"},
	{value: 1000, place: "sen", irregular: map[int]string{3: "sanzen", 8: "hassen"}},
	{value: 100, place: "hyaku", irregular: map[int]string{3: "sanbyaku", 6: "roppyaku", 8: "happyaku"}},
	{value: 10, place: "juu"},
}

// tokens returns the readings of digit in this place, canonical first.
// Irregular readings are atomic and never branch.
func (g placeGroup) tokens(digit int) []string {
	if irr, ok := g.irregular[digit]; ok {
		return []string{irr}
	}
	if digit == 1 {
		return []string{g.place}
	}
	variants := digitVariants(digit)
	out := make([]string, len(variants))
	for i, v := range variants {
		out[i] = v + g.place
	}
	return out
}

func inRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// NumberToJapanese returns the canonical romaji reading of n, e.g. 47 → "yonjuunana".
func NumberToJapanese(n int) (string, error) {
	if !inRange(n) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return zeroReading, nil
	}

	result := ""
	remaining := n
	for _, g := range placeGroups {
		digit := remaining / g.value
		if digit == 0 {
			continue
		}
		result += g.tokens(digit)[0]
		remaining %= g.value
	}
	if remaining > 0 {
		result += digitVariants(remaining)[0]
	}
	return result, nil
}

// AllValidJapanese returns every accepted reading of n, expanding the
// alternate pronunciations of 4, 7 and 9. The first element is always the
// canonical reading. Unlike NumberToJapanese, an out-of-range n yields an
// empty slice rather than an error.
func AllValidJapanese(n int) []string {
	if !inRange(n) {
		return []string{}
	}
	if n == 0 {
		return []string{zeroReading}
	}

	var results []string
	expandReadings(n, 0, "", &results)
	return results
}

func expandReadings(remaining, group int, prefix string, results *[]string) {
	if remaining == 0 {
		if prefix != "" {
			*results = append(*results, prefix)
		}
		return
	}

	for group < len(placeGroups) && remaining < placeGroups[group].value {
		group++
	}
	if group == len(placeGroups) {
		for _, v := range digitVariants(remaining) {
			*results = append(*results, prefix+v)
		}
		return
	}

	g := placeGroups[group]
	digit, rest := remaining/g.value, remaining%g.value
	for _, token := range g.tokens(digit) {
		expandReadings(rest, group+1, prefix+token, results)
	}
}
