package seq

import "strconv"

// Char is a single character of a Runes sequence. It renders quoted; a plain int32 renders as a number.
type Char rune

func (c Char) String() string {
	return strconv.QuoteRune(rune(c))
}

// Runes views a string as a sequence of its characters.
type Runes []rune

func RunesOf(s string) Runes {
	return Runes(s)
}

func (r Runes) Len() int {
	return len(r)
}

func (r Runes) At(i int) (Char, error) {
	if i < 0 || i >= len(r) {
		return 0, outOfRange(i, len(r))
	}
	return Char(r[i]), nil
}

func (r Runes) Prefix(n int) Sequence[Char] {
	return r[:clamp(n, len(r))]
}

func (r Runes) String() string {
	return strconv.Quote(string(r))
}
