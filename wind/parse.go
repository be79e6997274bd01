package wind

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when the input holds no pulses
var ErrEmptyPattern = errors.New("wind: empty pattern")

// SyntaxError reports a character outside the pulse alphabet
type SyntaxError struct {
	Offset int
	Char   rune
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("wind: invalid pulse %q at offset %d (want '<' or '>')", e.Char, e.Offset)
}

// Parse converts a line of '<' and '>' characters into a Pattern.
// No whitespace is tolerated; callers trim line endings first.
func Parse(s string) (Pattern, error) {
	if len(s) == 0 {
		return nil, ErrEmptyPattern
	}

	pattern := make(Pattern, 0, len(s))
	for i, c := range s {
		switch c {
		case '<':
			pattern = append(pattern, Left)
		case '>':
			pattern = append(pattern, Right)
		default:
			return nil, &SyntaxError{Offset: i, Char: c}
		}
	}
	return pattern, nil
}

// MustParse is Parse for literals known to be valid
func MustParse(s string) Pattern {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
