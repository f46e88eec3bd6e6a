// Package dateparse разбирает даты, введённые человеком ("march 19, 2019", "dec 15, 2019",
// "2019-03-19"), в полночь UTC.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

var ErrInvalidDate = errors.New("dateparse: invalid date")

var (
	spaces      = regexp.MustCompile(`\s+`)
	commaSpaces = regexp.MustCompile(`\s*,\s*`)
)

// Parse разбирает дату; время суток отбрасывается
func Parse(s string) (time.Time, error) {
	normalized := normalize(s)
	if normalized == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	t, err := dateparse.ParseIn(normalized, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// MustParse как Parse, но паникует при ошибке. Только для тестов и констант.
func MustParse(s string) time.Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// normalize приводит пробелы и запятые к виду "March 14, 2019"
func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = commaSpaces.ReplaceAllString(s, ", ")
	s = spaces.ReplaceAllString(s, " ")
	s = strings.TrimSuffix(s, ".")
	return capitalizeWords(s)
}

func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 && unicode.IsLetter(runes[0]) {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
