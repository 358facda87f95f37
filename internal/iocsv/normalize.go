package iocsv

import (
	"strings"
	"unicode"

	"github.com/gnames/gnlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize cleans a CSV cell. Invalid UTF-8 is repaired, surrounding
// spaces are removed and accented letters are replaced by their base
// letters.
func Normalize(s string) string {
	s = gnlib.FixUtf8(s)
	s = strings.TrimSpace(s)
	return foldAccents(s)
}

func foldAccents(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	res, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return res
}

// decimal converts a decimal comma into a dot.
func decimal(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}
