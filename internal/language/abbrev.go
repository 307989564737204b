package language

import (
	"strings"
	"unicode/utf8"
)

// abbreviations lists honorifics, initialisms, and month/day abbreviations
// whose trailing period must not be read as a sentence end. Entries are
// lowercase with interior periods removed.
var abbreviations = map[string]struct{}{
	// Honorifics and titles.
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "rev": {},
	"hon": {}, "st": {}, "sr": {}, "jr": {}, "fr": {}, "pres": {},
	"gen": {}, "col": {}, "maj": {}, "capt": {}, "lt": {}, "sgt": {},
	// Initialisms.
	"us": {}, "usa": {}, "uk": {}, "un": {}, "eu": {}, "ussr": {},
	"phd": {}, "md": {}, "ba": {}, "ma": {}, "bsc": {}, "llb": {},
	"am": {}, "pm": {}, "bc": {}, "ad": {}, "bce": {}, "ce": {},
	"eg": {}, "ie": {}, "cf": {}, "vs": {}, "etc": {}, "al": {},
	"inc": {}, "ltd": {}, "co": {}, "corp": {}, "dept": {}, "est": {},
	"no": {}, "vol": {}, "fig": {}, "approx": {},
	// Months and days.
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {},
	"aug": {}, "sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
	"mon": {}, "tue": {}, "tues": {}, "wed": {}, "thu": {}, "thurs": {},
	"fri": {}, "sat": {}, "sun": {},
}

// IsAbbreviation reports whether a word's trailing period belongs to a known
// abbreviation rather than a sentence end. Single letters with a period
// ("J.", "U.") always count: they are initials regardless of the letter.
func IsAbbreviation(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if !strings.HasSuffix(word, ".") {
		return false
	}
	stripped := strings.ReplaceAll(word, ".", "")
	if stripped == "" {
		return false
	}
	if utf8.RuneCountInString(stripped) == 1 {
		return true
	}
	_, ok := abbreviations[stripped]
	return ok
}
