package language

import (
	"strings"

	xlang "golang.org/x/text/language"
)

// Profile describes how one language breaks and measures caption text.
// Profiles are immutable; Resolve hands out copies with shared read-only maps.
type Profile struct {
	Code             string
	WeakPunctuation  []string
	Conjunctions     map[string]struct{}
	SentenceStarters map[string]struct{}
	DoubleWidth      bool
}

// IsConjunction reports whether the match-normalized token is a conjunction
// in this profile.
func (p Profile) IsConjunction(token string) bool {
	_, ok := p.Conjunctions[token]
	return ok
}

// IsSentenceStarter reports whether the match-normalized token commonly opens
// a sentence in this profile.
func (p Profile) IsSentenceStarter(token string) bool {
	_, ok := p.SentenceStarters[token]
	return ok
}

// HasWeakPunctuationSuffix reports whether the raw word ends in one of the
// profile's weak punctuation marks.
func (p Profile) HasWeakPunctuationSuffix(word string) bool {
	for _, mark := range p.WeakPunctuation {
		if strings.HasSuffix(word, mark) {
			return true
		}
	}
	return false
}

type entry struct {
	code         string
	weakPunct    []string
	conjunctions []string
	starters     []string
	doubleWidth  bool
}

var languages = []entry{
	{
		code:         "en",
		weakPunct:    []string{",", ";", ":", "—"},
		conjunctions: []string{"and", "but", "or", "nor", "so", "yet", "because", "although", "while", "when", "if", "that", "which", "who"},
		starters:     []string{"the", "a", "an", "i", "we", "you", "he", "she", "it", "they", "this", "that", "there"},
	},
	{
		code:         "es",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"y", "e", "o", "u", "pero", "sino", "porque", "aunque", "cuando", "si", "que"},
		starters:     []string{"el", "la", "los", "las", "un", "una", "yo", "nosotros", "esto", "eso"},
	},
	{
		code:         "fr",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"et", "ou", "mais", "donc", "car", "parce", "quand", "si", "que", "qui"},
		starters:     []string{"le", "la", "les", "un", "une", "je", "nous", "vous", "il", "elle", "c'est"},
	},
	{
		code:         "de",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"und", "oder", "aber", "denn", "sondern", "weil", "obwohl", "wenn", "dass", "als"},
		starters:     []string{"der", "die", "das", "ein", "eine", "ich", "wir", "sie", "es"},
	},
	{
		code:         "it",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"e", "ed", "o", "ma", "però", "perché", "quando", "se", "che", "chi"},
		starters:     []string{"il", "lo", "la", "i", "gli", "le", "un", "una", "io", "noi"},
	},
	{
		code:         "pt",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"e", "ou", "mas", "porque", "embora", "quando", "se", "que", "quem"},
		starters:     []string{"o", "a", "os", "as", "um", "uma", "eu", "nós", "isso"},
	},
	{
		code:         "ru",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"и", "а", "но", "или", "потому", "хотя", "когда", "если", "что", "который"},
		starters:     []string{"я", "мы", "ты", "вы", "он", "она", "оно", "они", "это"},
	},
	{
		code:         "nl",
		weakPunct:    []string{",", ";", ":"},
		conjunctions: []string{"en", "of", "maar", "want", "dus", "omdat", "hoewel", "als", "dat", "die"},
		starters:     []string{"de", "het", "een", "ik", "wij", "jij", "hij", "zij", "dit", "dat"},
	},
	{
		code:         "ja",
		weakPunct:    []string{"、", "，"},
		conjunctions: []string{"そして", "しかし", "でも", "だから", "それで", "また", "けど", "が"},
		starters:     []string{"これ", "それ", "あれ", "私", "僕"},
		doubleWidth:  true,
	},
	{
		code:         "ko",
		weakPunct:    []string{",", "、"},
		conjunctions: []string{"그리고", "그러나", "하지만", "그래서", "또는", "그런데"},
		starters:     []string{"이", "그", "저", "나는", "우리"},
		doubleWidth:  true,
	},
	{
		code:         "zh",
		weakPunct:    []string{"，", "、", "；", "："},
		conjunctions: []string{"和", "但是", "但", "或者", "因为", "所以", "虽然", "如果", "而且"},
		starters:     []string{"这", "那", "我", "我们", "你", "他", "她"},
		doubleWidth:  true,
	},
}

// defaultEntry backs unknown language codes: Latin-script punctuation, no
// conjunction or starter knowledge.
var defaultEntry = entry{
	code:      "und",
	weakPunct: []string{",", ";", ":"},
}

var profiles map[string]Profile

func init() {
	profiles = make(map[string]Profile, len(languages)+1)
	for _, e := range languages {
		profiles[e.code] = e.build()
	}
	profiles[defaultEntry.code] = defaultEntry.build()
}

func (e entry) build() Profile {
	p := Profile{
		Code:             e.code,
		WeakPunctuation:  e.weakPunct,
		Conjunctions:     make(map[string]struct{}, len(e.conjunctions)),
		SentenceStarters: make(map[string]struct{}, len(e.starters)),
		DoubleWidth:      e.doubleWidth,
	}
	for _, c := range e.conjunctions {
		p.Conjunctions[c] = struct{}{}
	}
	for _, s := range e.starters {
		p.SentenceStarters[s] = struct{}{}
	}
	return p
}

// Resolve returns the profile for a language code. Codes are normalized
// through BCP 47 parsing ("eng" and "en-US" both resolve to "en");
// anything unrecognized falls back to the default profile.
func Resolve(code string) Profile {
	if p, ok := profiles[Normalize(code)]; ok {
		return p
	}
	return profiles[defaultEntry.code]
}

// Normalize reduces a language identifier to its ISO 639-1 base code, or
// "und" when the input cannot be parsed.
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return defaultEntry.code
	}
	tag, err := xlang.Parse(code)
	if err != nil {
		return defaultEntry.code
	}
	base, conf := tag.Base()
	if conf == xlang.No {
		return defaultEntry.code
	}
	return base.String()
}
