package translit

import "github.com/npillmayer/textwriter/core/glyphmap"

// Diacritic is the treatment the next letter of the input receives.
type Diacritic int

const (
	NoDiacritic Diacritic = iota
	Acute
	Dot
)

func (d Diacritic) String() string {
	switch d {
	case Acute:
		return "acute"
	case Dot:
		return "dot"
	}
	return "none"
}

// state of the scanner, combining the escape flag with the diacritic mode.
// Both hold for exactly one following rune.
type state uint8

const (
	plain       state = iota
	escape            // previous rune was an unconsumed backslash
	acute             // after \'
	acuteEscape       // after \'\
	dot               // after \.
	dotEscape         // after \.\
)

func (s state) escaped() bool {
	return s == escape || s == acuteEscape || s == dotEscape
}

func (s state) mode() Diacritic {
	switch s {
	case acute, acuteEscape:
		return Acute
	case dot, dotEscape:
		return Dot
	}
	return NoDiacritic
}

// withEscape returns the state for a pending backslash, keeping the mode.
func (s state) withEscape() state {
	switch s.mode() {
	case Acute:
		return acuteEscape
	case Dot:
		return dotEscape
	}
	return escape
}

// action tells the scanner what to write for a rune.
// If lci is set, the glyph for lci is written, falling back to char.
// Otherwise char is written if emit is set.
type action struct {
	lci  glyphmap.LCI
	char rune
	emit bool
}

var skip = action{}

func literal(c rune) action {
	return action{char: c, emit: true}
}

func glyph(lci glyphmap.LCI, fallback rune) action {
	return action{lci: lci, char: fallback, emit: true}
}

// step is the transition function of the scanner.
func step(s state, c rune) (state, action) {
	if c == '\\' {
		if s.escaped() {
			return plain, literal('\\')
		}
		return s.withEscape(), skip
	}
	if s.escaped() {
		switch c {
		case '\'':
			return acute, skip
		case '.':
			return dot, skip
		case 'r':
			return plain, glyph(glyphmap.SeanchloR, 'r')
		}
	} else if c == '&' {
		return plain, glyph(glyphmap.TironianEt, '&')
	}
	if c == 's' {
		switch {
		case s.mode() == Dot && s.escaped():
			return plain, glyph(glyphmap.DottedLongS, 's')
		case s.mode() == Dot:
			return plain, glyph(glyphmap.DottedSSmall, 's')
		case s.escaped():
			return plain, glyph(glyphmap.LongS, 's')
		}
		return plain, literal('s')
	}
	switch s.mode() {
	case Dot:
		if lci, ok := glyphmap.DottedConsonant(c); ok {
			return plain, glyph(lci, c)
		}
	case Acute:
		if lci, ok := glyphmap.AcuteVowel(c); ok {
			return plain, glyph(lci, c)
		}
	}
	return plain, literal(c)
}
