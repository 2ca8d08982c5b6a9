package translit

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/textwriter/core/glyphmap"
)

// Specifier is implemented by fonts which describe themselves as a list of
// font specifiers, most specific first: font name, family, attribute tags.
type Specifier interface {
	Specifiers() []string
}

// Translator prepares input strings for rendering in a font, using the
// code maps of a registry. A Translator is safe for concurrent use.
type Translator struct {
	registry *glyphmap.Registry
}

// New creates a translator for the code maps in reg.
func New(reg *glyphmap.Registry) *Translator {
	return &Translator{registry: reg}
}

// Translate replaces the escape sequences of input by the code points of a
// font described by specs.
func (tr *Translator) Translate(input string, specs ...string) string {
	var maps []glyphmap.CharacterCodeMap
	if tr.registry != nil {
		maps = tr.registry.Resolve(specs...)
	}
	tracer().Debugf("translating %q for %v with %d code maps", input, specs, len(maps))
	return Transliterate(input, maps)
}

// TranslateFont is Translate with the specifiers of font f.
func (tr *Translator) TranslateFont(input string, f Specifier) string {
	return tr.Translate(input, f.Specifiers()...)
}

// Transliterate scans input once and writes the glyphs for escape sequences
// as resolved from maps. maps is a priority list, as returned by
// glyphmap.Registry.Resolve.
func Transliterate(input string, maps []glyphmap.CharacterCodeMap) string {
	if !strings.ContainsAny(input, `\&`) {
		return input
	}
	var sb strings.Builder
	sb.Grow(len(input))
	s := plain
	var a action
	for _, c := range input {
		s, a = step(s, c)
		if !a.emit {
			continue
		}
		if a.lci != 0 {
			sb.WriteRune(ResolveGlyph(maps, a.lci, a.char))
		} else {
			sb.WriteRune(a.char)
		}
	}
	if s.escaped() { // dangling backslash at end of input
		sb.WriteByte('\\')
	}
	return sb.String()
}

// ResolveGlyph returns the code point for lci from the first map in maps
// providing lci. If that map has no glyph assigned, or no map provides lci,
// fallback is returned. Later maps are not consulted once a providing map
// has been found.
//
// Code maps must not fail for provided LCIs; ResolveGlyph panics on
// glyphmap.ErrUnknownLCI.
func ResolveGlyph(maps []glyphmap.CharacterCodeMap, lci glyphmap.LCI, fallback rune) rune {
	for _, cmap := range maps {
		if !cmap.IsProvided(lci) {
			continue
		}
		g, err := cmap.Get(lci)
		if err != nil {
			tracer().Errorf("code map for %q: %v", cmap.FontKey(), err)
			panic(err)
		}
		if g == glyphmap.Unset || !utf8.ValidRune(g) {
			if g != glyphmap.Unset {
				tracer().Infof("code map for %q has invalid code point %#x for %v", cmap.FontKey(), g, lci)
			}
			return fallback
		}
		return g
	}
	return fallback
}
