package glyphmap

import (
	"errors"
	"sync"

	"github.com/npillmayer/textwriter/core"
)

// ErrUnknownLCI is returned when a code map is queried for an LCI outside of
// its domain. Callers using the published LCI constants will never see it.
var ErrUnknownLCI = errors.New("undefined logical character identifier")

// CharacterCodeMap maps a fixed set of LCIs to the glyph code points of one
// font or font class.
//
// A font class is a name for a group of fonts sharing the same code points
// for the LCIs in question, e.g. "Unicode". Deciding whether a font belongs
// to a class is up to the application.
type CharacterCodeMap interface {
	// IsProvided is true if lci is part of the map's domain.
	IsProvided(lci LCI) bool
	// Get returns the code point assigned to lci, or Unset.
	Get(lci LCI) (rune, error)
	// Set assigns a code point to lci.
	Set(lci LCI, glyph rune) error
	// FontKey is the name of the font or font class the map is valid for.
	FontKey() string
}

// CodeMap is a CharacterCodeMap over a Domain. Overrides are stored in an
// array parallel to the domain.
type CodeMap struct {
	mx      sync.RWMutex
	fontKey string
	domain  *Domain
	glyphs  []rune // Unset for absent overrides
}

var _ CharacterCodeMap = (*CodeMap)(nil)

// NewCodeMap creates a code map for font key fontKey. glyphs, if given, are
// assigned to the members of domain in order; surplus values are ignored.
func NewCodeMap(fontKey string, domain *Domain, glyphs ...rune) *CodeMap {
	cm := &CodeMap{
		fontKey: fontKey,
		domain:  domain,
		glyphs:  make([]rune, domain.Len()),
	}
	for i := range cm.glyphs {
		if i < len(glyphs) {
			cm.glyphs[i] = glyphs[i]
		} else {
			cm.glyphs[i] = Unset
		}
	}
	return cm
}

// NewAccentedVowelMap creates a code map over the AccentedVowels domain.
func NewAccentedVowelMap(fontKey string, glyphs ...rune) *CodeMap {
	return NewCodeMap(fontKey, AccentedVowels, glyphs...)
}

// NewSeanchloMap creates a code map over the Seanchlo domain.
func NewSeanchloMap(fontKey string, glyphs ...rune) *CodeMap {
	return NewCodeMap(fontKey, Seanchlo, glyphs...)
}

// NewUnicodeMap creates a code map over domain where every LCI maps to
// itself. This is correct for any font which follows Unicode encoding.
func NewUnicodeMap(fontKey string, domain *Domain) *CodeMap {
	lcis := domain.LCIs()
	glyphs := make([]rune, len(lcis))
	for i, lci := range lcis {
		glyphs[i] = rune(lci)
	}
	return NewCodeMap(fontKey, domain, glyphs...)
}

// Domain returns the domain of cm.
func (cm *CodeMap) Domain() *Domain {
	return cm.domain
}

// FontKey is part of interface CharacterCodeMap.
func (cm *CodeMap) FontKey() string {
	return cm.fontKey
}

// IsProvided is part of interface CharacterCodeMap.
func (cm *CodeMap) IsProvided(lci LCI) bool {
	return cm.domain.Contains(lci)
}

// Get is part of interface CharacterCodeMap.
func (cm *CodeMap) Get(lci LCI) (rune, error) {
	i := cm.domain.Index(lci)
	if i < 0 {
		return Unset, unknown(lci, cm)
	}
	cm.mx.RLock()
	defer cm.mx.RUnlock()
	return cm.glyphs[i], nil
}

// Set is part of interface CharacterCodeMap.
func (cm *CodeMap) Set(lci LCI, glyph rune) error {
	i := cm.domain.Index(lci)
	if i < 0 {
		return unknown(lci, cm)
	}
	cm.mx.Lock()
	defer cm.mx.Unlock()
	cm.glyphs[i] = glyph
	return nil
}

func unknown(lci LCI, cm *CodeMap) error {
	tracer().Errorf("code map %q queried for %v outside of domain %s", cm.fontKey, lci, cm.domain.name)
	return core.WrapError(ErrUnknownLCI, core.EINTERNAL,
		"%v not in domain %s of code map %q", lci, cm.domain.name, cm.fontKey)
}
