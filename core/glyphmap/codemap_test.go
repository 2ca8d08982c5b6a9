package glyphmap

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDomainsSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.glyphs")
	defer teardown()
	//
	for _, d := range []*Domain{AccentedVowels, Seanchlo} {
		lcis := d.LCIs()
		for i := 1; i < len(lcis); i++ {
			if lcis[i-1] >= lcis[i] {
				t.Errorf("domain %s not sorted at position %d", d.Name(), i)
			}
		}
	}
	assert.Equal(t, 40, AccentedVowels.Len())
	assert.Equal(t, 22, Seanchlo.Len())
}

func TestNewDomainDropsDuplicates(t *testing.T) {
	d := NewDomain("test", 3, 1, 2, 3, 1)
	assert.Equal(t, []LCI{1, 2, 3}, d.LCIs())
	assert.Equal(t, -1, d.Index(4))
	assert.Equal(t, 2, d.Index(3))
}

func TestIsProvided(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.glyphs")
	defer teardown()
	//
	for _, cm := range []*CodeMap{NewAccentedVowelMap("x"), NewSeanchloMap("x")} {
		member := make(map[LCI]bool)
		for _, lci := range cm.Domain().LCIs() {
			member[lci] = true
			if !cm.IsProvided(lci) {
				t.Errorf("expected %v to be provided by %s", lci, cm.Domain().Name())
			}
		}
		for r := LCI(0); r < 0x2100; r++ {
			if !member[r] && cm.IsProvided(r) {
				t.Errorf("expected %v not to be provided by %s", r, cm.Domain().Name())
			}
		}
	}
}

func TestGetUnset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.glyphs")
	defer teardown()
	//
	cm := NewSeanchloMap("Seanchló")
	for _, lci := range Seanchlo.LCIs() {
		g, err := cm.Get(lci)
		assert.NoError(t, err)
		assert.Equal(t, Unset, g, "expected %v to be unset", lci)
	}
}

func TestSetGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.glyphs")
	defer teardown()
	//
	cm := NewAccentedVowelMap("Bunchló")
	for i, lci := range AccentedVowels.LCIs() {
		assert.NoError(t, cm.Set(lci, rune(0xe000+i)))
	}
	for i, lci := range AccentedVowels.LCIs() {
		g, err := cm.Get(lci)
		assert.NoError(t, err)
		assert.Equal(t, rune(0xe000+i), g)
	}
	assert.NoError(t, cm.Set(AAcuteSmall, 'x'))
	g, _ := cm.Get(AAcuteSmall)
	assert.Equal(t, 'x', g, "second Set should overwrite")
}

func TestUnknownLCI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.glyphs")
	defer teardown()
	//
	cm := NewSeanchloMap("Seanchló")
	_, err := cm.Get(AAcuteSmall)
	if !errors.Is(err, ErrUnknownLCI) {
		t.Errorf("expected ErrUnknownLCI for Get, got %v", err)
	}
	err = cm.Set('a', 0x61)
	if !errors.Is(err, ErrUnknownLCI) {
		t.Errorf("expected ErrUnknownLCI for Set, got %v", err)
	}
	_, err = NewAccentedVowelMap("x").Get(TironianEt)
	assert.ErrorIs(t, err, ErrUnknownLCI)
}

func TestPositionalGlyphs(t *testing.T) {
	cm := NewSeanchloMap("Seanchló", 0x43, 0x63)
	g, _ := cm.Get(DottedCCapital)
	assert.Equal(t, rune(0x43), g)
	g, _ = cm.Get(DottedCSmall)
	assert.Equal(t, rune(0x63), g)
	g, _ = cm.Get(DottedGCapital)
	assert.Equal(t, Unset, g)
}

func TestUnicodeMap(t *testing.T) {
	cm := NewUnicodeMap("Unicode", Seanchlo)
	for _, lci := range Seanchlo.LCIs() {
		g, err := cm.Get(lci)
		assert.NoError(t, err)
		assert.Equal(t, rune(lci), g)
	}
}

func TestLetterLookup(t *testing.T) {
	lci, ok := AcuteVowel('e')
	assert.True(t, ok)
	assert.Equal(t, EAcuteSmall, lci)
	_, ok = AcuteVowel('y')
	assert.False(t, ok)
	lci, ok = DottedConsonant('M')
	assert.True(t, ok)
	assert.Equal(t, DottedMCapital, lci)
	_, ok = DottedConsonant('s')
	assert.False(t, ok)
}
