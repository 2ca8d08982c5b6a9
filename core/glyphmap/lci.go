package glyphmap

import (
	"fmt"
	"sort"
)

// LCI is a logical character identifier.
type LCI rune

func (lci LCI) String() string {
	return fmt.Sprintf("%#U", rune(lci))
}

// Unset is returned for an LCI which is part of a map's domain but has no
// glyph assigned. It is never a valid code point.
const Unset rune = -1

// Accented vowels. Values are the Latin-1 code points of the characters.
const (
	AGraveCapital      LCI = 0x00c0
	AAcuteCapital      LCI = 0x00c1
	ACircumflexCapital LCI = 0x00c2
	ADiaeresisCapital  LCI = 0x00c4
	EGraveCapital      LCI = 0x00c8
	EAcuteCapital      LCI = 0x00c9
	ECircumflexCapital LCI = 0x00ca
	EDiaeresisCapital  LCI = 0x00cb
	IGraveCapital      LCI = 0x00cc
	IAcuteCapital      LCI = 0x00cd
	ICircumflexCapital LCI = 0x00ce
	IDiaeresisCapital  LCI = 0x00cf
	OGraveCapital      LCI = 0x00d2
	OAcuteCapital      LCI = 0x00d3
	OCircumflexCapital LCI = 0x00d4
	ODiaeresisCapital  LCI = 0x00d6
	UGraveCapital      LCI = 0x00d9
	UAcuteCapital      LCI = 0x00da
	UCircumflexCapital LCI = 0x00db
	UDiaeresisCapital  LCI = 0x00dc
	AGraveSmall        LCI = 0x00e0
	AAcuteSmall        LCI = 0x00e1
	ACircumflexSmall   LCI = 0x00e2
	ADiaeresisSmall    LCI = 0x00e4
	EGraveSmall        LCI = 0x00e8
	EAcuteSmall        LCI = 0x00e9
	ECircumflexSmall   LCI = 0x00ea
	EDiaeresisSmall    LCI = 0x00eb
	IGraveSmall        LCI = 0x00ec
	IAcuteSmall        LCI = 0x00ed
	ICircumflexSmall   LCI = 0x00ee
	IDiaeresisSmall    LCI = 0x00ef
	OGraveSmall        LCI = 0x00f2
	OAcuteSmall        LCI = 0x00f3
	OCircumflexSmall   LCI = 0x00f4
	ODiaeresisSmall    LCI = 0x00f6
	UGraveSmall        LCI = 0x00f9
	UAcuteSmall        LCI = 0x00fa
	UCircumflexSmall   LCI = 0x00fb
	UDiaeresisSmall    LCI = 0x00fc
)

// Seanchló characters: dotted consonants (séimhiú), the long s,
// the r rotunda-like glyph and the Tironian et.
const (
	DottedCCapital   LCI = 0x010a
	DottedCSmall     LCI = 0x010b
	DottedGCapital   LCI = 0x0120
	DottedGSmall     LCI = 0x0121
	LongS            LCI = 0x017f
	SeanchloR        LCI = 0x027c
	DottedBCapital   LCI = 0x1e02
	DottedBSmall     LCI = 0x1e03
	DottedDCapital   LCI = 0x1e0a
	DottedDSmall     LCI = 0x1e0b
	DottedFCapital   LCI = 0x1e1e
	DottedFSmall     LCI = 0x1e1f
	DottedMCapital   LCI = 0x1e40
	DottedMSmall     LCI = 0x1e41
	DottedPCapital   LCI = 0x1e56
	DottedPSmall     LCI = 0x1e57
	DottedSCapital   LCI = 0x1e60
	DottedSSmall     LCI = 0x1e61
	DottedTCapital   LCI = 0x1e6a
	DottedTSmall     LCI = 0x1e6b
	DottedLongS      LCI = 0x1e9b
	TironianEt       LCI = 0x204a
)

// Domain is a closed, sorted set of LCIs a code map can answer for.
// A domain never changes after construction.
type Domain struct {
	name string
	lcis []LCI
}

// NewDomain creates a domain from a list of LCIs. The list is copied and
// sorted; duplicates are dropped.
func NewDomain(name string, lcis ...LCI) *Domain {
	l := make([]LCI, len(lcis))
	copy(l, lcis)
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	j := 0
	for i := range l {
		if i > 0 && l[i] == l[j-1] {
			continue
		}
		l[j] = l[i]
		j++
	}
	return &Domain{name: name, lcis: l[:j]}
}

// Name returns the descriptive name of the domain.
func (d *Domain) Name() string {
	return d.name
}

// Len returns the number of LCIs in d.
func (d *Domain) Len() int {
	return len(d.lcis)
}

// LCIs returns a copy of the sorted members of d.
func (d *Domain) LCIs() []LCI {
	l := make([]LCI, len(d.lcis))
	copy(l, d.lcis)
	return l
}

// Index returns the position of lci within d, or -1 if lci is not a member.
func (d *Domain) Index(lci LCI) int {
	i := sort.Search(len(d.lcis), func(i int) bool { return d.lcis[i] >= lci })
	if i < len(d.lcis) && d.lcis[i] == lci {
		return i
	}
	return -1
}

// Contains is true if lci is a member of d.
func (d *Domain) Contains(lci LCI) bool {
	return d.Index(lci) >= 0
}

// AccentedVowels is the domain of vowels with grave, acute, circumflex and
// diaeresis accents.
var AccentedVowels = NewDomain("accented vowels",
	AGraveCapital, AAcuteCapital, ACircumflexCapital, ADiaeresisCapital,
	EGraveCapital, EAcuteCapital, ECircumflexCapital, EDiaeresisCapital,
	IGraveCapital, IAcuteCapital, ICircumflexCapital, IDiaeresisCapital,
	OGraveCapital, OAcuteCapital, OCircumflexCapital, ODiaeresisCapital,
	UGraveCapital, UAcuteCapital, UCircumflexCapital, UDiaeresisCapital,
	AGraveSmall, AAcuteSmall, ACircumflexSmall, ADiaeresisSmall,
	EGraveSmall, EAcuteSmall, ECircumflexSmall, EDiaeresisSmall,
	IGraveSmall, IAcuteSmall, ICircumflexSmall, IDiaeresisSmall,
	OGraveSmall, OAcuteSmall, OCircumflexSmall, ODiaeresisSmall,
	UGraveSmall, UAcuteSmall, UCircumflexSmall, UDiaeresisSmall,
)

// Seanchlo is the domain of the special characters of Gaelic type.
var Seanchlo = NewDomain("seanchló",
	DottedCCapital, DottedCSmall, DottedGCapital, DottedGSmall,
	LongS, SeanchloR,
	DottedBCapital, DottedBSmall, DottedDCapital, DottedDSmall,
	DottedFCapital, DottedFSmall, DottedMCapital, DottedMSmall,
	DottedPCapital, DottedPSmall, DottedSCapital, DottedSSmall,
	DottedTCapital, DottedTSmall,
	DottedLongS, TironianEt,
)

var acuteVowels = map[rune]LCI{
	'A': AAcuteCapital, 'E': EAcuteCapital, 'I': IAcuteCapital,
	'O': OAcuteCapital, 'U': UAcuteCapital,
	'a': AAcuteSmall, 'e': EAcuteSmall, 'i': IAcuteSmall,
	'o': OAcuteSmall, 'u': UAcuteSmall,
}

var dottedConsonants = map[rune]LCI{
	'B': DottedBCapital, 'C': DottedCCapital, 'D': DottedDCapital,
	'F': DottedFCapital, 'G': DottedGCapital, 'M': DottedMCapital,
	'P': DottedPCapital, 'T': DottedTCapital, 'S': DottedSCapital,
	'b': DottedBSmall, 'c': DottedCSmall, 'd': DottedDSmall,
	'f': DottedFSmall, 'g': DottedGSmall, 'm': DottedMSmall,
	'p': DottedPSmall, 't': DottedTSmall,
}

// AcuteVowel returns the LCI for vowel r with an acute accent (fada).
func AcuteVowel(r rune) (LCI, bool) {
	lci, ok := acuteVowels[r]
	return lci, ok
}

// DottedConsonant returns the LCI for consonant r with a dot above
// (séimhiú). Lowercase s is not covered, as it has a long and a short
// dotted form.
func DottedConsonant(r rune) (LCI, bool) {
	lci, ok := dottedConsonants[r]
	return lci, ok
}
