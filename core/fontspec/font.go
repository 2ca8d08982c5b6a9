package fontspec

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/text/unicode/norm"
)

// Well-known attribute tags.
const (
	SystemTag  = "system"
	UnicodeTag = "Unicode"
)

// TaggedFont is a font associated with zero or more key-value attributes.
type TaggedFont struct {
	Name       string // exact font name
	Family     string
	Path       string // file path, if loaded from a file
	Style      xfont.Style
	Weight     xfont.Weight
	Attributes map[string]string
}

// Specifiers returns the font specifiers for f, most specific first: the
// font name, the family name, then the attribute keys in sorted order.
func (f *TaggedFont) Specifiers() []string {
	specs := make([]string, 0, 2+len(f.Attributes))
	seen := make(map[string]bool)
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			specs = append(specs, s)
		}
	}
	add(f.Name)
	add(f.Family)
	tags := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		add(tag)
	}
	return specs
}

// HasTag is true if attribute tag is set for f.
func (f *TaggedFont) HasTag(tag string) bool {
	_, ok := f.Attributes[tag]
	return ok
}

func (f *TaggedFont) String() string {
	return fmt.Sprintf("%s [family=%s, style=%d, weight=%d, %v]",
		f.Name, f.Family, f.Style, f.Weight, f.Attributes)
}

// FontFromFile creates a tagged font from a font file path, guessing its
// name, family, style and weight from the file name. attrs is copied.
func FontFromFile(path string, attrs map[string]string) *TaggedFont {
	base := filepath.Base(path)
	name := NormalizeName(strings.TrimSuffix(base, filepath.Ext(base)))
	style, weight := GuessStyleAndWeight(base)
	f := &TaggedFont{
		Name:       name,
		Family:     guessFamily(name),
		Path:       path,
		Style:      style,
		Weight:     weight,
		Attributes: make(map[string]string, len(attrs)+1),
	}
	for k, v := range attrs {
		f.Attributes[k] = v
	}
	if strings.Contains(f.Family, UnicodeTag) {
		f.Attributes[UnicodeTag] = "1"
	}
	return f
}

// NormalizeName trims a font name and puts it into Unicode NFC.
// File systems may hand out names in decomposed form, e.g. "Seanchló".
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

var variantSuffixes = map[string]bool{
	"light": true, "xlight": true, "normal": true, "medium": true,
	"regular": true, "r": true, "bold": true, "b": true, "xbold": true,
	"black": true, "italic": true, "i": true, "oblique": true,
	"bolditalic": true, "bi": true,
}

// guessFamily strips a trailing variant from a font name,
// e.g. "Seanchlo-Bold" → "Seanchlo".
func guessFamily(name string) string {
	if i := strings.LastIndex(name, "-"); i > 0 {
		if variantSuffixes[strings.ToLower(name[i+1:])] {
			return name[:i]
		}
	}
	return name
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = filepath.Base(fontfilename)
	ext := filepath.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") {
		style = xfont.StyleItalic
	} else if strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleOblique
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}
