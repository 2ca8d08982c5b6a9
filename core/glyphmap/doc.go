/*
Package glyphmap maps logical characters to the glyph code points of
specific fonts.

A logical character identifier (LCI) names a character as perceived by a
reader, e.g. "a with acute accent", regardless of where a font keeps the
glyph for it. Wherever possible LCIs are Unicode code points, so
`AAcuteSmall` is 0x00E1.

Many decorative fonts, in particular the Seanchló fonts for Irish, do not
follow Unicode code-point order for their special glyphs. A CharacterCodeMap
remedies this: it is valid for one font or font class and holds overrides
from LCIs to the font's actual code points. Each map answers for a fixed,
sorted set of LCIs, its Domain.

A Registry holds code maps keyed by font specifier (font name, family or
attribute tag) and resolves an ordered priority list of maps for a font:

	reg := glyphmap.NewRegistry()
	cmap := glyphmap.NewSeanchloMap("Seanchló")
	cmap.Set(glyphmap.DottedBSmall, 0x1e03)
	reg.Register(cmap)
	maps := reg.Resolve("Seanchló", "Seanchlo Family", "Unicode")

Maps registered under UniversalKey are appended to every priority list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphmap

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textwriter.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("textwriter.glyphs")
}
