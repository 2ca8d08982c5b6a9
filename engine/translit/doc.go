/*
Package translit converts plain-ASCII input with escape sequences into
the code points a given font expects.

Authors write Gaelic text with a small set of escapes:

	\'a   a with acute accent (fada), for any of a e i o u A E I O U
	\.b   dotted consonant (séimhiú), for b c d f g m p s t and capitals
	\s    long s
	\.\s  dotted long s
	\r    r rotunda-like glyph
	&     Tironian et
	\\    a literal backslash

The code points for these characters are looked up in the character code
maps a glyphmap.Registry resolves for the font. If no map provides a glyph,
the letter is written as is, so

	\.bán  →  ḃán   (with a map providing DottedBSmall)
	\.bán  →  bán   (without)

Unknown escapes are dropped, leaving the escaped character.
Translation never fails on malformed input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package translit

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textwriter.translit'
func tracer() tracing.Trace {
	return tracing.Select("textwriter.translit")
}
