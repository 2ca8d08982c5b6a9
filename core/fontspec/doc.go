/*
Package fontspec keeps an inventory of fonts tagged with attributes and
describes each font as an ordered list of font specifiers.

A font specifier is a string identifying a font by exact name, by family,
or by an attribute tag such as "system" or "Unicode". Code maps for
transliteration are registered under specifiers, so the list

	Seanchlo-Bold, Seanchlo, gaelic, system

finds maps for the exact font first and maps for all Gaelic fonts last.

Attributes are assigned to fonts of a directory by a file named
`.font.attributes` in that directory. Each line has the form

	key=value:filename1:filename2...

and assigns key=value to the fonts loaded from the listed files. The value
may be enclosed in double quotes, e.g. if it contains a colon. A line
without filenames applies to every font in the directory.

Font files are never parsed; names, families, styles and weights are
guessed from file names.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontspec

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'textwriter.fonts'
func tracer() tracing.Trace {
	return tracing.Select("textwriter.fonts")
}
