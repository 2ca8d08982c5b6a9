package fontspec

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/npillmayer/textwriter/core"
)

// AttributesFileName is the name of the attribute file in a font directory.
const AttributesFileName = ".font.attributes"

// AttributeTable holds attributes per font file name. Attributes for every
// font of a directory are stored under the empty file name.
type AttributeTable map[string]map[string]string

// For returns the attributes for font file filename, including the
// attributes applying to all fonts. The result is a fresh map.
func (at AttributeTable) For(filename string) map[string]string {
	attrs := make(map[string]string)
	for k, v := range at[""] {
		attrs[k] = v
	}
	for k, v := range at[filename] {
		attrs[k] = v
	}
	return attrs
}

func (at AttributeTable) set(filename, key, value string) {
	attrs, ok := at[filename]
	if !ok {
		attrs = make(map[string]string)
		at[filename] = attrs
	}
	attrs[key] = value
}

var attrLine = regexp.MustCompile(`^([^=]+)=("[^"]*"|[^:]*)((?::[^:]+)*)$`)

// ParseAttributes reads an attribute file. Blank lines and lines starting
// with '#' are ignored, as are malformed lines.
func ParseAttributes(r io.Reader) (AttributeTable, error) {
	at := make(AttributeTable)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := attrLine.FindStringSubmatch(line)
		if m == nil {
			tracer().Infof("ignoring malformed font attribute in line %d: %s", lineno, line)
			continue
		}
		key, value := strings.TrimSpace(m[1]), m[2]
		if key == "" {
			tracer().Infof("ignoring font attribute without key in line %d", lineno)
			continue
		}
		if len(value) >= 2 && strings.HasPrefix(value, `"`) {
			value = value[1 : len(value)-1]
		}
		if m[3] == "" {
			at.set("", key, value)
			continue
		}
		for _, fn := range strings.Split(m[3][1:], ":") {
			at.set(fn, key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return at, core.WrapError(err, core.EINVALID, "font attribute file cannot be read")
	}
	return at, nil
}
