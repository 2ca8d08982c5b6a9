package fontspec

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/textwriter/core"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

const attrFile = `
# font classes
gaelic=1:Seanchlo-Bold.ttf:Bunchlo.ttf
foundry="Ellipsix: Type"
vendor=:Bunchlo.ttf
=nokey
malformed line
`

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.fonts")
	defer teardown()
	//
	at, err := ParseAttributes(strings.NewReader(attrFile))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, map[string]string{"foundry": "Ellipsix: Type"}, at[""])
	assert.Equal(t, map[string]string{"gaelic": "1"}, at["Seanchlo-Bold.ttf"])
	assert.Equal(t, map[string]string{"gaelic": "1", "vendor": ""}, at["Bunchlo.ttf"])
	assert.Len(t, at, 3)
	assert.Equal(t, map[string]string{
		"gaelic":  "1",
		"vendor":  "",
		"foundry": "Ellipsix: Type",
	}, at.For("Bunchlo.ttf"))
	assert.Equal(t, map[string]string{"foundry": "Ellipsix: Type"}, at.For("Arial.ttf"))
}

func TestGuessStyleAndWeight(t *testing.T) {
	for k, v := range map[string][2]int{
		"fonts/Seanchlo-bold.ttf":   {int(xfont.StyleNormal), int(xfont.WeightBold)},
		"Gill Sans Bold Italic.ttf": {int(xfont.StyleItalic), int(xfont.WeightBold)},
		"Bunchlo.ttf":               {int(xfont.StyleNormal), int(xfont.WeightNormal)},
		"Bunchlo-Light.otf":         {int(xfont.StyleNormal), int(xfont.WeightLight)},
	} {
		style, weight := GuessStyleAndWeight(k)
		if int(style) != v[0] || int(weight) != v[1] {
			t.Errorf("expected different style or weight for %s: %d, %d", k, style, weight)
		}
	}
}

func TestFontFromFile(t *testing.T) {
	f := FontFromFile("/fonts/Seanchlo-Bold.ttf", map[string]string{"gaelic": "1", "system": "1"})
	assert.Equal(t, "Seanchlo-Bold", f.Name)
	assert.Equal(t, "Seanchlo", f.Family)
	assert.Equal(t, xfont.WeightBold, f.Weight)
	assert.Equal(t, []string{"Seanchlo-Bold", "Seanchlo", "gaelic", "system"}, f.Specifiers())
	//
	u := FontFromFile("Arial Unicode.ttf", nil)
	assert.True(t, u.HasTag(UnicodeTag))
	assert.Equal(t, []string{"Arial Unicode", UnicodeTag}, u.Specifiers())
}

func TestNormalizeName(t *testing.T) {
	decomposed := "Seanchlo\u0301 " // o + combining acute
	assert.Equal(t, "Seanchl\u00f3", NormalizeName(decomposed))
}

func writeFontDir(t *testing.T) string {
	dir := t.TempDir()
	for _, fn := range []string{"Seanchlo-Bold.ttf", "Bunchlo.TTF", "Readme.txt", "Arial Unicode.otf"} {
		if err := os.WriteFile(filepath.Join(dir, fn), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	af := "gaelic=1:Seanchlo-Bold.ttf:Bunchlo.TTF\nloaded=dir\n"
	if err := os.WriteFile(filepath.Join(dir, AttributesFileName), []byte(af), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestInventoryLoadDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.fonts")
	defer teardown()
	//
	dir := writeFontDir(t)
	inv := NewInventory()
	n, err := inv.LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Arial Unicode", "Bunchlo", "Seanchlo-Bold"}, inv.Names())
	f, err := inv.Font("Seanchlo-Bold")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"Seanchlo-Bold", "Seanchlo", "gaelic", "loaded"}, f.Specifiers())
	assert.Equal(t, []string{"Arial Unicode", UnicodeTag, "loaded"}, inv.Specifiers("Arial Unicode"))
	// loading again adds nothing
	n, _ = inv.LoadDir(dir)
	assert.Equal(t, 0, n)
}

func TestInventoryMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.fonts")
	defer teardown()
	//
	inv := NewInventory()
	_, err := inv.Font("Nonexistent")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, []string{"Nonexistent"}, inv.Specifiers("Nonexistent"))
	_, err = inv.LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.False(t, inv.Add(&TaggedFont{}))
}

func TestInventoryComplete(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.fonts")
	defer teardown()
	//
	inv := NewInventory()
	for _, n := range []string{"Seanchló", "Seanchlo-Bold", "Bunchló"} {
		assert.True(t, inv.Add(&TaggedFont{Name: n}))
	}
	assert.False(t, inv.Add(&TaggedFont{Name: "Bunchló"}))
	assert.Equal(t, []string{"Seanchlo-Bold", "Seanchló"}, inv.Complete("Sean"))
	assert.Equal(t, []string{"Bunchló"}, inv.Complete("Bunchló"))
	assert.Empty(t, inv.Complete("X"))
	assert.Equal(t, 3, inv.Len())
	inv.Clear()
	assert.Equal(t, 0, inv.Len())
}

func TestInventoryLoadConfigured(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.fonts")
	defer teardown()
	//
	dir := writeFontDir(t)
	inv := NewInventory()
	n, err := inv.LoadConfigured(testconfig.Conf{
		"fontdirs": dir,
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestInventoryLoadDirRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textwriter.fonts")
	defer teardown()
	//
	root := t.TempDir()
	sub := filepath.Join(root, "gaelic")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(root, "Bunchlo.ttf"), []byte("x"), 0644)
	os.WriteFile(filepath.Join(sub, "Seanchlo.ttf"), []byte("x"), 0644)
	inv := NewInventory()
	n, err := inv.LoadDirRecursive(root)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
