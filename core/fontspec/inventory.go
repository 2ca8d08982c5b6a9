package fontspec

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/textwriter/core"
)

// Inventory is the collection of fonts known to an application.
// It is safe for concurrent use.
type Inventory struct {
	sync.RWMutex
	fonts map[string]*TaggedFont
	names *trie.Trie // for prefix completion
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		fonts: make(map[string]*TaggedFont),
		names: trie.New(),
	}
}

// Add puts f into the inventory, if no font of the same name is present.
// It reports whether f has been added.
func (inv *Inventory) Add(f *TaggedFont) bool {
	if f == nil || f.Name == "" {
		tracer().Errorf("inventory cannot store unnamed font")
		return false
	}
	inv.Lock()
	defer inv.Unlock()
	return inv.add(f)
}

func (inv *Inventory) add(f *TaggedFont) bool {
	if _, ok := inv.fonts[f.Name]; ok {
		return false
	}
	tracer().Debugf("inventory adds font %s", f)
	inv.fonts[f.Name] = f
	inv.names.Add(f.Name, f)
	return true
}

// Font returns the font named name.
func (inv *Inventory) Font(name string) (*TaggedFont, error) {
	inv.RLock()
	defer inv.RUnlock()
	if f, ok := inv.fonts[NormalizeName(name)]; ok {
		return f, nil
	}
	return nil, core.Error(core.EMISSING, "font not found: %s", name)
}

// Specifiers returns the font specifiers for font name. An unknown font
// is described by its name only.
func (inv *Inventory) Specifiers(name string) []string {
	f, err := inv.Font(name)
	if err != nil {
		return []string{NormalizeName(name)}
	}
	return f.Specifiers()
}

// Names returns the sorted names of all fonts.
func (inv *Inventory) Names() []string {
	inv.RLock()
	defer inv.RUnlock()
	names := make([]string, 0, len(inv.fonts))
	for n := range inv.fonts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Complete returns the sorted names of all fonts starting with prefix.
func (inv *Inventory) Complete(prefix string) []string {
	inv.RLock()
	defer inv.RUnlock()
	names := inv.names.PrefixSearch(NormalizeName(prefix))
	sort.Strings(names)
	return names
}

// Len returns the number of fonts in the inventory.
func (inv *Inventory) Len() int {
	inv.RLock()
	defer inv.RUnlock()
	return len(inv.fonts)
}

// Clear removes all fonts.
func (inv *Inventory) Clear() {
	inv.Lock()
	defer inv.Unlock()
	inv.fonts = make(map[string]*TaggedFont)
	inv.names = trie.New()
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// LoadDir adds the font files of directory dir, tagged with the attributes
// from the directory's attribute file. Sub-directories are not searched.
// It returns the number of fonts added.
func (inv *Inventory) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, core.WrapError(err, core.EMISSING, "font directory cannot be read: %s", dir)
	}
	at := make(AttributeTable)
	if af, err := os.Open(filepath.Join(dir, AttributesFileName)); err == nil {
		at, err = ParseAttributes(af)
		af.Close()
		if err != nil {
			return 0, err
		}
	}
	var fonts []*TaggedFont
	for _, e := range entries {
		if e.IsDir() || !isFontFile(e.Name()) {
			continue
		}
		fonts = append(fonts, FontFromFile(filepath.Join(dir, e.Name()), at.For(e.Name())))
	}
	n := 0
	inv.Lock()
	defer inv.Unlock()
	for _, f := range fonts {
		if inv.add(f) {
			n++
		}
	}
	tracer().Infof("loaded %d fonts from %s", n, dir)
	return n, nil
}

// LoadDirRecursive calls LoadDir for dir and all directories below it.
func (inv *Inventory) LoadDirRecursive(dir string) (int, error) {
	total := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		n, err := inv.LoadDir(path)
		total += n
		return err
	})
	if err != nil && core.Code(err) == core.EINTERNAL {
		err = core.WrapError(err, core.EMISSING, "font directory cannot be searched: %s", dir)
	}
	return total, err
}

// AddSystemFonts adds the fonts installed on the system, tagged with
// SystemTag. If clear is set, the inventory is emptied first.
func (inv *Inventory) AddSystemFonts(clear bool) int {
	paths := findfont.List()
	if clear {
		inv.Clear()
	}
	n := 0
	inv.Lock()
	defer inv.Unlock()
	for _, p := range paths {
		if !isFontFile(p) {
			continue
		}
		if inv.add(FontFromFile(p, map[string]string{SystemTag: "1"})) {
			n++
		}
	}
	tracer().Infof("added %d system fonts", n)
	return n
}

// LoadConfigured loads fonts as set up in a configuration:
// key 'fontdirs' holds a list of directories, separated by the OS path list
// separator; key 'systemfonts' set to "true" adds the installed system fonts.
func (inv *Inventory) LoadConfigured(conf schuko.Configuration) (int, error) {
	total := 0
	if dirs := conf.GetString("fontdirs"); dirs != "" {
		for _, dir := range filepath.SplitList(dirs) {
			n, err := inv.LoadDir(dir)
			total += n
			if err != nil {
				return total, err
			}
		}
	}
	if v := strings.ToLower(conf.GetString("systemfonts")); v == "true" || v == "1" {
		total += inv.AddSystemFonts(false)
	}
	return total, nil
}
