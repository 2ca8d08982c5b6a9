package glyphmap

import (
	"sort"
	"sync"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// UniversalKey is the font specifier for maps which apply to every font.
const UniversalKey = ""

// Registry holds character code maps, keyed by the font specifier they
// are valid for. A key may hold any number of maps; within a key, maps
// keep the order in which they have been registered.
//
// A Registry is safe for concurrent use. Readers never observe a
// partially applied update.
type Registry struct {
	sync.RWMutex
	maps map[string]*linkedhashset.Set
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		maps: make(map[string]*linkedhashset.Set),
	}
}

// Register adds cmap under the key cmap.FontKey(). Registering the same map
// twice has no effect.
func (reg *Registry) Register(cmap CharacterCodeMap) {
	if cmap == nil {
		tracer().Errorf("registry cannot store null code map")
		return
	}
	key := cmap.FontKey()
	reg.Lock()
	defer reg.Unlock()
	set, ok := reg.maps[key]
	if !ok {
		set = linkedhashset.New()
		reg.maps[key] = set
	}
	set.Add(cmap)
	tracer().Debugf("registry stores code map for %q (%d maps for key)", key, set.Size())
}

// Unregister removes cmap from the key cmap.FontKey(). Removing a map which
// is not registered is a no-op.
func (reg *Registry) Unregister(cmap CharacterCodeMap) {
	if cmap == nil {
		return
	}
	key := cmap.FontKey()
	reg.Lock()
	defer reg.Unlock()
	set, ok := reg.maps[key]
	if !ok || !set.Contains(cmap) {
		return
	}
	set.Remove(cmap)
	if set.Empty() {
		delete(reg.maps, key)
	}
	tracer().Debugf("registry removed code map for %q", key)
}

// Resolve returns the priority list of code maps for a font described by
// specs, most specific first. It holds all maps registered under specs[0],
// then all maps under specs[1] and so on, followed by the universal maps.
//
// The returned slice belongs to the caller.
func (reg *Registry) Resolve(specs ...string) []CharacterCodeMap {
	reg.RLock()
	defer reg.RUnlock()
	var maps []CharacterCodeMap
	for _, spec := range specs {
		maps = reg.appendMaps(maps, spec)
	}
	return reg.appendMaps(maps, UniversalKey)
}

func (reg *Registry) appendMaps(maps []CharacterCodeMap, key string) []CharacterCodeMap {
	set, ok := reg.maps[key]
	if !ok {
		return maps
	}
	for _, v := range set.Values() {
		maps = append(maps, v.(CharacterCodeMap))
	}
	return maps
}

// MapsFor returns the maps registered under key, without universal maps.
func (reg *Registry) MapsFor(key string) []CharacterCodeMap {
	reg.RLock()
	defer reg.RUnlock()
	return reg.appendMaps(nil, key)
}

// Keys returns the sorted list of font specifiers with registered maps.
func (reg *Registry) Keys() []string {
	reg.RLock()
	defer reg.RUnlock()
	keys := make([]string, 0, len(reg.maps))
	for k := range reg.maps {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of registered maps.
func (reg *Registry) Len() int {
	reg.RLock()
	defer reg.RUnlock()
	n := 0
	for _, set := range reg.maps {
		n += set.Size()
	}
	return n
}

// LogMaps dumps the registered code maps to the trace (log-level Info).
func (reg *Registry) LogMaps() {
	reg.RLock()
	defer reg.RUnlock()
	tracer().Infof("--- registered code maps ---")
	for k, set := range reg.maps {
		for _, v := range set.Values() {
			if cm, ok := v.(*CodeMap); ok {
				tracer().Infof("code map [%s] = %s", k, cm.domain.name)
			} else {
				tracer().Infof("code map [%s] = %T", k, v)
			}
		}
	}
	tracer().Infof("----------------------------")
}
