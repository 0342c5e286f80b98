package manifest

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Document is a parsed manifest held as a generic key/value tree.
//
// Documents built with [ParseDocument] remember the order in which keys
// appear in the TOML source, which is what makes "first entry in document
// order wins" well-defined. Documents built with [NewDocument] from an
// existing map have no source to take order from; their tables iterate in
// sorted key order for determinism.
//
// A Document is read-only after construction.
type Document struct {
	root  map[string]any
	order map[string][]string // table path -> child keys in source order
}

// ParseDocument decodes raw TOML data into a Document, preserving source
// order of the keys in every table.
func ParseDocument(data []byte) (*Document, error) {
	var root map[string]any
	md, err := toml.Decode(string(data), &root)
	if err != nil {
		return nil, err
	}

	order := make(map[string][]string)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) == 0 {
			continue
		}
		full := pathKey(key)
		if seen[full] {
			continue
		}
		seen[full] = true
		parent := pathKey(key[:len(key)-1])
		order[parent] = append(order[parent], key[len(key)-1])
	}

	return &Document{root: root, order: order}, nil
}

// NewDocument wraps an already-built key/value tree. Nested tables must be
// map[string]any values, as produced by generic TOML decoding.
func NewDocument(root map[string]any) *Document {
	return &Document{root: root}
}

// Table returns the table at the given path, descending through nested
// tables. The empty path returns the document root. ok is false when any
// path element is missing or is not a table.
func (d *Document) Table(path ...string) (Table, bool) {
	cur := d.root
	for _, p := range path {
		v, ok := cur[p]
		if !ok {
			return Table{}, false
		}
		next, ok := v.(map[string]any)
		if !ok {
			return Table{}, false
		}
		cur = next
	}
	return Table{data: cur, keys: d.tableKeys(path, cur)}, true
}

// tableKeys returns the iteration order for the table at path: source order
// when recorded, sorted keys otherwise.
func (d *Document) tableKeys(path []string, data map[string]any) []string {
	if recorded, ok := d.order[pathKey(path)]; ok {
		keys := make([]string, 0, len(data))
		for _, k := range recorded {
			if _, ok := data[k]; ok {
				keys = append(keys, k)
			}
		}
		return keys
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// pathKey flattens a key path into a single map key. TOML keys may contain
// dots and quotes, so the separator must be a byte no key can contain.
func pathKey(parts []string) string {
	return strings.Join(parts, "\x00")
}

// Table is an ordered view of one table inside a Document.
type Table struct {
	data map[string]any
	keys []string
}

// Keys returns the table's entry keys in iteration order.
func (t Table) Keys() []string {
	return t.keys
}

// Get returns the raw value for key.
func (t Table) Get(key string) (any, bool) {
	v, ok := t.data[key]
	return v, ok
}

// GetString returns the value for key when it is a string.
func (t Table) GetString(key string) (string, bool) {
	s, ok := t.data[key].(string)
	return s, ok
}

// Len returns the number of entries in the table.
func (t Table) Len() int {
	return len(t.data)
}
