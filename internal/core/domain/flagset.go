package domain

import (
	"strings"
)

// Flag is a single GN build argument.
type Flag struct {
	Key   string
	Value string
}

// FlagSet is an ordered mapping of GN flag names to serialized values.
// Setting an existing key replaces its value and keeps its first position.
type FlagSet struct {
	keys   []string
	values map[string]string
}

// NewFlagSet builds a FlagSet from flags in order.
func NewFlagSet(flags ...Flag) FlagSet {
	var fs FlagSet
	for _, f := range flags {
		fs.Set(f.Key, f.Value)
	}
	return fs
}

// Set assigns value to key.
func (fs *FlagSet) Set(key, value string) {
	if fs.values == nil {
		fs.values = make(map[string]string)
	}
	if _, ok := fs.values[key]; !ok {
		fs.keys = append(fs.keys, key)
	}
	fs.values[key] = value
}

// Get returns the value for key.
func (fs FlagSet) Get(key string) (string, bool) {
	v, ok := fs.values[key]
	return v, ok
}

// Len returns the number of flags.
func (fs FlagSet) Len() int {
	return len(fs.keys)
}

// Keys returns the flag names in order.
func (fs FlagSet) Keys() []string {
	out := make([]string, len(fs.keys))
	copy(out, fs.keys)
	return out
}

// Flags returns the flags in order.
func (fs FlagSet) Flags() []Flag {
	out := make([]Flag, 0, len(fs.keys))
	for _, k := range fs.keys {
		out = append(out, Flag{Key: k, Value: fs.values[k]})
	}
	return out
}

// Clone returns an independent copy.
func (fs FlagSet) Clone() FlagSet {
	return NewFlagSet(fs.Flags()...)
}

// Merge applies other over fs. Keys in other win.
func (fs *FlagSet) Merge(other FlagSet) {
	for _, f := range other.Flags() {
		fs.Set(f.Key, f.Value)
	}
}

// Layer merges layers from lowest to highest precedence into a new FlagSet.
func Layer(layers ...FlagSet) FlagSet {
	var out FlagSet
	for _, l := range layers {
		out.Merge(l)
	}
	return out
}

// Render serializes the set as key=value entries, each followed by delim.
func (fs FlagSet) Render(delim string) string {
	var b strings.Builder
	for _, k := range fs.keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fs.values[k])
		b.WriteString(delim)
	}
	return b.String()
}

// ParseFlagLines parses the lines of a GN flags file.
// Each line is split on its first '='; blank lines and '#' comments are ignored.
func ParseFlagLines(lines []string) FlagSet {
	var fs FlagSet
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, _ := strings.Cut(line, "=")
		fs.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return fs
}

// ParseGNOverrides parses a ';'-delimited list of key=value overrides.
// Pieces that are not exactly one key and one value are dropped.
func ParseGNOverrides(raw string) FlagSet {
	var fs FlagSet
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fs
	}
	for _, piece := range strings.Split(raw, ";") {
		kv := strings.Split(piece, "=")
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		fs.Set(key, strings.TrimSpace(kv[1]))
	}
	return fs
}

// Quote wraps a GN string value in double quotes.
func Quote(s string) string {
	return `"` + s + `"`
}
