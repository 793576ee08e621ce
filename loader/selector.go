package loader

import "strings"

// Reserved dataset names and markers.
const (
	// TimeKey is the record key holding the resampled time axis.
	TimeKey = "t"
	// ReferenceKey names the dataset the time axis is derived from.
	ReferenceKey = "ts_group_0"
	// TimeRefPrefix marks time-reference datasets, which are never output as signals.
	TimeRefPrefix = "ts_"
	// NamespaceSeparator separates a dataset's namespace from its signal name.
	NamespaceSeparator = "."
)

// SelectorKind identifies how a Selector picks datasets.
type SelectorKind int

const (
	// SelectAll selects every dataset that is not a time reference.
	SelectAll SelectorKind = iota
	// SelectSingle selects the first dataset whose name contains one substring.
	SelectSingle
	// SelectNamed selects one dataset per (output name, substring) pair.
	SelectNamed
)

func (k SelectorKind) String() string {
	switch k {
	case SelectAll:
		return "all"
	case SelectSingle:
		return "single"
	case SelectNamed:
		return "named"
	default:
		return "unknown"
	}
}

// Pair binds an output signal name to the substring used to find its dataset.
type Pair struct {
	Name  string
	Match string
}

// Selector describes which datasets a load outputs. The zero value selects all.
type Selector struct {
	kind  SelectorKind
	pairs []Pair
}

// All selects every dataset not prefixed with TimeRefPrefix. Output names are the
// dataset names with their namespace stripped.
func All() Selector {
	return Selector{kind: SelectAll}
}

// Single selects the first dataset, in enumeration order, whose name contains
// name. The output is keyed by name itself. An empty name selects all.
func Single(name string) Selector {
	if name == "" {
		return All()
	}

	return Selector{kind: SelectSingle, pairs: []Pair{{Name: name, Match: name}}}
}

// Named selects one dataset per pair. No pairs selects all.
func Named(pairs ...Pair) Selector {
	if len(pairs) == 0 {
		return All()
	}

	return Selector{kind: SelectNamed, pairs: append([]Pair(nil), pairs...)}
}

// Names selects one dataset per name, each name serving as its own substring.
// No names selects all.
func Names(names ...string) Selector {
	if len(names) == 0 {
		return All()
	}

	pairs := make([]Pair, len(names))
	for i, name := range names {
		pairs[i] = Pair{Name: name, Match: name}
	}

	return Selector{kind: SelectNamed, pairs: pairs}
}

// Kind returns the selection mode.
func (s Selector) Kind() SelectorKind {
	return s.kind
}

// Pairs returns a copy of the configured pairs. It is empty for All.
func (s Selector) Pairs() []Pair {
	return append([]Pair(nil), s.pairs...)
}

// binding is one resolved output signal. key is empty when nothing matched.
type binding struct {
	name string
	key  string
}

func (b binding) found() bool {
	return b.key != ""
}

// resolve maps the selector onto the dataset names of one container.
func (s Selector) resolve(keys []string) []binding {
	if s.kind == SelectAll {
		out := make([]binding, 0, len(keys))
		for _, key := range keys {
			if strings.HasPrefix(key, TimeRefPrefix) {
				continue
			}
			out = append(out, binding{name: SignalName(key), key: key})
		}

		return out
	}

	out := make([]binding, len(s.pairs))
	for i, p := range s.pairs {
		out[i] = binding{name: p.Name, key: firstMatch(keys, p.Match)}
	}

	return out
}

func firstMatch(keys []string, sub string) string {
	for _, key := range keys {
		if strings.Contains(key, sub) {
			return key
		}
	}

	return ""
}

// SignalName strips the namespace from a dataset name: "grp.sub.sig" becomes "sig".
func SignalName(key string) string {
	if i := strings.LastIndex(key, NamespaceSeparator); i >= 0 {
		return key[i+len(NamespaceSeparator):]
	}

	return key
}
