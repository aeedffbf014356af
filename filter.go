// Package logfilter parses log-filter directive strings and answers, per
// module path and severity level, whether a record should be emitted.
//
// A directive string is a comma-separated list of clauses. A clause is either
// a bare level name ("debug"), which sets a global minimum for modules with no
// rule of their own, or a module=level pair ("net::dns=trace"). Module paths
// are hierarchical, delimited by "::"; a rule for "net" covers "net::dns"
// unless a more specific rule exists.
package logfilter

import (
	"os"
	"strings"
)

// DefaultEnvVar is the environment variable consulted by FromEnv when no
// variable name is given.
const DefaultEnvVar = "LOG_FILTER"

// Kind identifies the internal representation of a FilterSet.
type Kind int

const (
	// KindDefault holds no rules and no minimum; nothing ever logs.
	KindDefault Kind = iota
	// KindBlanket holds no per-module rules, only a global minimum.
	KindBlanket
	// KindList holds a small rule set in a linearly scanned slice.
	KindList
	// KindMap holds a large rule set keyed by module path.
	KindMap
)

// rule pairs a module path with its severity threshold.
type rule struct {
	module string
	level  Level
}

// listMax is the rule count at which the representation switches from List to
// Map. Scanning a short slice beats hashing overhead.
const listMax = 15

// FilterSet is a parsed, queryable set of per-module level filters. It is
// immutable after construction and may be shared by any number of concurrent
// readers without synchronization.
type FilterSet struct {
	kind    Kind
	list    []rule
	index   map[string]Level
	minimum Level
	hasMin  bool
}

// FromEnv builds a FilterSet from the directive string held in the named
// environment variable. An empty name falls back to DefaultEnvVar. An unset
// variable behaves like an empty directive string and matches nothing.
func FromEnv(name string) *FilterSet {
	if name == "" {
		name = DefaultEnvVar
	}
	return Parse(os.Getenv(name))
}

// Kind reports which internal representation the FilterSet uses.
func (f *FilterSet) Kind() Kind {
	return f.kind
}

// Minimum returns the global fallback threshold, if one was configured.
func (f *FilterSet) Minimum() (Level, bool) {
	return f.minimum, f.hasMin
}

// IsEnabled reports whether a record logged by module at the requested level
// should be emitted. When no threshold resolves for the module, nothing logs.
func (f *FilterSet) IsEnabled(module string, requested Level) bool {
	threshold, ok := f.FindModule(module)
	return ok && threshold.Enables(requested)
}

// FindModule resolves the severity threshold for a module path.
//
// Resolution prefers an exact match, then progressively shorter prefixes of
// the path truncated at "::" boundaries ("a::b::c" falls back to "a::b", then
// "a"), and finally the global minimum. The boolean is false when nothing
// resolves.
func (f *FilterSet) FindModule(module string) (Level, bool) {
	switch f.kind {
	case KindDefault:
		return Off, false
	case KindBlanket:
		return f.minimum, f.hasMin
	}

	for target := module; ; {
		if level, ok := f.findExact(target); ok {
			return level, true
		}
		sep := strings.LastIndex(target, "::")
		if sep < 0 {
			break
		}
		target = target[:sep]
	}

	return f.minimum, f.hasMin
}

// findExact matches the module path character-for-character against the
// stored rules. List rules are scanned in insertion order, so the first
// occurrence of a duplicated module wins.
func (f *FilterSet) findExact(module string) (Level, bool) {
	if f.kind == KindList {
		for _, r := range f.list {
			if r.module == module {
				return r.level, true
			}
		}
		return Off, false
	}
	level, ok := f.index[module]
	return level, ok
}
