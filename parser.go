package logfilter

import (
	"strings"
)

// Parse builds a FilterSet from a comma-separated directive string.
//
// Each directive is either a bare level name ("debug"), which raises the
// global minimum, or a module=level pair ("net::dns=trace"). The level side
// is case-insensitive. Malformed directives are dropped individually; Parse
// never fails, so a typo in one directive cannot disable the rest of the
// string. No whitespace is trimmed: stray spaces become part of module names
// and invalidate level names.
func Parse(input string) *FilterSet {
	var (
		rules   []rule
		minimum Level
		hasMin  bool
	)

	for _, directive := range strings.Split(input, ",") {
		module, value, pair := strings.Cut(directive, "=")
		if pair {
			if module == "" {
				continue
			}
			level, ok := ParseLevel(value)
			if !ok {
				continue
			}
			rules = append(rules, rule{module: module, level: level})
			continue
		}

		// Bare directives raise the global minimum. "off" is excluded so a
		// stray "off" cannot silence an explicitly requested minimum.
		level, ok := ParseLevel(directive)
		if !ok || level == Off {
			continue
		}
		if !hasMin || level > minimum {
			minimum = level
			hasMin = true
		}
	}

	f := &FilterSet{minimum: minimum, hasMin: hasMin}
	switch {
	case len(rules) == 0 && !hasMin:
		f.kind = KindDefault
	case len(rules) == 0:
		f.kind = KindBlanket
	case len(rules) < listMax:
		f.kind = KindList
		f.list = rules
	default:
		f.kind = KindMap
		f.index = make(map[string]Level, len(rules))
		for _, r := range rules {
			// First occurrence wins, matching the List scan order.
			if _, dup := f.index[r.module]; !dup {
				f.index[r.module] = r.level
			}
		}
	}
	return f
}
