package gcontract

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// RuleSet decides which named scopes of diagnostics are switched on.
//
// Scopes are dot-separated paths such as "store.index.rebuild".
// Rules are matched as follows:
//   - "*" enables every scope.
//   - "a.b.*" enables every scope below "a.b", but not "a.b" itself.
//     The wildcard may only be the last segment.
//   - "!a.b.c" excludes an exact scope from a wildcard match.
//     Exclusions may not contain wildcards.
//   - Any other rule is an exact match.
//
// Methods on RuleSet are safe for concurrent use,
// except UseCaching, which must be called before any other method if at all.
type RuleSet struct {
	// Segments of prefix rules, without the trailing wildcard.
	prefixes [][]string

	excludes [][]string
	exacts   [][]string

	// Nil cache means caching is disabled.
	mu    sync.RWMutex
	cache map[string]bool
}

// RuleError reports a single rule that could not be parsed.
type RuleError struct {
	Rule   string
	Reason string
}

func (e RuleError) Error() string {
	return fmt.Sprintf("invalid rule %q: %s", e.Rule, e.Reason)
}

// ParseRules parses a comma-separated list of rules.
// The empty string produces a RuleSet that enables nothing.
func ParseRules(in string) (*RuleSet, error) {
	var rs RuleSet
	if in == "" {
		// strings.Split would yield one empty rule.
		return &rs, nil
	}

	for _, r := range strings.Split(in, ",") {
		if err := rs.add(strings.TrimSpace(r)); err != nil {
			return nil, err
		}
	}
	rs.sort()

	return &rs, nil
}

// ReadRules reads one rule per line from r.
// Blank lines and lines starting with "#" are ignored.
// Parsing stops after five bad rules; all errors found so far are joined.
func ReadRules(r io.Reader) (*RuleSet, error) {
	var rs RuleSet

	s := bufio.NewScanner(r)
	// No sensible rule comes near the default 64k buffer.
	s.Buffer(make([]byte, 0, 512), 511)

	const errLimit = 5
	var errs []error
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := rs.add(line); err != nil {
			errs = append(errs, err)
			if len(errs) >= errLimit {
				errs = append(errs, fmt.Errorf("stopped parsing after %d errors", len(errs)))
				return nil, errors.Join(errs...)
			}
		}
	}
	if err := s.Err(); err != nil {
		errs = append(errs, fmt.Errorf("failed to read rules: %w", err))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	rs.sort()
	return &rs, nil
}

// MustParseRules is like [ParseRules] but panics on error.
// It is intended for rules written as literals.
func MustParseRules(in string) *RuleSet {
	rs, err := ParseRules(in)
	if err != nil {
		panic(err)
	}
	return rs
}

func (rs *RuleSet) add(r string) error {
	if r == "" {
		return RuleError{Rule: r, Reason: "empty rule"}
	}

	if strings.Contains(r, "..") {
		return RuleError{Rule: r, Reason: "dot-separated sections may not be empty"}
	}

	if strings.Contains(r, "!") {
		ex, ok := strings.CutPrefix(r, "!")
		if !ok {
			return RuleError{Rule: r, Reason: "! may only start a rule, marking an exclusion"}
		}
		if strings.Contains(ex, "*") {
			return RuleError{Rule: r, Reason: "exclusions may not contain wildcards"}
		}
		rs.excludes = append(rs.excludes, strings.Split(ex, "."))
		return nil
	}

	switch strings.Count(r, "*") {
	case 0:
		rs.exacts = append(rs.exacts, strings.Split(r, "."))
		return nil

	case 1:
		if r == "*" {
			// Zero segments: prefix of everything.
			rs.prefixes = append(rs.prefixes, []string{})
			return nil
		}

		p, ok := strings.CutSuffix(r, ".*")
		if !ok {
			return RuleError{Rule: r, Reason: "* is only allowed as the last segment"}
		}
		rs.prefixes = append(rs.prefixes, strings.Split(p, "."))
		return nil

	default:
		return RuleError{Rule: r, Reason: "at most one * is allowed, as the last segment"}
	}
}

// UseCaching makes rs remember the result of every scope it evaluates.
//
// UseCaching must be called before any concurrent use of rs.
// Once enabled, caching cannot be disabled.
func (rs *RuleSet) UseCaching() {
	if rs.cache != nil {
		panic(errors.New("BUG: UseCaching called twice"))
	}
	rs.cache = make(map[string]bool)
}

// Empty reports whether rs contains no enabling rules.
func (rs *RuleSet) Empty() bool {
	return len(rs.prefixes) == 0 && len(rs.exacts) == 0
}

// Enabled reports whether scope is switched on by rs.
//
// A prefix match is checked first, and then invalidated by any exact exclusion.
// Without a prefix match, Enabled reports whether an exact rule matches.
func (rs *RuleSet) Enabled(scope string) bool {
	if rs.Empty() {
		return false
	}

	if rs.cache == nil {
		return rs.enabled(scope)
	}

	if val, ok := rs.cached(scope); ok {
		return val
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	// Another writer may have filled it in while we waited for the lock.
	if val, ok := rs.cache[scope]; ok {
		return val
	}

	val := rs.enabled(scope)
	rs.cache[scope] = val
	return val
}

func (rs *RuleSet) cached(scope string) (val, ok bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	val, ok = rs.cache[scope]
	return val, ok
}

// enabled evaluates scope without touching the cache.
func (rs *RuleSet) enabled(scope string) bool {
	parts := strings.Split(scope, ".")

	prefixed := false
	for _, p := range rs.prefixes {
		if len(p) > len(parts)-1 {
			// Sorted by length; nothing further can be a strict prefix.
			break
		}
		if slices.Equal(p, parts[:len(p)]) {
			prefixed = true
			break
		}
	}

	if prefixed {
		for _, ex := range rs.excludes {
			if len(ex) < len(parts) {
				continue
			}
			if len(ex) > len(parts) {
				break
			}
			if slices.Equal(ex, parts) {
				return false
			}
		}
		return true
	}

	for _, exact := range rs.exacts {
		if len(exact) < len(parts) {
			continue
		}
		if len(exact) > len(parts) {
			return false
		}
		if slices.Equal(exact, parts) {
			return true
		}
	}

	return false
}

// sort orders each rule list shortest first, which enabled relies on.
func (rs *RuleSet) sort() {
	slices.SortStableFunc(rs.prefixes, bySegmentCount)
	slices.SortStableFunc(rs.excludes, bySegmentCount)
	slices.SortStableFunc(rs.exacts, bySegmentCount)
}

func bySegmentCount(a, b []string) int {
	return cmp.Compare(len(a), len(b))
}
