package mimetype

import "strings"

// Priority is the three-way comparator used to rank definitions that share
// a simplified form, most-preferred first. Across different simplified
// forms it degenerates to a plain string compare. The tie-break chain, each
// stage consulted only when the previous one is equal:
//
//  1. simplified form
//  2. registered before unregistered
//  3. platform-neutral before platform-specific
//  4. complete (has extensions) before incomplete
//  5. current before obsolete
//  6. obsolete with a use-instead list before obsolete without one
//  7. the use-instead lists themselves
//
// The result composes into a deterministic, stable sort: Priority(a, b) is
// always -Priority(b, a).
func (t *Type) Priority(other *Type) int {
	if c := strings.Compare(t.simplified, other.simplified); c != 0 {
		return c
	}
	if c := rankFlag(!t.Registered(), !other.Registered()); c != 0 {
		return c
	}
	if c := rankFlag(t.system != nil, other.system != nil); c != 0 {
		return c
	}
	if c := rankFlag(!t.Complete(), !other.Complete()); c != 0 {
		return c
	}
	if c := rankFlag(t.obsolete, other.obsolete); c != 0 {
		return c
	}
	ours, theirs := t.UseInstead(), other.UseInstead()
	if c := rankFlag(len(ours) == 0, len(theirs) == 0); c != 0 {
		return c
	}
	return compareStringSlices(ours, theirs)
}

// rankFlag sorts entries carrying a demoting flag after entries without it.
func rankFlag(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// compareStringSlices orders element-wise; when one list is a prefix of the
// other, the shorter list sorts first.
func compareStringSlices(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
