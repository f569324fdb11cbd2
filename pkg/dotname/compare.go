package dotname

import "strings"

type segment struct {
	text  string
	inner bool
}

// segments flattens n root-first. Locals that themselves hold separators are
// split at them so every chain shape decomposes the same way its display
// string does.
func (n *Name) segments() []segment {
	var chain []*Name
	for c := n; c != nil; c = c.prefix {
		chain = append(chain, c)
	}
	segs := make([]segment, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		inner := c.inner
		local := c.local
		for {
			cut := strings.IndexAny(local, ".$")
			if cut < 0 {
				segs = append(segs, segment{text: local, inner: inner})
				break
			}
			segs = append(segs, segment{text: local[:cut], inner: inner})
			inner = local[cut] == innerSeparator
			local = local[cut+1:]
		}
	}
	return segs
}

// Compare orders names segment by segment. A chain that is a prefix of the
// other sorts first; names with the same segments are ordered '.' before '$'.
// Compare returns 0 exactly when Equal reports true.
func Compare(a, b *Name) int {
	if a == b {
		return 0
	}
	sa, sb := a.segments(), b.segments()
	n := min(len(sa), len(sb))
	for i := 0; i < n; i++ {
		if c := strings.Compare(sa[i].text, sb[i].text); c != 0 {
			return c
		}
	}
	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	}
	for i := range sa {
		if sa[i].inner != sb[i].inner {
			if sb[i].inner {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Compare is the method form of Compare.
func (n *Name) Compare(o *Name) int { return Compare(n, o) }
