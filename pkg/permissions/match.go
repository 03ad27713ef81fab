package permissions

import "strings"

// NormalizePath strips the query string and any trailing slashes so
// "/table/5/?x=1" compares as "/table/5".
func NormalizePath(p string) string {
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

// Match compares a concrete path against a pattern segment by segment.
// A pattern segment of exactly "*" matches any single concrete segment;
// every other segment requires exact equality, and the segment counts
// must agree. There is no multi-segment wildcard.
func Match(pattern, path string) bool {
	pattern = NormalizePath(pattern)
	path = NormalizePath(path)

	patSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patSegs {
		if seg == "*" {
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}
