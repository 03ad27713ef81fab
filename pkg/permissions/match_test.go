package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"/table/5", "/table/5"},
		{"/table/5/", "/table/5"},
		{"/table/5///", "/table/5"},
		{"/table/5?sort=asc&page=2", "/table/5"},
		{"/table/5/?x=1", "/table/5"},
		{"/", "/"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePath(tt.in), "input %q", tt.in)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"exact", "/auth/login", "/auth/login", true},
		{"exact mismatch", "/auth/login", "/auth/logout", false},
		{"wildcard segment", "/table/*", "/table/5", true},
		{"wildcard other value", "/table/*", "/table/reserved", true},
		{"wildcard too deep", "/table/*", "/table/5/history", false},
		{"wildcard too shallow", "/table/update/*", "/table/update", false},
		{"embedded wildcard", "/table/*/status", "/table/9/status", true},
		{"embedded wildcard mismatch", "/table/*/status", "/table/9/price", false},
		{"trailing slash on path", "/table/update/*", "/table/update/3/", true},
		{"query string stripped", "/table/page", "/table/page?page=2&size=10", true},
		{"segment count differs", "/table-type/update/*", "/table-type/update/3/extra", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Match(tt.pattern, tt.path))
		})
	}
}

// Every wildcard permission of every role must accept any single-segment
// substitution and reject a deeper path.
func TestCatalog_WildcardSubstitution(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	for _, role := range []Role{RoleAnonymous, RoleUser, RoleAdmin} {
		for _, p := range catalog.For(role) {
			concrete := replaceWildcard(p.Endpoint, "123")
			assert.True(t, Match(p.Endpoint, concrete), "role %s perm %+v", role, p)
			assert.False(t, Match(p.Endpoint, concrete+"/extra"), "role %s perm %+v", role, p)
		}
	}
}

func replaceWildcard(pattern, with string) string {
	out := ""
	for i, seg := range splitSegments(pattern) {
		if i > 0 {
			out += "/"
		}
		if seg == "*" {
			out += with
		} else {
			out += seg
		}
	}
	return out
}

func splitSegments(p string) []string {
	segs := []string{}
	cur := ""
	for _, r := range p {
		if r == '/' {
			segs = append(segs, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	return append(segs, cur)
}

func TestCatalog_Allows(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()

	assert.True(t, catalog.Allows(RoleAnonymous, http.MethodPost, "/auth/login"))
	assert.True(t, catalog.Allows(RoleAnonymous, "post", "/auth/login"), "method match is case-insensitive")
	assert.True(t, catalog.Allows(RoleAnonymous, http.MethodGet, "/table/5"))
	assert.False(t, catalog.Allows(RoleAnonymous, http.MethodPost, "/table-type/create"))

	assert.True(t, catalog.Allows(RoleUser, http.MethodGet, "/table-type/list"))
	assert.False(t, catalog.Allows(RoleUser, http.MethodPut, "/table-type/update/3"))

	assert.True(t, catalog.Allows(RoleAdmin, http.MethodPut, "/table-type/update/3"))
	assert.True(t, catalog.Allows(RoleAdmin, http.MethodDelete, "/table/delete/9"))
	assert.False(t, catalog.Allows(RoleAdmin, http.MethodPost, "/auth/login"), "admin set does not include login")
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Role{
		"ADMIN":     RoleAdmin,
		"admin":     RoleAdmin,
		"User":      RoleUser,
		"ANONYMOUS": RoleAnonymous,
	} {
		got, ok := ParseRole(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	_, ok := ParseRole("root")
	assert.False(t, ok)
}
