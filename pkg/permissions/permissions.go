package permissions

import "strings"

// Role is one of the fixed application roles.
type Role string

const (
	RoleAnonymous Role = "ANONYMOUS"
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(s)) {
	case RoleAnonymous:
		return RoleAnonymous, true
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// Permission is an (HTTP method, endpoint pattern) pair a role may
// invoke. A pattern segment of "*" matches exactly one path segment.
type Permission struct {
	Method   string
	Endpoint string
}

// Catalog is the immutable role → permission mapping, built once at
// process start. Safe for unsynchronized concurrent reads.
type Catalog struct {
	byRole map[Role][]Permission
}

func (c *Catalog) For(role Role) []Permission {
	return c.byRole[role]
}

// Allows reports whether role holds a permission matching the request.
// path must already be normalized.
func (c *Catalog) Allows(role Role, method, path string) bool {
	for _, p := range c.byRole[role] {
		if strings.EqualFold(p.Method, method) && Match(p.Endpoint, path) {
			return true
		}
	}
	return false
}
