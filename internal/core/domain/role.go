package domain

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a credential can reference.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// knownRoles is ordered; RolesGranted returns roles in this order.
var knownRoles = []Role{RoleAdmin, RoleUser}

// ParseRole maps a stored role name onto the closed Role enum.
func ParseRole(name string) (Role, error) {
	for _, r := range knownRoles {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

func (r Role) String() string { return string(r) }

// Can reports whether the role holds permission p.
func (r Role) Can(p Permission) bool {
	_, ok := rolePermissions[r][p]
	return ok
}

// Permission names an operation class guarded at the HTTP boundary.
type Permission string

const (
	PermRestaurantsRead   Permission = "restaurants:read"
	PermRestaurantsWrite  Permission = "restaurants:write"
	PermRestaurantsDelete Permission = "restaurants:delete"
	PermDishesRead        Permission = "dishes:read"
	PermDishesWrite       Permission = "dishes:write"
	PermDishesDelete      Permission = "dishes:delete"
	PermOrdersRead        Permission = "orders:read"
	PermOrdersWrite       Permission = "orders:write"
	PermOrdersDelete      Permission = "orders:delete"
	PermRolesRead         Permission = "roles:read"
	PermUsersRead         Permission = "users:read"
	PermUsersWrite        Permission = "users:write"
	PermUsersPassword     Permission = "users:password"
	PermUsersDelete       Permission = "users:delete"
)

type permissionSet map[Permission]struct{}

func permissions(ps ...Permission) permissionSet {
	set := make(permissionSet, len(ps))
	for _, p := range ps {
		set[p] = struct{}{}
	}
	return set
}

var rolePermissions = map[Role]permissionSet{
	RoleAdmin: permissions(
		PermRestaurantsRead, PermRestaurantsWrite, PermRestaurantsDelete,
		PermDishesRead, PermDishesWrite, PermDishesDelete,
		PermOrdersRead, PermOrdersWrite, PermOrdersDelete,
		PermRolesRead,
		PermUsersRead, PermUsersWrite, PermUsersPassword, PermUsersDelete,
	),
	RoleUser: permissions(
		PermRestaurantsRead, PermRestaurantsWrite,
		PermDishesRead,
		PermOrdersRead, PermOrdersWrite,
		PermRolesRead,
		PermUsersRead, PermUsersWrite, PermUsersPassword,
	),
}

// RoleSet is the set of roles admitted by a protected operation.
// The zero value admits nobody.
type RoleSet struct {
	any   bool
	roles []Role
}

// AnyRole admits every authenticated principal regardless of role.
func AnyRole() RoleSet { return RoleSet{any: true} }

// Only admits exactly the given roles.
func Only(roles ...Role) RoleSet {
	return RoleSet{roles: append([]Role(nil), roles...)}
}

// RolesGranted returns the set of roles holding permission p.
func RolesGranted(p Permission) RoleSet {
	var out []Role
	for _, r := range knownRoles {
		if r.Can(p) {
			out = append(out, r)
		}
	}
	return RoleSet{roles: out}
}

// Allows reports whether r is a member of the set.
func (s RoleSet) Allows(r Role) bool {
	if s.any {
		_, err := ParseRole(string(r))
		return err == nil
	}
	for _, allowed := range s.roles {
		if allowed == r {
			return true
		}
	}
	return false
}

func (s RoleSet) String() string {
	if s.any {
		return "any"
	}
	names := make([]string, len(s.roles))
	for i, r := range s.roles {
		names[i] = string(r)
	}
	return strings.Join(names, ",")
}

// RoleRecord is the persisted role reference row.
type RoleRecord struct {
	ID   int64  `bson:"_id"`
	Name string `bson:"name"`
}

// CheckRoleCatalog verifies that every stored role maps onto the Role enum and
// that every enum member is present in the store.
func CheckRoleCatalog(records []RoleRecord) error {
	seen := make(map[Role]bool, len(knownRoles))
	for _, rec := range records {
		r, err := ParseRole(rec.Name)
		if err != nil {
			return fmt.Errorf("role %d: %w", rec.ID, err)
		}
		seen[r] = true
	}
	for _, r := range knownRoles {
		if !seen[r] {
			return fmt.Errorf("role catalog: missing role %q", r)
		}
	}
	return nil
}
