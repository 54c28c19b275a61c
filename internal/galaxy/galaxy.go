// Package galaxy talks to the Galaxy server's admin API: the users, roles
// and groups the training schedule is applied to.
package galaxy

import "context"

// API is the slice of the Galaxy admin API the training manager needs.
type API interface {
	Users(ctx context.Context) ([]User, error)
	Roles(ctx context.Context) ([]Role, error)
	Groups(ctx context.Context) ([]Group, error)
	CreateRole(ctx context.Context, name, description string) (Role, error)
	CreateGroup(ctx context.Context, name string) (Group, error)
	UpdateGroup(ctx context.Context, groupID string, upd GroupUpdate) (Group, error)
}
