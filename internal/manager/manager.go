// Package manager pushes a resolved training assignment to a Galaxy server:
// it ensures the training role and config groups exist, syncs each group's
// membership, and grants the role to the on-duty group only.
package manager

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/laperlej/galaxy-training/internal/galaxy"
	"github.com/laperlej/galaxy-training/internal/schedule"
)

// ErrUnknownUser means a config member email has no Galaxy account.
var ErrUnknownUser = errors.New("unknown galaxy user")

// Manager applies assignments through the Galaxy API.
type Manager struct {
	api      galaxy.API
	log      *zap.Logger
	roleName string
}

// New creates a Manager. roleName is the Galaxy role granted to the
// on-duty group (normally "training").
func New(api galaxy.API, log *zap.Logger, roleName string) *Manager {
	return &Manager{api: api, log: log, roleName: roleName}
}

// Apply synchronizes Galaxy with the assignment: every declared group gets
// its member list, whether or not it has schedule entries; the active group
// gets the training role and every other group has the role revoked. Group
// updates follow the config's declared order.
func (m *Manager) Apply(ctx context.Context, cfg *schedule.Config, a schedule.Assignment) error {
	users, err := m.api.Users(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	roles, err := m.api.Roles(ctx)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}
	groups, err := m.api.Groups(ctx)
	if err != nil {
		return fmt.Errorf("list groups: %w", err)
	}

	usersByEmail := make(map[string]galaxy.User, len(users))
	for _, u := range users {
		usersByEmail[u.Email] = u
	}

	role, err := m.ensureRole(ctx, roles)
	if err != nil {
		return err
	}

	groupsByName := make(map[string]galaxy.Group, len(groups))
	for _, g := range groups {
		groupsByName[g.Name] = g
	}

	for _, name := range cfg.AllGroupNames() {
		group, ok := groupsByName[name]
		if !ok {
			group, err = m.api.CreateGroup(ctx, name)
			if err != nil {
				return fmt.Errorf("create group %q: %w", name, err)
			}
			m.log.Info("created group", zap.String("group", name), zap.String("id", group.ID))
			groupsByName[name] = group
		}

		userIDs := make([]string, 0, len(cfg.Members(name)))
		for _, email := range cfg.Members(name) {
			u, ok := usersByEmail[email]
			if !ok {
				return fmt.Errorf("%w: %s (group %q)", ErrUnknownUser, email, name)
			}
			userIDs = append(userIDs, u.ID)
		}

		roleIDs := []string{}
		if a.Active && a.Group == name {
			roleIDs = []string{role.ID}
		}

		upd := galaxy.GroupUpdate{
			Name:    &name,
			UserIDs: &userIDs,
			RoleIDs: &roleIDs,
		}
		if _, err := m.api.UpdateGroup(ctx, group.ID, upd); err != nil {
			return fmt.Errorf("update group %q: %w", name, err)
		}
		m.log.Info("synced group",
			zap.String("group", name),
			zap.Int("members", len(userIDs)),
			zap.Bool("on_duty", len(roleIDs) > 0),
		)
	}
	return nil
}

// ensureRole finds the training role, creating it if absent.
func (m *Manager) ensureRole(ctx context.Context, roles []galaxy.Role) (galaxy.Role, error) {
	for _, r := range roles {
		if r.Name == m.roleName {
			return r, nil
		}
	}
	role, err := m.api.CreateRole(ctx, m.roleName, "")
	if err != nil {
		return galaxy.Role{}, fmt.Errorf("create role %q: %w", m.roleName, err)
	}
	m.log.Info("created role", zap.String("role", role.Name), zap.String("id", role.ID))
	return role, nil
}
