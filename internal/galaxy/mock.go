package galaxy

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Mock is an in-memory API implementation for tests. It mints uuid ids and
// records every UpdateGroup payload so tests can assert on what would have
// been sent to the server.
type Mock struct {
	mu      sync.Mutex
	users   []User
	roles   []Role
	groups  []Group
	Updates map[string][]GroupUpdate // group id -> payloads, in call order
}

// NewMock creates an empty mock server state.
func NewMock() *Mock {
	return &Mock{Updates: make(map[string][]GroupUpdate)}
}

// SeedUser registers a user and returns its minted id.
func (m *Mock) SeedUser(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := User{ID: uuid.NewString(), Email: email}
	m.users = append(m.users, u)
	return u.ID
}

// SeedRole registers an existing role and returns its minted id.
func (m *Mock) SeedRole(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := Role{ID: uuid.NewString(), Name: name}
	m.roles = append(m.roles, r)
	return r.ID
}

// SeedGroup registers an existing group and returns its minted id.
func (m *Mock) SeedGroup(name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := Group{ID: uuid.NewString(), Name: name}
	m.groups = append(m.groups, g)
	return g.ID
}

func (m *Mock) Users(context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]User(nil), m.users...), nil
}

func (m *Mock) Roles(context.Context) ([]Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Role(nil), m.roles...), nil
}

func (m *Mock) Groups(context.Context) ([]Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Group(nil), m.groups...), nil
}

func (m *Mock) CreateRole(_ context.Context, name, description string) (Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := Role{ID: uuid.NewString(), Name: name, Description: description}
	m.roles = append(m.roles, r)
	return r, nil
}

func (m *Mock) CreateGroup(_ context.Context, name string) (Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := Group{ID: uuid.NewString(), Name: name}
	m.groups = append(m.groups, g)
	return g, nil
}

func (m *Mock) UpdateGroup(_ context.Context, groupID string, upd GroupUpdate) (Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, g := range m.groups {
		if g.ID != groupID {
			continue
		}
		if upd.Name != nil {
			m.groups[i].Name = *upd.Name
		}
		m.Updates[groupID] = append(m.Updates[groupID], upd)
		return m.groups[i], nil
	}
	return Group{}, fmt.Errorf("group %s does not exist", groupID)
}
