package galaxy

// User is a Galaxy account, identified in configs by email.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

// Role is a Galaxy role; the training role is looked up by name.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Group is a Galaxy user group.
type Group struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	RolesURL string `json:"roles_url,omitempty"`
	UsersURL string `json:"users_url,omitempty"`
}

// RoleDefinition is the payload for creating a role.
type RoleDefinition struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UserIDs     []string `json:"user_ids,omitempty"`
	GroupIDs    []string `json:"group_ids,omitempty"`
}

// GroupCreate is the payload for creating a group.
type GroupCreate struct {
	Name    string   `json:"name"`
	UserIDs []string `json:"user_ids,omitempty"`
	RoleIDs []string `json:"role_ids,omitempty"`
}

// GroupUpdate is the payload for updating a group. Nil fields are left
// untouched by Galaxy; an empty non-nil slice clears the list.
type GroupUpdate struct {
	Name    *string   `json:"name,omitempty"`
	UserIDs *[]string `json:"user_ids,omitempty"`
	RoleIDs *[]string `json:"role_ids,omitempty"`
}
