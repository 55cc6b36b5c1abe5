package domain

import "time"

// Role is the per-workspace role of a member.
// Hierarchy: VIEWER < OPERATOR < ADMIN < OWNER.
type Role string

const (
	RoleViewer   Role = "VIEWER"
	RoleOperator Role = "OPERATOR"
	RoleAdmin    Role = "ADMIN"
	RoleOwner    Role = "OWNER"
)

var roleLevels = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
	RoleOwner:    4,
}

// AtLeast reports whether r grants the privileges of min. Unknown roles
// grant nothing.
func (r Role) AtLeast(min Role) bool {
	return roleLevels[r] >= roleLevels[min] && roleLevels[r] > 0
}

// Workspace is one tenant of the dashboard. SyncEnabled gates the
// scheduled recommendation generation job.
type Workspace struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SyncEnabled bool      `json:"sync_enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkspaceMember links a user to a workspace with a role.
type WorkspaceMember struct {
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}
