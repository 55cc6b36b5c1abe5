package authorizing

import (
	"context"
	"errors"

	"github.com/vfg2006/ad-pilot-api/infrastructure/repository"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
)

var (
	// ErrWorkspaceNotFound means the workspace does not exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrAccessDenied means the user is not a member or the role is too low.
	ErrAccessDenied = errors.New("access to workspace denied")
)

// Authorizer answers workspace membership questions.
// Role hierarchy: VIEWER < OPERATOR < ADMIN < OWNER.
type Authorizer interface {
	CheckWorkspaceAccess(ctx context.Context, workspaceID, userID string, minRole domain.Role) error
}

type service struct {
	workspaceRepository repository.WorkspaceRepository
}

func NewService(workspaceRepository repository.WorkspaceRepository) Authorizer {
	return &service{
		workspaceRepository: workspaceRepository,
	}
}

// CheckWorkspaceAccess verifies the workspace exists and the user holds at
// least minRole in it. Runs before any state mutation.
func (s *service) CheckWorkspaceAccess(ctx context.Context, workspaceID, userID string, minRole domain.Role) error {
	workspace, err := s.workspaceRepository.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if workspace == nil {
		return ErrWorkspaceNotFound
	}

	role, err := s.workspaceRepository.GetMemberRole(ctx, workspaceID, userID)
	if err != nil {
		return err
	}
	if role == "" || !role.AtLeast(minRole) {
		return ErrAccessDenied
	}

	return nil
}
