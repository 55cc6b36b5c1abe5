package authorizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-pilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCheckWorkspaceAccess(t *testing.T) {
	tests := []struct {
		name      string
		minRole   domain.Role
		setup     func(workspaceRepo *mocks.MockWorkspaceRepository)
		expectErr error
	}{
		{
			name:    "workspace does not exist",
			minRole: domain.RoleViewer,
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetByID(gomock.Any(), "WS001").Return(nil, nil)
			},
			expectErr: ErrWorkspaceNotFound,
		},
		{
			name:    "user is not a member",
			minRole: domain.RoleViewer,
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetByID(gomock.Any(), "WS001").Return(&domain.Workspace{ID: "WS001"}, nil)
				workspaceRepo.EXPECT().GetMemberRole(gomock.Any(), "WS001", "USR001").Return(domain.Role(""), nil)
			},
			expectErr: ErrAccessDenied,
		},
		{
			name:    "viewer cannot act as operator",
			minRole: domain.RoleOperator,
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetByID(gomock.Any(), "WS001").Return(&domain.Workspace{ID: "WS001"}, nil)
				workspaceRepo.EXPECT().GetMemberRole(gomock.Any(), "WS001", "USR001").Return(domain.RoleViewer, nil)
			},
			expectErr: ErrAccessDenied,
		},
		{
			name:    "admin passes an operator check",
			minRole: domain.RoleOperator,
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetByID(gomock.Any(), "WS001").Return(&domain.Workspace{ID: "WS001"}, nil)
				workspaceRepo.EXPECT().GetMemberRole(gomock.Any(), "WS001", "USR001").Return(domain.RoleAdmin, nil)
			},
		},
		{
			name:    "owner passes an admin check",
			minRole: domain.RoleAdmin,
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetByID(gomock.Any(), "WS001").Return(&domain.Workspace{ID: "WS001"}, nil)
				workspaceRepo.EXPECT().GetMemberRole(gomock.Any(), "WS001", "USR001").Return(domain.RoleOwner, nil)
			},
		},
		{
			name:    "unknown role grants nothing",
			minRole: domain.RoleViewer,
			setup: func(workspaceRepo *mocks.MockWorkspaceRepository) {
				workspaceRepo.EXPECT().GetByID(gomock.Any(), "WS001").Return(&domain.Workspace{ID: "WS001"}, nil)
				workspaceRepo.EXPECT().GetMemberRole(gomock.Any(), "WS001", "USR001").Return(domain.Role("SUPERUSER"), nil)
			},
			expectErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			workspaceRepo := mocks.NewMockWorkspaceRepository(ctrl)
			tt.setup(workspaceRepo)

			service := NewService(workspaceRepo)

			err := service.CheckWorkspaceAccess(context.Background(), "WS001", "USR001", tt.minRole)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, domain.RoleOwner.AtLeast(domain.RoleViewer))
	assert.True(t, domain.RoleOperator.AtLeast(domain.RoleOperator))
	assert.False(t, domain.RoleViewer.AtLeast(domain.RoleAdmin))
	assert.False(t, domain.Role("").AtLeast(domain.RoleViewer))
}
