package user_management

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dcdesk/dcdesk/domain/entity"
)

func TestSetup_CreatesSuperAdminOnEmptyTable(t *testing.T) {
	repo := new(mockUserRepository)
	passwordSvc := new(mockPasswordService)
	uc := NewSetupUseCase(repo, passwordSvc)

	repo.On("Count", mock.Anything).Return(0, nil)
	passwordSvc.On("Hash", "secret123").Return("$2a$10$hashed", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleSuperAdmin
	})).Return(nil)

	req := validRequest()
	req.Role = entity.RoleUser // requested role is ignored

	user, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, user.Role)
	repo.AssertExpectations(t)
}

func TestSetup_RefusesWhenUsersExist(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewSetupUseCase(repo, new(mockPasswordService))

	repo.On("Count", mock.Anything).Return(1, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSetupAlreadyDone)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetup_ValidatesRequest(t *testing.T) {
	repo := new(mockUserRepository)
	uc := NewSetupUseCase(repo, new(mockPasswordService))

	repo.On("Count", mock.Anything).Return(0, nil)

	req := validRequest()
	req.Password = "123"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
