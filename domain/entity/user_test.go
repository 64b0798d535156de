package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())

	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("SUPER_ADMIN").Valid())
	assert.False(t, Role("admin ").Valid())
}

func TestRole_In(t *testing.T) {
	assert.True(t, RoleAdmin.In(RoleSuperAdmin, RoleAdmin))
	assert.True(t, RoleSuperAdmin.In(RoleSuperAdmin))

	assert.False(t, RoleUser.In(RoleSuperAdmin, RoleAdmin))
	assert.False(t, RoleAdmin.In())
	assert.False(t, Role("admin2").In(RoleSuperAdmin, RoleAdmin, RoleUser))
	assert.False(t, Role("").In(RoleSuperAdmin, RoleAdmin, RoleUser))
}

func TestNewUser(t *testing.T) {
	user := NewUser("id-1", "jdoe", "John Doe", "jdoe@example.com", "$2a$10$hash", RoleUser)

	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "jdoe", user.UserID)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.DeletedAt)
	assert.False(t, user.CreatedAt.IsZero())
}
