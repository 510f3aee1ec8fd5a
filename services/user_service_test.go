package services

import (
	"testing"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := createUser(t, db, models.RoleBeneficiary, 5)

	got, err := svc.UpdateProfile(user.ID, ProfileInput{
		Name:    "New Name",
		Address: "9 Moved St",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, "9 Moved St", got.Address)

	// email, role and balance must survive any profile update
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Role, got.Role)
	assert.Equal(t, user.TokenBalance, got.TokenBalance)

	_, err = svc.UpdateProfile(9999, ProfileInput{Name: "Ghost"})
	assert.True(t, IsNotFound(err))
}
