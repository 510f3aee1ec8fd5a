package services

import (
	"testing"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	t.Run("beneficiary starts with the default allowance", func(t *testing.T) {
		user, token, err := svc.Register(RegisterInput{
			Name:     "Benny",
			Address:  "2 Kindness Ave",
			Email:    "benny@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleBeneficiary, user.Role)
		assert.Equal(t, models.DefaultBeneficiaryBalance, user.TokenBalance)
		assert.NotEmpty(t, token)
		assert.True(t, utils.CheckPasswordHash("correct-horse", user.PasswordHash))
	})

	t.Run("member starts at zero", func(t *testing.T) {
		user, _, err := svc.Register(RegisterInput{
			Name:     "Mel",
			Address:  "3 Giving Rd",
			Email:    "mel@example.com",
			Password: "correct-horse",
			Role:     models.RoleMember,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, user.Role)
		assert.Equal(t, 0, user.TokenBalance)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, _, err := svc.Register(RegisterInput{
			Name:     "Benny Again",
			Address:  "2 Kindness Ave",
			Email:    "benny@example.com",
			Password: "correct-horse",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, _, err := svc.Register(RegisterInput{
			Name:     "X",
			Address:  "X",
			Email:    "x@example.com",
			Password: "correct-horse",
			Role:     "superuser",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(RegisterInput{
		Name:     "Benny",
		Address:  "2 Kindness Ave",
		Email:    "benny@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login("benny@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "benny@example.com", user.Email)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("benny@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same failure", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestMe(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, _, err := svc.Register(RegisterInput{
		Name:     "Benny",
		Address:  "2 Kindness Ave",
		Email:    "benny@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	got, err := svc.Me(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.Me(9999)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "user", nf.Entity)
}
