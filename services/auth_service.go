package services

import (
	"errors"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"
	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// Register creates the account with its starting balance: beneficiaries
// get the default allowance, members and admins start at zero.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	role := input.Role
	if role == "" {
		role = models.RoleBeneficiary
	}
	switch role {
	case models.RoleBeneficiary, models.RoleMember, models.RoleAdmin:
	default:
		return nil, "", errors.New("unknown role")
	}

	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	balance := 0
	if role == models.RoleBeneficiary {
		balance = models.DefaultBeneficiaryBalance
	}

	user := models.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Address:      input.Address,
		Role:         role,
		TokenBalance: balance,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login deliberately reports one failure kind for both a missing account
// and a wrong password.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) Me(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	return &user, nil
}
