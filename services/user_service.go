package services

import (
	"errors"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Only name and address are editable. Email, role and balance never
// change through the profile path.
type ProfileInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Address != "" {
		user.Address = input.Address
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
