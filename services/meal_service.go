// services/meal_service.go
package services

import (
	"errors"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	DietaryTags  []string `json:"dietaryTags"`
	QtyAvailable int      `json:"qtyAvailable"`
	TokenValue   *int     `json:"tokenValue"`
}

type MealUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	DietaryTags  *[]string `json:"dietaryTags"`
	QtyAvailable *int      `json:"qtyAvailable"`
	TokenValue   *int      `json:"tokenValue"`
}

// MealListing is a meal plus its provider's public details, the shape the
// browse page consumes.
type MealListing struct {
	models.Meal
	DietaryTags []string    `json:"dietaryTags"`
	Member      *MealMember `json:"member"`
}

type MealMember struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (s *MealService) CreateMeal(memberID uint, input MealInput) (*models.Meal, error) {
	if input.QtyAvailable < 0 {
		return nil, ErrInvalidQuantity
	}
	tokenValue := 1
	if input.TokenValue != nil {
		if *input.TokenValue < 0 {
			return nil, ErrInvalidQuantity
		}
		tokenValue = *input.TokenValue
	}

	meal := models.Meal{
		MemberID:     memberID,
		Title:        input.Title,
		Description:  input.Description,
		QtyAvailable: input.QtyAvailable,
		TokenValue:   tokenValue,
	}
	meal.SetTags(input.DietaryTags)

	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// ListMeals is public. Newest listings first, provider name and address
// attached for display.
func (s *MealService) ListMeals() ([]MealListing, error) {
	var meals []models.Meal
	if err := s.db.Order("created_at DESC").Find(&meals).Error; err != nil {
		return nil, err
	}

	memberIDs := make([]uint, 0, len(meals))
	for _, m := range meals {
		memberIDs = append(memberIDs, m.MemberID)
	}
	var members []models.User
	if len(memberIDs) > 0 {
		if err := s.db.Where("id IN ?", memberIDs).Find(&members).Error; err != nil {
			return nil, err
		}
	}
	byID := make(map[uint]models.User, len(members))
	for _, u := range members {
		byID[u.ID] = u
	}

	out := make([]MealListing, 0, len(meals))
	for _, m := range meals {
		listing := MealListing{Meal: m, DietaryTags: m.Tags()}
		if u, ok := byID[m.MemberID]; ok {
			listing.Member = &MealMember{ID: u.ID, Name: u.Name, Address: u.Address}
		}
		out = append(out, listing)
	}
	return out, nil
}

func (s *MealService) GetMeal(mealID uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "meal"}
		}
		return nil, err
	}
	return &meal, nil
}

// UpdateMeal applies a partial update. Only the owning member may edit,
// and a price edit never touches already-placed orders.
func (s *MealService) UpdateMeal(memberID, mealID uint, input MealUpdate) (*models.Meal, error) {
	meal, err := s.GetMeal(mealID)
	if err != nil {
		return nil, err
	}
	if meal.MemberID != memberID {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		meal.Title = *input.Title
	}
	if input.Description != nil {
		meal.Description = *input.Description
	}
	if input.DietaryTags != nil {
		meal.SetTags(*input.DietaryTags)
	}
	if input.QtyAvailable != nil {
		if *input.QtyAvailable < 0 {
			return nil, ErrInvalidQuantity
		}
		meal.QtyAvailable = *input.QtyAvailable
	}
	if input.TokenValue != nil {
		if *input.TokenValue < 0 {
			return nil, ErrInvalidQuantity
		}
		meal.TokenValue = *input.TokenValue
	}

	if err := s.db.Save(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

func (s *MealService) DeleteMeal(memberID, mealID uint) error {
	meal, err := s.GetMeal(mealID)
	if err != nil {
		return err
	}
	if meal.MemberID != memberID {
		return ErrForbidden
	}
	return s.db.Delete(meal).Error
}
