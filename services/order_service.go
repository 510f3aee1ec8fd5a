// services/order_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Identity is the resolved actor for a request, produced by the auth
// middleware and passed into every role-gated operation.
type Identity struct {
	UserID uint
	Role   string
}

// Notifier delivers a best-effort push to a user's registered devices.
// Delivery failure must never affect the outcome of an order.
type Notifier interface {
	PushToUser(userID uint, title, body string, data map[string]string)
}

type OrderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewOrderService(db *gorm.DB, notifier Notifier) *OrderService {
	return &OrderService{db: db, notifier: notifier}
}

// PlacedOrder is the result of a successful placement: the created order
// plus both post-transaction balances.
type PlacedOrder struct {
	Order              models.Order `json:"order"`
	BeneficiaryBalance int          `json:"beneficiaryBalance"`
	MemberBalance      int          `json:"memberBalance"`
}

// PlaceOrder debits the beneficiary, credits the meal's owner, decrements
// stock and creates the order, all inside one transaction. The meal row and
// both user rows are locked for the duration, so two placements against the
// same meal serialize and can never oversell.
func (s *OrderService) PlaceOrder(beneficiaryID, mealID uint, quantity int) (*PlacedOrder, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var out PlacedOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := lockForUpdate(tx).
			First(&meal, mealID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "meal"}
			}
			return err
		}
		if meal.QtyAvailable < quantity {
			return ErrOutOfStock
		}

		var beneficiary models.User
		if err := lockForUpdate(tx).
			First(&beneficiary, beneficiaryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "user"}
			}
			return err
		}
		if beneficiary.Role != models.RoleBeneficiary {
			return ErrForbidden
		}

		totalCost := meal.TokenValue * quantity
		if beneficiary.TokenBalance < totalCost {
			return ErrInsufficientTokens
		}

		var member models.User
		if err := lockForUpdate(tx).
			First(&member, meal.MemberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "provider"}
			}
			return err
		}

		meal.QtyAvailable -= quantity
		beneficiary.TokenBalance -= totalCost
		member.TokenBalance += totalCost

		if err := tx.Save(&meal).Error; err != nil {
			return err
		}
		if err := tx.Save(&beneficiary).Error; err != nil {
			return err
		}
		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		order := models.Order{
			MealID:        meal.ID,
			BeneficiaryID: beneficiary.ID,
			MemberID:      meal.MemberID,
			Status:        models.OrderPending,
			Quantity:      quantity,
			CostTokens:    totalCost,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		order.Meal = meal
		out = PlacedOrder{
			Order:              order,
			BeneficiaryBalance: beneficiary.TokenBalance,
			MemberBalance:      member.TokenBalance,
		}
		return nil
	})
	if err != nil {
		if isSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// best-effort: a failed push never unwinds a committed order
	if s.notifier != nil {
		s.notifier.PushToUser(out.Order.MemberID,
			"New order received",
			fmt.Sprintf("%s (x%d) was just ordered", out.Order.Meal.Title, quantity),
			map[string]string{"orderId": fmt.Sprint(out.Order.ID)})
	}

	return &out, nil
}

// MoveToCurrent accepts a pending order. Only the order's member or an
// admin may do this.
func (s *OrderService) MoveToCurrent(orderID uint, actor Identity) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order"}
		}
		return nil, err
	}

	isMember := order.MemberID == actor.UserID
	isAdmin := actor.Role == models.RoleAdmin
	if !isMember && !isAdmin {
		return nil, ErrForbidden
	}

	if order.Status != models.OrderPending {
		return nil, ErrInvalidTransition
	}

	order.Status = models.OrderCurrent
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Complete marks a current order as completed. The order's member, its
// beneficiary, or an admin may do this.
func (s *OrderService) Complete(orderID uint, actor Identity) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order"}
		}
		return nil, err
	}

	isMember := order.MemberID == actor.UserID
	isBeneficiary := order.BeneficiaryID == actor.UserID
	isAdmin := actor.Role == models.RoleAdmin
	if !isMember && !isBeneficiary && !isAdmin {
		return nil, ErrForbidden
	}

	switch order.Status {
	case models.OrderCurrent, models.OrderInProgress, models.OrderAccepted:
	default:
		return nil, ErrInvalidTransition
	}

	order.Status = models.OrderCompleted
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the orders the actor is allowed to see: beneficiaries
// their own, members those placed against their meals, admins everything.
func (s *OrderService) ListOrders(actor Identity) ([]models.Order, error) {
	q := s.db.Preload("Meal").Order("created_at DESC")
	switch actor.Role {
	case models.RoleBeneficiary:
		q = q.Where("beneficiary_id = ?", actor.UserID)
	case models.RoleMember:
		q = q.Where("member_id = ?", actor.UserID)
	}

	var orders []models.Order
	err := q.Find(&orders).Error
	return orders, err
}

// lockForUpdate adds FOR UPDATE on dialects with row-level locking.
// SQLite rejects the clause and serializes writers at the database level,
// which preserves the same guarantee.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// isSerializationFailure reports whether the transaction lost a race
// (serialization failure 40001 or deadlock 40P01) and may be retried.
func isSerializationFailure(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		code := pgErr.SQLState()
		return code == "40001" || code == "40P01"
	}
	return false
}
