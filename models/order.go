package models

import (
    "gorm.io/gorm"
)

const (
    OrderPending   = "pending"
    OrderCurrent   = "current"
    OrderCompleted = "completed"
    OrderCancelled = "cancelled"

    // Older data wrote these instead of "current". They are legal source
    // states for completion but are never written by this code.
    OrderAccepted   = "accepted"
    OrderInProgress = "inProgress"
)

// An order is never deleted; after creation only Status changes.
// CostTokens is fixed when the order is placed and ignores later
// price edits on the meal.
type Order struct {
    gorm.Model
    MealID        uint   `gorm:"index;not null" json:"mealId"`
    BeneficiaryID uint   `gorm:"index;not null" json:"beneficiaryId"`
    MemberID      uint   `gorm:"index;not null" json:"memberId"` // meal owner, denormalized
    Status        string `gorm:"not null;default:pending" json:"status"`
    Quantity      int    `gorm:"not null;default:1" json:"quantity"`
    CostTokens    int    `gorm:"not null" json:"costTokens"`

    Meal Meal `gorm:"foreignKey:MealID" json:"meal,omitempty"`
}
