package models

import (
    "gorm.io/gorm"
)

const (
    RoleBeneficiary = "beneficiary"
    RoleMember      = "member"
    RoleAdmin       = "admin"
)

// Beneficiaries start with a small token allowance; members and admins
// earn tokens, they never spend them.
const DefaultBeneficiaryBalance = 5

type User struct {
    gorm.Model
    Email        string `gorm:"uniqueIndex;not null" json:"email"`
    PasswordHash string `gorm:"not null" json:"-"`
    Name         string `json:"name"`
    Address      string `json:"address"`
    Role         string `gorm:"not null;default:beneficiary" json:"role"`
    TokenBalance int    `gorm:"not null;default:0" json:"tokenBalance"`
}
