package models

import (
    "gorm.io/gorm"
)

// One registered push endpoint per device. TokenHash dedupes
// re-registrations of the same device token.
type PushSubscription struct {
    gorm.Model
    UserID      uint   `gorm:"index;not null"`
    Platform    string // "android" | "ios" | "web"
    TokenHash   string `gorm:"index"`
    EndpointARN string
    Enabled     bool `gorm:"default:true"`
}
