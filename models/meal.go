package models

import (
    "strings"

    "gorm.io/gorm"
)

// One meal listing, owned by exactly one member.
type Meal struct {
    gorm.Model
    MemberID     uint   `gorm:"index;not null" json:"memberId"` // FK → users.id
    Title        string `gorm:"not null" json:"title"`
    Description  string `json:"description"`
    DietaryTags  string `json:"-"` // comma-separated, see Tags()
    QtyAvailable int    `gorm:"not null" json:"qtyAvailable"`
    TokenValue   int    `gorm:"not null;default:1" json:"tokenValue"` // price per unit, in tokens
}

func (m *Meal) Tags() []string {
    if strings.TrimSpace(m.DietaryTags) == "" {
        return []string{}
    }
    parts := strings.Split(m.DietaryTags, ",")
    tags := make([]string, 0, len(parts))
    for _, p := range parts {
        if t := strings.TrimSpace(p); t != "" {
            tags = append(tags, t)
        }
    }
    return tags
}

func (m *Meal) SetTags(tags []string) {
    m.DietaryTags = strings.Join(tags, ",")
}
