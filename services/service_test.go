package services

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/AlexHerbertGit/Kobra-Kai-Web-Application/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a file-backed sqlite database in the test's temp dir.
// _txlock=immediate makes every transaction take the write lock at BEGIN,
// so concurrent PlaceOrder calls queue the way locked postgres rows would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate",
		filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.Order{},
		&models.PushSubscription{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, role string, balance int) *models.User {
	t.Helper()

	u := &models.User{
		Email:        fmt.Sprintf("%s-%d@example.com", role, nextSeq()),
		PasswordHash: "x",
		Name:         "Test " + role,
		Address:      "1 Test St",
		Role:         role,
		TokenBalance: balance,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createMeal(t *testing.T, db *gorm.DB, memberID uint, qty, tokenValue int) *models.Meal {
	t.Helper()

	m := &models.Meal{
		MemberID:     memberID,
		Title:        "Lentil Soup",
		Description:  "Warm and filling",
		QtyAvailable: qty,
		TokenValue:   tokenValue,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

var seq int

func nextSeq() int {
	seq++
	return seq
}
