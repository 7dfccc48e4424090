package worker

import (
	"log"
	"os"
	"testing"
	"time"

	"tour_manager/config"
	"tour_manager/database"
	"tour_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.Load()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	os.Exit(m.Run())
}

func TestPurgeExpiredOTPs(t *testing.T) {
	db := database.DB

	user := model.UserAccount{Email: "purge@test.local", Username: "purge1234", FullName: "Purge User"}
	require.NoError(t, db.Create(&user).Error)

	fresh := model.OTP{UserId: user.ID, Code: "111111"}
	require.NoError(t, db.Create(&fresh).Error)

	stale := model.OTP{UserId: user.ID, Code: "222222"}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&model.OTP{}).Where("id = ?", stale.ID).
		Update("created_at", time.Now().Add(-30*time.Minute)).Error)

	PurgeExpiredOTPs()

	var remaining []model.OTP
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)
}
