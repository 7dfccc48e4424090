package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTourDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&UserAccount{}, &TourGuide{},
		&Division{}, &District{}, &Upazila{},
		&Transport{}, &Stay{},
		&Tour{}, &TourDay{}, &TourActivity{}, &TourInclusion{},
	))
	return db
}

func TestTourSlugGeneratedOnCreate(t *testing.T) {
	db := openTourDB(t)

	division := Division{Name: "Khulna"}
	require.NoError(t, db.Create(&division).Error)

	start := time.Now().AddDate(0, 1, 0)
	makeTour := func() Tour {
		return Tour{
			Title:           "Sundarbans Mangrove Trip",
			DivisionId:      division.ID,
			StartDatetime:   start,
			BookingDeadline: start.AddDate(0, 0, -7),
		}
	}

	first := makeTour()
	require.NoError(t, db.Create(&first).Error)
	assert.Equal(t, "sundarbans-mangrove-trip", first.Slug)

	second := makeTour()
	require.NoError(t, db.Create(&second).Error)
	assert.Equal(t, "sundarbans-mangrove-trip-1", second.Slug)

	third := makeTour()
	third.Slug = "custom-slug"
	require.NoError(t, db.Create(&third).Error)
	assert.Equal(t, "custom-slug", third.Slug)
}

func TestTourLocationMustNest(t *testing.T) {
	db := openTourDB(t)

	khulna := Division{Name: "Khulna"}
	require.NoError(t, db.Create(&khulna).Error)
	chattogram := Division{Name: "Chattogram"}
	require.NoError(t, db.Create(&chattogram).Error)

	bagerhat := District{Name: "Bagerhat", DivisionId: khulna.ID}
	require.NoError(t, db.Create(&bagerhat).Error)
	coxsBazar := District{Name: "Cox's Bazar", DivisionId: chattogram.ID}
	require.NoError(t, db.Create(&coxsBazar).Error)

	mongla := Upazila{Name: "Mongla", DistrictId: bagerhat.ID}
	require.NoError(t, db.Create(&mongla).Error)

	start := time.Now().AddDate(0, 1, 0)
	makeTour := func(title string) Tour {
		return Tour{
			Title:           title,
			DivisionId:      khulna.ID,
			StartDatetime:   start,
			BookingDeadline: start.AddDate(0, 0, -7),
		}
	}

	nested := makeTour("Nested Tour")
	nested.DistrictId = &bagerhat.ID
	nested.UpazilaId = &mongla.ID
	assert.NoError(t, db.Create(&nested).Error)

	foreignDistrict := makeTour("Foreign District Tour")
	foreignDistrict.DistrictId = &coxsBazar.ID
	assert.Error(t, db.Create(&foreignDistrict).Error)

	orphanUpazila := makeTour("Orphan Upazila Tour")
	orphanUpazila.UpazilaId = &mongla.ID
	assert.Error(t, db.Create(&orphanUpazila).Error)

	foreignUpazila := makeTour("Foreign Upazila Tour")
	foreignUpazila.DistrictId = &bagerhat.ID
	teknaf := Upazila{Name: "Teknaf", DistrictId: coxsBazar.ID}
	require.NoError(t, db.Create(&teknaf).Error)
	foreignUpazila.UpazilaId = &teknaf.ID
	assert.Error(t, db.Create(&foreignUpazila).Error)

	// The same check guards updates.
	nested.DistrictId = &coxsBazar.ID
	assert.Error(t, db.Save(&nested).Error)
}

func TestTourDeadlinePassed(t *testing.T) {
	open := Tour{BookingDeadline: time.Now().Add(time.Hour)}
	assert.False(t, open.DeadlinePassed())

	closed := Tour{BookingDeadline: time.Now().Add(-time.Hour)}
	assert.True(t, closed.DeadlinePassed())
}
