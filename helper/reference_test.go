package helper

import (
	"strings"
	"testing"

	"tour_manager/database"
	"tour_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferencePrefix(t *testing.T) {
	cases := map[string]string{
		"Sundarbans Mangrove Trip":  "SMT",
		"Cox's Bazar Beach Escape":  "CBB",
		"Sajek":                     "SXX",
		"Saint Martin":              "SMX",
		"":                          "XXX",
		"sundarbans mangrove trip":  "SMT",
		"Trip To The Hills Of Fame": "TTT",
	}
	for title, want := range cases {
		assert.Equal(t, want, ReferencePrefix(title), "title %q", title)
	}
}

func TestGenerateBookingReferenceShape(t *testing.T) {
	ref, err := GenerateBookingReference(database.DB, "Sundarbans Mangrove Trip")
	require.NoError(t, err)
	assert.Len(t, ref, 9)
	assert.True(t, strings.HasPrefix(ref, "SMT"))
	for _, r := range ref[3:] {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGenerateBookingReferenceUnique(t *testing.T) {
	db := database.DB

	user := model.UserAccount{Email: "ref@test.local", Username: "refuser12", FullName: "Ref User"}
	require.NoError(t, db.Create(&user).Error)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		ref, err := GenerateBookingReference(db, "Sundarbans Mangrove Trip")
		require.NoError(t, err)
		assert.False(t, seen[ref])
		seen[ref] = true

		var count int64
		db.Model(&model.TourBooking{}).Where("booking_reference = ?", ref).Count(&count)
		assert.Zero(t, count)
	}
}
