package handler_test

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"tour_manager/database"
	"tour_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinTourIsIdempotent(t *testing.T) {
	_, access := createActiveUser(t, "join@test.local")
	createTour(t, "Idempotent Join Tour", "idempotent-join-tour", time.Now().AddDate(0, 0, 10))

	resp, body := doJSON(t, "POST", "/api/v1/tour/join/idempotent-join-tour", access, map[string]any{
		"seats":                  2,
		"mobileNumber":           "01700000002",
		"emergencyContactNumber": "01800000002",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := body["data"].(map[string]any)
	assert.Equal(t, "draft", first["status"])
	assert.Equal(t, float64(2), first["seats"])

	resp, body = doJSON(t, "POST", "/api/v1/tour/join/idempotent-join-tour", access, map[string]any{
		"seats": 5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := body["data"].(map[string]any)
	assert.Equal(t, first["id"], second["id"])
	// Seats on repeat joins are ignored, the original booking stands.
	assert.Equal(t, float64(2), second["seats"])

	var count int64
	database.DB.Model(&model.TourBooking{}).
		Where("tour_id = ?", uint(first["tourId"].(float64))).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestJoinTourBackfillsProfile(t *testing.T) {
	user, access := createActiveUser(t, "backfill@test.local")
	createTour(t, "Backfill Tour", "backfill-tour", time.Now().AddDate(0, 0, 10))

	resp, body := doJSON(t, "GET", "/api/v1/tour/join/backfill-tour", access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	missing := data["missingProfileFields"].([]any)
	assert.Contains(t, missing, "mobileNumber")
	assert.Contains(t, missing, "emergencyContactNumber")
	assert.Nil(t, data["booking"])

	resp, _ = doJSON(t, "POST", "/api/v1/tour/join/backfill-tour", access, map[string]any{
		"mobileNumber":                 "01700000003",
		"emergencyContactNumber":       "01800000003",
		"emergencyContactRelationship": "Brother",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, database.DB.First(user, user.ID).Error)
	require.NotNil(t, user.MobileNumber)
	assert.Equal(t, "01700000003", *user.MobileNumber)
	assert.Equal(t, "01800000003", user.EmergencyContactNumber)
	assert.Equal(t, "Brother", user.EmergencyContactRelationship)
}

func TestJoinTourRejectsInvalidSeats(t *testing.T) {
	_, access := createActiveUser(t, "seats@test.local")
	tour := createTour(t, "Seat Guard Tour", "seat-guard-tour", time.Now().AddDate(0, 0, 10))

	resp, _ := doJSON(t, "POST", "/api/v1/tour/join/seat-guard-tour", access, map[string]any{
		"seats": -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	database.DB.Model(&model.TourBooking{}).Where("tour_id = ?", tour.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestJoinTourAfterDeadline(t *testing.T) {
	_, access := createActiveUser(t, "late@test.local")
	createTour(t, "Closed Tour", "closed-tour", time.Now().Add(-time.Hour))

	resp, body := doJSON(t, "POST", "/api/v1/tour/join/closed-tour", access, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Booking deadline has passed.", body["message"])
}

func TestJoinUnknownTour(t *testing.T) {
	_, access := createActiveUser(t, "lost@test.local")

	resp, _ := doJSON(t, "POST", "/api/v1/tour/join/no-such-tour", access, map[string]any{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConfirmBookingFlow(t *testing.T) {
	_, access := createActiveUser(t, "confirm@test.local")
	createTour(t, "Sundarbans Mangrove Trip", "confirm-flow-tour", time.Now().AddDate(0, 0, 10))

	resp, body := doJSON(t, "POST", "/api/v1/tour/join/confirm-flow-tour", access, map[string]any{
		"mobileNumber":           "01700000004",
		"emergencyContactNumber": "01800000004",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bookingId := strconv.Itoa(int(body["data"].(map[string]any)["id"].(float64)))

	// Terms must be accepted.
	resp, body = doJSON(t, "POST", "/api/v1/tour/confirm/"+bookingId, access, map[string]any{
		"termsAccepted": false,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "You must accept the terms and conditions.", body["message"])

	resp, body = doJSON(t, "POST", "/api/v1/tour/confirm/"+bookingId, access, map[string]any{
		"termsAccepted": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	confirmed := body["data"].(map[string]any)
	assert.Equal(t, "pending", confirmed["status"])
	reference, _ := confirmed["bookingReference"].(string)
	require.NotEmpty(t, reference)
	assert.Len(t, reference, 9)
	assert.True(t, strings.HasPrefix(reference, "SMT"))
	assert.NotNil(t, confirmed["termsAcceptedAt"])
	assert.NotNil(t, confirmed["confirmedAt"])

	// Confirming twice fails and the reference never changes.
	resp, body = doJSON(t, "POST", "/api/v1/tour/confirm/"+bookingId, access, map[string]any{
		"termsAccepted": true,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Booking already submitted.", body["message"])

	var booking model.TourBooking
	require.NoError(t, database.DB.First(&booking, bookingId).Error)
	require.NotNil(t, booking.BookingReference)
	assert.Equal(t, reference, *booking.BookingReference)

	// Summary view includes amounts and a QR for the reference.
	resp, body = doJSON(t, "GET", "/api/v1/tour/confirm/"+bookingId, access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := body["data"].(map[string]any)
	assert.Equal(t, float64(5000), summary["totalCost"])
	assert.Equal(t, float64(1000), summary["upfrontPayment"])
	qr, _ := summary["qrCode"].(string)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))
}

func TestConfirmSomeoneElsesBooking(t *testing.T) {
	_, ownerAccess := createActiveUser(t, "owner@test.local")
	_, otherAccess := createActiveUser(t, "intruder@test.local")
	createTour(t, "Private Tour", "private-tour", time.Now().AddDate(0, 0, 10))

	resp, body := doJSON(t, "POST", "/api/v1/tour/join/private-tour", ownerAccess, map[string]any{
		"mobileNumber":           "01700000005",
		"emergencyContactNumber": "01800000005",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bookingId := strconv.Itoa(int(body["data"].(map[string]any)["id"].(float64)))

	resp, _ = doJSON(t, "POST", "/api/v1/tour/confirm/"+bookingId, otherAccess, map[string]any{
		"termsAccepted": true,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, "GET", "/api/v1/tour/confirm/"+bookingId, otherAccess, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
