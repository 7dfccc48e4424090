package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceDefaultsAndPatch(t *testing.T) {
	_, access := createActiveUser(t, "prefs@test.local")

	resp, body := doJSON(t, "GET", "/api/v1/notification/preference", access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["newTourNotifications"])
	assert.Equal(t, true, data["bookingUpdates"])
	assert.Equal(t, true, data["tourReminders"])
	assert.Equal(t, false, data["marketingEmails"])
	assert.Equal(t, false, data["marketingNotifications"])

	// Only the provided flags flip.
	resp, body = doJSON(t, "PATCH", "/api/v1/notification/preference", access, map[string]any{
		"tourReminders":   false,
		"marketingEmails": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, "GET", "/api/v1/notification/preference", access, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]any)
	assert.Equal(t, false, data["tourReminders"])
	assert.Equal(t, true, data["marketingEmails"])
	assert.Equal(t, true, data["newTourNotifications"])
	assert.Equal(t, true, data["bookingUpdates"])
}

func TestPreferenceRequiresAuth(t *testing.T) {
	resp, _ := doJSON(t, "GET", "/api/v1/notification/preference", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
