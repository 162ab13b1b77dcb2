package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phish_trainer/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, api.PathUserStats, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"stats":{"training_progress":42,"tests_completed":7,"success_rate":90,"rank":"Gold"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", WithToken("tok"))
	resp, err := c.GetUserStats(context.Background())
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, api.UserStats{TrainingProgress: 42, TestsCompleted: 7, SuccessRate: 90, Rank: "Gold"}, *resp.Stats)
}

func TestUpdateProfileSendsJSON(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).UpdateProfile(context.Background(), api.ProfileUpdateRequest{
		FullName:      "Anna",
		Email:         "anna@example.com",
		SecurityLevel: api.LevelExpert,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
	assert.Equal(t, map[string]interface{}{
		"full_name":      "Anna",
		"email":          "anna@example.com",
		"security_level": "expert",
	}, got)
}

func TestChangePasswordOmitsConfirmation(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"message":"changed"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ChangePassword(context.Background(), api.PasswordChangeRequest{
		CurrentPassword: "old",
		NewPassword:     "new",
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "old", got["current_password"])
	assert.Equal(t, "new", got["new_password"])
}

func TestErrorStatusStillYieldsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Authorization required"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).GetUserStats(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Authorization required", resp.Message)
}

func TestNonJSONBodyIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetUserStats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).GetUserStats(context.Background())
	var terr *TransportError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, http.MethodGet, terr.Method)
}

func TestTimeoutCombinesWithHTTPClientInAnyOrder(t *testing.T) {
	hc := &http.Client{}

	c := NewClient("http://x", WithTimeout(5*time.Second), WithHTTPClient(hc))
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)

	c = NewClient("http://x", WithHTTPClient(hc), WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)

	assert.Zero(t, hc.Timeout, "caller's client must not be modified")
	assert.Zero(t, NewClient("http://x").httpClient.Timeout)
}
