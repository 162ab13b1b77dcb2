package termview

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"phish_trainer/pkg/api"
	"phish_trainer/pkg/client"
	"phish_trainer/pkg/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	assert.Equal(t, "[--------------------]", Render("0%"))
	assert.Equal(t, "[########------------]", Render("42%"))
	assert.Equal(t, "[####################]", Render("150%"))
	assert.Equal(t, "[--------------------]", Render("garbage"))
}

func TestPageWithoutFormsLeavesThemNil(t *testing.T) {
	el := NewPage(&bytes.Buffer{}).Elements()
	assert.Nil(t, el.ProfileForm)
	assert.Nil(t, el.PasswordForm)
}

func TestDashboardAgainstServer(t *testing.T) {
	var requests int
	mux := http.NewServeMux()
	mux.HandleFunc(api.PathUserStats, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true,"stats":{"training_progress":42,"tests_completed":7,"success_rate":90,"rank":"Gold"}}`))
	})
	mux.HandleFunc(api.PathChangePassword, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true,"message":"Password changed successfully!"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	page := NewPage(&out)
	form := page.AddPasswordForm(dashboard.PasswordValues{
		CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new",
	})

	dashboard.New(client.NewClient(srv.URL), page.Elements()).Init(context.Background())
	require.True(t, form.Submit(context.Background()))

	assert.Equal(t, 2, requests)
	assert.Equal(t, "42%", page.Progress.Text())
	assert.Equal(t, "7", page.Tests.Text())
	assert.Equal(t, "90%", page.Success.Text())
	assert.Equal(t, "Gold", page.Rank.Text())
	assert.Equal(t, "42%", page.Fill.Width())

	text, kind := page.PasswordMessage.Last()
	assert.Equal(t, "Password changed successfully!", text)
	assert.Equal(t, dashboard.MessageSuccess, kind)
	assert.Equal(t, dashboard.PasswordValues{}, form.Values())
	assert.Contains(t, out.String(), "[success] Password changed successfully!")
}

func TestPasswordMismatchNeverReachesServer(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	page := NewPage(&bytes.Buffer{})
	form := page.AddPasswordForm(dashboard.PasswordValues{NewPassword: "abc", ConfirmPassword: "abcd"})
	c := dashboard.New(client.NewClient(srv.URL), page.Elements())
	c.Init(context.Background())
	requests = 0

	form.Submit(context.Background())

	assert.Zero(t, requests)
	text, kind := page.PasswordMessage.Last()
	assert.Equal(t, "Passwords do not match", text)
	assert.Equal(t, dashboard.MessageError, kind)
}

func TestSubmitWithoutHandler(t *testing.T) {
	page := NewPage(&bytes.Buffer{})
	form := page.AddProfileForm(dashboard.ProfileValues{})
	assert.False(t, form.Submit(context.Background()))
}
