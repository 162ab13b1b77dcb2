package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phish_trainer/internal/app"
	"phish_trainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	db := testutil.NewDB(t)
	testutil.CreateUser(t, db, "alice", "secret")
	a := app.New(testutil.Config(), db, nil)
	srv := httptest.NewServer(a.Router)
	t.Cleanup(func() {
		srv.Close()
		a.Close(context.Background())
	})
	return srv
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginStatsLogout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	srv := newServer(t)

	out, err := run(t, "secret\n", "login", "--server", srv.URL+"/", "--username", "alice")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in successfully!")

	info, err := os.Stat(filepath.Join(home, ".phishtrainer", "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	s, err := LoadSession()
	require.NoError(t, err)
	assert.Equal(t, srv.URL, s.Server)
	assert.Equal(t, "alice", s.Username)

	out, err = run(t, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Training progress: 0%")
	assert.Contains(t, out, "Rank:              Advanced")

	_, err = run(t, "", "logout")
	require.NoError(t, err)
	_, err = LoadSession()
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	srv := newServer(t)

	_, err := run(t, "nope\n", "login", "--server", srv.URL, "--username", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials!")
}

func TestProfileAndPassword(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	srv := newServer(t)
	_, err := run(t, "secret\n", "login", "--server", srv.URL, "--username", "alice")
	require.NoError(t, err)

	out, err := run(t, "", "profile", "--email", "alice@corp.example", "--level", "expert")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile updated successfully!")
	assert.Contains(t, out, "Welcome, alice!")

	_, err = run(t, "", "profile", "--email", "alice@corp.example", "--level", "guru")
	assert.Error(t, err)

	_, err = run(t, "secret\nabc\nabcd\n", "password")
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", err.Error())

	out, err = run(t, "secret\nnext\nnext\n", "password", "--locale", "ru")
	require.NoError(t, err)
	assert.Contains(t, out, "Password changed successfully!")

	_, err = run(t, "secret\n", "login", "--server", srv.URL, "--username", "alice")
	assert.Error(t, err)
	_, err = run(t, "next\n", "login", "--server", srv.URL, "--username", "alice")
	assert.NoError(t, err)
}

func TestCommandsNeedSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := run(t, "", "stats")
	assert.ErrorIs(t, err, errNotLoggedIn)

	_, err = run(t, "", "logout")
	assert.NoError(t, err)
}

func TestNormalizeServer(t *testing.T) {
	got, err := normalizeServer("https://trainer.example/")
	require.NoError(t, err)
	assert.Equal(t, "https://trainer.example", got)

	_, err = normalizeServer("trainer.example")
	assert.Error(t, err)
}
