package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"phish_trainer/pkg/client"
)

const (
	configDir   = ".phishtrainer"
	sessionFile = "token"
)

var errNotLoggedIn = errors.New("not logged in. Run 'phishctl login' first")

// Session is what login leaves on disk for the other commands.
type Session struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func sessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, configDir, sessionFile), nil
}

// SaveSession writes the session with 0600 permissions.
func SaveSession(s Session) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("cannot write session file %s: %w", path, err)
	}
	return nil
}

func LoadSession() (Session, error) {
	path, err := sessionPath()
	if err != nil {
		return Session{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, errNotLoggedIn
		}
		return Session{}, fmt.Errorf("cannot read session file: %w", err)
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, fmt.Errorf("corrupt session file %s: %w", path, err)
	}
	if s.Token == "" {
		return Session{}, errNotLoggedIn
	}
	return s, nil
}

func DeleteSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func normalizeServer(server string) (string, error) {
	server = strings.TrimRight(server, "/")
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		return "", fmt.Errorf("server URL must start with http:// or https://")
	}
	return server, nil
}

// sessionClient returns the saved session and a client authenticated with it.
// --server overrides the saved server.
func sessionClient(opts *options) (Session, *client.Client, error) {
	s, err := LoadSession()
	if err != nil {
		return Session{}, nil, err
	}
	server := s.Server
	if opts.server != "" {
		server = opts.server
	}
	server, err = normalizeServer(server)
	if err != nil {
		return Session{}, nil, err
	}
	c := client.NewClient(server, client.WithToken(s.Token), client.WithTimeout(opts.timeout))
	return s, c, nil
}
