// Package dashboard is the page controller of the trainer dashboard: it loads
// the user's statistics and drives the profile and password forms.
package dashboard

import (
	"context"
	"strconv"

	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"

	"go.uber.org/zap"
)

// Backend is the server the dashboard talks to. *client.Client implements it.
type Backend interface {
	GetUserStats(ctx context.Context) (*api.Response, error)
	UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*api.Response, error)
	ChangePassword(ctx context.Context, req api.PasswordChangeRequest) (*api.Response, error)
}

// Client holds no state besides its collaborators, so concurrent submissions
// only race on the elements themselves: the last response to arrive wins.
type Client struct {
	backend  Backend
	elements Elements
	messages i18n.Catalog
	log      *zap.Logger
}

type Option func(*Client)

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithCatalog selects the locale of the fixed client-side messages.
func WithCatalog(cat i18n.Catalog) Option {
	return func(c *Client) {
		c.messages = cat
	}
}

func New(backend Backend, elements Elements, opts ...Option) *Client {
	c := &Client{
		backend:  backend,
		elements: elements,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init is the page-ready hook: it refreshes the statistics and intercepts the
// forms that are present.
func (c *Client) Init(ctx context.Context) {
	c.RefreshStats(ctx)

	if form := c.elements.ProfileForm; form != nil {
		form.OnSubmit(func(ctx context.Context) {
			c.SubmitProfile(ctx, form.Values())
		})
	}

	if form := c.elements.PasswordForm; form != nil {
		form.OnSubmit(func(ctx context.Context) {
			c.SubmitPassword(ctx, form.Values())
		})
	}
}

// RefreshStats loads the statistics panel. Failures are only logged; the
// panel keeps whatever it showed before.
func (c *Client) RefreshStats(ctx context.Context) {
	resp, err := c.backend.GetUserStats(ctx)
	if err != nil {
		c.log.Error("failed to load user stats", zap.Error(err))
		return
	}
	if !resp.Success || resp.Stats == nil {
		c.log.Warn("user stats rejected by server", zap.String("message", resp.Message))
		return
	}

	stats := resp.Stats
	progress := strconv.Itoa(stats.TrainingProgress) + "%"

	setText(c.elements.ProgressValue, progress)
	setText(c.elements.TestsValue, strconv.Itoa(stats.TestsCompleted))
	setText(c.elements.SuccessValue, strconv.Itoa(stats.SuccessRate)+"%")
	setText(c.elements.RankValue, stats.Rank)

	if c.elements.ProgressFill != nil {
		c.elements.ProgressFill.SetWidth(progress)
	}
}

// SubmitProfile posts the profile form and shows exactly one message. The
// greeting header changes only when the server accepts the update.
func (c *Client) SubmitProfile(ctx context.Context, v ProfileValues) {
	req := api.ProfileUpdateRequest{
		FullName:      v.FullName,
		Email:         v.Email,
		SecurityLevel: api.SecurityLevel(v.SecurityLevel),
	}

	resp, err := c.backend.UpdateProfile(ctx, req)
	if err != nil {
		c.show(c.elements.ProfileMessage, c.messages.T(i18n.ConnectionError), MessageError)
		return
	}

	if !resp.Success {
		c.show(c.elements.ProfileMessage, resp.Message, MessageError)
		return
	}

	c.show(c.elements.ProfileMessage, resp.Message, MessageSuccess)

	name := v.FullName
	if name == "" {
		name = v.Username
	}
	setText(c.elements.Header, c.messages.Tf(i18n.Welcome, name))
}

// SubmitPassword checks the confirmation locally before any request is made.
// The form is cleared only after a successful change.
func (c *Client) SubmitPassword(ctx context.Context, v PasswordValues) {
	if v.NewPassword != v.ConfirmPassword {
		c.show(c.elements.PasswordMessage, c.messages.T(i18n.PasswordsMismatch), MessageError)
		return
	}

	resp, err := c.backend.ChangePassword(ctx, api.PasswordChangeRequest{
		CurrentPassword: v.CurrentPassword,
		NewPassword:     v.NewPassword,
	})
	if err != nil {
		c.show(c.elements.PasswordMessage, c.messages.T(i18n.ConnectionError), MessageError)
		return
	}

	if !resp.Success {
		c.show(c.elements.PasswordMessage, resp.Message, MessageError)
		return
	}

	c.show(c.elements.PasswordMessage, resp.Message, MessageSuccess)
	if c.elements.PasswordForm != nil {
		c.elements.PasswordForm.Reset()
	}
}

func (c *Client) show(area MessageArea, text string, kind MessageKind) {
	if area != nil {
		area.Show(text, kind)
	}
}

func setText(node TextNode, text string) {
	if node != nil {
		node.SetText(text)
	}
}
