// Package termview backs the dashboard elements with a terminal: every
// element write is printed as one line, and forms are filled from values the
// command line collected.
package termview

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"phish_trainer/pkg/dashboard"
)

const barCells = 20

// Page serialises element writes to one writer.
type Page struct {
	mu  sync.Mutex
	out io.Writer

	Progress *Text
	Tests    *Text
	Success  *Text
	Rank     *Text
	Fill     *Bar
	Header   *Text

	ProfileMessage  *Message
	PasswordMessage *Message

	profileForm  *ProfileForm
	passwordForm *PasswordForm
}

func NewPage(out io.Writer) *Page {
	p := &Page{out: out}
	p.Progress = &Text{page: p, label: "Training progress"}
	p.Tests = &Text{page: p, label: "Tests completed"}
	p.Success = &Text{page: p, label: "Success rate"}
	p.Rank = &Text{page: p, label: "Rank"}
	p.Fill = &Bar{page: p}
	p.Header = &Text{page: p, label: "Header"}
	p.ProfileMessage = &Message{page: p, label: "Profile"}
	p.PasswordMessage = &Message{page: p, label: "Password"}
	return p
}

// AddProfileForm puts a profile form on the page.
func (p *Page) AddProfileForm(v dashboard.ProfileValues) *ProfileForm {
	p.profileForm = &ProfileForm{values: v}
	return p.profileForm
}

// AddPasswordForm puts a password form on the page.
func (p *Page) AddPasswordForm(v dashboard.PasswordValues) *PasswordForm {
	p.passwordForm = &PasswordForm{values: v}
	return p.passwordForm
}

// Elements returns the handles for dashboard.New. Forms that were not added
// stay nil so the dashboard leaves them alone.
func (p *Page) Elements() dashboard.Elements {
	el := dashboard.Elements{
		ProgressValue:   p.Progress,
		TestsValue:      p.Tests,
		SuccessValue:    p.Success,
		RankValue:       p.Rank,
		ProgressFill:    p.Fill,
		Header:          p.Header,
		ProfileMessage:  p.ProfileMessage,
		PasswordMessage: p.PasswordMessage,
	}
	if p.profileForm != nil {
		el.ProfileForm = p.profileForm
	}
	if p.passwordForm != nil {
		el.PasswordForm = p.passwordForm
	}
	return el
}

func (p *Page) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

type Text struct {
	page  *Page
	label string

	mu   sync.Mutex
	text string
}

func (t *Text) SetText(text string) {
	t.mu.Lock()
	t.text = text
	t.mu.Unlock()
	t.page.printf("%-18s %s\n", t.label+":", text)
}

func (t *Text) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.text
}

type Bar struct {
	page *Page

	mu    sync.Mutex
	width string
}

func (b *Bar) SetWidth(width string) {
	b.mu.Lock()
	b.width = width
	b.mu.Unlock()
	b.page.printf("%-18s %s\n", "", Render(width))
}

func (b *Bar) Width() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

// Render draws a percentage width such as "42%" as a fixed-size bar. Values
// outside 0-100 are clamped.
func Render(width string) string {
	pct, err := strconv.Atoi(strings.TrimSuffix(width, "%"))
	if err != nil {
		pct = 0
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * barCells / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barCells-filled) + "]"
}

type Message struct {
	page  *Page
	label string

	mu   sync.Mutex
	text string
	kind dashboard.MessageKind
}

func (m *Message) Show(text string, kind dashboard.MessageKind) {
	m.mu.Lock()
	m.text, m.kind = text, kind
	m.mu.Unlock()
	m.page.printf("%-18s [%s] %s\n", m.label+":", kind, text)
}

// Last returns the message currently displayed.
func (m *Message) Last() (string, dashboard.MessageKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.kind
}

type ProfileForm struct {
	mu      sync.Mutex
	values  dashboard.ProfileValues
	handler dashboard.SubmitHandler
}

func (f *ProfileForm) Values() dashboard.ProfileValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *ProfileForm) OnSubmit(h dashboard.SubmitHandler) {
	f.mu.Lock()
	f.handler = h
	f.mu.Unlock()
}

// Submit fires the intercepted submit event and waits for the handler.
// It reports false when no handler is attached.
func (f *ProfileForm) Submit(ctx context.Context) bool {
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	if h == nil {
		return false
	}
	h(ctx)
	return true
}

type PasswordForm struct {
	mu      sync.Mutex
	values  dashboard.PasswordValues
	handler dashboard.SubmitHandler
}

func (f *PasswordForm) Values() dashboard.PasswordValues {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *PasswordForm) Reset() {
	f.mu.Lock()
	f.values = dashboard.PasswordValues{}
	f.mu.Unlock()
}

func (f *PasswordForm) OnSubmit(h dashboard.SubmitHandler) {
	f.mu.Lock()
	f.handler = h
	f.mu.Unlock()
}

func (f *PasswordForm) Submit(ctx context.Context) bool {
	f.mu.Lock()
	h := f.handler
	f.mu.Unlock()
	if h == nil {
		return false
	}
	h(ctx)
	return true
}
