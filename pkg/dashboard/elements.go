package dashboard

import "context"

type MessageKind int

const (
	MessageSuccess MessageKind = iota
	MessageError
)

// ClassName is the CSS class list the page template styles message areas with.
func (k MessageKind) ClassName() string {
	if k == MessageSuccess {
		return "message success"
	}
	return "message error"
}

func (k MessageKind) String() string {
	if k == MessageSuccess {
		return "success"
	}
	return "error"
}

// TextNode is an element whose text content can be replaced.
type TextNode interface {
	SetText(text string)
}

// ProgressBar is the progress-fill element; width is a CSS length such as "42%".
type ProgressBar interface {
	SetWidth(width string)
}

// MessageArea renders the outcome of the latest form submission.
type MessageArea interface {
	Show(text string, kind MessageKind)
}

// SubmitHandler runs once per intercepted submit event. The host has already
// suppressed the default form submission.
type SubmitHandler func(ctx context.Context)

type ProfileValues struct {
	FullName      string
	Email         string
	SecurityLevel string
	// Username is the read-only account name rendered in the form.
	Username string
}

type PasswordValues struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

type ProfileForm interface {
	Values() ProfileValues
	OnSubmit(h SubmitHandler)
}

type PasswordForm interface {
	Values() PasswordValues
	Reset()
	OnSubmit(h SubmitHandler)
}

// Elements are the page handles the client renders into. A nil handle means
// the element is not on the page and writes to it are skipped.
type Elements struct {
	ProgressValue TextNode
	TestsValue    TextNode
	SuccessValue  TextNode
	RankValue     TextNode
	ProgressFill  ProgressBar

	Header TextNode

	ProfileForm    ProfileForm
	ProfileMessage MessageArea

	PasswordForm    PasswordForm
	PasswordMessage MessageArea
}
