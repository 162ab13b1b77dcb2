//go:build js && wasm

// Package domview binds the dashboard elements to the page DOM.
package domview

import (
	"context"
	"syscall/js"

	"phish_trainer/pkg/dashboard"
)

// Element ids and selectors of the dashboard template.
const (
	IDProgressValue   = "progress-value"
	IDTestsValue      = "tests-value"
	IDSuccessValue    = "success-value"
	IDRankValue       = "rank-value"
	IDProfileForm     = "profileForm"
	IDPasswordForm    = "passwordForm"
	IDProfileMessage  = "profileMessage"
	IDPasswordMessage = "passwordMessage"

	SelectorProgressFill = ".progress-fill"
	SelectorHeader       = ".dashboard-header p"
)

type Document struct {
	doc js.Value
}

func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// Lang is the lang attribute of the html element, "" when unset.
func (d *Document) Lang() string {
	lang := d.doc.Get("documentElement").Get("lang")
	if lang.IsUndefined() || lang.IsNull() {
		return ""
	}
	return lang.String()
}

// Origin is the scheme, host and port the page was served from.
func (d *Document) Origin() string {
	return js.Global().Get("location").Get("origin").String()
}

// Ready calls fn once the DOM is parsed.
func (d *Document) Ready(fn func()) {
	if d.doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb.Release()
		fn()
		return nil
	})
	d.doc.Call("addEventListener", "DOMContentLoaded", cb)
}

// Elements looks every handle up once. Missing elements stay nil.
func (d *Document) Elements() dashboard.Elements {
	var el dashboard.Elements

	if v, ok := d.byID(IDProgressValue); ok {
		el.ProgressValue = textNode{v}
	}
	if v, ok := d.byID(IDTestsValue); ok {
		el.TestsValue = textNode{v}
	}
	if v, ok := d.byID(IDSuccessValue); ok {
		el.SuccessValue = textNode{v}
	}
	if v, ok := d.byID(IDRankValue); ok {
		el.RankValue = textNode{v}
	}
	if v, ok := d.query(SelectorProgressFill); ok {
		el.ProgressFill = progressBar{v}
	}
	if v, ok := d.query(SelectorHeader); ok {
		el.Header = textNode{v}
	}
	if v, ok := d.byID(IDProfileForm); ok {
		el.ProfileForm = &profileForm{form{v}}
	}
	if v, ok := d.byID(IDProfileMessage); ok {
		el.ProfileMessage = messageArea{v}
	}
	if v, ok := d.byID(IDPasswordForm); ok {
		el.PasswordForm = &passwordForm{form{v}}
	}
	if v, ok := d.byID(IDPasswordMessage); ok {
		el.PasswordMessage = messageArea{v}
	}

	return el
}

func (d *Document) byID(id string) (js.Value, bool) {
	v := d.doc.Call("getElementById", id)
	return v, present(v)
}

func (d *Document) query(selector string) (js.Value, bool) {
	v := d.doc.Call("querySelector", selector)
	return v, present(v)
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

type textNode struct{ v js.Value }

func (t textNode) SetText(text string) { t.v.Set("textContent", text) }

type progressBar struct{ v js.Value }

func (p progressBar) SetWidth(width string) { p.v.Get("style").Set("width", width) }

type messageArea struct{ v js.Value }

func (m messageArea) Show(text string, kind dashboard.MessageKind) {
	m.v.Set("textContent", text)
	m.v.Set("className", kind.ClassName())
}

type form struct{ v js.Value }

// field reads a named control of the form; absent controls read as "".
func (f form) field(name string) string {
	c := f.v.Get(name)
	if !present(c) {
		return ""
	}
	return c.Get("value").String()
}

// onSubmit cancels the native submission and runs h on its own goroutine so
// the JS event loop is never blocked by the network call.
func (f form) onSubmit(h dashboard.SubmitHandler) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go h(context.Background())
		return nil
	})
	f.v.Call("addEventListener", "submit", cb)
}

type profileForm struct{ form }

func (p *profileForm) Values() dashboard.ProfileValues {
	return dashboard.ProfileValues{
		FullName:      p.field("full_name"),
		Email:         p.field("email"),
		SecurityLevel: p.field("security_level"),
		Username:      p.field("username"),
	}
}

func (p *profileForm) OnSubmit(h dashboard.SubmitHandler) { p.onSubmit(h) }

type passwordForm struct{ form }

func (p *passwordForm) Values() dashboard.PasswordValues {
	return dashboard.PasswordValues{
		CurrentPassword: p.field("current_password"),
		NewPassword:     p.field("new_password"),
		ConfirmPassword: p.field("confirm_password"),
	}
}

func (p *passwordForm) Reset() { p.v.Call("reset") }

func (p *passwordForm) OnSubmit(h dashboard.SubmitHandler) { p.onSubmit(h) }
