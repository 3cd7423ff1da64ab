package dom

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape neutralizes the five HTML-significant characters.
func Escape(s string) string { return escaper.Replace(s) }

func ShowError(el *Element, msg string) { showMessage(el, "error-message", msg) }

func ShowSuccess(el *Element, msg string) { showMessage(el, "success-message", msg) }

func showMessage(el *Element, class, msg string) {
	if el == nil {
		return
	}
	el.HTML = `<p class="` + class + `">` + Escape(msg) + `</p>`
	el.Hidden = false
}

func HideMessage(el *Element) {
	if el == nil {
		return
	}
	el.Hidden = true
	el.HTML = ""
}

// Submission tracks a submit control across one request cycle.
type Submission struct {
	el       *Element
	label    string
	disabled bool
}

// Begin disables the control and shows busyLabel. A nil element is allowed.
func Begin(el *Element, busyLabel string) *Submission {
	s := &Submission{el: el}
	if el == nil {
		return s
	}
	s.label, s.disabled = el.Text, el.Disabled
	el.Disabled = true
	el.Text = busyLabel
	return s
}

// Restore puts back the label and enabled state saved by Begin.
func (s *Submission) Restore() {
	if s == nil || s.el == nil {
		return
	}
	s.el.Text = s.label
	s.el.Disabled = s.disabled
}
