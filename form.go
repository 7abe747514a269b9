package main

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldIndex int

const (
	fieldName fieldIndex = iota
	fieldEmail
	fieldCompany
	fieldService
	fieldMessage
	fieldSubmit
	fieldCount
)

type formBanner int

const (
	bannerNone formBanner = iota
	bannerSuccess
	bannerFailure
)

// emailPattern accepts local-part@domain-with-dot, nothing fancier. The form
// is a first gate, not an RFC parser.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateName(v string) string {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < 2 {
		return "Please enter your name (at least 2 characters)."
	}
	return ""
}

func validateEmail(v string) string {
	if !emailPattern.MatchString(strings.TrimSpace(v)) {
		return "Please enter a valid email address."
	}
	return ""
}

func validateMessage(v string) string {
	if utf8.RuneCountInString(strings.TrimSpace(v)) < 10 {
		return "Please tell us a bit more (at least 10 characters)."
	}
	return ""
}

// contactForm owns the contact section's state: three text inputs, a service
// selector, a message area, per-field error marks and the submission
// lifecycle.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	company textinput.Model
	service int
	message textarea.Model

	serviceOptions []string
	focus          fieldIndex
	errors         [fieldCount]string
	submitting     bool
	banner         formBanner
	spin           spinner.Model
	submitter      Submitter
}

func newContactForm(serviceTypes []string, submitter Submitter) *contactForm {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 80
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "you@company.com"
	email.CharLimit = 120
	email.Prompt = ""

	company := textinput.New()
	company.Placeholder = "Company (optional)"
	company.CharLimit = 80
	company.Prompt = ""

	message := textarea.New()
	message.Placeholder = "What are you trying to build?"
	message.CharLimit = 2000
	message.SetHeight(4)
	message.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &contactForm{
		name:           name,
		email:          email,
		company:        company,
		message:        message,
		serviceOptions: serviceTypes,
		focus:          fieldName,
		spin:           sp,
		submitter:      submitter,
	}
}

// Focus moves keyboard focus to field f and returns the blink command for
// text fields.
func (f *contactForm) Focus(target fieldIndex) tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.company.Blur()
	f.message.Blur()
	f.focus = target
	switch target {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldCompany:
		return f.company.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *contactForm) Blur() {
	f.name.Blur()
	f.email.Blur()
	f.company.Blur()
	f.message.Blur()
}

func (f *contactForm) Focused() fieldIndex {
	return f.focus
}

func (f *contactForm) NextField() tea.Cmd {
	return f.Focus(fieldIndex(wrapIndex(int(f.focus)+1, int(fieldCount))))
}

func (f *contactForm) PrevField() tea.Cmd {
	return f.Focus(fieldIndex(wrapIndex(int(f.focus)-1, int(fieldCount))))
}

func (f *contactForm) CycleService(delta int) {
	if len(f.serviceOptions) == 0 {
		return
	}
	f.service = wrapIndex(f.service+delta, len(f.serviceOptions))
}

func (f *contactForm) fieldValue(i fieldIndex) string {
	switch i {
	case fieldName:
		return f.name.Value()
	case fieldEmail:
		return f.email.Value()
	case fieldCompany:
		return f.company.Value()
	case fieldMessage:
		return f.message.Value()
	}
	return ""
}

// HandleKey routes a key to the focused input. A field carrying an error
// drops it on the first change after it was marked. Inert while a submission
// is in flight.
func (f *contactForm) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if f.submitting {
		return nil
	}
	before := f.fieldValue(f.focus)
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldCompany:
		f.company, cmd = f.company.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	case fieldService:
		switch msg.String() {
		case "left", "h":
			f.CycleService(-1)
		case "right", "l", " ":
			f.CycleService(1)
		}
	}
	if f.errors[f.focus] != "" && f.fieldValue(f.focus) != before {
		f.errors[f.focus] = ""
	}
	return cmd
}

// Validate clears all error marks and re-runs the three rules. It returns
// the first invalid field in declaration order, or fieldCount when the form
// is clean.
func (f *contactForm) Validate() fieldIndex {
	for i := range f.errors {
		f.errors[i] = ""
	}
	f.errors[fieldName] = validateName(f.name.Value())
	f.errors[fieldEmail] = validateEmail(f.email.Value())
	f.errors[fieldMessage] = validateMessage(f.message.Value())

	for _, i := range []fieldIndex{fieldName, fieldEmail, fieldMessage} {
		if f.errors[i] != "" {
			return i
		}
	}
	return fieldCount
}

// Submit validates and, on success, enters the loading state and dispatches
// exactly one collaborator call. On validation failure focus jumps to the
// first invalid field and nothing is sent.
func (f *contactForm) Submit() tea.Cmd {
	if f.submitting {
		return nil
	}
	f.banner = bannerNone
	if first := f.Validate(); first != fieldCount {
		return f.Focus(first)
	}

	f.submitting = true
	req := SubmitRequest{
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Company: strings.TrimSpace(f.company.Value()),
		Service: f.ServiceValue(),
		Message: strings.TrimSpace(f.message.Value()),
	}
	submitter := f.submitter
	call := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitDoneMsg{err: submitter.Submit(ctx, req)}
	}
	return tea.Batch(f.spin.Tick, call)
}

// HandleResult ends the submission lifecycle. The loading state clears on
// both paths; success also clears the fields and error marks.
func (f *contactForm) HandleResult(err error) {
	f.submitting = false
	if err != nil {
		f.banner = bannerFailure
		return
	}
	f.banner = bannerSuccess
	f.name.Reset()
	f.email.Reset()
	f.company.Reset()
	f.message.Reset()
	f.service = 0
	for i := range f.errors {
		f.errors[i] = ""
	}
}

func (f *contactForm) HandleSpinner(msg spinner.TickMsg) tea.Cmd {
	if !f.submitting {
		return nil
	}
	var cmd tea.Cmd
	f.spin, cmd = f.spin.Update(msg)
	return cmd
}

func (f *contactForm) Submitting() bool {
	return f.submitting
}

func (f *contactForm) Banner() formBanner {
	return f.banner
}

func (f *contactForm) Error(i fieldIndex) string {
	return f.errors[i]
}

func (f *contactForm) ServiceValue() string {
	if len(f.serviceOptions) == 0 {
		return ""
	}
	return f.serviceOptions[f.service]
}

func (f *contactForm) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	f.name.Width = w
	f.email.Width = w
	f.company.Width = w
	f.message.SetWidth(w)
}
