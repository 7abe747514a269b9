package main

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	calls []SubmitRequest
	err   error
}

func (f *fakeSubmitter) Submit(ctx context.Context, req SubmitRequest) error {
	f.calls = append(f.calls, req)
	return f.err
}

func testForm(sub Submitter) *contactForm {
	if sub == nil {
		sub = &fakeSubmitter{}
	}
	return newContactForm([]string{"Brand Identity", "Web Experience"}, sub)
}

// runSubmit executes the batch command Submit returns and feeds the
// collaborator result back into the form, standing in for the program loop.
func runSubmit(t *testing.T, f *contactForm) {
	t.Helper()
	cmd := f.Submit()
	require.NotNil(t, cmd)
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if msg, ok := c().(submitDoneMsg); ok {
			f.HandleResult(msg.err)
		}
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()
	require.NotEmpty(t, validateName("A"))
	require.Empty(t, validateName("Al"))
	require.NotEmpty(t, validateName("  A  "), "trimmed length counts")
	require.Empty(t, validateName(" Al "))
	require.NotEmpty(t, validateName("Á"), "characters, not bytes")
	require.Empty(t, validateName("Ál"))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	require.Empty(t, validateEmail("a@b.c"))
	require.NotEmpty(t, validateEmail("a@b"))
	require.NotEmpty(t, validateEmail("a b@c.d"))
	require.NotEmpty(t, validateEmail(""))
}

func TestValidateMessage(t *testing.T) {
	t.Parallel()
	require.NotEmpty(t, validateMessage("123456789"))
	require.Empty(t, validateMessage("1234567890"))
	require.NotEmpty(t, validateMessage("  12345678  "), "padding does not count")
	require.NotEmpty(t, validateMessage("ááááá"), "characters, not bytes")
	require.Empty(t, validateMessage("áéíóúáéíóú"))
}

func TestForm_ValidateMarksAndOrders(t *testing.T) {
	t.Parallel()
	f := testForm(nil)
	f.email.SetValue("nope")

	first := f.Validate()
	require.Equal(t, fieldName, first, "first invalid field in declaration order")
	require.NotEmpty(t, f.Error(fieldName))
	require.NotEmpty(t, f.Error(fieldEmail))
	require.NotEmpty(t, f.Error(fieldMessage))
	require.Empty(t, f.Error(fieldCompany))

	f.name.SetValue("Alice")
	first = f.Validate()
	require.Equal(t, fieldEmail, first)
	require.Empty(t, f.Error(fieldName), "old marks cleared before re-validation")
}

func TestForm_InvalidSubmitDoesNotCallCollaborator(t *testing.T) {
	t.Parallel()
	sub := &fakeSubmitter{}
	f := testForm(sub)
	f.name.SetValue("A") // too short

	cmd := f.Submit()
	require.NotNil(t, cmd, "focus command for the first invalid field")
	require.False(t, f.Submitting())
	require.Empty(t, sub.calls)
	require.Equal(t, fieldName, f.Focused())
}

func TestForm_SubmitSuccess(t *testing.T) {
	t.Parallel()
	sub := &fakeSubmitter{}
	f := testForm(sub)
	f.name.SetValue("  Alice  ")
	f.email.SetValue(" alice@loopwell.io ")
	f.company.SetValue(" Loopwell ")
	f.message.SetValue("We need a full rebrand before Q3.")

	runSubmit(t, f)

	require.Len(t, sub.calls, 1, "exactly one collaborator call")
	require.Equal(t, SubmitRequest{
		Name:    "Alice",
		Email:   "alice@loopwell.io",
		Company: "Loopwell",
		Service: "Brand Identity",
		Message: "We need a full rebrand before Q3.",
	}, sub.calls[0], "field values arrive trimmed")

	require.False(t, f.Submitting(), "loading state cleared")
	require.Equal(t, bannerSuccess, f.Banner())
	require.Empty(t, f.name.Value(), "form cleared on success")
	require.Empty(t, f.message.Value())
}

func TestForm_SubmitFailure(t *testing.T) {
	t.Parallel()
	sub := &fakeSubmitter{err: errors.New("boom")}
	f := testForm(sub)
	f.name.SetValue("Alice")
	f.email.SetValue("alice@loopwell.io")
	f.message.SetValue("We need a full rebrand.")

	runSubmit(t, f)

	require.False(t, f.Submitting(), "loading state cleared on failure too")
	require.Equal(t, bannerFailure, f.Banner())
	require.Equal(t, "Alice", f.name.Value(), "failed submission keeps the input")
}

func TestForm_SubmitLockedWhileInFlight(t *testing.T) {
	t.Parallel()
	sub := &fakeSubmitter{}
	f := testForm(sub)
	f.name.SetValue("Alice")
	f.email.SetValue("alice@loopwell.io")
	f.message.SetValue("We need a full rebrand.")

	cmd := f.Submit()
	require.NotNil(t, cmd)
	require.True(t, f.Submitting())

	require.Nil(t, f.Submit(), "second attempt rejected while in flight")
	require.Nil(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}),
		"inputs are inert while submitting")
	require.Equal(t, "Alice", f.name.Value(), "value unchanged")
}

func TestForm_ErrorClearedOnFirstEdit(t *testing.T) {
	t.Parallel()
	f := testForm(nil)
	f.Validate()
	require.NotEmpty(t, f.Error(fieldName))

	f.Focus(fieldName)
	f.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})
	require.Empty(t, f.Error(fieldName), "error dropped on first change")
	require.NotEmpty(t, f.Error(fieldEmail), "other marks untouched")
}

func TestForm_ServiceCycleWraps(t *testing.T) {
	t.Parallel()
	f := testForm(nil)
	require.Equal(t, "Brand Identity", f.ServiceValue())
	f.CycleService(1)
	require.Equal(t, "Web Experience", f.ServiceValue())
	f.CycleService(1)
	require.Equal(t, "Brand Identity", f.ServiceValue())
	f.CycleService(-1)
	require.Equal(t, "Web Experience", f.ServiceValue())
}

func TestForm_FieldFocusCycle(t *testing.T) {
	t.Parallel()
	f := testForm(nil)
	require.Equal(t, fieldName, f.Focused())
	for i := 0; i < int(fieldCount); i++ {
		f.NextField()
	}
	require.Equal(t, fieldName, f.Focused(), "focus wraps around the form")
	f.PrevField()
	require.Equal(t, fieldSubmit, f.Focused())
}
