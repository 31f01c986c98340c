package domain

import "strings"

// CardDisplayInput is the value a Display Card is rendered from.
// Both fields are optional; use Title and Open to read them with their
// default resolution applied.
type CardDisplayInput struct {
	Label  *string `json:"label,omitempty" yaml:"label,omitempty"`
	IsOpen *bool   `json:"is_open,omitempty" yaml:"open,omitempty"`
}

// NewCard builds a fully specified card input.
func NewCard(label string, isOpen bool) CardDisplayInput {
	return CardDisplayInput{Label: &label, IsOpen: &isOpen}
}

// Title returns the label, or "" when it is unset.
func (c CardDisplayInput) Title() string {
	if c.Label == nil {
		return ""
	}
	return *c.Label
}

// Open resolves the open flag. Unset means closed.
func (c CardDisplayInput) Open() bool {
	return c.IsOpen != nil && *c.IsOpen
}

// Status derives the badge status from the open flag.
func (c CardDisplayInput) Status() CardStatus {
	if c.Open() {
		return StatusOpen
	}
	return StatusClosed
}

// Validate rejects labels that cannot be shown on a single title line.
func (c CardDisplayInput) Validate() error {
	if c.Label != nil && strings.ContainsAny(*c.Label, "\r\n") {
		return ErrValidation("card label %q must be a single line", *c.Label)
	}
	return nil
}

// CardStatus is the two-valued status shown on a card badge.
type CardStatus int

const (
	StatusClosed CardStatus = iota
	StatusOpen
)

// Label returns the badge text.
func (s CardStatus) Label() string {
	if s == StatusOpen {
		return "Open"
	}
	return "Closed"
}

// Tone returns the badge styling variant.
func (s CardStatus) Tone() string {
	if s == StatusOpen {
		return "success"
	}
	return "danger"
}

func (s CardStatus) String() string { return s.Label() }
