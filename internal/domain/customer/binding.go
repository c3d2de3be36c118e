package customer

import (
	"strings"

	"salesdesk/internal/core/apperror"
)

// Mode tells which kind of customer a document is bound to.
type Mode int

const (
	ModeUnset Mode = iota
	ModeResolved
	ModeNew
	ModeWalkIn
)

func (m Mode) String() string {
	switch m {
	case ModeResolved:
		return "resolved"
	case ModeNew:
		return "new"
	case ModeWalkIn:
		return "walk_in"
	default:
		return "unset"
	}
}

// Binding is the customer side of one edit session.
//
// At most one of a resolved client or a captured draft is held at a time.
// The final-consumer flag overrides both while it is set and leaves them in
// place so clearing it restores the previous state.
type Binding struct {
	typed         string
	resolved      *Client
	draft         *Draft
	finalConsumer bool
}

// NewBinding returns an unbound customer.
func NewBinding() *Binding {
	return &Binding{}
}

// ResolvedBinding binds an already persisted client, as when editing a stored document.
func ResolvedBinding(c Client) (*Binding, error) {
	b := NewBinding()
	if err := b.Resolve(c); err != nil {
		return nil, err
	}
	return b, nil
}

// Typed records the identification being typed. A different identification
// than the resolved client's or the captured draft's unbinds it, so the new
// identification has to be looked up or captured again.
func (b *Binding) Typed(identification string) {
	identification = strings.TrimSpace(identification)
	b.typed = identification
	if b.resolved != nil && b.resolved.Identification != identification {
		b.resolved = nil
	}
	if b.draft != nil && b.draft.Identification != identification {
		b.draft = nil
	}
}

// Resolve binds a directory client by reference and discards any draft.
func (b *Binding) Resolve(c Client) error {
	if c.ID == 0 {
		return apperror.NewValidation("resolved client must have an id").
			WithDetail("identification", c.Identification)
	}
	b.resolved = &c
	b.draft = nil
	b.typed = c.Identification
	return nil
}

// Unresolve records a lookup miss: the typed identification stays, the client goes.
func (b *Binding) Unresolve() {
	b.resolved = nil
}

// Capture switches to new-client mode with validated fields.
// A blank identification in f falls back to the typed one.
func (b *Binding) Capture(f Fields) error {
	if strings.TrimSpace(f.Identification) == "" {
		f.Identification = b.typed
	}
	d, err := NewDraft(f)
	if err != nil {
		return err
	}
	b.draft = d
	b.resolved = nil
	b.typed = d.Identification
	return nil
}

// SetFinalConsumer toggles the walk-in flag.
func (b *Binding) SetFinalConsumer(on bool) {
	b.finalConsumer = on
}

// FinalConsumer reports whether the walk-in flag is set.
func (b *Binding) FinalConsumer() bool {
	return b.finalConsumer
}

// Mode returns the active customer mode.
func (b *Binding) Mode() Mode {
	switch {
	case b.finalConsumer:
		return ModeWalkIn
	case b.resolved != nil:
		return ModeResolved
	case b.draft != nil:
		return ModeNew
	default:
		return ModeUnset
	}
}

// Identification returns the identification currently typed or bound.
func (b *Binding) Identification() string {
	return b.typed
}

// Client returns a copy of the resolved client, or nil.
func (b *Binding) Client() *Client {
	if b.resolved == nil {
		return nil
	}
	c := *b.resolved
	return &c
}

// Draft returns a copy of the captured draft, or nil.
func (b *Binding) Draft() *Draft {
	if b.draft == nil {
		return nil
	}
	d := *b.draft
	return &d
}

// Validate fails unless a customer is bound.
func (b *Binding) Validate() error {
	if b.Mode() == ModeUnset {
		return apperror.NewValidation("a client is required: look one up, capture a new one or mark final consumer").
			WithDetail("field", "client")
	}
	return nil
}
