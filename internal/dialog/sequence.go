package dialog

import "strings"

// Sequence is a named, ordered list of dialog nodes.
type Sequence struct {
	id uint32

	Name        string
	DisplayName string
	// Associate is the entity bound to the sequence, if any. It supplies
	// token values and the default portrait.
	Associate Entity
	// Script, when set, runs this sequence's expressions.
	Script Script
	// CloseOnEnd closes the dialog after the last node instead of returning
	// to the associate's main menu.
	CloseOnEnd bool
	// Sprite is the sequence-level portrait fallback.
	Sprite uint16
	// PreDisplayCheck must succeed before the first node is shown.
	PreDisplayCheck string
	// MenuCheck must succeed for the sequence to appear on a main menu.
	MenuCheck string

	dialogs []Dialog
}

// NewSequence builds a sequence from nodes in display order.
func NewSequence(name string, dialogs ...Dialog) *Sequence {
	s := &Sequence{Name: name, DisplayName: name}
	for _, d := range dialogs {
		s.AddDialog(d)
	}
	return s
}

// AddDialog appends d, binding it to this sequence at the next index.
func (s *Sequence) AddDialog(d Dialog) {
	d.attach(s, len(s.dialogs))
	s.dialogs = append(s.dialogs, d)
}

// ID returns the assigned pursuit id, or 0 before registration.
func (s *Sequence) ID() uint32 {
	return s.id
}

// Global reports whether the sequence is registered in the global catalog.
func (s *Sequence) Global() bool {
	return s.id != 0 && s.id < SharedThreshold
}

// Len returns the number of nodes.
func (s *Sequence) Len() int {
	return len(s.dialogs)
}

// Dialog returns the node at index.
func (s *Sequence) Dialog(index int) (Dialog, bool) {
	if index < 0 || index >= len(s.dialogs) {
		return nil, false
	}
	return s.dialogs[index], true
}

// Dialogs returns the nodes in order.
func (s *Sequence) Dialogs() []Dialog {
	return append([]Dialog(nil), s.dialogs...)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
