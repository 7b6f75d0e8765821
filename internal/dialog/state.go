package dialog

import (
	apperrors "github.com/louisbranch/pursuit/internal/platform/errors"
)

// Owner is the user a State belongs to.
type Owner interface {
	SetInDialog(bool)
}

// State is a user's dialog state machine: idle, or in a dialog with an
// associate at an index of the active sequence.
//
// State is not safe for concurrent use. It is only mutated from its owner's
// packet worker.
type State struct {
	owner Owner

	// associate fronts the dialog; nil only for global sequences.
	associate Entity
	sequence  *Sequence
	index     int
	// async marks a dialog pushed onto this user by another actor.
	async bool
	// previousPursuitID is the pursuit left by the last TransitionDialog.
	previousPursuitID    uint32
	hasPreviousPursuitID bool
}

// NewState returns an idle state for owner.
func NewState(owner Owner) *State {
	return &State{owner: owner}
}

// InDialog reports whether a dialog is active. Local sequences additionally
// need an associate.
func (s *State) InDialog() bool {
	if s.sequence == nil {
		return false
	}
	return s.sequence.Global() || s.associate != nil
}

// Associate returns the entity fronting the active dialog.
func (s *State) Associate() Entity { return s.associate }

// Sequence returns the active sequence.
func (s *State) Sequence() *Sequence { return s.sequence }

// Index returns the active node index.
func (s *State) Index() int { return s.index }

// Async reports whether the active dialog was pushed by another actor.
func (s *State) Async() bool { return s.async }

// ActiveDialog returns the node at the current index.
func (s *State) ActiveDialog() Dialog {
	if s.sequence == nil {
		return nil
	}
	d, _ := s.sequence.Dialog(s.index)
	return d
}

// CurrentPursuitID is the pursuit id the client sees for this dialog.
func (s *State) CurrentPursuitID() uint32 {
	if s.async {
		return AsyncPursuitID
	}
	if s.sequence == nil {
		return 0
	}
	return s.sequence.id
}

// CurrentMerchantID is the object id the client sees for this dialog.
func (s *State) CurrentMerchantID() uint32 {
	if s.async {
		return AsyncMerchantID
	}
	if s.associate == nil {
		return 0
	}
	return s.associate.ID()
}

// PreviousPursuitID returns the pursuit left by the last transition.
func (s *State) PreviousPursuitID() (uint32, bool) {
	return s.previousPursuitID, s.hasPreviousPursuitID
}

// ClearPreviousPursuit forgets the pursuit left by the last transition.
func (s *State) ClearPreviousPursuit() {
	s.previousPursuitID, s.hasPreviousPursuitID = 0, false
}

// StartDialog enters seq at index 0 with target as associate.
func (s *State) StartDialog(target Entity, seq *Sequence) error {
	return s.start(target, seq, false)
}

// StartAsyncDialog is StartDialog for a dialog pushed by another actor.
func (s *State) StartAsyncDialog(invoker Entity, seq *Sequence) error {
	return s.start(invoker, seq, true)
}

func (s *State) start(target Entity, seq *Sequence, async bool) error {
	if s.InDialog() {
		return ErrAlreadyInDialog
	}
	if seq == nil {
		return ErrUnknownSequence
	}
	if seq.id == 0 {
		return errorf(apperrors.CodeUnassignedSequence, "sequence %q has no id", seq.Name)
	}
	if seq.Len() == 0 {
		return errorf(apperrors.CodeUnknownSequence, "sequence %q has no dialogs", seq.Name)
	}
	if target == nil && !seq.Global() {
		return errorf(apperrors.CodeStaleSession, "local sequence %q needs an associate", seq.Name)
	}
	s.associate = target
	s.sequence = seq
	s.index = 0
	s.async = async
	s.ClearPreviousPursuit()
	s.setFlag(true)
	return nil
}

// TransitionDialog moves an active dialog to seq without ending it,
// remembering the pursuit it left.
func (s *State) TransitionDialog(target Entity, seq *Sequence) error {
	if !s.InDialog() {
		return ErrNotInDialog
	}
	if seq == nil {
		return ErrUnknownSequence
	}
	if seq.id == 0 {
		return errorf(apperrors.CodeUnassignedSequence, "sequence %q has no id", seq.Name)
	}
	s.previousPursuitID, s.hasPreviousPursuitID = s.CurrentPursuitID(), true
	s.associate = target
	s.sequence = seq
	s.index = 0
	return nil
}

// SetDialogIndex moves to newIndex after checking that the client is talking
// about this dialog: the same associate, the same pursuit and, for dialogs
// with a nearby associate, the same map. Only single steps within the
// sequence are accepted.
func (s *State) SetDialogIndex(target Entity, pursuitID uint32, newIndex int) error {
	if !s.InDialog() {
		return ErrNotInDialog
	}
	if !sameEntity(target, s.associate) {
		return errorf(apperrors.CodeStaleSession, "dialog target does not match associate")
	}
	if pursuitID != s.CurrentPursuitID() {
		return errorf(apperrors.CodeStaleSession, "pursuit %d does not match active pursuit %d", pursuitID, s.CurrentPursuitID())
	}
	if !s.async && !sameMap(s.owner, target) {
		return errorf(apperrors.CodeStaleSession, "dialog target is on another map")
	}
	switch {
	case newIndex == s.index+1 && newIndex < s.sequence.Len():
	case newIndex == s.index-1 && newIndex >= 0:
	default:
		return errorf(apperrors.CodeInvalidNavigation, "index %d is not adjacent to %d in a %d node sequence", newIndex, s.index, s.sequence.Len())
	}
	s.index = newIndex
	return nil
}

// advance steps past a hidden node the server itself ran.
func (s *State) advance(from *Sequence, index int) bool {
	if s.sequence != from || s.index != index || index+1 >= from.Len() {
		return false
	}
	s.index++
	return true
}

// EndDialog returns to idle and lowers the owner's in-dialog flag.
func (s *State) EndDialog() {
	s.associate = nil
	s.sequence = nil
	s.index = 0
	s.async = false
	s.ClearPreviousPursuit()
	s.setFlag(false)
}

func (s *State) setFlag(v bool) {
	if s.owner != nil {
		s.owner.SetInDialog(v)
	}
}

func sameEntity(a, b Entity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

func sameMap(owner Owner, target Entity) bool {
	o, ok := owner.(Located)
	if !ok {
		return true
	}
	t, ok := target.(Located)
	if !ok {
		return true
	}
	return o.MapID() == t.MapID()
}
