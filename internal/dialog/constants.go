package dialog

// Numeric pursuit id ranges.
const (
	// SharedThreshold bounds global sequence ids; global ids are [1, 5000).
	SharedThreshold uint32 = 5000
	// PursuitThreshold starts the ids of entity-local dialog sequences.
	// Entity-local main-menu pursuits use [SharedThreshold, PursuitThreshold).
	PursuitThreshold uint32 = 5100
	// HardcodedThreshold starts the ids of built-in merchant menu actions.
	HardcodedThreshold uint32 = 0xFF00
	// AsyncPursuitID is the pursuit id reported while an async dialog
	// targets the user.
	AsyncPursuitID uint32 = 0xFFFF
	// AsyncMerchantID is the merchant id reported while an async dialog
	// targets the user.
	AsyncMerchantID uint32 = 0xFFFFFFFF
)

// MainMenuTarget is the jump target that returns to the associate's menu.
const MainMenuTarget = "mainmenu"

// Script values exposed to response handlers.
const (
	ValuePlayerSelection = "player_selection"
	ValuePlayerResponse  = "player_response"
)

// Kind identifies a dialog node variant.
type Kind uint8

const (
	KindSimple Kind = iota
	KindOptions
	KindText
	KindJump
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindOptions:
		return "options"
	case KindText:
		return "text"
	case KindJump:
		return "jump"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// wireType is the dialog type byte the client switches on.
func (k Kind) wireType() byte {
	switch k {
	case KindOptions:
		return 2
	case KindText:
		return 4
	default:
		return 0
	}
}

// closeDialogType tells the client to dismiss the open dialog.
const closeDialogType byte = 0x0A

// ObjectType tells the client what kind of object fronts a dialog.
type ObjectType byte

const (
	ObjectCreature ObjectType = 1
	ObjectItem     ObjectType = 2
	ObjectReactor  ObjectType = 3
	ObjectCastable ObjectType = 4
	ObjectAsync    ObjectType = 5
)

// merchantObjectType is the object type used by the main menu packet.
const merchantObjectType byte = 1
