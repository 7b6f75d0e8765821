package dialog

import (
	"github.com/louisbranch/pursuit/internal/protocol/packet"
)

// menuOptionsType is the merchant dialog type of a plain options menu.
const menuOptionsType byte = 0

// portrait is how the client draws the object fronting a dialog.
type portrait struct {
	objectType ObjectType
	objectID   uint32
	sprite     uint16
	color      byte
	name       string
}

// portraitFor resolves the portrait of d as shown to inv.Target. Async
// dialogs are addressed through the state's sentinel ids.
func portraitFor(d Dialog, inv Invocation) portrait {
	p := portrait{objectType: ObjectCreature}
	origin := inv.Origin
	if pt, ok := origin.(Portrayed); ok {
		p.objectType = pt.DialogObjectType()
		p.color = pt.DialogColor()
	}
	if origin != nil {
		p.objectID = origin.ID()
		p.name = origin.Name()
	}
	st := inv.Target.DialogState()
	if st.Async() {
		p.objectType = ObjectAsync
		p.objectID = st.CurrentMerchantID()
	}
	p.sprite = spriteFor(d, origin)
	if p.name == "" {
		if a := st.Associate(); a != nil {
			p.name = a.Name()
		}
	}
	if p.name == "" && d.Sequence() != nil {
		p.name = d.Sequence().DisplayName
	}
	return p
}

// spriteFor applies the portrait precedence: node, associate, sequence.
func spriteFor(d Dialog, associate Entity) uint16 {
	if s := d.base().Sprite; s != 0 {
		return s
	}
	if associate != nil {
		if s := associate.DialogSprite(); s != 0 {
			return s
		}
	}
	if seq := d.Sequence(); seq != nil {
		if seq.Associate != nil {
			if s := seq.Associate.DialogSprite(); s != 0 {
				return s
			}
		}
		return seq.Sprite
	}
	return 0
}

// pursuitIDFor is the pursuit id the client must echo back for d.
func pursuitIDFor(d Dialog, st *State) uint16 {
	if st.Async() {
		return uint16(st.CurrentPursuitID())
	}
	if seq := d.Sequence(); seq != nil {
		return uint16(seq.ID())
	}
	return 0
}

// writeBase writes the header shared by every rendered node.
func writeBase(w *packet.Writer, d Dialog, inv Invocation, text string) {
	p := portraitFor(d, inv)
	w.WriteUint8(d.Kind().wireType())
	w.WriteUint8(byte(p.objectType))
	w.WriteUint32(p.objectID)
	w.WriteUint8(0)
	w.WriteUint16(p.sprite)
	w.WriteUint8(p.color)
	w.WriteUint8(0)
	w.WriteUint16(p.sprite)
	w.WriteUint8(p.color)
	w.WriteUint16(pursuitIDFor(d, inv.Target.DialogState()))
	w.WriteUint16(uint16(d.Index()))
	w.WriteBool(HasPrev(d))
	w.WriteBool(HasNext(d))
	w.WriteUint8(0)
	w.WriteString8(p.name)
	w.WriteString16(text)
}

// SimpleFrame renders a simple node with its substituted text.
func SimpleFrame(d *SimpleDialog, inv Invocation, text string) packet.Frame {
	w := packet.NewWriter()
	writeBase(w, d, inv, text)
	return packet.Frame{Opcode: packet.OpDialog, Payload: w.Bytes()}
}

// OptionsFrame renders an options node with the given labels.
func OptionsFrame(d *OptionsDialog, inv Invocation, text string, labels []string) packet.Frame {
	w := packet.NewWriter()
	writeBase(w, d, inv, text)
	w.WriteUint8(byte(len(labels)))
	for _, label := range labels {
		w.WriteString8(label)
	}
	return packet.Frame{Opcode: packet.OpDialog, Payload: w.Bytes()}
}

// TextFrame renders a text input node.
func TextFrame(d *TextDialog, inv Invocation, text string) packet.Frame {
	w := packet.NewWriter()
	writeBase(w, d, inv, text)
	w.WriteString8(d.TopCaption)
	w.WriteUint8(d.MaxLength)
	w.WriteString8(d.BottomCaption)
	return packet.Frame{Opcode: packet.OpDialog, Payload: w.Bytes()}
}

// CloseDialogFrame tells the client to dismiss its open dialog.
func CloseDialogFrame() packet.Frame {
	return packet.Frame{Opcode: packet.OpDialog, Payload: []byte{closeDialogType, 0x00}}
}

// SystemMessageFrame carries a user-visible server message.
func SystemMessageFrame(text string) packet.Frame {
	w := packet.NewWriter()
	w.WriteUint8(0)
	w.WriteString16(text)
	return packet.Frame{Opcode: packet.OpSystemMessage, Payload: w.Bytes()}
}

// MainMenuFrame renders owner's main menu.
func MainMenuFrame(owner Entity, greeting string, entries []MenuItem) packet.Frame {
	sprite := owner.DialogSprite()
	w := packet.NewWriter()
	w.WriteUint8(menuOptionsType)
	w.WriteUint8(merchantObjectType)
	w.WriteUint32(owner.ID())
	w.WriteUint8(0)
	w.WriteUint16(sprite)
	w.WriteUint8(0)
	w.WriteUint8(1)
	w.WriteUint16(sprite)
	w.WriteUint8(0)
	w.WriteUint8(0)
	w.WriteString8(owner.Name())
	w.WriteString16(greeting)
	w.WriteUint8(byte(len(entries)))
	for _, e := range entries {
		w.WriteString8(e.Label)
		w.WriteUint16(e.ID)
	}
	return packet.Frame{Opcode: packet.OpMerchantMenu, Payload: w.Bytes()}
}
