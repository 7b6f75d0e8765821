package dialog

// Dialog is one node of a sequence. The set of implementations is closed:
// SimpleDialog, OptionsDialog, TextDialog, JumpDialog and FunctionDialog.
type Dialog interface {
	Kind() Kind
	// Index is the node's position within its sequence.
	Index() int
	Sequence() *Sequence
	base() *node
	attach(seq *Sequence, index int)
}

// node holds the fields every variant shares.
type node struct {
	seq   *Sequence
	index int

	// Text is the display template; {{token}} placeholders are substituted
	// when rendered.
	Text string
	// Callback runs after the node is shown.
	Callback string
	// Sprite overrides every other portrait source.
	Sprite uint16
}

func (n *node) Index() int          { return n.index }
func (n *node) Sequence() *Sequence { return n.seq }
func (n *node) base() *node         { return n }

func (n *node) attach(seq *Sequence, index int) {
	n.seq = seq
	n.index = index
}

// SimpleDialog shows text with Prev/Next buttons.
type SimpleDialog struct{ node }

// NewSimple returns a simple node showing text.
func NewSimple(text string) *SimpleDialog {
	return &SimpleDialog{node{Text: text}}
}

func (*SimpleDialog) Kind() Kind { return KindSimple }

// Option is one choice of an OptionsDialog. At most one action applies, in
// this order: Jump, Sequence, Callback; with none set the dialog's Handler
// runs.
type Option struct {
	Label    string
	Jump     *JumpDialog
	Sequence *Sequence
	Callback string
}

// OptionsDialog shows a list of labelled choices.
type OptionsDialog struct {
	node
	Options []Option
	// Handler runs for options without an action of their own.
	Handler string
}

// NewOptions returns an options node.
func NewOptions(text string, options ...Option) *OptionsDialog {
	return &OptionsDialog{node: node{Text: text}, Options: options}
}

func (*OptionsDialog) Kind() Kind { return KindOptions }

// TextDialog asks for free text input between two captions.
type TextDialog struct {
	node
	TopCaption    string
	BottomCaption string
	MaxLength     byte
	Handler       string
}

// NewText returns a text input node.
func NewText(text, top, bottom string, maxLength byte, handler string) *TextDialog {
	return &TextDialog{
		node:          node{Text: text},
		TopCaption:    top,
		BottomCaption: bottom,
		MaxLength:     maxLength,
		Handler:       handler,
	}
}

func (*TextDialog) Kind() Kind { return KindText }

// JumpDialog redirects to another sequence by name, or to the main menu.
type JumpDialog struct {
	node
	Target string
}

// NewJump returns a jump node.
func NewJump(target string) *JumpDialog {
	return &JumpDialog{Target: target}
}

func (*JumpDialog) Kind() Kind { return KindJump }

// FunctionDialog runs an expression and continues with the next node.
type FunctionDialog struct {
	node
	Expression string
}

// NewFunction returns a function node.
func NewFunction(expression string) *FunctionDialog {
	return &FunctionDialog{Expression: expression}
}

func (*FunctionDialog) Kind() Kind { return KindFunction }

// HasPrev reports whether the client should offer a Prev button: only past
// the first node, and only when the preceding node is simple.
func HasPrev(d Dialog) bool {
	seq, i := d.Sequence(), d.Index()
	if seq == nil || i == 0 || seq.Len() <= 1 {
		return false
	}
	prev, ok := seq.Dialog(i - 1)
	return ok && prev.Kind() == KindSimple
}

// HasNext reports whether the client should offer a Next button: only on
// simple nodes that are not last.
func HasNext(d Dialog) bool {
	seq := d.Sequence()
	return seq != nil && d.Kind() == KindSimple && d.Index()+1 < seq.Len()
}
