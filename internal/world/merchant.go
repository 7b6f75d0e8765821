package world

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/louisbranch/pursuit/internal/dialog"
	"github.com/louisbranch/pursuit/internal/dialog/async"
)

// creatureSpriteOffset marks a creature sprite for the client.
const creatureSpriteOffset = 0x4000

// Job is a set of built-in merchant services.
type Job uint8

const (
	JobVend Job = 1 << iota
	JobBank
	JobTrain
	JobRepair
	JobPost
)

// Built-in menu items. Their ids sit at or above dialog.HardcodedThreshold.
const (
	MenuMain         uint16 = 0xFF00
	MenuBuyItem      uint16 = 0xFF01
	MenuSellItem     uint16 = 0xFF02
	MenuWithdrawItem uint16 = 0xFF03
	MenuWithdrawGold uint16 = 0xFF04
	MenuDepositItem  uint16 = 0xFF05
	MenuDepositGold  uint16 = 0xFF06
	MenuLearnSkill   uint16 = 0xFF07
	MenuLearnSpell   uint16 = 0xFF08
	MenuForgetSkill  uint16 = 0xFF09
	MenuForgetSpell  uint16 = 0xFF0A
	MenuRepairItem   uint16 = 0xFF0B
	MenuRepairAll    uint16 = 0xFF0C
	MenuSendParcel   uint16 = 0xFF0D
)

// jobItems lists, per job, the menu lines it contributes in display order.
var jobItems = []struct {
	job   Job
	items []dialog.MenuItem
}{
	{JobVend, []dialog.MenuItem{{ID: MenuBuyItem, Label: "Buy"}, {ID: MenuSellItem, Label: "Sell"}}},
	{JobBank, []dialog.MenuItem{
		{ID: MenuDepositGold, Label: "Deposit Gold"},
		{ID: MenuWithdrawGold, Label: "Withdraw Gold"},
		{ID: MenuDepositItem, Label: "Deposit Item"},
		{ID: MenuWithdrawItem, Label: "Withdraw Item"},
	}},
	{JobRepair, []dialog.MenuItem{{ID: MenuRepairItem, Label: "Fix Item"}, {ID: MenuRepairAll, Label: "Fix All Items"}}},
	{JobTrain, []dialog.MenuItem{
		{ID: MenuLearnSkill, Label: "Learn Skill"},
		{ID: MenuForgetSkill, Label: "Forget Skill"},
		{ID: MenuLearnSpell, Label: "Learn Secret"},
		{ID: MenuForgetSpell, Label: "Forget Secret"},
	}},
	{JobPost, []dialog.MenuItem{{ID: MenuSendParcel, Label: "Send Parcel"}}},
}

// MenuHandler runs a built-in menu item for u.
type MenuHandler func(m *Merchant, u dialog.User) error

// MerchantConfig describes a merchant.
type MerchantConfig struct {
	ID       uint32
	Name     string
	Sprite   uint16
	Greeting string
	Jobs     Job
	// Script, when set, runs this merchant's expressions instead of the
	// environment's default.
	Script dialog.Script
}

// Merchant is an NPC with a main menu of pursuits and built-in services.
type Merchant struct {
	Object
	Conditions

	greeting string
	jobs     Job
	script   dialog.Script
	handlers map[uint16]MenuHandler
	env      *dialog.Env
}

// NewMerchant returns a merchant whose menus are driven by env.
func NewMerchant(cfg MerchantConfig, env *dialog.Env) *Merchant {
	m := &Merchant{
		greeting: cfg.Greeting,
		jobs:     cfg.Jobs,
		script:   cfg.Script,
		handlers: map[uint16]MenuHandler{},
		env:      env,
	}
	m.Object.init(cfg.ID, cfg.Name)
	m.SetSprite(cfg.Sprite)
	return m
}

var (
	_ dialog.Pursuitable  = (*Merchant)(nil)
	_ dialog.MenuOwner    = (*Merchant)(nil)
	_ dialog.MerchantMenu = (*Merchant)(nil)
	_ dialog.Portrayed    = (*Merchant)(nil)
	_ async.Actor         = (*Merchant)(nil)
)

func (m *Merchant) DialogSprite() uint16 {
	if m.sprite == 0 {
		return 0
	}
	return creatureSpriteOffset + m.sprite
}

func (m *Merchant) DialogObjectType() dialog.ObjectType { return dialog.ObjectCreature }
func (m *Merchant) DialogColor() byte                   { return 0 }
func (m *Merchant) Greeting() string                    { return m.greeting }
func (m *Merchant) Jobs() Job                           { return m.jobs }

// Script returns the merchant's own script, or nil.
func (m *Merchant) Script() dialog.Script {
	return m.script
}

// Condition implements async.Actor. Merchants are never in a dialog of
// their own.
func (m *Merchant) Condition() async.Condition {
	return m.Conditions.snapshot()
}

// Handle installs h for a built-in menu item.
func (m *Merchant) Handle(item uint16, h MenuHandler) {
	m.handlers[item] = h
}

// MenuItems lists the built-in services of the merchant's jobs.
func (m *Merchant) MenuItems(dialog.User) []dialog.MenuItem {
	var out []dialog.MenuItem
	for _, j := range jobItems {
		if m.jobs&j.job != 0 {
			out = append(out, j.items...)
		}
	}
	return out
}

// DisplayPursuits sends the merchant's main menu to u.
func (m *Merchant) DisplayPursuits(u dialog.User) error {
	return m.env.DisplayPursuits(u, m)
}

// HandleMenuItem runs a built-in menu item. MenuMain redisplays the main
// menu; other items need a handler and the job that offers them.
func (m *Merchant) HandleMenuItem(u dialog.User, item uint16) error {
	if item == MenuMain {
		return m.DisplayPursuits(u)
	}
	if !m.offers(item) {
		return fmt.Errorf("%s does not offer menu item %#x: %w", m.name, item, dialog.ErrInvalidNavigation)
	}
	h, ok := m.handlers[item]
	if !ok {
		m.env.Logger().Info("merchant menu item has no handler",
			zap.String("merchant", m.name),
			zap.Uint16("item", item),
		)
		u.SendSystemMessage(m.env.Text("world.merchant.unavailable"))
		return nil
	}
	return h(m, u)
}

func (m *Merchant) offers(item uint16) bool {
	for _, it := range m.MenuItems(nil) {
		if it.ID == item {
			return true
		}
	}
	return false
}
