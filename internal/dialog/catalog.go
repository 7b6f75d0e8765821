package dialog

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Catalog is the process-wide registry of global sequences. It is safe for
// concurrent use; content registration and packet workers share it.
type Catalog struct {
	mu     sync.RWMutex
	byID   map[uint32]*Sequence
	byName map[string]*Sequence
	limit  uint32
	log    *zap.Logger
}

// NewCatalog returns an empty catalog issuing ids below limit. A zero limit
// uses SharedThreshold.
func NewCatalog(limit uint32, log *zap.Logger) *Catalog {
	if limit == 0 || limit > SharedThreshold {
		limit = SharedThreshold
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{
		byID:   map[uint32]*Sequence{},
		byName: map[string]*Sequence{},
		limit:  limit,
		log:    log,
	}
}

// Register assigns seq the next global id in registration order. Once the
// id range is exhausted registrations are logged and rejected.
func (c *Catalog) Register(seq *Sequence) error {
	if seq == nil {
		return fmt.Errorf("sequence is required")
	}
	key := normalizeName(seq.Name)
	if key == "" {
		return fmt.Errorf("sequence name is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byName[key]; exists {
		return fmt.Errorf("global sequence %q already registered", seq.Name)
	}
	id := uint32(len(c.byID)) + 1
	if id >= c.limit {
		c.log.Error("global sequence rejected: id range exhausted",
			zap.String("sequence", seq.Name),
			zap.Uint32("limit", c.limit))
		return fmt.Errorf("register %q: %w", seq.Name, ErrSequenceOverflow)
	}
	seq.id = id
	c.byID[id] = seq
	c.byName[key] = seq
	return nil
}

// ByID returns the sequence registered under id.
func (c *Catalog) ByID(id uint32) (*Sequence, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seq, ok := c.byID[id]
	return seq, ok
}

// ByName returns the sequence registered under name, ignoring case.
func (c *Catalog) ByName(name string) (*Sequence, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	seq, ok := c.byName[normalizeName(name)]
	return seq, ok
}

// Len returns the number of registered sequences.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// LocalCatalog is one entity's registry: main-menu pursuits numbered from
// SharedThreshold and dialog sequences numbered from PursuitThreshold.
// Global sequences may be listed as pursuits and keep their global ids.
type LocalCatalog struct {
	mu        sync.RWMutex
	pursuits  []*Sequence
	sequences []*Sequence
	byName    map[string]*Sequence
}

// NewLocalCatalog returns an empty entity registry.
func NewLocalCatalog() *LocalCatalog {
	return &LocalCatalog{byName: map[string]*Sequence{}}
}

// AddPursuit lists seq on the owner's main menu. Unregistered sequences get
// the next local pursuit id.
func (l *LocalCatalog) AddPursuit(seq *Sequence) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq.id == 0 {
		id := SharedThreshold + uint32(len(l.pursuits))
		if id >= PursuitThreshold {
			return fmt.Errorf("add pursuit %q: %w", seq.Name, ErrSequenceOverflow)
		}
		seq.id = id
	}
	l.pursuits = append(l.pursuits, seq)
	l.byName[normalizeName(seq.Name)] = seq
	return nil
}

// AddSequence registers a dialog sequence reachable by name, e.g. as a jump
// target, without listing it on the main menu.
func (l *LocalCatalog) AddSequence(seq *Sequence) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := PursuitThreshold + uint32(len(l.sequences))
	if id >= HardcodedThreshold {
		return fmt.Errorf("add sequence %q: %w", seq.Name, ErrSequenceOverflow)
	}
	seq.id = id
	l.sequences = append(l.sequences, seq)
	l.byName[normalizeName(seq.Name)] = seq
	return nil
}

// ByName returns a pursuit or sequence by name, ignoring case.
func (l *LocalCatalog) ByName(name string) (*Sequence, bool) {
	if l == nil {
		return nil, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	seq, ok := l.byName[normalizeName(name)]
	return seq, ok
}

// Pursuit returns the local pursuit addressed by id, which must lie in
// [SharedThreshold, PursuitThreshold).
func (l *LocalCatalog) Pursuit(id uint32) (*Sequence, bool) {
	if l == nil || id < SharedThreshold || id >= PursuitThreshold {
		return nil, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := int(id - SharedThreshold)
	if i >= len(l.pursuits) || l.pursuits[i].id != id {
		return nil, false
	}
	return l.pursuits[i], true
}

// Pursuits returns the main-menu pursuits in order.
func (l *LocalCatalog) Pursuits() []*Sequence {
	if l == nil {
		return nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]*Sequence(nil), l.pursuits...)
}

// Resolve finds a sequence by name, first in the entity's local catalog, then
// in the global catalog.
func Resolve(name string, owner Entity, global *Catalog) (*Sequence, bool) {
	if owner != nil {
		if seq, ok := owner.Sequences().ByName(name); ok {
			return seq, true
		}
	}
	if global == nil {
		return nil, false
	}
	return global.ByName(name)
}
