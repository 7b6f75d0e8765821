package world

import (
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/pursuit/internal/dialog"
)

// Interactive entities open a dialog when clicked or used.
type Interactive interface {
	dialog.Entity
	Interact(u dialog.User) error
}

// Directory indexes every live entity by id and users by name. It is safe
// for concurrent use.
type Directory struct {
	mu      sync.RWMutex
	objects map[uint32]dialog.Entity
	users   map[string]*User
	nextID  uint32
}

// firstUserID keeps user ids clear of the ids content assigns to NPCs.
const firstUserID = 1 << 24

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		objects: map[uint32]dialog.Entity{},
		users:   map[string]*User{},
		nextID:  firstUserID,
	}
}

// Add indexes ent. Ids must be unique.
func (d *Directory) Add(ent dialog.Entity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.objects[ent.ID()]; exists {
		return fmt.Errorf("object id %d already in use", ent.ID())
	}
	d.objects[ent.ID()] = ent
	return nil
}

// Get returns the entity with id.
func (d *Directory) Get(id uint32) (dialog.Entity, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ent, ok := d.objects[id]
	return ent, ok
}

// Remove drops the entity with id.
func (d *Directory) Remove(id uint32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u, ok := d.objects[id].(*User); ok {
		delete(d.users, strings.ToLower(u.Name()))
	}
	delete(d.objects, id)
}

// Login creates a user named name on conn. Names are unique
// case-insensitively while the user is online.
func (d *Directory) Login(name string, conn Conn) (*User, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, fmt.Errorf("user name is required")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.users[key]; exists {
		return nil, fmt.Errorf("user %q is already online", name)
	}
	for {
		if _, taken := d.objects[d.nextID]; !taken {
			break
		}
		d.nextID++
	}
	u := NewUser(d.nextID, name, conn)
	d.nextID++
	d.objects[u.ID()] = u
	d.users[key] = u
	return u, nil
}

// UserByName returns the online user named name.
func (d *Directory) UserByName(name string) (*User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.users[strings.ToLower(strings.TrimSpace(name))]
	return u, ok
}

// Users returns the number of online users.
func (d *Directory) Users() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
