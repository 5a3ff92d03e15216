package pos

import (
	"sync"

	"restoflow/entity"
)

// Catalog is the terminal's local copy of the tenant's items. It is
// read when adding to the cart and replaced wholesale after a
// successful submission, because the server owns stock decrements.
type Catalog struct {
	mu    sync.RWMutex
	items []entity.Item
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (v *Catalog) Replace(items []entity.Item) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
}

func (v *Catalog) Items() []entity.Item {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]entity.Item, len(v.items))
	copy(out, v.items)
	return out
}

func (v *Catalog) Find(id uint) (entity.Item, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, it := range v.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.Item{}, false
}
