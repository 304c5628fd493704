package core

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Catalog is a registry of named factories. It is safe for concurrent use.
type Catalog struct {
	mu        sync.Mutex
	factories map[string]*Factory
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]*Factory)}
}

// Lookup returns the factory registered under name.
func (c *Catalog) Lookup(name string) (*Factory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	factory, ok := c.factories[name]

	return factory, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Sorted(maps.Keys(c.factories))
}

// Register adds factory under name. Names are unique within a catalog.
func (c *Catalog) Register(name string, factory *Factory) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	c.factories[name] = factory

	return nil
}
