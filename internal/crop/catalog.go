package crop

import (
	"fmt"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
)

// Catalog is the immutable in-memory crop table. Built once at startup and
// shared without locking; lookups are read-only map access.
type Catalog struct {
	defs  map[string]domain.CropDefinition
	order []string
}

// NewCatalog builds a catalog from definitions. Duplicate internal names are
// rejected so the config stays the single source of truth per crop type.
func NewCatalog(defs []domain.CropDefinition) (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]domain.CropDefinition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if _, exists := c.defs[def.InternalName]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateInternalName, def.InternalName)
		}
		c.defs[def.InternalName] = def
		c.order = append(c.order, def.InternalName)
	}
	return c, nil
}

// Get looks up a crop definition by type id.
func (c *Catalog) Get(cropType string) (domain.CropDefinition, error) {
	def, ok := c.defs[cropType]
	if !ok {
		return domain.CropDefinition{}, fmt.Errorf("%w: %q", domain.ErrUnknownCropType, cropType)
	}
	return def, nil
}

// All returns the definitions in config order.
func (c *Catalog) All() []domain.CropDefinition {
	out := make([]domain.CropDefinition, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.defs[name])
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.defs)
}
