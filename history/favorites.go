package history

import (
	"strings"

	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/color"
	"github.com/swatch-cli/swatch/internal/store"
	"github.com/swatch-cli/swatch/where"
)

// Favorites is an ordered set of favorited colors backed by the favorites registry.
type Favorites struct {
	hexes []string
}

// LoadFavorites reads the favorite color registry from disk.
func LoadFavorites() (*Favorites, error) {
	var hexes []string
	if _, err := store.Load(where.Favorites(), &hexes); err != nil {
		return nil, err
	}
	return &Favorites{hexes: hexes}, nil
}

// Has reports whether the color is currently favorited.
func (f *Favorites) Has(hex string) bool {
	return lo.ContainsBy(f.hexes, func(h string) bool {
		return strings.EqualFold(h, hex)
	})
}

// Toggle flips the favorite state of a color and persists the registry.
func (f *Favorites) Toggle(hex string) error {
	parsed, err := color.Parse(hex)
	if err != nil {
		return err
	}

	canonical := parsed.Hex()
	if f.Has(canonical) {
		f.hexes = lo.Reject(f.hexes, func(h string, _ int) bool {
			return strings.EqualFold(h, canonical)
		})
	} else {
		f.hexes = append(f.hexes, canonical)
	}

	return store.Save(where.Favorites(), f.hexes)
}

// List returns the favorited colors in insertion order.
func (f *Favorites) List() []string {
	return f.hexes
}
