package repository

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/price-quiz/internal/domain/entities"
)

var ErrEmptyCatalog = errors.New("catalog has no items")

// CatalogItem is one catalog entry as stored in a catalog file.
type CatalogItem struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// CatalogList describes the shopping list a session starts with.
type CatalogList struct {
	Size       int   `yaml:"size"`
	Quantities []int `yaml:"quantities"`
}

// Catalog is the seed data for a session: items and the initial list shape.
type Catalog struct {
	Items []CatalogItem `yaml:"items"`
	List  *CatalogList  `yaml:"list,omitempty"`
}

// DefaultCatalog returns the built-in seed catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		Items: []CatalogItem{
			{Name: "Macbook", Price: 1999.99},
			{Name: "Milk", Price: 4.25},
			{Name: "Hotel Room", Price: 255.00},
			{Name: "Beef Steak", Price: 25.18},
		},
		List: &CatalogList{Size: 3, Quantities: []int{3, 2, 4}},
	}
}

// CatalogRepository loads the seed catalog. It is read-only: catalog edits
// made during a session are never written back.
type CatalogRepository struct {
	path string
}

// NewCatalogRepository creates a repository reading path.
// An empty path selects the built-in catalog.
func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

// Load returns the catalog. YAML and JSON files are both accepted.
func (r *CatalogRepository) Load() (Catalog, error) {
	if r.path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return Catalog{}, err
	}

	var c Catalog
	if err = yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("failed to unmarshal catalog %s: %w", r.path, err)
	}

	if len(c.Items) == 0 {
		return Catalog{}, fmt.Errorf("%s: %w", r.path, ErrEmptyCatalog)
	}

	return c, nil
}

// Pool builds an item pool from the catalog items.
func (c Catalog) Pool() (*entities.ItemPool, error) {
	pool := entities.NewItemPool()
	for _, ci := range c.Items {
		item, err := entities.NewItem(ci.Name, ci.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog item %q: %w", ci.Name, err)
		}
		if err = pool.Add(item); err != nil {
			return nil, fmt.Errorf("catalog item %q: %w", ci.Name, err)
		}
	}
	return pool, nil
}

// RefreshOptions returns the list options for the initial shopping list.
// Without a list section the size and quantities are drawn at random.
func (c Catalog) RefreshOptions() []entities.RefreshOption {
	if c.List == nil {
		return nil
	}

	var opts []entities.RefreshOption
	if c.List.Size > 0 {
		opts = append(opts, entities.WithSize(c.List.Size))
	}
	if c.List.Quantities != nil {
		opts = append(opts, entities.WithQuantities(c.List.Quantities...))
	}
	return opts
}
