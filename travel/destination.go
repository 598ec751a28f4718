package travel

import (
	"context"
	"strings"
	"time"
)

// Category is the closed set of destination categories.
type Category string

const (
	CategoryHeritage  Category = "Heritage"
	CategoryNature    Category = "Nature"
	CategoryBeach     Category = "Beach"
	CategorySpiritual Category = "Spiritual"
	CategoryAdventure Category = "Adventure"
)

// Categories returns the full catalog in display order.
func Categories() []Category {
	return []Category{
		CategoryHeritage,
		CategoryNature,
		CategoryBeach,
		CategorySpiritual,
		CategoryAdventure,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryHeritage, CategoryNature, CategoryBeach, CategorySpiritual, CategoryAdventure:
		return true
	}
	return false
}

// Destination is the sole persisted entity: a travel location with pricing,
// rating, and category metadata. ID and CreatedAt are store-assigned.
type Destination struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	State       string    `json:"state"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Category    Category  `json:"category"`
	Rating      float64   `json:"rating"`
	PriceFrom   int       `json:"price_from"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// DestinationFields is a partial record for create and update payloads.
// Nil means "not supplied".
type DestinationFields struct {
	Name        *string   `json:"name"`
	Location    *string   `json:"location"`
	State       *string   `json:"state"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Category    *Category `json:"category"`
	Rating      *float64  `json:"rating"`
	PriceFrom   *int      `json:"price_from"`
	Featured    *bool     `json:"featured"`
}

// ListFilter narrows a destination listing. Nil filters are ignored.
type ListFilter struct {
	Limit    int
	Featured *bool
	Category *Category
}

// Store is the destinations record-store contract. Reads degrade to sample
// data when the backing store is unreachable; writes fail with
// ErrStoreUnavailable instead of faking success.
type Store interface {
	List(ctx context.Context, f ListFilter) ([]Destination, error)
	GetByID(ctx context.Context, id int64) (Destination, error)
	Create(ctx context.Context, fields DestinationFields) (Destination, error)
	Update(ctx context.Context, id int64, fields DestinationFields) (Destination, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, query string, limit int) ([]Destination, error)
	Ping(ctx context.Context) error
}

// MatchesText reports whether the query occurs, case-insensitively, in the
// destination's name, location, or description.
func (d Destination) MatchesText(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Location), q) ||
		strings.Contains(strings.ToLower(d.Description), q)
}
