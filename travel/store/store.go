package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"

	logx "github.com/tripmitra/aria-backend/pkg/logger"
	"github.com/tripmitra/aria-backend/travel"
)

// Config describes the destinations database. An empty DSN leaves the store
// in sample-data mode: reads serve the built-in dataset, writes fail.
type Config struct {
	DSN          string        `envconfig:"DSN" split_words:"true"`
	QueryTimeout time.Duration `envconfig:"QUERY_TIMEOUT" split_words:"true" default:"5s"`
}

const (
	defaultListLimit = 20
	maxListLimit     = 1000
)

// Option customizes a Store.
type Option func(*Store)

func WithQueryTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithSampleData replaces the built-in fallback dataset.
func WithSampleData(dests []travel.Destination) Option {
	return func(s *Store) {
		s.sample = dests
	}
}

// Store persists destinations in Postgres through bun. Read failures degrade
// to the sample dataset so listings never fail the caller; write failures
// surface as travel.ErrStoreUnavailable.
type Store struct {
	db      *bun.DB
	timeout time.Duration
	log     zerolog.Logger
	sample  []travel.Destination
}

var _ travel.Store = (*Store)(nil)

// New builds a Store over db. A nil db is allowed and pins the store to
// sample-data mode.
func New(db *bun.DB, opts ...Option) *Store {
	s := &Store{
		db:      db,
		timeout: 5 * time.Second,
		log:     logx.With("store"),
		sample:  SampleDestinations(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// destinationRow maps the destinations table.
type destinationRow struct {
	bun.BaseModel `bun:"table:destinations,alias:d"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Name        string    `bun:"name,notnull"`
	Location    string    `bun:"location,notnull"`
	State       string    `bun:"state,notnull"`
	Description string    `bun:"description,notnull"`
	ImageURL    string    `bun:"image_url,nullzero"`
	Category    string    `bun:"category,notnull"`
	Rating      float64   `bun:"rating,notnull"`
	PriceFrom   int       `bun:"price_from,notnull"`
	Featured    bool      `bun:"featured,notnull,default:false"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func (r *destinationRow) toDomain() travel.Destination {
	return travel.Destination{
		ID:          r.ID,
		Name:        r.Name,
		Location:    r.Location,
		State:       r.State,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Category:    travel.Category(r.Category),
		Rating:      r.Rating,
		PriceFrom:   r.PriceFrom,
		Featured:    r.Featured,
		CreatedAt:   r.CreatedAt,
	}
}

func rowsToDomain(rows []destinationRow) []travel.Destination {
	out := make([]travel.Destination, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out
}

func (s *Store) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// List returns destinations filtered by the optional featured/category
// equality filters, in id order.
func (s *Store) List(ctx context.Context, f travel.ListFilter) ([]travel.Destination, error) {
	limit := clampLimit(f.Limit)
	if s.db == nil {
		return filterSample(s.sample, f, limit), nil
	}

	var rows []destinationRow
	q := s.db.NewSelect().Model(&rows).Order("id ASC").Limit(limit)
	if f.Featured != nil {
		q = q.Where("d.featured = ?", *f.Featured)
	}
	if f.Category != nil {
		q = q.Where("d.category = ?", string(*f.Category))
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	if err := q.Scan(qctx); err != nil {
		s.log.Warn().Err(err).Msg("list query failed, serving sample data")
		return filterSample(s.sample, f, limit), nil
	}
	return rowsToDomain(rows), nil
}

// GetByID returns one destination or travel.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (travel.Destination, error) {
	if s.db == nil {
		return sampleByID(s.sample, id)
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	row, err := s.get(qctx, id)
	if err == nil {
		return row.toDomain(), nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return travel.Destination{}, travel.ErrNotFound
	}
	s.log.Warn().Err(err).Int64("id", id).Msg("get query failed, serving sample data")
	return sampleByID(s.sample, id)
}

func (s *Store) get(ctx context.Context, id int64) (destinationRow, error) {
	var row destinationRow
	err := s.db.NewSelect().Model(&row).Where("d.id = ?", id).Scan(ctx)
	return row, err
}

// Search runs a case-insensitive substring OR-search across name, location,
// and description.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]travel.Destination, error) {
	limit = clampLimit(limit)
	if s.db == nil {
		return searchSample(s.sample, query, limit), nil
	}

	pattern := "%" + escapeLike(query) + "%"
	var rows []destinationRow
	q := s.db.NewSelect().Model(&rows).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("d.name ILIKE ?", pattern).
				WhereOr("d.location ILIKE ?", pattern).
				WhereOr("d.description ILIKE ?", pattern)
		}).
		Order("id ASC").
		Limit(limit)

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	if err := q.Scan(qctx); err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("search query failed, serving sample data")
		return searchSample(s.sample, query, limit), nil
	}
	return rowsToDomain(rows), nil
}

// Create inserts a validated payload and returns the stored record.
func (s *Store) Create(ctx context.Context, fields travel.DestinationFields) (travel.Destination, error) {
	if s.db == nil {
		return travel.Destination{}, fmt.Errorf("%w: no database configured", travel.ErrStoreUnavailable)
	}

	row := destinationRow{}
	applyFields(&row, fields)

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	if _, err := s.db.NewInsert().Model(&row).Returning("*").Exec(qctx); err != nil {
		return travel.Destination{}, fmt.Errorf("%w: insert: %v", travel.ErrStoreUnavailable, err)
	}
	return row.toDomain(), nil
}

// Update applies the supplied fields only and returns the updated record.
func (s *Store) Update(ctx context.Context, id int64, fields travel.DestinationFields) (travel.Destination, error) {
	if s.db == nil {
		return travel.Destination{}, fmt.Errorf("%w: no database configured", travel.ErrStoreUnavailable)
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	q := s.db.NewUpdate().Model((*destinationRow)(nil)).Where("d.id = ?", id)
	assigned := 0
	set := func(column string, value any) {
		q = q.Set(column+" = ?", value)
		assigned++
	}
	if fields.Name != nil {
		set("name", *fields.Name)
	}
	if fields.Location != nil {
		set("location", *fields.Location)
	}
	if fields.State != nil {
		set("state", *fields.State)
	}
	if fields.Description != nil {
		set("description", *fields.Description)
	}
	if fields.ImageURL != nil {
		set("image_url", *fields.ImageURL)
	}
	if fields.Category != nil {
		set("category", string(*fields.Category))
	}
	if fields.Rating != nil {
		set("rating", *fields.Rating)
	}
	if fields.PriceFrom != nil {
		set("price_from", *fields.PriceFrom)
	}
	if fields.Featured != nil {
		set("featured", *fields.Featured)
	}

	if assigned == 0 {
		row, err := s.get(qctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return travel.Destination{}, travel.ErrNotFound
		}
		if err != nil {
			return travel.Destination{}, fmt.Errorf("%w: select: %v", travel.ErrStoreUnavailable, err)
		}
		return row.toDomain(), nil
	}

	res, err := q.Exec(qctx)
	if err != nil {
		return travel.Destination{}, fmt.Errorf("%w: update: %v", travel.ErrStoreUnavailable, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return travel.Destination{}, travel.ErrNotFound
	}

	row, err := s.get(qctx, id)
	if err != nil {
		return travel.Destination{}, fmt.Errorf("%w: re-read after update: %v", travel.ErrStoreUnavailable, err)
	}
	return row.toDomain(), nil
}

// Delete removes a destination, reporting whether a row existed.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("%w: no database configured", travel.ErrStoreUnavailable)
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	res, err := s.db.NewDelete().Model((*destinationRow)(nil)).Where("d.id = ?", id).Exec(qctx)
	if err != nil {
		return false, fmt.Errorf("%w: delete: %v", travel.ErrStoreUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete result: %v", travel.ErrStoreUnavailable, err)
	}
	return affected > 0, nil
}

// Ping reports backing-store reachability for health probes.
func (s *Store) Ping(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("%w: no database configured", travel.ErrStoreUnavailable)
	}
	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	return s.db.PingContext(qctx)
}

func applyFields(row *destinationRow, f travel.DestinationFields) {
	if f.Name != nil {
		row.Name = *f.Name
	}
	if f.Location != nil {
		row.Location = *f.Location
	}
	if f.State != nil {
		row.State = *f.State
	}
	if f.Description != nil {
		row.Description = *f.Description
	}
	if f.ImageURL != nil {
		row.ImageURL = *f.ImageURL
	}
	if f.Category != nil {
		row.Category = string(*f.Category)
	}
	if f.Rating != nil {
		row.Rating = *f.Rating
	}
	if f.PriceFrom != nil {
		row.PriceFrom = *f.PriceFrom
	}
	if f.Featured != nil {
		row.Featured = *f.Featured
	}
}

func escapeLike(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(q)
}
