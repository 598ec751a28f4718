package grounding

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tripmitra/aria-backend/assistant/contract"
	logx "github.com/tripmitra/aria-backend/pkg/logger"
	"github.com/tripmitra/aria-backend/travel"
)

const (
	generalLimit      = 20
	ratingPoolLimit   = 100
	topRatedLimit     = 5
	budgetPoolLimit   = 100
	budgetLimit       = 10
	entitySearchLimit = 3
	categoryLimit     = 5
)

// preferenceCategories maps extracted preference tags to store categories.
var preferenceCategories = map[string]travel.Category{
	"adventure": travel.CategoryAdventure,
	"culture":   travel.CategoryHeritage,
	"beach":     travel.CategoryBeach,
	"spiritual": travel.CategorySpiritual,
	"nature":    travel.CategoryNature,
}

// Assembler fetches the destination lists relevant to a classified intent.
// Every fetch failure is logged and its list omitted; partial data never
// aborts the request.
type Assembler struct {
	store contract.DestinationStore
	log   zerolog.Logger
}

func NewAssembler(store contract.DestinationStore) (*Assembler, error) {
	if store == nil {
		return nil, contract.ErrStoreRequired
	}
	return &Assembler{
		store: store,
		log:   logx.With("grounding"),
	}, nil
}

// Assemble builds the grounding bundle for one request.
func (a *Assembler) Assemble(ctx context.Context, it contract.Intent, prefs contract.Preferences) contract.Bundle {
	var b contract.Bundle

	general, err := a.store.List(ctx, travel.ListFilter{Limit: generalLimit})
	if err != nil {
		a.log.Warn().Err(err).Msg("general listing unavailable")
	} else {
		b.General = general
	}

	pool, err := a.store.List(ctx, travel.ListFilter{Limit: ratingPoolLimit})
	if err != nil {
		a.log.Warn().Err(err).Msg("rating pool unavailable")
		pool = b.General
	}
	b.TopRated = travel.TopRated(pool, topRatedLimit)

	if budget := effectiveBudget(it, prefs); budget != nil {
		b.BudgetMatches = a.budgetMatches(ctx, *budget)
	}

	if it.Type == contract.IntentDestination && len(it.Destinations) > 0 {
		for _, name := range it.Destinations {
			matches, err := a.store.Search(ctx, name, entitySearchLimit)
			if err != nil {
				a.log.Warn().Err(err).Str("entity", name).Msg("entity search unavailable")
				continue
			}
			b.EntityMatches = append(b.EntityMatches, matches...)
		}
	}

	for _, pref := range it.Preferences {
		category, ok := preferenceCategories[pref]
		if !ok {
			continue
		}
		listing, err := a.store.List(ctx, travel.ListFilter{Limit: categoryLimit, Category: &category})
		if err != nil {
			a.log.Warn().Err(err).Str("preference", pref).Msg("category listing unavailable")
			continue
		}
		if b.ByPreference == nil {
			b.ByPreference = make(map[string][]travel.Destination, len(it.Preferences))
		}
		b.ByPreference[pref] = listing
	}

	return b
}

// budgetMatches lists destinations priced at or under budget.
func (a *Assembler) budgetMatches(ctx context.Context, budget int) []travel.Destination {
	pool, err := a.store.List(ctx, travel.ListFilter{Limit: budgetPoolLimit})
	if err != nil {
		a.log.Warn().Err(err).Int("budget", budget).Msg("budget listing unavailable")
		return nil
	}
	matches := make([]travel.Destination, 0, budgetLimit)
	for _, d := range pool {
		if d.PriceFrom > budget {
			continue
		}
		matches = append(matches, d)
		if len(matches) == budgetLimit {
			break
		}
	}
	return matches
}

// effectiveBudget resolves the budget driving the budget-filtered fetch:
// the extracted one first, else the snapshot's when the intent is budget.
func effectiveBudget(it contract.Intent, prefs contract.Preferences) *int {
	if it.Budget != nil {
		return it.Budget
	}
	if it.Type == contract.IntentBudget && prefs.Budget != nil {
		return prefs.Budget
	}
	return nil
}
