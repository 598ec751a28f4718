package store

import (
	"time"

	"github.com/tripmitra/aria-backend/travel"
)

var sampleCreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// SampleDestinations is the fixed dataset served when the database is
// unreachable. Mirrors the seed rows of the destinations table.
func SampleDestinations() []travel.Destination {
	return []travel.Destination{
		{
			ID:          1,
			Name:        "Taj Mahal",
			Location:    "Agra",
			State:       "Uttar Pradesh",
			Description: "One of the Seven Wonders of the World, this ivory-white marble mausoleum is a symbol of eternal love.",
			ImageURL:    "https://images.unsplash.com/photo-1564507592333-c60657eea523?w=500",
			Category:    travel.CategoryHeritage,
			Rating:      4.8,
			PriceFrom:   15000,
			Featured:    true,
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          2,
			Name:        "Kerala Backwaters",
			Location:    "Alleppey",
			State:       "Kerala",
			Description: "Experience the serene beauty of Kerala's backwaters on a traditional houseboat cruise.",
			ImageURL:    "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=500",
			Category:    travel.CategoryNature,
			Rating:      4.7,
			PriceFrom:   12000,
			Featured:    true,
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          3,
			Name:        "Golden Temple",
			Location:    "Amritsar",
			State:       "Punjab",
			Description: "The holiest Gurdwara of Sikhism, known for its stunning golden architecture and spiritual atmosphere.",
			ImageURL:    "https://images.unsplash.com/photo-1571115764595-644a1f56a55c?w=500",
			Category:    travel.CategorySpiritual,
			Rating:      4.9,
			PriceFrom:   8000,
			Featured:    true,
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          4,
			Name:        "Goa Beaches",
			Location:    "Panaji",
			State:       "Goa",
			Description: "Pristine beaches, vibrant nightlife, and Portuguese colonial architecture make Goa a perfect getaway.",
			ImageURL:    "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?w=500",
			Category:    travel.CategoryBeach,
			Rating:      4.6,
			PriceFrom:   10000,
			Featured:    true,
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          5,
			Name:        "Jaipur City Palace",
			Location:    "Jaipur",
			State:       "Rajasthan",
			Description: "Explore the Pink City's royal heritage with magnificent palaces, forts, and vibrant bazaars.",
			ImageURL:    "https://images.unsplash.com/photo-1599661046827-dacde2a11954?w=500",
			Category:    travel.CategoryHeritage,
			Rating:      4.5,
			PriceFrom:   11000,
			Featured:    true,
			CreatedAt:   sampleCreatedAt,
		},
		{
			ID:          6,
			Name:        "Himalayan Trek",
			Location:    "Manali",
			State:       "Himachal Pradesh",
			Description: "Adventure through the majestic Himalayas with breathtaking views and thrilling trekking experiences.",
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=500",
			Category:    travel.CategoryAdventure,
			Rating:      4.8,
			PriceFrom:   18000,
			Featured:    true,
			CreatedAt:   sampleCreatedAt,
		},
	}
}

func filterSample(dests []travel.Destination, f travel.ListFilter, limit int) []travel.Destination {
	out := make([]travel.Destination, 0, limit)
	for _, d := range dests {
		if f.Featured != nil && d.Featured != *f.Featured {
			continue
		}
		if f.Category != nil && d.Category != *f.Category {
			continue
		}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}

func searchSample(dests []travel.Destination, query string, limit int) []travel.Destination {
	out := make([]travel.Destination, 0, limit)
	for _, d := range dests {
		if !d.MatchesText(query) {
			continue
		}
		out = append(out, d)
		if len(out) == limit {
			break
		}
	}
	return out
}

func sampleByID(dests []travel.Destination, id int64) (travel.Destination, error) {
	for _, d := range dests {
		if d.ID == id {
			return d, nil
		}
	}
	return travel.Destination{}, travel.ErrNotFound
}
