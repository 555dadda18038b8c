package search

import (
	"math"
	"slices"

	"github.com/gdugdh24/skillswap-backend/internal/domain"
)

type Order string

const (
	OrderRelevance Order = "relevance"
	OrderRating    Order = "rating"
	OrderRecent    Order = "recent"
	OrderDistance  Order = "distance"
)

// ParseOrder maps an empty string to OrderRelevance.
func ParseOrder(s string) (Order, error) {
	switch o := Order(s); o {
	case "":
		return OrderRelevance, nil
	case OrderRelevance, OrderRating, OrderRecent, OrderDistance:
		return o, nil
	}
	return "", domain.NewValidationError("sort", "unknown order %q", s)
}

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Sort returns a stably ordered copy of profiles. OrderDistance needs an
// origin; profiles without coordinates go last.
func Sort(profiles []*domain.Profile, order Order, origin *Point) ([]*domain.Profile, error) {
	out := slices.Clone(profiles)
	switch order {
	case OrderRelevance, "":
	case OrderRating:
		slices.SortStableFunc(out, func(a, b *domain.Profile) int {
			return compareFloat(b.Rating, a.Rating)
		})
	case OrderRecent:
		slices.SortStableFunc(out, func(a, b *domain.Profile) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case OrderDistance:
		if origin == nil {
			return nil, domain.NewValidationError("sort", "distance order needs your coordinates")
		}
		dist := make(map[string]float64, len(out))
		for _, p := range out {
			if p.HasCoordinates() {
				dist[p.ID] = Distance(*origin, Point{Lat: *p.Latitude, Lon: *p.Longitude})
			} else {
				dist[p.ID] = math.Inf(1)
			}
		}
		slices.SortStableFunc(out, func(a, b *domain.Profile) int {
			return compareFloat(dist[a.ID], dist[b.ID])
		})
	default:
		return nil, domain.NewValidationError("sort", "unknown order %q", order)
	}
	return out, nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Distance is the haversine great-circle distance in kilometres.
func Distance(a, b Point) float64 {
	const earthRadius = 6371.0
	dLat := (b.Lat - a.Lat) * (math.Pi / 180.0)
	dLon := (b.Lon - a.Lon) * (math.Pi / 180.0)
	lat1 := a.Lat * (math.Pi / 180.0)
	lat2 := b.Lat * (math.Pi / 180.0)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
