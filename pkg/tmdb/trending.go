package tmdb

import "context"

// TimeWindow selects the aggregation window for trending endpoints.
type TimeWindow string

// Supported time windows.
const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// TrendingClient provides access to the trending endpoints.
type TrendingClient interface {
	// All returns the trending movies, TV series and people.
	All(ctx context.Context, window TimeWindow, params *QueryParams) (*Page[MultiResult], error)
	// Movies returns the trending movies.
	Movies(ctx context.Context, window TimeWindow, params *QueryParams) (*Page[Movie], error)
	// TV returns the trending TV series.
	TV(ctx context.Context, window TimeWindow, params *QueryParams) (*Page[TVShow], error)
	// People returns the trending people.
	People(ctx context.Context, window TimeWindow, params *QueryParams) (*Page[Person], error)
}
