package commands

import (
	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDiscoverCommand creates the discover command group.
func NewDiscoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover movies and TV series by filters",
		Long:  "Find movies and TV series by genre, year, rating and other filters",
	}

	cmd.AddCommand(newDiscoverMoviesCommand())
	cmd.AddCommand(newDiscoverTVCommand())

	return cmd
}

func newDiscoverMoviesCommand() *cobra.Command {
	var (
		page         int
		sortBy       string
		year         int
		genres       []int64
		voteAvgGTE   float64
		includeAdult bool
	)

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Discover movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			filters := &tmdb.DiscoverMovieFilters{
				Language:           viper.GetString("language"),
				Region:             viper.GetString("region"),
				Page:               page,
				SortBy:             sortBy,
				PrimaryReleaseYear: year,
				WithGenres:         genres,
				VoteAverageGTE:     voteAvgGTE,
				IncludeAdult:       includeAdult,
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Discover().Movies(ctx, filters)
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderMoviesTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort key, e.g. popularity.desc")
	cmd.Flags().IntVar(&year, "year", 0, "primary release year")
	cmd.Flags().Int64SliceVar(&genres, "genre", nil, "genre id, repeatable")
	cmd.Flags().Float64Var(&voteAvgGTE, "min-rating", 0, "minimum vote average")
	cmd.Flags().BoolVar(&includeAdult, "include-adult", false, "include adult titles")

	return cmd
}

func newDiscoverTVCommand() *cobra.Command {
	var (
		page       int
		sortBy     string
		year       int
		genres     []int64
		networks   []int64
		voteAvgGTE float64
	)

	cmd := &cobra.Command{
		Use:   "tv",
		Short: "Discover TV series",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			filters := &tmdb.DiscoverTVFilters{
				Language:         viper.GetString("language"),
				Page:             page,
				SortBy:           sortBy,
				FirstAirDateYear: year,
				WithGenres:       genres,
				WithNetworks:     networks,
				VoteAverageGTE:   voteAvgGTE,
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Discover().TV(ctx, filters)
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderShowsTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort key, e.g. popularity.desc")
	cmd.Flags().IntVar(&year, "year", 0, "first air date year")
	cmd.Flags().Int64SliceVar(&genres, "genre", nil, "genre id, repeatable")
	cmd.Flags().Int64SliceVar(&networks, "network", nil, "network id, repeatable")
	cmd.Flags().Float64Var(&voteAvgGTE, "min-rating", 0, "minimum vote average")

	return cmd
}
