package commands

import (
	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/spf13/cobra"
)

// NewTrendingCommand creates the trending command group.
func NewTrendingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Browse trending content",
		Long:  "List the movies, TV series and people trending today or this week",
	}

	cmd.AddCommand(newTrendingAllCommand())
	cmd.AddCommand(newTrendingMoviesCommand())
	cmd.AddCommand(newTrendingTVCommand())
	cmd.AddCommand(newTrendingPeopleCommand())

	return cmd
}

func addWindowFlag(cmd *cobra.Command, window *string) {
	cmd.Flags().StringVarP(window, "window", "w", string(tmdb.TimeWindowDay), "time window (day or week)")
}

func newTrendingAllCommand() *cobra.Command {
	var (
		window string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Trending movies, TV series and people",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Trending().All(ctx, tmdb.TimeWindow(window), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderMultiTable(result.Results)
			})
		},
	}

	addWindowFlag(cmd, &window)
	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newTrendingMoviesCommand() *cobra.Command {
	var (
		window string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Trending movies",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Trending().Movies(ctx, tmdb.TimeWindow(window), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderMoviesTable(result.Results)
			})
		},
	}

	addWindowFlag(cmd, &window)
	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newTrendingTVCommand() *cobra.Command {
	var (
		window string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "tv",
		Short: "Trending TV series",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Trending().TV(ctx, tmdb.TimeWindow(window), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderShowsTable(result.Results)
			})
		},
	}

	addWindowFlag(cmd, &window)
	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newTrendingPeopleCommand() *cobra.Command {
	var (
		window string
		page   int
	)

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Trending people",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Trending().People(ctx, tmdb.TimeWindow(window), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderPeopleTable(result.Results)
			})
		},
	}

	addWindowFlag(cmd, &window)
	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}
