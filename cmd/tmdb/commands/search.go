package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command group.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the TMDB catalog",
		Long:  "Search for movies, TV series, people or everything at once",
	}

	cmd.AddCommand(newSearchMoviesCommand())
	cmd.AddCommand(newSearchTVCommand())
	cmd.AddCommand(newSearchPeopleCommand())
	cmd.AddCommand(newSearchMultiCommand())

	return cmd
}

func newSearchMoviesCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     "movies <query>",
		Aliases: []string{"movie"},
		Short:   "Search for movies by title",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Search().Movies(ctx, strings.Join(args, " "), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderMoviesTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newSearchTVCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "tv <query>",
		Short: "Search for TV series by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Search().TV(ctx, strings.Join(args, " "), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderShowsTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newSearchPeopleCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:     "people <query>",
		Aliases: []string{"person"},
		Short:   "Search for people by name",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Search().People(ctx, strings.Join(args, " "), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderPeopleTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newSearchMultiCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "multi <query>",
		Short: "Search movies, TV series and people together",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Search().Multi(ctx, strings.Join(args, " "), queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				return renderMultiTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func renderMultiTable(results []tmdb.MultiResult) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Type", "ID", "Name", "Date")

	for _, result := range results {
		name := result.Title
		date := result.ReleaseDate

		if result.MediaType != tmdb.MediaTypeMovie {
			name = result.Name
			date = result.FirstAirDate
		}

		_ = table.Append(
			result.MediaType,
			strconv.FormatInt(result.ID, 10),
			name,
			orNA(date),
		)
	}

	return table.Render()
}
