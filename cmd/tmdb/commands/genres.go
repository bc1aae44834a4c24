package commands

import (
	"github.com/spf13/cobra"
)

// NewGenresCommand creates the genres command group.
func NewGenresCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List official genres",
	}

	cmd.AddCommand(newGenresMoviesCommand())
	cmd.AddCommand(newGenresTVCommand())

	return cmd
}

func newGenresMoviesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "movies",
		Aliases: []string{"movie"},
		Short:   "List the official movie genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			list, err := client.Genres().Movie(ctx, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(list, func() error {
				return renderGenresTable(list.Genres)
			})
		},
	}
}

func newGenresTVCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tv",
		Short: "List the official TV genres",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			list, err := client.Genres().TV(ctx, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(list, func() error {
				return renderGenresTable(list.Genres)
			})
		},
	}
}
