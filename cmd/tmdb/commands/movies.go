package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewMovieCommand creates the movie command group.
func NewMovieCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "movie",
		Aliases: []string{"movies"},
		Short:   "Browse movies",
		Long:    "Look up movie details, credits and curated movie lists",
	}

	cmd.AddCommand(newMovieGetCommand())
	cmd.AddCommand(newMovieCreditsCommand())
	cmd.AddCommand(newMovieImagesCommand())
	cmd.AddCommand(newMovieListCommand("popular", "Most popular movies",
		func(client tmdb.Client) listFetch[tmdb.Movie] {
			return client.Movies().Popular
		}))
	cmd.AddCommand(newMovieListCommand("top-rated", "Top rated movies",
		func(client tmdb.Client) listFetch[tmdb.Movie] {
			return client.Movies().TopRated
		}))
	cmd.AddCommand(newMovieDatedListCommand("now-playing", "Movies currently in theatres",
		func(client tmdb.Client) datedListFetch {
			return client.Movies().NowPlaying
		}))
	cmd.AddCommand(newMovieDatedListCommand("upcoming", "Movies arriving in theatres",
		func(client tmdb.Client) datedListFetch {
			return client.Movies().Upcoming
		}))
	cmd.AddCommand(newMovieRecommendationsCommand())

	return cmd
}

type listFetch[T any] func(ctx context.Context, params *tmdb.QueryParams) (*tmdb.Page[T], error)

type datedListFetch func(ctx context.Context, params *tmdb.QueryParams) (*tmdb.DatedPage[tmdb.Movie], error)

func newMovieGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show movie details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			movie, err := client.Movies().Get(ctx, movieID, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(movie, func() error {
				return renderMovieDetails(movie)
			})
		},
	}
}

func renderMovieDetails(movie *tmdb.MovieDetails) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", strconv.FormatInt(movie.ID, 10))
	_ = table.Append("Title", movie.Title)
	_ = table.Append("Original Title", movie.OriginalTitle)
	_ = table.Append("Release Date", orNA(movie.ReleaseDate))
	_ = table.Append("Runtime", fmt.Sprintf("%d min", movie.Runtime))
	_ = table.Append("Status", orNA(movie.Status))
	_ = table.Append("Rating", formatVote(movie.VoteAverage, movie.VoteCount))
	_ = table.Append("Genres", joinGenres(movie.Genres))
	_ = table.Append("Overview", truncate(movie.Overview))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func joinGenres(genres []tmdb.Genre) string {
	if len(genres) == 0 {
		return ""
	}

	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}

	result := names[0]
	for _, name := range names[1:] {
		result += ", " + name
	}

	return result
}

func newMovieCreditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credits <id>",
		Short: "Show movie cast and crew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			credits, err := client.Movies().Credits(ctx, movieID, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(credits, func() error {
				return renderCreditsTable(credits)
			})
		},
	}
}

func renderCreditsTable(credits *tmdb.Credits) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Role", "Name", "As")

	for _, member := range credits.Cast {
		_ = table.Append("cast", member.Name, member.Character)
	}

	for _, member := range credits.Crew {
		_ = table.Append("crew", member.Name, member.Job)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newMovieImagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "images <id>",
		Short: "List the backdrops, posters and logos of a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			images, err := client.Movies().Images(ctx, movieID, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(images, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Kind", "File Path", "Size", "Rating")

				appendImages := func(kind string, images []tmdb.Image) {
					for _, image := range images {
						_ = table.Append(
							kind,
							image.FilePath,
							fmt.Sprintf("%dx%d", image.Width, image.Height),
							formatVote(image.VoteAverage, image.VoteCount),
						)
					}
				}

				appendImages("backdrop", images.Backdrops)
				appendImages("poster", images.Posters)
				appendImages("logo", images.Logos)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newMovieListCommand(use, short string, fetch func(tmdb.Client) listFetch[tmdb.Movie]) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := fetch(client)(ctx, queryParams(page))
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

func newMovieDatedListCommand(use, short string, fetch func(tmdb.Client) datedListFetch) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := fetch(client)(ctx, queryParams(page))
			if err != nil {
				return err
			}

			return renderOutput(result, func() error {
				fmt.Printf("Window: %s to %s\n", result.Dates.Minimum, result.Dates.Maximum)

				return renderMoviesTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}

func newMovieRecommendationsCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "recommendations <id>",
		Short: "Movies recommended for a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			movieID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.Movies().Recommendations(ctx, movieID, queryParams(page))
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
