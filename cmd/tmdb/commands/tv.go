package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTVCommand creates the tv command group.
func NewTVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tv",
		Short: "Browse TV series",
		Long:  "Look up TV series details, seasons and curated series lists",
	}

	cmd.AddCommand(newTVGetCommand())
	cmd.AddCommand(newTVSeasonCommand())
	cmd.AddCommand(newTVEpisodeCommand())
	cmd.AddCommand(newTVListCommand("popular", "Most popular TV series",
		func(client tmdb.Client) listFetch[tmdb.TVShow] {
			return client.TV().Popular
		}))
	cmd.AddCommand(newTVListCommand("top-rated", "Top rated TV series",
		func(client tmdb.Client) listFetch[tmdb.TVShow] {
			return client.TV().TopRated
		}))
	cmd.AddCommand(newTVListCommand("airing-today", "Series with an episode airing today",
		func(client tmdb.Client) listFetch[tmdb.TVShow] {
			return client.TV().AiringToday
		}))
	cmd.AddCommand(newTVListCommand("on-the-air", "Series airing within the next week",
		func(client tmdb.Client) listFetch[tmdb.TVShow] {
			return client.TV().OnTheAir
		}))

	return cmd
}

func newTVGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show TV series details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			show, err := client.TV().Get(ctx, seriesID, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(show, func() error {
				return renderShowDetails(show)
			})
		},
	}
}

func renderShowDetails(show *tmdb.TVShowDetails) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", strconv.FormatInt(show.ID, 10))
	_ = table.Append("Name", show.Name)
	_ = table.Append("Original Name", show.OriginalName)
	_ = table.Append("First Air Date", orNA(show.FirstAirDate))
	_ = table.Append("Last Air Date", orNA(show.LastAirDate))
	_ = table.Append("Seasons", strconv.Itoa(show.NumberOfSeasons))
	_ = table.Append("Episodes", strconv.Itoa(show.NumberOfEpisodes))
	_ = table.Append("Status", orNA(show.Status))
	_ = table.Append("Rating", formatVote(show.VoteAverage, show.VoteCount))
	_ = table.Append("Genres", joinGenres(show.Genres))
	_ = table.Append("Overview", truncate(show.Overview))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTVSeasonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "season <series-id> <season-number>",
		Short: "Show a season with its episodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesID, err := parseID(args[0])
			if err != nil {
				return err
			}

			seasonNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid season number %q: %w", args[1], err)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			season, err := client.TVSeasons().Get(ctx, seriesID, seasonNumber, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(season, func() error {
				return renderSeasonTable(season)
			})
		},
	}
}

func renderSeasonTable(season *tmdb.TVSeasonDetails) error {
	fmt.Printf("%s (%d episodes)\n", season.Name, len(season.Episodes))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Episode", "Name", "Air Date", "Rating")

	for _, episode := range season.Episodes {
		_ = table.Append(
			strconv.Itoa(episode.EpisodeNumber),
			episode.Name,
			orNA(episode.AirDate),
			formatVote(episode.VoteAverage, episode.VoteCount),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTVEpisodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "episode <series-id> <season-number> <episode-number>",
		Short: "Show episode details",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesID, err := parseID(args[0])
			if err != nil {
				return err
			}

			seasonNumber, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid season number %q: %w", args[1], err)
			}

			episodeNumber, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid episode number %q: %w", args[2], err)
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			episode, err := client.TVEpisodes().Get(ctx, seriesID, seasonNumber, episodeNumber, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(episode, func() error {
				return renderEpisodeDetails(episode)
			})
		},
	}
}

func renderEpisodeDetails(episode *tmdb.TVEpisodeDetails) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", strconv.FormatInt(episode.ID, 10))
	_ = table.Append("Name", episode.Name)
	_ = table.Append("Season", strconv.Itoa(episode.SeasonNumber))
	_ = table.Append("Episode", strconv.Itoa(episode.EpisodeNumber))
	_ = table.Append("Air Date", orNA(episode.AirDate))
	_ = table.Append("Runtime", fmt.Sprintf("%d min", episode.Runtime))
	_ = table.Append("Rating", formatVote(episode.VoteAverage, episode.VoteCount))
	_ = table.Append("Overview", truncate(episode.Overview))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newTVListCommand(use, short string, fetch func(tmdb.Client) listFetch[tmdb.TVShow]) *cobra.Command {
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
				return renderShowsTable(result.Results)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")

	return cmd
}
