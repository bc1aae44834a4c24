package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/moviekit/tmdb-client/internal/constants"
	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/moviekit/tmdb-client/pkg/tmdbclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// newClient builds an API client from the resolved configuration. Flags
// take precedence over environment variables and the config file.
func newClient() (tmdb.Client, error) {
	apiKey := viper.GetString("api-key")
	bearerToken := viper.GetString("bearer-token")

	if apiKey == "" && bearerToken == "" {
		return nil, constants.ErrNoCredentialsConfigured
	}

	config := &tmdb.Config{
		APIKey:      apiKey,
		AccessToken: bearerToken,
		Debug:       viper.GetBool("verbose"),
	}

	client, err := tmdbclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// requestContext returns a context bounded by the default HTTP timeout.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), constants.DefaultHTTPTimeout)
}

// queryParams builds common query parameters from the global flags.
func queryParams(page int) *tmdb.QueryParams {
	params := tmdb.NewQueryParams()

	if language := viper.GetString("language"); language != "" {
		params.WithLanguage(language)
	}

	if region := viper.GetString("region"); region != "" {
		params.WithRegion(region)
	}

	if page > 0 {
		params.WithPage(page)
	}

	return params
}

// renderOutput writes v as JSON or YAML when requested, otherwise calls
// renderTable.
func renderOutput(v interface{}, renderTable func() error) error {
	output := viper.GetString("output")

	switch output {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(v)
	case constants.FormatTable, "":
		return renderTable()
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, output)
	}
}

// truncate shortens s to the overview column width for table output.
// Counting runes keeps multibyte overview text valid UTF-8.
func truncate(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")

	runes := []rune(s)
	if len(runes) <= constants.OverviewTruncateLength {
		return s
	}

	return string(runes[:constants.OverviewTruncateLength-3]) + "..."
}

// orNA substitutes the not-available marker for empty strings.
func orNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}

func formatVote(average float64, count int64) string {
	if count == 0 {
		return constants.NotAvailable
	}

	return fmt.Sprintf("%.1f (%d votes)", average, count)
}

func renderMoviesTable(movies []tmdb.Movie) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Release Date", "Rating", "Overview")

	for _, movie := range movies {
		_ = table.Append(
			strconv.FormatInt(movie.ID, 10),
			movie.Title,
			orNA(movie.ReleaseDate),
			formatVote(movie.VoteAverage, movie.VoteCount),
			truncate(movie.Overview),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderShowsTable(shows []tmdb.TVShow) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "First Air Date", "Rating", "Overview")

	for _, show := range shows {
		_ = table.Append(
			strconv.FormatInt(show.ID, 10),
			show.Name,
			orNA(show.FirstAirDate),
			formatVote(show.VoteAverage, show.VoteCount),
			truncate(show.Overview),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderPeopleTable(people []tmdb.Person) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Department", "Popularity")

	for _, person := range people {
		_ = table.Append(
			strconv.FormatInt(person.ID, 10),
			person.Name,
			orNA(person.KnownForDepartment),
			fmt.Sprintf("%.1f", person.Popularity),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderGenresTable(genres []tmdb.Genre) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name")

	for _, genre := range genres {
		_ = table.Append(strconv.FormatInt(genre.ID, 10), genre.Name)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// parseID parses a positive numeric command argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}

	return id, nil
}
