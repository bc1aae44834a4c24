package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/moviekit/tmdb-client/pkg/tmdb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPersonCommand creates the person command group.
func NewPersonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"people"},
		Short:   "Browse people",
		Long:    "Look up people, their credits and the popular people list",
	}

	cmd.AddCommand(newPersonGetCommand())
	cmd.AddCommand(newPersonCreditsCommand())
	cmd.AddCommand(newPersonPopularCommand())

	return cmd
}

func newPersonGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show person details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			person, err := client.People().Get(ctx, personID, queryParams(0))
			if err != nil {
				return err
			}

			return renderOutput(person, func() error {
				return renderPersonDetails(person)
			})
		},
	}
}

func renderPersonDetails(person *tmdb.PersonDetails) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")
	_ = table.Append("ID", strconv.FormatInt(person.ID, 10))
	_ = table.Append("Name", person.Name)
	_ = table.Append("Known For", orNA(person.KnownForDepartment))
	_ = table.Append("Birthday", orNA(derefString(person.Birthday)))
	_ = table.Append("Deathday", orNA(derefString(person.Deathday)))
	_ = table.Append("Place of Birth", orNA(derefString(person.PlaceOfBirth)))
	_ = table.Append("Popularity", fmt.Sprintf("%.1f", person.Popularity))
	_ = table.Append("Biography", truncate(person.Biography))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func newPersonCreditsCommand() *cobra.Command {
	var medium string

	cmd := &cobra.Command{
		Use:   "credits <id>",
		Short: "Show the credits of a person",
		Long:  "Show the movie, TV or combined credits of a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			var credits *tmdb.PersonCredits

			switch medium {
			case "movie":
				credits, err = client.People().MovieCredits(ctx, personID, queryParams(0))
			case "tv":
				credits, err = client.People().TVCredits(ctx, personID, queryParams(0))
			case "combined":
				credits, err = client.People().CombinedCredits(ctx, personID, queryParams(0))
			default:
				return fmt.Errorf("unknown medium %q, expected movie, tv or combined", medium)
			}

			if err != nil {
				return err
			}

			return renderOutput(credits, func() error {
				return renderPersonCreditsTable(credits)
			})
		},
	}

	cmd.Flags().StringVar(&medium, "medium", "combined", "credit medium (movie, tv, combined)")

	return cmd
}

func renderPersonCreditsTable(credits *tmdb.PersonCredits) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Role", "Title", "As", "Date")

	for _, credit := range credits.Cast {
		title := credit.Title
		date := credit.ReleaseDate

		if title == "" {
			title = credit.Name
			date = credit.FirstAirDate
		}

		_ = table.Append("cast", title, credit.Character, orNA(date))
	}

	for _, credit := range credits.Crew {
		title := credit.Title
		date := credit.ReleaseDate

		if title == "" {
			title = credit.Name
			date = credit.FirstAirDate
		}

		_ = table.Append("crew", title, credit.Job, orNA(date))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPersonPopularCommand() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Most popular people",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			ctx, cancel := requestContext()
			defer cancel()

			result, err := client.People().Popular(ctx, queryParams(page))
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
