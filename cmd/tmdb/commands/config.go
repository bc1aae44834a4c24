package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moviekit/tmdb-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config represents the persisted CLI configuration.
type Config struct {
	APIKey      string `json:"api_key,omitempty"      yaml:"api-key,omitempty"`
	BearerToken string `json:"bearer_token,omitempty" yaml:"bearer-token,omitempty"`
	Language    string `json:"language,omitempty"     yaml:"language,omitempty"`
	Region      string `json:"region,omitempty"       yaml:"region,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".tmdb", "config.yml"), nil
}

func loadConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &config, nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file holds credentials; keep it owner-readable only.
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func maskSecret(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return constants.MaskedSecret
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage TMDB CLI configuration including credentials and defaults",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with credentials masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			masked := *config
			masked.APIKey = maskSecret(config.APIKey)
			masked.BearerToken = maskSecret(config.BearerToken)

			return renderOutput(masked, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Setting", "Value")
				_ = table.Append("api-key", masked.APIKey)
				_ = table.Append("bearer-token", masked.BearerToken)
				_ = table.Append("language", orNA(config.Language))
				_ = table.Append("region", orNA(config.Region))
				_ = table.Append("output", orNA(config.Output))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [api-key]",
		Short: "Store the TMDB API key",
		Long:  "Store the v3 API key in the config file. Prompts when no argument is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) == 1 {
				apiKey = args[0]
			} else {
				fmt.Fprint(os.Stderr, "API key: ")

				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading api key: %w", err)
				}

				apiKey = strings.TrimSpace(string(raw))
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = apiKey

			if err := saveConfig(config); err != nil {
				return err
			}

			cmd.Println("API key saved")

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (language, region, output, bearer-token)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]

			switch key {
			case "language":
				config.Language = value
			case "region":
				config.Region = value
			case "output":
				config.Output = value
			case "bearer-token":
				config.BearerToken = value
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			cmd.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			key := args[0]

			switch key {
			case "api-key":
				config.APIKey = ""
			case "bearer-token":
				config.BearerToken = ""
			case "language":
				config.Language = ""
			case "region":
				config.Region = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			cmd.Printf("Unset %s\n", key)

			return nil
		},
	}
}
