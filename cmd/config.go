package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/longkey1/chatbox/internal/chatbox/config"
	"github.com/longkey1/chatbox/internal/predict"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const configFields = "configfile, endpoint, predict_url, locale, greeting, show_timestamps, log_level, log_format, log_file"

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + configFields + `

Examples:
  chatbox config              # Show all configuration
  chatbox config endpoint     # Show only the endpoint
  chatbox config predict_url  # Show the resolved /predict URL
  chatbox config locale       # Show only the locale`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if len(args) > 0 {
			value, err := configField(cfg, args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Available fields: %s\n", configFields)
				return err
			}
			fmt.Println(value)
			return nil
		}

		predictURL, _ := predict.ResolveEndpoint(cfg.Endpoint)
		fmt.Printf("ConfigFile: %s\n", viper.ConfigFileUsed())
		fmt.Printf("Endpoint: %s\n", cfg.Endpoint)
		fmt.Printf("PredictURL: %s\n", predictURL)
		fmt.Printf("Locale: %s\n", cfg.Locale)
		fmt.Printf("Greeting: %s\n", cfg.Greeting)
		fmt.Printf("ShowTimestamps: %v\n", cfg.ShowTimestamps)
		fmt.Printf("LogLevel: %s\n", cfg.LogLevel)
		fmt.Printf("LogFormat: %s\n", cfg.LogFormat)
		fmt.Printf("LogFile: %s\n", cfg.LogFile)
		return nil
	},
}

// configField returns the printable value of a single field.
func configField(cfg *config.Config, field string) (string, error) {
	switch strings.ToLower(field) {
	case "configfile":
		return viper.ConfigFileUsed(), nil
	case "endpoint":
		return cfg.Endpoint, nil
	case "predict_url", "predicturl":
		return predict.ResolveEndpoint(cfg.Endpoint)
	case "locale":
		return cfg.Locale, nil
	case "greeting":
		return cfg.Greeting, nil
	case "show_timestamps", "showtimestamps":
		return fmt.Sprint(cfg.ShowTimestamps), nil
	case "log_level", "loglevel":
		return cfg.LogLevel, nil
	case "log_format", "logformat":
		return cfg.LogFormat, nil
	case "log_file", "logfile":
		return cfg.LogFile, nil
	default:
		return "", fmt.Errorf("unknown field: %s", field)
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
}
