package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/longkey1/chatbox/internal/chatbox/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration file",
	Long: `Initialize the configuration file with default settings.
The config file will be created at $HOME/.config/chatbox/config.toml by default.
You can specify a different location using the --config option.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %v", err)
		}

		configFile := filepath.Join(home, ".config", "chatbox", "config.toml")
		if cfgFile != "" {
			configFile = cfgFile
		}

		if err := writeDefaultConfig(configFile); err != nil {
			return err
		}

		fmt.Printf("Configuration file created at: %s\n", configFile)
		return nil
	},
}

// writeDefaultConfig creates configFile with the default settings.
// An existing file is never overwritten.
func writeDefaultConfig(configFile string) error {
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %v", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at: %s", configFile)
	}

	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config.NewDefaultConfig()); err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
