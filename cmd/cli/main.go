package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neuroatlas/neuroquery/pkg/client"
)

// Config holds CLI settings persisted under ~/.neuroquery
type Config struct {
	BaseURL string `json:"base_url"`
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".neuroquery")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "cli_config.json"), nil
}

func loadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{BaseURL: "http://localhost:8080"}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	return &cfg, nil
}

func saveConfig(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func newClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return client.NewClient(cfg.BaseURL), nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "neuroquery",
	Short: "NeuroQuery CLI",
}

var useCmd = &cobra.Command{
	Use:   "use BASE_URL",
	Short: "Set the query service base URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.BaseURL = args[0]
		return saveConfig(cfg)
	},
}

var termsCmd = &cobra.Command{
	Use:   "terms TERM_A TERM_B",
	Short: "Studies mentioning TERM_A but not TERM_B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		result, err := c.DissociateTerms(args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var locationsCmd = &cobra.Command{
	Use:   "locations X_Y_Z X_Y_Z",
	Short: "Studies with activations near the first point but not the second",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		result, err := c.DissociateLocations(args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var findCmd = &cobra.Command{
	Use:   "find KEYWORD",
	Short: "Search stored term strings by substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		result, err := c.FindTerms(args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check database connectivity through the service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		snap, err := c.TestDB()
		if err != nil {
			return err
		}
		if err := printJSON(snap); err != nil {
			return err
		}
		if !snap.OK {
			return fmt.Errorf("database check failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(useCmd, termsCmd, locationsCmd, findCmd, pingCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
