package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage carectl configuration",
		Long:  "Initialize a default configuration file or display the current effective configuration.",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// ---------- config init ----------

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default carectl.yaml configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config file")

	return cmd
}

const defaultConfig = `# carectl configuration

# CareLink admin API
api:
  base_url: https://api.carelinkhq.com
  timeout: 15s

# Local read-only gateway ('carectl serve')
gateway:
  host: 127.0.0.1
  port: 8470
  rate_limit: 120   # requests per minute per IP, 0 disables
  cors:
    allowed_origins:
      - "*"

# Logging
log:
  level: info    # debug, info, warn, error

# MCP server ('carectl mcp')
mcp:
  transport: stdio
`

func runConfigInit(force bool) error {
	path := "carectl.yaml"

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	fmt.Println("Edit the file, then run 'carectl login' to sign in.")
	return nil
}

// ---------- config show ----------

func newConfigShowCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(asYAML)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Render the effective configuration as YAML")

	return cmd
}

func runConfigShow(asYAML bool) error {
	// Ensure config is loaded
	initConfig()

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		fmt.Printf("Config file: %s\n", configFile)
	} else {
		fmt.Println("Config file: (none found, using defaults)")
	}
	fmt.Println()

	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("No configuration settings loaded.")
		fmt.Println("Run 'carectl config init' to create a default configuration file.")
		return nil
	}

	if asYAML {
		out, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("render config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	}

	for key, value := range settings {
		fmt.Printf("  %s: %v\n", key, value)
	}

	return nil
}
