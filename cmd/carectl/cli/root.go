package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	appVersion string // set in Execute, used by serve for the startup banner
)

// Execute creates the root command tree and runs it.
func Execute(version, commit, date string) error {
	appVersion = version
	rootCmd := newRootCmd(version, commit, date)
	return rootCmd.Execute()
}

func newRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carectl",
		Short: "Back-office CLI for the CareLink caregiving marketplace",
		Long: `carectl is the CareLink back-office tool for support and operations staff.

It signs in against the admin API, keeps the session in a local SQLite store,
and exposes dashboards, caregiver and care-seeker rosters, KYC verification,
staff management, bookings, and transactional email from the terminal. It can
also run a local read-only HTTP gateway and an MCP server for AI agents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./carectl.yaml)")
	cmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory for the session store (default: ~/.carectl)")

	cobra.OnInitialize(initConfig)

	// Add subcommands
	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newLogoutCmd())
	cmd.AddCommand(newWhoamiCmd())
	cmd.AddCommand(newDashboardCmd())
	cmd.AddCommand(newCaregiverCmd())
	cmd.AddCommand(newCareSeekerCmd())
	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newEmailCmd())
	cmd.AddCommand(newBookingCmd())
	cmd.AddCommand(newTransactionCmd())
	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newStopCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newVersionCmd(version, commit, date))

	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("carectl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.carectl")
	}

	viper.SetDefault("api.base_url", defaultBaseURL)
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("gateway.host", "127.0.0.1")
	viper.SetDefault("gateway.port", 8470)
	viper.SetDefault("gateway.rate_limit", 120)

	viper.SetEnvPrefix("CARECTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.ReadInConfig() // Ignore error - config file is optional
}
