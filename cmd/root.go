package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nsxbet/redshift-tables/pkg/logger"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "redshift-tables",
	Short: "List the tables a Redshift stored procedure depends on",
	Long: `redshift-tables scans Redshift stored procedure sources and reports the
schema-qualified tables they read from or write to.

It does not parse the SQL or connect to a database. References are found with
lexical patterns, which makes it fast and tolerant of incomplete code, at the
cost of ignoring unqualified names and most dynamic SQL.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.redshift-tables.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".redshift-tables" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".redshift-tables")
	}

	viper.SetEnvPrefix("REDSHIFT_TABLES")
	viper.AutomaticEnv() // e.g. REDSHIFT_TABLES_MAXINPUTBYTES

	err := viper.ReadInConfig()
	setupLogger()

	// A missing default config file is fine; flags and defaults still apply.
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgFile != "" {
			slog.Warn("Ignoring config file", logger.Error(err))
		}
		return
	}
	slog.Debug("Using config file", "file", viper.ConfigFileUsed())
}

func setupLogger() {
	level := slog.LevelWarn
	if viper.GetBool("debug") {
		level = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		level = slog.LevelInfo
	}
	logger.NewWithLevel(level).SetDefault()
}
