// Package cli defines the cobra command tree for message-part.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/message-part/internal/config"
	"github.com/evcraddock/message-part/internal/content"
	"github.com/evcraddock/message-part/internal/db"
)

var (
	flagFormat string
	flagDB     string
	flagConfig string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mp",
		Short:         "Edit and display message content parts",
		Long:          "A content part that holds a single message. Edit it in a form, store it, and render it back to visitors via the web UI or the CLI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.message-part/parts.db)")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")

	root.AddCommand(
		newPartCmd(),
		newEditCmd(),
		newShowCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// loadConfig resolves settings from the config file, the environment and
// the --db flag, in increasing priority.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	return cfg, nil
}

// openDB opens the SQLite database from the resolved config or the default path.
func openDB(cfg config.Config) (*sql.DB, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return db.Open(path)
}

// newPartRepo loads config and opens a part repository.
// Callers must close the returned database.
func newPartRepo() (*content.Repository, *sql.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	database, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return content.NewRepository(database), database, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeDB closes the database, logging any error to stderr.
func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}
