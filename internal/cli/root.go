// Package cli implements the linkvault CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/config"
	"github.com/evanhall/linkvault/internal/logger"
	"github.com/evanhall/linkvault/internal/model"
	"github.com/evanhall/linkvault/internal/seed"
	"github.com/evanhall/linkvault/internal/storage"
	"github.com/evanhall/linkvault/internal/store"
)

var (
	cfgPath    string
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "linkvault",
	Short: "Local-first bookmark manager",
	Long:  "A single-binary bookmark manager. Collections, kinds, tags and todos, stored locally in SQLite. Imports and exports browser bookmark files.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config path (default: $LINKVAULT_CONFIG or "+config.DefaultPath+")")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Storage path (default: $LINKVAULT_DB or from config)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = os.Getenv("LINKVAULT_CONFIG")
	}
	return config.Load(path)
}

func storagePath(cfg *config.Config) string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("LINKVAULT_DB"); env != "" {
		return env
	}
	return config.ExpandHome(cfg.Storage.Path)
}

// openStore wires transport, logger and seed data into a store. The
// returned func releases the transport and flushes the logger.
func openStore() (*store.Store, func(), error) {
	return openStoreWith(nil)
}

// openStoreWith forces a seed provider regardless of the
// seed.on_first_run setting; the seed command needs one.
func openStoreWith(seedFn func() *model.Snapshot) (*store.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var transport storage.Transport
	switch cfg.Storage.Driver {
	case "file":
		transport = storage.NewFile(storagePath(cfg))
	default:
		transport, err = storage.NewSQLite(storagePath(cfg))
		if err != nil {
			return nil, nil, err
		}
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Pretty)

	storeCfg := store.Config{Transport: transport, Logger: log, Seed: seedFn}
	if storeCfg.Seed == nil && cfg.Seed.OnFirstRun {
		storeCfg.Seed = seed.Data
	}

	s := store.New(storeCfg)
	cleanup := func() {
		transport.Close()
		log.Sync()
	}
	return s, cleanup, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// exitBlocked reports a refused guarded delete.
func exitBlocked(res model.DeleteResult) {
	fmt.Fprintf(os.Stderr, "error: %s\n", res.Message)
	os.Exit(1)
}
