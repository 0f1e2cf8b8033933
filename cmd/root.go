// =============================================================================
// Ventas POS - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every user action of
// the point of sale is a subcommand; the state they work on (catalog, cart,
// ticket info) is persisted between invocations in the state directory.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pos)
//   ├── importCmd   (pos import <file>)
//   ├── stockCmd    (pos stock list | export)
//   ├── cartCmd     (pos cart show | add | inc | dec | remove)
//   ├── ticketCmd   (pos ticket show | set)
//   ├── saleCmd     (pos sale confirm)
//   ├── serveCmd    (pos serve)
//   └── versionCmd  (pos version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/ventas-pos/internal/app"
	"github.com/ginjaninja78/ventas-pos/internal/catalog"
	"github.com/ginjaninja78/ventas-pos/internal/config"
	"github.com/ginjaninja78/ventas-pos/internal/logger"
	"github.com/ginjaninja78/ventas-pos/internal/storage"
	"github.com/ginjaninja78/ventas-pos/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// envFile holds the path to an optional .env file.
var envFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Ventas POS - Catalog, cart and sale tickets from a spreadsheet",
	Long: `Ventas POS is a small point-of-sale tool. It imports a product catalog
from a spreadsheet, lets you search the stock, build a cart and confirm the
sale, which exports the ticket as a workbook.

Example Usage:
  pos import productos.xlsx        # Replace the catalog
  pos stock list --query yerba     # Search the stock
  pos cart add A1                  # Add one unit of product A1
  pos ticket set --customer "Ana"  # Set the ticket customer
  pos sale confirm                 # Export venta_<ticket>.xlsx, clear the cart
  pos serve                        # Serve the stock and billing views over HTTP`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (optional)",
	)

	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		".env",
		"Path to an optional .env file with POS_* variables",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SESSION BOOTSTRAP
// =============================================================================

// session bundles what a command needs: configuration, logger and the
// application state loaded from the state directory.
type session struct {
	cfg *config.MainConfig
	log *logger.Logger
	app *app.App
}

// openSession loads the configuration and the persisted state.
func openSession() (*session, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load main config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, err := logger.New(level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}

	files := utils.NewFileManager(cfg.ExportDir)
	if err := files.EnsureDirectories(); err != nil {
		return nil, err
	}

	a := app.Open(app.Options{
		Store:           store,
		Files:           files,
		Reader:          catalog.NewReader(cfg.CSVSettings),
		Logger:          log,
		DefaultCustomer: cfg.DefaultCustomer,
	})

	log.Debug("session opened",
		zap.String("state_dir", store.Dir()),
		zap.String("export_dir", files.ExportDir),
	)

	return &session{cfg: cfg, log: log, app: a}, nil
}

// close flushes the logger.
func (s *session) close() {
	s.log.Sync()
}
