package cli

import (
	"context"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/sbml2biopax/internal/adapters/driven/config/file"
	storagefile "github.com/custodia-labs/sbml2biopax/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/sbml2biopax/internal/biopax"
	"github.com/custodia-labs/sbml2biopax/internal/celldesigner"
	"github.com/custodia-labs/sbml2biopax/internal/core/domain"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driven"
	"github.com/custodia-labs/sbml2biopax/internal/core/ports/driving"
	"github.com/custodia-labs/sbml2biopax/internal/core/services"
	"github.com/custodia-labs/sbml2biopax/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Services used by the commands. Set by SetServices or lazily on first use.
var (
	conversionService driving.ConversionService
	watchService      driving.WatchService
	settingsService   driving.SettingsService
	configPath        string
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "sbml2biopax",
	Short: "Convert CellDesigner SBML models to BioPAX Level 3",
	Long: `sbml2biopax reads a CellDesigner-annotated SBML model and writes an
equivalent BioPAX Level 3 document in RDF/XML.

Proteins, simple molecules, compartments and reactions are carried over.
The output file is replaced atomically, so a failed conversion never leaves
a partial document behind.`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print extraction and emission details")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.sbml2biopax)")
}

// Services groups the driving ports the commands depend on.
type Services struct {
	Conversion driving.ConversionService
	Watch      driving.WatchService
	Settings   driving.SettingsService
	ConfigPath string
}

// SetServices replaces the services used by the commands.
func SetServices(s Services) {
	conversionService = s.Conversion
	watchService = s.Watch
	settingsService = s.Settings
	configPath = s.ConfigPath
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func preRun(cmd *cobra.Command, _ []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetVerbose(verbose)

	if cmd == versionCmd || settingsService != nil {
		return nil
	}
	s, err := NewServices(configDir)
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}

// NewServices wires the file-backed adapters into the core services.
func NewServices(dir string) (Services, error) {
	store, err := configfile.NewConfigStore(dir)
	if err != nil {
		return Services{}, err
	}

	settings := services.NewSettingsService(store)
	conversion := services.NewConversionService(celldesigner.New(), newPathwayWriter, storagefile.NewSink(), settings)

	return Services{
		Conversion: conversion,
		Watch:      services.NewWatchService(conversion, settings),
		Settings:   settings,
		ConfigPath: store.Path(),
	}, nil
}

func newPathwayWriter(o domain.OutputSettings) driven.PathwayWriter {
	return biopax.NewWriter(biopax.OptionsFromSettings(o))
}
