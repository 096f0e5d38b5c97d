package main

import (
	"fmt"
	"os"
	"skilld/internal/di"
	"skilld/internal/persistence"
	"skilld/internal/providers"
	"skilld/internal/structures"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var flags structures.CliFlags

var rootCmd = &cobra.Command{
	Use:           "skilld",
	Short:         "Serve GITADORA skills pages from exported player snapshots",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var packCmd = &cobra.Command{
	Use:   "pack <out> <in>...",
	Short: "Pack snapshot files into one compressed storage file",
	Long: `Reads every input (storage envelope or single player export, plain or
zstd) and writes one zstd compressed storage file. A single player export
is stored under its file name without extension.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPack,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "Enable debug logging to the console")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(packCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	_, err := di.InitApp(&flags)
	return err
}

func runPack(_ *cobra.Command, args []string) error {
	level := "warn"
	if flags.DebugMode {
		level = "debug"
	}
	logger, err := providers.NewConsoleLogger(os.Stderr, level)
	if err != nil {
		return err
	}
	compressor, err := persistence.NewZstdCompressor()
	if err != nil {
		return err
	}

	out := args[0]
	fm := persistence.NewFileManager(out, compressor, logger)
	defer fm.Close()

	n, err := fm.Pack(out, args[1:]...)
	if err != nil {
		return err
	}
	logger.Infof(providers.TypeApp, "Packed %d players into %s", n, out)
	return nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
