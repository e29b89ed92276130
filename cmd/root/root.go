// Package root contains the root command for the application.
package root

import (
	"fjacquet/slipscan/internal/config"
	"fjacquet/slipscan/internal/container"
	"fjacquet/slipscan/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// SharedFlags holds common flag values accessible to all commands.
	SharedFlags = CommonFlags{}

	appContainer *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "slipscan",
		Short: "Extract financial records from bank slip images with Gemini and summarize them.",
		Long: `slipscan reads a batch of bank payment slip images (PNG/JPEG), extracts one
structured record per slip using the Gemini vision model, aggregates the
records into spending statistics, generates an AI commentary on the result,
and exports the table as CSV or XLSX.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to slipscan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				if err := appContainer.Close(); err != nil {
					Log.Warnf("Failed to close application resources: %v", err)
				}
			}
		},
	}
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
}

// GetContainer returns the application container built in PersistentPreRun.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogger returns the structured logger backed by the shared logrus
// instance.
func GetLogger() logging.Logger {
	if appContainer != nil {
		return appContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}
