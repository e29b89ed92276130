package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/slipscan/cmd/advise"
	exportcmd "fjacquet/slipscan/cmd/export"
	"fjacquet/slipscan/cmd/listmodels"
	"fjacquet/slipscan/cmd/root"
	"fjacquet/slipscan/cmd/scan"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, then configure the global
	// log level before anything logs.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(scan.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(listmodels.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before any command runs.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
