package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studyforge/pdfchapters/internal/logging"
)

var (
	logLevel string
	logStyle string
)

func main() {
	root := &cobra.Command{
		Use:   "pdfchapters",
		Short: "Detect chapter structure in a PDF and extract page-scoped text",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&logStyle, "log-style", "terminal", "log style: terminal|json|noop")

	root.AddCommand(detectCmd())
	root.AddCommand(extractCmd())
	root.AddCommand(exportCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	return logging.New(logging.Style(logStyle), logLevel)
}
