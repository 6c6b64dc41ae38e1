package main

import (
	"fmt"
	"os"

	"github.com/eternalApril/nisekv/internal/engine"
	"github.com/spf13/cobra"
)

// Version of the nisekv binary
const Version = "0.1.0"

var (
	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "nisekv",
		Short: "in-memory Redis compatible key-value server",
		Long: fmt.Sprintf(`nisekv (v%s)

An in-memory key-value engine speaking RESP2, compatible with Redis %s clients
for strings, lists, sets, hashes and key expiration.`, Version, engine.Version),
		SilenceUsage: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of nisekv",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("nisekv v%s (redis %s)\n", Version, engine.Version)
		},
	}
)

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
