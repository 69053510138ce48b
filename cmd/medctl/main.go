package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	tzFlag  string
	rootCmd = &cobra.Command{
		Use:   "medctl",
		Short: "Offline tools for prescription normalization and adherence reports",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "UTC", "Patient time zone (IANA name)")

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
