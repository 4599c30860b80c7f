package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "Course repository scaffolder",
	Long: `Creates the directory structure and template files of a course repository.

Run it from the directory that should become the repository root. Directories
that already exist are kept; template files are always rewritten.`,
	Example: `  coursegen                          # set up the current directory
  coursegen --dir ./complex-systems  # set up another directory
  coursegen --dry-run                # show what would be created`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSetup,
}

var (
	configPath   string
	templateDir  string
	targetDir    string
	templateName string
	dryRun       bool
	quiet        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.coursegen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&templateDir, "template-dir", "", "Directory containing custom templates")

	rootCmd.Flags().StringVarP(&targetDir, "dir", "d", ".", "Repository root to set up")
	rootCmd.Flags().StringVarP(&templateName, "template", "t", "", "Template to use (default from config)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be created without touching the filesystem")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
