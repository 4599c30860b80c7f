package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coursegen/pkg/config"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "📦 Available Templates:")
		fmt.Fprintln(out, "────────────────────────────────────────────────")
		for _, t := range newEngine(cfg).ListTemplates() {
			kind := "custom"
			if t.BuiltIn {
				kind = "built-in"
			}
			fmt.Fprintf(out, "  %-24s %s (%s)\n", t.Name, t.Description, kind)
			fmt.Fprintf(out, "    %d directories, %d files\n", t.Directories, len(t.Files))
		}
		fmt.Fprintln(out, "────────────────────────────────────────────────")
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the directories and files of a template",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		name := cfg.Template
		if len(args) > 0 {
			name = args[0]
		}

		tmpl, err := newEngine(cfg).LoadTemplate(name)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", tmpl.Name, tmpl.Description)
		fmt.Fprintf(out, "\nDirectories (%d):\n", len(tmpl.Directories))
		for _, d := range tmpl.Directories {
			fmt.Fprintf(out, "  %s/\n", d)
		}
		for _, g := range tmpl.Groups {
			fmt.Fprintf(out, "\n%s (%d):\n", g.Title, len(g.Files))
			for _, f := range g.Files {
				fmt.Fprintf(out, "  %-64s %6d bytes\n", f.Path, len(f.Content))
			}
		}
		return nil
	},
}

var templateExportCmd = &cobra.Command{
	Use:   "export [name] <dir>",
	Short: "Export a template as an editable directory",
	Long: `Writes a template manifest and its files to <dir>. Point --template-dir at
the parent of <dir> and pass the directory name to --template to use it.`,
	Example: `  coursegen template export ./templates/my-course
  coursegen --template-dir ./templates --template my-course`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		name, dir := cfg.Template, args[0]
		if len(args) == 2 {
			name, dir = args[0], args[1]
		}

		if err := newEngine(cfg).ExportTemplate(name, dir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %s to %s\n", name, dir)
		return nil
	},
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateExportCmd)
	rootCmd.AddCommand(templateCmd)
}
