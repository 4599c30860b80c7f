package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"coursegen/pkg/config"
	"coursegen/pkg/history"
	"coursegen/pkg/scaffold"
	"coursegen/pkg/template"
)

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	name := templateName
	if name == "" {
		name = cfg.Template
	}

	tmpl, err := newEngine(cfg).LoadTemplate(name)
	if err != nil {
		return err
	}

	m, err := newMaterializer(cmd, cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	result, runErr := scaffold.Run(m, tmpl)

	if cfg.History.Enabled {
		if err := recordRun(cfg, tmpl.Name, m, result, runErr, start); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to record run history: %v\n", err)
		}
	}

	return runErr
}

func newEngine(cfg *config.Config) *template.FileSystemEngine {
	dir := templateDir
	if dir == "" {
		dir = cfg.TemplateDir
	}
	return template.NewFileSystemEngine(dir)
}

func newMaterializer(cmd *cobra.Command, cfg *config.Config) (*scaffold.Materializer, error) {
	dirMode, err := cfg.Permissions.DirMode()
	if err != nil {
		return nil, err
	}
	fileMode, err := cfg.Permissions.FileMode()
	if err != nil {
		return nil, err
	}

	m := scaffold.NewMaterializer(targetDir)
	m.DirPerm = dirMode
	m.FilePerm = fileMode
	m.DryRun = dryRun
	m.Out = cmd.OutOrStdout()
	if quiet {
		m.Out = io.Discard
	}
	return m, nil
}

func recordRun(cfg *config.Config, name string, m *scaffold.Materializer, result *scaffold.Result, runErr error, start time.Time) error {
	db, err := history.Open(cfg.HistoryPath())
	if err != nil {
		return err
	}
	defer db.Close()

	root, err := filepath.Abs(m.Root)
	if err != nil {
		root = m.Root
	}

	run := history.Run{
		StartedAt: start,
		Template:  name,
		Root:      root,
		DryRun:    m.DryRun,
		Duration:  time.Since(start),
		Success:   runErr == nil,
	}
	if result != nil {
		run.Directories = result.Directories
		run.Files = result.Files
		run.Duration = result.Duration
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	_, err = db.Record(run)
	return err
}
