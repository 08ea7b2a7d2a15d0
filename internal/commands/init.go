package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/store"
)

func newInitCommand() *cobra.Command {
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a tally data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, withGit)
		},
	}

	cmd.Flags().BoolVar(&withGit, "git", false, "track data files in a git repository")

	return cmd
}

func runInit(out io.Writer, dir string, withGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Keep an existing config; only git tracking may be switched on.
	cfgPath := filepath.Join(dir, config.FileName)
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return err
	}
	if withGit {
		cfg.Git.AutoCommit = true
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Existing data files are never overwritten.
	if err := createIfMissing(cfg.TransactionsPath(dir), func(p string) error {
		return store.Save[model.Transaction](p, nil)
	}); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}
	if err := createIfMissing(cfg.TasksPath(dir), func(p string) error {
		return store.Save[model.Task](p, nil)
	}); err != nil {
		return fmt.Errorf("writing tasks: %w", err)
	}

	if !withGit {
		fmt.Fprintf(out, "Initialized tally at %s\n", dir)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
	}
	hash, err := gitops.CommitPaths(dir, "init: tally data", cfg.Git.AuthorName, cfg.Git.AuthorEmail,
		cfgPath, cfg.TransactionsPath(dir), cfg.TasksPath(dir))
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	if hash == "" {
		fmt.Fprintf(out, "Initialized tally at %s\n", dir)
		return nil
	}
	fmt.Fprintf(out, "Initialized tally at %s (%s)\n", dir, hash)
	return nil
}

func createIfMissing(path string, create func(string) error) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return create(path)
}
