package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/tally-dev/tally/internal/config"
	"github.com/tally-dev/tally/internal/gitops"
)

// env is the resolved data home and its configuration.
type env struct {
	home string
	cfg  *config.Config
}

func loadEnv(opts *options) (*env, error) {
	home, err := filepath.Abs(opts.home)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg, err := config.LoadOrDefault(filepath.Join(home, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &env{home: home, cfg: cfg}, nil
}

// dataPath returns override resolved against home, or fallback if override
// is empty.
func (e *env) dataPath(override, fallback string) string {
	if override == "" {
		return fallback
	}
	if filepath.IsAbs(override) {
		return override
	}
	return filepath.Join(e.home, override)
}

// commit records a change to path in git when auto-commit is on. Failures are
// logged; the data itself is already saved.
func (e *env) commit(message, path string) {
	if !e.cfg.Git.AutoCommit || !gitops.IsRepo(e.home) {
		return
	}
	hash, err := gitops.CommitPaths(e.home, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("auto-commit failed")
		return
	}
	if hash != "" {
		log.Debug().Str("commit", hash).Str("message", message).Msg("committed")
	}
}
