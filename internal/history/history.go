// Package history reads commit history from git repositories.
package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/negz/boxtable/internal/cache"
)

// DefaultDepth is how many commits a clone of a remote repository fetches.
const DefaultDepth = 100

// Option configures Open.
type Option func(*Repo)

// WithLogger sets the logger for progress output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repo) {
		r.log = l
	}
}

// WithCacheDir sets the directory remote repositories are cloned into.
func WithCacheDir(dir string) Option {
	return func(r *Repo) {
		r.cacheDir = dir
	}
}

// WithDepth limits how many commits a clone of a remote repository fetches.
// Zero fetches full history.
func WithDepth(d int) Option {
	return func(r *Repo) {
		r.depth = d
	}
}

// A Repo is a git repository.
type Repo struct {
	log      *slog.Logger
	cacheDir string
	depth    int

	repo *git.Repository
}

// A Commit is a summary of one commit.
type Commit struct {
	Hash    string
	Author  string
	When    time.Time
	Subject string
}

// Open opens the git repository at source. If source is an existing
// directory it's opened in place, otherwise source is treated as a URL and
// cloned into the cache directory, or pulled if it was cloned before.
func Open(ctx context.Context, source string, opts ...Option) (*Repo, error) {
	r := &Repo{
		log:      slog.New(slog.DiscardHandler),
		cacheDir: cache.Dir(),
		depth:    DefaultDepth,
	}
	for _, o := range opts {
		o(r)
	}

	if fi, err := os.Stat(source); err == nil && fi.IsDir() {
		r.log.Debug("Opening local repository", "path", source)
		repo, err := git.PlainOpenWithOptions(source, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return nil, fmt.Errorf("open repo: %w", err)
		}
		r.repo = repo
		return r, nil
	}

	repo, err := r.pull(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("sync %s: %w", source, err)
	}
	r.repo = repo
	return r, nil
}

// pull clones or updates a remote repository in the cache directory.
func (r *Repo) pull(ctx context.Context, url string) (*git.Repository, error) {
	path := cache.RepoDir(r.cacheDir, url)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	var progress io.Writer
	if r.log.Enabled(ctx, slog.LevelDebug) {
		progress = os.Stderr
	}

	if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
		r.log.Info("Updating repository", "url", url, "path", path)
		repo, err := git.PlainOpen(path)
		if err != nil {
			return nil, fmt.Errorf("open repo: %w", err)
		}
		w, err := repo.Worktree()
		if err != nil {
			return nil, fmt.Errorf("get worktree: %w", err)
		}
		if err := w.Reset(&git.ResetOptions{Mode: git.HardReset}); err != nil {
			return nil, fmt.Errorf("reset worktree: %w", err)
		}
		if err := w.PullContext(ctx, &git.PullOptions{Progress: progress, Depth: r.depth}); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return nil, err
		}
		return repo, nil
	}

	r.log.Info("Cloning repository", "url", url, "path", path)
	return git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:          url,
		Depth:        r.depth,
		SingleBranch: true,
		Progress:     progress,
	})
}

// Commits returns up to limit commits reachable from HEAD, newest first.
// A limit of zero returns every commit. A repository with no commits returns
// none.
func (r *Repo) Commits(limit int) ([]Commit, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var out []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(out) >= limit {
			return storer.ErrStop
		}
		out = append(out, Commit{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: subject(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk log: %w", err)
	}
	return out, nil
}

// subject returns the first line of a commit message.
func subject(msg string) string {
	msg = strings.TrimSpace(msg)
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}

// Labels returns the column labels for Rows.
func Labels() []string {
	return []string{"Hash", "Author", "When", "Subject"}
}

// Rows formats commits as table rows, with commit times relative to now.
func Rows(commits []Commit, now time.Time) [][]string {
	rows := make([][]string, len(commits))
	for i, c := range commits {
		hash := c.Hash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		rows[i] = []string{hash, c.Author, humanize.RelTime(c.When, now, "ago", "from now"), c.Subject}
	}
	return rows
}
