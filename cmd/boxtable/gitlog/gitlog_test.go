package gitlog

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/google/go-cmp/cmp"

	"github.com/negz/boxtable/internal/output"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := r.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("hi"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add("README"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sig := &object.Signature{Name: "Alice", Email: "alice@example.org", When: time.Now().Add(-2 * time.Hour)}
	hash, err := wt.Commit("Initial commit", &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}

	b := &bytes.Buffer{}
	c := &Command{Limit: 20, Source: dir}
	if err := c.Run(b, &output.Flags{Format: output.FormatTSV}, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("Run(...): unexpected error: %v", err)
	}

	got := strings.Split(strings.TrimSpace(b.String()), "\n")
	want := []string{
		"Hash     Author  When         Subject",
		hash.String()[:7] + "  Alice   2 hours ago  Initial commit",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Run(...): -want, +got:\n%s", diff)
	}
}
