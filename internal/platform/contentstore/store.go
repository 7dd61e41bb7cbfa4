// Package contentstore publishes JSON documents into a GitHub repository
// through the contents API.
package contentstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/google/go-github/v66/github"

	"market_relay/internal/platform/config"
	"market_relay/internal/shared/apperr"
)

// Revision describes one write so it can be undone.
type Revision struct {
	Path     string
	SHA      string // blob written by Put
	Existed  bool
	Previous []byte // content before Put when Existed
}

// Store writes files on one branch of one repository.
type Store struct {
	gh     *github.Client
	owner  string
	repo   string
	branch string
	dir    string
}

// New creates a Store from cfg. httpClient may be nil.
func New(cfg config.GitHubConfig, httpClient *http.Client) *Store {
	return &Store{
		gh:     github.NewClient(httpClient).WithAuthToken(cfg.Token),
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		branch: cfg.Branch,
		dir:    cfg.DataDir,
	}
}

// Path joins name onto the configured data directory.
func (s *Store) Path(name string) string {
	return path.Join(s.dir, name)
}

// Put writes payload as indented JSON to filePath, creating the file when it
// does not exist yet. The returned Revision restores the previous state.
func (s *Store) Put(ctx context.Context, filePath string, payload any, message string) (Revision, error) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return Revision{}, fmt.Errorf("%w: encode %s: %v", apperr.ErrPublish, filePath, err)
	}

	rev := Revision{Path: filePath}
	current, err := s.current(ctx, filePath)
	if err != nil {
		return Revision{}, err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: body,
		Branch:  github.String(s.branch),
	}

	var res *github.RepositoryContentResponse
	if current == nil {
		res, _, err = s.gh.Repositories.CreateFile(ctx, s.owner, s.repo, filePath, opts)
	} else {
		rev.Existed = true
		prev, cerr := current.GetContent()
		if cerr != nil {
			// 復元用の内容が読めなくても書き込みは続ける
			slog.WarnContext(ctx, "previous content unreadable", "path", filePath, "error", cerr)
		}
		rev.Previous = []byte(prev)
		opts.SHA = current.SHA
		res, _, err = s.gh.Repositories.UpdateFile(ctx, s.owner, s.repo, filePath, opts)
	}
	if err != nil {
		return Revision{}, fmt.Errorf("%w: write %s: %v", apperr.ErrPublish, filePath, err)
	}

	rev.SHA = res.GetContent().GetSHA()
	slog.InfoContext(ctx, "content published", "path", filePath, "sha", rev.SHA, "created", !rev.Existed)
	return rev, nil
}

// Restore undoes the write described by rev: the previous content is written
// back, or the file is deleted when Put created it.
func (s *Store) Restore(ctx context.Context, rev Revision, message string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		SHA:     github.String(rev.SHA),
		Branch:  github.String(s.branch),
	}

	var err error
	if rev.Existed {
		opts.Content = rev.Previous
		_, _, err = s.gh.Repositories.UpdateFile(ctx, s.owner, s.repo, rev.Path, opts)
	} else {
		_, _, err = s.gh.Repositories.DeleteFile(ctx, s.owner, s.repo, rev.Path, opts)
	}
	if err != nil {
		return fmt.Errorf("%w: restore %s: %v", apperr.ErrPublish, rev.Path, err)
	}
	return nil
}

// current returns the file at filePath, or nil when it does not exist.
func (s *Store) current(ctx context.Context, filePath string) (*github.RepositoryContent, error) {
	file, _, _, err := s.gh.Repositories.GetContents(ctx, s.owner, s.repo, filePath,
		&github.RepositoryContentGetOptions{Ref: s.branch})
	if err != nil {
		var er *github.ErrorResponse
		if errors.As(err, &er) && er.Response != nil && er.Response.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrPublish, filePath, err)
	}
	if file == nil {
		return nil, fmt.Errorf("%w: %s is a directory", apperr.ErrPublish, filePath)
	}
	return file, nil
}
