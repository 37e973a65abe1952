// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitio resolves the engine's inputs from a git repository using
// go-git: which paths a commit touches, their staged content, the author
// ident and the branch manifest. The hook entry point is the only caller;
// the action entry point never touches git state.
package gitio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Change is one staged path, classified as new or modified relative to
// HEAD. Renames surface as a delete plus a new path, so a renamed file
// arrives here as new.
type Change struct {
	Path string
	New  bool
}

// Repo wraps an opened repository.
type Repo struct {
	repo *git.Repository
}

// Open finds the repository containing dir, walking up like git does.
func Open(dir string) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return &Repo{repo: r}, nil
}

// headTree returns the tree of HEAD, or nil on an unborn branch.
func (r *Repo) headTree() (*object.Tree, error) {
	ref, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("reading HEAD tree: %w", err)
	}
	return tree, nil
}

// StagedChanges compares the index against the HEAD tree and returns the
// added and modified paths, sorted. Deletions are not candidates: there is
// no content left to validate.
func (r *Repo) StagedChanges() ([]Change, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	tree, err := r.headTree()
	if err != nil {
		return nil, err
	}

	var changes []Change
	for _, entry := range idx.Entries {
		if tree == nil {
			changes = append(changes, Change{Path: entry.Name, New: true})
			continue
		}
		f, err := tree.File(entry.Name)
		if errors.Is(err, object.ErrFileNotFound) {
			changes = append(changes, Change{Path: entry.Name, New: true})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("looking up %s in HEAD: %w", entry.Name, err)
		}
		if f.Hash != entry.Hash {
			changes = append(changes, Change{Path: entry.Name})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

// StagedContent returns the staged bytes for path, read from the index
// blob rather than the working tree, so unstaged edits never leak into
// validation.
func (r *Repo) StagedContent(path string) ([]byte, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	entry, err := idx.Entry(path)
	if err != nil {
		return nil, fmt.Errorf("no index entry for %s: %w", path, err)
	}
	blob, err := r.repo.BlobObject(entry.Hash)
	if err != nil {
		return nil, fmt.Errorf("reading blob for %s: %w", path, err)
	}
	rd, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening blob for %s: %w", path, err)
	}
	defer func() { _ = rd.Close() }()
	return io.ReadAll(rd)
}

// BranchManifest lists every path in the HEAD tree. Empty on an unborn
// branch.
func (r *Repo) BranchManifest() ([]string, error) {
	tree, err := r.headTree()
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, nil
	}
	var paths []string
	iter := tree.Files()
	err = iter.ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking HEAD tree: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// AuthorIdent returns the author name git would record: the
// GIT_AUTHOR_NAME override when set, otherwise user.name from local,
// global or system config. Empty when nothing is configured; callers
// treat that as "unknown", not an error.
func (r *Repo) AuthorIdent() string {
	if name := os.Getenv("GIT_AUTHOR_NAME"); name != "" {
		return name
	}
	cfg, err := r.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return ""
	}
	return cfg.User.Name
}
