// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bookmarks reads and renames browser bookmarks.
//
// A Store exposes the three operations the renamer needs: the full tree (for
// folder selection), the direct children of one folder, and a title update.
// Chrome's JSON Bookmarks file and Firefox's places.sqlite are supported.
package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// PathSeparator joins ancestor titles in a folder path.
const PathSeparator = " > "

var (
	// ErrFolderNotFound is returned by Children for an unknown folder id.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrBookmarkNotFound is returned by UpdateTitle for an unknown bookmark id.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

// Store is a browser bookmark database.
type Store interface {
	// Tree returns the top-level nodes of the bookmark tree.
	Tree(ctx context.Context) ([]types.TreeNode, error)

	// Children returns the direct children of a folder in display order.
	Children(ctx context.Context, folderID string) ([]types.Bookmark, error)

	// UpdateTitle renames a single bookmark.
	UpdateTitle(ctx context.Context, id, title string) error

	Close() error
}

// Open returns the store selected by cfg.
func Open(cfg types.BookmarksConfig) (Store, error) {
	switch cfg.Store {
	case types.StoreChrome, "":
		path := cfg.Path
		if path == "" {
			p, err := DefaultChromePath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return NewChromeStore(path)
	case types.StoreFirefox:
		if cfg.Path == "" {
			return nil, fmt.Errorf("firefox store needs the path to places.sqlite")
		}
		return OpenFirefoxStore(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown bookmark store %q", cfg.Store)
	}
}

// DefaultChromePath returns the Bookmarks file of Chrome's default profile.
func DefaultChromePath() (string, error) {
	if runtime.GOOS == "windows" {
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			return "", fmt.Errorf("LOCALAPPDATA is not set")
		}
		return filepath.Join(local, "Google", "Chrome", "User Data", "Default", "Bookmarks"), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(dir, "Google", "Chrome", "Default", "Bookmarks"), nil
	}
	return filepath.Join(dir, "google-chrome", "Default", "Bookmarks"), nil
}

// Folders lists every folder in the tree in pre-order, parents before their
// children. Each call builds a fresh slice.
func Folders(nodes []types.TreeNode) []types.Folder {
	folders := []types.Folder{}

	var walk func(nodes []types.TreeNode, parentPath string)
	walk = func(nodes []types.TreeNode, parentPath string) {
		for _, n := range nodes {
			if !n.IsFolder() {
				continue
			}
			path := n.Title
			if parentPath != "" {
				path = parentPath + PathSeparator + n.Title
			}
			folders = append(folders, types.Folder{ID: n.ID, Title: n.Title, Path: path})
			walk(n.Children, path)
		}
	}
	walk(nodes, "")

	return folders
}

// FindFolder resolves ref against folder ids first, then exact paths.
func FindFolder(folders []types.Folder, ref string) (types.Folder, error) {
	for _, f := range folders {
		if f.ID == ref {
			return f, nil
		}
	}
	for _, f := range folders {
		if f.Path == ref {
			return f, nil
		}
	}
	return types.Folder{}, fmt.Errorf("%w: %q", ErrFolderNotFound, ref)
}
