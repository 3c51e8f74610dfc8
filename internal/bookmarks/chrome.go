// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/text/encoding/unicode"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// ChromeRootID is the id of the synthetic untitled node above Chrome's
// permanent folders.
const ChromeRootID = "0"

// chromeRoots lists the permanent folders in the order the browser encodes
// them, which is also the checksum order.
var chromeRoots = []string{"bookmark_bar", "other", "synced"}

// lockRetry is the poll interval while waiting for another writer.
const lockRetry = 50 * time.Millisecond

// ChromeStore reads and rewrites a Chromium-family Bookmarks JSON file.
// Fields it does not understand are written back untouched.
type ChromeStore struct {
	path string
	lock *flock.Flock
}

// NewChromeStore returns a store for the Bookmarks file at path. The file
// must exist.
func NewChromeStore(path string) (*ChromeStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("chrome bookmarks file: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	sum := sha256.Sum256([]byte(abs))
	lockPath := filepath.Join(os.TempDir(), "arxiv-bookmarks-"+hex.EncodeToString(sum[:8])+".lock")
	return &ChromeStore{path: abs, lock: flock.New(lockPath)}, nil
}

// Path returns the Bookmarks file location.
func (s *ChromeStore) Path() string { return s.path }

// Close is a no-op; the file is opened per operation.
func (s *ChromeStore) Close() error { return nil }

// Tree returns a single untitled root whose children are the permanent folders.
func (s *ChromeStore) Tree(ctx context.Context) ([]types.TreeNode, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	root := types.TreeNode{ID: ChromeRootID, Type: types.NodeFolder, Children: []types.TreeNode{}}
	for _, node := range doc.roots() {
		root.Children = append(root.Children, toTreeNode(node))
	}
	return []types.TreeNode{root}, nil
}

// Children returns the direct children of folderID.
func (s *ChromeStore) Children(ctx context.Context, folderID string) ([]types.Bookmark, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	var children []map[string]any
	if folderID == ChromeRootID {
		children = doc.roots()
	} else {
		node := findNode(doc.roots(), folderID)
		if node == nil || str(node, "type") != string(types.NodeFolder) {
			return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
		}
		children = nodes(node["children"])
	}

	out := make([]types.Bookmark, 0, len(children))
	for _, c := range children {
		out = append(out, types.Bookmark{ID: str(c, "id"), Title: str(c, "name"), URL: str(c, "url")})
	}
	return out, nil
}

// UpdateTitle renames the node with the given id and rewrites the file with
// a fresh checksum. Concurrent writers are serialized by a lock file.
func (s *ChromeStore) UpdateTitle(ctx context.Context, id, title string) error {
	ok, err := s.lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("acquiring bookmarks lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("bookmarks file is locked by another writer")
	}
	defer s.lock.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	node := findNode(doc.roots(), id)
	if node == nil {
		return fmt.Errorf("%w: %s", ErrBookmarkNotFound, id)
	}
	node["name"] = title

	if _, has := doc.raw["checksum"]; has {
		sum, err := chromeChecksum(doc.roots())
		if err != nil {
			return err
		}
		doc.raw["checksum"] = sum
	}
	return s.write(doc)
}

type chromeDoc struct {
	raw map[string]any
}

// roots returns the permanent folders present in the file, in encoding order.
func (d chromeDoc) roots() []map[string]any {
	rootsObj, _ := d.raw["roots"].(map[string]any)
	var out []map[string]any
	for _, key := range chromeRoots {
		if n, ok := rootsObj[key].(map[string]any); ok {
			out = append(out, n)
		}
	}
	return out
}

func (s *ChromeStore) read() (chromeDoc, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return chromeDoc{}, fmt.Errorf("reading %s: %w", s.path, err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return chromeDoc{}, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if _, ok := raw["roots"].(map[string]any); !ok {
		return chromeDoc{}, fmt.Errorf("parsing %s: no roots object", s.path)
	}
	return chromeDoc{raw: raw}, nil
}

// write replaces the file through a temp file and rename so the browser
// never sees a partial document.
func (s *ChromeStore) write(doc chromeDoc) error {
	data, err := json.MarshalIndent(doc.raw, "", "   ")
	if err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}

	mode := os.FileMode(0o600)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(s.path), ".bookmarks-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing bookmarks: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func toTreeNode(n map[string]any) types.TreeNode {
	node := types.TreeNode{
		ID:    str(n, "id"),
		Title: str(n, "name"),
		URL:   str(n, "url"),
		Type:  types.NodeURL,
	}
	if str(n, "type") == string(types.NodeFolder) {
		node.Type = types.NodeFolder
		node.Children = []types.TreeNode{}
		for _, c := range nodes(n["children"]) {
			node.Children = append(node.Children, toTreeNode(c))
		}
	}
	return node
}

func findNode(list []map[string]any, id string) map[string]any {
	for _, n := range list {
		if str(n, "id") == id {
			return n
		}
		if found := findNode(nodes(n["children"]), id); found != nil {
			return found
		}
	}
	return nil
}

func nodes(v any) []map[string]any {
	arr, _ := v.([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func str(n map[string]any, key string) string {
	s, _ := n[key].(string)
	return s
}

// chromeChecksum reproduces the browser's integrity hash: MD5 over each
// node's id, UTF-16LE title and type (plus url for url nodes), depth first.
func chromeChecksum(roots []map[string]any) (string, error) {
	h := md5.New()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()

	var walk func(n map[string]any) error
	walk = func(n map[string]any) error {
		title, err := enc.Bytes([]byte(str(n, "name")))
		if err != nil {
			return fmt.Errorf("encoding title of %s: %w", str(n, "id"), err)
		}
		h.Write([]byte(str(n, "id")))
		h.Write(title)
		if str(n, "type") == string(types.NodeURL) {
			h.Write([]byte("url"))
			h.Write([]byte(str(n, "url")))
			return nil
		}
		h.Write([]byte("folder"))
		for _, c := range nodes(n["children"]) {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range roots {
		if err := walk(r); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
