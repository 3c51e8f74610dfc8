// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

const chromeFixture = `{
   "checksum": "00000000000000000000000000000000",
   "roots": {
      "bookmark_bar": {
         "children": [ {
            "children": [ {
               "date_added": "13300000000000000",
               "guid": "5c2a4f1e-0000-4000-8000-000000000005",
               "id": "5",
               "name": "1706.03762",
               "type": "url",
               "url": "https://arxiv.org/abs/1706.03762"
            }, {
               "id": "6",
               "name": "Go",
               "type": "url",
               "url": "https://go.dev/"
            } ],
            "id": "4",
            "name": "Papers",
            "type": "folder"
         } ],
         "id": "1",
         "name": "Bookmarks bar",
         "type": "folder"
      },
      "other": {
         "children": [ ],
         "id": "2",
         "name": "Other bookmarks",
         "type": "folder"
      },
      "synced": {
         "children": [ ],
         "id": "3",
         "name": "Mobile bookmarks",
         "type": "folder"
      }
   },
   "version": 1
}`

func writeChromeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, os.WriteFile(path, []byte(chromeFixture), 0o600))
	return path
}

func TestChromeStore_MissingFile(t *testing.T) {
	_, err := NewChromeStore(filepath.Join(t.TempDir(), "Bookmarks"))
	assert.Error(t, err)
}

func TestChromeStore_Tree(t *testing.T) {
	s, err := NewChromeStore(writeChromeFixture(t))
	require.NoError(t, err)

	tree, err := s.Tree(context.Background())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, ChromeRootID, tree[0].ID)
	assert.Equal(t, "", tree[0].Title)
	require.Len(t, tree[0].Children, 3)

	paths := []string{}
	for _, f := range Folders(tree) {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"", "Bookmarks bar", "Bookmarks bar > Papers", "Other bookmarks", "Mobile bookmarks"}, paths)
}

func TestChromeStore_Children(t *testing.T) {
	s, err := NewChromeStore(writeChromeFixture(t))
	require.NoError(t, err)

	children, err := s.Children(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, []types.Bookmark{
		{ID: "5", Title: "1706.03762", URL: "https://arxiv.org/abs/1706.03762"},
		{ID: "6", Title: "Go", URL: "https://go.dev/"},
	}, children)

	// Direct children only: the bar holds one folder, not its bookmarks.
	children, err = s.Children(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "", children[0].URL)

	children, err = s.Children(context.Background(), ChromeRootID)
	require.NoError(t, err)
	assert.Len(t, children, 3)
}

func TestChromeStore_ChildrenUnknownFolder(t *testing.T) {
	s, err := NewChromeStore(writeChromeFixture(t))
	require.NoError(t, err)

	_, err = s.Children(context.Background(), "99")
	assert.ErrorIs(t, err, ErrFolderNotFound)

	_, err = s.Children(context.Background(), "5")
	assert.ErrorIs(t, err, ErrFolderNotFound, "a url node is not a folder")
}

func TestChromeStore_UpdateTitle(t *testing.T) {
	path := writeChromeFixture(t)
	s, err := NewChromeStore(path)
	require.NoError(t, err)

	require.NoError(t, s.UpdateTitle(context.Background(), "5", "Attention Is All You Need"))

	children, err := s.Children(context.Background(), "4")
	require.NoError(t, err)
	assert.Equal(t, "Attention Is All You Need", children[0].Title)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "57bbd140ffacbc26d1dab8754428ed70", raw["checksum"])
	assert.EqualValues(t, 1, raw["version"])

	// Unknown node fields survive the rewrite.
	assert.Contains(t, string(data), "5c2a4f1e-0000-4000-8000-000000000005")
	assert.Contains(t, string(data), "13300000000000000")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".bookmarks-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestChromeStore_UpdateTitleUnknownID(t *testing.T) {
	s, err := NewChromeStore(writeChromeFixture(t))
	require.NoError(t, err)

	err = s.UpdateTitle(context.Background(), "404", "x")
	assert.ErrorIs(t, err, ErrBookmarkNotFound)
}

func TestChromeStore_UpdateTitleWithoutChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	doc := `{"roots":{"bookmark_bar":{"id":"1","name":"Bar","type":"folder","children":[{"id":"2","name":"2101.12345","type":"url","url":"https://arxiv.org/abs/2101.12345"}]}},"version":1}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := NewChromeStore(path)
	require.NoError(t, err)
	require.NoError(t, s.UpdateTitle(context.Background(), "2", "Renamed"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "checksum")
	assert.Contains(t, string(data), "Renamed")
}

func TestChromeStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1}`), 0o600))

	s, err := NewChromeStore(path)
	require.NoError(t, err)
	_, err = s.Tree(context.Background())
	assert.ErrorContains(t, err, "no roots object")
}
