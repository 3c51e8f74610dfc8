// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NodeType distinguishes folders from leaf bookmarks in a bookmark tree.
type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodeURL    NodeType = "url"
)

// TreeNode is one node of the browser's bookmark tree as returned by a store.
// Folders carry Children (possibly empty); URL nodes carry URL.
type TreeNode struct {
	ID       string     `json:"id" yaml:"id"`
	Title    string     `json:"title" yaml:"title"`
	Type     NodeType   `json:"type" yaml:"type"`
	URL      string     `json:"url,omitempty" yaml:"url,omitempty"`
	Children []TreeNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsFolder reports whether the node can contain other nodes.
func (n TreeNode) IsFolder() bool {
	return n.Type == NodeFolder
}

// Folder describes a selectable bookmark folder. Path joins the titles of
// the folder and its ancestors with " > ".
type Folder struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Path  string `json:"path" yaml:"path"`
}

// Bookmark is a direct child of a folder. URL is empty for sub-folders and
// separators.
type Bookmark struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
}
