// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// moz_bookmarks.type values.
const (
	mozTypeBookmark = 1
	mozTypeFolder   = 2
)

// FirefoxStore reads and renames bookmarks in a Firefox places.sqlite.
// Firefox holds an exclusive lock while running, so writes fail until the
// browser is closed.
type FirefoxStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenFirefoxStore opens an existing places.sqlite read-write. It never
// creates the database.
func OpenFirefoxStore(path string) (*FirefoxStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("firefox places database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=rw&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &FirefoxStore{db: db, now: time.Now}, nil
}

// Close releases the database connection.
func (s *FirefoxStore) Close() error {
	return s.db.Close()
}

type mozRow struct {
	id, parent int64
	typ        int
	title, url string
}

// Tree rebuilds the folder hierarchy from the parent column, starting at the
// row whose parent is 0.
func (s *FirefoxStore) Tree(ctx context.Context) ([]types.TreeNode, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, b.parent, b.type, COALESCE(b.title, ''), COALESCE(p.url, '')
		FROM moz_bookmarks b
		LEFT JOIN moz_places p ON p.id = b.fk
		WHERE b.type IN (?, ?)
		ORDER BY b.parent, b.position`, mozTypeBookmark, mozTypeFolder)
	if err != nil {
		return nil, fmt.Errorf("querying bookmarks: %w", err)
	}
	defer rows.Close()

	byParent := make(map[int64][]mozRow)
	var roots []mozRow
	for rows.Next() {
		var r mozRow
		if err := rows.Scan(&r.id, &r.parent, &r.typ, &r.title, &r.url); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		if r.parent == 0 {
			roots = append(roots, r)
			continue
		}
		byParent[r.parent] = append(byParent[r.parent], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}

	var build func(r mozRow) types.TreeNode
	build = func(r mozRow) types.TreeNode {
		node := types.TreeNode{ID: strconv.FormatInt(r.id, 10), Title: r.title}
		if r.typ != mozTypeFolder {
			node.Type = types.NodeURL
			node.URL = r.url
			return node
		}
		node.Type = types.NodeFolder
		node.Children = []types.TreeNode{}
		for _, c := range byParent[r.id] {
			node.Children = append(node.Children, build(c))
		}
		return node
	}

	out := make([]types.TreeNode, 0, len(roots))
	for _, r := range roots {
		out = append(out, build(r))
	}
	return out, nil
}

// Children returns the direct children of folderID ordered by position.
func (s *FirefoxStore) Children(ctx context.Context, folderID string) ([]types.Bookmark, error) {
	id, err := strconv.ParseInt(folderID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}

	var typ int
	err = s.db.QueryRowContext(ctx, `SELECT type FROM moz_bookmarks WHERE id = ?`, id).Scan(&typ)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && typ != mozTypeFolder) {
		return nil, fmt.Errorf("%w: %s", ErrFolderNotFound, folderID)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up folder %s: %w", folderID, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT b.id, COALESCE(b.title, ''), COALESCE(p.url, '')
		FROM moz_bookmarks b
		LEFT JOIN moz_places p ON p.id = b.fk
		WHERE b.parent = ?
		ORDER BY b.position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying children of %s: %w", folderID, err)
	}
	defer rows.Close()

	var out []types.Bookmark
	for rows.Next() {
		var (
			childID int64
			b       types.Bookmark
		)
		if err := rows.Scan(&childID, &b.Title, &b.URL); err != nil {
			return nil, fmt.Errorf("scanning child: %w", err)
		}
		b.ID = strconv.FormatInt(childID, 10)
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateTitle sets the title and bumps lastModified and the sync counter so
// Firefox Sync propagates the rename.
func (s *FirefoxStore) UpdateTitle(ctx context.Context, id, title string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBookmarkNotFound, id)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE moz_bookmarks
		SET title = ?, lastModified = ?, syncChangeCounter = syncChangeCounter + 1
		WHERE id = ? AND type = ?`,
		title, s.now().UnixMicro(), n, mozTypeBookmark)
	if err != nil {
		return fmt.Errorf("updating bookmark %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating bookmark %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrBookmarkNotFound, id)
	}
	return nil
}
