package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

type memStore struct {
	children map[string][]types.Bookmark
	titles   map[string]string
}

func (s *memStore) Children(_ context.Context, folderID string) ([]types.Bookmark, error) {
	c, ok := s.children[folderID]
	if !ok {
		return nil, errors.New("no such folder")
	}
	return c, nil
}

func (s *memStore) UpdateTitle(_ context.Context, id, title string) error {
	s.titles[id] = title
	return nil
}

type mapResolver map[string]string

func (r mapResolver) Title(_ context.Context, id string) (string, error) {
	if t, ok := r[id]; ok {
		return t, nil
	}
	return "", errors.New("not found")
}

func newTestModel(folders []types.Folder) (Model, *memStore) {
	store := &memStore{
		children: map[string][]types.Bookmark{
			"4": {
				{ID: "5", Title: "1706.03762", URL: "https://arxiv.org/abs/1706.03762"},
				{ID: "6", Title: "Go", URL: "https://go.dev/"},
				{ID: "7", Title: "Hand Named", URL: "https://arxiv.org/abs/2101.12345"},
			},
		},
		titles: map[string]string{},
	}
	resolver := mapResolver{"1706.03762": "Attention Is All You Need"}
	return New(context.Background(), folders, store, resolver, types.RenameConfig{}, nil), store
}

func press(m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(k)
	return next.(Model), cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	keyUp    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
)

// drain feeds every queued driver event to the model.
func drain(m Model) Model {
	for len(m.reporter.ch) > 0 {
		next, _ := m.Update(<-m.reporter.ch)
		m = next.(Model)
	}
	return m
}

func TestModel_NoFoldersDisablesStart(t *testing.T) {
	m, _ := newTestModel(nil)
	assert.False(t, m.controlsEnabled())
	assert.Contains(t, m.View(), "No bookmark folders found")

	m, cmd := press(m, keyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.started)
}

func TestModel_CursorMovement(t *testing.T) {
	m, _ := newTestModel([]types.Folder{{ID: "1", Path: "A"}, {ID: "4", Path: "A > B"}})

	m, _ = press(m, keyUp)
	assert.Equal(t, 0, m.cursor)
	m, _ = press(m, keyDown)
	assert.Equal(t, 1, m.cursor)
	m, _ = press(m, keyDown)
	assert.Equal(t, 1, m.cursor)
}

func TestModel_RunFlow(t *testing.T) {
	m, store := newTestModel([]types.Folder{{ID: "1", Path: "Bar"}, {ID: "4", Path: "Bar > Papers"}})
	assert.True(t, m.controlsEnabled())

	m, _ = press(m, keyDown)
	m, cmd := press(m, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.started)

	assert.Nil(t, cmd())
	m = drain(m)

	assert.Equal(t, "Attention Is All You Need", store.titles["5"])
	assert.Equal(t, 2, m.done)
	assert.Equal(t, 2, m.total)
	assert.Equal(t, "Completed! Modified 1 bookmarks.", m.status)
	require.Len(t, m.lines, 4)
	assert.Contains(t, m.lines[0], "Found 2 arXiv bookmarks")
	assert.Contains(t, m.lines[3], "Hand Named")
	assert.True(t, m.controlsEnabled())

	view := m.View()
	assert.Contains(t, view, "2 / 2 bookmarks processed")
	assert.Contains(t, view, "Completed! Modified 1 bookmarks.")
}

func TestModel_StartDisabledOnceRunBegins(t *testing.T) {
	m, store := newTestModel([]types.Folder{{ID: "4", Path: "Bar > Papers"}})

	m, first := press(m, keyEnter)
	require.NotNil(t, first)
	assert.Equal(t, types.Running, m.driver.State())
	assert.False(t, m.controlsEnabled())
	assert.Contains(t, m.View(), "renaming")

	m, second := press(m, keyEnter)
	assert.Nil(t, second)
	assert.Empty(t, m.status)

	first()
	m = drain(m)

	assert.Len(t, m.lines, 4, "folder processed once")
	assert.Len(t, store.titles, 1)
	assert.Equal(t, "Completed! Modified 1 bookmarks.", m.status)
	assert.True(t, m.controlsEnabled())
}

func TestModel_RunErrorShown(t *testing.T) {
	m, _ := newTestModel([]types.Folder{{ID: "missing", Path: "Gone"}})

	m, cmd := press(m, keyEnter)
	require.NotNil(t, cmd)
	cmd()
	m = drain(m)

	assert.Contains(t, m.status, "Error: listing folder missing")
	assert.True(t, m.controlsEnabled())
}

func TestModel_QuitAlwaysAvailable(t *testing.T) {
	m, _ := newTestModel(nil)
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
