// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resolve looks up paper titles from the arXiv metadata API.
package resolve

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/arxiv-bookmarks/internal/httputil"
	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// DefaultAPIBase is the arXiv Atom query endpoint.
const DefaultAPIBase = "https://export.arxiv.org/api/query"

// ErrNoEntry is returned when the feed has no entry or the entry has no title.
var ErrNoEntry = errors.New("no entry with a title in arXiv response")

// ArxivResolver fetches titles one identifier at a time. It never retries.
type ArxivResolver struct {
	Client    *http.Client
	APIBase   string
	UserAgent string
	Logger    *slog.Logger
}

// NewArxivResolver builds a resolver from config, filling in defaults.
func NewArxivResolver(cfg types.ArxivConfig, logger *slog.Logger) *ArxivResolver {
	base := cfg.APIBase
	if base == "" {
		base = DefaultAPIBase
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ArxivResolver{
		Client:    httputil.NewClient(cfg.HTTPConfig),
		APIBase:   base,
		UserAgent: httputil.UserAgent(cfg.HTTPConfig),
		Logger:    logger,
	}
}

// Title returns the title of the first entry the API reports for arxivID.
func (r *ArxivResolver) Title(ctx context.Context, arxivID string) (string, error) {
	apiURL := fmt.Sprintf("%s?id_list=%s", r.APIBase, url.QueryEscape(arxivID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", r.UserAgent)

	r.Logger.Debug("arxiv lookup", "id", arxivID, "url", apiURL)

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return "", fmt.Errorf("parsing arXiv response: %w", err)
	}

	if len(feed.Entries) == 0 {
		return "", ErrNoEntry
	}
	entry := feed.Entries[0]

	// The API answers malformed ids with a 200 and an entry describing the error.
	if strings.Contains(entry.ID, "/api/errors") {
		return "", fmt.Errorf("arXiv API error: %s", cleanTitle(entry.Summary))
	}

	title := cleanTitle(entry.Title)
	if title == "" {
		return "", ErrNoEntry
	}
	return title, nil
}

// cleanTitle trims the title and folds the line wrapping arXiv applies to
// long titles into single spaces.
func cleanTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	ID      string `xml:"id"`
	Title   string `xml:"title"`
	Summary string `xml:"summary"`
}
