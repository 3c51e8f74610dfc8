package types

import "time"

// StoreKind selects the bookmark database adapter.
type StoreKind string

const (
	StoreChrome  StoreKind = "chrome"
	StoreFirefox StoreKind = "firefox"
)

// HTTPConfig holds shared HTTP settings for the metadata lookup.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with API requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ArxivConfig holds settings for the arXiv metadata API.
type ArxivConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIBase is the Atom query endpoint (default https://export.arxiv.org/api/query).
	APIBase string `json:"api_base" yaml:"api_base" mapstructure:"api_base"`
}

// BookmarksConfig selects and locates the bookmark store.
type BookmarksConfig struct {
	// Store is the adapter kind: chrome or firefox.
	Store StoreKind `json:"store" yaml:"store" mapstructure:"store"`

	// Path is the Chrome Bookmarks file or Firefox places.sqlite. Empty means
	// the default Chrome profile location.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// RenameConfig holds settings for the batch driver.
type RenameConfig struct {
	// Delay is the fixed wait before every metadata lookup (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay"`

	// DryRun resolves titles without writing them back.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`
}

// Config groups all settings.
type Config struct {
	Bookmarks BookmarksConfig `json:"bookmarks" yaml:"bookmarks" mapstructure:"bookmarks"`
	Arxiv     ArxivConfig     `json:"arxiv" yaml:"arxiv" mapstructure:"arxiv"`
	Rename    RenameConfig    `json:"rename" yaml:"rename" mapstructure:"rename"`
	Verbose   bool            `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}
