// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads settings from flags, environment and an optional
// YAML file through viper.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-bookmarks/internal/httputil"
	"github.com/pdiddy/arxiv-bookmarks/internal/rename"
	"github.com/pdiddy/arxiv-bookmarks/internal/resolve"
	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

const (
	Name      = "arxiv-bookmarks"
	EnvPrefix = "ARXIV_BOOKMARKS"
)

// Keys shared by flags, env vars and the config file.
const (
	KeyStore     = "bookmarks.store"
	KeyPath      = "bookmarks.path"
	KeyAPIBase   = "arxiv.api_base"
	KeyTimeout   = "arxiv.timeout"
	KeyUserAgent = "arxiv.user_agent"
	KeyDelay     = "rename.delay"
	KeyDryRun    = "rename.dry_run"
	KeyVerbose   = "verbose"
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStore, string(types.StoreChrome))
	v.SetDefault(KeyPath, "")
	v.SetDefault(KeyAPIBase, resolve.DefaultAPIBase)
	v.SetDefault(KeyTimeout, httputil.DefaultTimeout)
	v.SetDefault(KeyUserAgent, httputil.DefaultUserAgent)
	v.SetDefault(KeyDelay, rename.DefaultDelay)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyVerbose, false)
}

// ReadFile points v at cfgFile, or at arxiv-bookmarks.yaml in the working
// directory or ~/.config/arxiv-bookmarks, and reads it. A missing default
// file is not an error. The returned path is empty when no file was used.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func Validate(cfg types.Config) error {
	if err := validation.ValidateStruct(&cfg.Bookmarks,
		validation.Field(&cfg.Bookmarks.Store, validation.Required, validation.In(types.StoreChrome, types.StoreFirefox)),
		validation.Field(&cfg.Bookmarks.Path, validation.When(cfg.Bookmarks.Store == types.StoreFirefox, validation.Required)),
	); err != nil {
		return fmt.Errorf("bookmarks: %w", err)
	}
	if err := validation.ValidateStruct(&cfg.Arxiv,
		validation.Field(&cfg.Arxiv.APIBase, validation.Required, validation.By(absoluteURL)),
		validation.Field(&cfg.Arxiv.Timeout, validation.Required, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("arxiv: %w", err)
	}
	if err := validation.ValidateStruct(&cfg.Rename,
		validation.Field(&cfg.Rename.Delay, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func absoluteURL(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an http(s) URL")
	}
	return nil
}
