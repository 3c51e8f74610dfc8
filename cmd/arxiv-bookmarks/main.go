// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-bookmarks CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-bookmarks/internal/bookmarks"
	"github.com/pdiddy/arxiv-bookmarks/internal/config"
	"github.com/pdiddy/arxiv-bookmarks/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg holds the validated settings, loaded before any subcommand runs.
	cfg types.Config

	logger = slog.Default()
)

// rootCmd is the base command for the arxiv-bookmarks CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-bookmarks",
	Short: "Rename arXiv bookmarks to their paper titles",
	Long: `arxiv-bookmarks replaces placeholder bookmark titles such as "2101.12345"
with the paper's real title from the arXiv API.

It works on the direct children of one bookmark folder. A bookmark is renamed
only when its URL is an arXiv /abs/ or /pdf/ link and its current title still
looks like a bare identifier, so titles you have edited by hand are kept.

Chrome's Bookmarks file and Firefox's places.sqlite are supported. Close the
browser before renaming: a running browser overwrites or locks its bookmarks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./arxiv-bookmarks.yaml or ~/.config/arxiv-bookmarks/arxiv-bookmarks.yaml)")
	flags.String("store", string(types.StoreChrome), "bookmark store: chrome or firefox")
	flags.String("bookmarks", "", "path to Chrome's Bookmarks file or Firefox's places.sqlite")
	flags.BoolP("verbose", "v", false, "log debug diagnostics to stderr")

	viper.BindPFlag(config.KeyStore, flags.Lookup("store"))
	viper.BindPFlag(config.KeyPath, flags.Lookup("bookmarks"))
	viper.BindPFlag(config.KeyVerbose, flags.Lookup("verbose"))
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	used, err := config.ReadFile(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// openStore opens the configured bookmark store and lists its folders.
func openStore(ctx context.Context) (bookmarks.Store, []types.Folder, error) {
	store, err := bookmarks.Open(cfg.Bookmarks)
	if err != nil {
		return nil, nil, err
	}
	tree, err := store.Tree(ctx)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("reading bookmark tree: %w", err)
	}
	folders := bookmarks.Folders(tree)
	logger.Debug("bookmark store opened", "store", cfg.Bookmarks.Store, "folders", len(folders))
	return store, folders, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
