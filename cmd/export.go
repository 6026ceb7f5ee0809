/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Another0Noob/recipe-browser/internal/likes"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

var outDir string

// exportCmd writes the liked recipes to a dated text file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write your liked recipes to a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.Close()

		list, err := e.loadRecipes(cmd.Context())
		if err != nil {
			return err
		}

		path, err := runExport(cmd.Context(), e, list, outDir, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(
		&outDir,
		"out",
		"o",
		".",
		"directory to write the export to",
	)
}

func runExport(ctx context.Context, e *env, list []recipes.Recipe, dir string, t time.Time) (string, error) {
	res := likes.SyncAll(ctx, e.client, e.sess, recipes.IDs(list), e.logger)
	if res.NoSession {
		return "", errors.New("you need to be logged in to export liked recipes")
	}
	if n := len(res.Failed); n > 0 {
		e.logger.Warn("Some like statuses could not be fetched", zap.Int("failed", n))
	}

	path := filepath.Join(dir, fmt.Sprintf("%d-%d-%d-liked-recipes.txt", t.Year(), t.Month(), t.Day()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	for _, r := range list {
		if !res.Liked.Has(r.ID) {
			continue
		}
		if _, err := fmt.Fprintf(file, "%s\t%s\n", r.ID, r.Title); err != nil {
			return "", fmt.Errorf("write export file: %w", err)
		}
	}
	return path, nil
}
