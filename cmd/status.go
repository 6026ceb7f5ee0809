/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Another0Noob/recipe-browser/internal/likes"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

// statusCmd prints every recipe with its like status.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print recipes with their like status",
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
		return runStatus(cmd.Context(), e, list, search, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVarP(
		&search,
		"search",
		"s",
		"",
		"only show recipes whose title contains this text",
	)
}

func runStatus(ctx context.Context, e *env, list []recipes.Recipe, search string, out io.Writer) error {
	res := likes.SyncAll(ctx, e.client, e.sess, recipes.IDs(list), e.logger)
	if res.NoSession {
		fmt.Fprintln(out, "You need to be logged in to see the like status of a recipe")
	}

	shown := recipes.Filter(list, search)
	if len(shown) == 0 {
		fmt.Fprintln(out, "No recipes found.")
		if s := recipes.Suggest(list, search, 3); len(s) > 0 {
			fmt.Fprintln(out, "Did you mean:")
			for _, r := range s {
				fmt.Fprintf(out, "  %s\n", r.Title)
			}
		}
		return nil
	}

	for _, r := range shown {
		mark := "[ ]"
		switch {
		case res.NoSession:
			mark = "   "
		case res.Failed[r.ID] != nil:
			mark = "[?]"
		case res.Liked.Has(r.ID):
			mark = "[x]"
		}
		fmt.Fprintf(out, "%s %s (%s)\n", mark, r.Title, r.ID)
	}

	if !res.NoSession {
		fmt.Fprintf(out, "\n%d of %d liked", len(res.Liked), len(list))
		if n := len(res.Failed); n > 0 {
			fmt.Fprintf(out, ", %d failed", n)
		}
		fmt.Fprintln(out)
	}
	e.logger.Debug("Status done",
		zap.Int("recipes", len(list)),
		zap.Int("liked", len(res.Liked)),
		zap.Int("failed", len(res.Failed)))
	return nil
}
