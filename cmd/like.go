/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Another0Noob/recipe-browser/internal/likes"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

var likeCmd = &cobra.Command{
	Use:   "like <recipe-id>",
	Short: "Toggle the like of a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := recipes.ParseID(args[0])
		if err != nil {
			return err
		}

		e, err := setup(false)
		if err != nil {
			return err
		}
		defer e.Close()

		return runLike(cmd.Context(), e, id, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(likeCmd)
}

func runLike(ctx context.Context, e *env, id recipes.ID, out io.Writer) error {
	tok, _ := e.sess.CurrentToken()
	state, err := likes.Toggle(ctx, e.client, tok, id)
	if err != nil {
		likes.Report(e.logger, likes.OpToggle, id, err)
		return fmt.Errorf("like recipe %s: %w", id, err)
	}

	switch {
	case state == nil:
		fmt.Fprintf(out, "Toggled like of recipe %s.\n", id)
	case *state:
		fmt.Fprintf(out, "Recipe %s is liked.\n", id)
	default:
		fmt.Fprintf(out, "Recipe %s is no longer liked.\n", id)
	}
	return nil
}
