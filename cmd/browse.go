/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"github.com/Another0Noob/recipe-browser/internal/screen"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive recipe browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd.Context(), search)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(
		&search,
		"search",
		"s",
		"",
		"initial search text",
	)
}

func runBrowse(ctx context.Context, initialSearch string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	list, err := e.loadRecipes(ctx)
	if err != nil {
		return err
	}

	app := newApp(e, list)
	if _, err := app.Open(screen.RecipeListScreen, initialSearch); err != nil {
		return err
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

func newApp(e *env, list []recipes.Recipe) *screen.App {
	app := screen.NewApp(e.logger)
	app.Register(screen.RecipeListScreen, screen.ListFactory(screen.ListOptions{
		Recipes: list,
		Service: e.client,
		Session: e.sess,
		Logger:  e.logger,
	}))
	app.Register(screen.RecipeDetailScreen, screen.DetailFactory)
	return app
}
