package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Another0Noob/recipe-browser/internal/config"
	"github.com/Another0Noob/recipe-browser/internal/logging"
	"github.com/Another0Noob/recipe-browser/internal/recipeapi"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"github.com/Another0Noob/recipe-browser/internal/session"
)

var (
	cfgFile   string
	inputFile string
	token     string
	search    string
)

var rootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Browse recipes and keep your likes in sync",
	Long: `recipes shows the recipes of a recipe service, filters them by title and
lets a logged-in user like or unlike them.

Without a subcommand the interactive browser is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd.Context(), search)
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgFile,
		"config",
		"c",
		"",
		"path to config file",
	)
	rootCmd.PersistentFlags().StringVarP(
		&inputFile,
		"input",
		"i",
		"",
		"path to a .json or .csv recipe list (default: fetch from the service)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&token,
		"token",
		"t",
		"",
		"session token (overrides config and RECIPES_TOKEN)",
	)
	rootCmd.Flags().StringVarP(
		&search,
		"search",
		"s",
		"",
		"initial search text",
	)
}

// env is what every command needs: resolved config, logger, service client
// and the session.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	client *recipeapi.Client
	sess   session.Static

	closeLog func()
}

// setup resolves configuration and builds the shared dependencies. The TUI
// owns the terminal, so when tui is set the log goes to a file.
func setup(tui bool) (*env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if token != "" {
		cfg.Token = token
	}
	if inputFile != "" {
		cfg.InputFile = inputFile
	}
	if tui && (cfg.Log.Output == "" || cfg.Log.Output == "stderr" || cfg.Log.Output == "stdout") {
		cfg.Log.Output = filepath.Join(os.TempDir(), "recipe-browser.log")
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := recipeapi.NewClient(cfg.BaseURL, logger)
	client.SetRateLimit(cfg.RateLimit)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &env{
		cfg:      cfg,
		logger:   logger,
		client:   client,
		sess:     session.Static(cfg.Token),
		closeLog: closeLog,
	}, nil
}

func (e *env) Close() {
	if e.closeLog != nil {
		e.closeLog()
	}
}

// loadRecipes reads the input file if one is configured and asks the service
// otherwise.
func (e *env) loadRecipes(ctx context.Context) ([]recipes.Recipe, error) {
	if e.cfg.InputFile != "" {
		list, err := recipes.Parse(e.cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("parse recipe file: %w", err)
		}
		e.logger.Info("Loaded recipes from file",
			zap.String("file", e.cfg.InputFile),
			zap.Int("count", len(list)))
		return list, nil
	}

	tok, _ := e.sess.CurrentToken()
	list, err := e.client.ListRecipes(ctx, tok)
	if err != nil {
		return nil, fmt.Errorf("request recipes: %w", err)
	}
	e.logger.Info("Loaded recipes from service",
		zap.String("base_url", e.client.BaseURL()),
		zap.Int("count", len(list)))
	return list, nil
}
