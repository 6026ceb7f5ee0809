package recipeapi

import (
	"context"
	"net/http"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

// ListRecipes fetches the recipe list. token may be empty.
func (c *Client) ListRecipes(ctx context.Context, token string) ([]recipes.Recipe, error) {
	b, err := c.do(ctx, http.MethodGet, "/recipes", token, nil)
	if err != nil {
		return nil, err
	}
	return recipes.DecodeList(b)
}
