package recipeapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"go.uber.org/zap"
)

// LikeStatus asks whether the token's user has liked the recipe.
func (c *Client) LikeStatus(ctx context.Context, token string, id recipes.ID) (bool, error) {
	var out StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, recipePath(id, "status"), token, nil, &out); err != nil {
		return false, err
	}
	return out.IsLiked, nil
}

// ToggleLike flips the like on the service. The request carries no previous
// state; the returned pointer is the resulting state when the service reports
// it and nil otherwise.
func (c *Client) ToggleLike(ctx context.Context, token string, id recipes.ID) (*bool, error) {
	b, err := c.do(ctx, http.MethodPost, recipePath(id, "like"), token, nil)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Response from server",
		zap.String("recipe_id", id.String()),
		zap.ByteString("body", b),
	)

	var out ToggleResponse
	if json.Unmarshal(b, &out) != nil {
		return nil, nil
	}
	return out.IsLiked, nil
}
