// Package likes keeps a user's liked recipes in sync with the recipe service.
package likes

import (
	"context"
	"errors"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
)

// ErrNoSession is returned instead of calling the service when nobody is
// logged in.
var ErrNoSession = errors.New("no session token")

// Service is the part of the recipe service the likes flow needs.
// *recipeapi.Client implements it.
type Service interface {
	LikeStatus(ctx context.Context, token string, id recipes.ID) (bool, error)
	ToggleLike(ctx context.Context, token string, id recipes.ID) (*bool, error)
}

// CheckStatus asks the service whether id is liked. Without a token the
// service is not called and ErrNoSession is returned.
func CheckStatus(ctx context.Context, svc Service, token string, id recipes.ID) (bool, error) {
	if token == "" {
		return false, ErrNoSession
	}
	return svc.LikeStatus(ctx, token, id)
}

// Toggle sends a toggle request for id. On success the returned pointer is the
// authoritative resulting state, or nil when the service did not report one
// (see Set.Apply).
func Toggle(ctx context.Context, svc Service, token string, id recipes.ID) (*bool, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	return svc.ToggleLike(ctx, token, id)
}
