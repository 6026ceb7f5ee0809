package likes

import (
	"context"
	"errors"

	"github.com/Another0Noob/recipe-browser/internal/recipeapi"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"go.uber.org/zap"
)

// Kind is the class of a failed likes operation.
type Kind int

const (
	KindNone Kind = iota
	KindNoSession
	KindAuth
	KindRemote
	KindTransport
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNoSession:
		return "no-session"
	case KindAuth:
		return "auth"
	case KindRemote:
		return "remote"
	case KindTransport:
		return "transport"
	case KindCanceled:
		return "canceled"
	}
	return "unknown"
}

// Classify sorts err into the error taxonomy of the likes flow.
func Classify(err error) Kind {
	var apiErr *recipeapi.APIError
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNoSession):
		return KindNoSession
	case errors.Is(err, recipeapi.ErrUnauthorized):
		return KindAuth
	case errors.As(err, &apiErr):
		return KindRemote
	case errors.Is(err, context.Canceled):
		return KindCanceled
	default:
		return KindTransport
	}
}

// Op names the operation being reported.
type Op string

const (
	OpStatus Op = "status"
	OpToggle Op = "toggle"
)

func (op Op) failure() string {
	if op == OpToggle {
		return "Error liking recipe"
	}
	return "Error fetching like status"
}

// Report writes err to the operator log and returns its kind. Nothing is shown
// to the user from here.
func Report(logger *zap.Logger, op Op, id recipes.ID, err error) Kind {
	kind := Classify(err)
	if kind == KindNone || logger == nil {
		return kind
	}

	fields := []zap.Field{
		zap.String("op", string(op)),
		zap.String("recipe_id", id.String()),
		zap.Stringer("kind", kind),
	}
	switch kind {
	case KindNoSession:
		logger.Warn("You need to be logged in", fields...)
	case KindAuth:
		logger.Error("Authentication failed. Please log in again.", fields...)
	case KindRemote:
		var apiErr *recipeapi.APIError
		errors.As(err, &apiErr)
		logger.Error(op.failure(), append(fields,
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message),
		)...)
	case KindCanceled:
		logger.Debug("Request canceled", fields...)
	default:
		logger.Error("An unexpected error occurred", append(fields, zap.Error(err))...)
	}
	return kind
}
