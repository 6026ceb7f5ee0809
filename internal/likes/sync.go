package likes

import (
	"context"
	"sync"

	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"github.com/Another0Noob/recipe-browser/internal/session"
	"go.uber.org/zap"
)

// SyncResult is the settled outcome of checking a list of recipes.
type SyncResult struct {
	Liked     Set
	Failed    map[recipes.ID]error
	NoSession bool
}

// SyncAll checks every id concurrently and returns once all checks settled.
// A failed check is reported and recorded; it never stops the others.
// Without a session no request is made and NoSession is set.
func SyncAll(ctx context.Context, svc Service, sess session.Provider, ids []recipes.ID, logger *zap.Logger) SyncResult {
	res := SyncResult{Liked: NewSet(), Failed: make(map[recipes.ID]error)}

	token, ok := "", false
	if sess != nil {
		token, ok = sess.CurrentToken()
	}
	if !ok {
		res.NoSession = true
		return res
	}

	type outcome struct {
		id    recipes.ID
		liked bool
		err   error
	}
	results := make(chan outcome, len(ids))

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Go(func() {
			liked, err := CheckStatus(ctx, svc, token, id)
			results <- outcome{id: id, liked: liked, err: err}
		})
	}
	wg.Wait()
	close(results)

	for o := range results {
		if o.err != nil {
			Report(logger, OpStatus, o.id, o.err)
			res.Failed[o.id] = o.err
			continue
		}
		if o.liked {
			res.Liked.Add(o.id)
		}
	}
	return res
}
