package likes

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Another0Noob/recipe-browser/internal/recipeapi"
	"github.com/Another0Noob/recipe-browser/internal/recipes"
	"github.com/Another0Noob/recipe-browser/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeService struct {
	mu        sync.Mutex
	liked     map[recipes.ID]bool
	statusErr map[recipes.ID]error
	toggleErr error
	report    bool // report the resulting state on toggle
	calls     atomic.Int32
	tokens    []string
}

func (f *fakeService) LikeStatus(_ context.Context, token string, id recipes.ID) (bool, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	if err := f.statusErr[id]; err != nil {
		return false, err
	}
	return f.liked[id], nil
}

func (f *fakeService) ToggleLike(_ context.Context, token string, id recipes.ID) (*bool, error) {
	f.calls.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	if f.toggleErr != nil {
		return nil, f.toggleErr
	}
	if f.liked == nil {
		f.liked = map[recipes.ID]bool{}
	}
	f.liked[id] = !f.liked[id]
	if !f.report {
		return nil, nil
	}
	state := f.liked[id]
	return &state, nil
}

func TestSetOperations(t *testing.T) {
	s := NewSet("2", "1")
	assert.True(t, s.Has("1"))
	assert.False(t, s.Has("3"))
	assert.Equal(t, []recipes.ID{"1", "2"}, s.IDs())

	assert.False(t, s.Toggle("1"))
	assert.True(t, s.Toggle("3"))
	assert.Equal(t, []recipes.ID{"2", "3"}, s.IDs())
}

func TestSetIDsOrdersNumericIDsByValue(t *testing.T) {
	s := NewSet("10", "2", "x", "1")
	assert.Equal(t, []recipes.ID{"1", "2", "10", "x"}, s.IDs())
}

func TestSetApply(t *testing.T) {
	yes, no := true, false

	s := NewSet("1")
	assert.False(t, s.Apply("1", nil))
	assert.True(t, s.Apply("1", nil))

	assert.True(t, s.Apply("1", &yes))
	assert.True(t, s.Has("1"))
	assert.False(t, s.Apply("1", &no))
	assert.False(t, s.Has("1"))
	assert.False(t, s.Apply("1", &no))
	assert.False(t, s.Has("1"))
}

func TestCheckStatusWithoutTokenSkipsService(t *testing.T) {
	svc := &fakeService{}
	_, err := CheckStatus(context.Background(), svc, "", "1")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = Toggle(context.Background(), svc, "", "1")
	assert.ErrorIs(t, err, ErrNoSession)

	assert.Zero(t, svc.calls.Load())
}

func TestToggleNegatesMembershipOnSuccess(t *testing.T) {
	for _, report := range []bool{false, true} {
		svc := &fakeService{liked: map[recipes.ID]bool{"1": true}, report: report}
		set := NewSet("1")

		state, err := Toggle(context.Background(), svc, "tok", "1")
		require.NoError(t, err)
		set.Apply("1", state)
		assert.False(t, set.Has("1"))

		state, err = Toggle(context.Background(), svc, "tok", "1")
		require.NoError(t, err)
		set.Apply("1", state)
		assert.True(t, set.Has("1"))
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{ErrNoSession, KindNoSession},
		{&recipeapi.APIError{StatusCode: 401, Message: "expired"}, KindAuth},
		{&recipeapi.APIError{StatusCode: 500, Message: "boom"}, KindRemote},
		{&recipeapi.APIError{StatusCode: 404}, KindRemote},
		{errors.New("dial tcp: connection refused"), KindTransport},
		{context.Canceled, KindCanceled},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.err), "%v", tt.err)
	}
}

func TestReport(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	Report(logger, OpToggle, "2", &recipeapi.APIError{StatusCode: 401})
	Report(logger, OpToggle, "3", &recipeapi.APIError{StatusCode: 500, Message: "db down"})
	Report(logger, OpStatus, "4", errors.New("network unreachable"))
	assert.Equal(t, KindNone, Report(logger, OpStatus, "5", nil))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, "Authentication failed. Please log in again.", entries[0].Message)
	assert.Equal(t, "2", entries[0].ContextMap()["recipe_id"])

	assert.Equal(t, "Error liking recipe", entries[1].Message)
	assert.Equal(t, "db down", entries[1].ContextMap()["message"])

	assert.Equal(t, "An unexpected error occurred", entries[2].Message)
	assert.Equal(t, "network unreachable", entries[2].ContextMap()["error"])
	assert.Equal(t, "status", entries[2].ContextMap()["op"])
}

func TestSyncAll(t *testing.T) {
	svc := &fakeService{
		liked:     map[recipes.ID]bool{"1": true, "3": true},
		statusErr: map[recipes.ID]error{"3": &recipeapi.APIError{StatusCode: 500}},
	}
	core, logs := observer.New(zapcore.ErrorLevel)

	res := SyncAll(context.Background(), svc, session.Static("tok"), []recipes.ID{"1", "2", "3"}, zap.New(core))

	assert.False(t, res.NoSession)
	assert.Equal(t, []recipes.ID{"1"}, res.Liked.IDs())
	require.Contains(t, res.Failed, recipes.ID("3"))
	assert.Len(t, res.Failed, 1)
	assert.EqualValues(t, 3, svc.calls.Load())
	assert.Equal(t, []string{"tok", "tok", "tok"}, svc.tokens)
	assert.Equal(t, 1, logs.Len())
}

func TestSyncAllAllFailuresStillSettles(t *testing.T) {
	boom := errors.New("boom")
	svc := &fakeService{statusErr: map[recipes.ID]error{"1": boom, "2": boom}}

	res := SyncAll(context.Background(), svc, session.Static("tok"), []recipes.ID{"1", "2"}, zap.NewNop())
	assert.Empty(t, res.Liked)
	assert.Len(t, res.Failed, 2)
}

func TestSyncAllWithoutSession(t *testing.T) {
	svc := &fakeService{}
	res := SyncAll(context.Background(), svc, session.Static(""), []recipes.ID{"1", "2"}, nil)
	assert.True(t, res.NoSession)
	assert.Empty(t, res.Liked)
	assert.Zero(t, svc.calls.Load())

	res = SyncAll(context.Background(), svc, nil, []recipes.ID{"1"}, nil)
	assert.True(t, res.NoSession)
}
