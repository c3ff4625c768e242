package health

import (
	"context"
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

type stubChecker struct {
	name  string
	err   error
	calls int
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(context.Context) error {
	s.calls++
	return s.err
}

func TestReady_AllHealthy(t *testing.T) {
	a, b := &stubChecker{name: "a"}, &stubChecker{name: "b"}
	assert.NilError(t, NewService(a, b).Ready(context.Background()))
	assert.Equal(t, a.calls, 1)
	assert.Equal(t, b.calls, 1)
}

func TestReady_StopsAtFirstFailure(t *testing.T) {
	down := errors.New("connection refused")
	a := &stubChecker{name: "postgres", err: down}
	b := &stubChecker{name: "other"}

	err := NewService(a, b).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.ErrorContains(t, err, "postgres")
	assert.Equal(t, b.calls, 0)
}

func TestReady_NoCheckers(t *testing.T) {
	assert.NilError(t, NewService().Ready(context.Background()))
}
