package service

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) service(name string, startErr error, deps ...string) Service {
	return New(name,
		func() error {
			r.events = append(r.events, "start "+name)
			return startErr
		},
		func() { r.events = append(r.events, "stop "+name) },
		deps...,
	)
}

func newHub() *Hub {
	logger, _ := test.NewNullLogger()
	return NewHub(logger.WithField("test", true))
}

func TestHub_StartsInDependencyOrder(t *testing.T) {
	rec := &recorder{}
	h := newHub()
	require.NoError(t, h.Register(rec.service("scheduler", nil, "audio")))
	require.NoError(t, h.Register(rec.service("audio", nil)))

	require.NoError(t, h.StartAll())
	assert.Equal(t, []string{"audio", "scheduler"}, h.Started())

	h.StopAll()
	assert.Equal(t, []string{"start audio", "start scheduler", "stop scheduler", "stop audio"}, rec.events)
	assert.Empty(t, h.Started())
}

func TestHub_RollbackOnStartFailure(t *testing.T) {
	rec := &recorder{}
	h := newHub()
	require.NoError(t, h.Register(rec.service("a", nil)))
	require.NoError(t, h.Register(rec.service("b", errors.New("boom"), "a")))

	err := h.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service b start failed")
	assert.Equal(t, []string{"start a", "start b", "stop a"}, rec.events)
}

func TestHub_RegistrationErrors(t *testing.T) {
	rec := &recorder{}

	h := newHub()
	require.NoError(t, h.Register(rec.service("a", nil)))
	assert.Error(t, h.Register(rec.service("a", nil)))

	_, ok := h.Get("a")
	assert.True(t, ok)

	missing := newHub()
	require.NoError(t, missing.Register(rec.service("a", nil, "ghost")))
	assert.ErrorContains(t, missing.StartAll(), "unregistered service: ghost")

	cycle := newHub()
	require.NoError(t, cycle.Register(rec.service("a", nil, "b")))
	require.NoError(t, cycle.Register(rec.service("b", nil, "a")))
	assert.ErrorContains(t, cycle.StartAll(), "circular dependency")
}
