package widget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCreatesAndReusesSessions(t *testing.T) {
	r := NewRegistry(&fakeProvider{}, time.Minute)

	w1, id := r.Get("")
	require.NotNil(t, w1)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	w2, id2 := r.Get(id)
	assert.Same(t, w1, w2)
	assert.Equal(t, id, id2)

	w3, id3 := r.Get("not-a-session")
	assert.NotSame(t, w1, w3)
	assert.NotEqual(t, "not-a-session", id3)
	assert.Equal(t, 2, r.Len())
}

func TestRegistryEvictsIdleSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(&fakeProvider{}, 10*time.Minute)
	r.now = func() time.Time { return now }

	w1, id := r.Get("")
	now = now.Add(5 * time.Minute)
	w2, _ := r.Get(id)
	assert.Same(t, w1, w2)

	now = now.Add(11 * time.Minute)
	assert.Equal(t, 0, r.Len())

	w3, id3 := r.Get(id)
	assert.NotSame(t, w1, w3)
	assert.NotEqual(t, id, id3)
}

func TestRegistryKeepsLoadingSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(&fakeProvider{}, time.Minute)
	r.now = func() time.Time { return now }

	w, _ := r.Get("")
	w.SetQuery("Paris")
	_, err := w.Begin()
	require.NoError(t, err)

	now = now.Add(time.Hour)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryWithoutTTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(&fakeProvider{}, 0)
	r.now = func() time.Time { return now }

	_, id := r.Get("")
	now = now.Add(24 * 365 * time.Hour)
	_, id2 := r.Get(id)
	assert.Equal(t, id, id2)
}
