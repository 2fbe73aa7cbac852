package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"go-writing-services/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(ttl time.Duration) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestStore_GetOrCreate(t *testing.T) {
	s, _ := newTestStore(time.Minute)

	sess, created := s.GetOrCreate("")
	require.True(t, created)
	require.NotEmpty(t, sess.ID)

	again, created := s.GetOrCreate(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, again)

	_, created = s.GetOrCreate("unknown")
	assert.True(t, created)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Expiry(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	sess := s.Create()

	clock.Advance(50 * time.Second)
	_, ok := s.Get(sess.ID)
	require.True(t, ok, "use refreshes the lifetime")

	clock.Advance(50 * time.Second)
	_, ok = s.Get(sess.ID)
	require.True(t, ok)

	clock.Advance(2 * time.Minute)
	_, ok = s.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Sweep(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	old := s.Create()
	clock.Advance(30 * time.Second)
	fresh := s.Create()
	clock.Advance(45 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	_, ok := s.Get(old.ID)
	assert.False(t, ok)
	_, ok = s.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSession_SlotsAreIndependent(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	sess := s.Create()

	spelling := sess.Slot("spelling-check")
	assert.Same(t, spelling, sess.Slot("spelling-check"))
	assert.NotSame(t, spelling, sess.Slot("plagiarism-check"))

	res := &models.SpellingResult{Result: "ok"}
	change := &models.Change{EditDistance: 2}
	spelling.SetResult(res, change, map[string]string{"lang": "en"})
	assert.Same(t, res, spelling.Result())
	assert.Same(t, change, spelling.Change())
	assert.Nil(t, sess.Slot("plagiarism-check").Result())

	values := spelling.Values()
	values["lang"] = "fr"
	assert.Equal(t, "en", spelling.Values()["lang"])

	spelling.Clear()
	assert.Nil(t, spelling.Result())
	assert.Nil(t, spelling.Change())
	assert.Empty(t, spelling.Values())
}

func TestStore_RunStopsWithContext(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
