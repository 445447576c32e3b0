package repository

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRepo(t *testing.T, ttl time.Duration) (*datasetRepository, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)}
	r := newDatasetRepository(ttl, 0, c.Now)
	t.Cleanup(r.Close)
	return r, c
}

func TestDatasetRepository_SaveFindDelete(t *testing.T) {
	r, _ := newTestRepo(t, time.Hour)
	ds := &model.Dataset{ID: "abc"}

	require.NoError(t, r.Save(ds))
	assert.Equal(t, 1, r.Count())

	got, err := r.FindByID("abc")
	require.NoError(t, err)
	assert.Same(t, ds, got)

	require.NoError(t, r.Delete("abc"))
	assert.Equal(t, 0, r.Count())

	_, err = r.FindByID("abc")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	assert.ErrorIs(t, r.Delete("abc"), ErrDatasetNotFound)
}

func TestDatasetRepository_SaveInvalid(t *testing.T) {
	r, _ := newTestRepo(t, time.Hour)

	assert.Error(t, r.Save(nil))
	assert.Error(t, r.Save(&model.Dataset{}))
}

func TestDatasetRepository_Expiry(t *testing.T) {
	r, c := newTestRepo(t, time.Hour)
	require.NoError(t, r.Save(&model.Dataset{ID: "abc"}))

	// Akses di menit ke-50 memperpanjang sesi satu jam lagi
	c.Advance(50 * time.Minute)
	_, err := r.FindByID("abc")
	require.NoError(t, err)

	c.Advance(50 * time.Minute)
	_, err = r.FindByID("abc")
	require.NoError(t, err)

	c.Advance(time.Hour)
	_, err = r.FindByID("abc")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	assert.Equal(t, 0, r.Count())
}

func TestDatasetRepository_PurgeExpired(t *testing.T) {
	r, c := newTestRepo(t, time.Hour)
	require.NoError(t, r.Save(&model.Dataset{ID: "lama"}))
	c.Advance(30 * time.Minute)
	require.NoError(t, r.Save(&model.Dataset{ID: "baru"}))

	c.Advance(45 * time.Minute)
	assert.Equal(t, 1, r.purgeExpired())
	assert.Equal(t, 1, r.Count())

	_, err := r.FindByID("baru")
	assert.NoError(t, err)
}

func TestDatasetRepository_JanitorStopsOnClose(t *testing.T) {
	r := NewDatasetRepository(time.Millisecond, time.Millisecond)
	require.NoError(t, r.Save(&model.Dataset{ID: "abc"}))

	assert.Eventually(t, func() bool { return r.Count() == 0 }, time.Second, 5*time.Millisecond)

	r.Close()
	r.Close()
}

type evictions struct {
	mu  sync.Mutex
	ids []string
}

func (e *evictions) record(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ids = append(e.ids, id)
}

func (e *evictions) list() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := append([]string(nil), e.ids...)
	sort.Strings(out)
	return out
}

func TestDatasetRepository_OnEvict(t *testing.T) {
	r, c := newTestRepo(t, time.Hour)
	var ev evictions
	r.OnEvict(ev.record)
	r.OnEvict(nil)

	for _, id := range []string{"hapus", "akses", "janitor", "aktif"} {
		require.NoError(t, r.Save(&model.Dataset{ID: id}))
	}

	require.NoError(t, r.Delete("hapus"))
	assert.Equal(t, []string{"hapus"}, ev.list())

	c.Advance(30 * time.Minute)
	_, err := r.FindByID("aktif")
	require.NoError(t, err)

	c.Advance(45 * time.Minute)
	_, err = r.FindByID("akses")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
	assert.Equal(t, 1, r.purgeExpired())

	assert.Equal(t, []string{"akses", "hapus", "janitor"}, ev.list())
	assert.Equal(t, 1, r.Count())

	// Hapus yang gagal tidak memicu hook
	assert.ErrorIs(t, r.Delete("hapus"), ErrDatasetNotFound)
	assert.Len(t, ev.list(), 3)
}

func TestDatasetRepository_OnEvictFromJanitor(t *testing.T) {
	r := NewDatasetRepository(time.Millisecond, time.Millisecond)
	defer r.Close()
	var ev evictions
	r.OnEvict(ev.record)
	require.NoError(t, r.Save(&model.Dataset{ID: "abc"}))

	assert.Eventually(t, func() bool {
		return len(ev.list()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"abc"}, ev.list())
}
