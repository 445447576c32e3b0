package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/naufalhajid/Dashboard-Ferizyan/internal/model"
)

var ErrDatasetNotFound = errors.New("dataset tidak ditemukan")

type DatasetRepository interface {
	Save(ds *model.Dataset) error
	FindByID(id string) (*model.Dataset, error)
	Delete(id string) error
	Count() int
	// OnEvict mendaftarkan fungsi yang dipanggil setiap kali dataset
	// dihapus, baik lewat Delete maupun karena kadaluwarsa.
	OnEvict(fn func(id string))
	Close()
}

type sessionEntry struct {
	dataset   *model.Dataset
	expiresAt time.Time
}

type datasetRepository struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	now     func() time.Time
	onEvict []func(id string)

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewDatasetRepository menyimpan dataset di memori selama sesi. Dataset
// kadaluwarsa setelah ttl tanpa akses; janitor membersihkannya tiap
// interval. Panggil Close untuk menghentikan janitor.
func NewDatasetRepository(ttl, interval time.Duration) DatasetRepository {
	return newDatasetRepository(ttl, interval, time.Now)
}

func newDatasetRepository(ttl, interval time.Duration, now func() time.Time) *datasetRepository {
	r := &datasetRepository{
		entries: map[string]*sessionEntry{},
		ttl:     ttl,
		now:     now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go r.janitor(interval)
	return r
}

func (r *datasetRepository) Save(ds *model.Dataset) error {
	if ds == nil || ds.ID == "" {
		return errors.New("dataset tanpa ID")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[ds.ID] = &sessionEntry{dataset: ds, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *datasetRepository) FindByID(id string) (*model.Dataset, error) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return nil, ErrDatasetNotFound
	}
	now := r.now()
	if !now.Before(e.expiresAt) {
		delete(r.entries, id)
		hooks := r.onEvict
		r.mu.Unlock()
		notify(hooks, id)
		return nil, ErrDatasetNotFound
	}
	// Akses memperpanjang sesi
	e.expiresAt = now.Add(r.ttl)
	r.mu.Unlock()
	return e.dataset, nil
}

func (r *datasetRepository) Delete(id string) error {
	r.mu.Lock()
	if _, ok := r.entries[id]; !ok {
		r.mu.Unlock()
		return ErrDatasetNotFound
	}
	delete(r.entries, id)
	hooks := r.onEvict
	r.mu.Unlock()
	notify(hooks, id)
	return nil
}

func (r *datasetRepository) OnEvict(fn func(id string)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEvict = append(r.onEvict, fn)
}

// notify dipanggil di luar lock supaya hook boleh mengakses repository.
func notify(hooks []func(id string), ids ...string) {
	for _, id := range ids {
		for _, fn := range hooks {
			fn(id)
		}
	}
}

func (r *datasetRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *datasetRepository) Close() {
	r.once.Do(func() {
		close(r.stop)
		<-r.done
	})
}

func (r *datasetRepository) janitor(interval time.Duration) {
	defer close(r.done)
	if interval <= 0 {
		<-r.stop
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.purgeExpired()
		case <-r.stop:
			return
		}
	}
}

func (r *datasetRepository) purgeExpired() int {
	r.mu.Lock()
	now := r.now()
	var expired []string
	for id, e := range r.entries {
		if !now.Before(e.expiresAt) {
			delete(r.entries, id)
			expired = append(expired, id)
		}
	}
	hooks := r.onEvict
	r.mu.Unlock()
	notify(hooks, expired...)
	return len(expired)
}
