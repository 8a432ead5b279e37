package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"screentime/domain/dataset"
	"screentime/domain/filter"
)

// RecordReader loads the raw dataset from its backing file.
type RecordReader interface {
	ReadRecords() ([]dataset.Record, error)
}

// Snapshot is the classified, immutable in-memory dataset. It is built
// once per process lifetime and shared read-only by every request.
type Snapshot struct {
	ID       string           `json:"id"`
	Records  []dataset.Record `json:"-"`
	Options  filter.Options   `json:"options"`
	LoadedAt time.Time        `json:"loaded_at"`
}

// DatasetService memoizes the dataset load. Concurrent first requests
// collapse into a single file read; failures are not memoized, so a
// missing file can be fixed without restarting the process.
type DatasetService struct {
	reader RecordReader

	group    singleflight.Group
	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewDatasetService creates a dataset service backed by the given reader.
func NewDatasetService(reader RecordReader) *DatasetService {
	return &DatasetService{reader: reader}
}

// Load returns the memoized snapshot, reading and classifying the dataset
// on first use.
func (s *DatasetService) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()
	if snapshot != nil {
		return snapshot, nil
	}

	v, err, _ := s.group.Do("dataset", func() (interface{}, error) {
		s.mu.RLock()
		cached := s.snapshot
		s.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		records, err := s.reader.ReadRecords()
		if err != nil {
			return nil, err
		}
		dataset.Classify(records)

		snap := &Snapshot{
			ID:       uuid.NewString(),
			Records:  records,
			Options:  filter.OptionsFor(records),
			LoadedAt: time.Now(),
		}

		s.mu.Lock()
		s.snapshot = snap
		s.mu.Unlock()

		log.Printf("[Dataset] loaded %d records (snapshot %s)", len(records), snap.ID)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Loaded reports whether a snapshot is already cached, without triggering
// a load.
func (s *DatasetService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil
}
