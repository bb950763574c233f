// FILE: internal/repository/memory/feature_store.go
package memory

import (
	"context"
	"sync"

	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/repository/contract"
)

type FeatureStore struct {
	mu       sync.Mutex
	features []*entity.Feature
}

// NewFeatureStore keeps the roadmap in process memory, in insertion order.
// Used when DB_CONNECTION_STRING is not configured, and by tests. The mutex
// gives the same per-row atomicity for vote updates as the SQL store.
func NewFeatureStore() contract.FeatureStore {
	return &FeatureStore{}
}

func (s *FeatureStore) FindAll(_ context.Context) ([]*entity.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Feature, 0, len(s.features))
	for _, f := range s.features {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func (s *FeatureStore) FindById(_ context.Context, id int) (*entity.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.features {
		if f.Id == id {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *FeatureStore) Append(_ context.Context, feature *entity.Feature) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *feature
	s.features = append(s.features, &cp)
	return nil
}

func (s *FeatureStore) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.features)), nil
}

func (s *FeatureStore) AddVote(_ context.Context, id int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.features {
		if f.Id == id {
			f.Votes++
			return f.Votes, true, nil
		}
	}
	return 0, false, nil
}

func (s *FeatureStore) RemoveVote(_ context.Context, id int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.features {
		if f.Id == id {
			if f.Votes > 0 {
				f.Votes--
			}
			return f.Votes, true, nil
		}
	}
	return 0, false, nil
}

func (s *FeatureStore) UpdateStatus(_ context.Context, id int, status entity.FeatureStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.features {
		if f.Id == id {
			f.Status = status
			return true, nil
		}
	}
	return false, nil
}
