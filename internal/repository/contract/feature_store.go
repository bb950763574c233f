// FILE: internal/repository/contract/feature_store.go
// Store interface for the roadmap feature table
package contract

import (
	"context"

	"roadmap-voting-be/internal/entity"
)

// FeatureStore is the persistent, row-oriented feature table. FindAll
// returns rows in insertion order; finders return nil when nothing matches.
//
// AddVote and RemoveVote are atomic per row: concurrent callers on the same
// feature never lose an increment. RemoveVote floors at zero.
type FeatureStore interface {
	FindAll(ctx context.Context) ([]*entity.Feature, error)
	FindById(ctx context.Context, id int) (*entity.Feature, error)
	Append(ctx context.Context, feature *entity.Feature) error
	Count(ctx context.Context) (int64, error)
	AddVote(ctx context.Context, id int) (newVotes int, found bool, err error)
	RemoveVote(ctx context.Context, id int) (newVotes int, found bool, err error)
	UpdateStatus(ctx context.Context, id int, status entity.FeatureStatus) (found bool, err error)
}
