package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/talentsift/talentsift/catalog"
	"github.com/talentsift/talentsift/core"
)

// Repository implements catalog.Repository for BadgerDB.
//
// Assessments are stored under content-based IDs with a separate
// insertion-order index, so All returns the catalog in the order the
// ingestion pipeline wrote it.
type Repository struct {
	backend  *Backend
	orderSeq *badger.Sequence
}

var _ catalog.Repository = (*Repository)(nil)

// NewRepository creates a new assessment repository.
func NewRepository(backend *Backend) (catalog.Repository, error) {
	orderSeq, err := backend.GetSequence(assessmentOrderSeq)
	if err != nil {
		return nil, err
	}

	return &Repository{
		backend:  backend,
		orderSeq: orderSeq,
	}, nil
}

// Close releases the order sequence.
func (r *Repository) Close() error {
	return r.orderSeq.Release()
}

// PutAssessments stores one or more assessments.
// Assessments with ID 0 get a content-based ID derived from their URL.
func (r *Repository) PutAssessments(ctx context.Context, assessments ...*core.Assessment) ([]*core.Assessment, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, assessment := range assessments {
			if assessment.Id == 0 {
				assessment.Id = core.IDFromContent(assessment.URL)
			}

			key := makeAssessmentKey(assessment.Id)

			// Only extend the order index for new assessments; re-puts
			// keep their original catalog position.
			_, err := tx.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				position, err := r.orderSeq.Next()
				if err != nil {
					return err
				}
				if err := tx.Set(makeOrderKey(position), catalog.MarshalID(assessment.Id)); err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			value := catalog.MarshalAssessment(assessment)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return assessments, err
}

// GetAssessment retrieves a single assessment by ID.
func (r *Repository) GetAssessment(ctx context.Context, id core.ID) (*core.Assessment, error) {
	var assessment *core.Assessment

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		assessment, err = readAssessment(tx, makeAssessmentKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	if assessment == nil {
		return nil, catalog.ErrNotFound
	}
	return assessment, nil
}

// GetAssessments retrieves multiple assessments by their IDs.
// Returns only the assessments that exist.
func (r *Repository) GetAssessments(ctx context.Context, ids ...core.ID) ([]*core.Assessment, error) {
	assessments := make([]*core.Assessment, 0, len(ids))

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			assessment, err := readAssessment(tx, makeAssessmentKey(id))
			if err != nil {
				return err
			}
			if assessment != nil {
				assessments = append(assessments, assessment)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return assessments, nil
}

// All returns every assessment in catalog insertion order.
func (r *Repository) All(ctx context.Context) ([]*core.Assessment, error) {
	var assessments []*core.Assessment

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentOrderPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var id core.ID
			err := item.Value(func(val []byte) error {
				var err error
				id, err = catalog.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			assessment, err := readAssessment(tx, makeAssessmentKey(id))
			if err != nil {
				return err
			}
			if assessment != nil {
				assessments = append(assessments, assessment)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	return assessments, nil
}

// Count returns the number of assessments in the catalog.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count := 0

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(assessmentPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// readAssessment reads a single assessment from the transaction.
// Returns nil (no error) when the key does not exist.
func readAssessment(tx *badger.Txn, key []byte) (*core.Assessment, error) {
	item, err := tx.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var assessment *core.Assessment
	err = item.Value(func(val []byte) error {
		var err error
		assessment, err = catalog.UnmarshalAssessment(val)
		return err
	})
	if err != nil {
		return nil, err
	}

	return assessment, nil
}
