// Package store provides the per-entity persistence layer. One generic Store
// is instantiated per entity type and injected into whatever needs it; there
// is no package-level database handle.
package store

import (
	"context"

	"gorm.io/gorm"
)

// Store implements the uniform record operations shared by every entity
// collection: list, lookup by id, create, partial update, delete, and
// equality-filtered scans.
type Store[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Store[T] { return &Store[T]{db: db} }

// DB exposes the underlying handle for callers that need a transaction scope.
func (s *Store[T]) DB() *gorm.DB { return s.db }

// WithTx returns a store bound to the given transaction.
func (s *Store[T]) WithTx(tx *gorm.DB) *Store[T] { return &Store[T]{db: tx} }

// All returns every record in primary-key order. Order is stable across a
// session: ids are assigned by insertion and never reused.
func (s *Store[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}

// Get returns the record with the given id, or gorm.ErrRecordNotFound.
// Callers must handle the not-found case explicitly.
func (s *Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	var out T
	if err := s.db.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Create persists a new record. The driver assigns the id and gorm stamps
// created_at/updated_at; all generated fields are written back to rec.
func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

// Save writes the full record back, refreshing updated_at.
func (s *Store[T]) Save(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Save(rec).Error
}

// Update merges the given column changes onto the existing record and returns
// the updated row. Returns gorm.ErrRecordNotFound when the id does not exist.
func (s *Store[T]) Update(ctx context.Context, id uint, changes map[string]any) (*T, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.db.WithContext(ctx).Model(rec).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the record. Dependent records in other collections are not
// touched; cascade rules live with the entity stores that need them.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Where returns all records matching an equality filter. These are plain
// scans; data volumes are small enough that no dedicated index is needed.
func (s *Store[T]) Where(ctx context.Context, query string, args ...any) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).Where(query, args...).Order("id").Find(&out).Error
	return out, err
}

// Count returns the number of records matching the filter, or the collection
// size when query is empty.
func (s *Store[T]) Count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	q := s.db.WithContext(ctx).Model(new(T))
	if query != "" {
		q = q.Where(query, args...)
	}
	err := q.Count(&n).Error
	return n, err
}

// ProjectScoped wraps a Store whose table carries a project_id foreign key.
type ProjectScoped[T any] struct {
	*Store[T]
}

func NewProjectScoped[T any](db *gorm.DB) ProjectScoped[T] {
	return ProjectScoped[T]{Store: New[T](db)}
}

// ByProject returns the records belonging to the given project.
func (s ProjectScoped[T]) ByProject(ctx context.Context, projectID uint) ([]T, error) {
	return s.Where(ctx, "project_id = ?", projectID)
}
