package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("record not found")

// Repository is the CRUD layer shared by every entity. T must embed
// models.Base so lookups by "id" and soft deletes work.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error
}

// Update writes every column of entity. Associations are left untouched.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error
}

func (r *Repository[T]) GetByID(ctx context.Context, id string, preloads ...string) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var entity T
	if err := q.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// FindByIDs returns the live records among ids, in no particular order.
func (r *Repository[T]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	var entities []T
	if len(ids) == 0 {
		return entities, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&entities).Error
	return entities, err
}

// DeleteWithTimestamp soft deletes the record by stamping deleted_at.
func (r *Repository[T]) DeleteWithTimestamp(ctx context.Context, id string) error {
	var entity T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
