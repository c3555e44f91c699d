package repository

import (
	"context"

	"schooldirectory/internal/domain"

	"gorm.io/gorm"
)

type SchoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

// List returns every school, newest first. No pagination: the directory is
// small and the gallery filters client-side over the full set.
func (r *SchoolRepository) List(ctx context.Context) ([]domain.School, error) {
	var schools []domain.School
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&schools).Error
	return schools, err
}

// GetByID fetches one school. Returns gorm.ErrRecordNotFound when no row
// matches.
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*domain.School, error) {
	var school domain.School
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *SchoolRepository) Create(ctx context.Context, school *domain.School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.School{}, id).Error
}
