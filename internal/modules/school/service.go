package school

import (
	"context"
	"errors"
	"mime/multipart"

	"schooldirectory/internal/domain"
	"schooldirectory/internal/pkg/validator"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service owns the school lifecycle: the create saga (blob write then row
// insert, with a compensating blob removal if the insert fails) and the
// delete saga (lookup, row delete, then best-effort blob cleanup). The two
// steps of either saga are never atomic — the blob directory and the table
// are independent resources and stay that way.
type Service struct {
	repo  Repository
	blobs BlobStore
}

func NewService(repo Repository, blobs BlobStore) *Service {
	return &Service{repo: repo, blobs: blobs}
}

// Create validates the six required fields, persists the image (when one was
// attached), then inserts the row. The image filename goes into the row as
// generated; a failed insert removes the just-written blob so the failure
// leaves no orphan behind.
func (s *Service) Create(ctx context.Context, sub SchoolSubmission, image *multipart.FileHeader) (*domain.School, error) {
	if fields := validator.Required(sub); fields != nil {
		return nil, ErrFieldsRequired
	}

	var filename *string
	if image != nil {
		name, err := s.blobs.Save("image", image)
		if err != nil {
			return nil, err
		}
		filename = &name
	}

	school := &domain.School{
		Name:    sub.Name,
		Address: sub.Address,
		City:    sub.City,
		State:   sub.State,
		Contact: sub.Contact,
		Email:   sub.Email,
		Image:   filename,
	}

	if err := s.repo.Create(ctx, school); err != nil {
		if filename != nil {
			if rmErr := s.blobs.Remove(*filename); rmErr != nil {
				log.Warn().Err(rmErr).Str("image", *filename).Msg("orphaned blob left after failed insert")
			}
		}
		return nil, err
	}

	return school, nil
}

// List returns all schools, newest first.
func (s *Service) List(ctx context.Context) ([]domain.School, error) {
	return s.repo.List(ctx)
}

// GetByID returns one school or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.School, error) {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return school, nil
}

// Delete looks the record up to learn its image name, deletes the row, then
// removes the blob. The row delete always comes first; blob removal is
// best-effort and a missing file is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	school, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if school.Image != nil {
		if err := s.blobs.Remove(*school.Image); err != nil {
			log.Warn().Err(err).Str("image", *school.Image).Msg("blob cleanup failed")
		} else {
			log.Info().Str("image", *school.Image).Msg("deleted image file")
		}
	}

	return nil
}
