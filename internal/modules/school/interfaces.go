package school

import (
	"context"
	"mime/multipart"

	"schooldirectory/internal/domain"
)

// Repository is the data access the service needs; satisfied by
// repository.SchoolRepository.
type Repository interface {
	List(ctx context.Context) ([]domain.School, error)
	GetByID(ctx context.Context, id int64) (*domain.School, error)
	Create(ctx context.Context, school *domain.School) error
	Delete(ctx context.Context, id int64) error
}

// BlobStore is the image storage the service needs; satisfied by blob.Store.
// Remove tolerates absent files, so the service never probes for existence.
type BlobStore interface {
	Save(field string, fh *multipart.FileHeader) (string, error)
	Remove(name string) error
}
