package data

import (
	"context"

	"github.com/ytget/mars-photos/internal/model"
	"github.com/ytget/mars-photos/internal/network"
)

// PhotosRepository is the data layer the view model depends on
type PhotosRepository interface {
	// GetMarsPhotos returns every photo record known to the data source
	GetMarsPhotos(ctx context.Context) ([]model.MarsPhoto, error)
}

// NetworkPhotosRepository fetches photos straight from a remote source.
// Results and errors are passed through unchanged.
type NetworkPhotosRepository struct {
	source network.PhotoSource
}

// NewNetworkPhotosRepository creates a repository backed by source
func NewNetworkPhotosRepository(source network.PhotoSource) *NetworkPhotosRepository {
	return &NetworkPhotosRepository{source: source}
}

// GetMarsPhotos delegates to the remote source
func (r *NetworkPhotosRepository) GetMarsPhotos(ctx context.Context) ([]model.MarsPhoto, error) {
	return r.source.GetPhotos(ctx)
}
