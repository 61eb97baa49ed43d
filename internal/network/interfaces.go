package network

import (
	"context"
	"net/http"

	"github.com/ytget/mars-photos/internal/model"
)

// PhotoSource defines the interface for the remote photo source.
type PhotoSource interface {
	// GetPhotos retrieves every photo record from the remote service
	GetPhotos(ctx context.Context) ([]model.MarsPhoto, error)
}

// HTTPClient abstracts HTTP operations for dependency injection.
// The standard *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
