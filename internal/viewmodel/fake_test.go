package viewmodel

import (
	"context"
	"sync"

	"github.com/ytget/mars-photos/internal/data"
	"github.com/ytget/mars-photos/internal/model"
)

const (
	idOne  = "img1"
	idTwo  = "img2"
	imgOne = "https://upload.wikimedia.org/wikipedia/commons/thumb/9/97/The_Earth_seen_from_Apollo_17.jpg/480px-The_Earth_seen_from_Apollo_17.jpg"
	imgTwo = "https://upload.wikimedia.org/wikipedia/commons/thumb/d/da/Ruler_image.jpg/480px-Ruler_image.jpg"
)

var fakePhotos = []model.MarsPhoto{
	{ID: idOne, ImgSrc: imgOne},
	{ID: idTwo, ImgSrc: imgTwo},
}

// fakeRepository returns canned results. When gate is set, every call blocks
// until the gate is closed or the context ends.
type fakeRepository struct {
	mu     sync.Mutex
	photos []model.MarsPhoto
	err    error
	gate   chan struct{}
	calls  int
}

func (f *fakeRepository) GetMarsPhotos(ctx context.Context) ([]model.MarsPhoto, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	photos, err := f.photos, f.err
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return photos, err
}

func (f *fakeRepository) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeContainer struct {
	repository *fakeRepository
}

func (c fakeContainer) PhotosRepository() data.PhotosRepository {
	return c.repository
}
