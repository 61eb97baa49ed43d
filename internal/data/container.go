package data

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/mars-photos/internal/network"
)

// DefaultRequestTimeout bounds a single photos request
const DefaultRequestTimeout = 30 * time.Second

// AppContainer holds the dependencies shared across the whole application
type AppContainer interface {
	PhotosRepository() PhotosRepository
}

// ContainerConfig configures the default container
type ContainerConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	Logger         logrus.FieldLogger
}

// DefaultAppContainer builds the network stack eagerly. One container is
// created per process, so there is exactly one repository and one HTTP client.
type DefaultAppContainer struct {
	httpClient       *http.Client
	photoService     *network.Service
	photosRepository *NetworkPhotosRepository
}

// NewDefaultAppContainer creates the HTTP client, photo service and repository
func NewDefaultAppContainer(cfg ContainerConfig) *DefaultAppContainer {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	httpClient := &http.Client{Timeout: timeout}

	photoService := network.NewService(network.ServiceConfig{
		HTTPClient: httpClient,
		BaseURL:    cfg.BaseURL,
		Logger:     log,
	})

	log.WithFields(logrus.Fields{
		"url":     photoService.PhotosURL(),
		"timeout": timeout.String(),
	}).Info("app container initialized")

	return &DefaultAppContainer{
		httpClient:       httpClient,
		photoService:     photoService,
		photosRepository: NewNetworkPhotosRepository(photoService),
	}
}

// PhotosRepository returns the single repository instance
func (c *DefaultAppContainer) PhotosRepository() PhotosRepository {
	return c.photosRepository
}
