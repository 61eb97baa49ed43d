package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ytget/mars-photos/internal/model"
)

// Wire constants for the Mars photos service
const (
	DefaultBaseURL  = "https://android-kotlin-fun-mars-server.appspot.com"
	PhotosPath      = "photos"
	ContentTypeJSON = "application/json"

	// MaxResponseBytes caps the photos response body
	MaxResponseBytes = 8 << 20
)

var errResponseTooLarge = fmt.Errorf("response body exceeds %d bytes", MaxResponseBytes)

// Service fetches photo records over HTTP
type Service struct {
	httpClient HTTPClient
	baseURL    string
	log        logrus.FieldLogger
}

// ServiceConfig configures the photo service
type ServiceConfig struct {
	HTTPClient HTTPClient
	BaseURL    string
	Logger     logrus.FieldLogger
}

// NewService creates a new photo service
func NewService(cfg ServiceConfig) *Service {
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Service{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log.WithField("component", "network"),
	}
}

// PhotosURL returns the full resource location fetched by GetPhotos
func (s *Service) PhotosURL() string {
	return s.baseURL + "/" + PhotosPath
}

// GetPhotos performs one GET of {baseURL}/photos and decodes the JSON array.
// No retry is attempted.
func (s *Service) GetPhotos(ctx context.Context) ([]model.MarsPhoto, error) {
	url := s.PhotosURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", ContentTypeJSON)

	s.log.WithField("url", url).Debug("fetching photos")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		// Cancellation by the owner is not a transport failure
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("get photos: %w", ctx.Err())
		}
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", resp.Status),
		}
	}

	if err = checkContentType(resp.Header.Get("Content-Type")); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}

	// A failed read is a connection problem, not a malformed body
	body, err := readBody(resp.Body, MaxResponseBytes)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("get photos: %w", ctx.Err())
		}
		if errors.Is(err, errResponseTooLarge) {
			return nil, &DecodeError{URL: url, Err: err}
		}
		return nil, &TransportError{URL: url, Err: fmt.Errorf("read response body: %w", err)}
	}

	photos, err := decodePhotos(body)
	if err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}

	s.log.WithFields(logrus.Fields{
		"url":    url,
		"status": resp.StatusCode,
		"count":  len(photos),
	}).Debug("photos fetched")

	return photos, nil
}

// checkContentType accepts a missing header, application/json and +json types
func checkContentType(header string) error {
	if header == "" {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return fmt.Errorf("invalid content type %q: %w", header, err)
	}

	if mediaType == ContentTypeJSON || strings.HasSuffix(mediaType, "+json") {
		return nil
	}

	return fmt.Errorf("unexpected content type %q", mediaType)
}

// readBody reads at most limit bytes and fails if the body is longer
func readBody(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, errResponseTooLarge
	}
	return body, nil
}

func decodePhotos(body []byte) ([]model.MarsPhoto, error) {
	var photos []model.MarsPhoto

	if err := json.Unmarshal(body, &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}

	if photos == nil {
		return nil, errors.New("expected a JSON array of photos")
	}

	for i, photo := range photos {
		if !photo.IsComplete() {
			return nil, fmt.Errorf("photo at index %d is missing id or img_src", i)
		}
	}

	return photos, nil
}
