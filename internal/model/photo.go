package model

// MarsPhoto is a single photo record returned by the Mars photos service.
// The image location arrives as "img_src" on the wire.
type MarsPhoto struct {
	ID     string `json:"id"`
	ImgSrc string `json:"img_src"`
}

// IsComplete reports whether both fields are present
func (p MarsPhoto) IsComplete() bool {
	return p.ID != "" && p.ImgSrc != ""
}
