package models

import "time"

// Image mirrors the backend's derived-image relation. Only the sizes the
// dashboard renders are mapped.
type Image struct {
	Thumbnail string `json:"thumbnail"`
	Small     string `json:"small,omitempty"`
}

type Restaurant struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	HeroImage   *Image    `json:"heroImage,omitempty"`
	Owner       *User     `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OwnerName is what the restaurant card displays; the owner relation is
// optional on the wire.
func (r Restaurant) OwnerName() string {
	if r.Owner == nil || r.Owner.Name == "" {
		return "N/A"
	}
	return r.Owner.Name
}

// ThumbnailURL falls back to a placeholder when the backend has no hero image.
func (r Restaurant) ThumbnailURL() string {
	if r.HeroImage == nil || r.HeroImage.Thumbnail == "" {
		return "https://via.placeholder.com/100"
	}
	return r.HeroImage.Thumbnail
}
