package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Extension is a marketplace listing, addressed by its unique slug.
type Extension struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	IconURL       string    `json:"iconUrl,omitempty"`
	Publisher     Publisher `json:"publisher"`
	Category      string    `json:"category,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	Downloads     int64     `json:"downloads"`
	Rating        float64   `json:"rating"`
	RatingCount   int       `json:"ratingCount"`
	LatestVersion *Version  `json:"latestVersion,omitempty"`
	Versions      []Version `json:"versions,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Publisher is the account that owns one or more extensions.
type Publisher struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Verified bool   `json:"verified,omitempty"`
}

// Category groups extensions and carries a listing count.
type Category struct {
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	ExtensionCount int    `json:"extensionCount"`
}

// Version is one published release of an extension.
type Version struct {
	Version       string    `json:"version"`
	Changelog     string    `json:"changelog,omitempty"`
	Size          int64     `json:"size,omitempty"`
	MinAppVersion string    `json:"minAppVersion,omitempty"`
	PublishedAt   time.Time `json:"publishedAt"`
}

// Review is a user rating with optional text.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Pagination describes a partial result window.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Download is the signed descriptor returned by the download endpoint.
type Download struct {
	URL       string     `json:"url"`
	Version   string     `json:"version"`
	Size      int64      `json:"size,omitempty"`
	SHA256    string     `json:"sha256,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Health is the service status record.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
