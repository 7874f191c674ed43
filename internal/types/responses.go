package types

// ------------------------------
// Response Types
// ------------------------------

// ExtensionList wraps the /extensions listing response.
type ExtensionList struct {
	Extensions []Extension `json:"extensions"`
	Pagination Pagination  `json:"pagination"`
}

// CategoryList mirrors the /categories response shape.
type CategoryList struct {
	Categories []Category `json:"categories"`
}

// VersionList mirrors the per-extension versions response shape.
type VersionList struct {
	Versions []Version `json:"versions"`
}

// ReviewList wraps the per-extension reviews response.
type ReviewList struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}
