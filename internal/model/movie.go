package model

// Movie is a film that can be shown in one or more theaters. Records are
// immutable once added to the catalog and may be shared freely across
// goroutines.
//
// Fields:
//
//	ID    – catalog identifier, unique among movies.
//	Title – human-readable title.
type Movie struct {
	ID    uint32 `json:"id"`
	Title string `json:"title"`
}
