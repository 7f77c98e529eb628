package model

// Theater is a venue with a fixed row of twenty seats. Records are
// immutable once added to the catalog and may be shared freely across
// goroutines.
//
// Fields:
//
//	ID   – catalog identifier, unique among theaters.
//	Name – human-readable venue name.
type Theater struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}
