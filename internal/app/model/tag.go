package model

// Tag is created the first time a post references its name and is never removed,
// even once no post links to it.
type Tag struct {
	ID   uint   `json:"id"`
	Name string `json:"name"` // unique, case-sensitive
}

// StoreStats summarizes the in-memory collections.
type StoreStats struct {
	Posts      int `json:"posts"`
	Tags       int `json:"tags"`
	Links      int `json:"links"`
	OrphanTags int `json:"orphan_tags"`
}
