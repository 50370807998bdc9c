package model

// PostEventType identifies a change to the post collection.
type PostEventType string

const (
	EventPostCreated PostEventType = "post.created"
	EventPostDeleted PostEventType = "post.deleted"
)

// PostEvent is broadcast to feed subscribers after a successful mutation.
type PostEvent struct {
	Type   PostEventType `json:"type"`
	PostID uint          `json:"post_id"`
	Title  string        `json:"title"`
	Tags   []string      `json:"tags,omitempty"`
}
