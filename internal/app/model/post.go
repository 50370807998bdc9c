package model

import "github.com/goccy/go-json"

// Post is a blog post. Posts are immutable once created.
type Post struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`                   // HTML markup, stored verbatim
	BackgroundImage string `json:"backgroundImage,omitempty"` // e.g. a data URL; omitted when not supplied
}

// PostWithTags is a post joined with the names of its tags in link order.
type PostWithTags struct {
	Post
	Tags []string `json:"tags"`
}

// PostTag links a post to a tag.
type PostTag struct {
	PostID uint `json:"post_id"`
	TagID  uint `json:"tag_id"`
}

// CreatePostRequest 게시글 생성 요청
// Only the presence of the title and content keys is checked. Empty strings
// are accepted and a JSON null is stored as "". Title or Content is nil only
// when its key is missing.
type CreatePostRequest struct {
	Title           *string     `json:"title"`
	Content         *string     `json:"content"`
	BackgroundImage interface{} `json:"backgroundImage,omitempty"`
	Tags            interface{} `json:"tags,omitempty"`
}

func (r *CreatePostRequest) UnmarshalJSON(data []byte) error {
	type plain CreatePostRequest
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if _, ok := keys["title"]; ok && decoded.Title == nil {
		decoded.Title = new(string)
	}
	if _, ok := keys["content"]; ok && decoded.Content == nil {
		decoded.Content = new(string)
	}

	*r = CreatePostRequest(decoded)
	return nil
}

// TagNames returns the string entries of Tags when it is a JSON list.
// Any other shape yields nil.
func (r *CreatePostRequest) TagNames() []string {
	list, ok := r.Tags.([]interface{})
	if !ok {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, item := range list {
		if name, ok := item.(string); ok {
			names = append(names, name)
		}
	}
	return names
}

// BackgroundImageValue returns the background image when it is a non-empty string.
func (r *CreatePostRequest) BackgroundImageValue() string {
	if s, ok := r.BackgroundImage.(string); ok {
		return s
	}
	return ""
}

// CreatePostResponse 게시글 생성 응답
type CreatePostResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}
