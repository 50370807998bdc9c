package db

import (
	"sync"

	"github.com/ikkim/blog-api/internal/app/model"
)

// Store holds every collection of the blog in process memory.
//
// Posts, tags and links keep insertion order. tagIndex maps a tag name to its
// position in Tags and must be updated whenever Tags changes. Counters hold the
// next id to assign and only ever grow.
//
// Callers outside this package go through the repositories, which take Mu for
// the whole of each operation. The zero value is an empty store ready for use.
type Store struct {
	Mu sync.RWMutex

	Posts    []model.Post
	Tags     []model.Tag
	PostTags []model.PostTag

	tagIndex map[string]int

	NextPostID uint
	NextTagID  uint
}

// NewStore returns an empty store whose counters start at 1.
func NewStore() *Store {
	return &Store{
		Posts:      []model.Post{},
		Tags:       []model.Tag{},
		PostTags:   []model.PostTag{},
		tagIndex:   make(map[string]int),
		NextPostID: 1,
		NextTagID:  1,
	}
}

// InsertPost assigns the next post id and appends the post. Mu must be held.
func (s *Store) InsertPost(post *model.Post) {
	if s.NextPostID == 0 {
		s.NextPostID = 1
	}
	post.ID = s.NextPostID
	s.NextPostID++
	s.Posts = append(s.Posts, *post)
}

// ResolveTag returns the id of the tag with the given name, creating it first
// when absent. Mu must be held.
func (s *Store) ResolveTag(name string) (id uint, created bool) {
	if i, ok := s.tagIndex[name]; ok {
		return s.Tags[i].ID, false
	}
	if s.tagIndex == nil {
		s.tagIndex = make(map[string]int)
	}
	if s.NextTagID == 0 {
		s.NextTagID = 1
	}
	tag := model.Tag{ID: s.NextTagID, Name: name}
	s.NextTagID++
	s.tagIndex[name] = len(s.Tags)
	s.Tags = append(s.Tags, tag)
	return tag.ID, true
}

// LookupTag finds a tag by exact name. Mu must be held.
func (s *Store) LookupTag(name string) (model.Tag, bool) {
	i, ok := s.tagIndex[name]
	if !ok {
		return model.Tag{}, false
	}
	return s.Tags[i], true
}

// Link appends a post-tag link. Mu must be held.
func (s *Store) Link(postID, tagID uint) {
	s.PostTags = append(s.PostTags, model.PostTag{PostID: postID, TagID: tagID})
}

// PostIndex returns the position of the post with the given id, or -1. Mu must be held.
func (s *Store) PostIndex(id uint) int {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return i
		}
	}
	return -1
}

// RemovePost deletes the post at index i together with all of its links.
// Tags are left untouched. Mu must be held.
func (s *Store) RemovePost(i int) model.Post {
	post := s.Posts[i]
	s.Posts = append(s.Posts[:i], s.Posts[i+1:]...)

	kept := s.PostTags[:0]
	for _, pt := range s.PostTags {
		if pt.PostID != post.ID {
			kept = append(kept, pt)
		}
	}
	s.PostTags = kept
	return post
}

// TagName returns the name of the tag with the given id. Mu must be held.
func (s *Store) TagName(id uint) (string, bool) {
	// Tag ids are assigned sequentially and tags are never removed.
	if id >= 1 && int(id) <= len(s.Tags) && s.Tags[id-1].ID == id {
		return s.Tags[id-1].Name, true
	}
	for _, tag := range s.Tags {
		if tag.ID == id {
			return tag.Name, true
		}
	}
	return "", false
}
