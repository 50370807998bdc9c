package repository

import (
	"errors"

	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/db"
	"github.com/ikkim/blog-api/pkg/logger"
)

var ErrNotFound = errors.New("record not found")

// Snapshot is a consistent copy of the store taken under one read lock.
type Snapshot struct {
	Posts []model.PostWithTags
	Tags  []TagUsage
}

type TagUsage struct {
	model.Tag
	PostCount int
}

type PostRepository interface {
	Create(post *model.Post, tagNames []string)
	FindAll() []model.Post
	FindByID(id uint) (*model.PostWithTags, error)
	FindByTagName(name string) []model.Post
	Delete(id uint) (*model.Post, error)
	Stats() model.StoreStats
	Snapshot() Snapshot
}

type postRepository struct {
	store *db.Store
}

func NewPostRepository(store *db.Store) PostRepository {
	return &postRepository{store: store}
}

// Create stores the post and links it to each named tag, creating missing tags.
// A name repeated in tagNames yields one link per occurrence.
func (r *postRepository) Create(post *model.Post, tagNames []string) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	r.store.InsertPost(post)

	created := 0
	for _, name := range tagNames {
		tagID, isNew := r.store.ResolveTag(name)
		if isNew {
			created++
		}
		r.store.Link(post.ID, tagID)
	}

	logger.Debug("Post created in store", map[string]interface{}{
		"post_id":      post.ID,
		"links":        len(tagNames),
		"tags_created": created,
	})
}

func (r *postRepository) FindAll() []model.Post {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	posts := make([]model.Post, len(r.store.Posts))
	copy(posts, r.store.Posts)
	return posts
}

func (r *postRepository) FindByID(id uint) (*model.PostWithTags, error) {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	i := r.store.PostIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	return &model.PostWithTags{
		Post: r.store.Posts[i],
		Tags: r.tagNamesLocked(id),
	}, nil
}

// tagNamesLocked returns the post's tag names in link order.
func (r *postRepository) tagNamesLocked(postID uint) []string {
	names := []string{}
	for _, pt := range r.store.PostTags {
		if pt.PostID != postID {
			continue
		}
		if name, ok := r.store.TagName(pt.TagID); ok {
			names = append(names, name)
		}
	}
	return names
}

// FindByTagName returns the tagged posts in storage order. An unknown tag
// yields an empty list.
func (r *postRepository) FindByTagName(name string) []model.Post {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	posts := []model.Post{}
	tag, ok := r.store.LookupTag(name)
	if !ok {
		return posts
	}

	postIDs := make(map[uint]struct{})
	for _, pt := range r.store.PostTags {
		if pt.TagID == tag.ID {
			postIDs[pt.PostID] = struct{}{}
		}
	}
	for _, post := range r.store.Posts {
		if _, ok := postIDs[post.ID]; ok {
			posts = append(posts, post)
		}
	}
	return posts
}

func (r *postRepository) Delete(id uint) (*model.Post, error) {
	r.store.Mu.Lock()
	defer r.store.Mu.Unlock()

	i := r.store.PostIndex(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := r.store.RemovePost(i)
	return &removed, nil
}

func (r *postRepository) Stats() model.StoreStats {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	linked := make(map[uint]struct{}, len(r.store.Tags))
	for _, pt := range r.store.PostTags {
		linked[pt.TagID] = struct{}{}
	}
	return model.StoreStats{
		Posts:      len(r.store.Posts),
		Tags:       len(r.store.Tags),
		Links:      len(r.store.PostTags),
		OrphanTags: len(r.store.Tags) - len(linked),
	}
}

func (r *postRepository) Snapshot() Snapshot {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	counts := make(map[uint]int, len(r.store.Tags))
	for _, pt := range r.store.PostTags {
		counts[pt.TagID]++
	}

	snap := Snapshot{
		Posts: make([]model.PostWithTags, 0, len(r.store.Posts)),
		Tags:  make([]TagUsage, 0, len(r.store.Tags)),
	}
	for _, post := range r.store.Posts {
		snap.Posts = append(snap.Posts, model.PostWithTags{Post: post, Tags: r.tagNamesLocked(post.ID)})
	}
	for _, tag := range r.store.Tags {
		snap.Tags = append(snap.Tags, TagUsage{Tag: tag, PostCount: counts[tag.ID]})
	}
	return snap
}
