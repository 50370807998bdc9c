package repository

import (
	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/db"
)

type TagRepository interface {
	FindAll() []model.Tag
}

type tagRepository struct {
	store *db.Store
}

func NewTagRepository(store *db.Store) TagRepository {
	return &tagRepository{store: store}
}

// FindAll returns tags in creation order, including tags no post links to.
func (r *tagRepository) FindAll() []model.Tag {
	r.store.Mu.RLock()
	defer r.store.Mu.RUnlock()

	tags := make([]model.Tag, len(r.store.Tags))
	copy(tags, r.store.Tags)
	return tags
}
