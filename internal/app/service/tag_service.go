package service

import (
	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/app/repository"
)

type TagService interface {
	ListTags() []model.Tag
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// ListTags 모든 태그 목록 조회 (생성 순)
func (s *tagService) ListTags() []model.Tag {
	return s.tagRepo.FindAll()
}
