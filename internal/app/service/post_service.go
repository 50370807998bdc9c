package service

import (
	"errors"
	"strings"

	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/app/repository"
	"github.com/ikkim/blog-api/pkg/logger"
)

var (
	ErrPostNotFound         = errors.New("post not found")
	ErrTitleContentRequired = errors.New("title and content are required")
)

// EventPublisher receives post events after each successful mutation.
// Implementations must not block.
type EventPublisher interface {
	Publish(event model.PostEvent)
}

type PostService interface {
	ListPosts() []model.Post
	GetPost(id uint) (*model.PostWithTags, error)
	CreatePost(req *model.CreatePostRequest) (*model.Post, error)
	ListPostsByTag(tagName string) []model.Post
	DeletePost(id uint) (*model.Post, error)
	Stats() model.StoreStats
}

type postService struct {
	postRepo  repository.PostRepository
	publisher EventPublisher
}

// NewPostService builds the post service. publisher may be nil.
func NewPostService(postRepo repository.PostRepository, publisher EventPublisher) PostService {
	return &postService{
		postRepo:  postRepo,
		publisher: publisher,
	}
}

func (s *postService) ListPosts() []model.Post {
	posts := s.postRepo.FindAll()
	logger.Debug("Listing posts", map[string]interface{}{
		"count": len(posts),
	})
	return posts
}

func (s *postService) GetPost(id uint) (*model.PostWithTags, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// CreatePost validates key presence only: empty title or content is accepted.
// Blank tag names are skipped; repeated names are kept and each gets a link.
func (s *postService) CreatePost(req *model.CreatePostRequest) (*model.Post, error) {
	if req == nil || req.Title == nil || req.Content == nil {
		return nil, ErrTitleContentRequired
	}

	post := &model.Post{
		Title:           *req.Title,
		Content:         *req.Content,
		BackgroundImage: req.BackgroundImageValue(),
	}

	tagNames := filterTagNames(req.TagNames())
	s.postRepo.Create(post, tagNames)

	logger.Info("Post created", map[string]interface{}{
		"post_id":              post.ID,
		"tags":                 tagNames,
		"has_background_image": post.BackgroundImage != "",
	})

	s.publish(model.PostEvent{
		Type:   model.EventPostCreated,
		PostID: post.ID,
		Title:  post.Title,
		Tags:   tagNames,
	})
	return post, nil
}

func filterTagNames(names []string) []string {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

func (s *postService) ListPostsByTag(tagName string) []model.Post {
	posts := s.postRepo.FindByTagName(tagName)
	logger.Debug("Listing posts by tag", map[string]interface{}{
		"tag":   tagName,
		"count": len(posts),
	})
	return posts
}

func (s *postService) DeletePost(id uint) (*model.Post, error) {
	post, err := s.postRepo.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	logger.Info("Post deleted", map[string]interface{}{
		"post_id": post.ID,
		"title":   post.Title,
	})

	s.publish(model.PostEvent{
		Type:   model.EventPostDeleted,
		PostID: post.ID,
		Title:  post.Title,
	})
	return post, nil
}

func (s *postService) Stats() model.StoreStats {
	return s.postRepo.Stats()
}

func (s *postService) publish(event model.PostEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(event)
}
