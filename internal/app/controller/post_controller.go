package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/app/service"
	apperrors "github.com/ikkim/blog-api/internal/errors"
	"github.com/ikkim/blog-api/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PostController struct {
	postService   service.PostService
	exportService service.ExportService
}

func NewPostController(postService service.PostService, exportService service.ExportService) *PostController {
	return &PostController{
		postService:   postService,
		exportService: exportService,
	}
}

// ListPosts returns all posts without their tags
// GET /api/posts
func (ctrl *PostController) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.postService.ListPosts())
}

// GetPost returns a post together with its tag names
// GET /api/posts/:id
func (ctrl *PostController) GetPost(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := ctrl.postService.GetPost(id)
	if err != nil {
		info := apperrors.ParseAndRespond(c, err)
		log.Warn("Failed to fetch post", map[string]interface{}{
			"post_id": id,
			"code":    info.Code,
		})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a post and attaches its tags
// POST /api/posts
func (ctrl *PostController) CreatePost(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid post creation request", map[string]interface{}{
			"code":  apperrors.ValidationRequired,
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.MsgTitleContentRequired)
		return
	}

	post, err := ctrl.postService.CreatePost(&req)
	if err != nil {
		info := apperrors.ParseAndRespond(c, err)
		log.Warn("Failed to create post", map[string]interface{}{
			"code": info.Code,
		})
		return
	}

	c.JSON(http.StatusCreated, model.CreatePostResponse{
		ID:      post.ID,
		Message: "Post created successfully",
	})
}

// ListPostsByTag returns the posts linked to a tag; unknown tags yield []
// GET /api/posts/tag/:tagName
func (ctrl *PostController) ListPostsByTag(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.postService.ListPostsByTag(c.Param("tagName")))
}

// DeletePost deletes a post and its tag links
// DELETE /api/posts/:id
func (ctrl *PostController) DeletePost(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := ctrl.postService.DeletePost(id)
	if err != nil {
		info := apperrors.ParseAndRespond(c, err)
		log.Warn("Failed to delete post", map[string]interface{}{
			"post_id": id,
			"code":    info.Code,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Post '%s' deleted successfully", post.Title),
	})
}

// ExportPosts streams all posts and tags as an xlsx workbook
// GET /api/posts/export
func (ctrl *PostController) ExportPosts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	buf, err := ctrl.exportService.ExportPosts()
	if err != nil {
		log.Error("Failed to export posts", err, map[string]interface{}{
			"code": apperrors.ExportFailed,
		})
		apperrors.InternalError(c, "Failed to export posts")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="posts.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func parsePostID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid post ID format", map[string]interface{}{
			"post_id": idStr,
			"code":    apperrors.ValidationInvalidID,
		})
		apperrors.BadRequest(c, apperrors.MsgInvalidPostID)
		return 0, false
	}
	return uint(id), true
}
