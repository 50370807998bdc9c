package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/blog-api/internal/app/service"
)

type TagController struct {
	tagService service.TagService
}

func NewTagController(tagService service.TagService) *TagController {
	return &TagController{tagService: tagService}
}

// ListTags 태그 목록 조회
// GET /api/tags
func (ctrl *TagController) ListTags(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.tagService.ListTags())
}
