package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/app/repository"
	"github.com/ikkim/blog-api/internal/app/service"
	"github.com/ikkim/blog-api/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupPostControllerTest(t *testing.T) (*gin.Engine, *db.Store) {
	store := db.SetupTestStore()
	postRepo := repository.NewPostRepository(store)
	postService := service.NewPostService(postRepo, nil)
	postController := NewPostController(postService, service.NewExportService(postRepo))
	tagController := NewTagController(service.NewTagService(repository.NewTagRepository(store)))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/posts", postController.ListPosts)
	router.POST("/api/posts", postController.CreatePost)
	router.GET("/api/posts/export", postController.ExportPosts)
	router.GET("/api/posts/tag/:tagName", postController.ListPostsByTag)
	router.GET("/api/posts/:id", postController.GetPost)
	router.DELETE("/api/posts/:id", postController.DeletePost)
	router.GET("/api/tags", tagController.ListTags)

	return router, store
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostController_ListPosts(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodGet, "/api/posts", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var posts []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, float64(1), posts[0]["id"])
	assert.NotContains(t, posts[0], "tags")
	assert.NotContains(t, posts[0], "backgroundImage")
}

func TestPostController_GetPost(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "Unknown id", path: "/api/posts/42", wantStatus: http.StatusNotFound, wantBody: `{"error":"Post not found"}`},
		{name: "Non-integer id", path: "/api/posts/abc", wantStatus: http.StatusBadRequest, wantBody: `{"error":"Invalid post ID"}`},
		{name: "Negative id", path: "/api/posts/-1", wantStatus: http.StatusBadRequest, wantBody: `{"error":"Invalid post ID"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	t.Run("Existing post has tags", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/posts/2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var post model.PostWithTags
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, "Building RESTful APIs with Flask", post.Title)
		assert.Equal(t, []string{"Python", "Flask", "API"}, post.Tags)
	})
}

func TestPostController_CreatePost(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	body := []byte(`{"title":"Go","content":"<p>gophers</p>","backgroundImage":"data:image/png;base64,AA","tags":["X","Y"]}`)
	w := doRequest(router, http.MethodPost, "/api/posts", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":4,"message":"Post created successfully"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/posts/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"title":"Go","content":"<p>gophers</p>","backgroundImage":"data:image/png;base64,AA","tags":["X","Y"]}`, w.Body.String())
}

func TestPostController_CreatePost_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Missing content", body: `{"title":"only"}`},
		{name: "Missing title", body: `{"content":"only"}`},
		{name: "Empty object", body: `{}`},
		{name: "Malformed JSON", body: `{"title":`},
		{name: "Not an object", body: `["title","content"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, store := setupPostControllerTest(t)

			w := doRequest(router, http.MethodPost, "/api/posts", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Title and content are required"}`, w.Body.String())
			assert.Equal(t, uint(4), store.NextPostID)
		})
	}
}

func TestPostController_CreatePost_EmptyStringsAccepted(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodPost, "/api/posts", []byte(`{"title":"","content":"","tags":"not-a-list"}`))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPostController_CreatePost_NullValuesAccepted(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodPost, "/api/posts", []byte(`{"title":null,"content":"x"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":4,"message":"Post created successfully"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/posts/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"title":"","content":"x","tags":[]}`, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/posts", []byte(`{"title":"t","content":null}`))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPostController_ListPostsByTag(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodGet, "/api/posts/tag/Python", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, uint(2), posts[0].ID)

	w = doRequest(router, http.MethodGet, "/api/posts/tag/Web%20Development", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, uint(3), posts[0].ID)

	w = doRequest(router, http.MethodGet, "/api/posts/tag/Unknown", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPostController_DeletePost(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Post 'Getting Started with React' deleted successfully"}`, w.Body.String())

	w = doRequest(router, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/posts/tag/React", nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPostController_ExportPosts(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodGet, "/api/posts/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "posts.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(service.PostsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestTagController_ListTags(t *testing.T) {
	router, _ := setupPostControllerTest(t)

	w := doRequest(router, http.MethodGet, "/api/tags", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []model.Tag
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tags))
	require.Len(t, tags, 7)
	assert.Equal(t, "React", tags[0].Name)
	assert.Equal(t, "Web Development", tags[6].Name)
}
