package service

import (
	"testing"

	"github.com/ikkim/blog-api/internal/app/model"
	"github.com/ikkim/blog-api/internal/app/repository"
	"github.com/ikkim/blog-api/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_ExportPosts(t *testing.T) {
	store := db.SetupTestStore()
	postRepo := repository.NewPostRepository(store)
	postService := NewPostService(postRepo, nil)
	exportService := NewExportService(postRepo)

	_, err := postService.CreatePost(&model.CreatePostRequest{
		Title:           strPtr("With image"),
		Content:         strPtr("héllo"),
		BackgroundImage: "data:image/png;base64,AAAA",
		Tags:            []interface{}{"Go"},
	})
	require.NoError(t, err)

	buf, err := exportService.ExportPosts()
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PostsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, []string{"ID", "Title", "Tags", "Has Background Image", "Content Length"}, rows[0])
	assert.Equal(t, "Python, Flask, API", rows[2][2])
	assert.Equal(t, []string{"4", "With image", "Go", "yes", "5"}, rows[4])

	tagRows, err := f.GetRows(TagsSheet)
	require.NoError(t, err)
	require.Len(t, tagRows, 9)
	assert.Equal(t, []string{"8", "Go", "1"}, tagRows[8])
}
