package service

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ikkim/blog-api/internal/app/repository"
	"github.com/ikkim/blog-api/pkg/logger"
	"github.com/xuri/excelize/v2"
)

const (
	PostsSheet = "Posts"
	TagsSheet  = "Tags"
)

var (
	postsHeader = []interface{}{"ID", "Title", "Tags", "Has Background Image", "Content Length"}
	tagsHeader  = []interface{}{"ID", "Name", "Post Count"}
)

type ExportService interface {
	ExportPosts() (*bytes.Buffer, error)
}

type exportService struct {
	postRepo repository.PostRepository
}

func NewExportService(postRepo repository.PostRepository) ExportService {
	return &exportService{postRepo: postRepo}
}

// ExportPosts writes every post and tag into an xlsx workbook.
func (s *exportService) ExportPosts() (*bytes.Buffer, error) {
	snap := s.postRepo.Snapshot()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PostsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(TagsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeRow(f, PostsSheet, 1, postsHeader); err != nil {
		return nil, err
	}
	for i, post := range snap.Posts {
		row := []interface{}{
			post.ID,
			post.Title,
			strings.Join(post.Tags, ", "),
			yesNo(post.BackgroundImage != ""),
			utf8.RuneCountInString(post.Content),
		}
		if err := writeRow(f, PostsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, TagsSheet, 1, tagsHeader); err != nil {
		return nil, err
	}
	for i, tag := range snap.Tags {
		if err := writeRow(f, TagsSheet, i+2, []interface{}{tag.ID, tag.Name, tag.PostCount}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Posts exported", map[string]interface{}{
		"posts": len(snap.Posts),
		"tags":  len(snap.Tags),
		"bytes": buf.Len(),
	})
	return buf, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
