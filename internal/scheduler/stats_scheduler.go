package scheduler

import (
	"github.com/ikkim/blog-api/internal/app/service"
	"github.com/ikkim/blog-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

// StatsScheduler periodically logs the size of the in-memory store.
type StatsScheduler struct {
	cron        *cron.Cron
	spec        string
	postService service.PostService
}

func NewStatsScheduler(postService service.PostService, spec string) *StatsScheduler {
	return &StatsScheduler{
		cron:        cron.New(),
		spec:        spec,
		postService: postService,
	}
}

// Start registers the stats job and starts the cron runner.
func (s *StatsScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.ReportStats); err != nil {
		logger.Error("Failed to add cron job for store stats", err, map[string]interface{}{
			"spec": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Store stats scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// ReportStats logs one snapshot of the store counts.
func (s *StatsScheduler) ReportStats() {
	stats := s.postService.Stats()
	logger.Info("Store stats", map[string]interface{}{
		"posts":       stats.Posts,
		"tags":        stats.Tags,
		"links":       stats.Links,
		"orphan_tags": stats.OrphanTags,
	})
}

// Stop halts the runner and waits for a running job to finish.
func (s *StatsScheduler) Stop() {
	logger.Info("Stopping store stats scheduler...")
	<-s.cron.Stop().Done()
	logger.Info("Store stats scheduler stopped")
}
