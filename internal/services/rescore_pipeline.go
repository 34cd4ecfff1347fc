package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chainraise/launchpad-api/internal/logger"
	"github.com/chainraise/launchpad-api/internal/repository"
	"github.com/chainraise/launchpad-api/internal/trustscore"
	"github.com/chainraise/launchpad-api/pkg/config"
)

// RescorePipeline periodically recomputes stale trust scores so that
// tier listings stay honest even when no trigger has fired for an
// entity in a while.
type RescorePipeline struct {
	repos     *repository.Repositories
	trust     TrustService
	logger    logger.Logger
	isRunning bool
	stopChan  chan struct{}
	wg        sync.WaitGroup
	mu        sync.RWMutex
}

// PipelineConfig contains configuration for the rescore pipeline
type PipelineConfig struct {
	IntervalMinutes int `json:"interval_minutes"` // How often to run a cycle
	MaxAgeDays      int `json:"max_age_days"`     // Rescore entities not scored in this many days
	MaxConcurrent   int `json:"max_concurrent"`   // Max concurrent recomputations
	BatchSize       int `json:"batch_size"`       // Entities fetched per kind per cycle
}

// DefaultPipelineConfig returns sensible defaults
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		IntervalMinutes: 60,
		MaxAgeDays:      7,
		MaxConcurrent:   10,
		BatchSize:       50,
	}
}

// PipelineConfigFromEnv builds a pipeline config from application config,
// falling back to defaults for unset values
func PipelineConfigFromEnv(cfg *config.Config) PipelineConfig {
	pc := DefaultPipelineConfig()
	if cfg.RescoreIntervalMinutes > 0 {
		pc.IntervalMinutes = cfg.RescoreIntervalMinutes
	}
	if cfg.RescoreMaxAgeDays > 0 {
		pc.MaxAgeDays = cfg.RescoreMaxAgeDays
	}
	if cfg.RescoreMaxConcurrent > 0 {
		pc.MaxConcurrent = cfg.RescoreMaxConcurrent
	}
	return pc
}

// PipelineStats summarizes one rescore cycle
type PipelineStats struct {
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	Found     int           `json:"found"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

// Summary returns a one-line description of the cycle
func (s *PipelineStats) Summary() string {
	return fmt.Sprintf("found=%d succeeded=%d failed=%d duration=%s",
		s.Found, s.Succeeded, s.Failed, s.Duration.Round(time.Millisecond))
}

// NewRescorePipeline creates a new rescore pipeline
func NewRescorePipeline(repos *repository.Repositories, trust TrustService, log logger.Logger) *RescorePipeline {
	return &RescorePipeline{
		repos:    repos,
		trust:    trust,
		logger:   log,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background rescore loop
func (p *RescorePipeline) Start(cfg PipelineConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isRunning {
		return fmt.Errorf("rescore pipeline is already running")
	}

	p.isRunning = true
	p.stopChan = make(chan struct{})

	p.wg.Add(1)
	go p.run(cfg)

	p.logger.Info("rescore pipeline started",
		"interval_minutes", cfg.IntervalMinutes,
		"max_age_days", cfg.MaxAgeDays,
		"max_concurrent", cfg.MaxConcurrent)
	return nil
}

// Stop gracefully stops the rescore loop
func (p *RescorePipeline) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isRunning {
		return fmt.Errorf("rescore pipeline is not running")
	}

	close(p.stopChan)
	p.wg.Wait()
	p.isRunning = false

	p.logger.Info("rescore pipeline stopped")
	return nil
}

// IsRunning returns whether the pipeline loop is active
func (p *RescorePipeline) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isRunning
}

// RunOnce executes a single rescore cycle manually
func (p *RescorePipeline) RunOnce(cfg PipelineConfig) (*PipelineStats, error) {
	return p.executeCycle(cfg)
}

// run is the main pipeline loop
func (p *RescorePipeline) run(cfg PipelineConfig) {
	defer p.wg.Done()

	ticker := time.NewTicker(time.Duration(cfg.IntervalMinutes) * time.Minute)
	defer ticker.Stop()

	// Run immediately on start
	if stats, err := p.executeCycle(cfg); err != nil {
		p.logger.Error("initial rescore cycle failed", err)
	} else {
		p.logger.Info("rescore cycle completed", "summary", stats.Summary())
	}

	for {
		select {
		case <-p.stopChan:
			return
		case <-ticker.C:
			if stats, err := p.executeCycle(cfg); err != nil {
				p.logger.Error("rescore cycle failed", err)
			} else {
				p.logger.Info("rescore cycle completed", "summary", stats.Summary())
			}
		}
	}
}

// staleEntity pairs an entity id with its kind for the work queue
type staleEntity struct {
	kind trustscore.EntityKind
	id   uuid.UUID
}

// executeCycle performs one complete rescore cycle
func (p *RescorePipeline) executeCycle(cfg PipelineConfig) (*PipelineStats, error) {
	stats := &PipelineStats{StartTime: time.Now()}

	cutoff := time.Now().AddDate(0, 0, -cfg.MaxAgeDays)

	projectIDs, err := p.repos.Project.ListStaleScores(cutoff, cfg.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to list stale projects: %w", err)
	}
	businessIDs, err := p.repos.Business.ListStaleScores(cutoff, cfg.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to list stale businesses: %w", err)
	}

	work := make([]staleEntity, 0, len(projectIDs)+len(businessIDs))
	for _, id := range projectIDs {
		work = append(work, staleEntity{kind: trustscore.KindProject, id: id})
	}
	for _, id := range businessIDs {
		work = append(work, staleEntity{kind: trustscore.KindBusiness, id: id})
	}

	stats.Found = len(work)
	if len(work) == 0 {
		stats.EndTime = time.Now()
		return stats, nil
	}

	semaphore := make(chan struct{}, cfg.MaxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, entity := range work {
		wg.Add(1)
		go func(e staleEntity) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			_, err := p.trust.Recompute(e.kind, e.id)

			mu.Lock()
			if err != nil {
				stats.Failed++
			} else {
				stats.Succeeded++
			}
			mu.Unlock()

			if err != nil {
				p.logger.Error("rescore failed", err,
					"entity_kind", string(e.kind),
					"entity_id", e.id.String())
			}
		}(entity)
	}

	wg.Wait()
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	return stats, nil
}
