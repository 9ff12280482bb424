// Package store fans job writes out to the two backends of the
// migration window: Postgres stays authoritative, the old document
// store is mirrored best-effort until the cutover completes.
package store

import (
	"context"
	"os"

	"github.com/nafhansa/JobTracker-sub000/models"
	"github.com/nafhansa/JobTracker-sub000/utils"

	"gorm.io/gorm"
)

// JobMirror is the secondary (document) store side of the dual write.
type JobMirror interface {
	SaveJob(ctx context.Context, job models.Job) error
	DeleteJob(ctx context.Context, jobID string) error
}

// Jobs is the process-wide job store, set up in main.
var Jobs *DualJobStore

// DualJobStore writes every job mutation to the primary relational
// store and, when the mirror flag is on, replays it against the
// secondary document store. Primary failures propagate; mirror failures
// are logged and swallowed.
type DualJobStore struct {
	Primary       *gorm.DB
	Mirror        JobMirror
	MirrorEnabled bool
}

func NewDualJobStore(primary *gorm.DB, mirror JobMirror) *DualJobStore {
	return &DualJobStore{
		Primary:       primary,
		Mirror:        mirror,
		MirrorEnabled: mirror != nil && os.Getenv("JOBS_MIRROR_ENABLED") == "true",
	}
}

func (s *DualJobStore) CreateJob(ctx context.Context, job *models.Job) error {
	if err := s.Primary.Create(job).Error; err != nil {
		return err
	}
	s.mirrorSave(ctx, *job)
	return nil
}

func (s *DualJobStore) UpdateJob(ctx context.Context, job *models.Job) error {
	if err := s.Primary.Save(job).Error; err != nil {
		return err
	}
	s.mirrorSave(ctx, *job)
	return nil
}

func (s *DualJobStore) DeleteJob(ctx context.Context, job *models.Job) error {
	if err := s.Primary.Delete(job).Error; err != nil {
		return err
	}

	if !s.MirrorEnabled {
		return nil
	}
	if err := s.Mirror.DeleteJob(ctx, job.ID); err != nil {
		utils.LogError(err, "Mirror delete failed for job "+job.ID)
	}
	return nil
}

func (s *DualJobStore) mirrorSave(ctx context.Context, job models.Job) {
	if !s.MirrorEnabled {
		return
	}
	if err := s.Mirror.SaveJob(ctx, job); err != nil {
		utils.LogError(err, "Mirror write failed for job "+job.ID)
	}
}
