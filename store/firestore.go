package store

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nafhansa/JobTracker-sub000/models"
)

const defaultJobsCollection = "jobs"

// FirestoreMirror keeps the legacy Firestore job collection in sync
// during the migration window.
type FirestoreMirror struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreMirror connects to the legacy Firestore project. Returns
// nil without error when FIRESTORE_PROJECT_ID is unset so callers can
// run with the mirror disabled.
func NewFirestoreMirror(ctx context.Context) (*FirestoreMirror, error) {
	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		return nil, nil
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error creating the Firestore client: %w", err)
	}

	collection := os.Getenv("FIRESTORE_JOBS_COLLECTION")
	if collection == "" {
		collection = defaultJobsCollection
	}

	return &FirestoreMirror{client: client, collection: collection}, nil
}

// SaveJob implements JobMirror
func (m *FirestoreMirror) SaveJob(ctx context.Context, job models.Job) error {
	doc := m.client.Collection(m.collection).Doc(job.ID)

	_, err := doc.Set(ctx, map[string]interface{}{
		"userId":         job.UserID,
		"title":          job.Title,
		"company":        job.Company,
		"industry":       job.Industry,
		"recruiterEmail": job.RecruiterEmail,
		"url":            job.URL,
		"type":           job.Type,
		"location":       job.Location,
		"salary":         job.Salary,
		"currency":       job.Currency,
		"cvUrl":          job.CvURL,
		"applied":        job.Applied,
		"emailed":        job.Emailed,
		"cvResponded":    job.CvResponded,
		"interviewEmail": job.InterviewEmail,
		"contractEmail":  job.ContractEmail,
		"rejected":       job.Rejected,
		"createdAt":      job.CreatedAt,
		"updatedAt":      job.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to mirror job %s: %w", job.ID, err)
	}
	return nil
}

// DeleteJob implements JobMirror. A document already gone is not an
// error.
func (m *FirestoreMirror) DeleteJob(ctx context.Context, jobID string) error {
	_, err := m.client.Collection(m.collection).Doc(jobID).Delete(ctx)
	if err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to delete mirrored job %s: %w", jobID, err)
	}
	return nil
}
