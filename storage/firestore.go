package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jobhunter/backend/models"
)

const resumesCollection = "resumes"

// ErrResumeNotFound is returned when no archived resume has the given id
var ErrResumeNotFound = errors.New("resume not found")

// FirestoreClient archives parsed resumes in Firestore
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, projectID string) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// NewResumeID generates an id for a resume record
func NewResumeID() string {
	return uuid.NewString()
}

// SaveResume stores a parse result. An empty ID is filled with a new uuid.
func (f *FirestoreClient) SaveResume(ctx context.Context, record *models.ResumeRecord) error {
	if record.ID == "" {
		record.ID = NewResumeID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := f.client.Collection(resumesCollection).Doc(record.ID).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}

	return nil
}

// GetResume retrieves a parse result by id
func (f *FirestoreClient) GetResume(ctx context.Context, id string) (*models.ResumeRecord, error) {
	doc, err := f.client.Collection(resumesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, id)
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var record models.ResumeRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, fmt.Errorf("failed to parse resume data: %w", err)
	}

	record.ID = doc.Ref.ID
	return &record, nil
}

// ListResumes returns the most recent parse results, newest first
func (f *FirestoreClient) ListResumes(ctx context.Context, limit int) ([]models.ResumeRecord, error) {
	query := f.client.Collection(resumesCollection).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	records := []models.ResumeRecord{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list resumes: %w", err)
		}

		var record models.ResumeRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("failed to parse resume data: %w", err)
		}
		record.ID = doc.Ref.ID
		records = append(records, record)
	}

	return records, nil
}

// DeleteResume removes a parse result. Unknown ids are not an error.
func (f *FirestoreClient) DeleteResume(ctx context.Context, id string) error {
	if _, err := f.client.Collection(resumesCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}
