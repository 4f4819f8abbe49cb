package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
)

const resumePrefix = "resumes"

// CloudStorageClient stores uploaded resume files in a Cloud Storage bucket
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client for bucketName
func NewCloudStorageClient(ctx context.Context, bucketName string) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadResume stores the original upload under the resume id and returns
// its public URL
func (c *CloudStorageClient) UploadResume(ctx context.Context, resumeID string, content []byte, filename, contentType string) (string, error) {
	objectName := resumeObjectName(resumeID, filename)

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	if wc.ContentType == "" {
		wc.ContentType = getContentType(filepath.Ext(filename))
	}
	wc.Metadata = map[string]string{"originalName": filename}

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return objectURL(c.bucketName, objectName), nil
}

// DeleteResume removes a previously uploaded file by URL
func (c *CloudStorageClient) DeleteResume(ctx context.Context, fileURL string) error {
	objectName, ok := objectNameFromURL(c.bucketName, fileURL)
	if !ok {
		return fmt.Errorf("invalid resume URL format")
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	return nil
}

func resumeObjectName(resumeID, filename string) string {
	return fmt.Sprintf("%s/%s%s", resumePrefix, resumeID, strings.ToLower(filepath.Ext(filename)))
}

func objectURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName)
}

func objectNameFromURL(bucket, fileURL string) (string, bool) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", bucket)
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(fileURL, prefix)
	return name, name != ""
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
