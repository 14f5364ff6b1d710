package repository

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"tatuagenda/internal/entities"
)

type DriveRepository struct {
	svc      *drive.Service
	folderID string
}

func NewDriveRepository(svc *drive.Service, folderID string) *DriveRepository {
	return &DriveRepository{svc: svc, folderID: folderID}
}

// Upload stores the reference image in the configured folder and returns its
// id plus the browser view link that gets embedded in the booking event.
func (r *DriveRepository) Upload(ctx context.Context, data []byte, filename, mimeType string) (entities.StoredFile, error) {
	meta := &drive.File{Name: filename}
	if r.folderID != "" {
		meta.Parents = []string{r.folderID}
	}

	created, err := r.svc.Files.Create(meta).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return entities.StoredFile{}, fmt.Errorf("error uploading file %s: %w", filename, err)
	}

	return entities.StoredFile{ID: created.Id, ViewLink: created.WebViewLink}, nil
}

// GrantPublicRead makes the file readable by anyone with the link, so the
// view link works from the calendar event and the operator email.
func (r *DriveRepository) GrantPublicRead(ctx context.Context, fileID string) error {
	perm := &drive.Permission{Role: "reader", Type: "anyone"}
	_, err := r.svc.Permissions.Create(fileID, perm).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("error sharing file %s: %w", fileID, err)
	}
	return nil
}
