package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Vedlovable/Samadhaan-Setu/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// MediaStore handles all Cloudinary operations (images and voice notes).
type MediaStore struct {
	cld *cloudinary.Cloudinary
}

// NewMediaStore creates a new Cloudinary-backed media store.
func NewMediaStore(cfg *config.Config) (*MediaStore, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary configuration is missing")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &MediaStore{cld: cld}, nil
}

// UploadIssueImage uploads one issue photo under the issue's folder.
// Retourne l'URL publique et le public ID (nécessaire pour la compensation).
func (s *MediaStore) UploadIssueImage(ctx context.Context, file io.Reader, issueID int64, filename string) (string, string, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "jpg"
	}
	publicID := fmt.Sprintf("issues/%d/%s", issueID, uuid.NewString())

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "samadhaan/images",
		ResourceType: "image",
		Format:       ext,
	})
	if err != nil {
		return "", "", fmt.Errorf("image upload failed: %w", err)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// UploadVoiceNote uploads the optional voice note attached to an issue.
// Cloudinary range l'audio sous le resource type "video".
func (s *MediaStore) UploadVoiceNote(ctx context.Context, file io.Reader, issueID int64) (string, string, error) {
	publicID := fmt.Sprintf("issues/%d/voice-%s", issueID, uuid.NewString())

	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "samadhaan/voice-notes",
		ResourceType: "video",
	})
	if err != nil {
		return "", "", fmt.Errorf("audio upload failed: %w", err)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}

// Delete removes an uploaded asset by its public ID.
func (s *MediaStore) Delete(ctx context.Context, publicID, resourceType string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", publicID, err)
	}

	return nil
}
