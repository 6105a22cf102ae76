package utils

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/iskiospa/iskio-api/config"
)

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, file interface{}, publicID string) (string, error)
}

// Images is nil while Cloudinary is not configured.
var Images ImageUploader

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	preset string
}

// InitCloudinary initializes the Cloudinary client
func InitCloudinary(cfg *config.Config) error {
	if !cfg.UploadsEnabled() {
		return nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.CloudAPIKey, cfg.CloudSecret)
	if err != nil {
		return fmt.Errorf("failed to init cloudinary: %w", err)
	}
	Images = &CloudinaryUploader{cld: cld, folder: "iskio/servicios", preset: cfg.UploadPreset}
	return nil
}

// Upload uploads a file to Cloudinary and returns the secure URL
func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}, publicID string) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID:       publicID,
		Folder:         u.folder,
		UploadPreset:   u.preset,
		Transformation: "c_fill,w_1200,h_800,q_auto",
	}

	resp, err := u.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
