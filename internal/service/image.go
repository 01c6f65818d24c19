package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/bodyai/backend/config"
)

// ImageService uploads base64-encoded progress photos to S3 and returns
// public URLs.
type ImageService struct {
	storage *config.S3Config
}

// NewImageService creates a new ImageService instance.
func NewImageService(storage *config.S3Config) *ImageService {
	return &ImageService{storage: storage}
}

// UploadBase64 accepts a "data:image/...;base64,..." payload, stores the
// decoded bytes under a unique key and returns the object URL.
func (s *ImageService) UploadBase64(ctx context.Context, data string) (string, error) {
	contentType, raw, err := parseImageDataURL(data)
	if err != nil {
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", validationErrorf("invalid base64 image data")
	}

	key := fmt.Sprintf("photos/%s%s", uuid.NewString(), extensionFor(contentType))

	_, err = s.storage.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.storage.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(decoded),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.storage.BucketName, s.storage.Region, key), nil
}

// parseImageDataURL splits a data URL into its content type and base64 body.
func parseImageDataURL(data string) (contentType, raw string, err error) {
	if !strings.HasPrefix(data, "data:image/") {
		return "", "", validationErrorf("invalid image format, expected base64 image data")
	}

	parts := strings.SplitN(data, ",", 2)
	if len(parts) != 2 {
		return "", "", validationErrorf("invalid image format, expected base64 image data")
	}

	// "data:image/png;base64" -> "image/png"
	meta := strings.TrimPrefix(parts[0], "data:")
	contentType = strings.SplitN(meta, ";", 2)[0]
	return contentType, parts[1], nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		if i := strings.Index(contentType, "/"); i >= 0 {
			return "." + contentType[i+1:]
		}
		return ""
	}
}
