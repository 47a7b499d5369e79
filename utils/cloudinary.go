package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file size exceeds the configured limit")
)

// UploadError wraps a provider failure so callers can distinguish it from
// policy violations.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

var validImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
	if err != nil {
		return nil, err
	}
	return cld, nil
}

// maxFileSizeBytes reads the MAX_FILE_SIZE env var (in MB, default 10).
func maxFileSizeBytes() int64 {
	mb, err := strconv.Atoi(os.Getenv("MAX_FILE_SIZE"))
	if err != nil || mb <= 0 {
		mb = 10
	}
	return int64(mb) * 1024 * 1024
}

// CloudinaryUploader stores profile images and supporting documents in
// Cloudinary.
type CloudinaryUploader struct{}

var DefaultUploader = &CloudinaryUploader{}

// UploadImage validates the image policy (size ceiling, image content type,
// jpg/jpeg/png/webp extension) and uploads the file, returning its URL.
func (u *CloudinaryUploader) UploadImage(file *multipart.FileHeader) (string, error) {
	if file.Size > maxFileSizeBytes() {
		return "", ErrFileTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrInvalidFileType
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	valid := false
	for _, e := range validImageExtensions {
		if ext == e {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("%w: supported formats are %v", ErrInvalidFileType, validImageExtensions)
	}

	return u.upload(file, uploader.UploadParams{
		Folder:         "profiles",
		UploadPreset:   os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		Transformation: "c_thumb,w_200,h_200", // Resize profile pictures
	})
}

// UploadDocument uploads a supporting document (licence or ID, PDFs allowed)
// and returns its URL.
func (u *CloudinaryUploader) UploadDocument(file *multipart.FileHeader) (string, error) {
	if file.Size > maxFileSizeBytes() {
		return "", ErrFileTooLarge
	}

	return u.upload(file, uploader.UploadParams{
		Folder:       "documents",
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	})
}

// DeleteImage removes a previously uploaded asset by its public ID.
func (u *CloudinaryUploader) DeleteImage(publicID string) error {
	cld, err := InitCloudinary()
	if err != nil {
		return &UploadError{Err: err}
	}

	_, err = cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return &UploadError{Err: err}
	}
	return nil
}

func (u *CloudinaryUploader) upload(file *multipart.FileHeader, params uploader.UploadParams) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", &UploadError{Err: err}
	}

	src, err := file.Open()
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer src.Close()

	resp, err := cld.Upload.Upload(context.Background(), src, params)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	return resp.SecureURL, nil
}
