package utils

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

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

// UploadAppointmentPhoto streams one uploaded file to Cloudinary under the
// appointment's folder and returns the secure URL.
func UploadAppointmentPhoto(fileHeader *multipart.FileHeader, appointmentID uint) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ctx := context.Background()
	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     uuid.NewString(),
		Folder:       fmt.Sprintf("appointments/%d", appointmentID),
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
