package helper

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func NewCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
}

// UploadImage pushes an image and returns its secure URL and public ID.
func UploadImage(cld *cloudinary.Cloudinary, ctx context.Context, file io.Reader, folder, publicID string) (string, string, error) {
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

// DestroyImage deletes asynchronously; a failed delete only leaves an
// orphaned asset behind.
func DestroyImage(cld *cloudinary.Cloudinary, publicID string) {
	invalidate := true
	go func(id string) {
		_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
			PublicID:     id,
			ResourceType: "image",
			Invalidate:   &invalidate,
		})
		if err != nil {
			log.Printf("failed to delete image %s: %v", id, err)
		}
	}(publicID)
}
