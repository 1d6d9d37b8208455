package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Media-store prefixes, one per entity kind that carries photos.
const (
	DoctorPhotoPrefix      = "doctors"
	TestimonialPhotoPrefix = "testimonials"
)

// MediaStore is the blob-storage surface used by the record services: upload
// returns a publicly resolvable URL, removal is best-effort.
type MediaStore interface {
	Upload(ctx context.Context, prefix, originalFilename string, file io.Reader) (string, error)
	Remove(ctx context.Context, prefix, photoURL string) error
}

// CloudinaryStore stores photos in Cloudinary under type-prefixed public IDs.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Cloudinary")
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores the file under a collision-resistant randomized public ID and
// returns its public URL. The public ID carries no file extension: Cloudinary
// treats an extension inside an explicit public ID as part of the ID itself
// and appends the delivery format on top of it in the URL, which would break
// the ID round trip on removal. The original extension only steers the
// delivery format. Existing objects are never overwritten.
func (s *CloudinaryStore) Upload(ctx context.Context, prefix, originalFilename string, file io.Reader) (string, error) {
	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	result, err := s.cld.Upload.Upload(ctx, fileBytes, uploader.UploadParams{
		PublicID:     ObjectName(prefix),
		Format:       formatFromFilename(originalFilename),
		Overwrite:    api.Bool(false),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}

	return result.SecureURL, nil
}

// Remove deletes the blob referenced by photoURL. A URL from which no filename
// can be derived is skipped silently; removal is best-effort by design of the
// photo protocol. Destroy reports a miss through the result string with a nil
// error, so the result is inspected as well.
func (s *CloudinaryStore) Remove(ctx context.Context, prefix, photoURL string) error {
	publicID, ok := PublicIDFromURL(prefix, photoURL)
	if !ok {
		return nil
	}

	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to remove %s from Cloudinary: %w", publicID, err)
	}
	if result != nil && result.Result != "ok" {
		return fmt.Errorf("failed to remove %s from Cloudinary: %s", publicID, result.Result)
	}
	return nil
}

// ObjectName builds a randomized, collision-resistant public ID under the
// given prefix: <prefix>/<token>_<unix ms>. Extension-free on purpose, the
// delivery format lives outside the ID.
func ObjectName(prefix string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%s/%s_%d", prefix, token, time.Now().UnixMilli())
}

// formatFromFilename maps the uploaded file's extension to a Cloudinary
// delivery format. Empty when the filename carries no extension, letting
// Cloudinary detect the format itself.
func formatFromFilename(originalFilename string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(originalFilename), "."))
}

// PublicIDFromURL derives the stored public ID from a previously returned
// photo URL by taking the last path component and stripping the delivery
// format suffix. Returns false when no filename component can be derived.
func PublicIDFromURL(prefix, photoURL string) (string, bool) {
	if photoURL == "" {
		return "", false
	}
	base := path.Base(photoURL)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "." || base == "/" || base == "" {
		return "", false
	}
	return prefix + "/" + base, true
}
