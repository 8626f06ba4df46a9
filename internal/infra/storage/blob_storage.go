// Package storage stores user uploads in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"perkpass/config"
	domainerrors "perkpass/internal/domain/errors"
	"perkpass/internal/domain/service"
	"perkpass/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests and demos
	"gocloud.dev/gcerrors"
)

const uploadCacheControl = "public, max-age=86400"

// allowedImageTypes maps the sniffed MIME type to the stored file extension.
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
	logger        *slog.Logger
}

// Params holds dependencies for the object storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the configured bucket and closes it on shutdown.
func NewObjectStorage(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Object storage ready", slog.String("bucket", cfg.BucketURL))

	return newBlobStorage(bucket, cfg, params.Logger), nil
}

func newBlobStorage(bucket *blob.Bucket, cfg *config.StorageConfig, logger *slog.Logger) *blobStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		maxBytes:      cfg.MaxUploadBytes,
		logger:        logger,
	}
}

// PutImage buffers at most maxBytes+1 bytes, sniffs the content and writes it under a
// random key below prefix.
func (s *blobStorage) PutImage(ctx context.Context, prefix string, content io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}
	if int64(len(data)) > s.maxBytes {
		return "", errors.WithStack(domainerrors.ErrUploadTooLarge.WithDetails("the limit is " + util.FormatBytes(s.maxBytes)))
	}
	if len(data) == 0 {
		return "", errors.WithStack(domainerrors.ErrUnsupportedFileType)
	}

	detected := mimetype.Detect(data)
	ext, ok := allowedImageTypes[detected.String()]
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrUnsupportedFileType, "detected %s", detected.String())
	}

	key := path.Join(prefix, uuid.NewString()+ext)
	err = s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  detected.String(),
		CacheControl: uploadCacheControl,
	})
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	s.logger.InfoContext(ctx, "Image stored",
		slog.String("key", key),
		slog.String("contentType", detected.String()),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Open returns a reader for key. Keys that escape the bucket root are treated as missing.
func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	cleaned := path.Clean(strings.TrimPrefix(key, "/"))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return nil, errors.WithStack(service.ErrObjectNotFound)
	}

	reader, err := s.bucket.NewReader(ctx, cleaned, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.WithStack(service.ErrObjectNotFound)
		}

		return nil, errors.Wrapf(err, "failed to open object %s", cleaned)
	}

	return &service.StoredObject{
		Body:        reader,
		ContentType: reader.ContentType(),
		Size:        reader.Size(),
	}, nil
}
