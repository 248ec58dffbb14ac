package repositories

import (
	"context"
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/zapdesk/zapdesk-backend/models"
	"github.com/zapdesk/zapdesk-backend/utils"
)

type Blob struct {
	FileName   string
	ReadCloser io.ReadCloser
}

type BlobRepository interface {
	GetBlob(ctx context.Context, bucketUrl, fileName string) (Blob, error)
	OpenStream(ctx context.Context, bucketUrl, fileName string, contentType string) (io.WriteCloser, error)
	DeleteFile(ctx context.Context, bucketUrl, fileName string) error
}

type blobRepository struct {
	m       sync.Mutex
	buckets map[string]*blob.Bucket
}

func NewBlobRepository() BlobRepository {
	return &blobRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repository *blobRepository) openBlobBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"repositories.BlobRepository.openBlobBucket",
		trace.WithAttributes(attribute.String("bucket", bucketUrl)),
	)
	defer span.End()

	repository.m.Lock()
	defer repository.m.Unlock()

	if repository.buckets[bucketUrl] == nil {
		bucket, err := blob.OpenBucket(ctx, bucketUrl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
		}
		repository.buckets[bucketUrl] = bucket
	}
	return repository.buckets[bucketUrl], nil
}

func (repository *blobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (Blob, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return Blob{}, err
	}

	reader, err := bucket.NewReader(ctx, fileName, nil)
	if err != nil {
		return Blob{}, errors.Wrapf(err, "failed to read blob %s", fileName)
	}
	return Blob{FileName: fileName, ReadCloser: reader}, nil
}

func (repository *blobRepository) OpenStream(ctx context.Context, bucketUrl, fileName string,
	contentType string,
) (io.WriteCloser, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}

	return bucket.NewWriter(ctx, fileName, &blob.WriterOptions{
		ContentType: contentType,
	})
}

func (repository *blobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return err
	}

	err = bucket.Delete(ctx, fileName)
	if err != nil {
		return errors.Wrap(models.NotFoundError, err.Error())
	}
	return nil
}
