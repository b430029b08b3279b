package dataset

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"job-dash/internal/domain"
)

// S3Scheme prefixes locations served by S3Source.
const S3Scheme = "s3://"

// S3Options holds the connection settings for S3-compatible object storage.
type S3Options struct {
	KeyID    string
	Secret   string
	Endpoint string // host name, e.g. fsn1.your-objectstorage.com
	Region   string
}

// objectGetter is the subset of *s3.Client used by S3Source.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source downloads a delimited file from object storage and parses it
// with a CSVSource.
type S3Source struct {
	client objectGetter
	csv    *CSVSource
}

// NewS3Source creates a source for S3-compatible storage using path-style
// addressing, which also works for non-AWS providers.
func NewS3Source(opts S3Options, csvSource *CSVSource) *S3Source {
	client := s3.New(s3.Options{
		Region: opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			opts.KeyID, opts.Secret, "",
		),
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s", opts.Endpoint)),
		UsePathStyle: true,
	})
	return newS3Source(client, csvSource)
}

func newS3Source(client objectGetter, csvSource *CSVSource) *S3Source {
	if csvSource == nil {
		csvSource = NewCSVSource()
	}
	return &S3Source{client: client, csv: csvSource}
}

// Load fetches s3://bucket/key and parses the object body.
func (s *S3Source) Load(ctx context.Context, location string) (*domain.Table, error) {
	bucket, key, err := ParseS3Path(location)
	if err != nil {
		return nil, domain.ErrDataSource(location, "invalid location", err)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, domain.ErrDataSource(location, "object not found", err)
		}
		return nil, domain.ErrDataSource(location, "cannot fetch object", err)
	}
	defer out.Body.Close() //nolint:errcheck

	reader := *s.csv
	if reader.Comma == 0 && strings.EqualFold(path.Ext(key), ".tsv") {
		reader.Comma = '\t'
	}
	return reader.Read(ctx, location, out.Body)
}

// ParseS3Path splits an s3://bucket/key URI.
func ParseS3Path(s3Path string) (bucket, key string, err error) {
	u, err := url.Parse(s3Path)
	if err != nil {
		return "", "", fmt.Errorf("parse S3 path %q: %w", s3Path, err)
	}
	if u.Scheme != "s3" {
		return "", "", fmt.Errorf("expected s3:// scheme, got %q in %q", u.Scheme, s3Path)
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("empty key in S3 path %q", s3Path)
	}
	return bucket, key, nil
}
