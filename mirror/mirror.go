// Package mirror keeps zstd-compressed copies of downloaded manifests in an
// S3 compatible bucket.
package mirror

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4Signer "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/logging"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

const (
	DefaultPrefix = "manifests/"
	suffix        = ".zst"
)

var ErrNotFound = errors.New("object not found")

type Mirror struct {
	s3     *s3.Client
	bucket string
	prefix string
}

type noAcceptEncodingSigner struct {
	signer s3.HTTPSignerV4
}

func (signer *noAcceptEncodingSigner) SignHTTP(ctx context.Context, credentials aws.Credentials, r *http.Request, payloadHash string, service string, region string, signingTime time.Time, optFns ...func(*v4Signer.SignerOptions)) error {
	acceptEncoding := r.Header.Get("Accept-Encoding")
	r.Header.Del("Accept-Encoding")
	err := signer.signer.SignHTTP(ctx, credentials, r, payloadHash, service, region, signingTime, optFns...)
	if acceptEncoding != "" {
		r.Header.Set("Accept-Encoding", acceptEncoding)
	}
	return err
}

// New builds a mirror from the default AWS configuration chain.
func New(ctx context.Context, bucket string, forcePathStyle bool, optFns ...func(*s3.Options)) (*Mirror, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logging.LoggerFunc(func(classification logging.Classification, format string, v ...any) {
		slog.Debug(fmt.Sprintf(format, v...), slog.String("source", "aws-sdk"))
	})
	otelaws.AppendMiddlewares(&cfg.APIOptions)

	client := s3.NewFromConfig(cfg, func(options *s3.Options) {
		options.UsePathStyle = forcePathStyle
		defSigner := v4Signer.NewSigner(func(so *v4Signer.SignerOptions) {
			so.Logger = options.Logger
			so.LogSigning = options.ClientLogMode.IsSigning()
			so.DisableURIPathEscaping = true
		})
		options.HTTPSignerV4 = &noAcceptEncodingSigner{signer: defSigner}
	}, func(options *s3.Options) {
		for _, f := range optFns {
			f(options)
		}
	})

	return NewWithClient(client, bucket), nil
}

func NewWithClient(client *s3.Client, bucket string) *Mirror {
	return &Mirror{s3: client, bucket: bucket, prefix: DefaultPrefix}
}

// Entry is one mirrored manifest file.
type Entry struct {
	Key       string
	Version   string
	Name      string
	Size      int64
	Timestamp time.Time
}

// Key returns the object key of file under version.
func (m *Mirror) Key(version, file string) string {
	return m.prefix + version + "/" + filepath.Base(file) + suffix
}

func (m *Mirror) parse(key string) (Entry, bool) {
	rest, ok := strings.CutPrefix(key, m.prefix)
	if !ok {
		return Entry{}, false
	}
	version, name, ok := strings.Cut(rest, "/")
	if !ok || version == "" || !strings.HasSuffix(name, suffix) || strings.Contains(name, "/") {
		return Entry{}, false
	}
	return Entry{Key: key, Version: version, Name: strings.TrimSuffix(name, suffix)}, true
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

// Exists reports whether file of version is already mirrored.
func (m *Mirror) Exists(ctx context.Context, version, file string) (bool, error) {
	key := m.Key(version, file)
	if _, err := m.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &m.bucket,
		Key:    &key,
	}); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}
	return true, nil
}

// Push compresses the local file and uploads it under version.
func (m *Mirror) Push(ctx context.Context, version, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(enc, f); err != nil {
		enc.Close()
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	key := m.Key(version, file)
	size := int64(buf.Len())
	if _, err := m.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &m.bucket,
		Key:           &key,
		Body:          bytes.NewReader(buf.Bytes()),
		ContentLength: &size,
		Metadata:      map[string]string{"manifest-version": version},
	}); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Info("Mirrored manifest", slog.String("key", key), slog.Int64("size", size))
	return key, nil
}

// List returns every mirrored file, newest first.
func (m *Mirror) List(ctx context.Context) ([]Entry, error) {
	params := &s3.ListObjectsV2Input{
		Bucket: &m.bucket,
		Prefix: &m.prefix,
	}

	var result []Entry
	var continuationToken *string
	first := true
	for first || continuationToken != nil {
		first = false
		params.ContinuationToken = continuationToken

		resp, err := m.s3.ListObjectsV2(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", m.prefix, err)
		}

		continuationToken = resp.NextContinuationToken
		for _, obj := range resp.Contents {
			// GCS's XML API lists directories as objects.
			if strings.HasSuffix(aws.ToString(obj.Key), "/") {
				continue
			}
			e, ok := m.parse(aws.ToString(obj.Key))
			if !ok {
				continue
			}
			e.Size = aws.ToInt64(obj.Size)
			e.Timestamp = aws.ToTime(obj.LastModified)
			result = append(result, e)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	return result, nil
}

// Versions returns the mirrored versions, newest first.
func (m *Mirror) Versions(ctx context.Context) ([]string, error) {
	entries, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var versions []string
	seen := make(map[string]bool)
	for _, e := range entries {
		if !seen[e.Version] {
			seen[e.Version] = true
			versions = append(versions, e.Version)
		}
	}
	return versions, nil
}

// Fetch downloads and decompresses key into w.
func (m *Mirror) Fetch(ctx context.Context, key string, w io.Writer) error {
	resp, err := m.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &m.bucket,
		Key:    &key,
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", key, ErrNotFound)
		}
		return fmt.Errorf("failed to download %s: %w", key, err)
	}
	defer resp.Body.Close()

	dec, err := zstd.NewReader(resp.Body)
	if err != nil {
		return err
	}
	defer dec.Close()

	_, err = io.Copy(w, dec)
	return err
}

// Prune deletes all but the newest keep versions and returns the deleted keys.
func (m *Mirror) Prune(ctx context.Context, keep int) ([]string, error) {
	entries, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	retained := make(map[string]bool)
	var objectIds []types.ObjectIdentifier
	var deleted []string
	for _, e := range entries {
		if !retained[e.Version] && len(retained) < keep {
			retained[e.Version] = true
		}
		if retained[e.Version] {
			continue
		}
		objectIds = append(objectIds, types.ObjectIdentifier{Key: aws.String(e.Key)})
		deleted = append(deleted, e.Key)
	}
	if len(objectIds) == 0 {
		return nil, nil
	}

	if _, err := m.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: &m.bucket,
		Delete: &types.Delete{
			Objects: objectIds,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to delete old manifests: %w", err)
	}
	return deleted, nil
}

// PresignedURL returns a time-limited download link for key.
func (m *Mirror) PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(m.s3)
	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &m.bucket,
		Key:    &key,
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expires
	})
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
