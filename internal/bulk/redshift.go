package bulk

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/coregx/tabload/internal/frame"
	"github.com/coregx/tabload/internal/infer"
)

// RedshiftS3Config carries the credentials and object location for S3-staged
// COPY into Redshift. All fields except ServerSideEncryption are required.
type RedshiftS3Config struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	ObjectKey string
	// ServerSideEncryption requests AES-256 encryption on the staged object.
	ServerSideEncryption bool
}

func (c RedshiftS3Config) validate() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"AccessKey", c.AccessKey},
		{"SecretKey", c.SecretKey},
		{"Region", c.Region},
		{"Bucket", c.Bucket},
		{"ObjectKey", c.ObjectKey},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Adapter: "redshift", Missing: missing}
	}
	return nil
}

// S3Stager uploads staged payloads to S3 through the managed uploader.
type S3Stager struct {
	uploader *manager.Uploader
	bucket   string
	sse      bool
}

// NewS3Stager builds an S3 stager from the Redshift configuration.
func NewS3Stager(ctx context.Context, cfg RedshiftS3Config) (*S3Stager, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("bulk: redshift: load aws config: %w", err)
	}
	return &S3Stager{
		uploader: manager.NewUploader(s3.NewFromConfig(awsCfg)),
		bucket:   cfg.Bucket,
		sse:      cfg.ServerSideEncryption,
	}, nil
}

// Stage uploads the payload and returns its s3:// URI.
func (s *S3Stager) Stage(ctx context.Context, key string, r io.Reader) (string, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	}
	if s.sse {
		in.ServerSideEncryption = s3types.ServerSideEncryptionAes256
	}
	if _, err := s.uploader.Upload(ctx, in); err != nil {
		return "", fmt.Errorf("bulk: redshift: stage s3://%s/%s: %w", s.bucket, key, err)
	}
	return "s3://" + s.bucket + "/" + key, nil
}

// RedshiftLoader stages a gzip CSV object in S3 and issues COPY on the
// connection. COPY runs with EMPTYASNULL, so a present-but-empty text cell
// loads as NULL, indistinguishable from an absent cell.
type RedshiftLoader struct {
	cfg    RedshiftS3Config
	stager Stager
}

// NewRedshiftLoader creates the adapter. A nil stager defaults to an
// S3Stager built from the configuration at load time, after validation.
func NewRedshiftLoader(cfg RedshiftS3Config, stager Stager) *RedshiftLoader {
	return &RedshiftLoader{cfg: cfg, stager: stager}
}

// Validate verifies the credential and location fields eagerly.
func (l *RedshiftLoader) Validate() error {
	return l.cfg.validate()
}

// Load stages the frame and triggers the COPY.
func (l *RedshiftLoader) Load(ctx context.Context, exec Executor, table Table, f *frame.Frame, _ []infer.ColumnDescriptor) error {
	stager := l.stager
	if stager == nil {
		var err error
		if stager, err = NewS3Stager(ctx, l.cfg); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := writeCSV(gz, f); err != nil {
		return fmt.Errorf("bulk: redshift: encode staging csv: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("bulk: redshift: encode staging csv: %w", err)
	}

	location, err := stager.Stage(ctx, l.cfg.ObjectKey, &buf)
	if err != nil {
		return err
	}

	copySQL := fmt.Sprintf(
		"COPY %s FROM '%s' CREDENTIALS 'aws_access_key_id=%s;aws_secret_access_key=%s' REGION '%s' CSV GZIP EMPTYASNULL DATEFORMAT 'auto' TIMEFORMAT 'auto';",
		table.Qualified, location, l.cfg.AccessKey, l.cfg.SecretKey, l.cfg.Region,
	)
	return exec.Execute(ctx, copySQL)
}
