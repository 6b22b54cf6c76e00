//-------------------------------------------------------------------------
//
// pgEdge Bank Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pgEdge/pgedge-bankgen/internal/logging"
)

const csvContentType = "text/csv"

// ObjectStore is the subset of object storage operations used to publish
// a dataset.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error
}

// MinioObjStore implements ObjectStore on an S3 compatible endpoint.
type MinioObjStore struct {
	client *minio.Client
}

// StoreConfig holds the connection settings of an object store.
type StoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// NewMinioObjStore connects to the endpoint described by cfg.
func NewMinioObjStore(cfg StoreConfig) (*MinioObjStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}
	return &MinioObjStore{client: client}, nil
}

// EnsureBucket creates bucket unless it already exists.
func (s *MinioObjStore) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}

// Put uploads an object.
func (s *MinioObjStore) Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, obj, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// ObjectName returns the key a table file is stored under.
func ObjectName(prefix, table string) string {
	if prefix == "" {
		return FileName(table)
	}
	return path.Join(prefix, FileName(table))
}

// Upload copies the CSV files written by WriteDir into bucket, one object
// per file named <prefix>/<file>. It returns the object names uploaded.
func Upload(ctx context.Context, store ObjectStore, bucket, prefix string, files []string) ([]string, error) {
	if err := store.EnsureBucket(ctx, bucket); err != nil {
		return nil, fmt.Errorf("failed to prepare bucket %s: %w", bucket, err)
	}

	objects := make([]string, 0, len(files))
	for _, file := range files {
		table := trimExt(filepath.Base(file))
		obj := ObjectName(prefix, table)

		if err := uploadFile(ctx, store, bucket, obj, file); err != nil {
			return objects, fmt.Errorf("failed to upload %s: %w", file, err)
		}
		objects = append(objects, obj)

		logging.Info().
			Str("bucket", bucket).
			Str("object", obj).
			Msg("Uploaded CSV file")
	}

	return objects, nil
}

func uploadFile(ctx context.Context, store ObjectStore, bucket, obj, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	return store.Put(ctx, bucket, obj, f, info.Size(), csvContentType)
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
