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
	"io"
)

// ObjectStoreMock is a mock implementation of the ObjectStore interface.
type ObjectStoreMock struct {
	EnsureBucketFunc func(ctx context.Context, bucket string) error
	PutFunc          func(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error
}

func (m *ObjectStoreMock) EnsureBucket(ctx context.Context, bucket string) error {
	return m.EnsureBucketFunc(ctx, bucket)
}

func (m *ObjectStoreMock) Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
	return m.PutFunc(ctx, bucket, obj, reader, size, contentType)
}

// storedObject is an object captured by a recording mock.
type storedObject struct {
	bucket      string
	name        string
	body        string
	size        int64
	contentType string
}

// newRecordingStore returns a mock that keeps every uploaded object.
func newRecordingStore() (*ObjectStoreMock, *[]storedObject, *[]string) {
	var objects []storedObject
	var buckets []string

	return &ObjectStoreMock{
		EnsureBucketFunc: func(ctx context.Context, bucket string) error {
			buckets = append(buckets, bucket)
			return nil
		},
		PutFunc: func(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
			body, err := io.ReadAll(reader)
			if err != nil {
				return err
			}
			objects = append(objects, storedObject{bucket, obj, string(body), size, contentType})
			return nil
		},
	}, &objects, &buckets
}
