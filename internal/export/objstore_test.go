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
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		prefix string
		table  string
		want   string
	}{
		{"", "branches", "branches.csv"},
		{"runs/42", "loans", "runs/42/loans.csv"},
		{"runs/42/", "credit_cards", "runs/42/credit_cards.csv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ObjectName(tt.prefix, tt.table))
	}
}

func TestUpload(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteDir(dir, Tables(testDataset(t, 42, 5)))
	require.NoError(t, err)

	store, objects, buckets := newRecordingStore()
	names, err := Upload(context.Background(), store, "bank-data", "seed-42", paths)
	require.NoError(t, err)

	assert.Equal(t, []string{"bank-data"}, *buckets)
	require.Len(t, *objects, 6)
	assert.Equal(t, []string{
		"seed-42/branches.csv", "seed-42/customers.csv", "seed-42/accounts.csv",
		"seed-42/transactions.csv", "seed-42/loans.csv", "seed-42/credit_cards.csv",
	}, names)

	for i, obj := range *objects {
		onDisk, err := os.ReadFile(paths[i])
		require.NoError(t, err)

		assert.Equal(t, "bank-data", obj.bucket)
		assert.Equal(t, names[i], obj.name)
		assert.Equal(t, string(onDisk), obj.body)
		assert.Equal(t, int64(len(onDisk)), obj.size)
		assert.Equal(t, "text/csv", obj.contentType)
	}
}

func TestUploadBucketError(t *testing.T) {
	store := &ObjectStoreMock{
		EnsureBucketFunc: func(ctx context.Context, bucket string) error {
			return errors.New("access denied")
		},
	}

	_, err := Upload(context.Background(), store, "bank-data", "", []string{"branches.csv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestUploadStopsOnPutError(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteDir(dir, Tables(testDataset(t, 1, 2)))
	require.NoError(t, err)

	calls := 0
	store := &ObjectStoreMock{
		EnsureBucketFunc: func(ctx context.Context, bucket string) error { return nil },
		PutFunc: func(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
			calls++
			if calls == 2 {
				return errors.New("connection reset")
			}
			return nil
		},
	}

	names, err := Upload(context.Background(), store, "bank-data", "", paths)
	require.Error(t, err)
	assert.Equal(t, []string{"branches.csv"}, names)
	assert.Equal(t, 2, calls)
}

func TestUploadMissingFile(t *testing.T) {
	store, objects, _ := newRecordingStore()

	_, err := Upload(context.Background(), store, "bank-data", "", []string{filepath.Join(t.TempDir(), "nope.csv")})
	require.Error(t, err)
	assert.Empty(t, *objects)
}
