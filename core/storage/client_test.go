package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fxr-query/core/storage"
	"fxr-query/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "audits/run/a.txt", storage.ObjectKey("audits", "run", "a.txt"))
	assert.Equal(t, "run/a.txt", storage.ObjectKey("", "run", "a.txt"))
	assert.Equal(t, "x/run/a.txt", storage.ObjectKey("/x/", "run", "a.txt"))
}

func TestUploadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "UnusedFxrIds_ds3.txt")
	require.NoError(t, os.WriteFile(file, []byte("Game Searched: Dark Souls 3\n"), 0o644))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "reports", "audits/r/UnusedFxrIds_ds3.txt", mock.Anything, int64(28), mock.Anything).
		Return(minio.UploadInfo{Key: "audits/r/UnusedFxrIds_ds3.txt", Size: 28}, nil)

	info, err := storage.UploadFile(context.Background(), client, "reports", "audits/r/UnusedFxrIds_ds3.txt", file)
	require.NoError(t, err)
	assert.Equal(t, int64(28), info.Size)
	client.AssertExpectations(t)

	_, err = storage.UploadFile(context.Background(), client, "reports", "k", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
