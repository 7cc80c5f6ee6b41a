package logger

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	bucket string
	key    string
	body   string
	err    error
}

func (f *fakeUploader) Upload(ctx context.Context, bucketName string, objectKey string, body io.Reader, contentType string) error {
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.bucket = bucketName
	f.key = objectKey
	f.body = string(data)
	return nil
}

func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "info")

	log.Debugf("hidden %d", 1)
	log.Infof("Processing locale: %s", "ja_jp")
	log.Warnf("%s No skins found", "Brand")
	log.Errorf("No champion IDs found for %s", "ja")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Processing locale: ja_jp")
	assert.Contains(t, out, "Brand No skins found")
	assert.Contains(t, out, "No champion IDs found for ja")
	assert.Empty(t, log.FilePath())
}

func TestConsoleLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "loud")

	log.Debugf("debug line")
	log.Infof("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}

func TestUploadToS3Bucket(t *testing.T) {
	log, err := CreateLogger("info")
	require.NoError(t, err)
	defer log.Close()

	log.Infof("Writing skin mappings to: %s", "resources/skinid_mapping/en/skin_ids.json")

	uploader := &fakeUploader{}
	err = log.UploadToS3Bucket(context.Background(), uploader, "logs", "runs/today.log")
	require.NoError(t, err)

	assert.Equal(t, "logs", uploader.bucket)
	assert.Equal(t, "runs/today.log", uploader.key)
	assert.Contains(t, uploader.body, "Writing skin mappings to: resources/skinid_mapping/en/skin_ids.json")

	// The file is emptied once uploaded.
	info, err := os.Stat(log.FilePath())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestUploadToS3BucketKeepsFileOnError(t *testing.T) {
	log, err := CreateLogger("info")
	require.NoError(t, err)
	defer log.Close()

	log.Infof("kept")

	err = log.UploadToS3Bucket(context.Background(), &fakeUploader{err: errors.New("bucket down")}, "logs", "k")
	assert.Error(t, err)

	data, err := os.ReadFile(log.FilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
}

func TestUploadWithoutFile(t *testing.T) {
	log := NewConsoleLogger(io.Discard, "info")
	assert.Error(t, log.UploadToS3Bucket(context.Background(), &fakeUploader{}, "logs", "k"))
}
