package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	testCases := []struct {
		name string
		base string
		key  string
		want string
	}{
		{name: "plain host", base: "https://cdn.example", key: "logos/a.png", want: "https://cdn.example/logos/a.png"},
		{name: "trailing slash", base: "https://cdn.example/", key: "logos/a.png", want: "https://cdn.example/logos/a.png"},
		{name: "leading slash key", base: "https://cdn.example/bucket", key: "/certificates/1/x.html", want: "https://cdn.example/bucket/certificates/1/x.html"},
		{name: "empty key", base: "https://cdn.example", key: "", want: ""},
		{name: "empty base", base: "", key: "logos/a.png", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, publicURL(tc.base, tc.key))
		})
	}
}

func TestNewCloudflareR2Uploader_Validation(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc"})
	assert.ErrorIs(t, err, ErrInvalidR2Config)

	_, err = NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "bucket",
		PublicBaseURL:   "not a url",
	})
	assert.Error(t, err)
}

func TestNewCloudflareR2Uploader(t *testing.T) {
	uploader, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{
		AccountID:       "acc",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		BucketName:      "bucket",
		PublicBaseURL:   "https://cdn.example",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/logos/a.png", uploader.GetPublicURL("logos/a.png"))
}
