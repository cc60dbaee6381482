package media

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	key         string
	contentType string
	data        []byte
}

func (f *fakeUploader) Put(_ context.Context, key, contentType string, data []byte) error {
	f.key = key
	f.contentType = contentType
	f.data = data
	return nil
}

func (f *fakeUploader) PublicURL(key string) string { return "http://media.local/" + key }

type fakeProfiles struct {
	id  uint
	url string
}

func (f *fakeProfiles) UpdateURL(id uint, url string) error {
	f.id = id
	f.url = url
	return nil
}

func TestUploadAvatar(t *testing.T) {
	up := &fakeUploader{}
	profiles := &fakeProfiles{}
	svc := NewService(up, profiles)

	url, err := svc.UploadAvatar(context.Background(), 7, "image/png", bytes.NewReader([]byte("png-bytes")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(up.key, "users/7/profile/"), up.key)
	assert.True(t, strings.HasSuffix(up.key, ".png"), up.key)
	assert.Equal(t, "image/png", up.contentType)
	assert.Equal(t, []byte("png-bytes"), up.data)

	assert.Equal(t, "http://media.local/"+up.key, url)
	assert.Equal(t, uint(7), profiles.id)
	assert.Equal(t, url, profiles.url)
}

func TestUploadAvatarRejectsContentType(t *testing.T) {
	svc := NewService(&fakeUploader{}, &fakeProfiles{})

	_, err := svc.UploadAvatar(context.Background(), 7, "application/pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUploadAvatarRejectsOversize(t *testing.T) {
	up := &fakeUploader{}
	svc := NewService(up, &fakeProfiles{})

	big := bytes.NewReader(make([]byte, maxImageBytes+1))
	_, err := svc.UploadAvatar(context.Background(), 7, "image/jpeg", big)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, up.key)
}
