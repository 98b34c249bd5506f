package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRoundTrip(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 250000000, time.UTC)
	in := []Bookmark{
		NewBookmark(1, "https://Example.com", []string{"News"}, now),
		NewBookmark(2, "https://test.org", []string{"dev", "dev"}, now.Add(time.Second)),
		NewBookmark(3, "not a url", nil, now.Add(2*time.Second)),
	}

	blob, err := EncodeCollection(in)
	require.NoError(t, err)

	out, err := DecodeCollection(blob)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].URL, out[i].URL)
		assert.Equal(t, in[i].Tags, out[i].Tags)
		assert.Equal(t, in[i].Title, out[i].Title)
		assert.True(t, in[i].CreatedAt.Equal(out[i].CreatedAt), "createdAt of entry %d", i)
	}
}

func TestEncodeNilCollection(t *testing.T) {
	blob, err := EncodeCollection(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", blob)
}

func TestDecodeCollectionEmpty(t *testing.T) {
	for _, blob := range []string{"", "  ", "null", "[]"} {
		out, err := DecodeCollection(blob)
		require.NoError(t, err, blob)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	}
}

func TestDecodeCollectionCorrupt(t *testing.T) {
	blobs := []string{
		"{not json",
		`{"id":1}`,
		`[1,2,3]`,
		`["https://a.org"]`,
		`[{"id":1,"tags":[]}]`,
		`[null]`,
	}

	for _, blob := range blobs {
		t.Run(blob, func(t *testing.T) {
			_, err := DecodeCollection(blob)
			assert.ErrorIs(t, err, ErrCorruptBlob)
		})
	}
}
