package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNameFromURL(t *testing.T) {
	name, err := ObjectNameFromURL("https://storage.googleapis.com/huhu-media/properties/1700000000_room.jpg", "huhu-media")
	require.NoError(t, err)
	assert.Equal(t, "properties/1700000000_room.jpg", name)

	_, err = ObjectNameFromURL("https://example.com/huhu-media/a.jpg", "huhu-media")
	assert.Error(t, err)

	_, err = ObjectNameFromURL("https://storage.googleapis.com/other/a.jpg", "huhu-media")
	assert.Error(t, err)

	_, err = ObjectNameFromURL("https://storage.googleapis.com/huhu-media/", "huhu-media")
	assert.Error(t, err)
}
