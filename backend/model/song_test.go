package model

import (
	"path/filepath"
	"testing"

	"songbox/backend/common"

	"github.com/stretchr/testify/assert"
)

func setupModelTestDB(t *testing.T) {
	t.Helper()
	common.SQLitePath = filepath.Join(t.TempDir(), "model_test.db")
	assert.NoError(t, InitDB())
}

func TestSongSerialize(t *testing.T) {
	setupModelTestDB(t)

	file := &File{Name: "serialized.mp3"}
	assert.NoError(t, file.Insert())
	song := &Song{FileID: file.ID}
	assert.NoError(t, song.Insert())

	data, err := song.Serialize()
	assert.NoError(t, err)
	assert.Equal(t, song.ID, data["id"])
	assert.Equal(t, map[string]any{"id": file.ID, "name": "serialized.mp3"}, data["file"])
}

func TestSongSerializeDanglingFile(t *testing.T) {
	setupModelTestDB(t)

	file := &File{Name: "fleeting.mp3"}
	assert.NoError(t, file.Insert())
	song := &Song{FileID: file.ID}
	assert.NoError(t, song.Insert())
	assert.NoError(t, DeleteFileByID(file.ID))

	_, err := song.Serialize()
	assert.Error(t, err)
}

func TestCountSongs(t *testing.T) {
	setupModelTestDB(t)

	count, err := CountSongs()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	file := &File{Name: "counted.mp3"}
	assert.NoError(t, file.Insert())
	for i := 0; i < 3; i++ {
		assert.NoError(t, (&Song{FileID: file.ID}).Insert())
	}

	count, err = CountSongs()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGetAllSongsOrder(t *testing.T) {
	setupModelTestDB(t)

	var ids []int64
	for _, name := range []string{"a.mp3", "b.mp3", "c.mp3"} {
		file := &File{Name: name}
		assert.NoError(t, file.Insert())
		song := &Song{FileID: file.ID}
		assert.NoError(t, song.Insert())
		ids = append(ids, song.ID)
	}

	songs, err := GetAllSongs()
	assert.NoError(t, err)
	assert.Len(t, songs, 3)
	for i, song := range songs {
		assert.Equal(t, ids[i], song.ID)
	}
}
