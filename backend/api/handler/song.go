package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"songbox/backend/common"
	"songbox/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// songRequest is the payload of POST and PUT on /api/songs: a reference to an
// existing file record. Extra fields inside "file" (such as name) are ignored,
// only the id binds the song.
type songRequest struct {
	File struct {
		ID int64 `json:"id" binding:"required"`
	} `json:"file" binding:"required"`
}

func bindSongRequest(c *gin.Context) (*songRequest, bool) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			common.RespMessage(c, http.StatusBadRequest, "Missing required field: file.id")
			return nil, false
		}
		common.RespError(c, http.StatusBadRequest, "Invalid JSON body", err)
		return nil, false
	}
	return &req, true
}

// GetAllSongs returns every song as a JSON array, each with its file record
// nested. An empty library serializes as [].
func GetAllSongs(c *gin.Context) {
	songs, err := model.GetAllSongs()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not load songs", err)
		return
	}
	data := make([]map[string]any, 0, len(songs))
	for _, song := range songs {
		serialized, err := song.Serialize()
		if err != nil {
			common.RespError(c, http.StatusInternalServerError, "Could not serialize song", err)
			return
		}
		data = append(data, serialized)
	}
	c.JSON(http.StatusOK, data)
}

// CreateSong persists a new song pointing at an existing file record.
func CreateSong(c *gin.Context) {
	req, ok := bindSongRequest(c)
	if !ok {
		return
	}
	file, err := model.GetFileByID(req.File.ID)
	if err != nil {
		common.RespMessage(c, http.StatusBadRequest, "Bad file ID")
		return
	}

	song := &model.Song{FileID: file.ID}
	if err := song.Insert(); err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not save song", err)
		return
	}
	serialized, err := song.Serialize()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not serialize song", err)
		return
	}
	c.Header("Location", "/api/songs")
	c.JSON(http.StatusCreated, serialized)
}

// UpdateSong repoints an existing song at another file record.
func UpdateSong(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespMessage(c, http.StatusBadRequest, "Invalid song ID")
		return
	}
	song, err := model.GetSongByID(id)
	if err != nil {
		common.RespMessage(c, http.StatusNotFound, fmt.Sprintf("Could not find song with id %d", id))
		return
	}
	req, ok := bindSongRequest(c)
	if !ok {
		return
	}
	file, err := model.GetFileByID(req.File.ID)
	if err != nil {
		common.RespMessage(c, http.StatusBadRequest, "Bad file ID")
		return
	}

	song.FileID = file.ID
	if err := song.Update(); err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not update song", err)
		return
	}
	serialized, err := song.Serialize()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not serialize song", err)
		return
	}
	c.JSON(http.StatusOK, serialized)
}

// DeleteSong removes a song. The referenced file record and its blob stay.
func DeleteSong(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.RespMessage(c, http.StatusBadRequest, "Invalid song ID")
		return
	}
	if _, err := model.GetSongByID(id); err != nil {
		common.RespMessage(c, http.StatusNotFound, fmt.Sprintf("Could not find song with id %d", id))
		return
	}
	if err := model.DeleteSongByID(id); err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not delete song", err)
		return
	}
	c.Status(http.StatusNoContent)
}
