package handler

import (
	"net/http"

	"songbox/backend/common"
	"songbox/backend/library/blob"
	"songbox/backend/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// UploadStore holds the uploaded blobs. Initialized from common.UploadPath at
// startup (and per-test in the handler tests).
var UploadStore *blob.Store

// InitUploadStore opens the upload directory as a blob store.
func InitUploadStore() error {
	store, err := blob.NewStore(common.UploadPath)
	if err != nil {
		return err
	}
	UploadStore = store
	return nil
}

// UploadFile takes the "file" part of a multipart form, records it in the
// database under its sanitized name and writes the bytes to the upload
// directory. An existing blob with the same name is overwritten.
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.RespMessage(c, http.StatusUnprocessableEntity, "Could not find file data")
		return
	}

	name := common.SanitizeFilename(fileHeader.Filename)
	record := &model.File{Name: name}
	if err := record.Insert(); err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not save file record", err)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not read file data", err)
		return
	}
	defer src.Close()
	// The row is committed before the bytes land on disk; a failed write here
	// leaves a record without a blob, there is no cross-resource transaction.
	if err := UploadStore.Save(name, src); err != nil {
		common.RespError(c, http.StatusInternalServerError, "Could not store file", err)
		return
	}

	c.JSON(http.StatusCreated, record.Serialize())
}

// ServeUpload streams an uploaded blob with a mimetype sniffed from its
// contents. Names that would escape the upload directory read as not found.
func ServeUpload(c *gin.Context) {
	name := c.Param("filename")
	data, err := UploadStore.Read(name)
	if err != nil {
		common.RespMessage(c, http.StatusNotFound, "Could not find file "+name)
		return
	}
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}
