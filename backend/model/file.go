package model

import (
	"github.com/burugo/thing"
)

// File is the database record behind one uploaded blob. The blob itself lives
// in the upload directory under Name; the record is never mutated after
// creation.
type File struct {
	thing.BaseModel
	Name string `json:"name" gorm:"size:255;not null"`
}

// TableName sets the table name for the File model
func (f *File) TableName() string {
	return "files"
}

var FileDB *thing.Thing[*File]

// FileInit initializes FileDB during InitDB.
func FileInit() error {
	var err error
	FileDB, err = thing.Use[*File]()
	return err
}

// Serialize returns the wire form of a file record: {id, name}.
func (f *File) Serialize() map[string]any {
	return map[string]any{
		"id":   f.ID,
		"name": f.Name,
	}
}

// GetFileByID retrieves a file record by ID.
func GetFileByID(id int64) (*File, error) {
	return FileDB.ByID(id)
}

func (f *File) Insert() error {
	return FileDB.Save(f)
}

// DeleteFileByID removes a file record. Not exposed over HTTP; used by
// maintenance code and tests.
func DeleteFileByID(id int64) error {
	file, err := FileDB.ByID(id)
	if err != nil {
		return err
	}
	return FileDB.Delete(file)
}
