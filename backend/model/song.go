package model

import (
	"github.com/burugo/thing"
)

// Song references exactly one uploaded file. The referenced file record is
// resolved at serialization time, it is not stored on the song row.
type Song struct {
	thing.BaseModel
	FileID int64 `json:"file_id" gorm:"column:file_id;not null;index"`
}

// TableName sets the table name for the Song model
func (s *Song) TableName() string {
	return "songs"
}

var SongDB *thing.Thing[*Song]

// SongInit initializes SongDB during InitDB.
func SongInit() error {
	var err error
	SongDB, err = thing.Use[*Song]()
	return err
}

// Serialize returns the wire form of a song: {id, file: {id, name}}, with the
// file record resolved through FileID.
func (s *Song) Serialize() (map[string]any, error) {
	file, err := GetFileByID(s.FileID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":   s.ID,
		"file": file.Serialize(),
	}, nil
}

// GetSongByID retrieves a song by ID.
func GetSongByID(id int64) (*Song, error) {
	return SongDB.ByID(id)
}

// GetAllSongs returns every song in id order.
func GetAllSongs() ([]*Song, error) {
	return SongDB.Order("id ASC").All()
}

func (s *Song) Insert() error {
	return SongDB.Save(s)
}

func (s *Song) Update() error {
	return SongDB.Save(s)
}

// DeleteSongByID removes a song. The referenced file record and blob stay.
func DeleteSongByID(id int64) error {
	song, err := SongDB.ByID(id)
	if err != nil {
		return err
	}
	return SongDB.Delete(song)
}

// CountSongs reports the number of song rows.
func CountSongs() (int64, error) {
	return SongDB.Query(thing.QueryParams{}).Count()
}
