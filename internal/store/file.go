package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
)

// FileBackend persists the document as one indented JSON file, the same
// flat layout the admin panel's data exports use: top-level arrays for
// shops, offers, categories, floors, users and customers.
type FileBackend struct {
	Path string
}

func NewFileBackend(path string) *FileBackend { return &FileBackend{Path: path} }

func (f *FileBackend) Load() (models.Document, bool, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Document{}, false, nil
		}
		return models.Document{}, false, err
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, false, err
	}
	return doc, true, nil
}

func (f *FileBackend) Save(doc models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}
