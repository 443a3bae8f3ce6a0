package store

import "github.com/Sowmya0405/Super-mall-web-application/internal/models"

// Backend persists the whole document. Load reports found=false when no
// prior document exists, letting the store seed defaults instead.
type Backend interface {
	Load() (doc models.Document, found bool, err error)
	Save(doc models.Document) error
}

// MemoryBackend keeps the document in memory. Used by tests and handy
// as a null backend.
type MemoryBackend struct {
	Doc     models.Document
	HasDoc  bool
	SaveErr error // injected failure for tests
	Saves   int
}

func (m *MemoryBackend) Load() (models.Document, bool, error) {
	return m.Doc.Clone(), m.HasDoc, nil
}

func (m *MemoryBackend) Save(doc models.Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Doc = doc.Clone()
	m.HasDoc = true
	m.Saves++
	return nil
}
