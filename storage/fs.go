package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const recordFileName = "index.md"

// FSStore legt Records als <root>/<id>/index.md im Dateisystem ab.
type FSStore struct {
	Root string
}

// NewFSStore erstellt einen Dateisystem-Store unterhalb von root.
func NewFSStore(root string) *FSStore {
	return &FSStore{Root: root}
}

// Exists prüft, ob die Record-Datei bereits existiert.
func (s *FSStore) Exists(id string) (bool, error) {
	_, err := os.Stat(s.path(id))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Write schreibt den Record atomar: erst in eine Temp-Datei im Zielverzeichnis,
// dann per Rename an den endgültigen Pfad.
func (s *FSStore) Write(id string, data []byte) error {
	dir := filepath.Dir(s.path(id))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("verzeichnis konnte nicht angelegt werden: %w", err)
	}

	tmp, err := os.CreateTemp(dir, recordFileName+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(id))
}

// Location gibt den Pfad der Record-Datei zurück.
func (s *FSStore) Location(id string) string {
	return s.path(id)
}

func (s *FSStore) path(id string) string {
	return filepath.Join(s.Root, id, recordFileName)
}
