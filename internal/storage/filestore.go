package storage

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
)

const (
	nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	nameLength   = 10
	extension    = ".csv"

	// collisions are astronomically unlikely, the retry is belt-and-braces
	maxNameAttempts = 5
)

// FileStore persists record files under a single root directory, each under
// a freshly generated unique name. The store owns the bytes once written;
// callers keep only the returned locator.
type FileStore struct {
	root    string
	newName func() (string, error)
}

func New(root string) (*FileStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &FileStore{root: abs, newName: randomName}, nil
}

func (s *FileStore) Root() string {
	return s.root
}

// Save writes data to a new randomly named .csv file and returns its
// absolute path. An existing file is never overwritten: creation is
// O_EXCL and a colliding name is redrawn.
func (s *FileStore) Save(data []byte) (string, error) {
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name, err := s.newName()
		if err != nil {
			return "", err
		}

		path := filepath.Join(s.root, name+extension)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to store file: %w", err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to store file: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to store file: %w", err)
		}
		return path, nil
	}
	return "", errors.New("could not allocate a unique filename")
}

// Remove deletes a stored file, used to roll back a failed ingest.
func (s *FileStore) Remove(path string) error {
	return os.Remove(path)
}

// randomName draws nameLength symbols without replacement from the
// 36-symbol alphabet, via a partial Fisher-Yates over a copy of it.
func randomName() (string, error) {
	letters := []byte(nameAlphabet)
	for i := 0; i < nameLength; i++ {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters)-i)))
		if err != nil {
			return "", err
		}
		k := i + int(j.Int64())
		letters[i], letters[k] = letters[k], letters[i]
	}
	return string(letters[:nameLength]), nil
}
