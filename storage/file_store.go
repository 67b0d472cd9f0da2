package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps values in a JSON object on disk. Writes go to a temp file
// that is renamed over the target.
type FileStore struct {
	path  string
	mutex sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Path() string {
	return fs.path
}

func (fs *FileStore) Get(key string) (int, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	values, err := fs.load()
	if err != nil {
		return 0, err
	}
	v, ok := values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (fs *FileStore) Set(key string, value int) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	values, err := fs.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking every save.
		values = make(map[string]int)
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode store")
	}
	if err := os.MkdirAll(filepath.Dir(fs.path), 0755); err != nil {
		return errors.Wrapf(err, "create directory for %s", fs.path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(fs.path), filepath.Base(fs.path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create temp file for %s", fs.path)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "replace %s", fs.path)
	}
	return nil
}

func (fs *FileStore) load() (map[string]int, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return make(map[string]int), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fs.path)
	}

	values := make(map[string]int)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "decode %s", fs.path)
	}
	return values, nil
}
