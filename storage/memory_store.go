package storage

import "sync"

// MemoryStore is a Store that lives for the process only.
type MemoryStore struct {
	values map[string]int
	mutex  sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (ms *MemoryStore) Get(key string) (int, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	v, ok := ms.values[key]
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

func (ms *MemoryStore) Set(key string, value int) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	ms.values[key] = value
	return nil
}
