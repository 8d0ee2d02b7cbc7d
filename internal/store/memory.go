package store

import "sync"

// MemoryStore keeps blobs in process memory. Nothing survives a restart.
type MemoryStore struct {
	data map[string][]byte
	lock sync.RWMutex
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (ms *MemoryStore) Get(key string) ([]byte, bool, error) {
	ms.lock.RLock()
	defer ms.lock.RUnlock()

	value, ok := ms.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (ms *MemoryStore) Set(key string, value []byte) error {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	ms.data[key] = append([]byte(nil), value...)
	return nil
}

func (ms *MemoryStore) Remove(key string) error {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	delete(ms.data, key)
	return nil
}
