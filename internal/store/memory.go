package store

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Memory is a map-backed FileStore for tests. Writes become visible when the
// returned writer is closed, matching the no-partial-artifact contract of the
// disk store.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

func (m *Memory) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok
}

func (m *Memory) Open(path string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("failed to open %s: file does not exist", path)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *Memory) Create(path string) (io.WriteCloser, error) {
	return &memoryWriter{store: m, path: path}, nil
}

func (m *Memory) Size(path string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.files[path]
	if !ok {
		return 0, fmt.Errorf("failed to stat %s: file does not exist", path)
	}
	return int64(len(b)), nil
}

// Put seeds a file directly, for test setup.
func (m *Memory) Put(path string, data []byte) {
	m.mu.Lock()
	m.files[path] = data
	m.mu.Unlock()
}

// Bytes returns a file's content, for test assertions.
func (m *Memory) Bytes(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.files[path]
	return b, ok
}

type memoryWriter struct {
	store *Memory
	path  string
	buf   bytes.Buffer
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	w.store.mu.Lock()
	w.store.files[w.path] = w.buf.Bytes()
	w.store.mu.Unlock()
	return nil
}
