package memory

import (
	"context"
	"sync"

	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

// KV is an in-process repository.KV.
type KV struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.KV = (*KV)(nil)

func NewKV() *KV {
	return &KV{values: make(map[string]string)}
}

func (kv *KV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	v, ok := kv.values[key]
	return v, ok, nil
}

func (kv *KV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.values[key] = value
	return nil
}
