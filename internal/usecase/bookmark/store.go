// Package bookmark keeps the set of profiles a viewer has saved.
package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/gdugdh24/skillswap-backend/internal/repository"
)

// KeyPrefix namespaces bookmark sets in the KV store; the owner id follows.
const KeyPrefix = "bookmarkedProfiles:"

// Store is one owner's bookmark set. It is read from the KV once and
// written back in full after every change.
type Store struct {
	mu  sync.Mutex
	kv  repository.KV
	key string
	ids []string
}

// Load reads owner's set. A missing key is an empty set; a payload that is
// not a JSON array of strings is an error.
func Load(ctx context.Context, kv repository.KV, owner string) (*Store, error) {
	key := KeyPrefix + owner
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	s := &Store{kv: kv, key: key, ids: []string{}}
	if !ok || raw == "" {
		return s, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("decode bookmarks for %s: %w", owner, err)
	}
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			s.ids = append(s.ids, id)
		}
	}
	return s, nil
}

// Toggle adds id when absent and removes it when present. It returns
// whether id is bookmarked afterwards. If persisting fails the set is left
// as it was.
func (s *Store) Toggle(ctx context.Context, id string) (bool, error) {
	return s.ToggleChecked(ctx, id, nil)
}

// ToggleChecked is Toggle with canAdd consulted before id is added. The
// check and the write happen under the same lock, so a concurrent toggle
// cannot slip an id past it. A nil canAdd allows everything.
func (s *Store) ToggleChecked(ctx context.Context, id string, canAdd func(ctx context.Context, id string) error) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := slices.Clone(s.ids)
	i := slices.Index(next, id)
	added := i < 0
	if added {
		if canAdd != nil {
			if err := canAdd(ctx, id); err != nil {
				return false, err
			}
		}
		next = append(next, id)
	} else {
		next = slices.Delete(next, i, i+1)
	}

	payload, err := json.Marshal(next)
	if err != nil {
		return !added, err
	}
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		return !added, fmt.Errorf("write bookmarks: %w", err)
	}
	s.ids = next
	return added, nil
}

func (s *Store) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.ids, id)
}

// List returns the bookmarked ids in the order they were added.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ids)
}
