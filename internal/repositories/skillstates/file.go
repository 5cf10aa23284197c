package skillstates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/arena-bot-discord/internal/entities"
)

// StatesFileName is the primary state file inside the data directory
const StatesFileName = "skill_states.json"

type fileStore struct {
	mu     sync.Mutex
	path   string
	cache  map[string]*entities.ChannelState
	loaded bool
}

// NewFileStore stores all channels in one indented JSON document
func NewFileStore(dataDir string) Store {
	return &fileStore{
		path: filepath.Join(dataDir, StatesFileName),
	}
}

func (s *fileStore) Save(ctx context.Context, changed map[string]*entities.ChannelState, removed []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		// a failed read must not wipe channels we were never told about
		existing, err := s.read()
		if err != nil {
			existing = make(map[string]*entities.ChannelState)
		}
		s.cache = existing
		s.loaded = true
	}

	for id, state := range changed {
		if state == nil || state.IsEmpty() {
			delete(s.cache, id)
			continue
		}
		s.cache[id] = state.Clone()
	}
	for _, id := range removed {
		delete(s.cache, id)
	}

	return s.write()
}

func (s *fileStore) Load(ctx context.Context) (map[string]*entities.ChannelState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	states, err := s.read()
	if err != nil {
		return nil, err
	}
	s.cache = make(map[string]*entities.ChannelState, len(states))
	out := make(map[string]*entities.ChannelState, len(states))
	for id, state := range states {
		s.cache[id] = state
		out[id] = state.Clone()
	}
	s.loaded = true
	return out, nil
}

func (s *fileStore) read() (map[string]*entities.ChannelState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]*entities.ChannelState), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	states := make(map[string]*entities.ChannelState)
	if len(data) == 0 {
		return states, nil
	}
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	for id, state := range states {
		if state == nil {
			delete(states, id)
			continue
		}
		state.Normalize()
	}
	return states, nil
}

func (s *fileStore) write() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode skill states: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
