// Package session holds per-chat dialogue state in memory, redis or bbolt.
package session

import (
	"context"
	"sync"

	"storefront/internal/bot/dialogue"
)

// Memory keeps sessions in process memory; they are lost on restart.
type Memory struct {
	mu       sync.RWMutex
	sessions map[int64]dialogue.State
}

func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[int64]dialogue.State),
	}
}

func (m *Memory) Load(_ context.Context, chatID int64) (dialogue.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.sessions[chatID]
	if !ok {
		return dialogue.Idle(), nil
	}

	return state, nil
}

func (m *Memory) Save(_ context.Context, chatID int64, state dialogue.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if state.IsIdle() {
		delete(m.sessions, chatID)

		return nil
	}

	m.sessions[chatID] = state

	return nil
}

func (m *Memory) Clear(_ context.Context, chatID int64) error {
	m.mu.Lock()
	delete(m.sessions, chatID)
	m.mu.Unlock()

	return nil
}
