package user

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/saulo-duarte/banco-questoes/internal/config"
	"github.com/saulo-duarte/banco-questoes/internal/store"
)

// SessionRepository persists signed-in principals under the currentUser key,
// one entry per user id. With a crypto key configured each entry is stored
// encrypted.
type SessionRepository interface {
	Save(ctx context.Context, u User) error
	Load(ctx context.Context, userID string) (*User, error)
	Clear(ctx context.Context, userID string) error
}

type sessionRepository struct {
	mu    sync.Mutex
	store store.Store
}

func NewSessionRepository(s store.Store) SessionRepository {
	return &sessionRepository{store: s}
}

func (r *sessionRepository) Save(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, err := sealSession(u)
	if err != nil {
		return err
	}

	sessions, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	sessions[u.ID] = entry
	return r.store.Put(ctx, store.KeyCurrentUser, sessions)
}

// Load returns nil when userID has no active session.
func (r *sessionRepository) Load(ctx context.Context, userID string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := sessions[userID]
	if !ok {
		return nil, nil
	}
	return openSession(entry)
}

func (r *sessionRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := sessions[userID]; !ok {
		return nil
	}
	delete(sessions, userID)
	if len(sessions) == 0 {
		return r.store.Delete(ctx, store.KeyCurrentUser)
	}
	return r.store.Put(ctx, store.KeyCurrentUser, sessions)
}

func (r *sessionRepository) readAll(ctx context.Context) (map[string]json.RawMessage, error) {
	var sessions map[string]json.RawMessage
	found, err := r.store.Get(ctx, store.KeyCurrentUser, &sessions)
	if err != nil {
		return nil, err
	}
	if !found || sessions == nil {
		sessions = map[string]json.RawMessage{}
	}
	return sessions, nil
}

func sealSession(u User) (json.RawMessage, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	if !config.CryptoEnabled() {
		return raw, nil
	}
	sealed, err := config.Encrypt(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt session: %w", err)
	}
	return json.Marshal(sealed)
}

func openSession(entry json.RawMessage) (*User, error) {
	raw := entry
	if len(raw) > 0 && raw[0] == '"' {
		var sealed string
		if err := json.Unmarshal(raw, &sealed); err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrCorrupted, err)
		}
		plain, err := config.Decrypt(sealed)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrCorrupted, err)
		}
		raw = json.RawMessage(plain)
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrCorrupted, err)
	}
	return &u, nil
}
