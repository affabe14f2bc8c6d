package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	KeyTeachers    = "teachers"
	KeySubjects    = "subjects"
	KeyCategories  = "categories"
	KeyQuestions   = "questions"
	KeyCurrentUser = "currentUser"
)

var (
	ErrCorrupted = errors.New("stored value is not valid JSON for its collection")
	ErrEmptyKey  = errors.New("store key is empty")
)

// Store is a key/value store of JSON documents. Get reports found=false for an
// absent key; a present value that cannot be decoded into dest is ErrCorrupted.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

func decode(key string, raw []byte, dest any) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorrupted, key, err)
	}
	return nil
}

func encode(key string, value any) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	return raw, nil
}
