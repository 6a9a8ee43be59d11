package storage

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

// KVStore is a string-keyed store of arbitrary values.
type KVStore interface {
	GetOrPut(key string, value interface{}) (actual interface{}, loaded bool)
	Del(key string) error
	For(func(key string, value interface{}) error) error
	Len() int
}

// -----------------------------------------------------------------------------
// BasicKV

// BasicKV is a map-backed KVStore. It is not safe for concurrent use.
type BasicKV struct {
	store map[string]interface{}
}

func NewBasicKV() *BasicKV {
	return &BasicKV{
		store: make(map[string]interface{}),
	}
}

// GetOrPut returns the value stored under key if any, otherwise it stores
// value and returns it. loaded tells which case happened.
func (kv *BasicKV) GetOrPut(key string, value interface{}) (actual interface{}, loaded bool) {
	if v, ok := kv.store[key]; ok {
		return v, true
	}
	kv.store[key] = value
	return value, false
}

func (kv *BasicKV) Del(key string) error {
	delete(kv.store, key)
	return nil
}

// For calls action on every entry in ascending key order and stops at the
// first error.
func (kv *BasicKV) For(action func(key string, value interface{}) error) error {
	sorted := make([]string, 0, len(kv.store))
	for k := range kv.store {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, k := range sorted {
		err := action(k, kv.store[k])
		if err != nil {
			return err
		}
	}
	return nil
}

func (kv *BasicKV) Len() int {
	return len(kv.store)
}

// -----------------------------------------------------------------------------
// SafeKV

// SafeKV implements a thread-safe KVStore on top of BasicKV.
type SafeKV struct {
	*sync.RWMutex
	kv *BasicKV
}

func NewSafeKV() *SafeKV {
	return &SafeKV{&sync.RWMutex{}, NewBasicKV()}
}

func (s *SafeKV) GetOrPut(key string, value interface{}) (actual interface{}, loaded bool) {
	s.Lock()
	defer s.Unlock()
	return s.kv.GetOrPut(key, value)
}

func (s *SafeKV) Del(key string) error {
	s.Lock()
	defer s.Unlock()
	return s.kv.Del(key)
}

// For holds the read lock during the whole iteration; action must not
// modify the store.
func (s *SafeKV) For(action func(key string, value interface{}) error) error {
	s.RLock()
	defer s.RUnlock()
	return s.kv.For(action)
}

func (s *SafeKV) Len() int {
	s.RLock()
	defer s.RUnlock()
	return s.kv.Len()
}

// -----------------------------------------------------------------------------
// Digest

// Digest returns the hex Keccak-256 digest of value's JSON encoding.
func Digest(value interface{}) (string, error) {
	bytes, err := json.Marshal(value)
	if err != nil {
		return "", xerrors.Errorf("failed to encode value: %w", err)
	}
	return crypto.Keccak256Hash(bytes).Hex(), nil
}
