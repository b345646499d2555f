// Package storage keeps JSON documents on disk, addressed by type (config,
// translation, offline) and name: <root>/<type>/<name>.json.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/bnema/bibbox-fbs/internal/bus"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/ports"
)

const (
	storeDirMode    = 0o700
	storeFileMode   = 0o600
	tempFilePattern = ".storage-*.json.tmp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNotFound = errors.New("document not found")

type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.FileStorage = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Load(ctx context.Context, kind, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathFor(kind, name)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s/%s: %w", kind, name, ErrNotFound)
		}
		return fmt.Errorf("read %s/%s: %w", kind, name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", kind, name, err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, kind, name string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathFor(kind, name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", kind, name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}

	if err := tempFile.Chmod(storeFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp storage file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}
	cleanup = false

	return nil
}

func (s *Store) pathFor(kind, name string) (string, error) {
	for _, part := range []string{kind, name} {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" || trimmed == "." || trimmed == ".." || strings.ContainsAny(trimmed, `/\`) {
			return "", fmt.Errorf("invalid storage key %q/%q", kind, name)
		}
	}

	return filepath.Join(s.root, kind, name+".json"), nil
}

// Register serves storage.load and storage.save on b. Loads reply with the
// decoded document, saves with the stored value.
func (s *Store) Register(b *bus.Bus) func() {
	offLoad := b.Handle(ports.ChannelStorageLoad, func(ctx context.Context, env bus.Envelope) (any, error) {
		req, err := bus.PayloadAs[domain.StorageRequest](env)
		if err != nil {
			return nil, err
		}

		var doc any
		if err := s.Load(ctx, req.Type, req.Name, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
	offSave := b.Handle(ports.ChannelStorageSave, func(ctx context.Context, env bus.Envelope) (any, error) {
		req, err := bus.PayloadAs[domain.StorageRequest](env)
		if err != nil {
			return nil, err
		}

		if err := s.Save(ctx, req.Type, req.Name, req.Value); err != nil {
			return nil, err
		}
		return req.Value, nil
	})

	return func() {
		offLoad()
		offSave()
	}
}
