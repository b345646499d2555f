package ports

import "context"

// FileStorage loads and saves JSON documents addressed by type (config,
// translation, offline) and name.
type FileStorage interface {
	Load(ctx context.Context, kind, name string, out any) error
	Save(ctx context.Context, kind, name string, value any) error
}
