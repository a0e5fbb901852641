package loader

import (
	"context"
	"errors"
	"fmt"
)

func (l *Loader) loadFromFS(ctx context.Context, name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("schema loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("schema loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := l.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("schema loader: %w", err)
	}
	defer f.Close()
	return l.readAll(f)
}
