package fdl

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// registry memoizes parsed documents keyed by source content hash.
//
//nolint:gochecknoglobals
var registry sync.Map

// state tracks the one-time parse outcome for a source.
type state struct {
	once sync.Once
	doc  *Document
	err  error
}

// ParseCached parses src, memoizing the result by content hash so identical
// bytes parse exactly once. The returned document is shared; it is immutable,
// so sharing is safe.
func ParseCached(ctx context.Context, src []byte, opts ...Option) (*Document, error) {
	// xxh3 keeps hashing negligible next to the parse it saves.
	key := strconv.FormatUint(xxh3.Hash(src), 36)

	entry, _ := registry.LoadOrStore(key, new(state))
	st := entry.(*state)

	st.once.Do(func() {
		st.doc, st.err = Parse(ctx, src, opts...)
	})

	return st.doc, st.err
}

// LoadCached reads and parses the FDL file at path through the content-hash
// cache. Files with identical bytes share one parsed document.
func LoadCached(ctx context.Context, path string, opts ...Option) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrOpen.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	ra := readahead.NewReader(file)
	defer ra.Close()

	src, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrRead.Wrap(err).With(slog.String("path", path))
	}

	doc, err := ParseCached(ctx, src, opts...)
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	return doc, nil
}

// ClearCache removes all memoized documents. This is primarily useful for
// testing or when memory needs to be reclaimed.
func ClearCache() {
	registry.Range(func(key, _ any) bool {
		registry.Delete(key)

		return true
	})
}
