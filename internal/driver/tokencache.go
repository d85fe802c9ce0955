package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"slopcc/internal/source"
	"slopcc/internal/token"
)

// Current schema version - increment when tokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache stores lexed token streams on disk keyed by the SHA-256 of
// the file content, so re-runs over unchanged files skip the lexer.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// tokenPayload is the on-disk shape. Spans are stored as flat offset
// pairs; the file ID is supplied on load since it is run-local.
type tokenPayload struct {
	Schema uint16
	Kinds  []uint16
	Starts []uint32
	Ends   []uint32
}

// OpenTokenCache initializes a token cache at the standard location
// ($XDG_CACHE_HOME/<app>/tokens, falling back to ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "tokens")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// NewTokenCache opens a cache rooted at an explicit directory.
func NewTokenCache(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Store serializes a token stream to disk. Write errors are swallowed:
// the cache is an optimization and must never fail a compilation.
func (c *TokenCache) Store(key [32]byte, tokens []token.Token) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := tokenPayload{
		Schema: tokenCacheSchemaVersion,
		Kinds:  make([]uint16, len(tokens)),
		Starts: make([]uint32, len(tokens)),
		Ends:   make([]uint32, len(tokens)),
	}
	for i, tok := range tokens {
		payload.Kinds[i] = uint16(tok.Kind)
		payload.Starts[i] = uint32(tok.Span.Start)
		payload.Ends[i] = uint32(tok.Span.End)
	}

	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Atomic replace so a concurrent reader never sees a half-written file.
	_ = os.Rename(f.Name(), p)
}

// Load reads a cached token stream, rebinding the spans to the given
// file ID. Missing or corrupt entries report a miss.
func (c *TokenCache) Load(key [32]byte, id source.FileID) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload tokenPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false
	}
	if len(payload.Starts) != len(payload.Kinds) || len(payload.Ends) != len(payload.Kinds) {
		return nil, false
	}

	tokens := make([]token.Token, len(payload.Kinds))
	for i := range payload.Kinds {
		tokens[i] = token.Token{
			Kind: token.Kind(payload.Kinds[i]),
			Span: source.Span{
				File:  id,
				Start: source.BytePos(payload.Starts[i]),
				End:   source.BytePos(payload.Ends[i]),
			},
		}
	}
	return tokens, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
