// Package arena provides a thread-safe bump allocator for long-lived
// compiler data. Values are carved out of fixed-size byte chunks and stay
// valid for the arena's whole lifetime; nothing is ever freed individually.
//
// The chunks are plain byte buffers the collector does not scan, so only
// pointer-free types may be stored (the Go analogue of a bit-copyable
// constraint). Violations are caller bugs and panic.
package arena

import (
	"fmt"
	"sync"
	"unsafe"
)

// DefaultChunkSize is the chunk capacity used by New.
const DefaultChunkSize = 8 * 1024

type chunk struct {
	storage []byte
	cursor  uintptr
}

// tryAlloc carves an aligned region out of the chunk, or reports that it
// does not fit. Arithmetic overflow on oversized requests counts as "does
// not fit".
func (c *chunk) tryAlloc(size, align uintptr) (unsafe.Pointer, bool) {
	aligned := c.cursor + align - 1
	if aligned < c.cursor {
		return nil, false
	}
	aligned &^= align - 1
	end := aligned + size
	if end < aligned || end > uintptr(len(c.storage)) {
		return nil, false
	}
	c.cursor = end
	return unsafe.Pointer(&c.storage[aligned]), true
}

// Arena owns a growing list of fixed-capacity chunks. All chunk state is
// guarded by one mutex; each allocation call is atomic with respect to
// chunk mutation, so any number of goroutines may allocate concurrently.
type Arena struct {
	mu        sync.Mutex
	chunks    []*chunk
	chunkSize uintptr
}

// New creates an arena with the default chunk size.
func New() *Arena {
	return WithChunkSize(DefaultChunkSize)
}

// WithChunkSize creates an arena with the given chunk capacity in bytes.
// A non-positive size is a caller bug and panics.
func WithChunkSize(size int) *Arena {
	if size <= 0 {
		panic("arena: chunk size must be positive")
	}
	return &Arena{
		chunks:    []*chunk{{storage: make([]byte, size)}},
		chunkSize: uintptr(size),
	}
}

// allocRaw carves size bytes with the given alignment out of the current
// chunk, appending a fresh chunk when it does not fit. A request larger
// than the chunk size is a contract violation: a single value never spans
// chunks.
func (a *Arena) allocRaw(size, align uintptr) unsafe.Pointer {
	a.mu.Lock()
	defer a.mu.Unlock()

	if size > a.chunkSize {
		panic(fmt.Sprintf("arena: allocation of %d bytes exceeds chunk size of %d bytes", size, a.chunkSize))
	}

	if p, ok := a.chunks[len(a.chunks)-1].tryAlloc(size, align); ok {
		return p
	}

	fresh := &chunk{storage: make([]byte, a.chunkSize)}
	a.chunks = append(a.chunks, fresh)
	p, ok := fresh.tryAlloc(size, align)
	if !ok {
		panic("arena: fresh chunk must fit allocation within chunk size")
	}
	return p
}

// Alloc copies value into the arena and returns a reference that stays
// valid as long as the arena is alive. Zero-sized types get a valid shared
// placeholder without touching chunk storage.
func Alloc[T any](a *Arena, value T) *T {
	size := unsafe.Sizeof(value)
	if size == 0 {
		return new(T)
	}
	mustBePointerFree[T]("Alloc")

	p := (*T)(a.allocRaw(size, unsafe.Alignof(value)))
	*p = value
	return p
}

// AllocBox allocates value and wraps the reference for value-semantic use.
func AllocBox[T any](a *Arena, value T) Box[T] {
	return Box[T]{ref: Alloc(a, value)}
}

// AllocStr copies s into the arena and returns a string backed by arena
// memory. The empty string is returned as-is without allocating.
func AllocStr(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := AllocSlice(a, []byte(s))
	return unsafe.String(&b[0], len(b))
}

// AllocSlice bulk-copies items into a contiguous aligned arena region.
// Empty input yields nil without growing any chunk. Element types must be
// pointer-free.
func AllocSlice[T any](a *Arena, items []T) []T {
	if len(items) == 0 {
		return nil
	}

	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return make([]T, len(items))
	}
	mustBePointerFree[T]("AllocSlice")

	total := elemSize * uintptr(len(items))
	if total/elemSize != uintptr(len(items)) {
		panic(fmt.Sprintf("arena: slice of %d elements overflows allocation size", len(items)))
	}

	p := a.allocRaw(total, unsafe.Alignof(zero))
	out := unsafe.Slice((*T)(p), len(items))
	copy(out, items)
	return out
}
