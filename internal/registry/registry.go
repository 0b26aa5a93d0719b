// Package registry provides a global registry of level file codecs.
// Formats register themselves in init() functions, keyed by file extension,
// so loaders and stores can read and write levels without a hardcoded switch.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Codec reads and writes one level file format.
type Codec struct {
	// Name is a human-readable format name (e.g., "yaml").
	Name string

	// Unmarshal decodes file contents into the value pointed to by v.
	Unmarshal func(data []byte, v any) error

	// Marshal encodes v into file contents.
	Marshal func(v any) ([]byte, error)
}

// FormatInfo contains metadata about a registered extension.
type FormatInfo struct {
	Ext  string
	Name string
}

var (
	codecs = make(map[string]Codec)
	mu     sync.RWMutex
)

// normalize lowercases an extension and makes sure it starts with a dot.
func normalize(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Register adds a codec for a file extension.
// Typically called from a format's init() function.
// Panics if the extension is already registered.
func Register(ext string, c Codec) {
	mu.Lock()
	defer mu.Unlock()

	ext = normalize(ext)
	if _, exists := codecs[ext]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", ext))
	}
	codecs[ext] = c
}

// List returns all registered extensions, sorted.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(codecs))
	for ext, c := range codecs {
		result = append(result, FormatInfo{Ext: ext, Name: c.Name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Ext < result[j].Ext
	})

	return result
}

// Lookup returns the codec for an extension.
// Returns an error if the extension is not registered.
func Lookup(ext string) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := codecs[normalize(ext)]
	if !ok {
		return Codec{}, fmt.Errorf("registry: unsupported format %q", ext)
	}
	return c, nil
}

// Exists checks if a codec is registered for the extension.
func Exists(ext string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := codecs[normalize(ext)]
	return ok
}
