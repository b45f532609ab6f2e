// Package storage persists the channel registry between runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for registry operations.
var (
	// ErrNoChannels indicates the registry file holds no usable entries.
	ErrNoChannels = errors.New("storage: no channels in registry")
	// ErrRegistryCorrupt indicates the registry file could not be parsed.
	ErrRegistryCorrupt = errors.New("storage: registry file corrupt")
)

// StorageError wraps registry errors with operation context.
type StorageError struct {
	// Op is the operation that failed ("load", "save").
	Op string
	// Path is the registry file path.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Channel is one registry entry. ChannelID may be empty until first
// resolution; resolved IDs are written back so later runs skip the lookup.
type Channel struct {
	Name      string `json:"name"`
	ChannelID string `json:"channel_id"`
}

// registryFile is the on-disk JSON shape.
type registryFile struct {
	Channels []Channel `json:"channels"`
}

// Registry is the list of channels a batch run collects, backed by a JSON
// file.
type Registry struct {
	path     string
	Channels []Channel
}

// LoadRegistry reads a channel registry from path. Entries without a name
// are dropped; an empty result is an error.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}

	var file registryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: ErrRegistryCorrupt}
	}

	r := &Registry{path: path}
	for _, ch := range file.Channels {
		ch.Name = strings.TrimSpace(ch.Name)
		ch.ChannelID = strings.TrimSpace(ch.ChannelID)
		if ch.Name == "" {
			continue
		}
		r.Channels = append(r.Channels, ch)
	}
	if len(r.Channels) == 0 {
		return nil, &StorageError{Op: "load", Path: path, Err: ErrNoChannels}
	}
	return r, nil
}

// SetChannelID records a resolved channel ID. It reports whether the
// registry changed.
func (r *Registry) SetChannelID(name, channelID string) bool {
	for i := range r.Channels {
		if r.Channels[i].Name == name && r.Channels[i].ChannelID != channelID {
			r.Channels[i].ChannelID = channelID
			return true
		}
	}
	return false
}

// Save writes the registry back to its file atomically.
func (r *Registry) Save() error {
	writer, err := NewAtomicWriter(r.path)
	if err != nil {
		return &StorageError{Op: "save", Path: r.path, Err: err}
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(registryFile{Channels: r.Channels}); err != nil {
		writer.Abort()
		return &StorageError{Op: "save", Path: r.path, Err: err}
	}
	if err := writer.Commit(); err != nil {
		return &StorageError{Op: "save", Path: r.path, Err: err}
	}
	return nil
}
