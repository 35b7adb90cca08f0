// Package hostsfile loads a hosts file into a queryable table.
//
// Missing or empty files are reported as a *SkipError so that callers
// can mark the checks relying on the file as skipped instead of failed.
package hostsfile

import (
	"bytes"
	"fmt"

	"github.com/projectdiscovery/etchosts/pkg/parser"
	"github.com/projectdiscovery/etchosts/pkg/table"
)

// Hosts is a parsed hosts file.
type Hosts struct {
	// Path is the file the entries were read from
	Path string

	*table.Table
}

type config struct {
	fs       FileSystem
	platform Platform
}

// Option configures how a hosts file is resolved and read.
type Option func(*config)

// WithFileSystem sets the collaborator used to read the file.
func WithFileSystem(fs FileSystem) Option {
	return func(c *config) {
		c.fs = fs
	}
}

// WithPlatform sets the collaborator used to pick the default path.
func WithPlatform(platform Platform) Option {
	return func(c *config) {
		c.platform = platform
	}
}

// New reads and parses the hosts file at path. An empty path selects
// the default hosts file of the platform.
func New(path string, opts ...Option) (*Hosts, error) {
	cfg := &config{fs: OSFileSystem{}, platform: OSPlatform{}}
	for _, opt := range opts {
		opt(cfg)
	}

	if path == "" {
		path = DefaultPath(cfg.platform)
	}

	if !cfg.fs.IsFile(path) {
		return nil, &SkipError{Path: path, Err: ErrMissingFile}
	}
	content, err := cfg.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read hosts file %s: %w", path, err)
	}
	return FromContent(path, content)
}

// FromContent parses content that was already read from path.
func FromContent(path string, content []byte) (*Hosts, error) {
	if len(content) == 0 {
		return nil, &SkipError{Path: path, Err: ErrEmptyFile}
	}

	var entries []parser.HostEntry
	err := parser.ParseReader(bytes.NewReader(content), func(entry parser.HostEntry) error {
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not parse hosts file %s: %w", path, err)
	}

	return &Hosts{Path: path, Table: table.New(entries)}, nil
}
