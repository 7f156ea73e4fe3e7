/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package manifest loads alias manifests from YAML, JSON, package.json and
// HCL files.
//
// A YAML or JSON manifest has the shape
//
//	aliases:
//	  "@models": ./src/models
//	directories:
//	  - ./lib
//
// A package.json may carry the same data under "_moduleAliases" and
// "_moduleDirectories". An HCL manifest uses one block per alias:
//
//	alias "@models" {
//	  target = "./src/models"
//	}
//	directories = ["./lib"]
//
// Loading never returns a partial manifest.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/resolver"
)

var (
	// ErrManifestUnavailable is returned when the manifest cannot be read.
	ErrManifestUnavailable = errors.New("alx(manifest): manifest unavailable")
	// ErrManifestInvalid is returned when the manifest cannot be decoded or
	// contains an invalid alias or directory.
	ErrManifestInvalid = errors.New("alx(manifest): manifest invalid")
)

// Options control how a manifest is interpreted.
type Options struct {
	// ResolveRelative joins relative targets and directories with the
	// directory holding the manifest. Otherwise targets are kept verbatim.
	ResolveRelative bool
}

// Manifest is a decoded alias manifest.
type Manifest struct {
	Aliases     map[string]apis.Target
	Directories []string
	// Base is the directory holding the manifest file, empty for manifests
	// decoded from memory.
	Base string
}

// Ensure Manifest can be applied to an engine.
var _ resolver.Source = (*Manifest)(nil)

// Entries returns the aliases sorted by prefix.
func (m *Manifest) Entries() []apis.Entry {
	out := make([]apis.Entry, 0, len(m.Aliases))
	for p, t := range m.Aliases {
		out = append(out, apis.Entry{Prefix: p, Target: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Dirs returns the search directories in manifest order.
func (m *Manifest) Dirs() []string {
	return append([]string(nil), m.Directories...)
}

// Load reads the manifest at path with default options.
func Load(path string) (*Manifest, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads the manifest at path. The decoder is chosen by the
// file extension.
func LoadWithOptions(path string, opts Options) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestUnavailable, err)
	}
	m, err := Decode(data, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestUnavailable, err)
	}
	m.Base = abs
	if opts.ResolveRelative {
		m.resolveRelative()
	}
	return m, nil
}

// resolveRelative joins relative static targets and directories with Base.
func (m *Manifest) resolveRelative() {
	for p, t := range m.Aliases {
		if s, ok := t.(apis.Static); ok && !filepath.IsAbs(string(s)) {
			m.Aliases[p] = apis.Static(filepath.Join(m.Base, string(s)))
		}
	}
	for i, d := range m.Directories {
		if !filepath.IsAbs(d) {
			m.Directories[i] = filepath.Join(m.Base, d)
		}
	}
}

// Applier is the part of an engine a manifest is applied to.
type Applier interface {
	Apply(src resolver.Source) error
	Reset()
}

// Apply loads the manifest at path into e. It fails closed: when the manifest
// is unavailable or invalid e is reset and left without aliases.
func Apply(e Applier, path string, opts Options) error {
	m, err := LoadWithOptions(path, opts)
	if err != nil {
		e.Reset()
		return err
	}
	return e.Apply(m)
}
