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

package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"sigs.k8s.io/yaml"

	"dirpx.dev/alx/apis"
)

// document is the YAML/JSON form. The underscore fields are the package.json
// spelling of the same data.
type document struct {
	Aliases           map[string]string `json:"aliases,omitempty"`
	Directories       []string          `json:"directories,omitempty"`
	ModuleAliases     map[string]string `json:"_moduleAliases,omitempty"`
	ModuleDirectories []string          `json:"_moduleDirectories,omitempty"`
}

// hclDocument is the HCL form.
type hclDocument struct {
	Aliases     []*hclAlias `hcl:"alias,block"`
	Directories []string    `hcl:"directories,optional"`
}

type hclAlias struct {
	Prefix string `hcl:"prefix,label"`
	Target string `hcl:"target"`
}

// Decode decodes data. name selects the format by extension: ".hcl" for HCL,
// anything else is decoded as YAML, which includes JSON.
func Decode(data []byte, name string) (*Manifest, error) {
	if strings.EqualFold(filepath.Ext(name), ".hcl") {
		return decodeHCL(data, name)
	}
	return decodeYAML(data, name)
}

func decodeYAML(data []byte, name string) (*Manifest, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrManifestInvalid, name, err)
	}

	b := newBuilder(name)
	for p, t := range doc.ModuleAliases {
		b.alias(p, t)
	}
	for p, t := range doc.Aliases {
		b.alias(p, t)
	}
	b.dirs(doc.ModuleDirectories)
	b.dirs(doc.Directories)
	return b.done()
}

func decodeHCL(data []byte, name string) (*Manifest, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrManifestInvalid, name, diags)
	}

	var doc hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrManifestInvalid, name, diags)
	}

	b := newBuilder(name)
	seen := make(map[string]struct{}, len(doc.Aliases))
	for _, a := range doc.Aliases {
		if _, dup := seen[a.Prefix]; dup {
			b.fail(fmt.Errorf("%w: %s: alias %q declared twice", ErrManifestInvalid, name, a.Prefix))
			continue
		}
		seen[a.Prefix] = struct{}{}
		b.alias(a.Prefix, a.Target)
	}
	b.dirs(doc.Directories)
	return b.done()
}

// builder accumulates a manifest and keeps the first validation error.
type builder struct {
	name string
	m    *Manifest
	err  error
}

func newBuilder(name string) *builder {
	return &builder{name: name, m: &Manifest{Aliases: map[string]apis.Target{}}}
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *builder) alias(prefix, target string) {
	switch {
	case prefix == "":
		b.fail(fmt.Errorf("%w: %s: empty alias prefix", ErrManifestInvalid, b.name))
	case target == "":
		b.fail(fmt.Errorf("%w: %s: alias %q has an empty target", ErrManifestInvalid, b.name, prefix))
	default:
		b.m.Aliases[prefix] = apis.Static(target)
	}
}

func (b *builder) dirs(dirs []string) {
	for _, d := range dirs {
		if d == "" {
			b.fail(fmt.Errorf("%w: %s: empty directory", ErrManifestInvalid, b.name))
			continue
		}
		b.m.Directories = append(b.m.Directories, d)
	}
}

func (b *builder) done() (*Manifest, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.m, nil
}
