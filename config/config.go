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

package config

import (
	"dirpx.dev/alx/apis"
)

const (
	// DefaultCacheCapacity is the cache capacity in full mode.
	DefaultCacheCapacity = 10000
	// DefaultEvictionPercent is the share of capacity evicted per batch.
	DefaultEvictionPercent = 10
	// DefaultLinearThreshold is the alias count from which the trie is used.
	DefaultLinearThreshold = 100
	// DefaultMinimalThreshold is the alias count below which minimal mode applies.
	DefaultMinimalThreshold = 10
	// DefaultMinimalDivisor shrinks cache sizing in minimal mode.
	DefaultMinimalDivisor = 10
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		CacheCapacity:    DefaultCacheCapacity,
		EvictionPercent:  DefaultEvictionPercent,
		LinearThreshold:  DefaultLinearThreshold,
		MinimalThreshold: DefaultMinimalThreshold,
		MinimalDivisor:   DefaultMinimalDivisor,
	}
}

// Sanitize replaces out-of-range values with defaults.
// A non-positive CacheCapacity is kept: it disables caching.
func Sanitize(cfg apis.Config) apis.Config {
	if cfg.EvictionPercent <= 0 || cfg.EvictionPercent > 100 {
		cfg.EvictionPercent = DefaultEvictionPercent
	}
	if cfg.LinearThreshold < 0 {
		cfg.LinearThreshold = DefaultLinearThreshold
	}
	if cfg.MinimalThreshold < 0 {
		cfg.MinimalThreshold = DefaultMinimalThreshold
	}
	if cfg.MinimalDivisor < 1 {
		cfg.MinimalDivisor = DefaultMinimalDivisor
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithCacheCapacity sets the full-mode cache capacity. Zero disables the cache.
func WithCacheCapacity(capacity int) Option {
	return func(c *apis.Config) {
		c.CacheCapacity = capacity
	}
}

// WithEvictionPercent sets the batch eviction share (1..100).
func WithEvictionPercent(percent int) Option {
	return func(c *apis.Config) {
		c.EvictionPercent = percent
	}
}

// WithLinearThreshold sets the alias count from which the trie matcher is used.
func WithLinearThreshold(n int) Option {
	return func(c *apis.Config) {
		c.LinearThreshold = n
	}
}

// WithMinimalThreshold sets the alias count below which minimal mode applies.
// Zero disables minimal mode.
func WithMinimalThreshold(n int) Option {
	return func(c *apis.Config) {
		c.MinimalThreshold = n
	}
}

// WithMinimalDivisor sets the minimal-mode shrink factor.
func WithMinimalDivisor(d int) Option {
	return func(c *apis.Config) {
		c.MinimalDivisor = d
	}
}
