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
	"fmt"

	"github.com/caarlos0/env/v11"

	"dirpx.dev/alx/apis"
)

// Env is the environment form of the engine configuration.
type Env struct {
	CacheCapacity    int    `env:"ALX_CACHE_CAPACITY"    envDefault:"10000"`
	EvictionPercent  int    `env:"ALX_EVICTION_PERCENT"  envDefault:"10"`
	LinearThreshold  int    `env:"ALX_LINEAR_THRESHOLD"  envDefault:"100"`
	MinimalThreshold int    `env:"ALX_MINIMAL_THRESHOLD" envDefault:"10"`
	MinimalDivisor   int    `env:"ALX_MINIMAL_DIVISOR"   envDefault:"10"`
	Manifest         string `env:"ALX_MANIFEST"`
}

// Config converts e to a sanitized apis.Config.
func (e Env) Config() apis.Config {
	return Sanitize(apis.Config{
		CacheCapacity:    e.CacheCapacity,
		EvictionPercent:  e.EvictionPercent,
		LinearThreshold:  e.LinearThreshold,
		MinimalThreshold: e.MinimalThreshold,
		MinimalDivisor:   e.MinimalDivisor,
	})
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// FromEnv returns the engine configuration from the process environment,
// falling back to DefaultConfig when the environment cannot be parsed.
func FromEnv() apis.Config {
	e, err := LoadEnv()
	if err != nil {
		return DefaultConfig()
	}
	return e.Config()
}
