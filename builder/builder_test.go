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

package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/builder"
	"dirpx.dev/alx/config"
	"dirpx.dev/alx/kind"
	"dirpx.dev/alx/registry"
)

func fill(t *testing.T, reg *registry.Registry, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("@a%d", i), apis.Static(fmt.Sprintf("/t%d", i))))
	}
}

func TestBuildMatcher(t *testing.T) {
	b := builder.New()
	es := []apis.Entry{{Prefix: "@a", Target: apis.Static("/a")}}

	assert.Nil(t, b.BuildMatcher(kind.None, es))
	assert.Nil(t, b.BuildMatcher(kind.Auto, es))
	require.NotNil(t, b.BuildMatcher(kind.Linear, es))
	require.NotNil(t, b.BuildMatcher(kind.Trie, es))
	assert.Equal(t, 1, b.BuildMatcher(kind.Trie, es).Len())
}

func TestSelector_ThresholdSelection(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    kind.Kind
		minimal bool
	}{
		{"empty disables", 0, kind.None, true},
		{"few aliases linear minimal", 5, kind.Linear, true},
		{"minimal threshold boundary", 10, kind.Linear, false},
		{"just below linear threshold", 99, kind.Linear, false},
		{"linear threshold uses trie", 100, kind.Trie, false},
		{"many aliases trie", 250, kind.Trie, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := registry.New()
			fill(t, reg, tt.n)
			sel := builder.NewSelector(config.DefaultConfig(), nil)

			assert.True(t, sel.Ensure(reg))
			assert.Equal(t, tt.want, sel.Kind())
			assert.Equal(t, tt.minimal, sel.Minimal())
		})
	}
}

func TestSelector_MinimalSizing(t *testing.T) {
	reg := registry.New()
	fill(t, reg, 3)
	sel := builder.NewSelector(config.DefaultConfig(), nil)
	sel.Ensure(reg)

	capacity, batch := sel.Sizing()
	assert.Equal(t, 1000, capacity)
	assert.Equal(t, 100, batch)

	for i := 0; i < 20; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("@more%d", i), apis.Static("/m")))
	}
	sel.Ensure(reg)
	capacity, batch = sel.Sizing()
	assert.Equal(t, 10000, capacity)
	assert.Equal(t, 1000, batch)
}

func TestSelector_LazyRebuild(t *testing.T) {
	reg := registry.New()
	fill(t, reg, 2)
	sel := builder.NewSelector(config.DefaultConfig(), nil)

	assert.True(t, sel.Ensure(reg))
	assert.False(t, sel.Ensure(reg), "unchanged registry must not rebuild")
	assert.Equal(t, uint64(1), sel.Rebuilds())

	require.NoError(t, reg.Register("@new", apis.Static("/new")))
	assert.True(t, sel.Ensure(reg))

	m, ok := sel.Find("@new/x")
	require.True(t, ok)
	assert.Equal(t, "@new", m.Prefix)

	sel.MarkDirty()
	assert.True(t, sel.Ensure(reg))
	assert.Equal(t, uint64(3), sel.Rebuilds())
}

func TestSelector_Force(t *testing.T) {
	reg := registry.New()
	fill(t, reg, 3)
	sel := builder.NewSelector(config.DefaultConfig(), nil)

	require.NoError(t, sel.Force(kind.Trie))
	sel.Ensure(reg)
	assert.Equal(t, kind.Trie, sel.Kind())
	assert.Equal(t, kind.Trie, sel.Forced())

	require.NoError(t, sel.Force(kind.None))
	sel.Ensure(reg)
	assert.Equal(t, kind.None, sel.Kind())
	_, ok := sel.Find("@a1")
	assert.False(t, ok)

	require.NoError(t, sel.Force(kind.Auto))
	sel.Ensure(reg)
	assert.Equal(t, kind.Linear, sel.Kind())

	assert.ErrorIs(t, sel.Force(kind.Kind(17)), builder.ErrUnknownKind)
}

func TestSelector_ForcedKindOnEmptyRegistryIsNone(t *testing.T) {
	sel := builder.NewSelector(config.DefaultConfig(), nil)
	require.NoError(t, sel.Force(kind.Trie))
	sel.Ensure(registry.New())
	assert.Equal(t, kind.None, sel.Kind())
}

func TestSelector_CountsMatches(t *testing.T) {
	reg := registry.New()
	fill(t, reg, 1)
	sel := builder.NewSelector(config.DefaultConfig(), nil)

	_, _ = sel.Find("@a0")
	assert.Equal(t, uint64(0), sel.Matches(), "no matcher before Ensure")

	sel.Ensure(reg)
	_, _ = sel.Find("@a0")
	_, _ = sel.Find("@zz")
	assert.Equal(t, uint64(2), sel.Matches())

	sel.Reset()
	assert.Equal(t, uint64(0), sel.Matches())
	assert.Equal(t, kind.None, sel.Kind())
}

func TestSelector_CustomThresholds(t *testing.T) {
	reg := registry.New()
	fill(t, reg, 4)
	cfg := config.NewConfig(config.WithLinearThreshold(3), config.WithMinimalThreshold(0))
	sel := builder.NewSelector(cfg, nil)
	sel.Ensure(reg)

	assert.Equal(t, kind.Trie, sel.Kind())
	assert.False(t, sel.Minimal())
}

// stubBuilder records the kinds it was asked to build.
type stubBuilder struct {
	kinds []kind.Kind
}

func (b *stubBuilder) BuildMatcher(k kind.Kind, entries []apis.Entry) apis.Matcher {
	b.kinds = append(b.kinds, k)
	return builder.New().BuildMatcher(k, entries)
}

func TestSelector_UsesInjectedBuilder(t *testing.T) {
	reg := registry.New()
	fill(t, reg, 1)
	b := &stubBuilder{}
	sel := builder.NewSelector(config.DefaultConfig(), b)

	sel.Ensure(reg)
	require.NoError(t, sel.Force(kind.Trie))
	sel.Ensure(reg)

	assert.Equal(t, []kind.Kind{kind.Linear, kind.Trie}, b.kinds)
}
