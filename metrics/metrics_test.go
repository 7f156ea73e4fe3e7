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

package metrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/kind"
	"dirpx.dev/alx/metrics"
	"dirpx.dev/alx/resolver"
)

type fixed apis.Stats

func (f fixed) Stats() apis.Stats { return apis.Stats(f) }

func TestCollector_Values(t *testing.T) {
	c := metrics.NewCollector(fixed{
		ID:             "e1",
		AliasCount:     2,
		DirectoryCount: 1,
		CacheSize:      3,
		CacheCapacity:  1000,
		ActiveStrategy: kind.Linear,
		Minimal:        true,
		CacheHits:      4,
		CacheMisses:    3,
		Matches:        3,
		Rebuilds:       2,
		Duplicates:     1,
	}, "alx")

	expected := `
# HELP alx_engine_aliases Number of registered aliases.
# TYPE alx_engine_aliases gauge
alx_engine_aliases{engine="e1"} 2
# HELP alx_engine_active_strategy Active matching strategy, 1 for the active one.
# TYPE alx_engine_active_strategy gauge
alx_engine_active_strategy{engine="e1",strategy="Linear"} 1
alx_engine_active_strategy{engine="e1",strategy="None"} 0
alx_engine_active_strategy{engine="e1",strategy="Trie"} 0
# HELP alx_engine_cache_hits_total Resolutions served from the cache.
# TYPE alx_engine_cache_hits_total counter
alx_engine_cache_hits_total{engine="e1"} 4
# HELP alx_engine_rebuilds_total Matcher rebuilds.
# TYPE alx_engine_rebuilds_total counter
alx_engine_rebuilds_total{engine="e1"} 2
# HELP alx_engine_duplicates_total Aliases overwritten by a later registration.
# TYPE alx_engine_duplicates_total counter
alx_engine_duplicates_total{engine="e1"} 1
# HELP alx_engine_minimal_mode 1 when minimal mode is active.
# TYPE alx_engine_minimal_mode gauge
alx_engine_minimal_mode{engine="e1"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"alx_engine_aliases",
		"alx_engine_active_strategy",
		"alx_engine_cache_hits_total",
		"alx_engine_duplicates_total",
		"alx_engine_rebuilds_total",
		"alx_engine_minimal_mode",
	))
	assert.Equal(t, 15, testutil.CollectAndCount(c))
}

func TestCollector_LiveEngine(t *testing.T) {
	e := resolver.New(resolver.WithID("live"))
	require.NoError(t, e.Register("@a", apis.Static("/a")))
	_, err := e.Resolve(context.Background(), "main", "@a/x")
	require.NoError(t, err)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(metrics.NewCollector(e, "alx")))

	expected := `
# HELP alx_engine_matches_total Matcher invocations.
# TYPE alx_engine_matches_total counter
alx_engine_matches_total{engine="live"} 1
# HELP alx_engine_cache_entries Number of cached resolutions.
# TYPE alx_engine_cache_entries gauge
alx_engine_cache_entries{engine="live"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"alx_engine_matches_total", "alx_engine_cache_entries"))
}
