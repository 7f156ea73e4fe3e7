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

// Package metrics exposes engine statistics as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/kind"
)

// Subsystem is the metric subsystem of every collected metric.
const Subsystem = "engine"

// StatsSource reports engine statistics.
type StatsSource interface {
	Stats() apis.Stats
}

// Collector is a prometheus.Collector reading a StatsSource on every scrape.
type Collector struct {
	src StatsSource

	aliases       *prometheus.Desc
	directories   *prometheus.Desc
	cacheEntries  *prometheus.Desc
	cacheCapacity *prometheus.Desc
	memory        *prometheus.Desc
	strategy      *prometheus.Desc
	minimal       *prometheus.Desc
	cacheHits     *prometheus.Desc
	cacheMisses   *prometheus.Desc
	evictions     *prometheus.Desc
	matches       *prometheus.Desc
	rebuilds      *prometheus.Desc
	duplicates    *prometheus.Desc
}

// Ensure Collector implements prometheus.Collector.
var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for src. Every metric carries the engine
// ID as the "engine" label.
func NewCollector(src StatsSource, namespace string) *Collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, Subsystem, name),
			help,
			append([]string{"engine"}, labels...),
			nil,
		)
	}
	return &Collector{
		src:           src,
		aliases:       desc("aliases", "Number of registered aliases."),
		directories:   desc("directories", "Number of search directories."),
		cacheEntries:  desc("cache_entries", "Number of cached resolutions."),
		cacheCapacity: desc("cache_capacity", "Current cache capacity."),
		memory:        desc("memory_bytes", "Estimated memory held by the engine."),
		strategy:      desc("active_strategy", "Active matching strategy, 1 for the active one.", "strategy"),
		minimal:       desc("minimal_mode", "1 when minimal mode is active."),
		cacheHits:     desc("cache_hits_total", "Resolutions served from the cache."),
		cacheMisses:   desc("cache_misses_total", "Resolutions not found in the cache."),
		evictions:     desc("cache_evictions_total", "Cache entries evicted."),
		matches:       desc("matches_total", "Matcher invocations."),
		rebuilds:      desc("rebuilds_total", "Matcher rebuilds."),
		duplicates:    desc("duplicates_total", "Aliases overwritten by a later registration."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.aliases, c.directories, c.cacheEntries, c.cacheCapacity, c.memory,
		c.strategy, c.minimal, c.cacheHits, c.cacheMisses, c.evictions,
		c.matches, c.rebuilds, c.duplicates,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	gauge := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, append([]string{st.ID}, labels...)...)
	}
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), st.ID)
	}

	gauge(c.aliases, float64(st.AliasCount))
	gauge(c.directories, float64(st.DirectoryCount))
	gauge(c.cacheEntries, float64(st.CacheSize))
	gauge(c.cacheCapacity, float64(st.CacheCapacity))
	gauge(c.memory, float64(st.MemoryEstimate))
	for _, k := range []kind.Kind{kind.None, kind.Linear, kind.Trie} {
		gauge(c.strategy, boolValue(st.ActiveStrategy == k), k.String())
	}
	gauge(c.minimal, boolValue(st.Minimal))

	counter(c.cacheHits, st.CacheHits)
	counter(c.cacheMisses, st.CacheMisses)
	counter(c.evictions, st.Evictions)
	counter(c.matches, st.Matches)
	counter(c.rebuilds, st.Rebuilds)
	counter(c.duplicates, st.Duplicates)
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
