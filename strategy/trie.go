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

package strategy

import (
	"dirpx.dev/alx/apis"
)

// NewTrie builds a compressed prefix tree holding entries.
func NewTrie(entries []apis.Entry) *Trie {
	t := &Trie{root: &node{}}
	for _, e := range entries {
		t.Insert(e.Prefix, e.Target)
	}
	return t
}

// Trie is a radix tree over alias prefixes. Edges carry multi-byte labels and
// no two children of a node start with the same byte.
//
// Trie is not safe for concurrent mutation; Find on a tree that is no longer
// mutated is safe for concurrent use.
type Trie struct {
	root *node
	size int
}

// node is a trie vertex. prefix and target are set on terminal nodes only.
type node struct {
	label    string
	children map[byte]*node
	terminal bool
	prefix   string
	target   apis.Target
}

// Ensure Trie implements apis.Matcher.
var _ apis.Matcher = (*Trie)(nil)

// Insert adds prefix, splitting an edge when prefix diverges inside it.
// Inserting an existing prefix replaces its target. Empty prefixes are ignored.
func (t *Trie) Insert(prefix string, target apis.Target) {
	if prefix == "" {
		return
	}
	n := t.root
	rest := prefix
	for {
		if rest == "" {
			if !n.terminal {
				t.size++
			}
			n.terminal, n.prefix, n.target = true, prefix, target
			return
		}

		child := n.child(rest[0])
		if child == nil {
			n.attach(t.leaf(rest, prefix, target))
			return
		}

		j := commonPrefix(child.label, rest)
		switch {
		case j == len(child.label):
			// Edge fully consumed: descend.
			n, rest = child, rest[j:]

		case j > 0:
			// Diverges inside the edge: split at j.
			mid := &node{label: child.label[:j]}
			child.label = child.label[j:]
			mid.attach(child)
			n.attach(mid)
			if rest[j:] == "" {
				mid.terminal, mid.prefix, mid.target = true, prefix, target
				t.size++
			} else {
				mid.attach(t.leaf(rest[j:], prefix, target))
			}
			return

		default:
			// Unreachable while children are keyed by their first byte.
			n.attach(t.leaf(rest, prefix, target))
			return
		}
	}
}

// Find returns the longest alias p such that request == p or request
// continues with a Separator right after p. Cost is O(len(request)).
func (t *Trie) Find(request string) (apis.Match, bool) {
	var best *node
	n := t.root
	i := 0
	for i < len(request) {
		child := n.child(request[i])
		if child == nil {
			break
		}
		j := commonPrefix(child.label, request[i:])
		if j < len(child.label) {
			// Partial edge: nothing below child can match. The best candidate
			// recorded so far already covers a terminal n at a boundary.
			break
		}
		i += j
		n = child
		if n.terminal && AtBoundary(request, i) {
			best = n
			if i == len(request) {
				break
			}
		}
	}
	if best == nil {
		return apis.Match{}, false
	}
	return apis.Match{Prefix: best.prefix, Target: best.target}, true
}

// Len returns the number of aliases in the tree.
func (t *Trie) Len() int {
	return t.size
}

func (t *Trie) leaf(label, prefix string, target apis.Target) *node {
	t.size++
	return &node{label: label, terminal: true, prefix: prefix, target: target}
}

func (n *node) child(b byte) *node {
	if n.children == nil {
		return nil
	}
	return n.children[b]
}

func (n *node) attach(c *node) {
	if n.children == nil {
		n.children = make(map[byte]*node, 2)
	}
	n.children[c.label[0]] = c
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b string) int {
	m := min(len(a), len(b))
	for i := 0; i < m; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return m
}
