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

package resolver_test

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/kind"
	"dirpx.dev/alx/resolver"
)

// TestConcurrentResolveAndRegister verifies that resolutions stay correct
// while aliases are registered and strategies are switched concurrently.
func TestConcurrentResolveAndRegister(t *testing.T) {
	e := resolver.New()
	for i := 0; i < 20; i++ {
		p := fmt.Sprintf("@p%d", i)
		if err := e.Register(p, apis.Static("/t/"+p)); err != nil {
			t.Fatalf("register %s: %v", p, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	ctx := context.Background()

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				p := fmt.Sprintf("@p%d", (i+id)%20)
				res, err := e.Resolve(ctx, fmt.Sprintf("caller%d", id), p+"/file")
				if err != nil {
					t.Errorf("resolve %s: %v", p, err)
					return
				}
				if want := "/t/" + p + "/file"; res.Path != want {
					t.Errorf("resolve %s: got %q want %q", p, res.Path, want)
					return
				}
			}
		}(w)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = e.Register(fmt.Sprintf("@extra%d", i), apis.Static("/extra"))
			_ = e.Stats()
		}
	}()
	go func() {
		defer wg.Done()
		kinds := []kind.Kind{kind.Linear, kind.Trie, kind.Auto}
		for i := 0; i < 300; i++ {
			if err := e.ForceStrategy(kinds[i%len(kinds)]); err != nil {
				t.Errorf("force: %v", err)
				return
			}
		}
	}()

	wg.Wait()

	if got := len(e.Aliases()); got != 220 {
		t.Fatalf("alias count: got %d want 220", got)
	}
}
