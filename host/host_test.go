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

package host_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/alx/apis"
	"dirpx.dev/alx/host"
	"dirpx.dev/alx/resolver"
	"dirpx.dev/alx/validate"
)

// recorder is a Loader that records requested paths.
type recorder struct {
	paths []string
	ok    map[string]bool
}

func (r *recorder) Load(_ context.Context, path string) (string, error) {
	r.paths = append(r.paths, path)
	if r.ok != nil && !r.ok[path] {
		return "", fs.ErrNotExist
	}
	return "module:" + path, nil
}

func TestHook_DelegatesResolvedPath(t *testing.T) {
	e := resolver.New()
	require.NoError(t, e.Register("@users", apis.Static("./routes/users")))
	rec := &recorder{}
	h := host.NewHook[string](e, rec)

	got, err := h.Load(context.Background(), "main.js", "@users/list")
	require.NoError(t, err)
	assert.Equal(t, "module:./routes/users/list", got)

	got, err = h.Load(context.Background(), "main.js", "./local")
	require.NoError(t, err)
	assert.Equal(t, "module:./local", got)
	assert.Equal(t, []string{"./routes/users/list", "./local"}, rec.paths)
}

func TestHook_ResolutionErrorSkipsLoader(t *testing.T) {
	e := resolver.New()
	require.NoError(t, e.Register("@bad", apis.Static("/app/../etc")))
	rec := &recorder{}
	h := host.NewHook[string](e, rec)

	_, err := h.Load(context.Background(), "main.js", "@bad/passwd")
	assert.ErrorIs(t, err, validate.ErrRejectedTarget)
	assert.Empty(t, rec.paths)
}

func TestHook_SearchDirectories(t *testing.T) {
	e := resolver.New()
	require.NoError(t, e.AddDirectory("/srv"))
	require.NoError(t, e.AddDirectory("/srv/lib"))
	h := host.NewHook[string](e, &recorder{})

	assert.Equal(t, []string{"/srv/lib/lodash", "/srv/lodash"}, h.Candidates("lodash"))
	assert.Empty(t, h.Candidates("./lodash"))
	assert.Empty(t, h.Candidates("/abs/lodash"))
	assert.Empty(t, h.Candidates(""))

	rec := &recorder{ok: map[string]bool{"/srv/lodash": true}}
	h = host.NewHook[string](e, rec)
	got, err := h.Load(context.Background(), "main.js", "lodash")
	require.NoError(t, err)
	assert.Equal(t, "module:/srv/lodash", got)
	assert.Equal(t, []string{"/srv/lib/lodash", "/srv/lodash"}, rec.paths)
}

func TestHook_FallsBackToRequest(t *testing.T) {
	e := resolver.New()
	require.NoError(t, e.AddDirectory("/srv"))
	rec := &recorder{ok: map[string]bool{"lodash": true}}
	h := host.NewHook[string](e, rec)

	got, err := h.Load(context.Background(), "main.js", "lodash")
	require.NoError(t, err)
	assert.Equal(t, "module:lodash", got)
}

func TestHook_LoaderErrorStopsSearch(t *testing.T) {
	boom := errors.New("boom")
	e := resolver.New()
	require.NoError(t, e.AddDirectory("/srv"))
	h := host.NewHook[string](e, host.LoaderFunc[string](func(context.Context, string) (string, error) {
		return "", boom
	}))

	_, err := h.Load(context.Background(), "main.js", "lodash")
	assert.ErrorIs(t, err, boom)
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "user.js"), []byte("user"), 0o600))

	e := resolver.New()
	require.NoError(t, e.Register("@models", apis.Static(filepath.Join(dir, "models"))))
	h := host.NewHook(e, host.NewFileLoader())

	got, err := h.Load(context.Background(), "main.js", "@models/user.js")
	require.NoError(t, err)
	assert.Equal(t, []byte("user"), got)

	_, err = h.Load(context.Background(), "main.js", "@models/none.js")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
