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

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/alx/internal/cli"
	"dirpx.dev/alx/manifest"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ALX_MANIFEST", "")
	cmd := cli.New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(p, []byte(`{
  "_moduleAliases": {"@users": "./routes/users", "@products": "./routes/products"}
}`), 0o600))
	return p
}

func TestResolve(t *testing.T) {
	out, err := run(t, "--manifest", writeManifest(t), "resolve", "@users/list", "@missing")
	require.NoError(t, err)
	assert.Equal(t, "@users/list -> ./routes/users/list\n@missing (unresolved)\n", out)
}

func TestResolve_ManifestFromEnv(t *testing.T) {
	p := writeManifest(t)
	cmd := cli.New()
	t.Setenv("ALX_MANIFEST", p)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"resolve", "@products/1"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "@products/1 -> ./routes/products/1\n", out.String())
}

func TestResolve_AliasFlagAndStrategy(t *testing.T) {
	out, err := run(t, "--alias", "@a=/x", "--alias", "@a/b=/y", "--strategy", "trie", "resolve", "@a/b/c", "@a/bc")
	require.NoError(t, err)
	assert.Equal(t, "@a/b/c -> /y/c\n@a/bc -> /x/bc\n", out)
}

func TestResolve_Errors(t *testing.T) {
	_, err := run(t, "--manifest", filepath.Join(t.TempDir(), "none.yaml"), "resolve", "@a")
	assert.ErrorIs(t, err, manifest.ErrManifestUnavailable)

	_, err = run(t, "--alias", "broken", "resolve", "@a")
	assert.Error(t, err)

	_, err = run(t, "--strategy", "btree", "resolve", "@a")
	assert.Error(t, err)

	_, err = run(t, "--alias", "@up=/app/..", "resolve", "@up/etc")
	assert.Error(t, err)

	_, err = run(t, "--logformat", "xml", "resolve", "@a")
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, err := run(t, "--manifest", writeManifest(t), "stats", "@users/a", "@users/a")
	require.NoError(t, err)
	assert.Contains(t, out, "Aliases")
	assert.Contains(t, out, "Linear")
	assert.Regexp(t, `Cache hits\s+│\s+1`, out)
	assert.Regexp(t, `Matches\s+│\s+1`, out)
}

func TestAliases(t *testing.T) {
	p := writeManifest(t)
	out, err := run(t, "--manifest", p, "aliases")
	require.NoError(t, err)
	assert.Contains(t, out, "@users")
	assert.Contains(t, out, "./routes/products")

	out, err = run(t, "--manifest", p, "aliases", "--filter", "@u*")
	require.NoError(t, err)
	assert.Contains(t, out, "@users")
	assert.NotContains(t, out, "@products")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^alx \S+\n$`, out)
}
