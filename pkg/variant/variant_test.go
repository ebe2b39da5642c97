// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/safevul/pkg/errors"
)

func writeFile(t *testing.T, root, rel, content string, perm os.FileMode) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	return string(data)
}

func TestCreate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "lodash/package.json", `{"name":"lodash"}`, 0o644)
	writeFile(t, root, "lodash/index.js", "require('lodash')", 0o644)
	writeFile(t, root, "lodash/lib/util.js", "module.exports = {}", 0o644)

	fs := osfs.New(root)
	require.NoError(t, Create(fs, "lodash", "Safe", "Vul"))

	for _, v := range []string{"Safe", "Vul"} {
		assert.Equal(t, `{"name":"lodash"}`, readFile(t, root, filepath.Join("lodash", v, "package.json")))
		assert.Equal(t, "require('lodash')", readFile(t, root, filepath.Join("lodash", v, "index.js")))
		assert.Equal(t, "module.exports = {}", readFile(t, root, filepath.Join("lodash", v, "lib", "util.js")))
	}

	// variants are never nested into each other
	assert.NoDirExists(t, filepath.Join(root, "lodash", "Safe", "Vul"))
	assert.NoDirExists(t, filepath.Join(root, "lodash", "Vul", "Safe"))
	assert.NoDirExists(t, filepath.Join(root, "lodash", "Safe", "Safe"))
}

func TestCreateMergesAndOverwrites(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pkg/package.json", "new", 0o644)
	writeFile(t, root, "pkg/Safe/package.json", "old", 0o644)
	writeFile(t, root, "pkg/Safe/extra.txt", "kept", 0o644)

	fs := osfs.New(root)
	require.NoError(t, Create(fs, "pkg", "Safe", "Vul"))

	assert.Equal(t, "new", readFile(t, root, "pkg/Safe/package.json"))
	assert.Equal(t, "kept", readFile(t, root, "pkg/Safe/extra.txt"))
	assert.Equal(t, "new", readFile(t, root, "pkg/Vul/package.json"))
	assert.NoFileExists(t, filepath.Join(root, "pkg", "Vul", "extra.txt"))
}

func TestCopyIntoKeepsExecutableBit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pkg/run.sh", "#!/bin/sh\n", 0o755)

	fs := osfs.New(root)
	require.NoError(t, CopyInto(fs, "pkg", "pkg/Safe", "Safe"))

	info, err := os.Stat(filepath.Join(root, "pkg", "Safe", "run.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100)
}

func TestCopyIntoFollowsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "shared/lib.js", "shared", 0o644)
	writeFile(t, root, "pkg/package.json", "{}", 0o644)
	require.NoError(t, os.Symlink(filepath.Join(root, "shared"), filepath.Join(root, "pkg", "vendor")))

	fs := osfs.New(root)
	require.NoError(t, CopyInto(fs, "pkg", "pkg/Vul", "Vul"))

	info, err := os.Lstat(filepath.Join(root, "pkg", "Vul", "vendor"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "shared", readFile(t, root, "pkg/Vul/vendor/lib.js"))
}

func TestCopyIntoErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.txt", "x", 0o644)
	fs := osfs.New(root)

	err := CopyInto(fs, "absent", "absent/Safe")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeIO, errors.CodeOf(err))

	err = CopyInto(fs, "file.txt", "copy")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestCreateInMemory(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "a/package.json", []byte("{}"), 0o644))
	require.NoError(t, util.WriteFile(fs, "a/src/index.js", []byte("x"), 0o644))

	require.NoError(t, Create(fs, "a", "Safe", "Vul"))

	data, err := util.ReadFile(fs, "a/Vul/src/index.js")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	_, err = fs.Stat("a/Safe/Vul")
	assert.True(t, os.IsNotExist(err))
}
