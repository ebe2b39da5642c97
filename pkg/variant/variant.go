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
	"io"
	"os"
	"slices"

	"github.com/go-git/go-billy/v5"

	"github.com/NVIDIA/safevul/pkg/errors"
)

// maxDepth bounds recursion through symlinked directory cycles.
const maxDepth = 64

// Create copies the contents of dir into dir/<name> for every name. Entries
// named like any variant are skipped at the top level of dir.
func Create(fs billy.Filesystem, dir string, names ...string) error {
	for _, name := range names {
		if err := CopyInto(fs, dir, fs.Join(dir, name), names...); err != nil {
			return err
		}
	}
	return nil
}

// CopyInto merges the contents of src into dst, creating dst when needed.
// Top-level entries of src whose name is in skip are ignored.
func CopyInto(fs billy.Filesystem, src, dst string, skip ...string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to stat source", err,
			map[string]any{"path": src})
	}
	if !info.IsDir() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "source is not a directory",
			map[string]any{"path": src})
	}
	return copyDir(fs, src, dst, info.Mode().Perm(), skip, 0)
}

func copyDir(fs billy.Filesystem, src, dst string, perm os.FileMode, skip []string, depth int) error {
	if depth > maxDepth {
		return errors.NewWithContext(errors.ErrCodeIO, "directory nesting too deep",
			map[string]any{"path": src})
	}
	if err := fs.MkdirAll(dst, perm|0o700); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to create directory", err,
			map[string]any{"path": dst})
	}

	entries, err := fs.ReadDir(src)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to read directory", err,
			map[string]any{"path": src})
	}

	for _, entry := range entries {
		if depth == 0 && slices.Contains(skip, entry.Name()) {
			continue
		}
		from := fs.Join(src, entry.Name())
		to := fs.Join(dst, entry.Name())

		// ReadDir does not follow links
		info, err := fs.Stat(from)
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeIO, "failed to stat entry", err,
				map[string]any{"path": from})
		}

		if info.IsDir() {
			err = copyDir(fs, from, to, info.Mode().Perm(), nil, depth+1)
		} else {
			err = copyFile(fs, from, to, info.Mode().Perm())
		}
		if err != nil {
			return err
		}
	}

	return chmod(fs, dst, perm|0o700)
}

func copyFile(fs billy.Filesystem, src, dst string, perm os.FileMode) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to open file", err,
			map[string]any{"path": src})
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to create file", err,
			map[string]any{"path": dst})
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to copy file", err,
			map[string]any{"source": src, "destination": dst})
	}
	if err := out.Close(); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to close file", err,
			map[string]any{"path": dst})
	}

	// OpenFile only applies perm to new files
	return chmod(fs, dst, perm)
}

func chmod(fs billy.Filesystem, path string, perm os.FileMode) error {
	ch, ok := fs.(billy.Change)
	if !ok {
		return nil
	}
	if err := ch.Chmod(path, perm); err != nil {
		return errors.WrapWithContext(errors.ErrCodeIO, "failed to set permissions", err,
			map[string]any{"path": path})
	}
	return nil
}
