// Package filesystem lists image files under a directory.
package filesystem

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/taigrr/gallery-mcp/internal/mediatype"
	"github.com/taigrr/gallery-mcp/internal/types"
)

// MaxDepth is the deepest level visited below the listed directory. The
// directory itself is depth 0 and contributes no results.
const MaxDepth = 3

const opListDirectory = "list directory"

// Service lists image files on the local filesystem.
type Service struct {
	allowedRoots []string
}

// New creates a new Service. A nil config or an empty root list leaves
// every path readable.
func New(config *types.RootFilterConfig) *Service {
	s := &Service{}
	if config == nil {
		return s
	}
	for _, root := range config.AllowedRoots {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		abs, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		s.allowedRoots = append(s.allowedRoots, filepath.Clean(abs))
	}
	return s
}

// ResolvePath makes path absolute and checks it against the allowed roots.
func (s *Service) ResolvePath(op, path string) (string, error) {
	if path == "" {
		return "", types.NewError(types.KindNotFound, op, path, nil)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", types.NewError(types.KindIO, op, path, err)
	}

	if len(s.allowedRoots) == 0 {
		return absPath, nil
	}

	for _, root := range s.allowedRoots {
		relPath, err := filepath.Rel(root, absPath)
		if err != nil {
			continue
		}
		if relPath != ".." && !strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
			return absPath, nil
		}
	}

	return "", types.NewError(types.KindAccessDenied, op, path, fmt.Errorf("outside allowed roots"))
}

// AllowedRoots returns the configured roots, absolute and cleaned.
func (s *Service) AllowedRoots() []string {
	return slices.Clone(s.allowedRoots)
}

// entry pairs a sort key with the path it was found at.
type entry struct {
	key  string // lowercased base name
	path string
}

// ListImages returns the absolute paths of image files at depths 1 through
// MaxDepth below dir, ordered by lowercased file name and then by path.
// Any error met while walking fails the whole call.
func (s *Service) ListImages(dir string) (types.DirectoryListing, error) {
	root, err := s.ResolvePath(opListDirectory, dir)
	if err != nil {
		return types.DirectoryListing{}, err
	}

	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.DirectoryListing{}, types.NewError(types.KindNotFound, opListDirectory, dir, nil)
		}
		return types.DirectoryListing{}, types.NewError(types.KindIO, opListDirectory, dir, err)
	}

	// WalkDir does not follow a symlinked root; a trailing separator makes
	// the initial lstat resolve it while child paths stay under root.
	walkRoot := root
	if linfo, err := os.Lstat(root); err == nil && info.IsDir() && linfo.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	var found []entry
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return types.NewError(types.KindIO, opListDirectory, path, walkErr)
		}

		if path == walkRoot {
			return nil
		}

		if d.IsDir() {
			if depth(root, path) >= MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !mediatype.IsImageFile(d.Name()) {
			return nil
		}

		regular, err := isRegularFile(path, d)
		if err != nil {
			return types.NewError(types.KindIO, opListDirectory, path, err)
		}
		if regular {
			found = append(found, entry{key: strings.ToLower(d.Name()), path: path})
		}
		return nil
	})
	if err != nil {
		return types.DirectoryListing{}, err
	}

	slices.SortStableFunc(found, func(a, b entry) int {
		return cmp.Or(strings.Compare(a.key, b.key), strings.Compare(a.path, b.path))
	})

	paths := make([]string, len(found))
	for i, e := range found {
		paths[i] = e.path
	}

	return types.DirectoryListing{Root: root, Paths: paths}, nil
}

// depth counts the path components of path below root.
func depth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// isRegularFile reports whether d is a regular file, following a symlink
// to its target. Dangling links are not files.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type()&fs.ModeSymlink == 0 {
		return d.Type().IsRegular(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
