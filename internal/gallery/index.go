package gallery

import (
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// ImageExt is the only file extension indexed. The match is exact and
// case-sensitive.
const ImageExt = ".jpg"

// DefaultCategories are the sub-directories created under a new image root.
var DefaultCategories = []string{"pc", "mp"}

// Index is an immutable, ordered list of image paths rooted at one directory.
// It is safe for concurrent use.
type Index struct {
	fs      afero.Fs
	root    string
	entries []string
}

// NewIndex returns an Index over the given entries. The slice is copied.
func NewIndex(fs afero.Fs, root string, entries []string) *Index {
	return &Index{
		fs:      fs,
		root:    root,
		entries: slices.Clone(entries),
	}
}

// Root returns the directory the index was built from.
func (idx *Index) Root() string {
	return idx.root
}

// Len returns the number of indexed images.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns a copy of the indexed paths in walk order.
func (idx *Index) Entries() []string {
	return slices.Clone(idx.entries)
}

// All yields the indexed paths in walk order without copying them.
func (idx *Index) All() iter.Seq[string] {
	return slices.Values(idx.entries)
}

// At returns the i-th indexed path. It panics if i is out of range.
func (idx *Index) At(i int) string {
	return idx.entries[i]
}

// ReadImage returns the full contents of an indexed image. Failures wrap
// ErrFileRead.
func (idx *Index) ReadImage(path string) ([]byte, error) {
	data, err := afero.ReadFile(idx.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	return data, nil
}

// Bootstrap creates the image root and its default category directories if
// the root does not exist yet. It reports whether anything was created.
// An existing root is left untouched.
func Bootstrap(fs afero.Fs, root string) (bool, error) {
	exists, err := afero.Exists(fs, root)
	if err != nil {
		return false, fmt.Errorf("%w: stat %s: %v", ErrIndex, root, err)
	}
	if exists {
		return false, nil
	}

	for _, category := range DefaultCategories {
		dir := filepath.Join(root, category)
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("%w: create %s: %v", ErrIndex, dir, err)
		}
	}
	return true, nil
}

// Build walks root recursively and indexes every regular file whose
// extension is exactly ImageExt. Symlinks are indexed when they resolve to a
// regular file; directory symlinks below root are neither indexed nor
// descended. A root that is itself a symlink to a directory is followed.
func Build(fs afero.Fs, root string) (*Index, error) {
	isDir, err := afero.IsDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndex, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrIndex, root)
	}

	walkRoot, err := resolveRoot(fs, root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndex, err)
	}

	var entries []string
	err = afero.Walk(fs, walkRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if filepath.Ext(path) != ImageExt {
			return nil
		}
		if isRegularFile(fs, path, info) {
			entries = append(entries, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walk %s: %v", ErrIndex, root, err)
	}

	return &Index{
		fs:      fs,
		root:    root,
		entries: entries,
	}, nil
}

// Load applies the Bootstrap policy and then builds the index. A freshly
// bootstrapped root yields an empty index.
func Load(fs afero.Fs, root string, logger *slog.Logger) (*Index, error) {
	created, err := Bootstrap(fs, root)
	if err != nil {
		return nil, err
	}
	if created {
		logger.Info("image root not found, created default layout",
			"image_root", root,
			"categories", DefaultCategories)
		return NewIndex(fs, root, nil), nil
	}

	return Build(fs, root)
}

// resolveRoot returns the path to hand to afero.Walk. Walk lstats its root,
// so a symlinked root gets a trailing separator, which makes the stat follow
// the link while the joined child paths stay under root.
func resolveRoot(fs afero.Fs, root string) (string, error) {
	lstater, ok := fs.(afero.Lstater)
	if !ok {
		return root, nil
	}

	info, _, err := lstater.LstatIfPossible(root)
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return root, nil
	}
	return root + string(filepath.Separator), nil
}

func isRegularFile(fs afero.Fs, path string, info os.FileInfo) bool {
	mode := info.Mode()
	if mode.IsRegular() {
		return true
	}
	if mode&os.ModeSymlink == 0 {
		return false
	}

	target, err := fs.Stat(path)
	return err == nil && target.Mode().IsRegular()
}
