package dump

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fxr-query/feature/emevd"
	"fxr-query/feature/msb"
	"fxr-query/feature/param"
	"fxr-query/feature/tae"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// Kind is one family of dumped records.
type Kind struct {
	// Dir is the folder relative to the dump root.
	Dir string
	// Suffix is the document suffix without compression.
	Suffix string
}

var (
	// KindCharacters are character animation binders.
	KindCharacters = Kind{Dir: "chr", Suffix: ".anibnd.json"}
	// KindObjects are object binders.
	KindObjects = Kind{Dir: "obj", Suffix: ".objbnd.json"}
	// KindMaps are map scenes.
	KindMaps = Kind{Dir: filepath.Join("map", "mapstudio"), Suffix: ".msb.json"}
	// KindParams are parameter tables.
	KindParams = Kind{Dir: "param", Suffix: ".param.json"}
	// KindScripts are event scripts.
	KindScripts = Kind{Dir: "event", Suffix: ".emevd.json"}
)

const zstdSuffix = ".zst"

// ObjectBinder is a dumped object binder. Only its animation binder holds
// effect references.
type ObjectBinder struct {
	Name   string      `json:"name"`
	Anibnd *tae.Binder `json:"anibnd"`
}

// Source reads dumped records below a root directory.
type Source struct {
	root   string
	logger *zap.Logger
}

// NewSource creates a source rooted at dir.
func NewSource(dir string, logger *zap.Logger) *Source {
	return &Source{root: dir, logger: logger}
}

// Root returns the dump root.
func (s *Source) Root() string {
	return s.root
}

// Files lists the documents of a kind in directory order. A missing folder
// yields no files.
func (s *Source) Files(kind Kind) ([]string, error) {
	dir := filepath.Join(s.root, kind.Dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := Stem(entry.Name(), kind); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// Stem strips the kind suffix (and compression suffix) from a file name.
// Suffix matching ignores case.
func Stem(name string, kind Kind) (string, bool) {
	lower := strings.ToLower(name)
	trimmed := strings.TrimSuffix(lower, zstdSuffix)
	if !strings.HasSuffix(trimmed, kind.Suffix) {
		return "", false
	}
	return name[:len(trimmed)-len(kind.Suffix)], true
}

// Decode reads one document into v, decompressing ".zst" files.
func Decode(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), zstdSuffix) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to open zstd stream %s: %w", path, err)
		}
		defer dec.Close()
		r = dec
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// each decodes every document of kind and hands it to fn.
func each[T any](ctx context.Context, s *Source, kind Kind, fn func(name string, v *T) error) error {
	files, err := s.Files(kind)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		var v T
		if err := Decode(path, &v); err != nil {
			s.logger.Warn("Skipping unreadable dump", zap.String("file", path), zap.Error(err))
			continue
		}

		name, _ := Stem(filepath.Base(path), kind)
		if err := fn(name, &v); err != nil {
			return err
		}
	}
	return nil
}

// Characters walks the character animation binders.
func (s *Source) Characters(ctx context.Context, fn func(name string, b *tae.Binder) error) error {
	return each(ctx, s, KindCharacters, fn)
}

// Objects walks the animation binders embedded in object binders. Object
// binders without one are skipped.
func (s *Source) Objects(ctx context.Context, fn func(name string, b *tae.Binder) error) error {
	return each(ctx, s, KindObjects, func(name string, ob *ObjectBinder) error {
		if ob.Anibnd == nil {
			return nil
		}
		return fn(name, ob.Anibnd)
	})
}

// Maps walks the map scenes.
func (s *Source) Maps(ctx context.Context, fn func(name string, m *msb.Map) error) error {
	return each(ctx, s, KindMaps, fn)
}

// Params walks the parameter tables.
func (s *Source) Params(ctx context.Context, fn func(name string, t *param.Table) error) error {
	return each(ctx, s, KindParams, fn)
}

// Scripts loads every event script keyed by file stem. A script's Name is
// set to its stem when the document left it empty.
func (s *Source) Scripts(ctx context.Context) (map[string]*emevd.Script, error) {
	scripts := make(map[string]*emevd.Script)
	err := each(ctx, s, KindScripts, func(name string, script *emevd.Script) error {
		if script.Name == "" {
			script.Name = name
		}
		scripts[name] = script
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scripts, nil
}
