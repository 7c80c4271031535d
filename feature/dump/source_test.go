package dump

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fxr-query/feature/emevd"
	"fxr-query/feature/msb"
	"fxr-query/feature/param"
	"fxr-query/feature/tae"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func writeZstdJSON(t *testing.T, path string, v any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data, err := json.Marshal(v)
	require.NoError(t, err)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	require.NoError(t, os.WriteFile(path, enc.EncodeAll(data, nil), 0o644))
}

func TestStem(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		want   string
		wantOK bool
	}{
		{"c1000.anibnd.json", KindCharacters, "c1000", true},
		{"c1000.ANIBND.JSON", KindCharacters, "c1000", true},
		{"c1000.anibnd.json.zst", KindCharacters, "c1000", true},
		{"c1000.anibnd.dcx", KindCharacters, "", false},
		{"m10_00_00_00.emevd.json", KindScripts, "m10_00_00_00", true},
		{"m10_00_00_00.msb.json", KindScripts, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Stem(tt.name, tt.kind)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_MissingFolders(t *testing.T) {
	src := NewSource(t.TempDir(), zap.NewNop())

	files, err := src.Files(KindCharacters)
	require.NoError(t, err)
	assert.Empty(t, files)

	scripts, err := src.Scripts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scripts)
}

func TestSource_Characters(t *testing.T) {
	root := t.TempDir()
	binder := tae.Binder{Timelines: []tae.Timeline{{
		Name:       "a00.tae",
		Animations: []tae.Animation{{ID: 1, Events: []tae.Event{{Type: 96, Params: []byte{1, 0, 0, 0}}}}},
	}}}
	writeJSON(t, filepath.Join(root, "chr", "c1000.anibnd.json"), binder)
	writeZstdJSON(t, filepath.Join(root, "chr", "c2000.anibnd.json.zst"), binder)
	require.NoError(t, os.WriteFile(filepath.Join(root, "chr", "c3000.anibnd.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "chr", "readme.txt"), []byte("ignored"), 0o644))

	src := NewSource(root, zap.NewNop())

	var names []string
	err := src.Characters(context.Background(), func(name string, b *tae.Binder) error {
		names = append(names, name)
		assert.Equal(t, binder, *b)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c1000", "c2000"}, names)
}

func TestSource_Objects(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "obj", "o000100.objbnd.json"), ObjectBinder{
		Name:   "o000100",
		Anibnd: &tae.Binder{Timelines: []tae.Timeline{{Name: "o000100.tae"}}},
	})
	writeJSON(t, filepath.Join(root, "obj", "o000200.objbnd.json"), ObjectBinder{Name: "o000200"})

	src := NewSource(root, zap.NewNop())

	var names []string
	err := src.Objects(context.Background(), func(name string, b *tae.Binder) error {
		names = append(names, name)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"o000100"}, names)
}

func TestSource_MapsAndParams(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "map", "mapstudio", "m10_00_00_00.msb.json"), msb.Map{
		Format:  msb.FormatMSBE,
		Regions: msb.Regions{SFX: []msb.SFXRegion{{Name: "sfx", EffectID: 5}}},
	})
	writeJSON(t, filepath.Join(root, "param", "Bullet.param.json"), param.Table{
		ParamType: "BULLET_PARAM_ST",
		Columns:   []param.Column{{Name: "sfxId", Type: param.TypeS32}},
		Rows:      []param.Row{{ID: 1, Cells: []any{77}}},
	})

	src := NewSource(root, zap.NewNop())
	ctx := context.Background()

	var maps []string
	require.NoError(t, src.Maps(ctx, func(name string, m *msb.Map) error {
		maps = append(maps, name)
		assert.Equal(t, int32(5), m.Regions.SFX[0].EffectID)
		return nil
	}))
	assert.Equal(t, []string{"m10_00_00_00"}, maps)

	var tables []string
	require.NoError(t, src.Params(ctx, func(name string, tbl *param.Table) error {
		tables = append(tables, name)
		assert.Equal(t, "BULLET_PARAM_ST", tbl.ParamType)
		return nil
	}))
	assert.Equal(t, []string{"Bullet"}, tables)
}

func TestSource_Scripts(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "event", "common_func.emevd.json"), emevd.Script{
		Events: []emevd.Event{{ID: 100, Instructions: []emevd.Instruction{{Bank: 2006, ID: 3, Args: []byte{0, 0, 0, 0}}}}},
	})
	writeZstdJSON(t, filepath.Join(root, "event", "m10_00_00_00.emevd.json.zst"), emevd.Script{Name: "custom"})

	src := NewSource(root, zap.NewNop())

	scripts, err := src.Scripts(context.Background())
	require.NoError(t, err)
	require.Len(t, scripts, 2)
	assert.Equal(t, "common_func", scripts["common_func"].Name)
	assert.Equal(t, "custom", scripts["m10_00_00_00"].Name)
	assert.NotNil(t, scripts["common_func"].Event(100))
}

func TestSource_CallbackErrorStops(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "chr", "c1000.anibnd.json"), tae.Binder{})
	writeJSON(t, filepath.Join(root, "chr", "c2000.anibnd.json"), tae.Binder{})

	src := NewSource(root, zap.NewNop())

	calls := 0
	err := src.Characters(context.Background(), func(name string, b *tae.Binder) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}

func TestSource_CancelledContext(t *testing.T) {
	root := t.TempDir()
	writeJSON(t, filepath.Join(root, "chr", "c1000.anibnd.json"), tae.Binder{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSource(root, zap.NewNop()).Characters(ctx, func(string, *tae.Binder) error {
		t.Fatal("callback must not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
