// FILE: alin/src/internal/convert/convert_test.go
package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"alin/src/internal/raster"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

type call struct {
	name string
	args []string
}

// fakeTools installs a PATH lookup that finds only the given tools and a
// runner that records calls and writes want to the output argument.
func fakeTools(c *ExecConverter, available map[string]bool, failing map[string]bool, want []byte) *[]call {
	calls := &[]call{}
	c.lookPath = func(file string) (string, error) {
		if available[file] {
			return file, nil
		}
		return "", errors.New("not found")
	}
	c.run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, call{name: name, args: args})
		if failing[name] {
			return []byte("boom"), errors.New("exit status 1")
		}
		return nil, os.WriteFile(args[len(args)-1], want, 0o644)
	}
	return calls
}

func newConverter(t *testing.T, tool string) (*ExecConverter, string) {
	t.Helper()
	dir := t.TempDir()
	c, err := NewExecConverter(tool, dir, newTestLogger())
	require.NoError(t, err)
	return c, dir
}

func TestTools(t *testing.T) {
	tools, err := Tools("auto")
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, "sips", tools[0].Name)
	assert.Equal(t, "convert", tools[1].Name)

	tools, err = Tools("convert")
	require.NoError(t, err)
	assert.Len(t, tools, 1)

	_, err = Tools("gimp")
	assert.Error(t, err)
}

func TestToolArgs(t *testing.T) {
	assert.Equal(t, []string{"-s", "format", "png", "a.ppm", "--out", "b.png"}, Sips.Args("a.ppm", "b.png", "png"))
	assert.Equal(t, []string{"a.ppm", "b.png"}, ImageMagick.Args("a.ppm", "b.png", "png"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "png", Format("/tmp/out.PNG"))
	assert.Equal(t, "ppm", Format("x.ppm"))
	assert.Equal(t, "png", Format("noext"))
}

func TestExecConverter_Decode(t *testing.T) {
	ppm := raster.New(2, 1).Encode()

	t.Run("RasterReadDirectly", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		calls := fakeTools(c, map[string]bool{"sips": true}, nil, nil)

		path := filepath.Join(dir, "in.ppm")
		require.NoError(t, os.WriteFile(path, ppm, 0o644))

		img, err := c.Decode(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 2, img.Width)
		assert.Empty(t, *calls)
	})

	t.Run("ConvertedByFallbackTool", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		calls := fakeTools(c, map[string]bool{"convert": true}, nil, ppm)

		path := filepath.Join(dir, "in.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

		img, err := c.Decode(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, 2, img.Width)
		assert.Equal(t, 1, img.Height)
		require.Len(t, *calls, 1)
		assert.Equal(t, "convert", (*calls)[0].name)

		// Only the input remains; the scratch file is gone
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("FirstToolFails", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		calls := fakeTools(c,
			map[string]bool{"sips": true, "convert": true},
			map[string]bool{"sips": true},
			ppm)

		path := filepath.Join(dir, "in.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

		_, err := c.Decode(context.Background(), path)
		require.NoError(t, err)
		assert.Len(t, *calls, 2)
	})

	t.Run("NoToolAvailable", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		fakeTools(c, nil, nil, nil)

		path := filepath.Join(dir, "in.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

		_, err := c.Decode(context.Background(), path)
		assert.ErrorIs(t, err, ErrNoTool)
	})

	t.Run("AllToolsFail", func(t *testing.T) {
		c, dir := newConverter(t, "sips")
		fakeTools(c, map[string]bool{"sips": true}, map[string]bool{"sips": true}, nil)

		path := filepath.Join(dir, "in.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

		_, err := c.Decode(context.Background(), path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoTool)
		assert.Contains(t, err.Error(), "image conversion failed")
	})

	t.Run("ToolProducesGarbage", func(t *testing.T) {
		c, dir := newConverter(t, "convert")
		fakeTools(c, map[string]bool{"convert": true}, nil, []byte("P3\n1 1\n255\n0 0 0\n"))

		path := filepath.Join(dir, "in.jpg")
		require.NoError(t, os.WriteFile(path, []byte("jpeg bytes"), 0o644))

		_, err := c.Decode(context.Background(), path)
		assert.ErrorIs(t, err, raster.ErrUnsupported)
	})

	t.Run("MissingFile", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		_, err := c.Decode(context.Background(), filepath.Join(dir, "absent.png"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestExecConverter_Encode(t *testing.T) {
	img := raster.New(1, 1)

	t.Run("RasterWrittenDirectly", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		calls := fakeTools(c, map[string]bool{"sips": true}, nil, nil)

		out := filepath.Join(dir, "out.ppm")
		require.NoError(t, c.Encode(context.Background(), img, out))
		assert.Empty(t, *calls)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, img.Encode(), data)
	})

	t.Run("PNGViaTool", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		calls := fakeTools(c, map[string]bool{"sips": true}, nil, []byte("png"))

		out := filepath.Join(dir, "out.png")
		require.NoError(t, c.Encode(context.Background(), img, out))
		require.Len(t, *calls, 1)
		assert.Equal(t, "png", (*calls)[0].args[2])
		assert.Equal(t, out, (*calls)[0].args[5])

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("NoToolAvailable", func(t *testing.T) {
		c, dir := newConverter(t, "auto")
		fakeTools(c, nil, nil, nil)

		err := c.Encode(context.Background(), img, filepath.Join(dir, "out.png"))
		assert.ErrorIs(t, err, ErrNoTool)
	})
}
