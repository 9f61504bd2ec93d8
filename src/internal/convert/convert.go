// FILE: alin/src/internal/convert/convert.go
package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"alin/src/internal/raster"

	"github.com/google/uuid"
	"github.com/lixenwraith/log"
)

var ErrNoTool = errors.New("no image conversion tool available")

// Converter moves images between raster buffers and other container
// formats on disk.
type Converter interface {
	// Decode reads the image at path as an 8-bit RGB raster.
	Decode(ctx context.Context, path string) (*raster.Image, error)
	// Encode writes img to path in the format named by its extension.
	Encode(ctx context.Context, img *raster.Image, path string) error
}

// Tool describes one external conversion utility.
type Tool struct {
	Name string
	// Args builds the argument list converting in to out as format.
	Args func(in, out, format string) []string
}

var (
	// Sips is the macOS scriptable image processing system.
	Sips = Tool{
		Name: "sips",
		Args: func(in, out, format string) []string {
			return []string{"-s", "format", format, in, "--out", out}
		},
	}

	// ImageMagick infers both formats from the file extensions.
	ImageMagick = Tool{
		Name: "convert",
		Args: func(in, out, format string) []string {
			return []string{in, out}
		},
	}
)

// Tools resolves an image_tool setting to the ordered list to try.
func Tools(name string) ([]Tool, error) {
	switch name {
	case "", "auto":
		return []Tool{Sips, ImageMagick}, nil
	case "sips":
		return []Tool{Sips}, nil
	case "convert", "imagemagick":
		return []Tool{ImageMagick}, nil
	default:
		return nil, fmt.Errorf("unknown image tool: %s", name)
	}
}

// ExecConverter shells out to the first available tool that succeeds.
type ExecConverter struct {
	tools   []Tool
	tempDir string
	logger  *log.Logger

	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewExecConverter creates a converter for the named tool selection.
// Scratch files go to tempDir, or the system temp directory when empty.
func NewExecConverter(tool, tempDir string, logger *log.Logger) (*ExecConverter, error) {
	tools, err := Tools(tool)
	if err != nil {
		return nil, err
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &ExecConverter{
		tools:    tools,
		tempDir:  tempDir,
		logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
	}, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

// Decode converts the file at path to a raster. Files that already hold a
// binary RGB raster are read directly.
func (c *ExecConverter) Decode(ctx context.Context, path string) (*raster.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if img, err := raster.Decode(data); err == nil {
		c.logger.Debug("msg", "Image already in raster form",
			"component", "exec_converter",
			"path", path)
		return img, nil
	}

	tmp := c.scratchPath("decode", ".ppm")
	defer c.remove(tmp)

	if err := c.convert(ctx, path, tmp, "ppm"); err != nil {
		return nil, err
	}

	data, err = os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to read converted image: %w", err)
	}
	img, err := raster.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("converted image: %w", err)
	}
	return img, nil
}

// Encode writes img to path. A .ppm target is written directly.
func (c *ExecConverter) Encode(ctx context.Context, img *raster.Image, path string) error {
	format := Format(path)
	if format == "ppm" {
		return writeFile(path, img.Encode())
	}

	tmp := c.scratchPath("encode", ".ppm")
	defer c.remove(tmp)

	if err := writeFile(tmp, img.Encode()); err != nil {
		return err
	}
	return c.convert(ctx, tmp, path, format)
}

// convert tries each tool in order until one succeeds.
func (c *ExecConverter) convert(ctx context.Context, in, out, format string) error {
	var lastErr error
	for _, tool := range c.tools {
		bin, err := c.lookPath(tool.Name)
		if err != nil {
			c.logger.Debug("msg", "Conversion tool not found",
				"component", "exec_converter",
				"tool", tool.Name)
			continue
		}

		stderr, err := c.run(ctx, bin, tool.Args(in, out, format)...)
		if err == nil {
			c.logger.Debug("msg", "Image converted",
				"component", "exec_converter",
				"tool", tool.Name,
				"input", in,
				"output", out,
				"format", format)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		c.logger.Warn("msg", "Conversion tool failed",
			"component", "exec_converter",
			"tool", tool.Name,
			"error", err,
			"stderr", strings.TrimSpace(string(stderr)))
		lastErr = fmt.Errorf("%s: %w", tool.Name, err)
	}

	if lastErr == nil {
		return ErrNoTool
	}
	return fmt.Errorf("image conversion failed: %w", lastErr)
}

func (c *ExecConverter) scratchPath(kind, ext string) string {
	return filepath.Join(c.tempDir, "alin_"+kind+"_"+uuid.NewString()+ext)
}

func (c *ExecConverter) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.logger.Warn("msg", "Failed to remove scratch file",
			"component", "exec_converter",
			"path", path,
			"error", err)
	}
}

// Format returns the lower-cased extension of path without the dot, or
// "png" when path has none.
func Format(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "png"
	}
	return ext
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}
