// FILE: alin/src/internal/nodes/image.go
package nodes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"alin/src/internal/codec"
	"alin/src/internal/convert"
	"alin/src/internal/core"
	"alin/src/internal/node"
	"alin/src/internal/raster"
	"alin/src/internal/record"

	"github.com/google/uuid"
	"github.com/lixenwraith/log"
)

// ImageDecode loads an image from a path or an inline base64 payload and
// emits it as a raster image record.
type ImageDecode struct {
	converter convert.Converter
	tempDir   string
	logger    *log.Logger
}

func NewImageDecode(converter convert.Converter, tempDir string, logger *log.Logger) *ImageDecode {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &ImageDecode{
		converter: converter,
		tempDir:   tempDir,
		logger:    logger,
	}
}

func (d *ImageDecode) Name() string {
	return "image-decode"
}

func (d *ImageDecode) Process(ctx context.Context, rec string) (node.Result, error) {
	var (
		img *raster.Image
		err error
	)

	if path, ok := record.FindString(rec, core.FieldPath); ok {
		if _, statErr := os.Stat(path); statErr != nil {
			return node.Result{}, fmt.Errorf("image not found: %w", statErr)
		}
		img, err = d.converter.Decode(ctx, path)
	} else if data, ok := record.FindString(rec, core.FieldData); ok {
		img, err = d.decodeInline(ctx, codec.Decode(data))
	} else {
		return node.Result{}, missingField(core.FieldPath)
	}
	if err != nil {
		return node.Result{}, err
	}

	d.logger.Debug("msg", "Image decoded",
		"component", "image_decode",
		"width", img.Width,
		"height", img.Height)

	return node.Output(core.ImageRecord{
		Width:   img.Width,
		Height:  img.Height,
		Payload: codec.Encode(img.Encode()),
	}.String()), nil
}

// decodeInline uses data directly when it is already a raster and otherwise
// hands it to the converter through a scratch file.
func (d *ImageDecode) decodeInline(ctx context.Context, data []byte) (*raster.Image, error) {
	if img, err := raster.Decode(data); err == nil {
		return img, nil
	}

	path := filepath.Join(d.tempDir, "alin_data_"+uuid.NewString())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage inline image: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			d.logger.Warn("msg", "Failed to remove scratch file",
				"component", "image_decode",
				"path", path,
				"error", err)
		}
	}()
	return d.converter.Decode(ctx, path)
}

// PixelFilter applies a named raster filter to an image record.
type PixelFilter struct {
	filter string
	logger *log.Logger
}

// NewPixelFilter returns a node for a filter registered in raster.
func NewPixelFilter(filter string, logger *log.Logger) (*PixelFilter, error) {
	if _, err := raster.Lookup(filter); err != nil {
		return nil, err
	}
	return &PixelFilter{filter: filter, logger: logger}, nil
}

func (p *PixelFilter) Name() string {
	return p.filter
}

func (p *PixelFilter) Process(ctx context.Context, rec string) (node.Result, error) {
	payload, ok := record.FindString(rec, core.FieldPPM)
	if !ok {
		return node.Result{}, missingField(core.FieldPPM)
	}

	out := core.ImageRecord{
		Width:  int(record.FindInt(rec, core.FieldWidth)),
		Height: int(record.FindInt(rec, core.FieldHeight)),
		Filter: p.filter,
	}

	data := codec.Decode(payload)
	img, err := raster.Parse(data)
	if err != nil {
		// Undecodable payloads are forwarded untouched
		p.logger.Warn("msg", "Unreadable raster header, pixels left unchanged",
			"component", "pixel_filter",
			"filter", p.filter,
			"error", err)
		out.Payload = codec.Encode(data)
		return node.Output(out.String()), nil
	}

	pixels, err := img.ApplyFilter(p.filter)
	if err != nil {
		return node.Result{}, err
	}

	p.logger.Debug("msg", "Filter applied",
		"component", "pixel_filter",
		"filter", p.filter,
		"pixels", pixels,
		"complete", img.Complete())

	out.Width, out.Height = img.Width, img.Height
	out.Payload = codec.Encode(img.Encode())
	return node.Output(out.String()), nil
}

// ImageEncode writes an image record to disk through the converter and
// reports the destination.
type ImageEncode struct {
	converter convert.Converter
	tempDir   string
	logger    *log.Logger
}

func NewImageEncode(converter convert.Converter, tempDir string, logger *log.Logger) *ImageEncode {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &ImageEncode{
		converter: converter,
		tempDir:   tempDir,
		logger:    logger,
	}
}

func (e *ImageEncode) Name() string {
	return "image-encode"
}

func (e *ImageEncode) Process(ctx context.Context, rec string) (node.Result, error) {
	payload, ok := record.FindString(rec, core.FieldPPM)
	if !ok {
		return node.Result{}, missingField(core.FieldPPM)
	}

	path, ok := record.FindString(rec, core.FieldOutput)
	if !ok || path == "" {
		path = filepath.Join(e.tempDir, "alin_output_"+uuid.NewString()+".png")
	}

	img, err := raster.Decode(codec.Decode(payload))
	if err != nil {
		return node.Result{}, err
	}
	if err := e.converter.Encode(ctx, img, path); err != nil {
		return node.Result{}, err
	}

	e.logger.Debug("msg", "Image written",
		"component", "image_encode",
		"path", path)
	return node.Output(core.ResultRecord{Success: true, Path: record.Escape(path)}.String()), nil
}
