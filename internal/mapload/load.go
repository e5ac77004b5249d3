package mapload

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Image formats a map may be drawn in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/shardshell/internal/telemetry"
	"github.com/samdwyer/shardshell/internal/world"
)

// MaxTextRow is the longest row, in bytes, a text map may contain.
const MaxTextRow = 1 << 20

// TextExt is the file extension of text maps.
const TextExt = ".txt"

// DecodeImage decodes an image and classifies every pixel into a grid of
// the same dimensions.
func DecodeImage(r io.Reader, c *Classifier) (*world.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img, c), format, nil
}

// FromImage classifies every pixel of img.
func FromImage(img image.Image, c *Classifier) *world.Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	cells := make([]world.CellState, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cells = append(cells, c.Classify(img.At(x, y)))
		}
	}

	grid, err := world.NewGrid(width, height, cells)
	if err != nil {
		// cells is built from the same bounds
		panic(err)
	}
	return grid
}

// DecodeText reads a text map: '#' is solid, any other character open.
func DecodeText(r io.Reader) (*world.Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxTextRow)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("read text map: row %d is longer than %d bytes: %w", len(rows)+1, MaxTextRow, err)
		}
		return nil, fmt.Errorf("read text map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("text map is empty")
	}
	return world.ParseGrid(rows...), nil
}

// LoadFile loads a map from disk. Files ending in TextExt are read as text
// maps; anything else is decoded as an image.
func LoadFile(ctx context.Context, path string, c *Classifier) (*world.Grid, error) {
	tracer := telemetry.Tracer("mapload")
	_, span := tracer.Start(ctx, "map.load")
	defer span.End()

	span.SetAttributes(attribute.String("map.path", path))

	f, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	var (
		grid   *world.Grid
		format = "text"
	)
	if strings.EqualFold(filepath.Ext(path), TextExt) {
		grid, err = DecodeText(f)
	} else {
		grid, format, err = DecodeImage(f, c)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode failed")
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}

	span.SetAttributes(
		attribute.String("map.format", format),
		attribute.Int("map.width", grid.Width()),
		attribute.Int("map.height", grid.Height()),
		attribute.Int("map.solid_cells", grid.Count(world.Solid)),
	)
	log.Info().
		Str("path", path).
		Str("format", format).
		Int("width", grid.Width()).
		Int("height", grid.Height()).
		Msg("loaded map")

	return grid, nil
}
