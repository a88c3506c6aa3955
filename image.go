package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"turtlecode/grid"
)

// LoadGrid reads the input file and returns the grid to trace. Pictures are
// binarized to gridSize×gridSize; ASCII grids (.txt) are used as drawn.
func LoadGrid(filePath string, gridSize int, threshold uint8, invert bool) (*grid.Grid, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, filePath)
	}
	if err != nil {
		return nil, err
	}

	var img image.Image
	switch ext {
	case ".txt":
		return grid.Parse(string(data))
	case ".svg":
		img, err = loadSVG(data)
	case ".png", ".jpg", ".jpeg", ".gif":
		img, _, err = image.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, errors.Join(errors.New("could not decode image"), err)
	}

	return Binarize(img, gridSize, threshold, invert)
}

// Binarize flattens img onto white, resamples it to size×size with bicubic
// interpolation and marks every cell whose luma is below threshold.
func Binarize(img image.Image, size int, threshold uint8, invert bool) (*grid.Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfig, size)
	}
	b := img.Bounds()
	flat := image.NewRGBA(b)
	draw.Draw(flat, b, &image.Uniform{color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, b, img, b.Min, draw.Over)

	gray := image.NewGray(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(gray, gray.Bounds(), flat, b, draw.Src, nil)
	if invert {
		for i, v := range gray.Pix {
			gray.Pix[i] = 255 - v
		}
	}
	return grid.FromImage(gray, threshold)
}

func saveImage(img image.Image, to string) error {
	outFile, err := os.Create(to)
	if err != nil {
		return errors.Join(errors.New("could not create output file"), err)
	}
	defer outFile.Close()
	if err := png.Encode(outFile, img); err != nil {
		return err
	}
	return outFile.Close()
}
