// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to the PNG file at path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("preview: create file: %w", err)
	}

	if err := WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
