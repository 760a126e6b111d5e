// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package qr

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPNG(t *testing.T) {
	data, err := PNG("https://fes.example.jp/", 0)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w := img.Bounds().Dx(); w != DefaultSize {
		t.Errorf("width: got %d, want %d", w, DefaultSize)
	}
}

func TestPNGEmptyURL(t *testing.T) {
	if _, err := PNG("", 128); err == nil {
		t.Error("expected error for empty url")
	}
}
