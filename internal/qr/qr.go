// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package qr renders the poster QR code that points at the festival page.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length of the PNG in pixels.
const DefaultSize = 256

// PNG encodes url as a QR code image.
func PNG(url string, size int) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("qr: empty url")
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}
