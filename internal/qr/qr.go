// Package qr renders payment payloads as inline QR code images.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the pixel width and height used for guest-facing QR codes.
const DefaultSize = 256

// PNGBase64 encodes the payload as a QR code PNG and returns it as a base64
// string, ready for embedding in a data URI or JSON response.
func PNGBase64(payload string, size int) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
