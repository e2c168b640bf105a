package imaging

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
)

// EncodeICO writes img as a single-image ICO file with a PNG payload.
// Sides of 256 and above are stored as 0, as the format requires.
func EncodeICO(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Dx() > 256 || b.Dy() > 256 {
		return fmt.Errorf("icon too large: %dx%d", b.Dx(), b.Dy())
	}

	var payload bytes.Buffer
	if err := png.Encode(&payload, img); err != nil {
		return err
	}

	header := struct {
		Reserved uint16
		Type     uint16
		Count    uint16
	}{Type: 1, Count: 1}

	entry := struct {
		Width, Height uint8
		Colors        uint8
		Reserved      uint8
		Planes        uint16
		BitsPerPixel  uint16
		Size          uint32
		Offset        uint32
	}{
		Width:        uint8(b.Dx() % 256),
		Height:       uint8(b.Dy() % 256),
		Planes:       1,
		BitsPerPixel: 32,
		Size:         uint32(payload.Len()),
		Offset:       icoHeaderSize + icoEntrySize,
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, entry); err != nil {
		return err
	}
	_, err := w.Write(payload.Bytes())
	return err
}
