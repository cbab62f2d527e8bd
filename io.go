package isocontour

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/aurelien-rainone/aligned"
)

// Binary contour file format: a magic number, a version, then the payload.
// Kept deliberately small since a Contour is just a set of point
// sequences, not a tiled mesh.
const (
	contourMagic   uint32 = 0x49534f43 // "ISOC"
	contourVersion uint32 = 1
)

// fileHeader is the fixed-size header written at the start of every
// encoded contour file.
type fileHeader struct {
	Magic    uint32
	Version  uint32
	NCycles  uint32
	_Padding uint32 // keeps the header 8-byte aligned ahead of the float64 payload
}

// Encode writes c to w in the binary contour format: a fileHeader, then for
// each cycle a uint32 vertex count followed by that many (X, Y) float64
// pairs.
func Encode(w io.Writer, c Contour) error {
	aw := aligned.NewWriter(w, 8, binary.LittleEndian)

	hdr := fileHeader{
		Magic:   contourMagic,
		Version: contourVersion,
		NCycles: uint32(len(c.Cycles)),
	}
	if err := aw.WriteVal(hdr); err != nil {
		return fmt.Errorf("isocontour: encode header: %w", err)
	}

	for i, cyc := range c.Cycles {
		n := uint32(len(cyc.Vertices))
		if err := aw.WriteVal(n); err != nil {
			return fmt.Errorf("isocontour: encode cycle %d length: %w", i, err)
		}
		if err := aw.WriteSlice(cyc.Vertices); err != nil {
			return fmt.Errorf("isocontour: encode cycle %d vertices: %w", i, err)
		}
	}
	return nil
}

// Decode reads a Contour previously written by Encode from r.
func Decode(r io.Reader) (Contour, error) {
	ar := aligned.NewReader(r, 8, binary.LittleEndian)

	var hdr fileHeader
	if err := ar.ReadVal(&hdr); err != nil {
		return Contour{}, fmt.Errorf("isocontour: decode header: %w", err)
	}
	if hdr.Magic != contourMagic {
		return Contour{}, fmt.Errorf("isocontour: bad magic number: %#x", hdr.Magic)
	}
	if hdr.Version != contourVersion {
		return Contour{}, fmt.Errorf("isocontour: unsupported version: %d", hdr.Version)
	}

	c := Contour{Cycles: make([]Cycle, hdr.NCycles)}
	for i := range c.Cycles {
		var n uint32
		if err := ar.ReadVal(&n); err != nil {
			return Contour{}, fmt.Errorf("isocontour: decode cycle %d length: %w", i, err)
		}
		verts := make([]Point, n)
		if err := ar.ReadSlice(verts); err != nil {
			return Contour{}, fmt.Errorf("isocontour: decode cycle %d vertices: %w", i, err)
		}
		c.Cycles[i] = Cycle{Vertices: verts}
	}
	return c, nil
}
