package render

import (
	"fmt"
	"io"
)

const (
	// ppmMagic identifies the plain-text color variant of PPM.
	ppmMagic = "P3"

	// MaxChannel is the largest channel value written to the stream.
	MaxChannel = 255
)

// WriteHeader writes the three PPM header lines for img.
func WriteHeader(w io.Writer, img Image) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", ppmMagic, img.Width, img.Height, MaxChannel)
	return err
}
