package scanner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/lestrrat-go/pdebug"
	"github.com/lestrrat-go/xni/encoding"
	"github.com/lestrrat-go/xni/event"
	"golang.org/x/text/transform"
)

// ExpandSystemID turns systemID into an absolute URI. Relative ids are
// resolved against baseID when it is set, and against the working
// directory otherwise.
func ExpandSystemID(systemID, baseID string) string {
	if systemID == "" {
		return ""
	}
	if u, err := url.Parse(systemID); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return systemID
	}
	if baseID != "" {
		base, err := url.Parse(ExpandSystemID(baseID, ""))
		if err == nil {
			if ref, err := url.Parse(filepath.ToSlash(systemID)); err == nil {
				return base.ResolveReference(ref).String()
			}
		}
	}
	abs, err := filepath.Abs(systemID)
	if err != nil {
		return systemID
	}
	return "file://" + filepath.ToSlash(abs)
}

// openInput returns the byte stream of in. When in has no byte stream,
// the expanded system id is opened as a local file.
func openInput(in *event.InputSource, expanded string) (io.Reader, func() error, error) {
	if in.ByteStream != nil {
		return in.ByteStream, func() error { return nil }, nil
	}
	if expanded == "" {
		return nil, nil, fmt.Errorf("input source has neither a byte stream nor a system id")
	}

	u, err := url.Parse(expanded)
	if err != nil {
		return nil, nil, err
	}
	if u.Scheme != "file" {
		return nil, nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	f, err := os.Open(filepath.FromSlash(u.Path))
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

var (
	patUTF8      = []byte{0xEF, 0xBB, 0xBF}
	patUTF16LE2B = []byte{0xFF, 0xFE}
	patUTF16BE2B = []byte{0xFE, 0xFF}
	patUTF16LE4B = []byte{0x3C, 0x00, 0x3F, 0x00}
	patUTF16BE4B = []byte{0x00, 0x3C, 0x00, 0x3F}
)

const (
	encUTF8    = "UTF-8"
	encUTF16LE = "UTF-16LE"
	encUTF16BE = "UTF-16BE"
)

// detectEncoding looks for a byte order mark, or for "<?" encoded in
// UTF-16, at the start of r. A byte order mark is consumed. The name
// is empty when nothing was recognized.
func detectEncoding(r *bufio.Reader) (string, error) {
	b, err := r.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	var name string
	var bom int
	switch {
	case bytes.HasPrefix(b, patUTF8):
		name, bom = encUTF8, len(patUTF8)
	case bytes.HasPrefix(b, patUTF16LE2B):
		name, bom = encUTF16LE, len(patUTF16LE2B)
	case bytes.HasPrefix(b, patUTF16BE2B):
		name, bom = encUTF16BE, len(patUTF16BE2B)
	case bytes.Equal(b, patUTF16LE4B):
		name = encUTF16LE
	case bytes.Equal(b, patUTF16BE4B):
		name = encUTF16BE
	default:
		return "", nil
	}
	if pdebug.Enabled {
		pdebug.Printf("scanner: detected %s (byte order mark = %d bytes)", name, bom)
	}
	if _, err := r.Discard(bom); err != nil {
		return "", err
	}
	return name, nil
}

// decodeInput applies the encoding requested by the input source. An
// empty name, or UTF-8, leaves r untouched.
func decodeInput(r io.Reader, name string) (io.Reader, error) {
	if encoding.IsUTF8(name) {
		return r, nil
	}
	e := encoding.Load(name)
	if e == nil {
		return nil, &encodingError{name: name}
	}
	return transform.NewReader(r, e.NewDecoder()), nil
}

type encodingError struct {
	name string
}

func (e *encodingError) Error() string {
	return "encoding " + e.name + " is not supported"
}
