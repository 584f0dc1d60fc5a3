package inspect

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeReader wraps r with a decoder for the named source encoding.
// State assessment exports are not reliably UTF-8; district uploads show
// up in Windows-1252 often enough that the switch earns its place.
//
// Recognized names: "" / "utf-8", "utf-8-bom", "windows-1252" (alias
// "cp1252"), and "latin-1" (alias "iso-8859-1").
func DecodeReader(r io.Reader, name string) (io.Reader, error) {
	var enc encoding.Encoding

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "utf-8-bom", "utf8-bom":
		enc = unicode.UTF8BOM
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	case "latin-1", "iso-8859-1":
		enc = charmap.ISO8859_1
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}

	return transform.NewReader(r, enc.NewDecoder()), nil
}
