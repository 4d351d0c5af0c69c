package recon

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// textCandidateEncodings are the non-UTF-8 code pages Fallout: New Vegas
// localized string tables are known to ship, tried in order until one
// decodes cleanly. Generalized from the teacher's Korean-only EUC-KR
// decode (repparser.koreanString) to cover the other regional SKUs a
// dump's FULL/ResponseText subrecords can carry.
var textCandidateEncodings = []encoding.Encoding{
	charmap.Windows1252,
	korean.EUCKR,
	charmap.ISO8859_1,
}

// DecodeText returns the best-effort text value of a raw subrecord payload.
// UTF-8 input is returned as-is (trimmed at the first NUL). Non-UTF-8 input
// is run through each candidate encoding in turn; the first decode that
// produces no replacement characters wins. If none do, the raw bytes are
// returned unmodified as a last resort, matching the teacher's cString
// fallback of "just return the whole as-is".
func DecodeText(data []byte) string {
	if i := indexNUL(data); i >= 0 {
		data = data[:i]
	}
	if utf8.Valid(data) {
		return string(data)
	}
	for _, enc := range textCandidateEncodings {
		if s, ok := decodeWith(enc, data); ok {
			return s
		}
	}
	return string(data)
}

func indexNUL(data []byte) int {
	for i, b := range data {
		if b == 0 {
			return i
		}
	}
	return -1
}

func decodeWith(enc encoding.Encoding, data []byte) (string, bool) {
	decoded, _, err := transform.String(enc.NewDecoder(), string(data))
	if err != nil {
		return "", false
	}
	if strings.ContainsRune(decoded, utf8.RuneError) {
		return "", false
	}
	return decoded, true
}
