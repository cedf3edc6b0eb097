package media

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ffprobe's -show_data emits packet payloads as a hex dump: per line an
// eight digit offset, ": ", then up to 16 bytes as four-character hex
// groups separated by single spaces, padding, and an ASCII gutter.
// decodeHexDump recovers the raw bytes; size is the payload length
// reported by the packet entry and bounds how many bytes each line
// contributes (the ASCII gutter can itself contain hex-looking text, so
// the byte count is what disambiguates).
func decodeHexDump(dump string, size int) ([]byte, error) {
	out := make([]byte, 0, size)

	for _, line := range strings.Split(dump, "\n") {
		if len(out) >= size {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		sep := strings.Index(line, ": ")
		if sep != 8 {
			return nil, fmt.Errorf("malformed hex dump line %q", line)
		}

		want := size - len(out)
		if want > 16 {
			want = 16
		}

		var digits strings.Builder
		for _, r := range line[sep+2:] {
			if digits.Len() == want*2 {
				break
			}
			switch {
			case r == ' ':
				continue
			case isHexDigit(r):
				digits.WriteRune(r)
			default:
				return nil, fmt.Errorf("malformed hex dump line %q", line)
			}
		}
		if digits.Len() != want*2 {
			return nil, fmt.Errorf("short hex dump line %q", line)
		}

		decoded, err := hex.DecodeString(digits.String())
		if err != nil {
			return nil, fmt.Errorf("decode hex dump: %w", err)
		}
		out = append(out, decoded...)
	}

	if len(out) != size {
		return nil, fmt.Errorf("hex dump yielded %d bytes, expected %d", len(out), size)
	}
	return out, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}
