package asciipiet

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hexdump formats b as an xxd style hexdump: an 8 digit offset, sixteen
// bytes per line in two byte groups, and a gutter showing the bytes as
// printable ASCII with unprintable bytes as dots.
func Hexdump(b []byte) string {
	var out strings.Builder
	for i := 0; i < len(b); i += 16 {
		block := b[i:]
		if len(block) > 16 {
			block = block[:16]
		}

		var codes strings.Builder
		for j := 0; j < len(block); j += 2 {
			end := j + 2
			if end > len(block) {
				end = len(block)
			}
			codes.WriteString(hex.EncodeToString(block[j:end]))
			codes.WriteByte(' ')
		}

		fmt.Fprintf(&out, "%08x: %-40s ", i, codes.String())

		for _, c := range block {
			if c >= 32 && c <= 126 {
				out.WriteByte(c)
			} else {
				out.WriteByte('.')
			}
		}
		out.WriteByte('\n')
	}
	return strings.TrimRight(out.String(), "\n")
}
