// x86_prefix.go - Legacy prefix scanner

package main

// outOfRange is returned for reads past the end of the buffer. It is wider
// than a byte so it can never equal a prefix or opcode byte.
const outOfRange = -1

// byteAt reads buf[i], or outOfRange when i is outside the buffer.
func byteAt(buf []byte, i int) int {
	if i < 0 || i >= len(buf) {
		return outOfRange
	}
	return int(buf[i])
}

func isPrefix(b int) bool {
	if b == outOfRange {
		return false
	}
	_, ok := x86Prefixes[byte(b)]
	return ok
}

// scanPrefixes collects the consecutive legacy prefix bytes starting at
// offset. Repeats are kept in scan order.
func scanPrefixes(buf []byte, offset int) []byte {
	var prefixes []byte
	for i := offset; isPrefix(byteAt(buf, i)); i++ {
		prefixes = append(prefixes, buf[i])
	}
	return prefixes
}

// Prefix is a prefix byte left for display after matching.
type Prefix struct {
	Byte     byte
	Mnemonic string
}

func prefixRecords(prefixes []byte) []Prefix {
	if len(prefixes) == 0 {
		return nil
	}
	out := make([]Prefix, len(prefixes))
	for i, b := range prefixes {
		out[i] = Prefix{Byte: b, Mnemonic: x86Prefixes[b].Mnemonic}
	}
	return out
}

func hasPrefix(prefixes []byte, b byte) bool {
	for _, p := range prefixes {
		if p == b {
			return true
		}
	}
	return false
}

// removePrefix drops every occurrence of b.
func removePrefix(prefixes []byte, b byte) []byte {
	out := prefixes[:0]
	for _, p := range prefixes {
		if p != b {
			out = append(out, p)
		}
	}
	return out
}
