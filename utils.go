package tabq

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

func appendStr(buf *[]byte, str string) {
	*buf = append(*buf, str...)
}

// Duplicated from `sqlb`.
func appendSpaceIfNeeded(buf *[]byte) {
	if buf != nil && len(*buf) > 0 && !endsWithWhitspace(*buf) {
		*buf = append(*buf, ` `...)
	}
}

func endsWithWhitspace(chunk []byte) bool {
	char, _ := utf8.DecodeLastRune(chunk)
	return isWhitespaceChar(char)
}

func isWhitespaceChar(char rune) bool {
	switch char {
	case ' ', '\n', '\r', '\t', '\v':
		return true
	default:
		return false
	}
}

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed
from the standard library. Reasonably safe. Should not be used when the
underlying byte array is volatile, for example when it's part of a scratch
buffer during SQL scanning.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

/*
Best-effort numeric read of one result cell. Database layers scan counts
into whichever Go type the driver favors; anything unrecognized is 0.
*/
func intFromCell(val interface{}) int {
	switch val := val.(type) {
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case uint64:
		return int(val)
	case float64:
		return int(val)
	case string:
		num, _ := strconv.Atoi(val)
		return num
	case []byte:
		num, _ := strconv.Atoi(string(val))
		return num
	default:
		return 0
	}
}
