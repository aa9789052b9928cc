package tabq

// Default length limit for `Sanitize`.
const sanitizeLimit = 256

/*
Escapes an untrusted string for embedding into SQL statement text. Returns
the escaped string and true, or `("", false)` when the input is rejected.

The empty string passes through unchanged: absence of a value is not an
error. A string longer than 256 bytes is rejected. Every other input has
each character of the fixed set {NUL, backspace, tab, ctrl-Z, LF, CR,
double-quote, single-quote, backslash, percent} prefixed with a backslash.

This is string escaping, not bind-variable parameterization, and carries
the correspondingly weaker guarantee; see the package documentation. Note
that callers in this package treat rejection as "no value": a rejected
search term silently drops its predicate instead of failing the request.
*/
func Sanitize(val string) (string, bool) {
	return SanitizeN(val, sanitizeLimit)
}

/*
Variant of `Sanitize` with a caller-chosen length limit. A limit <= 0
disables the length check.
*/
func SanitizeN(val string, limit int) (string, bool) {
	if val == `` {
		return ``, true
	}
	if limit > 0 && len(val) > limit {
		return ``, false
	}

	var buf []byte
	for ind := 0; ind < len(val); ind++ {
		char := val[ind]
		if isSqlSpecialChar(char) {
			buf = append(buf, '\\')
		}
		buf = append(buf, char)
	}
	return bytesToMutableString(buf), true
}

func isSqlSpecialChar(char byte) bool {
	switch char {
	case 0, '\b', '\t', '\n', '\r', 0x1a, '"', '\'', '\\', '%':
		return true
	default:
		return false
	}
}
