package tabq

import "strings"

/*
Builds the ORDER BY fragment for one request, or "" when the request does
not produce a usable ordering.

Only the first ordering entry is considered: multi-column sort, while
allowed by the protocol, is deliberately unsupported, matching what
existing clients rely on. The entry must reference a valid column index,
the column must be orderable, and its sanitized name must be non-empty;
anything else is a silent no-op, not an error.

The direction is normalized: "desc" (any case) descends, everything else
ascends. Client text is never echoed into the fragment verbatim.
*/
func BuildOrder(req *Req) string {
	if req == nil || len(req.Order) == 0 {
		return ``
	}

	ord := req.Order[0]
	if ord.Column < 0 || ord.Column >= len(req.Columns) {
		return ``
	}

	col := req.Columns[ord.Column]
	if col.Orderable != `true` {
		return ``
	}

	name, ok := Sanitize(col.Name)
	if !ok || name == `` {
		return ``
	}

	dir := `asc`
	if strings.EqualFold(ord.Dir, `desc`) {
		dir = `desc`
	}

	return ` ORDER BY ` + name + ` ` + dir
}
