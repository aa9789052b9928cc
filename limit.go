package tabq

import "strconv"

// Page size used when the request omits a positive length.
const defaultPageLen = 100

/*
Builds the pagination fragment for one request.

Oracle always yields "": its pagination is applied by `BuildQuery` wrapping
the whole data statement in a ROWNUM subquery, since the dialect has no
native offset/limit clause. The other dialects require a present,
non-negative start; otherwise "".

A present, negative length yields a single space: no limiting applied, the
statement fetches everything from start onward. A length that is absent or
zero falls back to the default page size.
*/
func BuildLimit(conf Conf, req *Req) string {
	if conf.Dialect == DialectOracle {
		return ``
	}
	if req == nil || req.Start == nil || *req.Start < 0 {
		return ``
	}

	if req.Length != nil && *req.Length < 0 {
		return ` `
	}

	length := defaultPageLen
	if req.Length != nil && *req.Length > 0 {
		length = *req.Length
	}

	start := strconv.Itoa(*req.Start)
	if conf.Dialect == DialectPostgres {
		return ` OFFSET ` + start + ` LIMIT ` + strconv.Itoa(length)
	}
	return ` LIMIT ` + start + `, ` + strconv.Itoa(length)
}
