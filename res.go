package tabq

import (
	"reflect"
	"strconv"

	"github.com/mitranim/refut"
)

/*
The normalized response envelope. `Data` is passed through from the data
statement's rows unmodified; nil marshals to JSON null.
*/
type Res struct {
	Draw            int           `json:"draw"`
	RecordsTotal    int           `json:"recordsTotal"`
	RecordsFiltered int           `json:"recordsFiltered"`
	Data            []interface{} `json:"data"`
}

/*
Raw results of executing a `Stmts`, as produced by the caller's database
layer. Count results are row-major cells: the count is read from the first
cell of the first row. A nil `RecordsFiltered` means the filtered count
statement was not run.
*/
type RawRes struct {
	RecordsTotal    [][]interface{}
	RecordsFiltered [][]interface{}
	Data            []interface{}
}

/*
Translates raw statement results into the response envelope. Never fails:
a nil `raw` yields zeroed counts and null data, and any cell that can't be
read as a number degrades to 0.

The draw token is echoed as an integer only when the request's token parses
as a canonical integer; everything else echoes 0. The protocol's security
note calls for this cast, since the token is reflected back to the client
verbatim otherwise. `RecordsFiltered` falls back to `RecordsTotal` when no
distinct filtered count was computed.
*/
func ParseRes(req *Req, raw *RawRes) Res {
	var res Res

	if req != nil {
		num, err := strconv.Atoi(req.Draw)
		if err == nil {
			res.Draw = num
		}
	}

	if raw == nil {
		return res
	}

	res.RecordsTotal = firstCellInt(raw.RecordsTotal)
	if raw.RecordsFiltered != nil {
		res.RecordsFiltered = firstCellInt(raw.RecordsFiltered)
	} else {
		res.RecordsFiltered = res.RecordsTotal
	}

	res.Data = raw.Data
	return res
}

func firstCellInt(rows [][]interface{}) int {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0
	}
	return intFromCell(rows[0][0])
}

/*
Size-limited copy of a struct for diagnostics/logging. Takes any struct (or
pointer to one) with a slice-valued payload field, identified by its `json`
tag name (falling back to the Go field name). The copy keeps every exported
field under its JSON name, replaces the payload with at most `count` leading
elements (all of them when count <= 0), and records the payload's original
length under "<payloadField>Length". Non-structs yield nil.

Typical use: log `LogView(res, "data", 3)` instead of a response carrying
thousands of rows.
*/
func LogView(val interface{}, payloadField string, count int) map[string]interface{} {
	rval := reflect.ValueOf(val)
	for rval.Kind() == reflect.Ptr {
		if rval.IsNil() {
			return nil
		}
		rval = rval.Elem()
	}
	if rval.Kind() != reflect.Struct {
		return nil
	}

	view := map[string]interface{}{}
	rtype := rval.Type()

	for ind := 0; ind < rtype.NumField(); ind++ {
		sfield := rtype.Field(ind)
		if sfield.PkgPath != `` {
			continue
		}

		name := refut.TagIdent(sfield.Tag.Get(`json`))
		if name == `` {
			name = sfield.Name
		}

		fval := rval.Field(ind)
		if name == payloadField && fval.Kind() == reflect.Slice {
			view[name+`Length`] = fval.Len()
			if count > 0 && count < fval.Len() {
				fval = fval.Slice(0, count)
			}
		}
		view[name] = fval.Interface()
	}
	return view
}
