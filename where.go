package tabq

import (
	"strings"
	"time"
)

// Layout for date-range literals: ISO-8601 without a zone designator,
// which every supported dialect accepts as timestamp text.
const dateLayout = `2006-01-02T15:04:05`

/*
Builds the WHERE clause for one request, or "" when nothing restricts the
result set. Collects, in order: the search predicate, the configuration's
verbatim `WhereAndSql`, and the date-range predicate. Each collected
predicate is parenthesized and the clause joins them with AND:

  ` WHERE (one) AND (two)`

A predicate whose input the sanitizer rejects is silently dropped; see the
package documentation on the fail-open posture.
*/
func BuildWhere(conf Conf, req *Req) string {
	var preds []string

	search := buildSearch(conf, req)
	if search != `` {
		preds = append(preds, search)
	}

	if conf.WhereAndSql != `` {
		preds = append(preds, conf.WhereAndSql)
	}

	dates := buildDateRange(conf)
	if dates != `` {
		preds = append(preds, dates)
	}

	if len(preds) == 0 {
		return ``
	}
	return ` WHERE (` + strings.Join(preds, `) AND (`) + `)`
}

/*
The search predicate is two independent groups joined with AND.

The column-scoped group takes every searchable request column whose
sanitized name and sanitized per-column term are both non-empty, and
requires all of them to match (AND). The global group is formed only when
the configuration allow-lists search columns and the request carries a
global term; any allow-listed column may match (OR).
*/
func buildSearch(conf Conf, req *Req) string {
	if req == nil {
		return ``
	}

	var scoped []string
	for _, col := range req.Columns {
		if col.Searchable != `true` {
			continue
		}

		name, ok := Sanitize(col.Name)
		if !ok || name == `` {
			continue
		}

		term, ok := Sanitize(col.Search.Value)
		if !ok || term == `` {
			continue
		}

		scoped = append(scoped, patternPred(conf.Dialect, name, term))
	}

	var global []string
	if len(conf.SearchCols) > 0 {
		term, ok := Sanitize(req.Search.Value)
		if ok && term != `` {
			for _, name := range conf.SearchCols {
				global = append(global, patternPred(conf.Dialect, name, term))
			}
		}
	}

	var groups []string
	if len(scoped) > 0 {
		groups = append(groups, `(`+strings.Join(scoped, ` AND `)+`)`)
	}
	if len(global) > 0 {
		groups = append(groups, `(`+strings.Join(global, ` OR `)+`)`)
	}
	return strings.Join(groups, ` AND `)
}

/*
Pattern-match predicate for one column. Postgres compares case-insensitively
via ILIKE, which requires a text cast for non-text columns; the other
dialects use plain LIKE.
*/
func patternPred(dialect Dialect, col string, term string) string {
	if dialect == DialectPostgres {
		return `CAST(` + col + ` AS text) ILIKE '%` + term + `%'`
	}
	return col + ` LIKE '%` + term + `%'`
}

/*
Inclusive date-range predicate: BETWEEN when both bounds are configured,
one-sided >= or <= otherwise, "" when the column or both bounds are absent.
*/
func buildDateRange(conf Conf) string {
	if conf.DateColumn == `` {
		return ``
	}

	from, to := conf.DateFrom, conf.DateTo
	switch {
	case from != nil && to != nil:
		return conf.DateColumn + ` BETWEEN ` + dateLiteral(*from) + ` AND ` + dateLiteral(*to)
	case from != nil:
		return conf.DateColumn + ` >= ` + dateLiteral(*from)
	case to != nil:
		return conf.DateColumn + ` <= ` + dateLiteral(*to)
	default:
		return ``
	}
}

func dateLiteral(inst time.Time) string {
	return `'` + inst.Format(dateLayout) + `'`
}
