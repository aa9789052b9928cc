package tabq

import (
	"strconv"
	"time"

	"github.com/mitranim/sqlb"
)

/*
Target SQL engine's syntax variant. The zero value is the generic MySQL-like
dialect, which is also the default for a zero `Conf`.
*/
type Dialect byte

const (
	DialectMysql Dialect = iota
	DialectPostgres
	DialectOracle
)

// Default count column when `Conf.CountColumn` is empty.
const defaultCountColumn = `id`

/*
Static configuration for one logical table/endpoint. Constructed once,
shared freely: every operation in this package treats it as read-only.

`WhereAndSql` is inserted into WHERE clauses verbatim. It crosses the trust
boundary unescaped; it must come from the application, never from a client.
*/
type Conf struct {
	TableName   string
	CountColumn string
	SchemaName  string
	SearchCols  []string
	SelectSql   string
	FromSql     string
	WhereAndSql string
	DateColumn  string
	DateFrom    *time.Time
	DateTo      *time.Time
	Dialect     Dialect
}

/*
One incoming request, shaped like the server-side processing protocol's JSON.
`Searchable` and `Orderable` are the protocol's string booleans, compared
against the literal "true". `Start` and `Length` are pointers because the
protocol distinguishes an absent value from 0.
*/
type Req struct {
	Draw    string   `json:"draw"`
	Search  Search   `json:"search"`
	Columns []Column `json:"columns"`
	Order   []Order  `json:"order"`
	Start   *int     `json:"start"`
	Length  *int     `json:"length"`
}

// Search term holder, used both globally and per column.
type Search struct {
	Value string `json:"value"`
}

// One column descriptor from the request.
type Column struct {
	Data       string `json:"data"`
	Name       string `json:"name"`
	Searchable string `json:"searchable"`
	Orderable  string `json:"orderable"`
	Search     Search `json:"search"`
}

// One ordering entry from the request. `Column` indexes into `Req.Columns`.
type Order struct {
	Column int    `json:"column"`
	Dir    string `json:"dir"`
}

/*
The statements answering one request. Text only; nothing here has touched a
database. Empty string means "statement not needed". `Select` always begins
with the word SELECT. `RecordsFiltered` is present only when the request
carried a usable global search term.
*/
type Stmts struct {
	ChangeSchema    string
	RecordsTotal    string
	RecordsFiltered string
	Select          string
}

var _ = sqlb.IQuery(Stmts{})

/*
Implement `sqlb.IQuery` with the data statement, allowing the statement set
to be embedded as a sub-query in larger `sqlb` queries. The text is appended
as-is, without template interpolation.
*/
func (self Stmts) QueryAppend(out *sqlb.Query) {
	appendSpaceIfNeeded(&out.Text)
	appendStr(&out.Text, self.Select)
}

/*
Builds the statement set for one request. Pure function: no state survives
the call, and identical inputs always produce identical output. A nil
request produces a zero `Stmts` rather than an error.

The global search term is sanitized once; a non-empty survivor marks the
query as filtered, which is what triggers the `RecordsFiltered` statement.
Per-column search terms narrow the result set but do not, by themselves,
mark the query as filtered.
*/
func BuildQuery(conf Conf, req *Req) Stmts {
	if req == nil {
		return Stmts{}
	}

	var stmts Stmts

	if conf.SchemaName != `` {
		stmts.ChangeSchema = changeSchemaStmt(conf.Dialect, conf.SchemaName)
	}

	where := BuildWhere(conf, req)

	count := `SELECT COUNT(` + countColumn(conf) + `) FROM ` + sqlSource(conf)
	stmts.RecordsTotal = count + where

	term, ok := Sanitize(req.Search.Value)
	if ok && term != `` {
		stmts.RecordsFiltered = count + where
	}

	sel := selectStmt(conf) + where + BuildOrder(req)

	if conf.Dialect == DialectOracle {
		stmts.Select = wrapRownum(sel, req)
	} else {
		stmts.Select = sel + BuildLimit(conf, req)
	}

	return stmts
}

func selectStmt(conf Conf) string {
	target := conf.SelectSql
	if target == `` {
		target = `*`
	}
	return `SELECT ` + target + ` FROM ` + sqlSource(conf)
}

func sqlSource(conf Conf) string {
	if conf.FromSql != `` {
		return conf.FromSql
	}
	return conf.TableName
}

func countColumn(conf Conf) string {
	if conf.CountColumn != `` {
		return conf.CountColumn
	}
	return defaultCountColumn
}

func changeSchemaStmt(dialect Dialect, schema string) string {
	if dialect == DialectOracle {
		return `ALTER SESSION SET CURRENT_SCHEMA = ` + schema
	}
	return `USE ` + schema
}

/*
Oracle lacks a native offset/limit clause, so pagination wraps the entire
data statement in the classic ROWNUM subquery pair. Requires both a
non-negative start and a positive length; otherwise the statement is left
unwrapped and fetches everything.
*/
func wrapRownum(sel string, req *Req) string {
	if req.Start == nil || *req.Start < 0 || req.Length == nil || *req.Length <= 0 {
		return sel
	}

	lo := *req.Start + 1
	hi := *req.Start + *req.Length

	return `SELECT * FROM (SELECT a.*, ROWNUM rnum FROM (` + sel +
		`) a) WHERE rnum BETWEEN ` + strconv.Itoa(lo) + ` AND ` + strconv.Itoa(hi)
}
