/*
Overview

"Tabular queries". Converts the "server-side processing" protocol spoken by
grid/table UI widgets into SQL statement text, and converts raw query results
back into the response envelope the widgets expect.

A request describes one page of one table: which rows (search terms), in
which order, and which slice. From it, plus a static per-table configuration,
this package produces the minimal set of statements needed to answer it:

  stmts := tabq.BuildQuery(conf, &req)

  stmts.ChangeSchema     // optional schema switch
  stmts.RecordsTotal     // count statement
  stmts.RecordsFiltered  // count statement, present only when searching
  stmts.Select           // the data statement

The package never executes SQL and never touches a connection. The caller
runs the statements through its own database layer and hands the raw rows
back:

  res := tabq.ParseRes(&req, &raw)

Dialects

Statement text differs by target engine. The dialect is a closed enum:

  DialectMysql     LIKE           USE x              LIMIT start, len
  DialectPostgres  ILIKE + cast   USE x              OFFSET start LIMIT len
  DialectOracle    LIKE           ALTER SESSION ...  ROWNUM subquery wrap

Security posture

Untrusted strings are embedded into statement text after escaping a fixed
character set; see `Sanitize`. This is escaping, NOT bind-variable
parameterization, and is the weaker guarantee: it reduces injection risk but
cannot eliminate it the way true parameter binding does. It is kept for
wire-level compatibility with the protocol's existing deployments. Callers
needing strict safety should bind values through their driver and restrict
this package to structural fragments.

Two further compatibility quirks are preserved deliberately. A string the
sanitizer rejects (oversized input) silently drops the predicate it would
have produced, so a rejected filter widens the result set rather than
failing the request. And the "total" count statement shares its WHERE clause
with the filtered count; the two differ only in whether the filtered
statement is emitted at all.

Statelessness

Every operation is a pure function of its arguments. Nothing bridges
`BuildQuery` and `ParseRes`; callers correlate the two by passing the
request to both. A `Conf` may be shared across any number of concurrent
requests.
*/
package tabq
