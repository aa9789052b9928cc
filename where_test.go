package tabq

import (
	"strings"
	"testing"
)

func TestBuildWhereEmpty(t *testing.T) {
	eq(t, ``, BuildWhere(Conf{TableName: `users`}, &Req{}))
	eq(t, ``, BuildWhere(Conf{TableName: `users`}, nil))
}

func TestBuildWhereGlobalSearch(t *testing.T) {
	t.Run(`mysql`, func(t *testing.T) {
		conf := Conf{TableName: `users`, SearchCols: []string{`name`, `email`}}
		req := Req{Search: Search{Value: `ann`}}
		eq(t,
			` WHERE ((name LIKE '%ann%' OR email LIKE '%ann%'))`,
			BuildWhere(conf, &req),
		)
	})

	t.Run(`postgres`, func(t *testing.T) {
		conf := Conf{
			TableName:  `users`,
			Dialect:    DialectPostgres,
			SearchCols: []string{`name`, `email`},
		}
		req := Req{Search: Search{Value: `ann`}}
		eq(t,
			` WHERE ((CAST(name AS text) ILIKE '%ann%' OR CAST(email AS text) ILIKE '%ann%'))`,
			BuildWhere(conf, &req),
		)
	})

	t.Run(`no_allowlist_no_global_search`, func(t *testing.T) {
		req := Req{Search: Search{Value: `ann`}}
		eq(t, ``, BuildWhere(Conf{TableName: `users`}, &req))
	})

	t.Run(`term_is_escaped`, func(t *testing.T) {
		conf := Conf{TableName: `users`, SearchCols: []string{`name`}}
		req := Req{Search: Search{Value: `o'hara`}}
		eq(t, ` WHERE ((name LIKE '%o\'hara%'))`, BuildWhere(conf, &req))
	})
}

func TestBuildWhereColumnSearch(t *testing.T) {
	t.Run(`and_joined`, func(t *testing.T) {
		req := Req{Columns: []Column{
			{Name: `name`, Searchable: `true`, Search: Search{Value: `ann`}},
			{Name: `city`, Searchable: `true`, Search: Search{Value: `oslo`}},
		}}
		eq(t,
			` WHERE ((name LIKE '%ann%' AND city LIKE '%oslo%'))`,
			BuildWhere(Conf{TableName: `users`}, &req),
		)
	})

	t.Run(`skips_unsearchable_and_empty`, func(t *testing.T) {
		req := Req{Columns: []Column{
			{Name: `name`, Searchable: `false`, Search: Search{Value: `ann`}},
			{Name: `city`, Searchable: `true`, Search: Search{Value: ``}},
			{Name: ``, Searchable: `true`, Search: Search{Value: `oslo`}},
			{Name: `age`, Searchable: `true`, Search: Search{Value: `4`}},
		}}
		eq(t, ` WHERE ((age LIKE '%4%'))`, BuildWhere(Conf{TableName: `users`}, &req))
	})

	t.Run(`rejected_value_dropped`, func(t *testing.T) {
		req := Req{Columns: []Column{
			{Name: `name`, Searchable: `true`, Search: Search{Value: strings.Repeat(`a`, 300)}},
		}}
		eq(t, ``, BuildWhere(Conf{TableName: `users`}, &req))
	})
}

func TestBuildWhereBothGroups(t *testing.T) {
	conf := Conf{TableName: `users`, SearchCols: []string{`name`, `email`}}
	req := Req{
		Search: Search{Value: `ann`},
		Columns: []Column{
			{Name: `city`, Searchable: `true`, Search: Search{Value: `oslo`}},
		},
	}
	eq(t,
		` WHERE ((city LIKE '%oslo%') AND (name LIKE '%ann%' OR email LIKE '%ann%'))`,
		BuildWhere(conf, &req),
	)
}

func TestBuildWhereCustomSql(t *testing.T) {
	conf := Conf{TableName: `users`, WhereAndSql: `deleted_at IS NULL`}
	eq(t, ` WHERE (deleted_at IS NULL)`, BuildWhere(conf, &Req{}))
}

func TestBuildWhereDateRange(t *testing.T) {
	t.Run(`both_bounds`, func(t *testing.T) {
		conf := Conf{
			TableName:  `users`,
			DateColumn: `created_at`,
			DateFrom:   timep(`2024-01-01T00:00:00Z`),
			DateTo:     timep(`2024-12-31T23:59:59Z`),
		}
		eq(t,
			` WHERE (created_at BETWEEN '2024-01-01T00:00:00' AND '2024-12-31T23:59:59')`,
			BuildWhere(conf, &Req{}),
		)
	})

	t.Run(`from_only`, func(t *testing.T) {
		conf := Conf{
			TableName:  `users`,
			DateColumn: `created_at`,
			DateFrom:   timep(`2024-01-01T00:00:00Z`),
		}
		eq(t, ` WHERE (created_at >= '2024-01-01T00:00:00')`, BuildWhere(conf, &Req{}))
	})

	t.Run(`to_only`, func(t *testing.T) {
		conf := Conf{
			TableName:  `users`,
			DateColumn: `created_at`,
			DateTo:     timep(`2024-12-31T23:59:59Z`),
		}
		eq(t, ` WHERE (created_at <= '2024-12-31T23:59:59')`, BuildWhere(conf, &Req{}))
	})

	t.Run(`column_without_bounds`, func(t *testing.T) {
		conf := Conf{TableName: `users`, DateColumn: `created_at`}
		eq(t, ``, BuildWhere(conf, &Req{}))
	})
}

func TestBuildWherePredicateOrder(t *testing.T) {
	conf := Conf{
		TableName:   `users`,
		SearchCols:  []string{`name`},
		WhereAndSql: `deleted_at IS NULL`,
		DateColumn:  `created_at`,
		DateFrom:    timep(`2024-01-01T00:00:00Z`),
	}
	req := Req{Search: Search{Value: `ann`}}
	eq(t,
		` WHERE ((name LIKE '%ann%')) AND (deleted_at IS NULL) AND (created_at >= '2024-01-01T00:00:00')`,
		BuildWhere(conf, &req),
	)
}
