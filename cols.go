package tabq

import (
	"reflect"

	"github.com/mitranim/refut"
)

/*
Derives a column allow-list from a struct type's `db` tags, in field
declaration order, for use as `Conf.SearchCols`. Fields of embedded structs
are included; fields without a `db` tag are skipped. The input is used only
as a type carrier:

  type User struct {
    Name  string `json:"name"  db:"name"`
    Email string `json:"email" db:"email"`
  }

  conf := tabq.Conf{TableName: "users", SearchCols: tabq.ColsFor(User{})}
*/
func ColsFor(val interface{}) []string {
	rtype := reflect.TypeOf(val)
	for rtype != nil && rtype.Kind() == reflect.Ptr {
		rtype = rtype.Elem()
	}
	if rtype == nil || rtype.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	err := refut.TraverseStructRtype(rtype, func(sfield reflect.StructField, _ []int) error {
		col := refut.TagIdent(sfield.Tag.Get(`db`))
		if col != `` {
			cols = append(cols, col)
		}
		return nil
	})
	if err != nil {
		return nil
	}
	return cols
}
