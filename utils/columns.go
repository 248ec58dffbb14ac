package utils

import "reflect"

// ColumnList returns the "db"-tagged column names of a row struct, in field
// order, for use in squirrel Select clauses.
func ColumnList[T any](prefixes ...string) []string {
	var value T
	modelType := reflect.TypeOf(value)

	var prefix string
	if len(prefixes) > 0 {
		prefix = prefixes[0] + "."
	}

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		tag, ok := modelType.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, prefix+tag)
	}
	return columns
}
