package querybuilder

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

var (
	errNilModel       = errors.New("querybuilder: model is nil")
	errNotStruct      = errors.New("querybuilder: model is not a struct")
	errNoModelColumns = errors.New("querybuilder: model has no db columns")
)

type modelField struct {
	index     int
	column    string
	omitEmpty bool
}

// fieldCache maps reflect.Type to []modelField.
var fieldCache sync.Map

// InsertModel builds a single-row INSERT from the db tags of model. A tag of
// the form `db:"col,omitempty"` leaves col out when the field is zero, so the
// column default applies.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return "", nil, errNilModel
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", nil, errNotStruct
	}

	fields := modelFields(value.Type())
	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		fv := value.Field(f.index)
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		cols = append(cols, f.column)
		vals = append(vals, fv.Interface())
	}
	if len(cols) == 0 {
		return "", nil, errNoModelColumns
	}

	return InsertInto(table).Columns(cols...).Values(vals...).Suffix(suffix).ToSQL()
}

func modelFields(typ reflect.Type) []modelField {
	if cached, ok := fieldCache.Load(typ); ok {
		return cached.([]modelField)
	}

	fields := make([]modelField, 0, typ.NumField())
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(sf.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, modelField{
			index:     i,
			column:    name,
			omitEmpty: strings.Contains(opts, "omitempty"),
		})
	}

	actual, _ := fieldCache.LoadOrStore(typ, fields)
	return actual.([]modelField)
}
