package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq     = "eq"
	FilterOperatorIn     = "in"
	FilterOperatorIsNull = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Clause renders a parenthesizable SQL condition with named sqlx arguments.
type Clause interface {
	GetWhereClause() (string, map[string]any)
}

type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq in is_null"`
	Table    string
}

// Eq matches a column against a single value.
func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorEq}
}

// In matches a column against every element of a slice value.
func In(table, field string, values any) Filter {
	return Filter{Table: table, Field: field, Value: values, Operator: FilterOperatorIn}
}

func IsNull(table, field string) Filter {
	return Filter{Table: table, Field: field, Operator: FilterOperatorIsNull}
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) argName() string {
	if f.ArgName != "" {
		return f.ArgName
	}

	if f.Table == "" {
		return f.Field
	}

	return f.Table + "_" + f.Field
}

// GetWhereClause renders the filter. An IN over a non-slice or an empty slice never
// matches, so an empty carrier list cannot widen a query.
func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column := f.column()
	argName := f.argName()

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if !val.IsValid() || (val.Kind() != reflect.Slice && val.Kind() != reflect.Array) || val.Len() == 0 {
			return "FALSE", args
		}

		named := make([]string, val.Len())

		for idx := range val.Len() {
			name := fmt.Sprintf("%s_%d", argName, idx)
			args[name] = val.Index(idx).Interface()
			named[idx] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	case FilterOperatorIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

type FilterGroup struct {
	Filters  []Clause
	Operator string
}

// And joins clauses so that every one must hold.
func And(clauses ...Clause) FilterGroup {
	return FilterGroup{Filters: clauses, Operator: FilterGroupOperatorAnd}
}

func Or(clauses ...Clause) FilterGroup {
	return FilterGroup{Filters: clauses, Operator: FilterGroupOperatorOr}
}

// Where appends a clause and returns the widened group.
func (f FilterGroup) Where(clause Clause) FilterGroup {
	f.Filters = append(append([]Clause{}, f.Filters...), clause)

	return f
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		where, arg := filter.GetWhereClause()
		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
