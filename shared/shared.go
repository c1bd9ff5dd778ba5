package shared

import (
	"reflect"
	"strconv"
	"strings"

	"tripbook/shared/constant"
	"tripbook/shared/dto"
	"tripbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

// ParseOptionalBool reads a query flag. Empty and unparseable values are absent.
func ParseOptionalBool(value string) *bool {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring malformed boolean")

		return nil
	}

	return &parsed
}

// SplitList splits a comma separated query value, trimming blanks and dropping empty entries.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, constant.ListSeparator)
	res := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}

// CalculateTotalPage never answers fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields turns the non-zero db-tagged fields of patch into an update map stamped
// with the modifying actor.
func TransformFields(patch any, actor string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(patch))
	typ := val.Type()

	fields := make(map[string]any, typ.NumField()+2)

	for i := range typ.NumField() {
		column := typ.Field(i).Tag.Get("db")
		if column == "" || column == "-" || val.Field(i).IsZero() {
			continue
		}

		fields[column] = val.Field(i).Interface()
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = actor

	return fields
}

func FilterByField(value any, field, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, field, value))
}
