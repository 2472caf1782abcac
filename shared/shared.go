package shared

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hims/shared/constant"
	"hims/shared/dto"
	"hims/shared/timezone"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// TransformFields converts the non-zero fields of a partial update payload
// into a column map, always stamping the updated timestamp. Zero-valued
// fields are treated as absent, which is why optional payload fields are
// pointers.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterSearch builds a case-insensitive match over several columns. All
// branches share one argument name so the bound search term is reused
// across the whole group.
func FilterSearch(search, table string, fields ...string) dto.FilterGroup {
	filters := make([]any, 0, len(fields))
	for _, field := range fields {
		filters = append(filters, dto.Filter{
			ArgName:  constant.RequestParamSearch,
			Field:    field,
			Value:    search,
			Operator: dto.FilterOperatorLike,
			Table:    table,
		})
	}

	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters:  filters,
	}
}
