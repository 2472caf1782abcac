package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"hims/shared"
	"hims/shared/constant"
	"hims/shared/dto"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func stringPtr(s string) *string { return &s }

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid number",
			input:    "42",
			expected: intPtr(42),
		},
		{
			name:     "zero",
			input:    "0",
			expected: intPtr(0),
		},
		{
			name:     "negative number",
			input:    "-3",
			expected: intPtr(-3),
		},
		{
			name:     "invalid string returns nil",
			input:    "forty-two",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToInt(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type testStruct struct {
		Name       string `db:"name"`
		Email      string `db:"email"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
	}

	tests := []struct {
		name     string
		data     interface{}
		expected map[string]any
	}{
		{
			name: "populated fields only",
			data: testStruct{
				Name:    "John Doe",
				Email:   "john@example.com",
				NoDBTag: "ignored",
			},
			expected: map[string]any{
				"name":  "John Doe",
				"email": "john@example.com",
			},
		},
		{
			name:     "all zero values",
			data:     testStruct{},
			expected: map[string]any{},
		},
		{
			name: "partial fields",
			data: testStruct{
				Name: "Jane Doe",
			},
			expected: map[string]any{
				"name": "Jane Doe",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if result[constant.FieldUpdatedAt] == nil {
				t.Error("expected updated_at to be set")
			}

			if _, ok := result[constant.FieldUpdatedAt].(time.Time); !ok {
				t.Error("expected updated_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldUpdatedAt {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type testStructWithPointers struct {
		Age    *int    `db:"age"`
		Name   *string `db:"name"`
		Floor  *int    `db:"floor"`
		Absent *string `db:"absent"`
	}

	floor := 0 // zero behind a pointer is still an explicit value

	data := testStructWithPointers{
		Age:   intPtr(30),
		Name:  stringPtr("John"),
		Floor: &floor,
	}

	result := shared.TransformFields(data)

	expectedFields := map[string]any{
		"age":   30,
		"name":  "John",
		"floor": 0,
	}

	for key, expectedValue := range expectedFields {
		if actualValue, exists := result[key]; !exists {
			t.Errorf("expected field %s to exist", key)
		} else if !reflect.DeepEqual(actualValue, expectedValue) {
			t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
		}
	}

	if _, exists := result["absent"]; exists {
		t.Error("expected nil pointer field to be skipped")
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "patients")

	expected := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "patients",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestFilterSearch(t *testing.T) {
	group := shared.FilterSearch("jane", "patients", "first_name", "last_name", "phone")

	if group.Operator != dto.FilterGroupOperatorOr {
		t.Errorf("expected OR group, got %s", group.Operator)
	}

	if len(group.Filters) != 3 {
		t.Fatalf("expected 3 filters, got %d", len(group.Filters))
	}

	where, args := group.GetWhereClause()

	if len(args) != 1 {
		t.Errorf("expected a single shared argument, got %d", len(args))
	}

	if args[constant.RequestParamSearch] != "%jane%" {
		t.Errorf("expected shared search argument, got %v", args)
	}

	for _, field := range []string{"first_name", "last_name", "phone"} {
		filterText := "LOWER(patients." + field + ") LIKE LOWER(:search)"
		if !strings.Contains(where, filterText) {
			t.Errorf("expected clause to contain %q, got %q", filterText, where)
		}
	}
}
