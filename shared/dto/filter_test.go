package dto_test

import (
	"testing"

	"hims/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name          string
		filter        dto.Filter
		expectedWhere string
		expectedArgs  map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "gender",
				Value:    "male",
				Operator: dto.FilterOperatorEq,
				Table:    "patients",
			},
			expectedWhere: "patients.gender = :gender",
			expectedArgs:  map[string]any{"gender": "male"},
		},
		{
			name: "like operator wraps value in wildcards",
			filter: dto.Filter{
				Field:    "building",
				Value:    "North",
				Operator: dto.FilterOperatorLike,
				Table:    "rooms",
			},
			expectedWhere: "LOWER(rooms.building) LIKE LOWER(:building) ",
			expectedArgs:  map[string]any{"building": "%North%"},
		},
		{
			name: "plain query passthrough",
			filter: dto.Filter{
				Value:    "termination_date IS NULL",
				Operator: dto.FilterPlainQuery,
			},
			expectedWhere: "(termination_date IS NULL)",
			expectedArgs:  map[string]any{},
		},
		{
			name: "is null operator binds nothing",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
				Table:    "staff",
			},
			expectedWhere: "staff.deleted_at IS NULL",
			expectedArgs:  map[string]any{},
		},
		{
			name: "without table prefix",
			filter: dto.Filter{
				Field:    "floor",
				Value:    3,
				Operator: dto.FilterOperatorEq,
			},
			expectedWhere: "floor = :floor",
			expectedArgs:  map[string]any{"floor": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.expectedWhere {
				t.Errorf("expected where %q, got %q", tt.expectedWhere, where)
			}

			if len(args) != len(tt.expectedArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.expectedArgs), len(args))
			}

			for key, expected := range tt.expectedArgs {
				if args[key] != expected {
					t.Errorf("expected arg %s to be %v, got %v", key, expected, args[key])
				}
			}
		})
	}
}

func TestFilter_GetWhereClause_In(t *testing.T) {
	filter := dto.Filter{
		Field:    "room_type",
		Value:    []string{"ICU", "VIP"},
		Operator: dto.FilterOperatorIn,
		Table:    "rooms",
	}

	where, args := filter.GetWhereClause()

	if where != "rooms.room_type IN (:room_type_0, :room_type_1) " {
		t.Errorf("unexpected where clause: %q", where)
	}

	if args["room_type_0"] != "ICU" || args["room_type_1"] != "VIP" {
		t.Errorf("unexpected args: %v", args)
	}
}

// A search group spans several columns but binds a single named parameter:
// every OR branch reuses the same arg, so one bound value satisfies the
// whole group.
func TestFilterGroup_SharedSearchArg(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "search", Field: "first_name", Value: "som", Operator: dto.FilterOperatorLike, Table: "patients"},
			dto.Filter{ArgName: "search", Field: "last_name", Value: "som", Operator: dto.FilterOperatorLike, Table: "patients"},
			dto.Filter{ArgName: "search", Field: "phone", Value: "som", Operator: dto.FilterOperatorLike, Table: "patients"},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(LOWER(patients.first_name) LIKE LOWER(:search)  OR LOWER(patients.last_name) LIKE LOWER(:search)  OR LOWER(patients.phone) LIKE LOWER(:search) )"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 1 {
		t.Fatalf("expected a single shared arg, got %d: %v", len(args), args)
	}

	if args["search"] != "%som%" {
		t.Errorf("expected shared arg to be %%som%%, got %v", args["search"])
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq, Table: "rooms"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "search", Field: "room_number", Value: "A1", Operator: dto.FilterOperatorLike, Table: "rooms"},
					dto.Filter{ArgName: "search", Field: "building", Value: "A1", Operator: dto.FilterOperatorLike, Table: "rooms"},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(rooms.is_active = :is_active AND (LOWER(rooms.room_number) LIKE LOWER(:search)  OR LOWER(rooms.building) LIKE LOWER(:search) ))"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d: %v", len(args), args)
	}
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
