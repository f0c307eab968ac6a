package domain

import "testing"

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range AllCategories() {
		if !c.IsValid() {
			t.Errorf("Category(%q).IsValid() = false, want true", c)
		}
	}

	if Category("molecular-foams").IsValid() {
		t.Error("unknown category reported valid")
	}
	if Category("").IsValid() {
		t.Error("empty category reported valid")
	}
}

func TestCategory_Significant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     bool
	}{
		{CategoryVodka, true},
		{CategoryGin, true},
		{CategoryWhisky, true},
		{CategoryIce, false},
		{CategoryDecoration, false},
		{CategoryMixers, false},
		{CategoryFruits, false},
		// Categories outside the enumeration fail safe toward stricter
		// matching.
		{Category("molecular-foams"), true},
		{Category(""), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			if got := tt.category.Significant(); got != tt.want {
				t.Errorf("Category(%q).Significant() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestIngredientSet(t *testing.T) {
	t.Parallel()

	set := NewIngredientSet([]Ingredient{
		{Code: "rum-001"},
		{Code: "lime-002"},
		{Code: "rum-001"}, // duplicate collapses
	})

	if len(set) != 2 {
		t.Fatalf("set size = %d, want 2", len(set))
	}
	if !set.Has("rum-001") || !set.Has("lime-002") {
		t.Error("set is missing inserted codes")
	}
	if set.Has("gin-003") {
		t.Error("set reports code it does not contain")
	}
	if got := len(set.Codes()); got != 2 {
		t.Errorf("Codes() length = %d, want 2", got)
	}
}

func TestUser_FullName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user User
		want string
	}{
		{"first and last", User{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", User{FirstName: "Ada"}, "Ada"},
		{"falls back to username", User{Username: "ada"}, "ada"},
		{"empty", User{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.user.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}
