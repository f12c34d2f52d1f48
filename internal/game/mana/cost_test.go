package mana

import (
	"reflect"
	"testing"
)

func TestParseCost(t *testing.T) {
	tests := []struct {
		input    string
		expected Cost
		err      bool
	}{
		{"", Cost{}, false},
		{"{1}", CostFromSymbols(Generic(1)), false},
		{"{G}", CostFromSymbols(Green), false},
		{"{1}{G}", CostFromSymbols(Generic(1), Green), false},
		{"{2}{R}{R}", CostFromSymbols(Generic(2), Red, Red), false},
		{"{X}{R}", CostFromSymbols(X, Red), false},
		{"{C}", CostFromSymbols(Colorless), false},
		{"{S}", CostFromSymbols(Snow), false},
		{"{W/U}", CostFromPips(Pip{White, Blue}), false},
		{"{B/P}", CostFromPips(Pip{Black, Life(2)}), false},
		{"{2/G}", CostFromPips(Pip{Generic(2), Green}), false},
		{"{Q}", Cost{}, true},
		{"{W/Q}", Cost{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseCost(tt.input)
			if tt.err {
				if err == nil {
					t.Errorf("Expected error for %s, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for %s: %v", tt.input, err)
				return
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestCost_ManaValue(t *testing.T) {
	tests := []struct {
		cost     string
		xValue   int
		expected int
	}{
		{"{3}{G}{G}", 0, 5},
		{"{W/U}", 0, 1},
		{"{B/P}", 0, 1},
		{"{2/G}", 0, 2},
		{"{X}{X}{R}", 4, 9},
		{"{S}", 0, 1},
		{"", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.cost, func(t *testing.T) {
			cost := MustParseCost(tt.cost)
			if mv := cost.ManaValue(tt.xValue); mv != tt.expected {
				t.Errorf("Expected mana value %d, got %d", tt.expected, mv)
			}
		})
	}
}

func TestCost_HasX(t *testing.T) {
	if !MustParseCost("{X}{R}").HasX() {
		t.Error("Expected {X}{R} to have X")
	}
	if MustParseCost("{2}{R}").HasX() {
		t.Error("Expected {2}{R} not to have X")
	}
}

func TestCost_ReduceGeneric(t *testing.T) {
	tests := []struct {
		cost     string
		by       int
		expected string
	}{
		{"{4}{G}", 2, "{2}{G}"},
		{"{2}{G}", 2, "{G}"},
		{"{1}{G}", 5, "{G}"},
		{"{W}{U}", 3, "{W}{U}"},
		{"{2/G}", 1, "{2/G}"},
	}

	for _, tt := range tests {
		t.Run(tt.cost, func(t *testing.T) {
			reduced := MustParseCost(tt.cost).ReduceGeneric(tt.by)
			if reduced.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, reduced.String())
			}
		})
	}
}

func TestCost_String(t *testing.T) {
	tests := []string{"{1}{G}", "{W/U}", "{B/P}", "{2/G}", "{X}{R}", "{S}{C}"}
	for _, oracle := range tests {
		if got := MustParseCost(oracle).String(); got != oracle {
			t.Errorf("Expected round trip %s, got %s", oracle, got)
		}
	}
	if got := (Cost{}).String(); got != "{0}" {
		t.Errorf("Expected empty cost to render {0}, got %s", got)
	}
}

func TestCost_GenericTotal(t *testing.T) {
	if got := MustParseCost("{3}{1}{G}{2/W}").GenericTotal(); got != 4 {
		t.Errorf("Expected generic total 4, got %d", got)
	}
}
