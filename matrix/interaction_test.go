package matrix

import (
	"math"
	"reflect"
	"testing"

	"github.com/rushteam/retailcf/core"
)

func TestBuildInteraction_Aggregation(t *testing.T) {
	m, err := BuildInteraction([]core.Transaction{
		{CustomerID: "c1", ProductID: "p1", Strength: 2},
		{CustomerID: "c1", ProductID: "p1", Strength: 3},
		{CustomerID: "c2", ProductID: "p2", Strength: 1},
	})
	if err != nil {
		t.Fatalf("BuildInteraction() error = %v", err)
	}

	if got := m.Strength("c1", "p1"); got != 5 {
		t.Errorf("Strength(c1, p1) = %v, want 5 (sum of records)", got)
	}
}

func TestBuildInteraction_ZeroFill(t *testing.T) {
	m, err := BuildInteraction([]core.Transaction{
		{CustomerID: "c1", ProductID: "p1", Strength: 3},
		{CustomerID: "c2", ProductID: "p2", Strength: 1},
	})
	if err != nil {
		t.Fatalf("BuildInteraction() error = %v", err)
	}

	// absent pairs must be exactly 0, never undefined
	if got := m.Strength("c1", "p2"); got != 0 {
		t.Errorf("Strength(c1, p2) = %v, want 0", got)
	}
	if got := m.Strength("c2", "p1"); got != 0 {
		t.Errorf("Strength(c2, p1) = %v, want 0", got)
	}
}

func TestBuildInteraction_ZeroStrengthRowKeepsShape(t *testing.T) {
	// a customer observed only with strength-0 records still occupies a row
	m, err := BuildInteraction([]core.Transaction{
		{CustomerID: "c1", ProductID: "p1", Strength: 3},
		{CustomerID: "c2", ProductID: "p1", Strength: 0},
	})
	if err != nil {
		t.Fatalf("BuildInteraction() error = %v", err)
	}

	c, p := m.Dims()
	if c != 2 || p != 1 {
		t.Fatalf("Dims() = (%d, %d), want (2, 1)", c, p)
	}
	i, ok := m.CustomerIndex("c2")
	if !ok {
		t.Fatal("CustomerIndex(c2) missing")
	}
	for j, v := range m.Row(i) {
		if v != 0 {
			t.Errorf("Row(c2)[%d] = %v, want 0", j, v)
		}
	}
}

func TestBuildInteraction_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []core.Transaction
		check   func(error) bool
		errName string
	}{
		{
			name:    "empty input",
			records: nil,
			check:   core.IsEmptyInput,
			errName: "EMPTY_INPUT",
		},
		{
			name: "negative strength",
			records: []core.Transaction{
				{CustomerID: "c1", ProductID: "p1", Strength: 2},
				{CustomerID: "c1", ProductID: "p2", Strength: -1},
			},
			check:   core.IsInvalidRecord,
			errName: "INVALID_RECORD",
		},
		{
			name: "NaN strength",
			records: []core.Transaction{
				{CustomerID: "c1", ProductID: "p1", Strength: math.NaN()},
			},
			check:   core.IsInvalidRecord,
			errName: "INVALID_RECORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildInteraction(tt.records)
			if m != nil {
				t.Errorf("BuildInteraction() matrix = %v, want nil", m)
			}
			if !tt.check(err) {
				t.Errorf("BuildInteraction() error = %v, want %s", err, tt.errName)
			}
		})
	}
}

func TestBuildInteraction_DeterministicOrder(t *testing.T) {
	records := []core.Transaction{
		{CustomerID: "c3", ProductID: "p2", Strength: 1},
		{CustomerID: "c1", ProductID: "p9", Strength: 1},
		{CustomerID: "c2", ProductID: "p1", Strength: 1},
	}

	m1, err := BuildInteraction(records)
	if err != nil {
		t.Fatalf("BuildInteraction() error = %v", err)
	}
	m2, err := BuildInteraction(records)
	if err != nil {
		t.Fatalf("BuildInteraction() error = %v", err)
	}

	wantCustomers := []string{"c1", "c2", "c3"}
	wantProducts := []string{"p1", "p2", "p9"}
	if !reflect.DeepEqual(m1.Customers(), wantCustomers) {
		t.Errorf("Customers() = %v, want %v", m1.Customers(), wantCustomers)
	}
	if !reflect.DeepEqual(m1.Products(), wantProducts) {
		t.Errorf("Products() = %v, want %v", m1.Products(), wantProducts)
	}
	if !reflect.DeepEqual(m1.Customers(), m2.Customers()) || !reflect.DeepEqual(m1.Products(), m2.Products()) {
		t.Error("repeated builds produced different orderings")
	}
}

func TestInteraction_Density(t *testing.T) {
	m, err := BuildInteraction([]core.Transaction{
		{CustomerID: "c1", ProductID: "p1", Strength: 3},
		{CustomerID: "c1", ProductID: "p2", Strength: 1},
		{CustomerID: "c2", ProductID: "p1", Strength: 2},
	})
	if err != nil {
		t.Fatalf("BuildInteraction() error = %v", err)
	}

	if got := m.NonZero(); got != 3 {
		t.Errorf("NonZero() = %d, want 3", got)
	}
	// 3 nonzero cells out of 2x2
	if got := m.Density(); got != 0.75 {
		t.Errorf("Density() = %v, want 0.75", got)
	}
}
