package filterexpr

import (
	"reflect"
	"strings"
	"testing"
)

type listParams struct {
	Filter  string
	OrderBy string

	Name       *string
	NamePrefix *string
	Names      []string
	MinCount   *int
	MaxCount   *int

	PrimaryKey    string
	PrimaryDesc   bool
	SecondaryKey  string
	SecondaryDesc bool
}

func (p *listParams) GetFilter() string  { return p.Filter }
func (p *listParams) GetOrderBy() string { return p.OrderBy }

var testSchema = ResourceSchema{
	Filter: map[string]FilterField{
		"name": {
			Kind: KindString,
			Ops:  map[Op]string{OpEQ: "Name", OpSW: "NamePrefix", OpIN: "Names"},
		},
		"questions": {
			Kind: KindNumber,
			Ops:  map[Op]string{OpGTE: "MinCount", OpLTE: "MaxCount"},
		},
	},
	Order: OrderSchema{
		DefaultPrimary: "name",
		FallbackKey:    "questions",
		Keys:           []string{"name", "questions"},
	},
}

func TestBind_FilterConjunction(t *testing.T) {
	p := &listParams{Filter: "name.startsWith('Ani') && questions >= 5 && questions <= 30"}
	if err := Bind(p, p, testSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if p.NamePrefix == nil || *p.NamePrefix != "Ani" {
		t.Fatalf("expected NamePrefix 'Ani', got %v", p.NamePrefix)
	}
	if p.MinCount == nil || *p.MinCount != 5 {
		t.Fatalf("expected MinCount 5, got %v", p.MinCount)
	}
	if p.MaxCount == nil || *p.MaxCount != 30 {
		t.Fatalf("expected MaxCount 30, got %v", p.MaxCount)
	}
	if p.Name != nil {
		t.Fatalf("expected Name to stay nil, got %v", *p.Name)
	}
	if p.PrimaryKey != "name" || p.PrimaryDesc || p.SecondaryKey != "questions" {
		t.Fatalf("unexpected default order: %+v", p)
	}
}

func TestBind_InList(t *testing.T) {
	p := &listParams{Filter: "name in ['Animals', 'Food']"}
	if err := Bind(p, p, testSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if !reflect.DeepEqual(p.Names, []string{"Animals", "Food"}) {
		t.Fatalf("unexpected Names: %v", p.Names)
	}
}

func TestBind_OrderBy(t *testing.T) {
	p := &listParams{OrderBy: "questions desc"}
	if err := Bind(p, p, testSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if p.PrimaryKey != "questions" || !p.PrimaryDesc {
		t.Fatalf("unexpected primary order: %s desc=%v", p.PrimaryKey, p.PrimaryDesc)
	}
	if p.SecondaryKey != "name" {
		t.Fatalf("expected secondary key to avoid duplicating primary, got %q", p.SecondaryKey)
	}
}

func TestBind_Rejects(t *testing.T) {
	cases := []struct {
		name, filter, orderBy, want string
	}{
		{"or", "name == 'a' || name == 'b'", "", "only AND"},
		{"unknown field", "level == 3", "", "is not allowed"},
		{"wrong operator", "questions == 3", "", "not allowed"},
		{"fractional count", "questions >= 2.5", "", "non-integer"},
		{"unknown order key", "", "created_at", "cannot be used"},
		{"bad direction", "", "name up", "invalid order segment"},
		{"duplicate order key", "", "name, name desc", "duplicate"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &listParams{Filter: c.filter, OrderBy: c.orderBy}
			err := Bind(p, p, testSchema)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}
