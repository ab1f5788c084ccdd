package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"12.34", 1234},
		{"12,34", 1234},
		{"12", 1200},
		{"0.5", 50},
		{"-0.5", -50},
		{"100.00", 10000},
		{".99", 99},
		{"1.005", 101},
		{"", 0},
		{"abc", 0},
		{"12.ab", 0},
		{"  7,5  ", 750},
	}
	for _, c := range cases {
		if got := Parse(c.in).MinorUnits(); got != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(19.99).MinorUnits(); got != 1999 {
		t.Fatalf("FromFloat(19.99) = %d", got)
	}
	if got := FromFloat(0.1 + 0.2).MinorUnits(); got != 30 {
		t.Fatalf("FromFloat(0.1+0.2) = %d", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := Parse("100.00")
	b := Parse("40.00")

	if got := a.Sub(b).String(); got != "60.00" {
		t.Fatalf("Sub = %s", got)
	}
	if got := a.Add(b).String(); got != "140.00" {
		t.Fatalf("Add = %s", got)
	}
	if got := Min(a, b); got != b {
		t.Fatalf("Min = %s", got)
	}
	if got := Parse("150.00").Clamp(Zero, a); got != a {
		t.Fatalf("Clamp above = %s", got)
	}
	if got := Parse("-1.00").Clamp(Zero, a); got != Zero {
		t.Fatalf("Clamp below = %s", got)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		units int64
		want  string
	}{
		{1234, "12.34"},
		{100, "1.00"},
		{5, "0.05"},
		{0, "0.00"},
		{-1234, "-12.34"},
	}
	for _, c := range cases {
		if got := FromMinorUnits(c.units).String(); got != c.want {
			t.Errorf("String(%d) = %s, want %s", c.units, got, c.want)
		}
	}
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(Parse("12.30"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "12.30" {
		t.Fatalf("marshal = %s", b)
	}

	var a Amount
	if err := json.Unmarshal([]byte("99.95"), &a); err != nil {
		t.Fatal(err)
	}
	if a.MinorUnits() != 9995 {
		t.Fatalf("unmarshal number = %d", a.MinorUnits())
	}

	if err := json.Unmarshal([]byte(`"49,90"`), &a); err != nil {
		t.Fatal(err)
	}
	if a.MinorUnits() != 4990 {
		t.Fatalf("unmarshal comma string = %d", a.MinorUnits())
	}

	if err := json.Unmarshal([]byte("null"), &a); err != nil {
		t.Fatal(err)
	}
	if !a.IsZero() {
		t.Fatalf("unmarshal null = %d", a.MinorUnits())
	}
}
