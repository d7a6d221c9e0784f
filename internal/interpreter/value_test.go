package interpreter

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{0.0001, "0.0001"},
		{123456789, "123456789.0"},
		{1e16, "1e+16"},
		{1e-5, "1e-05"},
		{1.5e300, "1.5e+300"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, tc := range tests {
		if got := formatFloat(tc.in); got != tc.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReprAndString(t *testing.T) {
	tests := []struct {
		v    Value
		repr string
		str  string
	}{
		{None, "None", "None"},
		{NewInt(-7), "-7", "-7"},
		{NewFloat(2), "2.0", "2.0"},
		{NewBool(true), "True", "True"},
		{NewBool(false), "False", "False"},
		{NewString("hi"), "'hi'", "hi"},
		{NewString("it's"), `"it's"`, "it's"},
		{NewString("a\nb"), `'a\nb'`, "a\nb"},
		{NewList(), "[]", "[]"},
		{
			NewList(NewInt(1), NewString("a"), NewFloat(2), NewBool(true), None, NewList()),
			"[1, 'a', 2.0, True, None, []]",
			"[1, 'a', 2.0, True, None, []]",
		},
	}
	for _, tc := range tests {
		if got := tc.v.Repr(); got != tc.repr {
			t.Errorf("Repr() = %q, want %q", got, tc.repr)
		}
		if got := tc.v.String(); got != tc.str {
			t.Errorf("String() = %q, want %q", got, tc.str)
		}
	}
}

func TestSelfReferencingList(t *testing.T) {
	l := NewList(NewInt(1))
	l.AsList().Elements = append(l.AsList().Elements, l)

	if got := l.Repr(); got != "[1, [...]]" {
		t.Errorf("Repr() = %q", got)
	}
	native, ok := l.Interface().([]any)
	if !ok || len(native) != 2 || native[1] != nil {
		t.Errorf("Interface() = %#v", l.Interface())
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{None, false},
		{NewBool(false), false},
		{NewInt(0), false},
		{NewFloat(0), false},
		{NewString(""), false},
		{NewList(), false},
		{NewBool(true), true},
		{NewInt(-1), true},
		{NewFloat(0.5), true},
		{NewString("0"), true},
		{NewList(None), true},
	}
	for _, tc := range tests {
		if got := tc.v.Truthy(); got != tc.want {
			t.Errorf("%s.Truthy() = %v, want %v", tc.v.Repr(), got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{NewInt(1), NewFloat(1), true},
		{NewBool(true), NewInt(1), true},
		{NewBool(false), NewFloat(0), true},
		{NewString("1"), NewInt(1), false},
		{None, None, true},
		{None, NewInt(0), false},
		{NewList(NewInt(1), NewInt(2)), NewList(NewFloat(1), NewInt(2)), true},
		{NewList(NewInt(1)), NewList(NewInt(1), NewInt(2)), false},
		{NewString("a"), NewString("a"), true},
	}
	for _, tc := range tests {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", tc.a.Repr(), tc.b.Repr(), got, tc.want)
		}
	}
}

func TestInterface(t *testing.T) {
	v := NewList(NewInt(1), NewFloat(1.5), NewString("x"), NewBool(true), None)
	got, ok := v.Interface().([]any)
	if !ok || len(got) != 5 {
		t.Fatalf("Interface() = %#v", v.Interface())
	}
	want := []any{int64(1), 1.5, "x", true, nil}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}
