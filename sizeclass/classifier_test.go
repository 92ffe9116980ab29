package sizeclass

import (
	stderrors "errors"
	"testing"

	protolayout "github.com/wippyai/proto-layout"
	perrors "github.com/wippyai/proto-layout/errors"
	"github.com/wippyai/proto-layout/field"
)

func TestScalarSizeLog2(t *testing.T) {
	tests := []struct {
		kind   field.ScalarKind
		narrow int
		wide   int
	}{
		{field.ScalarBool, 0, 0},
		{field.ScalarFloat, 2, 2},
		{field.ScalarInt32, 2, 2},
		{field.ScalarUInt32, 2, 2},
		{field.ScalarEnum, 2, 2},
		{field.ScalarMessage, 2, 3},
		{field.ScalarDouble, 3, 3},
		{field.ScalarInt64, 3, 3},
		{field.ScalarUInt64, 3, 3},
		{field.ScalarString, 3, 4},
		{field.ScalarBytes, 3, 4},
	}

	narrow := New(protolayout.Addr32)
	wide := New(protolayout.Addr64)

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got, err := narrow.ScalarSizeLog2(tc.kind)
			if err != nil {
				t.Fatalf("narrow: %v", err)
			}
			if got != tc.narrow {
				t.Errorf("narrow: got %d, want %d", got, tc.narrow)
			}

			got, err = wide.ScalarSizeLog2(tc.kind)
			if err != nil {
				t.Fatalf("wide: %v", err)
			}
			if got != tc.wide {
				t.Errorf("wide: got %d, want %d", got, tc.wide)
			}
		})
	}
}

func TestWireSizeLog2(t *testing.T) {
	tests := []struct {
		kind   field.WireKind
		narrow int
		wide   int
	}{
		{field.WireDouble, 3, 3},
		{field.WireFloat, 2, 2},
		{field.WireInt64, 3, 3},
		{field.WireUInt64, 3, 3},
		{field.WireInt32, 2, 2},
		{field.WireFixed64, 3, 3},
		{field.WireFixed32, 2, 2},
		{field.WireBool, 0, 0},
		{field.WireString, 3, 4},
		{field.WireGroup, 2, 3},
		{field.WireMessage, 2, 3},
		{field.WireBytes, 3, 4},
		{field.WireUInt32, 2, 2},
		{field.WireEnum, 2, 2},
		{field.WireSFixed32, 2, 2},
		{field.WireSFixed64, 3, 3},
		{field.WireSInt32, 2, 2},
		{field.WireSInt64, 3, 3},
	}

	narrow := New(protolayout.Addr32)
	wide := New(protolayout.Addr64)

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			got, err := narrow.WireSizeLog2(tc.kind)
			if err != nil {
				t.Fatalf("narrow: %v", err)
			}
			if got != tc.narrow {
				t.Errorf("narrow: got %d, want %d", got, tc.narrow)
			}

			got, err = wide.WireSizeLog2(tc.kind)
			if err != nil {
				t.Fatalf("wide: %v", err)
			}
			if got != tc.wide {
				t.Errorf("wide: got %d, want %d", got, tc.wide)
			}
		})
	}
}

// Wide addressing may only ever widen a class by exactly one, and only for
// reference-bearing kinds.
func TestWideBumpOnlyForReferences(t *testing.T) {
	narrow := New(protolayout.Addr32)
	wide := New(protolayout.Addr64)

	for k := field.ScalarBool; k <= field.ScalarBytes; k++ {
		n, err := narrow.ScalarSizeLog2(k)
		if err != nil {
			t.Fatalf("scalar %s narrow: %v", k, err)
		}
		w, err := wide.ScalarSizeLog2(k)
		if err != nil {
			t.Fatalf("scalar %s wide: %v", k, err)
		}
		if n < 0 || w < 0 {
			t.Errorf("scalar %s: negative size class (%d/%d)", k, n, w)
		}
		want := n
		if k.IsReference() {
			want = n + 1
		}
		if w != want {
			t.Errorf("scalar %s: narrow %d, wide %d, want wide %d", k, n, w, want)
		}
	}

	for k := field.WireDouble; k <= field.WireSInt64; k++ {
		n, err := narrow.WireSizeLog2(k)
		if err != nil {
			t.Fatalf("wire %s narrow: %v", k, err)
		}
		w, err := wide.WireSizeLog2(k)
		if err != nil {
			t.Fatalf("wire %s wide: %v", k, err)
		}
		if n < 0 || w < 0 {
			t.Errorf("wire %s: negative size class (%d/%d)", k, n, w)
		}
		want := n
		if k.IsReference() {
			want = n + 1
		}
		if w != want {
			t.Errorf("wire %s: narrow %d, wide %d, want wide %d", k, n, w, want)
		}
	}
}

func TestInvalidKindOrdinals(t *testing.T) {
	c := Native()

	scalars := []field.ScalarKind{0, field.ScalarBytes + 1, 255}
	for _, k := range scalars {
		if _, err := c.ScalarSizeLog2(k); err == nil {
			t.Errorf("ScalarSizeLog2(%d): expected error", k)
		} else if !stderrors.Is(err, &perrors.Error{
			Phase: perrors.PhaseClassify,
			Kind:  perrors.KindInvalidKind,
		}) {
			t.Errorf("ScalarSizeLog2(%d): wrong error %v", k, err)
		}
	}

	wires := []field.WireKind{0, field.WireSInt64 + 1, 255}
	for _, k := range wires {
		if _, err := c.WireSizeLog2(k); err == nil {
			t.Errorf("WireSizeLog2(%d): expected error", k)
		} else if !stderrors.Is(err, &perrors.Error{
			Phase: perrors.PhaseClassify,
			Kind:  perrors.KindInvalidKind,
		}) {
			t.Errorf("WireSizeLog2(%d): wrong error %v", k, err)
		}
	}
}

func TestByteSizes(t *testing.T) {
	wide := New(protolayout.Addr64)

	size, err := wide.ScalarSize(field.ScalarString)
	if err != nil {
		t.Fatal(err)
	}
	if size != 16 {
		t.Errorf("scalar string on 64-bit: got %d bytes, want 16", size)
	}

	size, err = wide.WireSize(field.WireMessage)
	if err != nil {
		t.Fatal(err)
	}
	if size != 8 {
		t.Errorf("wire message on 64-bit: got %d bytes, want 8", size)
	}

	narrow := New(protolayout.Addr32)
	size, err = narrow.WireSize(field.WireMessage)
	if err != nil {
		t.Fatal(err)
	}
	if size != 4 {
		t.Errorf("wire message on 32-bit: got %d bytes, want 4", size)
	}
}

func TestNativeWidth(t *testing.T) {
	if got := Native().Width(); got != protolayout.NativeWidth() {
		t.Errorf("Native().Width() = %v, want %v", got, protolayout.NativeWidth())
	}
}
