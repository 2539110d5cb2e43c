package bytesview

import "testing"

func TestViewSubAndAbs(t *testing.T) {
	buf := []byte("getUserById")
	v := Of(buf)

	if v.Len() != len(buf) {
		t.Fatalf("Len() = %d, want %d", v.Len(), len(buf))
	}
	if v.Off() != 0 {
		t.Fatalf("Off() = %d, want 0", v.Off())
	}

	sub := v.Sub(3, 7) // "User"
	if got := string(sub.Bytes()); got != "User" {
		t.Errorf("Sub(3,7) = %q, want %q", got, "User")
	}
	if sub.Off() != 3 {
		t.Errorf("sub.Off() = %d, want 3", sub.Off())
	}
	if sub.At(0) != 'U' {
		t.Errorf("sub.At(0) = %q, want 'U'", sub.At(0))
	}

	// Nested sub-ranging accumulates offsets.
	inner := sub.Sub(1, 3) // "se"
	if got := string(inner.Bytes()); got != "se" {
		t.Errorf("nested Sub = %q, want %q", got, "se")
	}
	if inner.Abs(0) != 4 {
		t.Errorf("inner.Abs(0) = %d, want 4", inner.Abs(0))
	}
	if inner.Abs(1) != 5 {
		t.Errorf("inner.Abs(1) = %d, want 5", inner.Abs(1))
	}
}

func TestViewZeroValue(t *testing.T) {
	var v View
	if v.Len() != 0 {
		t.Errorf("zero view Len() = %d, want 0", v.Len())
	}
	if v.Off() != 0 {
		t.Errorf("zero view Off() = %d, want 0", v.Off())
	}
}
