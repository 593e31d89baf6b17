package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(7) != 1 {
		t.Error("Sign(7) should be 1")
	}
	if Sign(-3) != -1 {
		t.Error("Sign(-3) should be -1")
	}
	if Sign(0) != 0 {
		t.Error("Sign(0) should be 0")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is broken")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is broken")
	}
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs is broken")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("Empty frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionTeleport)

	if !f.Has(ActionUp) || !f.Has(ActionTeleport) {
		t.Error("Set actions should be present")
	}
	if f.Has(ActionDown) {
		t.Error("Unset action should not be present")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionUp) {
		t.Error("Zero-value frame should have no actions")
	}

	// Set must allocate lazily
	f.Set(ActionDown)
	if !f.Has(ActionDown) {
		t.Error("Set on zero-value frame should work")
	}
}
