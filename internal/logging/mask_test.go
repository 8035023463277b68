package logging

import "testing"

func TestMaskPassword_Normal(t *testing.T) {
	result := MaskPassword(`"password123"`, true)
	if result != "********" {
		t.Errorf("got %q, want %q", result, "********")
	}
}

func TestMaskPassword_Disabled(t *testing.T) {
	result := MaskPassword(`"password123"`, false)
	if result != `"password123"` {
		t.Errorf("got %q, want original value", result)
	}
}

func TestMaskPassword_Empty(t *testing.T) {
	result := MaskPassword("", true)
	if result != "" {
		t.Errorf("got %q, want empty", result)
	}
}
