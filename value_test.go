package textbind

import "testing"

func TestValue_SetFiresOnChange(t *testing.T) {
	v := NewValue(1)
	calls := 0
	v.Changed().AddListener(func() { calls++ })

	v.Set(1)
	if calls != 0 {
		t.Errorf("Set(same) fired Changed")
	}
	v.Set(2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if v.Get() != 2 || v.Value() != 2 {
		t.Errorf("Get = %d, Value = %v, want 2", v.Get(), v.Value())
	}
}

func TestValue_Assign(t *testing.T) {
	v := NewValue(0)
	if err := v.Assign(42.0); err != nil {
		t.Fatalf("Assign(float64): %v", err)
	}
	if v.Get() != 42 {
		t.Errorf("Get = %d, want 42", v.Get())
	}
	if err := v.Assign(7); err != nil {
		t.Fatalf("Assign(int): %v", err)
	}
	if v.Get() != 7 {
		t.Errorf("Get = %d, want 7", v.Get())
	}
	if err := v.Assign("nope"); err == nil {
		t.Error("expected error assigning string to int")
	}
	if err := v.Assign(nil); err == nil {
		t.Error("expected error assigning nil to int")
	}
}

func TestValue_AssignString(t *testing.T) {
	v := NewValue("")
	if err := v.Assign("hi"); err != nil {
		t.Fatal(err)
	}
	if v.Get() != "hi" {
		t.Errorf("Get = %q, want %q", v.Get(), "hi")
	}
	if err := v.Assign(1.5); err == nil {
		t.Error("expected error assigning float to string")
	}
}

func TestText_SetText(t *testing.T) {
	txt := NewText("")
	calls := 0
	txt.Changed().AddListener(func() { calls++ })

	if txt.IsSet() {
		t.Error("empty Text should not be set")
	}
	txt.SetText("a")
	txt.SetText("a")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if txt.Writes() != 2 {
		t.Errorf("Writes = %d, want 2", txt.Writes())
	}
	if !txt.IsSet() || txt.Text() != "a" || txt.Value() != "a" {
		t.Errorf("Text = %q, IsSet = %v", txt.Text(), txt.IsSet())
	}
}

func TestText_Assign(t *testing.T) {
	txt := NewText("")
	if err := txt.Assign(12.5); err != nil {
		t.Fatal(err)
	}
	if txt.Text() != "12.5" {
		t.Errorf("Text = %q, want %q", txt.Text(), "12.5")
	}
}
