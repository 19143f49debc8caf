package j2py

import (
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	out, err := Translate(`class Ex { int x = 3; int foo() { return x; } }`)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	expected := `class Ex(object):
    def __init__(self):
        self.x = 3
    def foo(self):
        return self.x
`
	if out != expected {
		t.Errorf("Translate() =\n%s\nwant:\n%s", out, expected)
	}
}

func TestTranslateDeterministic(t *testing.T) {
	input := `class A { static void main(String[] args) { System.out.println("hi"); } }`
	first, err := Translate(input)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	second, err := Translate(input)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if first != second {
		t.Error("two translations of the same input differ")
	}
}

func TestTranslateFatalStopsAtFirst(t *testing.T) {
	_, err := Translate(`private class Ex { int x; int x; }`)
	if err == nil {
		t.Fatal("Translate() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "class Ex cannot be private") {
		t.Errorf("error = %q, want the first diagnostic", err)
	}
	if strings.Contains(err.Error(), "already defined") {
		t.Errorf("fatal mode reported more than the first diagnostic: %q", err)
	}
}

func TestTranslateWarningAccumulates(t *testing.T) {
	opts := DefaultOptions()
	opts.Fatal = false
	_, err := TranslateWithOptions(`private class Ex { int x; int x; }`, opts)
	if err == nil {
		t.Fatal("TranslateWithOptions() error = nil, want accumulated diagnostics")
	}
	if !strings.Contains(err.Error(), "class Ex cannot be private") {
		t.Errorf("error %q missing the first diagnostic", err)
	}
	if !strings.Contains(err.Error(), "x is already defined in class Ex") {
		t.Errorf("error %q missing the second diagnostic", err)
	}
}

func TestTranslatePrivateOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Private = true
	out, err := TranslateWithOptions(`class Ex { private int x = 1; int get() { return x; } }`, opts)
	if err != nil {
		t.Fatalf("TranslateWithOptions() error = %v", err)
	}
	if !strings.Contains(out, "self._x = 1") {
		t.Errorf("private variable not prefixed:\n%s", out)
	}
	if !strings.Contains(out, "return self._x") {
		t.Errorf("private variable reference not prefixed:\n%s", out)
	}
}

func TestTranslatePlainEqualityOption(t *testing.T) {
	input := `class Ex { boolean f(int x) { return x == 0; } }`

	out, err := Translate(input)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !strings.Contains(out, "x is 0") {
		t.Errorf("default equality should emit is:\n%s", out)
	}

	opts := DefaultOptions()
	opts.PlainEquality = true
	out, err = TranslateWithOptions(input, opts)
	if err != nil {
		t.Fatalf("TranslateWithOptions() error = %v", err)
	}
	if !strings.Contains(out, "x == 0") {
		t.Errorf("plain equality should emit ==:\n%s", out)
	}
}

func TestTranslateEmptyInput(t *testing.T) {
	out, err := Translate("")
	if err != nil {
		t.Fatalf("Translate(\"\") error = %v", err)
	}
	if out != "" {
		t.Errorf("Translate(\"\") = %q, want empty output", out)
	}
}

func TestTranslateTruncatedInputFails(t *testing.T) {
	for _, mode := range []bool{true, false} {
		opts := DefaultOptions()
		opts.Fatal = mode
		if _, err := TranslateWithOptions("class Ex {", opts); err == nil {
			t.Errorf("fatal=%v: truncated input did not fail", mode)
		}
	}
}
