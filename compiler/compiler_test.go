package compiler

import (
	"strings"
	"testing"

	"github.com/j2pylang/j2py/diag"
	"github.com/j2pylang/j2py/parser"
)

// translate runs the full parse-and-emit pipeline with a fresh
// compiler, failing the test on any diagnostic.
func translate(t *testing.T, c *Compiler, input string) string {
	t.Helper()
	r := diag.NewReporter(diag.Warning)
	classes, err := parser.Parse(input, r)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	if r.HasDiagnostics() {
		t.Fatalf("Parse(%q) diagnostics = %v", input, r.Err())
	}
	return c.Compile(classes)
}

func TestCompileScenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"static and instance fields",
			`class Ex { static int x = 4, y; int z = 3; int foo() { return z; } }`,
			`class Ex(object):
    x = 4
    def __init__(self):
        self.z = 3
    def foo(self):
        return self.z
`,
		},
		{
			"method overloading",
			`class Ex { int foo() { return 3; } int foo(int x) { return x; } int foo(int z, int y) { return z + y; } }`,
			`class Ex(object):
    def foo(self, *args):
        if len(args) == 0:
            return 3
        elif len(args) == 1:
            (x,) = args
            return x
        elif len(args) == 2:
            (z, y,) = args
            return z + y
`,
		},
		{
			"array constructors",
			`class Ex { int[] x = new int[3]; boolean[][] b = new boolean[2][3]; String[] s = new String[3]; }`,
			`class Ex(object):
    def __init__(self):
        self.x = [0, 0, 0]
        self.b = [[False, False, False], [False, False, False]]
        self.s = [None, None, None]
`,
		},
		{
			"if else chain with print and equality",
			`class Ex { int foo(int x) { if (x == 0) return 0; else if (x == 1) { System.out.println("one"); return 1; } else return x; } }`,
			`class Ex(object):
    def foo(self, x):
        if x is 0:
            return 0
        elif x is 1:
            print("one")
            return 1
        else:
            return x
`,
		},
		{
			"inheritance",
			`public class HelloWorld extends Example { }`,
			`class HelloWorld(Example):
    pass
`,
		},
		{
			"main synthesis",
			`class App { public static void main(String[] args) { System.out.println("running"); } }`,
			`class App(object):
    @classmethod
    def main(self, args):
        print("running")

if __name__ == "__main__":
    import sys
    assert len(sys.argv) > 1
    if sys.argv[1] == "App":
        App.main(sys.argv[2:])
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(t, New(), tt.input)
			if got != tt.expected {
				t.Errorf("Compile(%q) =\n%s\nwant:\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompileConstructors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"single constructor",
			`class P { int x; P(int a) { x = a; } }`,
			`class P(object):
    def __init__(self, a):
        self.x = a
`,
		},
		{
			"constructor dispatch with instance initializers first",
			`class P { int x = 0; P() { } P(int a) { this.x = a; } }`,
			`class P(object):
    def __init__(self, *args):
        self.x = 0
        if len(args) == 0:
            pass
        elif len(args) == 1:
            (a,) = args
            self.x = a
`,
		},
		{
			"no constructor and no initialized instance variables",
			`class P { int x; static int s; void f() { } }`,
			`class P(object):
    def f(self):
        pass
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(t, New(), tt.input)
			if got != tt.expected {
				t.Errorf("Compile(%q) =\n%s\nwant:\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompileLoops(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"while loop",
			`class L { int f(int n) { int i = 0; while (i < n) i++; return i; } }`,
			`class L(object):
    def f(self, n):
        i = 0
        while i < n:
            i = i + 1
        return i
`,
		},
		{
			"for loop rewritten as while",
			`class L { int sum(int n) { int s = 0; for (int i = 0; i < n; i++) { s = s + i; } return s; } }`,
			`class L(object):
    def sum(self, n):
        s = 0
        i = 0
        while i < n:
            s = s + i
            i = i + 1
        return s
`,
		},
		{
			"enhanced for",
			`class L { void show(String[] words) { for (String w : words) System.out.println(w); } }`,
			`class L(object):
    def show(self, words):
        for w in words:
            print(w)
`,
		},
		{
			"break and continue",
			`class L { void f() { while (true) { if (done) break; continue; } } }`,
			`class L(object):
    def f(self):
        while True:
            if done:
                break
            continue
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(t, New(), tt.input)
			if got != tt.expected {
				t.Errorf("Compile(%q) =\n%s\nwant:\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompileRewrites(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"length rewrite",
			`class S { int size(String s) { return s.length(); } }`,
			`class S(object):
    def size(self, s):
        return len(s)
`,
		},
		{
			"length without call",
			`class S { int size(int[] xs) { return xs.length; } }`,
			`class S(object):
    def size(self, xs):
        return len(xs)
`,
		},
		{
			"equals renamed to the equality dunder",
			`class S { boolean equals(Object o) { return true; } }`,
			`class S(object):
    def __eq__(self, o):
        return True
`,
		},
		{
			"equals call becomes equality",
			`class S { boolean same(String a, String b) { return a.equals(b); } }`,
			`class S(object):
    def same(self, a, b):
        return a == b
`,
		},
		{
			"equals call parenthesized inside an expression",
			`class S { boolean f(String a, String b) { return a.equals(b) && true; } }`,
			`class S(object):
    def f(self, a, b):
        return (a == b) and True
`,
		},
		{
			"literals and logical operators",
			`class S { boolean f(boolean p, boolean q) { return p && q || !p & true | false; } }`,
			`class S(object):
    def f(self, p, q):
        return p and q or not p & True | False
`,
		},
		{
			"null literal and negative unary",
			`class S { Object o = null; int n = -4; }`,
			`class S(object):
    def __init__(self):
        self.o = None
        self.n = -4
`,
		},
		{
			"static member access gains the class prefix",
			`class S { static int count; void bump() { count = count + 1; } }`,
			`class S(object):
    def bump(self):
        S.count = S.count + 1
`,
		},
		{
			"locals shadow members",
			`class S { int x = 1; int f(int x) { return x; } }`,
			`class S(object):
    def __init__(self):
        self.x = 1
    def f(self, x):
        return x
`,
		},
		{
			"this rewritten to self",
			`class S { int x; void set(int v) { this.x = v; } }`,
			`class S(object):
    def set(self, v):
        self.x = v
`,
		},
		{
			"instance method call gains self",
			`class S { void f() { g(); } void g() { } }`,
			`class S(object):
    def f(self):
        self.g()
    def g(self):
        pass
`,
		},
		{
			"array size from expression becomes a comprehension",
			`class S { int[] make(int n) { return new int[n]; } }`,
			`class S(object):
    def make(self, n):
        return [0 for _ in range(n)]
`,
		},
		{
			"constructor call",
			`class S { Object o = new Object(); }`,
			`class S(object):
    def __init__(self):
        self.o = Object()
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(t, New(), tt.input)
			if got != tt.expected {
				t.Errorf("Compile(%q) =\n%s\nwant:\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCompileOptions(t *testing.T) {
	t.Run("plain equality", func(t *testing.T) {
		got := translate(t, New().WithPlainEquality(),
			`class S { boolean f(int x) { return x == 0; } }`)
		expected := `class S(object):
    def f(self, x):
        return x == 0
`
		if got != expected {
			t.Errorf("got:\n%s\nwant:\n%s", got, expected)
		}
	})
	t.Run("private prefix", func(t *testing.T) {
		got := translate(t, New().WithPrivatePrefix(),
			`class S { private int x = 1; int get() { return x; } void set(int v) { this.x = v; } }`)
		expected := `class S(object):
    def __init__(self):
        self._x = 1
    def get(self):
        return self._x
    def set(self, v):
        self._x = v
`
		if got != expected {
			t.Errorf("got:\n%s\nwant:\n%s", got, expected)
		}
	})
}

func TestCompileBoundaries(t *testing.T) {
	t.Run("empty class", func(t *testing.T) {
		got := translate(t, New(), "class C { }")
		if got != "class C(object):\n    pass\n" {
			t.Errorf("got %q", got)
		}
	})
	t.Run("uninitialized statics are omitted", func(t *testing.T) {
		got := translate(t, New(), "class C { static int a; static int b = 2; }")
		if strings.Contains(got, "a =") {
			t.Errorf("uninitialized static emitted:\n%s", got)
		}
		if !strings.Contains(got, "b = 2") {
			t.Errorf("initialized static missing:\n%s", got)
		}
	})
	t.Run("classes separated by a blank line", func(t *testing.T) {
		got := translate(t, New(), "class A { } class B { }")
		expected := "class A(object):\n    pass\n\nclass B(object):\n    pass\n"
		if got != expected {
			t.Errorf("got %q, want %q", got, expected)
		}
	})
	t.Run("nested class emitted inside enclosing body", func(t *testing.T) {
		got := translate(t, New(), "class Outer { class Inner { int x = 1; } }")
		expected := `class Outer(object):
    class Inner(object):
        def __init__(self):
            self.x = 1
`
		if got != expected {
			t.Errorf("got:\n%s\nwant:\n%s", got, expected)
		}
	})
	t.Run("no main means no trailer", func(t *testing.T) {
		got := translate(t, New(), "class C { void f() { } }")
		if strings.Contains(got, "__main__") {
			t.Errorf("trailer emitted without main:\n%s", got)
		}
	})
	t.Run("trailer covers every class with a main", func(t *testing.T) {
		got := translate(t, New(),
			"class A { static void main(String[] a) { } } class B { } class C { static void main(String[] a) { } }")
		if !strings.Contains(got, `if sys.argv[1] == "A":`) {
			t.Errorf("missing clause for A:\n%s", got)
		}
		if !strings.Contains(got, `elif sys.argv[1] == "C":`) {
			t.Errorf("missing clause for C:\n%s", got)
		}
		if strings.Contains(got, `"B"`) {
			t.Errorf("clause emitted for class without main:\n%s", got)
		}
	})
}

func TestCompileProperties(t *testing.T) {
	input := `class Ex {
		static int x = 4;
		int z = 3;
		int foo() { return z; }
		int foo(int a) { if (a == 0) { return z; } else { return a; } }
		static void main(String[] args) { System.out.println(x); }
	}`

	t.Run("deterministic output", func(t *testing.T) {
		first := translate(t, New(), input)
		second := translate(t, New(), input)
		if first != second {
			t.Error("two translations of the same input differ")
		}
	})

	t.Run("indentation is a multiple of four spaces", func(t *testing.T) {
		out := translate(t, New(), input)
		for i, line := range strings.Split(out, "\n") {
			trimmed := strings.TrimLeft(line, " ")
			lead := len(line) - len(trimmed)
			if lead%4 != 0 {
				t.Errorf("line %d has %d leading spaces: %q", i+1, lead, line)
			}
		}
	})

	t.Run("one dispatch clause per arity", func(t *testing.T) {
		out := translate(t, New(), input)
		if !strings.Contains(out, "if len(args) == 0:") {
			t.Error("missing arity-0 clause")
		}
		if !strings.Contains(out, "elif len(args) == 1:") {
			t.Error("missing arity-1 clause")
		}
	})
}
