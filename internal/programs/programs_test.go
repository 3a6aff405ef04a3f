package programs

import (
	"testing"

	"github.com/minml-lang/minml/internal/analyzer"
	"github.com/minml-lang/minml/internal/ast"
	"github.com/minml-lang/minml/internal/evaluator"
	"github.com/minml-lang/minml/internal/typesystem"
)

func TestProgramsCheckAndRun(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			typ, err := analyzer.Infer(analyzer.Empty, p.Expr)
			if err != nil {
				t.Fatalf("Infer failed: %v", err)
			}
			if !typ.Equal(p.Type) {
				t.Fatalf("Infer = %s, want %s", typ, p.Type)
			}

			val, err := evaluator.Eval(p.Expr)
			if err != nil {
				t.Fatalf("Eval failed: %v", err)
			}
			if !ast.Equal(val, p.Want) {
				t.Errorf("Eval = %#v, want %#v", val, p.Want)
			}

			// The value's shape matches the inferred type.
			switch typ.(type) {
			case typesystem.TInt:
				if _, ok := val.(*ast.IntLit); !ok {
					t.Errorf("value %#v is not an integer despite type Int", val)
				}
			case typesystem.TBool:
				if _, ok := val.(*ast.BoolLit); !ok {
					t.Errorf("value %#v is not a boolean despite type Bool", val)
				}
			case typesystem.TArrow:
				if _, ok := val.(*ast.Fn); !ok {
					t.Errorf("value %#v is not a function despite arrow type", val)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("factorial"); !ok {
		t.Errorf("factorial should be registered")
	}
	if _, ok := Lookup("no-such-program"); ok {
		t.Errorf("Lookup found an unregistered program")
	}
}
