package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/interface/literal"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/fixnum"
	"github.com/michaelmacinnis/ratscheme/internal/common/type/status"
	"github.com/michaelmacinnis/ratscheme/internal/reader"
)

func TestArithmetic(t *testing.T) {
	check(t, "(+ 1/2 1/2)", "1")
	check(t, "(number? (+ 1/2 1/2))", "#t")
	check(t, "(* 2/3 3/2)", "1")
	check(t, "(- 5)", "-5")
	check(t, "(/ 4)", "1/4")
	check(t, "(number? (/ 4))", "#f")
	check(t, "(+)", "0")
	check(t, "(*)", "1")
	check(t, "(+ 1 2 3 4)", "10")
	check(t, "(- 1/3 1/3 1/3)", "-1/3")
	check(t, "(modulo 17 5)", "2")
	check(t, "(expt 3 4)", "81")
	check(t, "(< 1 2 3)", "#t")
	check(t, "(>= 3 3 4)", "#f")
	check(t, "(= 1/2 2/4)", "#t")

	fails(t, "(-)", "at least 1 argument")
	fails(t, "(/)", "at least 1 argument")
	fails(t, "(/ 1 0)", "division by zero")
	fails(t, "(+ 2147483647 1)", "overflow")
	fails(t, "(expt 2 -1)", "negative exponent")
	fails(t, "(+ 1 'a)", "expected a number")
}

func TestRationalLiterals(t *testing.T) {
	check(t, "2/4", "1/2")
	check(t, "-3/6", "-1/2")
	check(t, "4/2", "2")

	// A reduced rational literal is still a rational.
	check(t, "(number? 4/2)", "#f")
	check(t, "(number? 4)", "#t")
}

func TestNumbersBeforeNames(t *testing.T) {
	e, _ := setup()

	e.Scope().Define("123", fixnum.New(7))

	if v := evaluate(t, e, "123"); v != "123" {
		t.Fatalf("Expected 123, got %s", v)
	}

	fails(t, "2147483648", "out of range")
}

func TestPairs(t *testing.T) {
	check(t, "(car (cons 1 2))", "1")
	check(t, "(cdr (cons 1 2))", "2")
	check(t, "(cons 1 (cons 2 '()))", "(1 2)")
	check(t, "(list 1 2 3)", "(1 2 3)")
	check(t, "(list)", "()")
	check(t, "(define p (list 1 2)) (set-car! p 9) p", "(9 2)")
	check(t, "(define p (list 1 2)) (set-cdr! (cdr p) p) (list? p)", "#f")
	check(t, "(define p (list 1 2)) (set-cdr! (cdr p) p) p", "(1 2 . ...)")

	fails(t, "(car '())", "not a pair")
	fails(t, "(cdr 5)", "not a pair")
}

func TestRecursion(t *testing.T) {
	check(t, `
		(define (fact n)
		  (if (= n 0)
		      1
		      (* n (fact (- n 1)))))
		(fact 5)
	`, "120")

	check(t, `
		(define fib
		  (lambda (n)
		    (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))
		(fib 15)
	`, "610")
}

func TestLetrec(t *testing.T) {
	check(t, `
		(letrec ((ev? (lambda (n) (if (= n 0) #t (od? (- n 1)))))
		         (od? (lambda (n) (if (= n 0) #f (ev? (- n 1))))))
		  (list (ev? 10) (od? 7) (ev? 3)))
	`, "(#t #t #f)")
}

func TestLet(t *testing.T) {
	check(t, "(let ((x 1) (y 2)) (+ x y))", "3")
	check(t, "(define x 10) (let ((x 1) (y x)) y)", "10")
	check(t, "(let () 5)", "5")
	check(t, "(let ((x 1)) (display x) (+ x 1))", "2")

	fails(t, "(let ((a#b 1)) 1)", "invalid identifier")
	fails(t, "(let ((1 2)) 1)", "expected a symbol")
	fails(t, "(let ((x 1)))", "missing body")
}

func TestClosures(t *testing.T) {
	check(t, `
		(define (make-counter)
		  (let ((n 0))
		    (lambda () (set! n (+ n 1)) n)))
		(define c (make-counter))
		(c)
		(c)
	`, "2")

	check(t, "(define (adder n) (lambda (x) (+ x n))) ((adder 3) 4)", "7")
	check(t, "((lambda (x y) (cons y x)) 1 2)", "(2 . 1)")

	fails(t, "((lambda (x) x))", "expected 1 argument, passed 0")
	fails(t, "((lambda (x) x) 1 2)", "expected 1 argument, passed 2")
	fails(t, "(lambda (1) 1)", "expected a symbol")
	fails(t, "(lambda (x))", "missing body")
	fails(t, "(lambda (x . y) x)", "rest parameters")
}

func TestCond(t *testing.T) {
	check(t, "(cond (#f 1) (else 2))", "2")
	check(t, "(cond (3 'x))", "x")
	check(t, "(cond (#f 1))", "#<void>")
	check(t, "(cond (#f 1) (7))", "7")
	check(t, "(cond ((= 1 1) 'a 'b) (else 'c))", "b")
	check(t, "(cond ('() 'empty) (else 'other))", "empty")

	fails(t, "(cond 1)", "malformed clause")
	fails(t, "(cond (else))", "no body")
}

func TestAndOr(t *testing.T) {
	check(t, "(and 1 2 #f 3)", "#f")
	check(t, "(and 1 2)", "2")
	check(t, "(or #f #f 5)", "5")
	check(t, "(and)", "#t")
	check(t, "(or)", "#f")
	check(t, "(or 1 (car '()))", "1")
	check(t, "(and #f (car '()))", "#f")
	check(t, "(or #f '())", "()")
}

func TestIf(t *testing.T) {
	check(t, "(if 0 'a 'b)", "a")
	check(t, "(if '() 'a 'b)", "a")
	check(t, "(if #f 'a 'b)", "b")
	check(t, "(if #f 'a)", "#<void>")

	fails(t, "(if 1)", "expected 2 to 3 arguments")
}

func TestBegin(t *testing.T) {
	check(t, "(begin)", "#<void>")
	check(t, "(begin 1 2 3)", "3")
}

func TestSet(t *testing.T) {
	check(t, "(define x 1) (set! x 5) x", "5")
	check(t, "(define x 1) (define (f) (set! x 2)) (f) x", "2")
	check(t, "(define x 1) (set! x 5)", "#<void>")

	fails(t, "(set! nope 1)", "undefined variable")
}

func TestDefine(t *testing.T) {
	check(t, "(define x 1)", "#<void>")
	check(t, "(define x 1) (define x 2) x", "2")

	fails(t, "(define car 1)", "cannot redefine")
	fails(t, "(define if 1)", "cannot redefine")
	fails(t, "(define)", "missing name")
	fails(t, "(define x)", "expected 2 arguments")
	fails(t, "(define 1 2)", "expected a symbol")
}

func TestEq(t *testing.T) {
	check(t, "(eq? (cons 1 2) (cons 1 2))", "#f")
	check(t, "(eq? 5 5)", "#t")
	check(t, "(let ((p (cons 1 2))) (eq? p p))", "#t")
	check(t, "(eq? 'a 'a)", "#t")
	check(t, "(eq? '() '())", "#t")
	check(t, "(eq? car car)", "#t")
	check(t, "(define (f) 1) (eq? f f)", "#t")
	check(t, "(eq? (lambda () 1) (lambda () 1))", "#f")
}

func TestQuote(t *testing.T) {
	check(t, "(quote (1 2 . 3))", "(1 2 . 3)")
	check(t, "(car (cdr '(1 2 . 3)))", "2")
	check(t, "(cdr (cdr '(1 2 . 3)))", "3")
	check(t, "'(a \"s\" #t 1/2 (b))", `(a "s" #t 1/2 (b))`)
	check(t, "'()", "()")
	check(t, "()", "()")
	check(t, "'x", "x")
	check(t, "(symbol? 'x)", "#t")
	check(t, "(list? '(1 2))", "#t")
	check(t, "(list? '(1 . 2))", "#f")

	fails(t, "(quote (1 . 2 . 3))", "misplaced dot")
	fails(t, "'(. 1)", "misplaced dot")
	fails(t, "'(1 .)", "misplaced dot")
	fails(t, "'((1 . 2 . 3))", "misplaced dot")
	fails(t, "(quote 1 2)", "expected 1 argument")
}

func TestPrimitiveProcedures(t *testing.T) {
	check(t, "((lambda (f) (f 1 2)) +)", "3")
	check(t, "(define g car) (g '(1 2))", "1")
	check(t, "(procedure? car)", "#t")
	check(t, "(procedure? (lambda () 1))", "#t")
	check(t, "(procedure? 'car)", "#f")
	check(t, "car", "#<primitive car>")
	check(t, "(lambda () 1)", "#<procedure>")
	check(t, "(let ((f list)) (f))", "()")

	fails(t, "((lambda (f) (f 1)) cons)", "cons: expected 2 arguments, passed 1")
	fails(t, "(car 1 2)", "car: expected 1 argument, passed 2")
	fails(t, "(not)", "not: expected 1 argument, passed 0")
}

func TestApplicationErrors(t *testing.T) {
	fails(t, "(1 2)", "not a procedure")
	fails(t, "(undefined-thing)", "undefined variable: undefined-thing")
	fails(t, "(\"f\")", "not a procedure")
	fails(t, ".foo", "invalid identifier")
}

func TestDisplay(t *testing.T) {
	_, out, _, _ := run(`(display "hi") (display '(1 "a")) (display 1/2)`)

	if out != `hi(1 "a")1/2` {
		t.Fatalf("Unexpected output %q", out)
	}
}

func TestStringEscapes(t *testing.T) {
	_, out, _, _ := run(`(display "a\x41;b\tc\|")`)

	if out != "aAb\tc|" {
		t.Fatalf("Unexpected output %q", out)
	}

	check(t, `"say \"hi\"\n"`, `"say \"hi\"\n"`)
	check(t, `"\x3bb;"`, `"λ"`)

	for _, src := range []string{`"it\'s"`, `"\101"`, `"\u0041"`} {
		fails(t, src, "")
	}
}

func TestErrorsContinue(t *testing.T) {
	results, _, errs, _ := run("(car '()) (+ 1 2)")

	if len(errs) != 1 {
		t.Fatalf("Expected one error, got %v", errs)
	}

	if len(results) != 1 || results[0] != "3" {
		t.Fatalf("Expected evaluation to continue, got %v", results)
	}
}

func TestExit(t *testing.T) {
	_, out, _, s := run("(display 1) (exit 3) (display 2)")

	if s == nil || s.Code() != 3 {
		t.Fatalf("Expected exit status 3, got %v", s)
	}

	if out != "1" {
		t.Fatalf("Expected evaluation to stop at exit, got %q", out)
	}

	_, _, _, s = run("(exit)")
	if s == nil || s.Code() != 0 {
		t.Fatalf("Expected exit status 0, got %v", s)
	}

	_, _, _, s = run("(define (quit) (exit 4)) (quit)")
	if s == nil || s.Code() != 4 {
		t.Fatalf("Expected exit status 4, got %v", s)
	}

	fails(t, "(exit 'a)", "expected an integer")
	fails(t, "(exit 1 2)", "expected 0 to 1 arguments")

	for _, src := range []string{"(exit 256)", "(exit 300)", "(exit -1)"} {
		_, _, errs, s := run(src)
		if s != nil {
			t.Fatalf("%s: expected no exit, got status %d", src, s.Code())
		}

		if len(errs) != 1 || errs[0].Error() != "exit: status "+src[6:len(src)-1]+" is not in the range 0 to 255" {
			t.Fatalf("%s: expected a range error, got %v", src, errs)
		}
	}

	_, _, _, s = run("(exit 255)")
	if s == nil || s.Code() != 255 {
		t.Fatalf("Expected exit status 255, got %v", s)
	}
}

func check(t *testing.T, src, expected string) {
	t.Helper()

	results, _, errs, _ := run(src)
	if len(errs) != 0 {
		t.Fatalf("%s: unexpected error: %v", src, errs[0])
	}

	if len(results) == 0 {
		t.Fatalf("%s: no result", src)
	}

	if actual := results[len(results)-1]; actual != expected {
		t.Fatalf("%s: expected %s, got %s", src, expected, actual)
	}
}

func evaluate(t *testing.T, e *T, src string) string {
	t.Helper()

	data, err := reader.New("test").Scan(src + "\n")
	if err != nil || len(data) != 1 {
		t.Fatalf("%s: could not read: %v", src, err)
	}

	v, err := e.Evaluate(data[0])
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", src, err)
	}

	return literal.String(v)
}

func fails(t *testing.T, src, message string) {
	t.Helper()

	_, _, errs, _ := run(src)
	if len(errs) == 0 {
		t.Fatalf("%s: expected an error", src)
	}

	if !strings.Contains(errs[0].Error(), message) {
		t.Fatalf("%s: expected %q in %q", src, message, errs[0].Error())
	}
}

func run(src string) (results []string, out string, errs []error, s *status.T) {
	e, b := setup()

	s = e.Run(reader.New("test"), src+"\n", func(v cell.I) {
		results = append(results, literal.String(v))
	}, func(err error) {
		errs = append(errs, err)
	})

	return results, b.String(), errs, s
}

func setup() (*T, *bytes.Buffer) {
	b := &bytes.Buffer{}

	return New(b), b
}
