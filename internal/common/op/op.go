// Released under an MIT license. See LICENSE.

// Package op enumerates the primitive operators.
package op

// Code identifies a primitive operator.
type Code int

// Primitive operators.
const (
	Invalid Code = iota

	Add
	Sub
	Mul
	Div
	Modulo
	Expt

	Lt
	Le
	NumEq
	Ge
	Gt

	Eq
	Not

	Cons
	Car
	Cdr
	SetCar
	SetCdr
	List

	IsBoolean
	IsList
	IsNull
	IsNumber
	IsPair
	IsProcedure
	IsString
	IsSymbol

	Display
	Exit
	Void

	count
)

//nolint:gochecknoglobals
var names = [...]string{
	Invalid:     "invalid",
	Add:         "+",
	Sub:         "-",
	Mul:         "*",
	Div:         "/",
	Modulo:      "modulo",
	Expt:        "expt",
	Lt:          "<",
	Le:          "<=",
	NumEq:       "=",
	Ge:          ">=",
	Gt:          ">",
	Eq:          "eq?",
	Not:         "not",
	Cons:        "cons",
	Car:         "car",
	Cdr:         "cdr",
	SetCar:      "set-car!",
	SetCdr:      "set-cdr!",
	List:        "list",
	IsBoolean:   "boolean?",
	IsList:      "list?",
	IsNull:      "null?",
	IsNumber:    "number?",
	IsPair:      "pair?",
	IsProcedure: "procedure?",
	IsString:    "string?",
	IsSymbol:    "symbol?",
	Display:     "display",
	Exit:        "exit",
	Void:        "void",
}

// String returns the name the operator is bound to.
func (c Code) String() string {
	if c <= Invalid || c >= count {
		return names[Invalid]
	}

	return names[c]
}
