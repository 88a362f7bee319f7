// Released under an MIT license. See LICENSE.

// Package commands implements the primitive operators.
//
// Each function receives its evaluated arguments. Argument counts have
// already been checked against the primitive table.
package commands

import (
	"io"

	"github.com/michaelmacinnis/ratscheme/internal/common/interface/cell"
	"github.com/michaelmacinnis/ratscheme/internal/common/op"
)

// Functions returns the implementation of every primitive operator.
// Output from display is written to out.
func Functions(out io.Writer) map[op.Code]func([]cell.I) cell.I {
	return map[op.Code]func([]cell.I) cell.I{
		op.Add:         add,
		op.Sub:         sub,
		op.Mul:         mul,
		op.Div:         div,
		op.Modulo:      modulo,
		op.Expt:        expt,
		op.Lt:          lt,
		op.Le:          le,
		op.NumEq:       numEq,
		op.Ge:          ge,
		op.Gt:          gt,
		op.Eq:          eq,
		op.Not:         not,
		op.Cons:        cons,
		op.Car:         car,
		op.Cdr:         cdr,
		op.SetCar:      setCar,
		op.SetCdr:      setCdr,
		op.List:        makeList,
		op.IsBoolean:   isBoolean,
		op.IsList:      isList,
		op.IsNull:      isNull,
		op.IsNumber:    isNumber,
		op.IsPair:      isPair,
		op.IsProcedure: isProcedure,
		op.IsString:    isString,
		op.IsSymbol:    isSymbol,
		op.Display:     display(out),
		op.Exit:        exit,
		op.Void:        makeVoid,
	}
}
