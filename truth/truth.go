// Package truth enumerates variable assignments.
//
// Rows come in binary counting order: the first variable is the most
// significant column and false sorts before true.
//
//	Table(2, 2) == [][]bool{
//	    {false, false},
//	    {false, true},
//	    {true, false},
//	    {true, true},
//	}
package truth

import (
	"errors"
	"fmt"
)

var (
	ErrBadBase  = errors.New("base must be at least 2")
	ErrBadArity = errors.New("arity must be non-negative")
	ErrTooLarge = errors.New("table too large")
)

// MaxRows bounds the number of rows Table will build.
const MaxRows = 1 << 16

// Size returns base^arity, failing with ErrTooLarge when it would exceed
// MaxRows.
func Size(base, arity int) (int, error) {
	if base < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrBadBase, base)
	}
	if arity < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadArity, arity)
	}
	n := 1
	for i := 0; i < arity; i++ {
		if n > MaxRows/base {
			return 0, fmt.Errorf("%w: %d^%d rows exceeds %d", ErrTooLarge, base, arity, MaxRows)
		}
		n *= base
	}
	return n, nil
}

// Table returns all base^arity assignment rows of arity columns. Tables
// of more than MaxRows rows are refused with ErrTooLarge.
//
// The table is built by splitting the row set into base equal blocks per
// column and marking the column true in the upper half of the blocks, then
// recursing into each block for the next column. For base 2 this is the
// usual truth table. For larger bases a column is true for the digits
// d with 2d >= base.
func Table(base, arity int) ([][]bool, error) {
	n, err := Size(base, arity)
	if err != nil {
		return nil, err
	}
	rows := make([][]bool, n)
	for i := range rows {
		rows[i] = make([]bool, arity)
	}
	split(rows, base, 0)
	return rows, nil
}

func split(rows [][]bool, base, col int) {
	if len(rows) <= 1 {
		return
	}
	size := len(rows) / base
	for k := 0; k < base; k++ {
		block := rows[k*size : (k+1)*size]
		if 2*k >= base {
			for _, row := range block {
				row[col] = true
			}
		}
		split(block, base, col+1)
	}
}

// Rows is Table with base 2.
func Rows(arity int) ([][]bool, error) {
	return Table(2, arity)
}

// Row decodes the index'th row of the base 2 table without building the
// table.
func Row(index, arity int) []bool {
	row := make([]bool, arity)
	for col := arity - 1; col >= 0; col-- {
		row[col] = index&1 == 1
		index >>= 1
	}
	return row
}

// Env zips variable names with a row. Names past the end of the row are
// left out.
func Env(vars []string, row []bool) map[string]bool {
	res := make(map[string]bool, len(vars))
	for i, name := range vars {
		if i >= len(row) {
			break
		}
		res[name] = row[i]
	}
	return res
}
