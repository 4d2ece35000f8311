// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix type used by the network.
//
// # Overview
//
// A Matrix has at least one row and one column and a shape that never
// changes. Every operation returns a new matrix; operands are never
// modified. This package contains:
//   - Creation: Zeros, Random, From, New, Column, RowVector
//   - Arithmetic: Multiply, Sum, Subtract, Dot (element-wise), Scale
//   - Transformations: Map, Transpose
//   - Interop: gonum (ToGonum, FromGonum) and gorgonia (ToTensor, FromTensor)
//
// # Basic Usage
//
//	import "github.com/born-ml/backprop/matrix"
//
//	func main() {
//	    a, _ := matrix.From([][]float64{{1, 2}, {3, 4}})
//	    b, _ := matrix.Random(2, 1, matrix.NewSource(42))
//
//	    c, err := matrix.Multiply(a, b) // 2x1
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(c)
//	}
//
// # Errors
//
// Operands of the wrong shape are reported as errors, never panics:
//
//	_, err := matrix.Sum(a, b)
//	errors.Is(err, matrix.ErrIncompatible) // true
//
//	var se *matrix.ShapeError
//	errors.As(err, &se) // se.Op == "sum", se.A == 2x2, se.B == 2x1
//
// # Parallelism
//
// Multiply computes the rows of large products concurrently on all physical
// cores. Each output value is summed in a fixed order, so results do not
// depend on the number of workers.
package matrix
