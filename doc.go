// Package blocktranspose compares two ways of transposing a dense square
// matrix of ints stored in row-major order.
//
// What is inside?
//
//	transpose/  : Naive and Blocked kernels, Check and Verify, Strategy selection
//	matrix/     : Dense row-major matrix, validators and seeded random fill
//	bench/      : Runner that times each strategy, Report, text and table renderers
//	config/     : defaults, config file, TRANSPOSEBENCH_* env and flags (viper)
//	internal/   : zap logger setup and host cache probing
//	cmd/transposebench : the command-line benchmark
//	examples/   : a runnable scenario built on the public API
//
// Blocked transpose
//
//	The blocked kernel walks the matrix in blockSize×blockSize tiles so that
//	the source tile and the destination tile stay in L1 at the same time.
//	Elements outside the last whole tile are covered by remainder passes,
//	so every element is written exactly once for any 1 ≤ blockSize ≤ n.
//
// Quick start
//
//	src := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
//	dst := make([]int, len(src))
//	if err := transpose.Blocked(src, 3, 3, 2, dst); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(dst) // [1 4 7 2 5 8 3 6 9]
//
//	transposebench 32              # classic run with 32×32 tiles
//	transposebench sweep --size 4096
package blocktranspose
