// Package matshell is an interactive shell for small, named matrices of
// unsigned 32-bit integers.
//
// What it provides:
//
//	matrix    the Matrix type: create, randomize, bit-shift, add, compare,
//	          duplicate, display
//	codec     a fixed binary file layout with classified I/O errors
//	registry  a fixed number of slots reused round-robin; a reused slot
//	          releases its previous occupant
//	shell     the command parser, executor and read-eval loop
//	config    TOML file and MATSHELL_* environment settings, slog logger
//
// The executable lives in cmd/matshell:
//
//	$ go run ./cmd/matshell -data-dir /tmp/mats
//	> create A 2 2
//	Created Matrix (A,2,2)
//	> random A 0 9
//	Matrix (A) is randomized between 0 9
//	> display A
//
//	Matrix Contents (A):
//	DIM = (2,2)
//	4 7
//	0 9
//
//	> exit
//
// Every value an operation produces stays in a single registry slot, and a
// command that fails leaves the registry as it was.
package matshell
