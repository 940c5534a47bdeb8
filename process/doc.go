// Package process runs a single external command per call.
//
// An Executor spawns the program, feeds the configured standard input and closes it,
// captures standard output and standard error into separate buffers, and enforces an
// optional deadline. When the deadline expires, or the caller's context is cancelled,
// the process (and on unix its whole process group) is killed with SIGKILL, so no child
// outlives the call.
//
// Failures are reported as *Error with one of the kinds SpawnFailure, Timeout,
// NonZeroExit or Canceled. The executor never retries.
package process
