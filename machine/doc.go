// Package machine implements the BrainFuck execution engine of the BFG
// interpreter.
//
// A program fragment is loaded in two static passes: Tokenize keeps the
// eight instruction symbols and drops comments and prose, then Parse
// resolves the loop pairings into a bidirectional jump map, rejecting
// unbalanced programs before anything executes. The Machine runs the
// fetch-decode-execute loop over the fragment against an arena of byte
// cells, a single data pointer, and byte I/O channels, optionally
// reporting every executed instruction to a Tracer.
//
// The Expander adds an extended, line-oriented source format for writing
// larger programs: equates, macros with arguments, compile-time $( )
// expressions, and symbol repetition, all expanding to plain program
// text.
package machine
