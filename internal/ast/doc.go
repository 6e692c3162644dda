// Package ast defines the syntax tree for the Python subset the translator
// accepts. Node kinds are closed enums (ExprKind, StmtKind): the emitter
// matches exhaustively over them with a single fallback arm, so an unhandled
// construct degrades to a placeholder instead of being silently dropped.
//
// A tree lives for exactly one conversion call and is discarded with it, so
// nodes are plain pointer-linked structs; there is no arena or id indirection.
package ast
