package gf2

// Exported aliases of private helpers for the external test package.
var (
	InvertBig   = invertBig
	InvertWords = invertWords
)
