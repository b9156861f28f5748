// Package trace renders cipher operations as text.
//
// Printer implements cipher.Tracer and writes one line per intermediate value, optionally
// followed by a two-line dump of the block: its 64 bits in groups of four, and the hex nibble
// under each group. The result formatters produce the final line of each operation.
package trace
