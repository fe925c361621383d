package calc

import "fmt"

// Assoc tells how a chain of equal-precedence operators groups.
type Assoc uint

const (
	// AssocLeft groups left-to-right: 1 - 2 + 3 is (1 - 2) + 3.
	AssocLeft Assoc = iota
	// AssocRight groups right-to-left.
	AssocRight
)

func (assoc Assoc) String() string {
	if assoc == AssocRight {
		return "right"
	}
	return "left"
}

// Level is one precedence level: a set of operators sharing the same
// precedence and associativity.
type Level struct {
	Assoc Assoc
	Ops   []Op
}

// NewLevel creates a precedence level holding the given operators
func NewLevel(assoc Assoc, ops ...Op) Level {
	return Level{assoc, ops}
}

// PrecedenceTable maps every binary operator of the grammar to its
// precedence and associativity. It is an immutable value constructed once at
// startup and shared by the parsers that consult it; concurrent reads need
// no synchronization.
type PrecedenceTable struct {
	entries map[Op]opEntry
}

type opEntry struct {
	prec  int
	assoc Assoc
}

// NewPrecedenceTable builds a table from levels listed lowest-first. An
// operator appearing in more than one level is a configuration defect, so
// the constructor panics instead of returning an error.
func NewPrecedenceTable(levels ...Level) *PrecedenceTable {
	entries := make(map[Op]opEntry)
	for prec, level := range levels {
		for _, op := range level.Ops {
			if _, seen := entries[op]; seen {
				panic(fmt.Sprintf("operator '%s' appears in multiple precedence levels", op))
			}
			entries[op] = opEntry{prec, level.Assoc}
		}
	}
	return &PrecedenceTable{entries}
}

// Lookup returns the precedence and associativity of the given operator. The
// boolean is false if the operator is not in the table.
func (table *PrecedenceTable) Lookup(op Op) (int, Assoc, bool) {
	entry, ok := table.entries[op]
	return entry.prec, entry.assoc, ok
}

// DefaultPrecedence builds the table for the calculator grammar: addition
// and subtraction bind loosest, multiplication, division, and modulo bind
// tightest, all left-associative.
func DefaultPrecedence() *PrecedenceTable {
	return NewPrecedenceTable(
		NewLevel(AssocLeft, OpAdd, OpSubtract),
		NewLevel(AssocLeft, OpMultiply, OpDivide, OpModulo),
	)
}
