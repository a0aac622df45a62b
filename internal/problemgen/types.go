package problemgen

import "fmt"

// Operator is the arithmetic operation of a Problem.
type Operator int

const (
	// OpAdd asks for the sum of the operands.
	OpAdd Operator = iota

	// OpSubtract asks for A minus B.
	OpSubtract
)

// Symbol returns the operator as it is shown to the player.
func (o Operator) Symbol() string {
	if o == OpSubtract {
		return "-"
	}
	return "+"
}

func (o Operator) String() string {
	if o == OpSubtract {
		return "subtract"
	}
	return "add"
}

// Problem is a generated arithmetic question with a known answer.
//
// Problems are plain values. A new problem replaces the previous one;
// nothing mutates a problem after Generate returns it.
type Problem struct {
	// Op is the operation, chosen 50/50 between add and subtract.
	Op Operator

	// A is the left operand.
	A int

	// B is the right operand.
	B int

	// Answer is A+B for OpAdd and A-B for OpSubtract.
	// Always in [0, Config.MaxSum].
	Answer int
}

// Question renders the problem as shown on screen, e.g. "3 + 4 = ?".
func (p Problem) Question() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op.Symbol(), p.B)
}
