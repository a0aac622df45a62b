package session

// MaxInputDigits is the longest answer a player can type.
const MaxInputDigits = 2

// EmptyDisplay is shown in place of an empty answer.
const EmptyDisplay = "__"

// Input is the player's partially typed answer. The zero value is empty.
type Input struct {
	digits string
}

// Append returns the input with digit d added. Digits outside 0-9 and
// appends beyond MaxInputDigits are ignored.
func (in Input) Append(d int) Input {
	if d < 0 || d > 9 || len(in.digits) >= MaxInputDigits {
		return in
	}
	return Input{digits: in.digits + string(rune('0'+d))}
}

// AppendRune appends r if it is an ASCII digit.
func (in Input) AppendRune(r rune) Input {
	if r < '0' || r > '9' {
		return in
	}
	return in.Append(int(r - '0'))
}

// Clear returns an empty input.
func (in Input) Clear() Input {
	return Input{}
}

// Value returns the raw digits typed so far.
func (in Input) Value() string {
	return in.digits
}

// Empty reports whether no digits have been typed.
func (in Input) Empty() bool {
	return in.digits == ""
}

// Display returns the text to render for the answer slot.
func (in Input) Display() string {
	if in.digits == "" {
		return EmptyDisplay
	}
	return in.digits
}
