package problemgen

import "fmt"

// MaxSupportedSum is the largest MaxSum a level may use. Answers are typed
// on a two-digit pad, so anything above 99 could not be entered.
const MaxSupportedSum = 99

// Config controls the numeric range of generated problems.
type Config struct {
	// MaxSum is the ceiling for every answer and every addition operand.
	MaxSum int
}

// Validate reports whether the config can be used for generation.
func (c Config) Validate() error {
	if c.MaxSum < 1 || c.MaxSum > MaxSupportedSum {
		return fmt.Errorf("max sum %d out of range [1, %d]", c.MaxSum, MaxSupportedSum)
	}
	return nil
}
