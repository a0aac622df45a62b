package problemgen

import (
	"math/rand/v2"
	"testing"
)

// scriptedRand returns pre-set values in order, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func TestGenerate_RangeInvariant(t *testing.T) {
	for maxSum := 1; maxSum <= 20; maxSum++ {
		g := New(rand.New(rand.NewPCG(uint64(maxSum), 42)))
		cfg := Config{MaxSum: maxSum}

		for i := 0; i < 2000; i++ {
			p := g.Generate(cfg)

			if p.Answer < 0 || p.Answer > maxSum {
				t.Fatalf("maxSum=%d: answer %d out of range (%+v)", maxSum, p.Answer, p)
			}
			switch p.Op {
			case OpAdd:
				if p.Answer != p.A+p.B {
					t.Fatalf("add answer mismatch: %+v", p)
				}
				if p.A < 0 || p.B < 0 {
					t.Fatalf("negative add operand: %+v", p)
				}
			case OpSubtract:
				if p.Answer != p.A-p.B {
					t.Fatalf("subtract answer mismatch: %+v", p)
				}
				if p.A < 1 || p.A > maxSum {
					t.Fatalf("subtract minuend out of range: %+v", p)
				}
				if p.B < 0 || p.B > p.A {
					t.Fatalf("subtract subtrahend out of range: %+v", p)
				}
			default:
				t.Fatalf("unknown operator %v", p.Op)
			}
		}
	}
}

func TestGenerate_BothOperatorsAppear(t *testing.T) {
	g := New(rand.New(rand.NewPCG(7, 7)))
	counts := map[Operator]int{}
	for i := 0; i < 1000; i++ {
		counts[g.Generate(Config{MaxSum: 10}).Op]++
	}
	if counts[OpAdd] < 400 || counts[OpSubtract] < 400 {
		t.Errorf("operator split looks biased: %v", counts)
	}
}

func TestGenerate_Scripted(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want Problem
	}{
		{"addition", []int{0, 3, 4}, Problem{Op: OpAdd, A: 3, B: 4, Answer: 7}},
		{"addition of zeros", []int{0, 0, 0}, Problem{Op: OpAdd, A: 0, B: 0, Answer: 0}},
		// Subtract draws A from [1, 10] so the first value is offset by one.
		{"subtraction", []int{1, 8, 5}, Problem{Op: OpSubtract, A: 9, B: 5, Answer: 4}},
		{"subtraction to zero", []int{1, 9, 10}, Problem{Op: OpSubtract, A: 10, B: 10, Answer: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&scriptedRand{vals: tt.vals})
			got := g.Generate(Config{MaxSum: 10})
			if got != tt.want {
				t.Errorf("Generate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGenerate_ClampsMaxSum(t *testing.T) {
	g := New(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 100; i++ {
		p := g.Generate(Config{MaxSum: 0})
		if p.Answer < 0 || p.Answer > 1 {
			t.Fatalf("answer %d out of clamped range", p.Answer)
		}
	}
}

func TestProblem_Question(t *testing.T) {
	tests := []struct {
		p    Problem
		want string
	}{
		{Problem{Op: OpAdd, A: 3, B: 4, Answer: 7}, "3 + 4 = ?"},
		{Problem{Op: OpSubtract, A: 12, B: 5, Answer: 7}, "12 - 5 = ?"},
	}
	for _, tt := range tests {
		if got := tt.p.Question(); got != tt.want {
			t.Errorf("Question() = %q, want %q", got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		maxSum  int
		wantErr bool
	}{
		{0, true},
		{-3, true},
		{1, false},
		{10, false},
		{20, false},
		{99, false},
		{100, true},
	}
	for _, tt := range tests {
		err := Config{MaxSum: tt.maxSum}.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(maxSum=%d) error = %v, wantErr %v", tt.maxSum, err, tt.wantErr)
		}
	}
}
