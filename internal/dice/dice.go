// Package dice parses and evaluates dice-notation expressions such as
// "2d6+1", "d20" or "(3d8 - 2) * 2".
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Evaluation failure classes. Syntax problems wrap ErrSyntax with position
// detail; the rest are returned as-is.
var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrSyntax          = errors.New("syntax error")
	ErrDivideByZero    = errors.New("division by zero")
	ErrDiceCount       = errors.New("dice count out of range")
	ErrDiceSides       = errors.New("dice sides out of range")
)

// Limits bounds how large a single dice term may be. Zero values mean
// "no limit" for that dimension; sides must always be at least 2.
type Limits struct {
	MaxDice  int
	MaxSides int
}

// Result is the structured outcome of evaluating one expression.
type Result struct {
	// Formula is the canonical infix rendering of the parsed expression,
	// e.g. "2d6 + 1" for input " 2D6 +1".
	Formula string
	// Value is the integer the expression evaluated to.
	Value int
}

// Roller evaluates dice expressions against a single random source.
// The zero value is not usable; construct with NewRoller.
type Roller struct {
	mu     sync.Mutex
	rng    *rand.Rand
	limits Limits
}

// NewRoller returns a Roller seeded with seed. A zero seed picks a
// time-based seed, which is the interactive default.
func NewRoller(seed int64, limits Limits) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{
		rng:    rand.New(rand.NewSource(seed)),
		limits: limits,
	}
}

// Roll parses text and evaluates it. Safe for concurrent use; draws from
// the shared random source are serialized.
func (r *Roller) Roll(text string) (Result, error) {
	expr, err := Parse(text)
	if err != nil {
		return Result{}, err
	}

	r.mu.Lock()
	value, err := expr.eval(r.rng, r.limits)
	r.mu.Unlock()
	if err != nil {
		return Result{}, err
	}

	return Result{Formula: expr.Formula(), Value: value}, nil
}

// rollDice rolls count dice with the given number of sides and returns the
// sum. Bounds are checked here so a parsed-but-absurd term like 9999d9999
// fails at evaluation time.
func rollDice(rng *rand.Rand, count, sides int, lim Limits) (int, error) {
	if count < 1 || (lim.MaxDice > 0 && count > lim.MaxDice) {
		return 0, fmt.Errorf("%w: %d", ErrDiceCount, count)
	}
	if sides < 2 || (lim.MaxSides > 0 && sides > lim.MaxSides) {
		return 0, fmt.Errorf("%w: %d", ErrDiceSides, sides)
	}
	total := 0
	for i := 0; i < count; i++ {
		total += rng.Intn(sides) + 1
	}
	return total, nil
}
