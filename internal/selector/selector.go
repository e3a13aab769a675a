// Package selector picks which loaded items to show for one generate action.
package selector

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/abhisek/flashdeck/internal/deck"
)

// Mode is the active card-selection strategy.
type Mode int

const (
	// ModeRandom shows one item picked uniformly at random.
	ModeRandom Mode = iota
	// ModeCount shows N distinct items in random order.
	ModeCount
)

func (m Mode) String() string {
	switch m {
	case ModeRandom:
		return "random"
	case ModeCount:
		return "count"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "random" or "count" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return ModeRandom, nil
	case "count":
		return ModeCount, nil
	default:
		return ModeRandom, fmt.Errorf("invalid mode %q: must be random or count", s)
	}
}

// NewRand returns a generator seeded from the clock.
func NewRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Select produces the display selection for items under mode.
//
// An empty set yields an empty selection and no error. In ModeCount,
// count must lie in [1, items.Len()], otherwise *deck.ErrInvalidCount is
// returned with an empty selection. count is ignored in ModeRandom.
func Select(items deck.ItemSet, mode Mode, count int, rng *rand.Rand) ([]deck.FlashItem, error) {
	n := items.Len()
	if n == 0 {
		return nil, nil
	}

	switch mode {
	case ModeRandom:
		return []deck.FlashItem{items.At(rng.IntN(n))}, nil

	case ModeCount:
		if count <= 0 || count > n {
			return nil, &deck.ErrInvalidCount{Requested: count, Max: n}
		}
		// Fisher-Yates over the index range; the first count slots are a
		// uniform sample in uniform order.
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		rng.Shuffle(n, func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})
		out := make([]deck.FlashItem, count)
		for i := 0; i < count; i++ {
			out[i] = items.At(idx[i])
		}
		return out, nil
	}

	return nil, fmt.Errorf("unknown mode %v", mode)
}
