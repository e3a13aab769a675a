package selector

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/flashdeck/internal/deck"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func makeSet(n int) deck.ItemSet {
	items := make([]deck.FlashItem, n)
	for i := range items {
		items[i] = deck.FlashItem{
			Question: fmt.Sprintf("Q%d", i),
			Answer:   fmt.Sprintf("A%d", i),
		}
	}
	return deck.NewItemSet(items)
}

func TestSelect_EmptySet(t *testing.T) {
	for _, mode := range []Mode{ModeRandom, ModeCount} {
		got, err := Select(deck.ItemSet{}, mode, 3, testRand())
		if err != nil {
			t.Errorf("%v: unexpected error %v", mode, err)
		}
		if len(got) != 0 {
			t.Errorf("%v: got %d items, want 0", mode, len(got))
		}
	}
}

func TestSelect_RandomReturnsOneMember(t *testing.T) {
	set := makeSet(5)
	members := make(map[deck.FlashItem]bool)
	for _, it := range set.Items() {
		members[it] = true
	}

	rng := testRand()
	for i := 0; i < 100; i++ {
		got, err := Select(set, ModeRandom, 0, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d items, want 1", len(got))
		}
		if !members[got[0]] {
			t.Fatalf("selected %+v is not in the set", got[0])
		}
	}
}

func TestSelect_RandomIsRoughlyUniform(t *testing.T) {
	const (
		n      = 4
		trials = 40000
	)
	set := makeSet(n)
	index := make(map[string]int)
	for i, it := range set.Items() {
		index[it.Question] = i
	}

	counts := make([]int, n)
	rng := testRand()
	for i := 0; i < trials; i++ {
		got, _ := Select(set, ModeRandom, 0, rng)
		counts[index[got[0].Question]]++
	}

	expected := float64(trials) / n
	for i, c := range counts {
		dev := (float64(c) - expected) / expected
		if dev < -0.05 || dev > 0.05 {
			t.Errorf("index %d picked %d times, expected about %.0f", i, c, expected)
		}
	}
}

func TestSelect_CountDistinct(t *testing.T) {
	set := makeSet(10)
	rng := testRand()

	for n := 1; n <= 10; n++ {
		got, err := Select(set, ModeCount, n, rng)
		if err != nil {
			t.Fatalf("count=%d: unexpected error %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("count=%d: got %d items", n, len(got))
		}
		seen := make(map[string]bool)
		for _, it := range got {
			if seen[it.Question] {
				t.Fatalf("count=%d: duplicate %q", n, it.Question)
			}
			seen[it.Question] = true
		}
	}
}

func TestSelect_CountOutOfRange(t *testing.T) {
	set := makeSet(3)
	for _, n := range []int{-1, 0, 4, 100} {
		got, err := Select(set, ModeCount, n, testRand())
		var countErr *deck.ErrInvalidCount
		if !errors.As(err, &countErr) {
			t.Fatalf("count=%d: error = %v, want ErrInvalidCount", n, err)
		}
		if countErr.Max != 3 || countErr.Requested != n {
			t.Errorf("count=%d: got %+v", n, countErr)
		}
		if len(got) != 0 {
			t.Errorf("count=%d: got %d items, want none", n, len(got))
		}
	}
}

func TestSelect_CountBothItems(t *testing.T) {
	set, err := deck.Parse([]byte(`[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := Select(set, ModeCount, 2, testRand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] == got[1] {
		t.Fatalf("got %+v, want both items once", got)
	}
}

func TestSelect_CountOrderVaries(t *testing.T) {
	set := makeSet(6)
	rng := testRand()
	firsts := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got, _ := Select(set, ModeCount, 6, rng)
		firsts[got[0].Question] = true
	}
	if len(firsts) < 6 {
		t.Errorf("only %d distinct leading items over 200 shuffles", len(firsts))
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"random", ModeRandom, false},
		{"COUNT", ModeCount, false},
		{" count ", ModeCount, false},
		{"", ModeRandom, false},
		{"all", ModeRandom, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
