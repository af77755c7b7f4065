package youtube

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ExhaustionStore shares "key out of quota" marks between processes.
type ExhaustionStore interface {
	Exhausted(ctx context.Context, key string) bool
	MarkExhausted(ctx context.Context, key string)
}

// KeyState is a snapshot of the key ring. A ring is either ACTIVE on one key
// index or EXHAUSTED.
type KeyState struct {
	Active    int  `json:"active"`
	Total     int  `json:"total"`
	Exhausted bool `json:"exhausted"`
}

func (s KeyState) String() string {
	if s.Exhausted {
		return "EXHAUSTED"
	}
	return fmt.Sprintf("ACTIVE(%d)", s.Active)
}

// KeyRing rotates through API keys as each runs out of quota:
//
//	ACTIVE(0) --quota--> ACTIVE(1) --quota--> ... --quota--> EXHAUSTED
//
// Quota resets at midnight Pacific time, at which point the ring returns to
// ACTIVE(0).
type KeyRing struct {
	mu     sync.Mutex
	keys   []string
	active int
	day    string
	marks  ExhaustionStore
	now    func() time.Time
}

func NewKeyRing(keys []string, marks ExhaustionStore) (*KeyRing, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	r := &KeyRing{keys: keys, marks: marks, now: time.Now}
	r.day = quotaDay(r.now())
	return r, nil
}

// Current returns the active key and its index, skipping keys another process
// already marked as exhausted.
func (r *KeyRing) Current(ctx context.Context) (string, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetOnNewDay()
	for r.active < len(r.keys) {
		key := r.keys[r.active]
		if r.marks == nil || !r.marks.Exhausted(ctx, key) {
			return key, r.active, nil
		}
		r.active++
	}
	return "", -1, ErrQuotaExhausted
}

// Rotate moves past the key at index from. Calls for a key that is no longer
// active are ignored, so concurrent callers that hit the same quota error
// advance the ring only once. It reports whether a key remains.
func (r *KeyRing) Rotate(ctx context.Context, from int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if from == r.active && r.active < len(r.keys) {
		if r.marks != nil {
			r.marks.MarkExhausted(ctx, r.keys[from])
		}
		r.active++
	}
	return r.active < len(r.keys)
}

// State returns a snapshot of the ring.
func (r *KeyRing) State() KeyState {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetOnNewDay()
	return KeyState{Active: r.active, Total: len(r.keys), Exhausted: r.active >= len(r.keys)}
}

func (r *KeyRing) resetOnNewDay() {
	if d := quotaDay(r.now()); d != r.day {
		r.day = d
		r.active = 0
	}
}

var pacific = loadPacific()

func loadPacific() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.FixedZone("PST", -8*60*60)
	}
	return loc
}

// quotaDay is the calendar day, in Pacific time, that quota usage counts against.
func quotaDay(t time.Time) string {
	return t.In(pacific).Format(time.DateOnly)
}

// untilQuotaReset is the time remaining until the next Pacific midnight.
func untilQuotaReset(t time.Time) time.Duration {
	pt := t.In(pacific)
	next := time.Date(pt.Year(), pt.Month(), pt.Day()+1, 0, 0, 0, 0, pacific)
	return next.Sub(pt)
}
