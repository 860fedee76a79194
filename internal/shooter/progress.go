package shooter

import (
	"fmt"
	"strconv"
	"strings"
)

// Progress record keys.
const (
	KeyUnlockedShips = "unlocked_ships"
	KeyBestScore     = "best_score"
	KeyBestLevel     = "best_level"
	KeyLastScore     = "last_score"
)

// Progress is the record kept between runs.
type Progress struct {
	Unlocked  [len(Ships)]bool
	BestScore int
	BestLevel int
	LastScore int
}

// DefaultProgress is the record of a new player: the first ship only.
func DefaultProgress() Progress {
	p := Progress{BestLevel: 1}
	p.Unlocked[0] = true
	return p
}

// Merge combines two records. Unlocks accumulate, bests take the maximum
// and the last score comes from other.
func (p Progress) Merge(other Progress) Progress {
	out := p
	for i := range out.Unlocked {
		out.Unlocked[i] = p.Unlocked[i] || other.Unlocked[i]
	}
	out.BestScore = max(p.BestScore, other.BestScore)
	out.BestLevel = max(p.BestLevel, other.BestLevel)
	out.LastScore = other.LastScore
	return out
}

// UnlockedString renders the unlock bitset as "1" and "0" per slot.
func (p Progress) UnlockedString() string {
	var sb strings.Builder
	for _, u := range p.Unlocked {
		if u {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Encode flattens the record into string key-value pairs.
func (p Progress) Encode() map[string]string {
	return map[string]string{
		KeyUnlockedShips: p.UnlockedString(),
		KeyBestScore:     strconv.Itoa(p.BestScore),
		KeyBestLevel:     strconv.Itoa(p.BestLevel),
		KeyLastScore:     strconv.Itoa(p.LastScore),
	}
}

// DecodeProgress parses a record produced by Encode. Missing keys keep
// their defaults; malformed values are an error. The first ship is always
// unlocked.
func DecodeProgress(kv map[string]string) (Progress, error) {
	p := DefaultProgress()

	if s, ok := kv[KeyUnlockedShips]; ok {
		if len(s) != len(p.Unlocked) {
			return DefaultProgress(), fmt.Errorf("progress: %s has %d slots, expected %d", KeyUnlockedShips, len(s), len(p.Unlocked))
		}
		for i, c := range s {
			switch c {
			case '1':
				p.Unlocked[i] = true
			case '0':
				p.Unlocked[i] = false
			default:
				return DefaultProgress(), fmt.Errorf("progress: invalid %s %q", KeyUnlockedShips, s)
			}
		}
		p.Unlocked[0] = true
	}

	ints := []struct {
		key string
		dst *int
	}{
		{KeyBestScore, &p.BestScore},
		{KeyBestLevel, &p.BestLevel},
		{KeyLastScore, &p.LastScore},
	}
	for _, f := range ints {
		s, ok := kv[f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return DefaultProgress(), fmt.Errorf("progress: invalid %s %q", f.key, s)
		}
		*f.dst = n
	}
	p.BestLevel = max(p.BestLevel, 1)

	return p, nil
}
