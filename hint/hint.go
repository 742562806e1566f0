// Package hint computes and encodes the per-position feedback a five letter
// word puzzle returns for a guess against a secret.
package hint

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/TwiN/go-color"
)

// Length is the number of letters in every word.
const Length = 5

// Count is the number of distinct hints, 3^Length.
const Count = 243

// AllCorrect is the hint of a guess that equals the secret.
const AllCorrect Hint = Count - 1

// State is the feedback for a single position.
type State uint8

const (
	Absent State = iota
	Present
	Correct
)

var (
	ErrInvalid = errors.New("hint: value out of range")
	ErrFormat  = errors.New("hint: malformed feedback")
)

// Hint is the sequence of states as a base 3 number, most significant
// position first.
type Hint uint8

// Compute returns the hint for guess against secret. Both words must be
// Length lowercase letters.
//
// A repeated guess letter is credited Present only as many times as that
// letter is still unmatched in the secret, scanning left to right.
func Compute(guess, secret string) Hint {
	var states [Length]State
	var remaining [26]int8

	// greens
	for i := range Length {
		if guess[i] == secret[i] {
			states[i] = Correct
		} else {
			remaining[secret[i]-'a']++
		}
	}

	var seen [26]int8
	for i := range Length {
		if states[i] == Correct {
			continue
		}
		c := guess[i] - 'a'
		seen[c]++
		if seen[c] <= remaining[c] {
			states[i] = Present
		}
	}

	return Encode(states)
}

// Encode packs per-position states into a Hint.
func Encode(states [Length]State) Hint {
	var ret uint8
	for _, d := range states {
		ret = (ret * 3) + uint8(d)
	}
	return Hint(ret)
}

// Decode unpacks h into per-position states.
func Decode(h Hint) ([Length]State, error) {
	var states [Length]State
	if h >= Count {
		return states, fmt.Errorf("%w: %d", ErrInvalid, h)
	}
	v := uint8(h)
	for i := Length - 1; i >= 0; i-- {
		states[i] = State(v % 3)
		v /= 3
	}
	return states, nil
}

// Parse reads feedback typed by a player. Each of the Length symbols is one of
// 0 b . - x (absent), 1 y ? (present) or 2 g + (correct). Whitespace is ignored.
func Parse(s string) (Hint, error) {
	s = strings.Join(strings.Fields(strings.ToLower(s)), "")
	if len(s) != Length {
		return 0, fmt.Errorf("%w: %q needs %d symbols", ErrFormat, s, Length)
	}
	var states [Length]State
	for i := range Length {
		switch s[i] {
		case '0', 'b', '.', '-', 'x':
			states[i] = Absent
		case '1', 'y', '?':
			states[i] = Present
		case '2', 'g', '+':
			states[i] = Correct
		default:
			return 0, fmt.Errorf("%w: unknown symbol %q", ErrFormat, s[i])
		}
	}
	return Encode(states), nil
}

// Digits returns the hint as Length base 3 digits, e.g. "01022".
func (h Hint) Digits() string {
	return fmt.Sprintf("%05s", strconv.FormatUint(uint64(h), 3))
}

var hintReplacer = strings.NewReplacer("0", "⬜", "1", "🟨", "2", "🟩")

func (h Hint) String() string {
	if h >= Count {
		return "invalid(" + strconv.Itoa(int(h)) + ")"
	}
	return hintReplacer.Replace(h.Digits())
}

// ColoredWord displays word with a colored background per letter.
func (h Hint) ColoredWord(word string) string {
	states, err := Decode(h)
	if err != nil || len(word) != Length {
		return word
	}

	var result strings.Builder
	for i := range Length {
		tone := color.GrayBackground + color.White
		switch states[i] {
		case Present:
			tone = color.YellowBackground + color.Black
		case Correct:
			tone = color.GreenBackground + color.Black
		}
		result.WriteString(color.Ize(tone, " "+string(word[i])+" "))
	}
	return result.String()
}
