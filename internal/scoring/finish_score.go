package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFinishScore classifies edit-field input that cannot become a
// finish score.
var ErrInvalidFinishScore = errors.New("invalid finish score")

// ParseFinishScore converts the raw edit-field text into a finish score.
// Surrounding whitespace is ignored; anything else that is not a base-10
// integer of at least MinFinishScore is rejected.
func ParseFinishScore(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidFinishScore)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidFinishScore, raw)
	}
	if n < MinFinishScore {
		return 0, fmt.Errorf("%w: %d is below %d", ErrInvalidFinishScore, n, MinFinishScore)
	}
	return n, nil
}
