package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// TokenToday and TokenYesterday are the relative date tokens accepted
	// on the command line alongside an explicit DD-MM-YYYY date.
	TokenToday     = "today"
	TokenYesterday = "yesterday"

	layoutInput     = "02-01-2006"
	layoutCanonical = "2006-01-02"
)

// ResolveDate turns a user-supplied date token into the canonical
// YYYY-MM-DD identifier used for service queries and note file naming,
// along with the resolved calendar date. The tokens "today" and
// "yesterday" resolve against now; any other token is parsed strictly as
// DD-MM-YYYY.
func ResolveDate(token string, now time.Time) (string, time.Time, error) {
	var day time.Time

	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", TokenToday:
		day = now
	case TokenYesterday:
		day = now.AddDate(0, 0, -1)
	default:
		t, err := time.ParseInLocation(layoutInput, strings.TrimSpace(token), now.Location())
		if err != nil {
			return "", time.Time{}, fmt.Errorf("invalid date %q: expected %q, %q, or DD-MM-YYYY", token, TokenToday, TokenYesterday)
		}
		day = t
	}

	return day.Format(layoutCanonical), day, nil
}
