package customtypes

import (
	"time"

	"github.com/chirino/graphql-schemagen/errors"
)

// Time is a time.Time exposed as the Time scalar, serialized as RFC 3339.
type Time struct {
	time.Time
}

// UnmarshalGraphQL is a custom unmarshaler for Time
//
// This function will be called whenever you use the
// time scalar as an input
func (t *Time) UnmarshalGraphQL(input interface{}) error {
	switch input := input.(type) {
	case time.Time:
		t.Time = input
		return nil
	case string:
		var err error
		t.Time, err = time.Parse(time.RFC3339, input)
		return errors.Wrap(err, "invalid Time")
	case int:
		t.Time = time.Unix(int64(input), 0)
		return nil
	case float64:
		t.Time = time.Unix(int64(input), 0)
		return nil
	default:
		return errors.Errorf("wrong type for Time: %T", input)
	}
}

func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.Format(time.RFC3339)), nil
}
