// Package relay provides generic Relay style connection types and the
// cursor encoding they use.
package relay

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/chirino/graphql-schemagen/customtypes"
	"github.com/chirino/graphql-schemagen/errors"
)

func MarshalID(kind string, spec interface{}) (customtypes.ID, error) {
	d, err := json.Marshal(spec)
	if err != nil {
		return "", errors.Wrap(err, "relay.MarshalID")
	}
	return customtypes.ID(base64.URLEncoding.EncodeToString(append([]byte(kind+":"), d...))), nil
}

func UnmarshalKind(id customtypes.ID) string {
	s, err := base64.URLEncoding.DecodeString(string(id))
	if err != nil {
		return ""
	}
	i := strings.IndexByte(string(s), ':')
	if i == -1 {
		return ""
	}
	return string(s[:i])
}

func UnmarshalSpec(id customtypes.ID, v interface{}) error {
	s, err := base64.URLEncoding.DecodeString(string(id))
	if err != nil {
		return errors.Wrap(err, "invalid relay ID")
	}
	i := strings.IndexByte(string(s), ':')
	if i == -1 {
		return errors.New("invalid relay ID")
	}
	return errors.Wrap(json.Unmarshal(s[i+1:], v), "invalid relay ID")
}
