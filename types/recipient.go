package types

import (
	"strconv"
	"strings"

	j "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/reoring/botschema"
)

// Recipient identifies a chat either by numeric id or by the @username of a
// public channel or supergroup. Exactly one of ID and Username is meaningful;
// Username wins when both are set.
type Recipient struct {
	ID       int64
	Username string
}

// ChatID is a numeric chat identifier.
type ChatID int64

// Username is a public chat username. The leading '@' is optional.
type Username string

// Into implements botschema.Into[Recipient].
func (id ChatID) Into() Recipient { return Recipient{ID: int64(id)} }

// Into implements botschema.Into[Recipient].
func (u Username) Into() Recipient {
	s := string(u)
	if !strings.HasPrefix(s, "@") {
		s = "@" + s
	}
	return Recipient{Username: s}
}

// Into implements botschema.Into[Recipient].
func (r Recipient) Into() Recipient { return r }

var (
	_ botschema.Into[Recipient] = ChatID(0)
	_ botschema.Into[Recipient] = Username("")
	_ botschema.Into[Recipient] = Recipient{}
)

func (r Recipient) String() string {
	if r.Username != "" {
		return r.Username
	}
	return strconv.FormatInt(r.ID, 10)
}

// MarshalJSON writes the username as a string or the id as a number.
func (r Recipient) MarshalJSON() ([]byte, error) {
	if r.Username != "" {
		return j.Marshal(r.Username)
	}
	return strconv.AppendInt(nil, r.ID, 10), nil
}

// UnmarshalJSON accepts an integer id or a string username.
func (r *Recipient) UnmarshalJSON(data []byte) error {
	v := gjson.ParseBytes(data)
	switch v.Type {
	case gjson.Number:
		id, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return botschema.NewTypeMismatch(botschema.KindInteger, data)
		}
		*r = Recipient{ID: id}
	case gjson.String:
		*r = Recipient{Username: v.Str}
	default:
		return botschema.NewTypeMismatch(botschema.KindInteger+"|"+botschema.KindString, data)
	}
	return nil
}
