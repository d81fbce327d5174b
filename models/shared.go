package models

import (
	"encoding/json"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// CanonicalID normalizes an identifier token so that numeric identifiers
// compare equal regardless of how they were encoded ("7", 7 and "7.0" all
// canonicalize to "7"). Non-numeric tokens are trimmed and returned as-is.
func CanonicalID(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return token
}

// IDList is an ordered list of catalog identifiers. On the wire it tolerates
// a JSON array (of strings and/or numbers), a single comma-delimited string,
// or null; all shapes decode to the same canonical list with empty tokens
// discarded. Nothing past the decode boundary ever sees the raw shape.
type IDList []string

func (l *IDList) UnmarshalJSON(data []byte) error {
	*l = nil
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = normalizeRefs(raw)
	return nil
}

func (l *IDList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*l = nil
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Array:
		var raw []interface{}
		if err := rv.Unmarshal(&raw); err != nil {
			return nil
		}
		*l = normalizeRefs(raw)
	case bsontype.String:
		if s, ok := rv.StringValueOK(); ok {
			*l = normalizeRefs(s)
		}
	case bsontype.Double, bsontype.Int32, bsontype.Int64:
		if f, ok := rv.AsInt64OK(); ok {
			*l = IDList{strconv.FormatInt(f, 10)}
		}
	}
	return nil
}

// normalizeRefs flattens any tolerated add-on reference shape into the
// canonical ordered identifier list.
func normalizeRefs(raw interface{}) IDList {
	var out IDList
	appendToken := func(token string) {
		if id := CanonicalID(token); id != "" {
			out = append(out, id)
		}
	}
	switch v := raw.(type) {
	case nil:
	case string:
		for _, part := range strings.Split(v, ",") {
			appendToken(part)
		}
	case float64:
		appendToken(strconv.FormatFloat(v, 'f', -1, 64))
	case []interface{}:
		for _, item := range v {
			switch e := item.(type) {
			case string:
				appendToken(e)
			case float64:
				appendToken(strconv.FormatFloat(e, 'f', -1, 64))
			case int32:
				appendToken(strconv.FormatInt(int64(e), 10))
			case int64:
				appendToken(strconv.FormatInt(e, 10))
			}
		}
	}
	return out
}

// Money is a price amount. Malformed or non-numeric wire values decode to 0
// rather than failing; a missing price contributes nothing to a total.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	*m = 0
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*m = Money(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*m = Money(f)
		}
	}
	return nil
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	*m = 0
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*m = Money(rv.Double())
	case bsontype.Int32:
		*m = Money(rv.Int32())
	case bsontype.Int64:
		*m = Money(rv.Int64())
	case bsontype.String:
		if s, ok := rv.StringValueOK(); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				*m = Money(f)
			}
		}
	}
	return nil
}

func (m Money) Float64() float64 {
	return float64(m)
}
