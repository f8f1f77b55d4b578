package models

import (
	"encoding/json"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Older documents store list fields as joined strings while newer ones use
// real arrays. CommaList and LineList absorb both shapes on read so the rest
// of the code only ever sees []string. Both marshal back as plain arrays.

// CommaList is a []string that also accepts a comma-joined string
// (image URL lists).
type CommaList []string

// LineList is a []string that also accepts a newline-delimited text block
// (included / not included / documents).
type LineList []string

func splitClean(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *CommaList) UnmarshalJSON(data []byte) error {
	return unmarshalFlexJSON(data, (*[]string)(c), ",")
}

func (l *LineList) UnmarshalJSON(data []byte) error {
	return unmarshalFlexJSON(data, (*[]string)(l), "\n")
}

func unmarshalFlexJSON(data []byte, dst *[]string, sep string) error {
	if string(data) == "null" {
		*dst = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*dst = splitClean(s, sep)
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*dst = arr
	return nil
}

func (c *CommaList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalFlexBSON(t, data, (*[]string)(c), ",")
}

func (l *LineList) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return unmarshalFlexBSON(t, data, (*[]string)(l), "\n")
}

func unmarshalFlexBSON(t bsontype.Type, data []byte, dst *[]string, sep string) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*dst = splitClean(raw.StringValue(), sep)
		return nil
	case bsontype.Null, bsontype.Undefined:
		*dst = nil
		return nil
	default:
		var arr []string
		if err := raw.Unmarshal(&arr); err != nil {
			return err
		}
		*dst = arr
		return nil
	}
}
