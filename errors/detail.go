package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// errorsKey marks a leaf of an error-detail tree holding the messages for
// the enclosing path.
const errorsKey = "_errors"

// DetailEntry is one key of an ErrorDetail.
//
// Value is a string, json.Number, bool, nil, a nested ErrorDetail (JSON
// object) or a []interface{} (JSON array).
type DetailEntry struct {
	Key   string
	Value interface{}
}

// ErrorDetail is the ordered JSON object found under the "errors" field of a
// platform error payload. Keys keep the order they were received in.
type ErrorDetail []DetailEntry

// Get returns the value stored under key.
func (d ErrorDetail) Get(key string) (interface{}, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes a JSON object, preserving key order. Duplicate keys
// keep their first position and take the last value.
func (d *ErrorDetail) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return err
	}
	obj, ok := v.(ErrorDetail)
	if !ok {
		return fmt.Errorf("error detail must be a JSON object, got %T", v)
	}
	*d = obj
	return nil
}

// MarshalJSON encodes d as a JSON object in entry order.
func (d ErrorDetail) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := ErrorDetail{}
		index := make(map[string]int)
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if i, ok := index[key]; ok {
				obj[i].Value = val
				continue
			}
			index[key] = len(obj)
			obj = append(obj, DetailEntry{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []interface{}{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

// FlatError is one entry of a flattened error-detail tree.
type FlatError struct {
	// Path is the dotted path of keys, e.g. "embeds.0.title".
	Path string

	// Message is the space-joined list of messages for the path.
	Message string
}

// FlattenErrorDetail flattens a nested error-detail tree into dotted paths.
//
// The walk is depth-first in key order. A nested object containing the
// "_errors" key becomes a single entry whose message joins the "message"
// fields of the listed objects with a space; the walk does not descend into
// it. Any other nested object is recursed into. Scalars are stored directly
// (non-string scalars as their JSON text).
//
// When two paths collide, the entry keeps its first position and the last
// value wins.
//
// Example:
//
//	{"content": {"_errors": [{"message": "too long"}, {"message": "bad word"}]}}
//
// flattens to a single entry {Path: "content", Message: "too long bad word"}.
func FlattenErrorDetail(d ErrorDetail) []FlatError {
	f := flattener{index: make(map[string]int)}
	f.walk(d, "")
	return f.out
}

type flattener struct {
	out   []FlatError
	index map[string]int
}

func (f *flattener) walk(d ErrorDetail, prefix string) {
	for _, e := range d {
		key := e.Key
		if prefix != "" {
			key = prefix + "." + e.Key
		}

		nested, ok := e.Value.(ErrorDetail)
		if !ok {
			f.add(key, scalarText(e.Value))
			continue
		}

		if errs, ok := nested.Get(errorsKey); ok {
			f.add(key, joinMessages(errs))
			continue
		}
		f.walk(nested, key)
	}
}

func (f *flattener) add(path, message string) {
	if i, ok := f.index[path]; ok {
		f.out[i].Message = message
		return
	}
	f.index[path] = len(f.out)
	f.out = append(f.out, FlatError{Path: path, Message: message})
}

// joinMessages joins the "message" field of each listed object with a space.
// Missing fields and entries that are not objects contribute an empty string.
func joinMessages(v interface{}) string {
	list, ok := v.([]interface{})
	if !ok {
		return ""
	}

	var buf bytes.Buffer
	for i, item := range list {
		if i > 0 {
			buf.WriteByte(' ')
		}
		obj, ok := item.(ErrorDetail)
		if !ok {
			continue
		}
		if msg, ok := obj.Get("message"); ok {
			buf.WriteString(scalarText(msg))
		}
	}
	return buf.String()
}

func scalarText(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// ErrorPayload is the structured JSON body of a failed platform request.
type ErrorPayload struct {
	// Code is the platform-specific error code. Zero when absent.
	Code int

	// Message is the base error text. Empty when absent.
	Message string

	// Errors is the nested error-detail tree. Nil when absent.
	Errors ErrorDetail
}

// UnmarshalJSON decodes the code, message and errors fields of a payload.
// A code that is not an integer is treated as absent.
func (p *ErrorPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code    json.Number `json:"code"`
		Message string      `json:"message"`
		Errors  ErrorDetail `json:"errors"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Code = 0
	if raw.Code != "" {
		if n, err := raw.Code.Int64(); err == nil {
			p.Code = int(n)
		}
	}
	p.Message = raw.Message
	p.Errors = raw.Errors
	return nil
}

// ParseErrorPayload decodes a JSON error body.
// Returns a KindInvalidData error if body is not a JSON object of the
// expected shape.
func ParseErrorPayload(body []byte) (ErrorPayload, error) {
	var p ErrorPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return ErrorPayload{}, Wrap(err, KindInvalidData, "malformed error payload")
	}
	return p, nil
}

// text renders the payload as the detail text of an HTTP error: the base
// message followed by one "In path: message" line per flattened entry.
func (p ErrorPayload) text() string {
	if len(p.Errors) == 0 {
		return p.Message
	}

	var buf bytes.Buffer
	buf.WriteString(p.Message)
	buf.WriteByte('\n')
	for i, f := range FlattenErrorDetail(p.Errors) {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "In %s: %s", f.Path, f.Message)
	}
	return buf.String()
}
