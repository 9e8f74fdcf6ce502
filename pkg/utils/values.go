package utils

import (
	"strconv"
	"strings"
	"time"
)

// String renders scalar document values as text. Empty strings and
// unsupported types yield "".
func String(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// Float reads numbers that may have been stored as text.
func Float(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(t, ",", "")), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Int reads a counter, treating anything unreadable as zero.
func Int(v interface{}) int {
	f, ok := Float(v)
	if !ok {
		return 0
	}
	return int(f)
}

// Time reads Firestore timestamps plus the serialized forms older clients wrote:
// {seconds, nanoseconds} maps, RFC 3339 strings and epoch milliseconds.
func Time(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case map[string]interface{}:
		secs, ok := Float(t["seconds"])
		if !ok {
			secs, ok = Float(t["_seconds"])
		}
		if !ok {
			return time.Time{}, false
		}
		nanos, _ := Float(t["nanoseconds"])
		if nanos == 0 {
			nanos, _ = Float(t["_nanoseconds"])
		}
		return time.Unix(int64(secs), int64(nanos)).UTC(), true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.UnixMilli(t).UTC(), t > 0
	case float64:
		return time.UnixMilli(int64(t)).UTC(), t > 0
	default:
		return time.Time{}, false
	}
}

// TimePtr is Time returning nil when the value is absent.
func TimePtr(v interface{}) *time.Time {
	t, ok := Time(v)
	if !ok {
		return nil
	}
	return &t
}

// StringSlice accepts arrays or a delimited string such as "Plumbing, Carpentry".
func StringSlice(v interface{}, sep string) []string {
	var out []string
	switch t := v.(type) {
	case []interface{}:
		for _, item := range t {
			if s := String(item); s != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, item := range t {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, part := range strings.Split(t, sep) {
			if s := strings.TrimSpace(part); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Map returns v as a document map, or nil.
func Map(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}
