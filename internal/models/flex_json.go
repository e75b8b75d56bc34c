package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// matchStateFieldMap caches JSON tag -> struct field index mappings
var (
	matchStateFieldMap     map[string]int
	matchStateFieldMapOnce sync.Once
)

func getMatchStateFieldMap() map[string]int {
	matchStateFieldMapOnce.Do(func() {
		t := reflect.TypeOf(MatchState{})
		matchStateFieldMap = make(map[string]int, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("json")
			if tag == "" || tag == "-" {
				continue
			}
			name := strings.Split(tag, ",")[0]
			matchStateFieldMap[name] = i
		}
	})
	return matchStateFieldMap
}

// UnmarshalJSON accepts both native JSON types and string-encoded numbers.
// Scoreboard front-ends often post form values as strings ("balls_left": "36");
// those are coerced to numbers. A value that cannot be coerced is left unset
// and surfaces later as a missing field.
func (s *MatchState) UnmarshalJSON(data []byte) error {
	// Alias prevents infinite recursion
	type Alias MatchState
	a := (*Alias)(s)

	// Fast path: every value already has the native type
	if err := json.Unmarshal(data, a); err == nil {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flex unmarshal: %w", err)
	}

	// The failed fast path may have allocated pointers for mistyped values
	*s = MatchState{}

	fieldMap := getMatchStateFieldMap()
	v := reflect.ValueOf(a).Elem()

	for key, rawVal := range raw {
		idx, ok := fieldMap[key]
		if !ok {
			continue
		}

		fv := v.Field(idx)
		if !fv.CanSet() {
			continue
		}

		ptr := reflect.New(fv.Type())
		if err := json.Unmarshal(rawVal, ptr.Interface()); err == nil {
			fv.Set(ptr.Elem())
			continue
		}

		coerceRawToField(fv, rawVal)
	}

	return nil
}

// coerceRawToField handles the two mismatches we see in practice: a quoted
// number for a numeric field, and a bare number for a string field.
func coerceRawToField(fv reflect.Value, rawVal json.RawMessage) {
	if fv.Kind() != reflect.Ptr {
		return
	}
	elem := fv.Type().Elem()

	switch elem.Kind() {
	case reflect.Float32, reflect.Float64:
		var str string
		if err := json.Unmarshal(rawVal, &str); err != nil {
			return
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return
		}
		n, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return
		}
		p := reflect.New(elem)
		p.Elem().SetFloat(n)
		fv.Set(p)
	case reflect.String:
		var n json.Number
		if err := json.Unmarshal(rawVal, &n); err != nil {
			return
		}
		p := reflect.New(elem)
		p.Elem().SetString(n.String())
		fv.Set(p)
	}
}
