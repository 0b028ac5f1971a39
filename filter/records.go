package filter

import (
	"bytes"
	"encoding/json"
)

// Records decodes a listing body. The API answers either with a bare JSON
// array or with an object wrapping one array, such as {"posts": [...]};
// a single object is returned as one record.
func Records(body []byte) ([]Record, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, &DecodeError{Reason: "empty body"}
	}

	if body[0] == '[' {
		var list []Record
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, &DecodeError{Reason: "invalid array", Err: err}
		}
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, &DecodeError{Reason: "invalid object", Err: err}
	}
	if len(obj) == 1 {
		for _, raw := range obj {
			var list []Record
			if json.Unmarshal(raw, &list) == nil {
				return list, nil
			}
		}
	}

	var single Record
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, &DecodeError{Reason: "invalid object", Err: err}
	}
	return []Record{single}, nil
}
