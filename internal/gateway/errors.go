package gateway

import (
	"encoding/json"
	"sort"
)

// ExtractMessage pulls a human-readable message out of an error body. The
// backend answers either {"detail": "..."} or a field-keyed object of
// message lists; anything else falls back to a generic string. With several
// failing fields the first one in key order wins, so the result is stable.
func ExtractMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return GenericErrorMessage
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return GenericErrorMessage
	}

	if detail, ok := obj["detail"]; ok {
		var s string
		if json.Unmarshal(detail, &s) == nil && s != "" {
			return s
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var list []string
		if json.Unmarshal(obj[k], &list) == nil && len(list) > 0 && list[0] != "" {
			return list[0]
		}
		var s string
		if json.Unmarshal(obj[k], &s) == nil && s != "" {
			return s
		}
	}

	return GenericErrorMessage
}
