package arbiter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"codedoc/internal/domain"
)

const (
	openingFence = "```json"
	closingFence = "```"
)

// ParseReply extracts the two documents from the model's reply. The reply may be
// wrapped in a ```json fence. A missing "professional" key falls back to the
// legacy "proof" key. Non-string values are kept as their compact JSON text.
func ParseReply(text string) (domain.ArbitrationResult, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, openingFence)
	cleaned = strings.TrimSuffix(cleaned, closingFence)
	cleaned = strings.TrimSpace(cleaned)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return domain.ArbitrationResult{}, fmt.Errorf("%w: %v", domain.ErrMalformedReply, err)
	}

	professional, ok := field(fields, "professional")
	if !ok {
		professional, _ = field(fields, "proof")
	}
	technical, _ := field(fields, "technical")

	return domain.ArbitrationResult{
		Technical:    technical,
		Professional: professional,
	}, nil
}

// field returns the value under key; ok is false when the key is absent or null.
func field(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, present := fields[key]
	if !present || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw), true
	}
	return compact.String(), true
}
