package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// HMACSigner is the checksum stand-in used outside production. Deployments
// against a real gateway swap in the vendor's signature implementation.
type HMACSigner struct {
	key []byte
}

func NewHMACSigner(merchantKey string) *HMACSigner {
	return &HMACSigner{key: []byte(merchantKey)}
}

func (s *HMACSigner) Sign(body []byte) (string, error) {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// Verify recomputes the signature over the callback parameters, excluding
// the checksum field itself, joined in key order.
func (s *HMACSigner) Verify(params map[string]string, signature string) (bool, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		if key == "CHECKSUMHASH" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var payload strings.Builder
	for _, key := range keys {
		payload.WriteString(key)
		payload.WriteByte('=')
		payload.WriteString(params[key])
		payload.WriteByte('|')
	}

	expected, err := s.Sign([]byte(payload.String()))
	if err != nil {
		return false, err
	}
	return hmac.Equal([]byte(expected), []byte(signature)), nil
}
