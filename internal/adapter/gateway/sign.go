package gateway

import (
	"crypto/hmac"
	"encoding/hex"
	"hash"
)

func hmacHex(h func() hash.Hash, secret []byte, payload string) string {
	mac := hmac.New(h, secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
