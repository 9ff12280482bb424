package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// VerifyMidtransSignature checks the SHA-512 signature_key embedded in a
// Midtrans notification: hex(sha512(order_id + status_code + gross_amount
// + serverKey)). Callers skip verification entirely when the payload has
// no signature_key (see the webhook handler).
func VerifyMidtransSignature(orderID, statusCode, grossAmount, signatureKey, serverKey string) bool {
	if serverKey == "" || signatureKey == "" {
		return false
	}

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	expected := hex.EncodeToString(sum[:])

	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signatureKey))) == 1
}

// VerifyPaddleSignature checks a Paddle-Signature header of the form
// "ts=<unix>;h1=<hex>" against HMAC-SHA256("{ts}:{rawBody}", secret).
func VerifyPaddleSignature(rawBody []byte, header, secret string) bool {
	if secret == "" || header == "" {
		return false
	}

	var ts, h1 string
	for _, part := range strings.Split(header, ";") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "ts":
			ts = strings.TrimSpace(v)
		case "h1":
			h1 = strings.TrimSpace(v)
		}
	}
	if ts == "" || h1 == "" {
		return false
	}

	sigBytes, err := hex.DecodeString(h1)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte(":"))
	mac.Write(rawBody)

	return subtle.ConstantTimeCompare(mac.Sum(nil), sigBytes) == 1
}

// VerifyFastSpringSignature checks the X-FS-Signature header:
// base64(HMAC-SHA256(rawBody, secret)).
func VerifyFastSpringSignature(rawBody []byte, header, secret string) bool {
	if secret == "" || header == "" {
		return false
	}

	sigBytes, err := base64.StdEncoding.DecodeString(header)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)

	return subtle.ConstantTimeCompare(mac.Sum(nil), sigBytes) == 1
}
