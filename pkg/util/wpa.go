package util

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// DeriveWPAPSK derives the 256-bit WPA pre-shared key from a passphrase and
// SSID, as wpa_passphrase does: PBKDF2-SHA1, 4096 rounds, 32 bytes.
// Passphrases must be 8-63 characters per IEEE 802.11i.
func DeriveWPAPSK(passphrase, ssid string) (string, error) {
	if len(passphrase) < 8 || len(passphrase) > 63 {
		return "", fmt.Errorf("passphrase must be 8-63 characters, got %d", len(passphrase))
	}
	if ssid == "" {
		return "", fmt.Errorf("SSID must not be empty")
	}
	key := pbkdf2.Key([]byte(passphrase), []byte(ssid), 4096, 32, sha1.New)
	return hex.EncodeToString(key), nil
}
