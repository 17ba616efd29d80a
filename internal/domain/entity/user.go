package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/ethereum/go-ethereum/common"
)

// NormalizeUserID validates a wallet address and returns it in lowercase 0x form.
// Users are identified by their smart wallet address, so the same wallet always maps
// to the same budget regardless of checksum casing.
func NormalizeUserID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if len(id) < 2 || (id[:2] != "0x" && id[:2] != "0X") {
		return "", errs.ErrInvalidUserID
	}
	if !common.IsHexAddress(id) {
		return "", errs.ErrInvalidUserID
	}
	return "0x" + strings.ToLower(id[2:]), nil
}

// IsHexAddress reports whether s is a 0x-prefixed 20 byte hex address
func IsHexAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}
