package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SpendPermission is a persisted delegated allowance a user signed for the operator
type SpendPermission struct {
	UserID            string
	PermissionHash    string
	TokenAddress      string
	AllowanceUnits    int64
	PeriodSeconds     int64
	StartUnix         int64
	EndUnix           int64 // 0 means unbounded
	PermissionPayload string
	CreatedAt         time.Time
}

// Normalize validates the record, fills in defaults and computes the hash when it is absent
func (p *SpendPermission) Normalize(now time.Time) error {
	userID, err := NormalizeUserID(p.UserID)
	if err != nil {
		return err
	}
	p.UserID = userID

	if !IsHexAddress(p.TokenAddress) {
		return fmt.Errorf("%w: token must be a hex address", errs.ErrInvalidPermission)
	}
	p.TokenAddress = strings.ToLower(p.TokenAddress)

	if p.AllowanceUnits <= 0 {
		return fmt.Errorf("%w: allowance must be positive", errs.ErrInvalidPermission)
	}
	if p.PeriodSeconds <= 0 {
		return fmt.Errorf("%w: period must be positive", errs.ErrInvalidPermission)
	}
	if p.StartUnix < 0 || p.EndUnix < 0 {
		return fmt.Errorf("%w: start and end must not be negative", errs.ErrInvalidPermission)
	}
	if p.StartUnix == 0 {
		p.StartUnix = now.Unix()
	}
	if p.EndUnix != 0 && p.EndUnix <= p.StartUnix {
		return fmt.Errorf("%w: end must be after start", errs.ErrInvalidPermission)
	}

	canonical, err := CanonicalJSON([]byte(p.PermissionPayload))
	if err != nil {
		return err
	}
	p.PermissionPayload = string(canonical)

	if p.PermissionHash == "" {
		p.PermissionHash = crypto.Keccak256Hash(canonical).Hex()
		return nil
	}

	hash := strings.ToLower(p.PermissionHash)
	if decoded, err := hexutil.Decode(hash); err != nil || len(decoded) != 32 {
		return fmt.Errorf("%w: permission hash must be 32 bytes of 0x hex", errs.ErrInvalidPermission)
	}
	p.PermissionHash = hash
	return nil
}

// IsExpired reports whether the permission window has ended at now
func (p *SpendPermission) IsExpired(now time.Time) bool {
	return p.EndUnix != 0 && now.Unix() >= p.EndUnix
}

// IsStarted reports whether the permission window has begun at now
func (p *SpendPermission) IsStarted(now time.Time) bool {
	return now.Unix() >= p.StartUnix
}

// Covers checks if a pull of amountUnits fits within the allowance
func (p *SpendPermission) Covers(amountUnits int64) bool {
	return amountUnits > 0 && amountUnits <= p.AllowanceUnits
}

// ExpiresAt returns the end of the permission window, or nil when unbounded
func (p *SpendPermission) ExpiresAt() *time.Time {
	if p.EndUnix == 0 {
		return nil
	}
	t := time.Unix(p.EndUnix, 0).UTC()
	return &t
}

// ComputePermissionHash returns the 0x Keccak-256 hash of the canonical JSON of payload
func ComputePermissionHash(payload []byte) (string, error) {
	canonical, err := CanonicalJSON(payload)
	if err != nil {
		return "", err
	}
	return crypto.Keccak256Hash(canonical).Hex(), nil
}

// CanonicalJSON re-encodes payload with sorted object keys and no insignificant whitespace.
// Numbers keep their original literal.
func CanonicalJSON(payload []byte) ([]byte, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, fmt.Errorf("%w: payload is empty", errs.ErrInvalidPermission)
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: payload is not valid JSON: %s", errs.ErrInvalidPermission, err.Error())
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: payload has trailing data", errs.ErrInvalidPermission)
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPermission, err.Error())
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Uint is a non-negative integer that decodes from a JSON number or a decimal or 0x string
type Uint struct {
	*big.Int
}

// UnmarshalJSON implements json.Unmarshaler
func (u *Uint) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	v, ok := new(big.Int).SetString(s, 0)
	if !ok || v.Sign() < 0 {
		return fmt.Errorf("%w: invalid unsigned integer %q", errs.ErrInvalidPermission, s)
	}
	u.Int = v
	return nil
}

// MarshalJSON implements json.Marshaler
func (u Uint) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Big().String())
}

// Big returns the value as a big.Int, treating an unset value as zero
func (u Uint) Big() *big.Int {
	if u.Int == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.Int)
}

// SpendPermissionTerms mirrors the SpendPermission struct the user signed
type SpendPermissionTerms struct {
	Account   string `json:"account"`
	Spender   string `json:"spender"`
	Token     string `json:"token"`
	Allowance Uint   `json:"allowance"`
	Period    Uint   `json:"period"`
	Start     Uint   `json:"start"`
	End       Uint   `json:"end"`
	Salt      Uint   `json:"salt"`
	ExtraData string `json:"extraData"`
}

// SignedSpendPermission is the decoded permission payload: the terms plus the user's signature
type SignedSpendPermission struct {
	Permission SpendPermissionTerms `json:"permission"`
	Signature  string               `json:"signature"`
}

// ParseSignedSpendPermission decodes and validates a stored permission payload
func ParseSignedSpendPermission(payload string) (*SignedSpendPermission, error) {
	var signed SignedSpendPermission
	if err := json.Unmarshal([]byte(payload), &signed); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPermission, err.Error())
	}

	terms := signed.Permission
	addresses := []struct{ name, value string }{
		{"account", terms.Account},
		{"spender", terms.Spender},
		{"token", terms.Token},
	}
	for _, addr := range addresses {
		if !IsHexAddress(addr.value) {
			return nil, fmt.Errorf("%w: %s must be a hex address", errs.ErrInvalidPermission, addr.name)
		}
	}
	if _, err := signed.SignatureBytes(); err != nil {
		return nil, err
	}
	if _, err := signed.ExtraDataBytes(); err != nil {
		return nil, err
	}
	return &signed, nil
}

// SignatureBytes decodes the 0x hex signature
func (s *SignedSpendPermission) SignatureBytes() ([]byte, error) {
	sig, err := hexutil.Decode(s.Signature)
	if err != nil || len(sig) == 0 {
		return nil, fmt.Errorf("%w: signature must be non-empty 0x hex", errs.ErrInvalidPermission)
	}
	return sig, nil
}

// ExtraDataBytes decodes the 0x hex extra data, treating an empty string as no data
func (s *SignedSpendPermission) ExtraDataBytes() ([]byte, error) {
	if s.Permission.ExtraData == "" {
		return []byte{}, nil
	}
	data, err := hexutil.Decode(s.Permission.ExtraData)
	if err != nil {
		return nil, fmt.Errorf("%w: extraData must be 0x hex", errs.ErrInvalidPermission)
	}
	return data, nil
}

// SpendCallKind names a SpendPermissionManager method
type SpendCallKind string

const (
	// SpendCallApprove registers a signed permission on chain
	SpendCallApprove SpendCallKind = "approveWithSignature"
	// SpendCallSpend pulls funds under an approved permission
	SpendCallSpend SpendCallKind = "spend"
)

// SpendCall is one contract call the operator submits to pull funds
type SpendCall struct {
	Kind        SpendCallKind
	Permission  *SignedSpendPermission
	AmountUnits int64
}
