package exchange

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Credentials are the L2 API key triple issued by the CLOB
type Credentials struct {
	APIKey     string
	Secret     string
	Passphrase string
}

// l2Headers signs timestamp+METHOD+path+body with the API secret
func (c *ClobClient) l2Headers(method, path, body string) (map[string]string, error) {
	ts := strconv.FormatInt(c.timeProvider.Now().Unix(), 10)

	secret, err := base64.URLEncoding.DecodeString(c.creds.Secret)
	if err != nil {
		return nil, errors.Wrap(err, "decode api secret")
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(ts + strings.ToUpper(method) + path + body))

	return map[string]string{
		"POLY_ADDRESS":    c.signer.Hex(),
		"POLY_SIGNATURE":  base64.URLEncoding.EncodeToString(mac.Sum(nil)),
		"POLY_TIMESTAMP":  ts,
		"POLY_API_KEY":    c.creds.APIKey,
		"POLY_PASSPHRASE": c.creds.Passphrase,
	}, nil
}
