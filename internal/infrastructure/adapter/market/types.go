package market

import "encoding/json"

// gammaMarket is a market as returned by GET /markets.
// Gamma encodes the token and outcome lists as JSON strings.
type gammaMarket struct {
	ConditionID  string      `json:"conditionId"`
	Question     string      `json:"question"`
	Slug         string      `json:"slug"`
	EndDateISO   string      `json:"endDateIso"`
	ClobTokenIDs string      `json:"clobTokenIds"`
	Outcomes     string      `json:"outcomes"`
	NegRisk      bool        `json:"negRisk"`
	TickSize     json.Number `json:"orderPriceMinTickSize"`
	Active       bool        `json:"active"`
	Closed       bool        `json:"closed"`
}

type gammaMarketsResponse []gammaMarket
