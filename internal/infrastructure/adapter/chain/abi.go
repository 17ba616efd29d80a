package chain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const spendPermissionComponents = `[
	{"name": "account", "type": "address"},
	{"name": "spender", "type": "address"},
	{"name": "token", "type": "address"},
	{"name": "allowance", "type": "uint160"},
	{"name": "period", "type": "uint48"},
	{"name": "start", "type": "uint48"},
	{"name": "end", "type": "uint48"},
	{"name": "salt", "type": "uint256"},
	{"name": "extraData", "type": "bytes"}
]`

// spendManagerABI covers the SpendPermissionManager methods the operator calls
var spendManagerABI = mustParseABI(`[
	{
		"name": "approveWithSignature",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "spendPermission", "type": "tuple", "components": ` + spendPermissionComponents + `},
			{"name": "signature", "type": "bytes"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"name": "spend",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "spendPermission", "type": "tuple", "components": ` + spendPermissionComponents + `},
			{"name": "value", "type": "uint160"}
		],
		"outputs": []
	},
	{
		"name": "isApproved",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "spendPermission", "type": "tuple", "components": ` + spendPermissionComponents + `}
		],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic("spend permission manager abi: " + err.Error())
	}
	return parsed
}

// spendPermissionTuple is the ABI shape of SpendPermissionManager.SpendPermission
type spendPermissionTuple struct {
	Account   common.Address
	Spender   common.Address
	Token     common.Address
	Allowance *big.Int
	Period    *big.Int
	Start     *big.Int
	End       *big.Int
	Salt      *big.Int
	ExtraData []byte
}

func toTuple(signed *entity.SignedSpendPermission) (spendPermissionTuple, error) {
	extra, err := signed.ExtraDataBytes()
	if err != nil {
		return spendPermissionTuple{}, err
	}
	terms := signed.Permission
	return spendPermissionTuple{
		Account:   common.HexToAddress(terms.Account),
		Spender:   common.HexToAddress(terms.Spender),
		Token:     common.HexToAddress(terms.Token),
		Allowance: terms.Allowance.Big(),
		Period:    terms.Period.Big(),
		Start:     terms.Start.Big(),
		End:       terms.End.Big(),
		Salt:      terms.Salt.Big(),
		ExtraData: extra,
	}, nil
}

// packCall encodes the calldata of one spend call
func packCall(call entity.SpendCall) ([]byte, error) {
	if call.Permission == nil {
		return nil, fmt.Errorf("spend call %s has no permission", call.Kind)
	}
	tuple, err := toTuple(call.Permission)
	if err != nil {
		return nil, err
	}

	switch call.Kind {
	case entity.SpendCallApprove:
		signature, err := call.Permission.SignatureBytes()
		if err != nil {
			return nil, err
		}
		return spendManagerABI.Pack(string(entity.SpendCallApprove), tuple, signature)
	case entity.SpendCallSpend:
		if call.AmountUnits <= 0 {
			return nil, fmt.Errorf("spend amount must be positive, got %d", call.AmountUnits)
		}
		return spendManagerABI.Pack(string(entity.SpendCallSpend), tuple, big.NewInt(call.AmountUnits))
	default:
		return nil, fmt.Errorf("unknown spend call %q", call.Kind)
	}
}
