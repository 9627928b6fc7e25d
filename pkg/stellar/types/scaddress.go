package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// SCAddressType selects the kind of address a contract sees.
type SCAddressType int32

const (
	SCAddressTypeAccount          SCAddressType = 0
	SCAddressTypeContract         SCAddressType = 1
	SCAddressTypeMuxedAccount     SCAddressType = 2
	SCAddressTypeClaimableBalance SCAddressType = 3
	SCAddressTypeLiquidityPool    SCAddressType = 4
)

var sCAddressTypeNames = map[SCAddressType]string{
	SCAddressTypeAccount:          "SC_ADDRESS_TYPE_ACCOUNT",
	SCAddressTypeContract:         "SC_ADDRESS_TYPE_CONTRACT",
	SCAddressTypeMuxedAccount:     "SC_ADDRESS_TYPE_MUXED_ACCOUNT",
	SCAddressTypeClaimableBalance: "SC_ADDRESS_TYPE_CLAIMABLE_BALANCE",
	SCAddressTypeLiquidityPool:    "SC_ADDRESS_TYPE_LIQUIDITY_POOL",
}

func (v SCAddressType) String() string { return enumString(sCAddressTypeNames, v, "SCAddressType") }

// MarshalText renders the protocol name of v.
func (v SCAddressType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCAddressType) IsKnown() bool {
	_, ok := sCAddressTypeNames[v]
	return ok
}

// MuxedEd25519Account is a multiplexed account as seen by contracts.
type MuxedEd25519Account struct {
	ID      uint64
	Ed25519 Uint256
}

// Encode writes a MuxedEd25519Account in XDR format.
func (mea *MuxedEd25519Account) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint64(buf, mea.ID)
	if err := mea.Ed25519.Encode(buf); err != nil {
		return fmt.Errorf("encode muxed ed25519 account ed25519: %w", err)
	}
	return nil
}

// Decode reads a MuxedEd25519Account from XDR format.
func (mea *MuxedEd25519Account) Decode(c *xdr.Cursor) error {
	var err error
	if mea.ID, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode muxed ed25519 account id: %w", err)
	}
	if err = mea.Ed25519.Decode(c); err != nil {
		return fmt.Errorf("decode muxed ed25519 account ed25519: %w", err)
	}
	return nil
}

// SCAddress identifies an account, contract or other addressable ledger object.
//
//	union SCAddress switch (SCAddressType type) {
//	case SC_ADDRESS_TYPE_ACCOUNT:
//	    AccountID accountId;
//	case SC_ADDRESS_TYPE_CONTRACT:
//	    ContractID contractId;
//	case SC_ADDRESS_TYPE_MUXED_ACCOUNT:
//	    MuxedEd25519Account muxedAccount;
//	case SC_ADDRESS_TYPE_CLAIMABLE_BALANCE:
//	    ClaimableBalanceID claimableBalanceId;
//	case SC_ADDRESS_TYPE_LIQUIDITY_POOL:
//	    PoolID liquidityPoolId;
//	};
type SCAddress struct {
	Type               SCAddressType
	AccountID          *AccountID
	ContractID         *ContractID
	MuxedAccount       *MuxedEd25519Account
	ClaimableBalanceID *ClaimableBalanceID
	LiquidityPoolID    *PoolID
}

// Encode writes an SCAddress in XDR format.
func (sca *SCAddress) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, sca.Type)
	switch sca.Type {
	case SCAddressTypeAccount:
		return xdr.EncodeArm(buf, sca.AccountID, "SCAddress", sca.Type)
	case SCAddressTypeContract:
		return xdr.EncodeArm(buf, sca.ContractID, "SCAddress", sca.Type)
	case SCAddressTypeMuxedAccount:
		return xdr.EncodeArm(buf, sca.MuxedAccount, "SCAddress", sca.Type)
	case SCAddressTypeClaimableBalance:
		return xdr.EncodeArm(buf, sca.ClaimableBalanceID, "SCAddress", sca.Type)
	case SCAddressTypeLiquidityPool:
		return xdr.EncodeArm(buf, sca.LiquidityPoolID, "SCAddress", sca.Type)
	}
	return nil
}

// Decode reads an SCAddress from XDR format.
func (sca *SCAddress) Decode(c *xdr.Cursor) error {
	*sca = SCAddress{}
	var err error
	if sca.Type, err = xdr.DecodeUnionDiscriminant[SCAddressType](c); err != nil {
		return fmt.Errorf("decode sc address type: %w", err)
	}
	switch sca.Type {
	case SCAddressTypeAccount:
		sca.AccountID, err = xdr.DecodeArm[AccountID](c)
	case SCAddressTypeContract:
		sca.ContractID, err = xdr.DecodeArm[ContractID](c)
	case SCAddressTypeMuxedAccount:
		sca.MuxedAccount, err = xdr.DecodeArm[MuxedEd25519Account](c)
	case SCAddressTypeClaimableBalance:
		sca.ClaimableBalanceID, err = xdr.DecodeArm[ClaimableBalanceID](c)
	case SCAddressTypeLiquidityPool:
		sca.LiquidityPoolID, err = xdr.DecodeArm[PoolID](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc address %v: %w", sca.Type, err)
	}
	return nil
}

// NewAccountAddress wraps a copy of an account id.
func NewAccountAddress(id AccountID) SCAddress {
	id = id.Clone()
	return SCAddress{Type: SCAddressTypeAccount, AccountID: &id}
}

// NewContractAddress wraps a contract id.
func NewContractAddress(id ContractID) SCAddress {
	return SCAddress{Type: SCAddressTypeContract, ContractID: &id}
}

// NewMuxedAddress wraps a multiplexed account.
func NewMuxedAddress(id uint64, key [32]byte) SCAddress {
	return SCAddress{Type: SCAddressTypeMuxedAccount, MuxedAccount: &MuxedEd25519Account{ID: id, Ed25519: key}}
}

// NewClaimableBalanceAddress wraps a claimable balance id.
func NewClaimableBalanceAddress(id Hash) SCAddress {
	return SCAddress{
		Type:               SCAddressTypeClaimableBalance,
		ClaimableBalanceID: &ClaimableBalanceID{Type: ClaimableBalanceIDTypeV0, V0: &id},
	}
}

// NewLiquidityPoolAddress wraps a pool id.
func NewLiquidityPoolAddress(id PoolID) SCAddress {
	return SCAddress{Type: SCAddressTypeLiquidityPool, LiquidityPoolID: &id}
}
