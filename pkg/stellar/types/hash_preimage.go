package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// HashIDPreimageOperationID identifies an operation for claimable balance ids.
type HashIDPreimageOperationID struct {
	SourceAccount AccountID
	SeqNum        SequenceNumber
	OpNum         uint32
}

// Encode writes a HashIDPreimageOperationID in XDR format.
func (hid *HashIDPreimageOperationID) Encode(buf *bytes.Buffer) error {
	if err := hid.SourceAccount.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage operation id source account: %w", err)
	}
	xdr.WriteInt64(buf, hid.SeqNum)
	xdr.WriteUint32(buf, hid.OpNum)
	return nil
}

// Decode reads a HashIDPreimageOperationID from XDR format.
func (hid *HashIDPreimageOperationID) Decode(c *xdr.Cursor) error {
	var err error
	if err = hid.SourceAccount.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage operation id source account: %w", err)
	}
	if hid.SeqNum, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode hash id preimage operation id seq num: %w", err)
	}
	if hid.OpNum, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode hash id preimage operation id op num: %w", err)
	}
	return nil
}

// HashIDPreimageRevokeID identifies a pool share trust line revocation.
type HashIDPreimageRevokeID struct {
	SourceAccount   AccountID
	SeqNum          SequenceNumber
	OpNum           uint32
	LiquidityPoolID PoolID
	Asset           Asset
}

// Encode writes a HashIDPreimageRevokeID in XDR format.
func (hid *HashIDPreimageRevokeID) Encode(buf *bytes.Buffer) error {
	if err := hid.SourceAccount.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage revoke id source account: %w", err)
	}
	xdr.WriteInt64(buf, hid.SeqNum)
	xdr.WriteUint32(buf, hid.OpNum)
	if err := hid.LiquidityPoolID.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage revoke id liquidity pool id: %w", err)
	}
	if err := hid.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage revoke id asset: %w", err)
	}
	return nil
}

// Decode reads a HashIDPreimageRevokeID from XDR format.
func (hid *HashIDPreimageRevokeID) Decode(c *xdr.Cursor) error {
	var err error
	if err = hid.SourceAccount.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage revoke id source account: %w", err)
	}
	if hid.SeqNum, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode hash id preimage revoke id seq num: %w", err)
	}
	if hid.OpNum, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode hash id preimage revoke id op num: %w", err)
	}
	if err = hid.LiquidityPoolID.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage revoke id liquidity pool id: %w", err)
	}
	if err = hid.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage revoke id asset: %w", err)
	}
	return nil
}

// HashIDPreimageContractID derives a contract id on a network.
type HashIDPreimageContractID struct {
	NetworkID          Hash
	ContractIDPreimage ContractIDPreimage
}

// Encode writes a HashIDPreimageContractID in XDR format.
func (hid *HashIDPreimageContractID) Encode(buf *bytes.Buffer) error {
	if err := hid.NetworkID.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage contract id network id: %w", err)
	}
	if err := hid.ContractIDPreimage.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage contract id contract id preimage: %w", err)
	}
	return nil
}

// Decode reads a HashIDPreimageContractID from XDR format.
func (hid *HashIDPreimageContractID) Decode(c *xdr.Cursor) error {
	var err error
	if err = hid.NetworkID.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage contract id network id: %w", err)
	}
	if err = hid.ContractIDPreimage.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage contract id contract id preimage: %w", err)
	}
	return nil
}

// HashIDPreimageSorobanAuthorization is the payload signed by address
// credentials.
type HashIDPreimageSorobanAuthorization struct {
	NetworkID                 Hash
	Nonce                     int64
	SignatureExpirationLedger uint32
	Invocation                SorobanAuthorizedInvocation
}

// Encode writes a HashIDPreimageSorobanAuthorization in XDR format.
func (hid *HashIDPreimageSorobanAuthorization) Encode(buf *bytes.Buffer) error {
	if err := hid.NetworkID.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage soroban authorization network id: %w", err)
	}
	xdr.WriteInt64(buf, hid.Nonce)
	xdr.WriteUint32(buf, hid.SignatureExpirationLedger)
	if err := hid.Invocation.Encode(buf); err != nil {
		return fmt.Errorf("encode hash id preimage soroban authorization invocation: %w", err)
	}
	return nil
}

// Decode reads a HashIDPreimageSorobanAuthorization from XDR format.
func (hid *HashIDPreimageSorobanAuthorization) Decode(c *xdr.Cursor) error {
	var err error
	if err = hid.NetworkID.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage soroban authorization network id: %w", err)
	}
	if hid.Nonce, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode hash id preimage soroban authorization nonce: %w", err)
	}
	if hid.SignatureExpirationLedger, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode hash id preimage soroban authorization signature expiration ledger: %w", err)
	}
	if err = hid.Invocation.Decode(c); err != nil {
		return fmt.Errorf("decode hash id preimage soroban authorization invocation: %w", err)
	}
	return nil
}

// HashIDPreimage is hashed to derive ids of balances, pools, contracts and auth payloads.
type HashIDPreimage struct {
	Type                 EnvelopeType
	OperationID          *HashIDPreimageOperationID
	RevokeID             *HashIDPreimageRevokeID
	ContractID           *HashIDPreimageContractID
	SorobanAuthorization *HashIDPreimageSorobanAuthorization
}

// Encode writes a HashIDPreimage in XDR format.
func (hid *HashIDPreimage) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, hid.Type)
	switch hid.Type {
	case EnvelopeTypeOpID:
		return xdr.EncodeArm(buf, hid.OperationID, "HashIDPreimage", hid.Type)
	case EnvelopeTypePoolRevokeOpID:
		return xdr.EncodeArm(buf, hid.RevokeID, "HashIDPreimage", hid.Type)
	case EnvelopeTypeContractID:
		return xdr.EncodeArm(buf, hid.ContractID, "HashIDPreimage", hid.Type)
	case EnvelopeTypeSorobanAuthorization:
		return xdr.EncodeArm(buf, hid.SorobanAuthorization, "HashIDPreimage", hid.Type)
	}
	return nil
}

// Decode reads a HashIDPreimage from XDR format.
func (hid *HashIDPreimage) Decode(c *xdr.Cursor) error {
	*hid = HashIDPreimage{}
	var err error
	if hid.Type, err = xdr.DecodeUnionDiscriminant[EnvelopeType](c); err != nil {
		return fmt.Errorf("decode hash id preimage type: %w", err)
	}
	switch hid.Type {
	case EnvelopeTypeOpID:
		hid.OperationID, err = xdr.DecodeArm[HashIDPreimageOperationID](c)
	case EnvelopeTypePoolRevokeOpID:
		hid.RevokeID, err = xdr.DecodeArm[HashIDPreimageRevokeID](c)
	case EnvelopeTypeContractID:
		hid.ContractID, err = xdr.DecodeArm[HashIDPreimageContractID](c)
	case EnvelopeTypeSorobanAuthorization:
		hid.SorobanAuthorization, err = xdr.DecodeArm[HashIDPreimageSorobanAuthorization](c)
	}
	if err != nil {
		return fmt.Errorf("decode hash id preimage %v: %w", hid.Type, err)
	}
	return nil
}
