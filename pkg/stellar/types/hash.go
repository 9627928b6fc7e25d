package types

import (
	"crypto/sha256"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// Well-known network passphrases.
const (
	PublicNetworkPassphrase = "Public Global Stellar Network ; September 2015"
	TestNetworkPassphrase   = "Test SDF Network ; September 2015"
	FutureNetworkPassphrase = "Test SDF Future Network ; October 2022"
)

// NetworkID is the SHA-256 of a network passphrase.
func NetworkID(passphrase string) Hash {
	return sha256.Sum256([]byte(passphrase))
}

// SignaturePayload returns the payload signed by the envelope's signers.
// Legacy v0 envelopes are hashed as the equivalent v1 transaction.
func (te *TransactionEnvelope) SignaturePayload(passphrase string) (TransactionSignaturePayload, error) {
	p := TransactionSignaturePayload{NetworkID: NetworkID(passphrase)}
	switch {
	case te.Type == EnvelopeTypeTx && te.V1 != nil:
		tx := te.V1.Tx
		p.TaggedTransaction = TransactionSignaturePayloadTaggedTransaction{Type: EnvelopeTypeTx, Tx: &tx}
	case te.Type == EnvelopeTypeTxV0 && te.V0 != nil:
		tx, err := te.V0.Tx.ToTransaction()
		if err != nil {
			return TransactionSignaturePayload{}, err
		}
		p.TaggedTransaction = TransactionSignaturePayloadTaggedTransaction{Type: EnvelopeTypeTx, Tx: &tx}
	case te.Type == EnvelopeTypeTxFeeBump && te.FeeBump != nil:
		fb := te.FeeBump.Tx
		p.TaggedTransaction = TransactionSignaturePayloadTaggedTransaction{Type: EnvelopeTypeTxFeeBump, FeeBump: &fb}
	default:
		return TransactionSignaturePayload{}, xdr.UnionArmError("TransactionEnvelope", te.Type)
	}
	return p, nil
}

// Hash returns the transaction hash of the envelope on the given network.
func (te *TransactionEnvelope) Hash(passphrase string) (Hash, error) {
	p, err := te.SignaturePayload(passphrase)
	if err != nil {
		return Hash{}, err
	}
	data, err := xdr.Marshal(&p)
	if err != nil {
		return Hash{}, fmt.Errorf("encode signature payload: %w", err)
	}
	return sha256.Sum256(data), nil
}

// ToTransaction converts a legacy transaction to the v1 layout. The result
// shares no memory with tv; it fails if tv cannot be encoded.
func (tv TransactionV0) ToTransaction() (Transaction, error) {
	data, err := xdr.Marshal(&tv)
	if err != nil {
		return Transaction{}, fmt.Errorf("copy v0 transaction: %w", err)
	}
	var owned TransactionV0
	if err := xdr.Unmarshal(data, &owned); err != nil {
		return Transaction{}, fmt.Errorf("copy v0 transaction: %w", err)
	}
	tv = owned

	tx := Transaction{
		SourceAccount: MuxedAccount{Type: CryptoKeyTypeEd25519, Ed25519: &tv.SourceAccountEd25519},
		Fee:           tv.Fee,
		SeqNum:        tv.SeqNum,
		Cond:          Preconditions{Type: PreconditionTypeNone},
		Memo:          tv.Memo,
		Operations:    tv.Operations,
	}
	if tv.TimeBounds != nil {
		tx.Cond = Preconditions{Type: PreconditionTypeTime, TimeBounds: tv.TimeBounds}
	}
	return tx, nil
}

// ContractIDFromPreimage derives the id of a contract created on the given
// network.
func ContractIDFromPreimage(passphrase string, preimage ContractIDPreimage) (ContractID, error) {
	h := HashIDPreimage{
		Type: EnvelopeTypeContractID,
		ContractID: &HashIDPreimageContractID{
			NetworkID:          NetworkID(passphrase),
			ContractIDPreimage: preimage,
		},
	}
	data, err := xdr.Marshal(&h)
	if err != nil {
		return ContractID{}, fmt.Errorf("encode contract id preimage: %w", err)
	}
	return sha256.Sum256(data), nil
}
