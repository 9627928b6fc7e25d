package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// AccountFlags are the bits of AccountEntry.Flags.
type AccountFlags int32

const (
	AccountFlagsAuthRequired        AccountFlags = 0x1
	AccountFlagsAuthRevocable       AccountFlags = 0x2
	AccountFlagsAuthImmutable       AccountFlags = 0x4
	AccountFlagsAuthClawbackEnabled AccountFlags = 0x8
)

var accountFlagsNames = map[AccountFlags]string{
	AccountFlagsAuthRequired:        "AUTH_REQUIRED_FLAG",
	AccountFlagsAuthRevocable:       "AUTH_REVOCABLE_FLAG",
	AccountFlagsAuthImmutable:       "AUTH_IMMUTABLE_FLAG",
	AccountFlagsAuthClawbackEnabled: "AUTH_CLAWBACK_ENABLED_FLAG",
}

func (v AccountFlags) String() string { return enumString(accountFlagsNames, v, "AccountFlags") }

// MarshalText renders the protocol name of v.
func (v AccountFlags) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v AccountFlags) IsKnown() bool {
	_, ok := accountFlagsNames[v]
	return ok
}

const (
	// MaskAccountFlags covers the flags defined before protocol 17.
	MaskAccountFlags = 0x7
	// MaskAccountFlagsV17 covers every account flag.
	MaskAccountFlagsV17 = 0xF
	// MaxSigners is the largest number of signers on an account.
	MaxSigners = 20
)

// Signer is an additional account signer.
type Signer struct {
	Key    SignerKey
	Weight uint32
}

// Encode writes a Signer in XDR format.
func (s *Signer) Encode(buf *bytes.Buffer) error {
	if err := s.Key.Encode(buf); err != nil {
		return fmt.Errorf("encode signer key: %w", err)
	}
	xdr.WriteUint32(buf, s.Weight)
	return nil
}

// Decode reads a Signer from XDR format.
func (s *Signer) Decode(c *xdr.Cursor) error {
	var err error
	if err = s.Key.Decode(c); err != nil {
		return fmt.Errorf("decode signer key: %w", err)
	}
	if s.Weight, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode signer weight: %w", err)
	}
	return nil
}

// SponsorshipDescriptor names the sponsoring account, if any.
//
//	typedef AccountID* SponsorshipDescriptor;
type SponsorshipDescriptor struct {
	Sponsor *AccountID
}

// Encode writes a SponsorshipDescriptor in XDR format.
func (sd *SponsorshipDescriptor) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeOptional(buf, sd.Sponsor); err != nil {
		return fmt.Errorf("encode sponsorship descriptor sponsor: %w", err)
	}
	return nil
}

// Decode reads a SponsorshipDescriptor from XDR format.
func (sd *SponsorshipDescriptor) Decode(c *xdr.Cursor) error {
	var err error
	if sd.Sponsor, err = xdr.DecodeOptional[AccountID](c); err != nil {
		return fmt.Errorf("decode sponsorship descriptor sponsor: %w", err)
	}
	return nil
}

// AccountEntryExtensionV3 records when the account's sequence number last changed.
type AccountEntryExtensionV3 struct {
	Ext       ExtensionPoint
	SeqLedger uint32
	SeqTime   TimePoint
}

// Encode writes an AccountEntryExtensionV3 in XDR format.
func (aee *AccountEntryExtensionV3) Encode(buf *bytes.Buffer) error {
	if err := aee.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry extension v3 ext: %w", err)
	}
	xdr.WriteUint32(buf, aee.SeqLedger)
	xdr.WriteUint64(buf, aee.SeqTime)
	return nil
}

// Decode reads an AccountEntryExtensionV3 from XDR format.
func (aee *AccountEntryExtensionV3) Decode(c *xdr.Cursor) error {
	var err error
	if err = aee.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode account entry extension v3 ext: %w", err)
	}
	if aee.SeqLedger, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode account entry extension v3 seq ledger: %w", err)
	}
	if aee.SeqTime, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode account entry extension v3 seq time: %w", err)
	}
	return nil
}

// AccountEntryExtensionV2Ext is the extension of AccountEntryExtensionV2.
type AccountEntryExtensionV2Ext struct {
	V  int32
	V3 *AccountEntryExtensionV3
}

// Encode writes an AccountEntryExtensionV2Ext in XDR format.
func (aee *AccountEntryExtensionV2Ext) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, aee.V)
	switch aee.V {
	case 3:
		return xdr.EncodeArm(buf, aee.V3, "AccountEntryExtensionV2Ext", aee.V)
	}
	return nil
}

// Decode reads an AccountEntryExtensionV2Ext from XDR format.
func (aee *AccountEntryExtensionV2Ext) Decode(c *xdr.Cursor) error {
	*aee = AccountEntryExtensionV2Ext{}
	var err error
	if aee.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode account entry extension v2 ext v: %w", err)
	}
	switch aee.V {
	case 3:
		aee.V3, err = xdr.DecodeArm[AccountEntryExtensionV3](c)
	}
	if err != nil {
		return fmt.Errorf("decode account entry extension v2 ext %v: %w", aee.V, err)
	}
	return nil
}

// AccountEntryExtensionV2 tracks sponsorship counts and per-signer sponsors.
type AccountEntryExtensionV2 struct {
	NumSponsored        uint32
	NumSponsoring       uint32
	SignerSponsoringIDs []SponsorshipDescriptor
	Ext                 AccountEntryExtensionV2Ext
}

// Encode writes an AccountEntryExtensionV2 in XDR format.
func (aee *AccountEntryExtensionV2) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, aee.NumSponsored)
	xdr.WriteUint32(buf, aee.NumSponsoring)
	if err := xdr.EncodeArray(buf, aee.SignerSponsoringIDs); err != nil {
		return fmt.Errorf("encode account entry extension v2 signer sponsoring ids: %w", err)
	}
	if err := aee.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry extension v2 ext: %w", err)
	}
	return nil
}

// Decode reads an AccountEntryExtensionV2 from XDR format.
func (aee *AccountEntryExtensionV2) Decode(c *xdr.Cursor) error {
	var err error
	if aee.NumSponsored, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode account entry extension v2 num sponsored: %w", err)
	}
	if aee.NumSponsoring, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode account entry extension v2 num sponsoring: %w", err)
	}
	if aee.SignerSponsoringIDs, err = xdr.DecodeArray[SponsorshipDescriptor](c); err != nil {
		return fmt.Errorf("decode account entry extension v2 signer sponsoring ids: %w", err)
	}
	if err = aee.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode account entry extension v2 ext: %w", err)
	}
	return nil
}

// AccountEntryExtensionV1Ext is the versioned extension of AccountEntryExtensionV1.
type AccountEntryExtensionV1Ext struct {
	V  int32
	V2 *AccountEntryExtensionV2
}

// Encode writes an AccountEntryExtensionV1Ext in XDR format.
func (aee *AccountEntryExtensionV1Ext) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, aee.V)
	switch aee.V {
	case 2:
		return xdr.EncodeArm(buf, aee.V2, "AccountEntryExtensionV1Ext", aee.V)
	}
	return nil
}

// Decode reads an AccountEntryExtensionV1Ext from XDR format.
func (aee *AccountEntryExtensionV1Ext) Decode(c *xdr.Cursor) error {
	*aee = AccountEntryExtensionV1Ext{}
	var err error
	if aee.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode account entry extension v1 ext v: %w", err)
	}
	switch aee.V {
	case 2:
		aee.V2, err = xdr.DecodeArm[AccountEntryExtensionV2](c)
	}
	if err != nil {
		return fmt.Errorf("decode account entry extension v1 ext %v: %w", aee.V, err)
	}
	return nil
}

// AccountEntryExtensionV1 adds buying and selling liabilities to an account.
type AccountEntryExtensionV1 struct {
	Liabilities Liabilities
	Ext         AccountEntryExtensionV1Ext
}

// Encode writes an AccountEntryExtensionV1 in XDR format.
func (aee *AccountEntryExtensionV1) Encode(buf *bytes.Buffer) error {
	if err := aee.Liabilities.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry extension v1 liabilities: %w", err)
	}
	if err := aee.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry extension v1 ext: %w", err)
	}
	return nil
}

// Decode reads an AccountEntryExtensionV1 from XDR format.
func (aee *AccountEntryExtensionV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = aee.Liabilities.Decode(c); err != nil {
		return fmt.Errorf("decode account entry extension v1 liabilities: %w", err)
	}
	if err = aee.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode account entry extension v1 ext: %w", err)
	}
	return nil
}

// AccountEntryExt is the versioned extension of AccountEntry.
type AccountEntryExt struct {
	V  int32
	V1 *AccountEntryExtensionV1
}

// Encode writes an AccountEntryExt in XDR format.
func (aee *AccountEntryExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, aee.V)
	switch aee.V {
	case 1:
		return xdr.EncodeArm(buf, aee.V1, "AccountEntryExt", aee.V)
	}
	return nil
}

// Decode reads an AccountEntryExt from XDR format.
func (aee *AccountEntryExt) Decode(c *xdr.Cursor) error {
	*aee = AccountEntryExt{}
	var err error
	if aee.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode account entry ext v: %w", err)
	}
	switch aee.V {
	case 1:
		aee.V1, err = xdr.DecodeArm[AccountEntryExtensionV1](c)
	}
	if err != nil {
		return fmt.Errorf("decode account entry ext %v: %w", aee.V, err)
	}
	return nil
}

// AccountEntry is the ledger state of an account.
type AccountEntry struct {
	AccountID     AccountID
	Balance       int64
	SeqNum        SequenceNumber
	NumSubEntries uint32
	InflationDest *AccountID
	Flags         uint32
	HomeDomain    String32
	Thresholds    Thresholds
	Signers       []Signer
	Ext           AccountEntryExt
}

// Encode writes an AccountEntry in XDR format.
func (ae *AccountEntry) Encode(buf *bytes.Buffer) error {
	if err := ae.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry account id: %w", err)
	}
	xdr.WriteInt64(buf, ae.Balance)
	xdr.WriteInt64(buf, ae.SeqNum)
	xdr.WriteUint32(buf, ae.NumSubEntries)
	if err := xdr.EncodeOptional(buf, ae.InflationDest); err != nil {
		return fmt.Errorf("encode account entry inflation dest: %w", err)
	}
	xdr.WriteUint32(buf, ae.Flags)
	if err := ae.HomeDomain.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry home domain: %w", err)
	}
	if err := ae.Thresholds.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry thresholds: %w", err)
	}
	if err := xdr.EncodeArray(buf, ae.Signers); err != nil {
		return fmt.Errorf("encode account entry signers: %w", err)
	}
	if err := ae.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode account entry ext: %w", err)
	}
	return nil
}

// Decode reads an AccountEntry from XDR format.
func (ae *AccountEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = ae.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode account entry account id: %w", err)
	}
	if ae.Balance, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode account entry balance: %w", err)
	}
	if ae.SeqNum, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode account entry seq num: %w", err)
	}
	if ae.NumSubEntries, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode account entry num sub entries: %w", err)
	}
	if ae.InflationDest, err = xdr.DecodeOptional[AccountID](c); err != nil {
		return fmt.Errorf("decode account entry inflation dest: %w", err)
	}
	if ae.Flags, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode account entry flags: %w", err)
	}
	if err = ae.HomeDomain.Decode(c); err != nil {
		return fmt.Errorf("decode account entry home domain: %w", err)
	}
	if err = ae.Thresholds.Decode(c); err != nil {
		return fmt.Errorf("decode account entry thresholds: %w", err)
	}
	if ae.Signers, err = xdr.DecodeArray[Signer](c); err != nil {
		return fmt.Errorf("decode account entry signers: %w", err)
	}
	if err = ae.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode account entry ext: %w", err)
	}
	return nil
}
