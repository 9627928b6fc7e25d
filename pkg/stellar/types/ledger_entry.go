package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// LedgerEntryType selects the kind of ledger entry.
type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTTL              LedgerEntryType = 9
)

var ledgerEntryTypeNames = map[LedgerEntryType]string{
	LedgerEntryTypeAccount:          "ACCOUNT",
	LedgerEntryTypeTrustline:        "TRUSTLINE",
	LedgerEntryTypeOffer:            "OFFER",
	LedgerEntryTypeData:             "DATA",
	LedgerEntryTypeClaimableBalance: "CLAIMABLE_BALANCE",
	LedgerEntryTypeLiquidityPool:    "LIQUIDITY_POOL",
	LedgerEntryTypeContractData:     "CONTRACT_DATA",
	LedgerEntryTypeContractCode:     "CONTRACT_CODE",
	LedgerEntryTypeConfigSetting:    "CONFIG_SETTING",
	LedgerEntryTypeTTL:              "TTL",
}

func (v LedgerEntryType) String() string { return enumString(ledgerEntryTypeNames, v, "LedgerEntryType") }

// MarshalText renders the protocol name of v.
func (v LedgerEntryType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v LedgerEntryType) IsKnown() bool {
	_, ok := ledgerEntryTypeNames[v]
	return ok
}

// EnvelopeType tags signed payloads and hash preimages.
type EnvelopeType int32

const (
	EnvelopeTypeTxV0                 EnvelopeType = 0
	EnvelopeTypeSCP                  EnvelopeType = 1
	EnvelopeTypeTx                   EnvelopeType = 2
	EnvelopeTypeAuth                 EnvelopeType = 3
	EnvelopeTypeScpvalue             EnvelopeType = 4
	EnvelopeTypeTxFeeBump            EnvelopeType = 5
	EnvelopeTypeOpID                 EnvelopeType = 6
	EnvelopeTypePoolRevokeOpID       EnvelopeType = 7
	EnvelopeTypeContractID           EnvelopeType = 8
	EnvelopeTypeSorobanAuthorization EnvelopeType = 9
)

var envelopeTypeNames = map[EnvelopeType]string{
	EnvelopeTypeTxV0:                 "ENVELOPE_TYPE_TX_V0",
	EnvelopeTypeSCP:                  "ENVELOPE_TYPE_SCP",
	EnvelopeTypeTx:                   "ENVELOPE_TYPE_TX",
	EnvelopeTypeAuth:                 "ENVELOPE_TYPE_AUTH",
	EnvelopeTypeScpvalue:             "ENVELOPE_TYPE_SCPVALUE",
	EnvelopeTypeTxFeeBump:            "ENVELOPE_TYPE_TX_FEE_BUMP",
	EnvelopeTypeOpID:                 "ENVELOPE_TYPE_OP_ID",
	EnvelopeTypePoolRevokeOpID:       "ENVELOPE_TYPE_POOL_REVOKE_OP_ID",
	EnvelopeTypeContractID:           "ENVELOPE_TYPE_CONTRACT_ID",
	EnvelopeTypeSorobanAuthorization: "ENVELOPE_TYPE_SOROBAN_AUTHORIZATION",
}

func (v EnvelopeType) String() string { return enumString(envelopeTypeNames, v, "EnvelopeType") }

// MarshalText renders the protocol name of v.
func (v EnvelopeType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v EnvelopeType) IsKnown() bool {
	_, ok := envelopeTypeNames[v]
	return ok
}

// LedgerEntryData is the body of a ledger entry.
type LedgerEntryData struct {
	Type             LedgerEntryType
	Account          *AccountEntry
	TrustLine        *TrustLineEntry
	Offer            *OfferEntry
	Data             *DataEntry
	ClaimableBalance *ClaimableBalanceEntry
	LiquidityPool    *LiquidityPoolEntry
	ContractData     *ContractDataEntry
	ContractCode     *ContractCodeEntry
	ConfigSetting    *ConfigSettingEntry
	TTL              *TTLEntry
}

// Encode writes a LedgerEntryData in XDR format.
func (led *LedgerEntryData) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, led.Type)
	switch led.Type {
	case LedgerEntryTypeAccount:
		return xdr.EncodeArm(buf, led.Account, "LedgerEntryData", led.Type)
	case LedgerEntryTypeTrustline:
		return xdr.EncodeArm(buf, led.TrustLine, "LedgerEntryData", led.Type)
	case LedgerEntryTypeOffer:
		return xdr.EncodeArm(buf, led.Offer, "LedgerEntryData", led.Type)
	case LedgerEntryTypeData:
		return xdr.EncodeArm(buf, led.Data, "LedgerEntryData", led.Type)
	case LedgerEntryTypeClaimableBalance:
		return xdr.EncodeArm(buf, led.ClaimableBalance, "LedgerEntryData", led.Type)
	case LedgerEntryTypeLiquidityPool:
		return xdr.EncodeArm(buf, led.LiquidityPool, "LedgerEntryData", led.Type)
	case LedgerEntryTypeContractData:
		return xdr.EncodeArm(buf, led.ContractData, "LedgerEntryData", led.Type)
	case LedgerEntryTypeContractCode:
		return xdr.EncodeArm(buf, led.ContractCode, "LedgerEntryData", led.Type)
	case LedgerEntryTypeConfigSetting:
		return xdr.EncodeArm(buf, led.ConfigSetting, "LedgerEntryData", led.Type)
	case LedgerEntryTypeTTL:
		return xdr.EncodeArm(buf, led.TTL, "LedgerEntryData", led.Type)
	}
	return nil
}

// Decode reads a LedgerEntryData from XDR format.
func (led *LedgerEntryData) Decode(c *xdr.Cursor) error {
	*led = LedgerEntryData{}
	var err error
	if led.Type, err = xdr.DecodeUnionDiscriminant[LedgerEntryType](c); err != nil {
		return fmt.Errorf("decode ledger entry data type: %w", err)
	}
	switch led.Type {
	case LedgerEntryTypeAccount:
		led.Account, err = xdr.DecodeArm[AccountEntry](c)
	case LedgerEntryTypeTrustline:
		led.TrustLine, err = xdr.DecodeArm[TrustLineEntry](c)
	case LedgerEntryTypeOffer:
		led.Offer, err = xdr.DecodeArm[OfferEntry](c)
	case LedgerEntryTypeData:
		led.Data, err = xdr.DecodeArm[DataEntry](c)
	case LedgerEntryTypeClaimableBalance:
		led.ClaimableBalance, err = xdr.DecodeArm[ClaimableBalanceEntry](c)
	case LedgerEntryTypeLiquidityPool:
		led.LiquidityPool, err = xdr.DecodeArm[LiquidityPoolEntry](c)
	case LedgerEntryTypeContractData:
		led.ContractData, err = xdr.DecodeArm[ContractDataEntry](c)
	case LedgerEntryTypeContractCode:
		led.ContractCode, err = xdr.DecodeArm[ContractCodeEntry](c)
	case LedgerEntryTypeConfigSetting:
		led.ConfigSetting, err = xdr.DecodeArm[ConfigSettingEntry](c)
	case LedgerEntryTypeTTL:
		led.TTL, err = xdr.DecodeArm[TTLEntry](c)
	}
	if err != nil {
		return fmt.Errorf("decode ledger entry data %v: %w", led.Type, err)
	}
	return nil
}

// LedgerEntryExtensionV1 records the account sponsoring the entry.
type LedgerEntryExtensionV1 struct {
	SponsoringID SponsorshipDescriptor
	Ext          ExtensionPoint
}

// Encode writes a LedgerEntryExtensionV1 in XDR format.
func (lee *LedgerEntryExtensionV1) Encode(buf *bytes.Buffer) error {
	if err := lee.SponsoringID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger entry extension v1 sponsoring id: %w", err)
	}
	if err := lee.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger entry extension v1 ext: %w", err)
	}
	return nil
}

// Decode reads a LedgerEntryExtensionV1 from XDR format.
func (lee *LedgerEntryExtensionV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = lee.SponsoringID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger entry extension v1 sponsoring id: %w", err)
	}
	if err = lee.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode ledger entry extension v1 ext: %w", err)
	}
	return nil
}

// LedgerEntryExt is the versioned extension of LedgerEntry.
type LedgerEntryExt struct {
	V  int32
	V1 *LedgerEntryExtensionV1
}

// Encode writes a LedgerEntryExt in XDR format.
func (lee *LedgerEntryExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lee.V)
	switch lee.V {
	case 1:
		return xdr.EncodeArm(buf, lee.V1, "LedgerEntryExt", lee.V)
	}
	return nil
}

// Decode reads a LedgerEntryExt from XDR format.
func (lee *LedgerEntryExt) Decode(c *xdr.Cursor) error {
	*lee = LedgerEntryExt{}
	var err error
	if lee.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode ledger entry ext v: %w", err)
	}
	switch lee.V {
	case 1:
		lee.V1, err = xdr.DecodeArm[LedgerEntryExtensionV1](c)
	}
	if err != nil {
		return fmt.Errorf("decode ledger entry ext %v: %w", lee.V, err)
	}
	return nil
}

// LedgerEntry is a unit of ledger state.
//
//	struct LedgerEntry {
//	    uint32 lastModifiedLedgerSeq;
//	    union switch (LedgerEntryType type) { ... } data;
//	    union switch (int v) {
//	    case 0:
//	        void;
//	    case 1:
//	        LedgerEntryExtensionV1 v1;
//	    } ext;
//	};
type LedgerEntry struct {
	LastModifiedLedgerSeq uint32
	Data                  LedgerEntryData
	Ext                   LedgerEntryExt
}

// Encode writes a LedgerEntry in XDR format.
func (le *LedgerEntry) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, le.LastModifiedLedgerSeq)
	if err := le.Data.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger entry data: %w", err)
	}
	if err := le.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger entry ext: %w", err)
	}
	return nil
}

// Decode reads a LedgerEntry from XDR format.
func (le *LedgerEntry) Decode(c *xdr.Cursor) error {
	var err error
	if le.LastModifiedLedgerSeq, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode ledger entry last modified ledger seq: %w", err)
	}
	if err = le.Data.Decode(c); err != nil {
		return fmt.Errorf("decode ledger entry data: %w", err)
	}
	if err = le.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode ledger entry ext: %w", err)
	}
	return nil
}

// Sponsor returns the sponsoring account recorded in the entry extension.
func (le LedgerEntry) Sponsor() (AccountID, bool) {
	if le.Ext.V1 == nil || le.Ext.V1.SponsoringID.Sponsor == nil {
		return AccountID{}, false
	}
	return *le.Ext.V1.SponsoringID.Sponsor, true
}

// ============================================================================
// Ledger keys
// ============================================================================

// LedgerKeyAccount identifies an account ledger entry.
type LedgerKeyAccount struct {
	AccountID AccountID
}

// Encode writes a LedgerKeyAccount in XDR format.
func (lka *LedgerKeyAccount) Encode(buf *bytes.Buffer) error {
	if err := lka.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key account account id: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyAccount from XDR format.
func (lka *LedgerKeyAccount) Decode(c *xdr.Cursor) error {
	var err error
	if err = lka.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key account account id: %w", err)
	}
	return nil
}

// LedgerKeyTrustLine identifies a trust line ledger entry.
type LedgerKeyTrustLine struct {
	AccountID AccountID
	Asset     TrustLineAsset
}

// Encode writes a LedgerKeyTrustLine in XDR format.
func (lkt *LedgerKeyTrustLine) Encode(buf *bytes.Buffer) error {
	if err := lkt.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key trust line account id: %w", err)
	}
	if err := lkt.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key trust line asset: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyTrustLine from XDR format.
func (lkt *LedgerKeyTrustLine) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkt.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key trust line account id: %w", err)
	}
	if err = lkt.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key trust line asset: %w", err)
	}
	return nil
}

// LedgerKeyOffer identifies an offer ledger entry.
type LedgerKeyOffer struct {
	SellerID AccountID
	OfferID  int64
}

// Encode writes a LedgerKeyOffer in XDR format.
func (lko *LedgerKeyOffer) Encode(buf *bytes.Buffer) error {
	if err := lko.SellerID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key offer seller id: %w", err)
	}
	xdr.WriteInt64(buf, lko.OfferID)
	return nil
}

// Decode reads a LedgerKeyOffer from XDR format.
func (lko *LedgerKeyOffer) Decode(c *xdr.Cursor) error {
	var err error
	if err = lko.SellerID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key offer seller id: %w", err)
	}
	if lko.OfferID, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode ledger key offer offer id: %w", err)
	}
	return nil
}

// LedgerKeyData identifies a data ledger entry.
type LedgerKeyData struct {
	AccountID AccountID
	DataName  String64
}

// Encode writes a LedgerKeyData in XDR format.
func (lkd *LedgerKeyData) Encode(buf *bytes.Buffer) error {
	if err := lkd.AccountID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key data account id: %w", err)
	}
	if err := lkd.DataName.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key data data name: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyData from XDR format.
func (lkd *LedgerKeyData) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkd.AccountID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key data account id: %w", err)
	}
	if err = lkd.DataName.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key data data name: %w", err)
	}
	return nil
}

// LedgerKeyClaimableBalance identifies a claimable balance ledger entry.
type LedgerKeyClaimableBalance struct {
	BalanceID ClaimableBalanceID
}

// Encode writes a LedgerKeyClaimableBalance in XDR format.
func (lkc *LedgerKeyClaimableBalance) Encode(buf *bytes.Buffer) error {
	if err := lkc.BalanceID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key claimable balance balance id: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyClaimableBalance from XDR format.
func (lkc *LedgerKeyClaimableBalance) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkc.BalanceID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key claimable balance balance id: %w", err)
	}
	return nil
}

// LedgerKeyLiquidityPool identifies a liquidity pool ledger entry.
type LedgerKeyLiquidityPool struct {
	LiquidityPoolID PoolID
}

// Encode writes a LedgerKeyLiquidityPool in XDR format.
func (lkl *LedgerKeyLiquidityPool) Encode(buf *bytes.Buffer) error {
	if err := lkl.LiquidityPoolID.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key liquidity pool liquidity pool id: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyLiquidityPool from XDR format.
func (lkl *LedgerKeyLiquidityPool) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkl.LiquidityPoolID.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key liquidity pool liquidity pool id: %w", err)
	}
	return nil
}

// LedgerKeyContractData identifies a contract data ledger entry.
type LedgerKeyContractData struct {
	Contract   SCAddress
	Key        SCVal
	Durability ContractDataDurability
}

// Encode writes a LedgerKeyContractData in XDR format.
func (lkc *LedgerKeyContractData) Encode(buf *bytes.Buffer) error {
	if err := lkc.Contract.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key contract data contract: %w", err)
	}
	if err := lkc.Key.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key contract data key: %w", err)
	}
	xdr.WriteEnum(buf, lkc.Durability)
	return nil
}

// Decode reads a LedgerKeyContractData from XDR format.
func (lkc *LedgerKeyContractData) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkc.Contract.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key contract data contract: %w", err)
	}
	if err = lkc.Key.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key contract data key: %w", err)
	}
	if lkc.Durability, err = xdr.DecodeEnum[ContractDataDurability](c); err != nil {
		return fmt.Errorf("decode ledger key contract data durability: %w", err)
	}
	return nil
}

// LedgerKeyContractCode identifies a contract code ledger entry.
type LedgerKeyContractCode struct {
	Hash Hash
}

// Encode writes a LedgerKeyContractCode in XDR format.
func (lkc *LedgerKeyContractCode) Encode(buf *bytes.Buffer) error {
	if err := lkc.Hash.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key contract code hash: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyContractCode from XDR format.
func (lkc *LedgerKeyContractCode) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkc.Hash.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key contract code hash: %w", err)
	}
	return nil
}

// LedgerKeyConfigSetting identifies a config setting ledger entry.
type LedgerKeyConfigSetting struct {
	ConfigSettingID ConfigSettingID
}

// Encode writes a LedgerKeyConfigSetting in XDR format.
func (lkc *LedgerKeyConfigSetting) Encode(buf *bytes.Buffer) error {
	xdr.WriteEnum(buf, lkc.ConfigSettingID)
	return nil
}

// Decode reads a LedgerKeyConfigSetting from XDR format.
func (lkc *LedgerKeyConfigSetting) Decode(c *xdr.Cursor) error {
	var err error
	if lkc.ConfigSettingID, err = xdr.DecodeEnum[ConfigSettingID](c); err != nil {
		return fmt.Errorf("decode ledger key config setting config setting id: %w", err)
	}
	return nil
}

// LedgerKeyTTL identifies a TTL ledger entry.
type LedgerKeyTTL struct {
	KeyHash Hash
}

// Encode writes a LedgerKeyTTL in XDR format.
func (lkt *LedgerKeyTTL) Encode(buf *bytes.Buffer) error {
	if err := lkt.KeyHash.Encode(buf); err != nil {
		return fmt.Errorf("encode ledger key ttl key hash: %w", err)
	}
	return nil
}

// Decode reads a LedgerKeyTTL from XDR format.
func (lkt *LedgerKeyTTL) Decode(c *xdr.Cursor) error {
	var err error
	if err = lkt.KeyHash.Decode(c); err != nil {
		return fmt.Errorf("decode ledger key ttl key hash: %w", err)
	}
	return nil
}

// LedgerKey carries the identifying fields of a ledger entry.
type LedgerKey struct {
	Type             LedgerEntryType
	Account          *LedgerKeyAccount
	TrustLine        *LedgerKeyTrustLine
	Offer            *LedgerKeyOffer
	Data             *LedgerKeyData
	ClaimableBalance *LedgerKeyClaimableBalance
	LiquidityPool    *LedgerKeyLiquidityPool
	ContractData     *LedgerKeyContractData
	ContractCode     *LedgerKeyContractCode
	ConfigSetting    *LedgerKeyConfigSetting
	TTL              *LedgerKeyTTL
}

// Encode writes a LedgerKey in XDR format.
func (lk *LedgerKey) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lk.Type)
	switch lk.Type {
	case LedgerEntryTypeAccount:
		return xdr.EncodeArm(buf, lk.Account, "LedgerKey", lk.Type)
	case LedgerEntryTypeTrustline:
		return xdr.EncodeArm(buf, lk.TrustLine, "LedgerKey", lk.Type)
	case LedgerEntryTypeOffer:
		return xdr.EncodeArm(buf, lk.Offer, "LedgerKey", lk.Type)
	case LedgerEntryTypeData:
		return xdr.EncodeArm(buf, lk.Data, "LedgerKey", lk.Type)
	case LedgerEntryTypeClaimableBalance:
		return xdr.EncodeArm(buf, lk.ClaimableBalance, "LedgerKey", lk.Type)
	case LedgerEntryTypeLiquidityPool:
		return xdr.EncodeArm(buf, lk.LiquidityPool, "LedgerKey", lk.Type)
	case LedgerEntryTypeContractData:
		return xdr.EncodeArm(buf, lk.ContractData, "LedgerKey", lk.Type)
	case LedgerEntryTypeContractCode:
		return xdr.EncodeArm(buf, lk.ContractCode, "LedgerKey", lk.Type)
	case LedgerEntryTypeConfigSetting:
		return xdr.EncodeArm(buf, lk.ConfigSetting, "LedgerKey", lk.Type)
	case LedgerEntryTypeTTL:
		return xdr.EncodeArm(buf, lk.TTL, "LedgerKey", lk.Type)
	}
	return nil
}

// Decode reads a LedgerKey from XDR format.
func (lk *LedgerKey) Decode(c *xdr.Cursor) error {
	*lk = LedgerKey{}
	var err error
	if lk.Type, err = xdr.DecodeUnionDiscriminant[LedgerEntryType](c); err != nil {
		return fmt.Errorf("decode ledger key type: %w", err)
	}
	switch lk.Type {
	case LedgerEntryTypeAccount:
		lk.Account, err = xdr.DecodeArm[LedgerKeyAccount](c)
	case LedgerEntryTypeTrustline:
		lk.TrustLine, err = xdr.DecodeArm[LedgerKeyTrustLine](c)
	case LedgerEntryTypeOffer:
		lk.Offer, err = xdr.DecodeArm[LedgerKeyOffer](c)
	case LedgerEntryTypeData:
		lk.Data, err = xdr.DecodeArm[LedgerKeyData](c)
	case LedgerEntryTypeClaimableBalance:
		lk.ClaimableBalance, err = xdr.DecodeArm[LedgerKeyClaimableBalance](c)
	case LedgerEntryTypeLiquidityPool:
		lk.LiquidityPool, err = xdr.DecodeArm[LedgerKeyLiquidityPool](c)
	case LedgerEntryTypeContractData:
		lk.ContractData, err = xdr.DecodeArm[LedgerKeyContractData](c)
	case LedgerEntryTypeContractCode:
		lk.ContractCode, err = xdr.DecodeArm[LedgerKeyContractCode](c)
	case LedgerEntryTypeConfigSetting:
		lk.ConfigSetting, err = xdr.DecodeArm[LedgerKeyConfigSetting](c)
	case LedgerEntryTypeTTL:
		lk.TTL, err = xdr.DecodeArm[LedgerKeyTTL](c)
	}
	if err != nil {
		return fmt.Errorf("decode ledger key %v: %w", lk.Type, err)
	}
	return nil
}

// LedgerKey derives the key identifying the entry body d.
func (d LedgerEntryData) LedgerKey() (LedgerKey, error) {
	k := LedgerKey{Type: d.Type}
	switch {
	case d.Type == LedgerEntryTypeAccount && d.Account != nil:
		k.Account = &LedgerKeyAccount{AccountID: d.Account.AccountID}
	case d.Type == LedgerEntryTypeTrustline && d.TrustLine != nil:
		k.TrustLine = &LedgerKeyTrustLine{AccountID: d.TrustLine.AccountID, Asset: d.TrustLine.Asset}
	case d.Type == LedgerEntryTypeOffer && d.Offer != nil:
		k.Offer = &LedgerKeyOffer{SellerID: d.Offer.SellerID, OfferID: d.Offer.OfferID}
	case d.Type == LedgerEntryTypeData && d.Data != nil:
		k.Data = &LedgerKeyData{AccountID: d.Data.AccountID, DataName: d.Data.DataName}
	case d.Type == LedgerEntryTypeClaimableBalance && d.ClaimableBalance != nil:
		k.ClaimableBalance = &LedgerKeyClaimableBalance{BalanceID: d.ClaimableBalance.BalanceID}
	case d.Type == LedgerEntryTypeLiquidityPool && d.LiquidityPool != nil:
		k.LiquidityPool = &LedgerKeyLiquidityPool{LiquidityPoolID: d.LiquidityPool.LiquidityPoolID}
	case d.Type == LedgerEntryTypeContractData && d.ContractData != nil:
		k.ContractData = &LedgerKeyContractData{
			Contract:   d.ContractData.Contract,
			Key:        d.ContractData.Key,
			Durability: d.ContractData.Durability,
		}
	case d.Type == LedgerEntryTypeContractCode && d.ContractCode != nil:
		k.ContractCode = &LedgerKeyContractCode{Hash: d.ContractCode.Hash}
	case d.Type == LedgerEntryTypeConfigSetting && d.ConfigSetting != nil:
		k.ConfigSetting = &LedgerKeyConfigSetting{ConfigSettingID: d.ConfigSetting.ConfigSettingID}
	case d.Type == LedgerEntryTypeTTL && d.TTL != nil:
		k.TTL = &LedgerKeyTTL{KeyHash: d.TTL.KeyHash}
	default:
		return LedgerKey{}, xdr.UnionArmError("LedgerEntryData", d.Type)
	}
	return k, nil
}
