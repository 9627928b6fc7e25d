package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// ============================================================================
// Asset codes
// ============================================================================

// AssetCode4 is a 1 to 4 character asset code, right-padded with zeros.
//
//	typedef opaque AssetCode4[4];
type AssetCode4 [4]byte

// Encode writes the code as fixed opaque.
func (a *AssetCode4) Encode(buf *bytes.Buffer) error {
	xdr.WriteFixedOpaque(buf, a[:])
	return nil
}

// Decode reads the code.
func (a *AssetCode4) Decode(c *xdr.Cursor) error {
	return xdr.DecodeFixedOpaqueInto(c, a[:])
}

// String returns the code without trailing zero bytes.
func (a AssetCode4) String() string {
	return strings.TrimRight(string(a[:]), "\x00")
}

// MarshalText renders the code as text.
func (a AssetCode4) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// AssetCode12 is a 5 to 12 character asset code, right-padded with zeros.
//
//	typedef opaque AssetCode12[12];
type AssetCode12 [12]byte

// Encode writes the code as fixed opaque.
func (a *AssetCode12) Encode(buf *bytes.Buffer) error {
	xdr.WriteFixedOpaque(buf, a[:])
	return nil
}

// Decode reads the code.
func (a *AssetCode12) Decode(c *xdr.Cursor) error {
	return xdr.DecodeFixedOpaqueInto(c, a[:])
}

// String returns the code without trailing zero bytes.
func (a AssetCode12) String() string {
	return strings.TrimRight(string(a[:]), "\x00")
}

// MarshalText renders the code as text.
func (a AssetCode12) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// AssetType selects the kind of asset.
type AssetType int32

const (
	AssetTypeNative           AssetType = 0
	AssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare        AssetType = 3
)

var assetTypeNames = map[AssetType]string{
	AssetTypeNative:           "ASSET_TYPE_NATIVE",
	AssetTypeCreditAlphanum4:  "ASSET_TYPE_CREDIT_ALPHANUM4",
	AssetTypeCreditAlphanum12: "ASSET_TYPE_CREDIT_ALPHANUM12",
	AssetTypePoolShare:        "ASSET_TYPE_POOL_SHARE",
}

func (v AssetType) String() string { return enumString(assetTypeNames, v, "AssetType") }

// MarshalText renders the protocol name of v.
func (v AssetType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v AssetType) IsKnown() bool {
	_, ok := assetTypeNames[v]
	return ok
}

// AssetCode is an asset code without an issuer, used by AllowTrustOp.
type AssetCode struct {
	Type        AssetType
	AssetCode4  *AssetCode4
	AssetCode12 *AssetCode12
}

// Encode writes an AssetCode in XDR format.
func (ac *AssetCode) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ac.Type)
	switch ac.Type {
	case AssetTypeCreditAlphanum4:
		return xdr.EncodeArm(buf, ac.AssetCode4, "AssetCode", ac.Type)
	case AssetTypeCreditAlphanum12:
		return xdr.EncodeArm(buf, ac.AssetCode12, "AssetCode", ac.Type)
	}
	return nil
}

// Decode reads an AssetCode from XDR format.
func (ac *AssetCode) Decode(c *xdr.Cursor) error {
	*ac = AssetCode{}
	var err error
	if ac.Type, err = xdr.DecodeUnionDiscriminant[AssetType](c); err != nil {
		return fmt.Errorf("decode asset code type: %w", err)
	}
	switch ac.Type {
	case AssetTypeCreditAlphanum4:
		ac.AssetCode4, err = xdr.DecodeArm[AssetCode4](c)
	case AssetTypeCreditAlphanum12:
		ac.AssetCode12, err = xdr.DecodeArm[AssetCode12](c)
	}
	if err != nil {
		return fmt.Errorf("decode asset code %v: %w", ac.Type, err)
	}
	return nil
}

// AlphaNum4 is a credit asset with a 4 character code.
type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountID
}

// clone returns a deep copy, or nil for nil.
func (an *AlphaNum4) clone() *AlphaNum4 {
	if an == nil {
		return nil
	}
	return &AlphaNum4{AssetCode: an.AssetCode, Issuer: an.Issuer.Clone()}
}

// Encode writes an AlphaNum4 in XDR format.
func (an *AlphaNum4) Encode(buf *bytes.Buffer) error {
	if err := an.AssetCode.Encode(buf); err != nil {
		return fmt.Errorf("encode alpha num 4 asset code: %w", err)
	}
	if err := an.Issuer.Encode(buf); err != nil {
		return fmt.Errorf("encode alpha num 4 issuer: %w", err)
	}
	return nil
}

// Decode reads an AlphaNum4 from XDR format.
func (an *AlphaNum4) Decode(c *xdr.Cursor) error {
	var err error
	if err = an.AssetCode.Decode(c); err != nil {
		return fmt.Errorf("decode alpha num 4 asset code: %w", err)
	}
	if err = an.Issuer.Decode(c); err != nil {
		return fmt.Errorf("decode alpha num 4 issuer: %w", err)
	}
	return nil
}

// AlphaNum12 is a credit asset with a 12 character code.
type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountID
}

func (an *AlphaNum12) clone() *AlphaNum12 {
	if an == nil {
		return nil
	}
	return &AlphaNum12{AssetCode: an.AssetCode, Issuer: an.Issuer.Clone()}
}

// Encode writes an AlphaNum12 in XDR format.
func (an *AlphaNum12) Encode(buf *bytes.Buffer) error {
	if err := an.AssetCode.Encode(buf); err != nil {
		return fmt.Errorf("encode alpha num 12 asset code: %w", err)
	}
	if err := an.Issuer.Encode(buf); err != nil {
		return fmt.Errorf("encode alpha num 12 issuer: %w", err)
	}
	return nil
}

// Decode reads an AlphaNum12 from XDR format.
func (an *AlphaNum12) Decode(c *xdr.Cursor) error {
	var err error
	if err = an.AssetCode.Decode(c); err != nil {
		return fmt.Errorf("decode alpha num 12 asset code: %w", err)
	}
	if err = an.Issuer.Decode(c); err != nil {
		return fmt.Errorf("decode alpha num 12 issuer: %w", err)
	}
	return nil
}

// Asset is either the native asset or a credit asset.
//
//	union Asset switch (AssetType type) {
//	case ASSET_TYPE_NATIVE:
//	    void;
//	case ASSET_TYPE_CREDIT_ALPHANUM4:
//	    AlphaNum4 alphaNum4;
//	case ASSET_TYPE_CREDIT_ALPHANUM12:
//	    AlphaNum12 alphaNum12;
//	};
type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

// Encode writes an Asset in XDR format.
func (a *Asset) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, a.Type)
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		return xdr.EncodeArm(buf, a.AlphaNum4, "Asset", a.Type)
	case AssetTypeCreditAlphanum12:
		return xdr.EncodeArm(buf, a.AlphaNum12, "Asset", a.Type)
	}
	return nil
}

// Decode reads an Asset from XDR format.
func (a *Asset) Decode(c *xdr.Cursor) error {
	*a = Asset{}
	var err error
	if a.Type, err = xdr.DecodeUnionDiscriminant[AssetType](c); err != nil {
		return fmt.Errorf("decode asset type: %w", err)
	}
	switch a.Type {
	case AssetTypeCreditAlphanum4:
		a.AlphaNum4, err = xdr.DecodeArm[AlphaNum4](c)
	case AssetTypeCreditAlphanum12:
		a.AlphaNum12, err = xdr.DecodeArm[AlphaNum12](c)
	}
	if err != nil {
		return fmt.Errorf("decode asset %v: %w", a.Type, err)
	}
	return nil
}

// NewNativeAsset returns the native asset.
func NewNativeAsset() Asset {
	return Asset{Type: AssetTypeNative}
}

// NewCreditAsset builds a credit asset, choosing the 4 or 12 character
// variant from the length of code.
func NewCreditAsset(code string, issuer AccountID) (Asset, error) {
	switch n := len(code); {
	case n >= 1 && n <= 4:
		a := AlphaNum4{Issuer: issuer.Clone()}
		copy(a.AssetCode[:], code)
		return Asset{Type: AssetTypeCreditAlphanum4, AlphaNum4: &a}, nil
	case n >= 5 && n <= 12:
		a := AlphaNum12{Issuer: issuer.Clone()}
		copy(a.AssetCode[:], code)
		return Asset{Type: AssetTypeCreditAlphanum12, AlphaNum12: &a}, nil
	default:
		return Asset{}, xdr.NewError(xdr.ErrInvalidValue, "asset code %q must be 1 to 12 bytes", code)
	}
}

// Code returns the asset code, or "native".
func (a Asset) Code() string {
	switch {
	case a.Type == AssetTypeCreditAlphanum4 && a.AlphaNum4 != nil:
		return a.AlphaNum4.AssetCode.String()
	case a.Type == AssetTypeCreditAlphanum12 && a.AlphaNum12 != nil:
		return a.AlphaNum12.AssetCode.String()
	}
	return "native"
}

// Issuer returns the issuing account of a credit asset.
func (a Asset) Issuer() (AccountID, bool) {
	switch {
	case a.Type == AssetTypeCreditAlphanum4 && a.AlphaNum4 != nil:
		return a.AlphaNum4.Issuer, true
	case a.Type == AssetTypeCreditAlphanum12 && a.AlphaNum12 != nil:
		return a.AlphaNum12.Issuer, true
	}
	return AccountID{}, false
}

// String renders the asset as "native" or "CODE:issuer".
func (a Asset) String() string {
	issuer, ok := a.Issuer()
	if !ok {
		return a.Code()
	}
	return a.Code() + ":" + issuer.String()
}

// ToTrustLineAsset converts a to the equivalent trust line asset. The
// result owns copies of a's arms.
func (a Asset) ToTrustLineAsset() TrustLineAsset {
	return TrustLineAsset{Type: a.Type, AlphaNum4: a.AlphaNum4.clone(), AlphaNum12: a.AlphaNum12.clone()}
}

// ToChangeTrustAsset converts a to the equivalent change trust asset. The
// result owns copies of a's arms.
func (a Asset) ToChangeTrustAsset() ChangeTrustAsset {
	return ChangeTrustAsset{Type: a.Type, AlphaNum4: a.AlphaNum4.clone(), AlphaNum12: a.AlphaNum12.clone()}
}

// ============================================================================
// Pool assets
// ============================================================================

// LiquidityPoolType enumerates liquidity pool type values.
type LiquidityPoolType int32

const (
	LiquidityPoolTypeConstantProduct LiquidityPoolType = 0
)

var liquidityPoolTypeNames = map[LiquidityPoolType]string{
	LiquidityPoolTypeConstantProduct: "LIQUIDITY_POOL_CONSTANT_PRODUCT",
}

func (v LiquidityPoolType) String() string { return enumString(liquidityPoolTypeNames, v, "LiquidityPoolType") }

// MarshalText renders the protocol name of v.
func (v LiquidityPoolType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v LiquidityPoolType) IsKnown() bool {
	_, ok := liquidityPoolTypeNames[v]
	return ok
}

// LiquidityPoolConstantProductParameters describes a constant product pool.
type LiquidityPoolConstantProductParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    int32 // basis points
}

// Encode writes a LiquidityPoolConstantProductParameters in XDR format.
func (lpc *LiquidityPoolConstantProductParameters) Encode(buf *bytes.Buffer) error {
	if err := lpc.AssetA.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool constant product parameters asset a: %w", err)
	}
	if err := lpc.AssetB.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool constant product parameters asset b: %w", err)
	}
	xdr.WriteInt32(buf, lpc.Fee)
	return nil
}

// Decode reads a LiquidityPoolConstantProductParameters from XDR format.
func (lpc *LiquidityPoolConstantProductParameters) Decode(c *xdr.Cursor) error {
	var err error
	if err = lpc.AssetA.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool constant product parameters asset a: %w", err)
	}
	if err = lpc.AssetB.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool constant product parameters asset b: %w", err)
	}
	if lpc.Fee, err = xdr.DecodeInt32(c); err != nil {
		return fmt.Errorf("decode liquidity pool constant product parameters fee: %w", err)
	}
	return nil
}

// LiquidityPoolParameters identifies a pool by its parameters.
type LiquidityPoolParameters struct {
	Type            LiquidityPoolType
	ConstantProduct *LiquidityPoolConstantProductParameters
}

// Encode writes a LiquidityPoolParameters in XDR format.
func (lpp *LiquidityPoolParameters) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lpp.Type)
	switch lpp.Type {
	case LiquidityPoolTypeConstantProduct:
		return xdr.EncodeArm(buf, lpp.ConstantProduct, "LiquidityPoolParameters", lpp.Type)
	}
	return nil
}

// Decode reads a LiquidityPoolParameters from XDR format.
func (lpp *LiquidityPoolParameters) Decode(c *xdr.Cursor) error {
	*lpp = LiquidityPoolParameters{}
	var err error
	if lpp.Type, err = xdr.DecodeUnionDiscriminant[LiquidityPoolType](c); err != nil {
		return fmt.Errorf("decode liquidity pool parameters type: %w", err)
	}
	switch lpp.Type {
	case LiquidityPoolTypeConstantProduct:
		lpp.ConstantProduct, err = xdr.DecodeArm[LiquidityPoolConstantProductParameters](c)
	}
	if err != nil {
		return fmt.Errorf("decode liquidity pool parameters %v: %w", lpp.Type, err)
	}
	return nil
}

// TrustLineAsset is an Asset extended with a pool share arm.
type TrustLineAsset struct {
	Type            AssetType
	AlphaNum4       *AlphaNum4
	AlphaNum12      *AlphaNum12
	LiquidityPoolID *PoolID
}

// Encode writes a TrustLineAsset in XDR format.
func (tla *TrustLineAsset) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, tla.Type)
	switch tla.Type {
	case AssetTypeCreditAlphanum4:
		return xdr.EncodeArm(buf, tla.AlphaNum4, "TrustLineAsset", tla.Type)
	case AssetTypeCreditAlphanum12:
		return xdr.EncodeArm(buf, tla.AlphaNum12, "TrustLineAsset", tla.Type)
	case AssetTypePoolShare:
		return xdr.EncodeArm(buf, tla.LiquidityPoolID, "TrustLineAsset", tla.Type)
	}
	return nil
}

// Decode reads a TrustLineAsset from XDR format.
func (tla *TrustLineAsset) Decode(c *xdr.Cursor) error {
	*tla = TrustLineAsset{}
	var err error
	if tla.Type, err = xdr.DecodeUnionDiscriminant[AssetType](c); err != nil {
		return fmt.Errorf("decode trust line asset type: %w", err)
	}
	switch tla.Type {
	case AssetTypeCreditAlphanum4:
		tla.AlphaNum4, err = xdr.DecodeArm[AlphaNum4](c)
	case AssetTypeCreditAlphanum12:
		tla.AlphaNum12, err = xdr.DecodeArm[AlphaNum12](c)
	case AssetTypePoolShare:
		tla.LiquidityPoolID, err = xdr.DecodeArm[PoolID](c)
	}
	if err != nil {
		return fmt.Errorf("decode trust line asset %v: %w", tla.Type, err)
	}
	return nil
}

// ChangeTrustAsset is an Asset extended with pool parameters.
type ChangeTrustAsset struct {
	Type          AssetType
	AlphaNum4     *AlphaNum4
	AlphaNum12    *AlphaNum12
	LiquidityPool *LiquidityPoolParameters
}

// Encode writes a ChangeTrustAsset in XDR format.
func (cta *ChangeTrustAsset) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cta.Type)
	switch cta.Type {
	case AssetTypeCreditAlphanum4:
		return xdr.EncodeArm(buf, cta.AlphaNum4, "ChangeTrustAsset", cta.Type)
	case AssetTypeCreditAlphanum12:
		return xdr.EncodeArm(buf, cta.AlphaNum12, "ChangeTrustAsset", cta.Type)
	case AssetTypePoolShare:
		return xdr.EncodeArm(buf, cta.LiquidityPool, "ChangeTrustAsset", cta.Type)
	}
	return nil
}

// Decode reads a ChangeTrustAsset from XDR format.
func (cta *ChangeTrustAsset) Decode(c *xdr.Cursor) error {
	*cta = ChangeTrustAsset{}
	var err error
	if cta.Type, err = xdr.DecodeUnionDiscriminant[AssetType](c); err != nil {
		return fmt.Errorf("decode change trust asset type: %w", err)
	}
	switch cta.Type {
	case AssetTypeCreditAlphanum4:
		cta.AlphaNum4, err = xdr.DecodeArm[AlphaNum4](c)
	case AssetTypeCreditAlphanum12:
		cta.AlphaNum12, err = xdr.DecodeArm[AlphaNum12](c)
	case AssetTypePoolShare:
		cta.LiquidityPool, err = xdr.DecodeArm[LiquidityPoolParameters](c)
	}
	if err != nil {
		return fmt.Errorf("decode change trust asset %v: %w", cta.Type, err)
	}
	return nil
}

// Price is a rational number.
type Price struct {
	N int32 // numerator
	D int32 // denominator
}

// Encode writes a Price in XDR format.
func (p *Price) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt32(buf, p.N)
	xdr.WriteInt32(buf, p.D)
	return nil
}

// Decode reads a Price from XDR format.
func (p *Price) Decode(c *xdr.Cursor) error {
	var err error
	if p.N, err = xdr.DecodeInt32(c); err != nil {
		return fmt.Errorf("decode price n: %w", err)
	}
	if p.D, err = xdr.DecodeInt32(c); err != nil {
		return fmt.Errorf("decode price d: %w", err)
	}
	return nil
}

// String renders the price as "n/d".
func (p Price) String() string {
	return fmt.Sprintf("%d/%d", p.N, p.D)
}

// Liabilities are the amounts reserved by open offers.
type Liabilities struct {
	Buying  int64
	Selling int64
}

// Encode writes a Liabilities in XDR format.
func (l *Liabilities) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, l.Buying)
	xdr.WriteInt64(buf, l.Selling)
	return nil
}

// Decode reads a Liabilities from XDR format.
func (l *Liabilities) Decode(c *xdr.Cursor) error {
	var err error
	if l.Buying, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liabilities buying: %w", err)
	}
	if l.Selling, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liabilities selling: %w", err)
	}
	return nil
}
