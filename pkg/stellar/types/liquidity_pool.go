package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// LiquidityPoolEntryConstantProduct holds reserves and share totals of a
// constant product pool.
type LiquidityPoolEntryConstantProduct struct {
	Params                   LiquidityPoolConstantProductParameters
	ReserveA                 int64
	ReserveB                 int64
	TotalPoolShares          int64
	PoolSharesTrustLineCount int64
}

// Encode writes a LiquidityPoolEntryConstantProduct in XDR format.
func (lpe *LiquidityPoolEntryConstantProduct) Encode(buf *bytes.Buffer) error {
	if err := lpe.Params.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool entry constant product params: %w", err)
	}
	xdr.WriteInt64(buf, lpe.ReserveA)
	xdr.WriteInt64(buf, lpe.ReserveB)
	xdr.WriteInt64(buf, lpe.TotalPoolShares)
	xdr.WriteInt64(buf, lpe.PoolSharesTrustLineCount)
	return nil
}

// Decode reads a LiquidityPoolEntryConstantProduct from XDR format.
func (lpe *LiquidityPoolEntryConstantProduct) Decode(c *xdr.Cursor) error {
	var err error
	if err = lpe.Params.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry constant product params: %w", err)
	}
	if lpe.ReserveA, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry constant product reserve a: %w", err)
	}
	if lpe.ReserveB, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry constant product reserve b: %w", err)
	}
	if lpe.TotalPoolShares, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry constant product total pool shares: %w", err)
	}
	if lpe.PoolSharesTrustLineCount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry constant product pool shares trust line count: %w", err)
	}
	return nil
}

// LiquidityPoolEntryBody is switched on LiquidityPoolType.
type LiquidityPoolEntryBody struct {
	Type            LiquidityPoolType
	ConstantProduct *LiquidityPoolEntryConstantProduct
}

// Encode writes a LiquidityPoolEntryBody in XDR format.
func (lpe *LiquidityPoolEntryBody) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, lpe.Type)
	switch lpe.Type {
	case LiquidityPoolTypeConstantProduct:
		return xdr.EncodeArm(buf, lpe.ConstantProduct, "LiquidityPoolEntryBody", lpe.Type)
	}
	return nil
}

// Decode reads a LiquidityPoolEntryBody from XDR format.
func (lpe *LiquidityPoolEntryBody) Decode(c *xdr.Cursor) error {
	*lpe = LiquidityPoolEntryBody{}
	var err error
	if lpe.Type, err = xdr.DecodeUnionDiscriminant[LiquidityPoolType](c); err != nil {
		return fmt.Errorf("decode liquidity pool entry body type: %w", err)
	}
	switch lpe.Type {
	case LiquidityPoolTypeConstantProduct:
		lpe.ConstantProduct, err = xdr.DecodeArm[LiquidityPoolEntryConstantProduct](c)
	}
	if err != nil {
		return fmt.Errorf("decode liquidity pool entry body %v: %w", lpe.Type, err)
	}
	return nil
}

// LiquidityPoolEntry is the ledger state of an automated market maker pool.
type LiquidityPoolEntry struct {
	LiquidityPoolID PoolID
	Body            LiquidityPoolEntryBody
}

// Encode writes a LiquidityPoolEntry in XDR format.
func (lpe *LiquidityPoolEntry) Encode(buf *bytes.Buffer) error {
	if err := lpe.LiquidityPoolID.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool entry liquidity pool id: %w", err)
	}
	if err := lpe.Body.Encode(buf); err != nil {
		return fmt.Errorf("encode liquidity pool entry body: %w", err)
	}
	return nil
}

// Decode reads a LiquidityPoolEntry from XDR format.
func (lpe *LiquidityPoolEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = lpe.LiquidityPoolID.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry liquidity pool id: %w", err)
	}
	if err = lpe.Body.Decode(c); err != nil {
		return fmt.Errorf("decode liquidity pool entry body: %w", err)
	}
	return nil
}
