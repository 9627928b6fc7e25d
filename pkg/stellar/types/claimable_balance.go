package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// ClaimPredicateType enumerates claim predicate type values.
type ClaimPredicateType int32

const (
	ClaimPredicateTypeUnconditional      ClaimPredicateType = 0
	ClaimPredicateTypeAnd                ClaimPredicateType = 1
	ClaimPredicateTypeOr                 ClaimPredicateType = 2
	ClaimPredicateTypeNot                ClaimPredicateType = 3
	ClaimPredicateTypeBeforeAbsoluteTime ClaimPredicateType = 4
	ClaimPredicateTypeBeforeRelativeTime ClaimPredicateType = 5
)

var claimPredicateTypeNames = map[ClaimPredicateType]string{
	ClaimPredicateTypeUnconditional:      "CLAIM_PREDICATE_UNCONDITIONAL",
	ClaimPredicateTypeAnd:                "CLAIM_PREDICATE_AND",
	ClaimPredicateTypeOr:                 "CLAIM_PREDICATE_OR",
	ClaimPredicateTypeNot:                "CLAIM_PREDICATE_NOT",
	ClaimPredicateTypeBeforeAbsoluteTime: "CLAIM_PREDICATE_BEFORE_ABSOLUTE_TIME",
	ClaimPredicateTypeBeforeRelativeTime: "CLAIM_PREDICATE_BEFORE_RELATIVE_TIME",
}

func (v ClaimPredicateType) String() string { return enumString(claimPredicateTypeNames, v, "ClaimPredicateType") }

// MarshalText renders the protocol name of v.
func (v ClaimPredicateType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClaimPredicateType) IsKnown() bool {
	_, ok := claimPredicateTypeNames[v]
	return ok
}

// ClaimPredicate is a recursive condition under which a claimant may claim
// a balance.
//
//	union ClaimPredicate switch (ClaimPredicateType type) {
//	case CLAIM_PREDICATE_UNCONDITIONAL:
//	    void;
//	case CLAIM_PREDICATE_AND:
//	    ClaimPredicate andPredicates<2>;
//	case CLAIM_PREDICATE_OR:
//	    ClaimPredicate orPredicates<2>;
//	case CLAIM_PREDICATE_NOT:
//	    ClaimPredicate* notPredicate;
//	case CLAIM_PREDICATE_BEFORE_ABSOLUTE_TIME:
//	    int64 absBefore;
//	case CLAIM_PREDICATE_BEFORE_RELATIVE_TIME:
//	    int64 relBefore;
//	};
//
// The NOT arm is optional on the wire: a nil Not with Type NOT encodes an
// absent predicate.
type ClaimPredicate struct {
	Type          ClaimPredicateType
	AndPredicates *[]ClaimPredicate
	OrPredicates  *[]ClaimPredicate
	NotPredicate  *ClaimPredicate
	AbsBefore     *int64
	RelBefore     *int64
}

// Encode writes a ClaimPredicate in XDR format.
func (cp *ClaimPredicate) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cp.Type)
	switch cp.Type {
	case ClaimPredicateTypeAnd:
		return xdr.EncodeArrayArm(buf, cp.AndPredicates, "ClaimPredicate", cp.Type)
	case ClaimPredicateTypeOr:
		return xdr.EncodeArrayArm(buf, cp.OrPredicates, "ClaimPredicate", cp.Type)
	case ClaimPredicateTypeNot:
		return xdr.EncodeOptional(buf, cp.NotPredicate)
	case ClaimPredicateTypeBeforeAbsoluteTime:
		return xdr.EncodeArmFunc(buf, cp.AbsBefore, xdr.WriteInt64, "ClaimPredicate", cp.Type)
	case ClaimPredicateTypeBeforeRelativeTime:
		return xdr.EncodeArmFunc(buf, cp.RelBefore, xdr.WriteInt64, "ClaimPredicate", cp.Type)
	}
	return nil
}

// Decode reads a ClaimPredicate from XDR format.
func (cp *ClaimPredicate) Decode(c *xdr.Cursor) error {
	*cp = ClaimPredicate{}
	var err error
	if cp.Type, err = xdr.DecodeUnionDiscriminant[ClaimPredicateType](c); err != nil {
		return fmt.Errorf("decode claim predicate type: %w", err)
	}
	switch cp.Type {
	case ClaimPredicateTypeAnd:
		cp.AndPredicates, err = xdr.DecodeArrayArm[ClaimPredicate](c)
	case ClaimPredicateTypeOr:
		cp.OrPredicates, err = xdr.DecodeArrayArm[ClaimPredicate](c)
	case ClaimPredicateTypeNot:
		cp.NotPredicate, err = xdr.DecodeOptional[ClaimPredicate](c)
	case ClaimPredicateTypeBeforeAbsoluteTime:
		cp.AbsBefore, err = xdr.DecodeArmFunc(c, xdr.DecodeInt64)
	case ClaimPredicateTypeBeforeRelativeTime:
		cp.RelBefore, err = xdr.DecodeArmFunc(c, xdr.DecodeInt64)
	}
	if err != nil {
		return fmt.Errorf("decode claim predicate %v: %w", cp.Type, err)
	}
	return nil
}

// Unconditional returns a predicate that always holds.
func Unconditional() ClaimPredicate {
	return ClaimPredicate{Type: ClaimPredicateTypeUnconditional}
}

// And returns a predicate that holds when both l and r hold.
func And(l, r ClaimPredicate) ClaimPredicate {
	preds := []ClaimPredicate{l, r}
	return ClaimPredicate{Type: ClaimPredicateTypeAnd, AndPredicates: &preds}
}

// Or returns a predicate that holds when either l or r holds.
func Or(l, r ClaimPredicate) ClaimPredicate {
	preds := []ClaimPredicate{l, r}
	return ClaimPredicate{Type: ClaimPredicateTypeOr, OrPredicates: &preds}
}

// Not negates p.
func Not(p ClaimPredicate) ClaimPredicate {
	return ClaimPredicate{Type: ClaimPredicateTypeNot, NotPredicate: &p}
}

// BeforeAbsoluteTime holds until the given UNIX time.
func BeforeAbsoluteTime(t int64) ClaimPredicate {
	return ClaimPredicate{Type: ClaimPredicateTypeBeforeAbsoluteTime, AbsBefore: &t}
}

// BeforeRelativeTime holds for d seconds after the balance is created.
func BeforeRelativeTime(d int64) ClaimPredicate {
	return ClaimPredicate{Type: ClaimPredicateTypeBeforeRelativeTime, RelBefore: &d}
}

// ClaimantType enumerates claimant type values.
type ClaimantType int32

const (
	ClaimantTypeV0 ClaimantType = 0
)

var claimantTypeNames = map[ClaimantType]string{
	ClaimantTypeV0: "CLAIMANT_TYPE_V0",
}

func (v ClaimantType) String() string { return enumString(claimantTypeNames, v, "ClaimantType") }

// MarshalText renders the protocol name of v.
func (v ClaimantType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClaimantType) IsKnown() bool {
	_, ok := claimantTypeNames[v]
	return ok
}

// ClaimantV0 pairs a destination with the predicate it must satisfy.
type ClaimantV0 struct {
	Destination AccountID
	Predicate   ClaimPredicate
}

// Encode writes a ClaimantV0 in XDR format.
func (cv *ClaimantV0) Encode(buf *bytes.Buffer) error {
	if err := cv.Destination.Encode(buf); err != nil {
		return fmt.Errorf("encode claimant v0 destination: %w", err)
	}
	if err := cv.Predicate.Encode(buf); err != nil {
		return fmt.Errorf("encode claimant v0 predicate: %w", err)
	}
	return nil
}

// Decode reads a ClaimantV0 from XDR format.
func (cv *ClaimantV0) Decode(c *xdr.Cursor) error {
	var err error
	if err = cv.Destination.Decode(c); err != nil {
		return fmt.Errorf("decode claimant v0 destination: %w", err)
	}
	if err = cv.Predicate.Decode(c); err != nil {
		return fmt.Errorf("decode claimant v0 predicate: %w", err)
	}
	return nil
}

// Claimant is an account that may claim a balance, with its predicate.
type Claimant struct {
	Type ClaimantType
	V0   *ClaimantV0
}

// Encode writes a Claimant in XDR format.
func (cl *Claimant) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cl.Type)
	switch cl.Type {
	case ClaimantTypeV0:
		return xdr.EncodeArm(buf, cl.V0, "Claimant", cl.Type)
	}
	return nil
}

// Decode reads a Claimant from XDR format.
func (cl *Claimant) Decode(c *xdr.Cursor) error {
	*cl = Claimant{}
	var err error
	if cl.Type, err = xdr.DecodeUnionDiscriminant[ClaimantType](c); err != nil {
		return fmt.Errorf("decode claimant type: %w", err)
	}
	switch cl.Type {
	case ClaimantTypeV0:
		cl.V0, err = xdr.DecodeArm[ClaimantV0](c)
	}
	if err != nil {
		return fmt.Errorf("decode claimant %v: %w", cl.Type, err)
	}
	return nil
}

// ClaimableBalanceIDType enumerates claimable balance id type values.
type ClaimableBalanceIDType int32

const (
	ClaimableBalanceIDTypeV0 ClaimableBalanceIDType = 0
)

var claimableBalanceIDTypeNames = map[ClaimableBalanceIDType]string{
	ClaimableBalanceIDTypeV0: "CLAIMABLE_BALANCE_ID_TYPE_V0",
}

func (v ClaimableBalanceIDType) String() string { return enumString(claimableBalanceIDTypeNames, v, "ClaimableBalanceIDType") }

// MarshalText renders the protocol name of v.
func (v ClaimableBalanceIDType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClaimableBalanceIDType) IsKnown() bool {
	_, ok := claimableBalanceIDTypeNames[v]
	return ok
}

// ClaimableBalanceID identifies a claimable balance.
type ClaimableBalanceID struct {
	Type ClaimableBalanceIDType
	V0   *Hash
}

// Encode writes a ClaimableBalanceID in XDR format.
func (cbi *ClaimableBalanceID) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cbi.Type)
	switch cbi.Type {
	case ClaimableBalanceIDTypeV0:
		return xdr.EncodeArm(buf, cbi.V0, "ClaimableBalanceID", cbi.Type)
	}
	return nil
}

// Decode reads a ClaimableBalanceID from XDR format.
func (cbi *ClaimableBalanceID) Decode(c *xdr.Cursor) error {
	*cbi = ClaimableBalanceID{}
	var err error
	if cbi.Type, err = xdr.DecodeUnionDiscriminant[ClaimableBalanceIDType](c); err != nil {
		return fmt.Errorf("decode claimable balance id type: %w", err)
	}
	switch cbi.Type {
	case ClaimableBalanceIDTypeV0:
		cbi.V0, err = xdr.DecodeArm[Hash](c)
	}
	if err != nil {
		return fmt.Errorf("decode claimable balance id %v: %w", cbi.Type, err)
	}
	return nil
}

// ClaimableBalanceFlags enumerates claimable balance flags values.
type ClaimableBalanceFlags int32

const (
	ClaimableBalanceFlagsClawbackEnabled ClaimableBalanceFlags = 1
)

var claimableBalanceFlagsNames = map[ClaimableBalanceFlags]string{
	ClaimableBalanceFlagsClawbackEnabled: "CLAIMABLE_BALANCE_CLAWBACK_ENABLED_FLAG",
}

func (v ClaimableBalanceFlags) String() string { return enumString(claimableBalanceFlagsNames, v, "ClaimableBalanceFlags") }

// MarshalText renders the protocol name of v.
func (v ClaimableBalanceFlags) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ClaimableBalanceFlags) IsKnown() bool {
	_, ok := claimableBalanceFlagsNames[v]
	return ok
}

// ClaimableBalanceEntryExtensionV1 carries the balance's clawback flags.
type ClaimableBalanceEntryExtensionV1 struct {
	Ext   ExtensionPoint
	Flags uint32
}

// Encode writes a ClaimableBalanceEntryExtensionV1 in XDR format.
func (cbe *ClaimableBalanceEntryExtensionV1) Encode(buf *bytes.Buffer) error {
	if err := cbe.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode claimable balance entry extension v1 ext: %w", err)
	}
	xdr.WriteUint32(buf, cbe.Flags)
	return nil
}

// Decode reads a ClaimableBalanceEntryExtensionV1 from XDR format.
func (cbe *ClaimableBalanceEntryExtensionV1) Decode(c *xdr.Cursor) error {
	var err error
	if err = cbe.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode claimable balance entry extension v1 ext: %w", err)
	}
	if cbe.Flags, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode claimable balance entry extension v1 flags: %w", err)
	}
	return nil
}

// ClaimableBalanceEntryExt is the versioned extension of ClaimableBalanceEntry.
type ClaimableBalanceEntryExt struct {
	V  int32
	V1 *ClaimableBalanceEntryExtensionV1
}

// Encode writes a ClaimableBalanceEntryExt in XDR format.
func (cbe *ClaimableBalanceEntryExt) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cbe.V)
	switch cbe.V {
	case 1:
		return xdr.EncodeArm(buf, cbe.V1, "ClaimableBalanceEntryExt", cbe.V)
	}
	return nil
}

// Decode reads a ClaimableBalanceEntryExt from XDR format.
func (cbe *ClaimableBalanceEntryExt) Decode(c *xdr.Cursor) error {
	*cbe = ClaimableBalanceEntryExt{}
	var err error
	if cbe.V, err = xdr.DecodeUnionDiscriminant[int32](c); err != nil {
		return fmt.Errorf("decode claimable balance entry ext v: %w", err)
	}
	switch cbe.V {
	case 1:
		cbe.V1, err = xdr.DecodeArm[ClaimableBalanceEntryExtensionV1](c)
	}
	if err != nil {
		return fmt.Errorf("decode claimable balance entry ext %v: %w", cbe.V, err)
	}
	return nil
}

// ClaimableBalanceEntry is a balance waiting to be claimed.
type ClaimableBalanceEntry struct {
	BalanceID ClaimableBalanceID
	Claimants []Claimant
	Asset     Asset
	Amount    int64
	Ext       ClaimableBalanceEntryExt
}

// Encode writes a ClaimableBalanceEntry in XDR format.
func (cbe *ClaimableBalanceEntry) Encode(buf *bytes.Buffer) error {
	if err := cbe.BalanceID.Encode(buf); err != nil {
		return fmt.Errorf("encode claimable balance entry balance id: %w", err)
	}
	if err := xdr.EncodeArray(buf, cbe.Claimants); err != nil {
		return fmt.Errorf("encode claimable balance entry claimants: %w", err)
	}
	if err := cbe.Asset.Encode(buf); err != nil {
		return fmt.Errorf("encode claimable balance entry asset: %w", err)
	}
	xdr.WriteInt64(buf, cbe.Amount)
	if err := cbe.Ext.Encode(buf); err != nil {
		return fmt.Errorf("encode claimable balance entry ext: %w", err)
	}
	return nil
}

// Decode reads a ClaimableBalanceEntry from XDR format.
func (cbe *ClaimableBalanceEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = cbe.BalanceID.Decode(c); err != nil {
		return fmt.Errorf("decode claimable balance entry balance id: %w", err)
	}
	if cbe.Claimants, err = xdr.DecodeArray[Claimant](c); err != nil {
		return fmt.Errorf("decode claimable balance entry claimants: %w", err)
	}
	if err = cbe.Asset.Decode(c); err != nil {
		return fmt.Errorf("decode claimable balance entry asset: %w", err)
	}
	if cbe.Amount, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode claimable balance entry amount: %w", err)
	}
	if err = cbe.Ext.Decode(c); err != nil {
		return fmt.Errorf("decode claimable balance entry ext: %w", err)
	}
	return nil
}
