package types

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// ============================================================================
// Fixed-size opaque scalars
// ============================================================================

// Hash is a 32-byte SHA-256 digest.
//
//	typedef opaque Hash[32];
type Hash [32]byte

// Encode writes the hash as fixed opaque.
func (h *Hash) Encode(buf *bytes.Buffer) error {
	xdr.WriteFixedOpaque(buf, h[:])
	return nil
}

// Decode reads the hash.
func (h *Hash) Decode(c *xdr.Cursor) error {
	return xdr.DecodeFixedOpaqueInto(c, h[:])
}

// String returns the lowercase hex form.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText renders the hash as hex for JSON and YAML output.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Uint256 is a 256-bit opaque value, usually a raw Ed25519 key.
//
//	typedef opaque uint256[32];
type Uint256 [32]byte

// Encode writes the value as fixed opaque.
func (u *Uint256) Encode(buf *bytes.Buffer) error {
	xdr.WriteFixedOpaque(buf, u[:])
	return nil
}

// Decode reads the value.
func (u *Uint256) Decode(c *xdr.Cursor) error {
	return xdr.DecodeFixedOpaqueInto(c, u[:])
}

// String returns the lowercase hex form.
func (u Uint256) String() string {
	return hex.EncodeToString(u[:])
}

// MarshalText renders the value as hex.
func (u Uint256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// PoolID identifies a liquidity pool.
type PoolID = Hash

// ContractID identifies a deployed contract.
type ContractID = Hash

// SequenceNumber is an account sequence number.
type SequenceNumber = int64

// TimePoint is a UNIX timestamp in seconds.
type TimePoint = uint64

// Duration is a span in seconds.
type Duration = uint64

// Thresholds holds master weight and low/medium/high thresholds.
//
//	typedef opaque Thresholds[4];
type Thresholds [4]byte

// Encode writes the thresholds.
func (t *Thresholds) Encode(buf *bytes.Buffer) error {
	xdr.WriteFixedOpaque(buf, t[:])
	return nil
}

// Decode reads the thresholds.
func (t *Thresholds) Decode(c *xdr.Cursor) error {
	return xdr.DecodeFixedOpaqueInto(c, t[:])
}

// Threshold indexes into Thresholds.
const (
	ThresholdMasterWeight = 0
	ThresholdLow          = 1
	ThresholdMed          = 2
	ThresholdHigh         = 3
)

// SignatureHint is the last four bytes of the signing public key.
//
//	typedef opaque SignatureHint[4];
type SignatureHint [4]byte

// Encode writes the hint.
func (h *SignatureHint) Encode(buf *bytes.Buffer) error {
	xdr.WriteFixedOpaque(buf, h[:])
	return nil
}

// Decode reads the hint.
func (h *SignatureHint) Decode(c *xdr.Cursor) error {
	return xdr.DecodeFixedOpaqueInto(c, h[:])
}

// Signature is a raw signature.
//
//	typedef opaque Signature<64>;
type Signature []byte

// Encode writes the signature as variable opaque.
func (s *Signature) Encode(buf *bytes.Buffer) error {
	xdr.WriteOpaque(buf, *s)
	return nil
}

// Decode reads the signature.
func (s *Signature) Decode(c *xdr.Cursor) error {
	b, err := xdr.DecodeOpaque(c)
	if err != nil {
		return err
	}
	*s = b
	return nil
}

// String32 is a string of at most 32 bytes.
type String32 string

// Encode writes the string.
func (s *String32) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, string(*s))
	return nil
}

// Decode reads the string.
func (s *String32) Decode(c *xdr.Cursor) error {
	v, err := xdr.DecodeString(c)
	*s = String32(v)
	return err
}

// String64 is a string of at most 64 bytes.
type String64 string

// Encode writes the string.
func (s *String64) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, string(*s))
	return nil
}

// Decode reads the string.
func (s *String64) Decode(c *xdr.Cursor) error {
	v, err := xdr.DecodeString(c)
	*s = String64(v)
	return err
}

// DataValue is the value of a data entry.
//
//	typedef opaque DataValue<64>;
type DataValue []byte

// Encode writes the value.
func (d *DataValue) Encode(buf *bytes.Buffer) error {
	xdr.WriteOpaque(buf, *d)
	return nil
}

// Decode reads the value.
func (d *DataValue) Decode(c *xdr.Cursor) error {
	b, err := xdr.DecodeOpaque(c)
	if err != nil {
		return err
	}
	*d = b
	return nil
}

// ============================================================================
// ExtensionPoint
// ============================================================================

// ExtensionPoint is the reserved extension union used by many structures.
//
//	union ExtensionPoint switch (int v) {
//	case 0:
//	    void;
//	};
type ExtensionPoint struct {
	V int32
}

// Encode writes the extension version.
func (e *ExtensionPoint) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt32(buf, e.V)
	return nil
}

// Decode reads the extension version.
func (e *ExtensionPoint) Decode(c *xdr.Cursor) error {
	v, err := xdr.DecodeInt32(c)
	if err != nil {
		return fmt.Errorf("decode extension point: %w", err)
	}
	e.V = v
	return nil
}

// ============================================================================
// Keys
// ============================================================================

// CryptoKeyType enumerates key kinds.
type CryptoKeyType int32

const (
	CryptoKeyTypeEd25519              CryptoKeyType = 0
	CryptoKeyTypePreAuthTx            CryptoKeyType = 1
	CryptoKeyTypeHashX                CryptoKeyType = 2
	CryptoKeyTypeEd25519SignedPayload CryptoKeyType = 3
	CryptoKeyTypeMuxedEd25519         CryptoKeyType = 0x100
)

var cryptoKeyTypeNames = map[CryptoKeyType]string{
	CryptoKeyTypeEd25519:              "KEY_TYPE_ED25519",
	CryptoKeyTypePreAuthTx:            "KEY_TYPE_PRE_AUTH_TX",
	CryptoKeyTypeHashX:                "KEY_TYPE_HASH_X",
	CryptoKeyTypeEd25519SignedPayload: "KEY_TYPE_ED25519_SIGNED_PAYLOAD",
	CryptoKeyTypeMuxedEd25519:         "KEY_TYPE_MUXED_ED25519",
}

func (t CryptoKeyType) String() string { return enumString(cryptoKeyTypeNames, t, "CryptoKeyType") }

// MarshalText renders the protocol name of t.
func (t CryptoKeyType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IsKnown reports whether t is a value defined by the protocol.
func (t CryptoKeyType) IsKnown() bool {
	_, ok := cryptoKeyTypeNames[t]
	return ok
}

// PublicKeyType enumerates public key kinds.
type PublicKeyType int32

const (
	PublicKeyTypeEd25519 PublicKeyType = 0
)

var publicKeyTypeNames = map[PublicKeyType]string{
	PublicKeyTypeEd25519: "PUBLIC_KEY_TYPE_ED25519",
}

func (t PublicKeyType) String() string { return enumString(publicKeyTypeNames, t, "PublicKeyType") }

// MarshalText renders the protocol name of t.
func (t PublicKeyType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IsKnown reports whether t is a value defined by the protocol.
func (t PublicKeyType) IsKnown() bool {
	_, ok := publicKeyTypeNames[t]
	return ok
}

// SignerKeyType enumerates signer kinds.
type SignerKeyType int32

const (
	SignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

var signerKeyTypeNames = map[SignerKeyType]string{
	SignerKeyTypeEd25519:              "SIGNER_KEY_TYPE_ED25519",
	SignerKeyTypePreAuthTx:            "SIGNER_KEY_TYPE_PRE_AUTH_TX",
	SignerKeyTypeHashX:                "SIGNER_KEY_TYPE_HASH_X",
	SignerKeyTypeEd25519SignedPayload: "SIGNER_KEY_TYPE_ED25519_SIGNED_PAYLOAD",
}

func (t SignerKeyType) String() string { return enumString(signerKeyTypeNames, t, "SignerKeyType") }

// MarshalText renders the protocol name of t.
func (t SignerKeyType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// IsKnown reports whether t is a value defined by the protocol.
func (t SignerKeyType) IsKnown() bool {
	_, ok := signerKeyTypeNames[t]
	return ok
}

// PublicKey is a typed public key.
//
//	union PublicKey switch (PublicKeyType type) {
//	case PUBLIC_KEY_TYPE_ED25519:
//	    uint256 ed25519;
//	};
type PublicKey struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

// AccountID identifies an account by its master public key.
type AccountID = PublicKey

// NodeID identifies a validator.
type NodeID = PublicKey

// NewAccountID returns an Ed25519 AccountID for a raw 32-byte key.
func NewAccountID(key [32]byte) AccountID {
	k := Uint256(key)
	return PublicKey{Type: PublicKeyTypeEd25519, Ed25519: &k}
}

// Clone returns a copy that shares no memory with k.
func (k PublicKey) Clone() PublicKey {
	if k.Ed25519 != nil {
		key := *k.Ed25519
		k.Ed25519 = &key
	}
	return k
}

// Encode writes the public key union.
func (k *PublicKey) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, k.Type)
	switch k.Type {
	case PublicKeyTypeEd25519:
		return xdr.EncodeArm(buf, k.Ed25519, "PublicKey", k.Type)
	}
	return nil
}

// Decode reads the public key union.
func (k *PublicKey) Decode(c *xdr.Cursor) error {
	*k = PublicKey{}
	var err error
	if k.Type, err = xdr.DecodeUnionDiscriminant[PublicKeyType](c); err != nil {
		return fmt.Errorf("decode public key type: %w", err)
	}
	switch k.Type {
	case PublicKeyTypeEd25519:
		k.Ed25519, err = xdr.DecodeArm[Uint256](c)
	}
	if err != nil {
		return fmt.Errorf("decode public key %s: %w", k.Type, err)
	}
	return nil
}

// String returns a short form for logs.
func (k PublicKey) String() string {
	if k.Type == PublicKeyTypeEd25519 && k.Ed25519 != nil {
		return "ed25519:" + k.Ed25519.String()
	}
	return k.Type.String()
}

// Equal reports whether two public keys are identical.
func (k PublicKey) Equal(o PublicKey) bool {
	if k.Type != o.Type {
		return false
	}
	if k.Ed25519 == nil || o.Ed25519 == nil {
		return k.Ed25519 == o.Ed25519
	}
	return *k.Ed25519 == *o.Ed25519
}

// SignerKeyEd25519SignedPayload is a signer bound to a specific payload.
//
//	struct {
//	    uint256 ed25519;
//	    opaque payload<64>;
//	} ed25519SignedPayload;
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

// Encode writes the signed-payload signer.
func (p *SignerKeyEd25519SignedPayload) Encode(buf *bytes.Buffer) error {
	_ = p.Ed25519.Encode(buf)
	xdr.WriteOpaque(buf, p.Payload)
	return nil
}

// Decode reads the signed-payload signer.
func (p *SignerKeyEd25519SignedPayload) Decode(c *xdr.Cursor) error {
	if err := p.Ed25519.Decode(c); err != nil {
		return fmt.Errorf("decode signed payload key: %w", err)
	}
	var err error
	if p.Payload, err = xdr.DecodeOpaque(c); err != nil {
		return fmt.Errorf("decode signed payload: %w", err)
	}
	return nil
}

// SignerKey identifies a signer of any kind.
//
//	union SignerKey switch (SignerKeyType type) {
//	case SIGNER_KEY_TYPE_ED25519:           uint256 ed25519;
//	case SIGNER_KEY_TYPE_PRE_AUTH_TX:       uint256 preAuthTx;
//	case SIGNER_KEY_TYPE_HASH_X:            uint256 hashX;
//	case SIGNER_KEY_TYPE_ED25519_SIGNED_PAYLOAD:
//	    struct { uint256 ed25519; opaque payload<64>; } ed25519SignedPayload;
//	};
type SignerKey struct {
	Type                 SignerKeyType
	Ed25519              *Uint256
	PreAuthTx            *Uint256
	HashX                *Uint256
	Ed25519SignedPayload *SignerKeyEd25519SignedPayload
}

// Encode writes the signer key union.
func (k *SignerKey) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, k.Type)
	switch k.Type {
	case SignerKeyTypeEd25519:
		return xdr.EncodeArm(buf, k.Ed25519, "SignerKey", k.Type)
	case SignerKeyTypePreAuthTx:
		return xdr.EncodeArm(buf, k.PreAuthTx, "SignerKey", k.Type)
	case SignerKeyTypeHashX:
		return xdr.EncodeArm(buf, k.HashX, "SignerKey", k.Type)
	case SignerKeyTypeEd25519SignedPayload:
		return xdr.EncodeArm(buf, k.Ed25519SignedPayload, "SignerKey", k.Type)
	}
	return nil
}

// Decode reads the signer key union.
func (k *SignerKey) Decode(c *xdr.Cursor) error {
	*k = SignerKey{}
	var err error
	if k.Type, err = xdr.DecodeUnionDiscriminant[SignerKeyType](c); err != nil {
		return fmt.Errorf("decode signer key type: %w", err)
	}
	switch k.Type {
	case SignerKeyTypeEd25519:
		k.Ed25519, err = xdr.DecodeArm[Uint256](c)
	case SignerKeyTypePreAuthTx:
		k.PreAuthTx, err = xdr.DecodeArm[Uint256](c)
	case SignerKeyTypeHashX:
		k.HashX, err = xdr.DecodeArm[Uint256](c)
	case SignerKeyTypeEd25519SignedPayload:
		k.Ed25519SignedPayload, err = xdr.DecodeArm[SignerKeyEd25519SignedPayload](c)
	}
	if err != nil {
		return fmt.Errorf("decode signer key %s: %w", k.Type, err)
	}
	return nil
}

// DecoratedSignature pairs a signature with its key hint.
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature
}

// Encode writes the decorated signature.
func (s *DecoratedSignature) Encode(buf *bytes.Buffer) error {
	_ = s.Hint.Encode(buf)
	return s.Signature.Encode(buf)
}

// Decode reads the decorated signature.
func (s *DecoratedSignature) Decode(c *xdr.Cursor) error {
	if err := s.Hint.Decode(c); err != nil {
		return fmt.Errorf("decode signature hint: %w", err)
	}
	if err := s.Signature.Decode(c); err != nil {
		return fmt.Errorf("decode signature: %w", err)
	}
	return nil
}

// ============================================================================
// MuxedAccount
// ============================================================================

// MuxedAccountMed25519 is a multiplexed Ed25519 account.
//
//	struct {
//	    uint64 id;
//	    uint256 ed25519;
//	} med25519;
type MuxedAccountMed25519 struct {
	ID      uint64
	Ed25519 Uint256
}

// Encode writes the muxed account body.
func (m *MuxedAccountMed25519) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint64(buf, m.ID)
	return m.Ed25519.Encode(buf)
}

// Decode reads the muxed account body.
func (m *MuxedAccountMed25519) Decode(c *xdr.Cursor) error {
	var err error
	if m.ID, err = xdr.DecodeUint64(c); err != nil {
		return fmt.Errorf("decode muxed id: %w", err)
	}
	if err := m.Ed25519.Decode(c); err != nil {
		return fmt.Errorf("decode muxed key: %w", err)
	}
	return nil
}

// MuxedAccount is an account optionally multiplexed with a 64-bit id.
//
//	union MuxedAccount switch (CryptoKeyType type) {
//	case KEY_TYPE_ED25519:
//	    uint256 ed25519;
//	case KEY_TYPE_MUXED_ED25519:
//	    struct { uint64 id; uint256 ed25519; } med25519;
//	};
type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  *Uint256
	Med25519 *MuxedAccountMed25519
}

// NewMuxedAccount returns a plain (unmultiplexed) MuxedAccount.
func NewMuxedAccount(key [32]byte) MuxedAccount {
	k := Uint256(key)
	return MuxedAccount{Type: CryptoKeyTypeEd25519, Ed25519: &k}
}

// NewMuxedAccountWithID returns a multiplexed account.
func NewMuxedAccountWithID(key [32]byte, id uint64) MuxedAccount {
	return MuxedAccount{
		Type:     CryptoKeyTypeMuxedEd25519,
		Med25519: &MuxedAccountMed25519{ID: id, Ed25519: Uint256(key)},
	}
}

// Encode writes the muxed account union.
func (m *MuxedAccount) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, m.Type)
	switch m.Type {
	case CryptoKeyTypeEd25519:
		return xdr.EncodeArm(buf, m.Ed25519, "MuxedAccount", m.Type)
	case CryptoKeyTypeMuxedEd25519:
		return xdr.EncodeArm(buf, m.Med25519, "MuxedAccount", m.Type)
	}
	return nil
}

// Decode reads the muxed account union.
func (m *MuxedAccount) Decode(c *xdr.Cursor) error {
	*m = MuxedAccount{}
	var err error
	if m.Type, err = xdr.DecodeUnionDiscriminant[CryptoKeyType](c); err != nil {
		return fmt.Errorf("decode muxed account type: %w", err)
	}
	switch m.Type {
	case CryptoKeyTypeEd25519:
		m.Ed25519, err = xdr.DecodeArm[Uint256](c)
	case CryptoKeyTypeMuxedEd25519:
		m.Med25519, err = xdr.DecodeArm[MuxedAccountMed25519](c)
	}
	if err != nil {
		return fmt.Errorf("decode muxed account %s: %w", m.Type, err)
	}
	return nil
}

// AccountID returns the underlying account, dropping any multiplexing id.
func (m MuxedAccount) AccountID() (AccountID, error) {
	switch {
	case m.Type == CryptoKeyTypeEd25519 && m.Ed25519 != nil:
		return NewAccountID(*m.Ed25519), nil
	case m.Type == CryptoKeyTypeMuxedEd25519 && m.Med25519 != nil:
		return NewAccountID(m.Med25519.Ed25519), nil
	}
	return AccountID{}, xdr.UnionArmError("MuxedAccount", m.Type)
}
