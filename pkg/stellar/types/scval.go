package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// SCValType selects the kind of a contract value.
type SCValType int32

const (
	SCValTypeBool                      SCValType = 0
	SCValTypeVoid                      SCValType = 1
	SCValTypeError                     SCValType = 2
	SCValTypeU32                       SCValType = 3
	SCValTypeI32                       SCValType = 4
	SCValTypeU64                       SCValType = 5
	SCValTypeI64                       SCValType = 6
	SCValTypeTimepoint                 SCValType = 7
	SCValTypeDuration                  SCValType = 8
	SCValTypeU128                      SCValType = 9
	SCValTypeI128                      SCValType = 10
	SCValTypeU256                      SCValType = 11
	SCValTypeI256                      SCValType = 12
	SCValTypeBytes                     SCValType = 13
	SCValTypeString                    SCValType = 14
	SCValTypeSymbol                    SCValType = 15
	SCValTypeVec                       SCValType = 16
	SCValTypeMap                       SCValType = 17
	SCValTypeAddress                   SCValType = 18
	SCValTypeContractInstance          SCValType = 19
	SCValTypeLedgerKeyContractInstance SCValType = 20
	SCValTypeLedgerKeyNonce            SCValType = 21
)

var sCValTypeNames = map[SCValType]string{
	SCValTypeBool:                      "SCV_BOOL",
	SCValTypeVoid:                      "SCV_VOID",
	SCValTypeError:                     "SCV_ERROR",
	SCValTypeU32:                       "SCV_U32",
	SCValTypeI32:                       "SCV_I32",
	SCValTypeU64:                       "SCV_U64",
	SCValTypeI64:                       "SCV_I64",
	SCValTypeTimepoint:                 "SCV_TIMEPOINT",
	SCValTypeDuration:                  "SCV_DURATION",
	SCValTypeU128:                      "SCV_U128",
	SCValTypeI128:                      "SCV_I128",
	SCValTypeU256:                      "SCV_U256",
	SCValTypeI256:                      "SCV_I256",
	SCValTypeBytes:                     "SCV_BYTES",
	SCValTypeString:                    "SCV_STRING",
	SCValTypeSymbol:                    "SCV_SYMBOL",
	SCValTypeVec:                       "SCV_VEC",
	SCValTypeMap:                       "SCV_MAP",
	SCValTypeAddress:                   "SCV_ADDRESS",
	SCValTypeContractInstance:          "SCV_CONTRACT_INSTANCE",
	SCValTypeLedgerKeyContractInstance: "SCV_LEDGER_KEY_CONTRACT_INSTANCE",
	SCValTypeLedgerKeyNonce:            "SCV_LEDGER_KEY_NONCE",
}

func (v SCValType) String() string { return enumString(sCValTypeNames, v, "SCValType") }

// MarshalText renders the protocol name of v.
func (v SCValType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCValType) IsKnown() bool {
	_, ok := sCValTypeNames[v]
	return ok
}

// SCErrorType enumerates sc error type values.
type SCErrorType int32

const (
	SCErrorTypeContract SCErrorType = 0
	SCErrorTypeWasmVm   SCErrorType = 1
	SCErrorTypeContext  SCErrorType = 2
	SCErrorTypeStorage  SCErrorType = 3
	SCErrorTypeObject   SCErrorType = 4
	SCErrorTypeCrypto   SCErrorType = 5
	SCErrorTypeEvents   SCErrorType = 6
	SCErrorTypeBudget   SCErrorType = 7
	SCErrorTypeValue    SCErrorType = 8
	SCErrorTypeAuth     SCErrorType = 9
)

var sCErrorTypeNames = map[SCErrorType]string{
	SCErrorTypeContract: "SCE_CONTRACT",
	SCErrorTypeWasmVm:   "SCE_WASM_VM",
	SCErrorTypeContext:  "SCE_CONTEXT",
	SCErrorTypeStorage:  "SCE_STORAGE",
	SCErrorTypeObject:   "SCE_OBJECT",
	SCErrorTypeCrypto:   "SCE_CRYPTO",
	SCErrorTypeEvents:   "SCE_EVENTS",
	SCErrorTypeBudget:   "SCE_BUDGET",
	SCErrorTypeValue:    "SCE_VALUE",
	SCErrorTypeAuth:     "SCE_AUTH",
}

func (v SCErrorType) String() string { return enumString(sCErrorTypeNames, v, "SCErrorType") }

// MarshalText renders the protocol name of v.
func (v SCErrorType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCErrorType) IsKnown() bool {
	_, ok := sCErrorTypeNames[v]
	return ok
}

// SCErrorCode enumerates sc error code values.
type SCErrorCode int32

const (
	SCErrorCodeArithDomain    SCErrorCode = 0
	SCErrorCodeIndexBounds    SCErrorCode = 1
	SCErrorCodeInvalidInput   SCErrorCode = 2
	SCErrorCodeMissingValue   SCErrorCode = 3
	SCErrorCodeExistingValue  SCErrorCode = 4
	SCErrorCodeExceededLimit  SCErrorCode = 5
	SCErrorCodeInvalidAction  SCErrorCode = 6
	SCErrorCodeInternalError  SCErrorCode = 7
	SCErrorCodeUnexpectedType SCErrorCode = 8
	SCErrorCodeUnexpectedSize SCErrorCode = 9
)

var sCErrorCodeNames = map[SCErrorCode]string{
	SCErrorCodeArithDomain:    "SCEC_ARITH_DOMAIN",
	SCErrorCodeIndexBounds:    "SCEC_INDEX_BOUNDS",
	SCErrorCodeInvalidInput:   "SCEC_INVALID_INPUT",
	SCErrorCodeMissingValue:   "SCEC_MISSING_VALUE",
	SCErrorCodeExistingValue:  "SCEC_EXISTING_VALUE",
	SCErrorCodeExceededLimit:  "SCEC_EXCEEDED_LIMIT",
	SCErrorCodeInvalidAction:  "SCEC_INVALID_ACTION",
	SCErrorCodeInternalError:  "SCEC_INTERNAL_ERROR",
	SCErrorCodeUnexpectedType: "SCEC_UNEXPECTED_TYPE",
	SCErrorCodeUnexpectedSize: "SCEC_UNEXPECTED_SIZE",
}

func (v SCErrorCode) String() string { return enumString(sCErrorCodeNames, v, "SCErrorCode") }

// MarshalText renders the protocol name of v.
func (v SCErrorCode) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCErrorCode) IsKnown() bool {
	_, ok := sCErrorCodeNames[v]
	return ok
}

// SCError is an error raised by a contract or the host.
type SCError struct {
	Type         SCErrorType
	ContractCode *uint32
	Code         *SCErrorCode
}

// Encode writes an SCError in XDR format.
func (sce *SCError) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, sce.Type)
	switch sce.Type {
	case SCErrorTypeContract:
		return xdr.EncodeArmFunc(buf, sce.ContractCode, xdr.WriteUint32, "SCError", sce.Type)
	case SCErrorTypeWasmVm, SCErrorTypeContext, SCErrorTypeStorage, SCErrorTypeObject, SCErrorTypeCrypto, SCErrorTypeEvents, SCErrorTypeBudget, SCErrorTypeValue, SCErrorTypeAuth:
		return xdr.EncodeArmFunc(buf, sce.Code, xdr.WriteEnum[SCErrorCode], "SCError", sce.Type)
	}
	return nil
}

// Decode reads an SCError from XDR format.
func (sce *SCError) Decode(c *xdr.Cursor) error {
	*sce = SCError{}
	var err error
	if sce.Type, err = xdr.DecodeUnionDiscriminant[SCErrorType](c); err != nil {
		return fmt.Errorf("decode sc error type: %w", err)
	}
	switch sce.Type {
	case SCErrorTypeContract:
		sce.ContractCode, err = xdr.DecodeArmFunc(c, xdr.DecodeUint32)
	case SCErrorTypeWasmVm, SCErrorTypeContext, SCErrorTypeStorage, SCErrorTypeObject, SCErrorTypeCrypto, SCErrorTypeEvents, SCErrorTypeBudget, SCErrorTypeValue, SCErrorTypeAuth:
		sce.Code, err = xdr.DecodeArmFunc(c, xdr.DecodeEnum[SCErrorCode])
	}
	if err != nil {
		return fmt.Errorf("decode sc error %v: %w", sce.Type, err)
	}
	return nil
}

// ContractExecutableType enumerates contract executable type values.
type ContractExecutableType int32

const (
	ContractExecutableTypeWasm         ContractExecutableType = 0
	ContractExecutableTypeStellarAsset ContractExecutableType = 1
)

var contractExecutableTypeNames = map[ContractExecutableType]string{
	ContractExecutableTypeWasm:         "CONTRACT_EXECUTABLE_WASM",
	ContractExecutableTypeStellarAsset: "CONTRACT_EXECUTABLE_STELLAR_ASSET",
}

func (v ContractExecutableType) String() string { return enumString(contractExecutableTypeNames, v, "ContractExecutableType") }

// MarshalText renders the protocol name of v.
func (v ContractExecutableType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ContractExecutableType) IsKnown() bool {
	_, ok := contractExecutableTypeNames[v]
	return ok
}

// ContractExecutable is the code behind a contract instance.
type ContractExecutable struct {
	Type     ContractExecutableType
	WasmHash *Hash
}

// Encode writes a ContractExecutable in XDR format.
func (ce *ContractExecutable) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, ce.Type)
	switch ce.Type {
	case ContractExecutableTypeWasm:
		return xdr.EncodeArm(buf, ce.WasmHash, "ContractExecutable", ce.Type)
	}
	return nil
}

// Decode reads a ContractExecutable from XDR format.
func (ce *ContractExecutable) Decode(c *xdr.Cursor) error {
	*ce = ContractExecutable{}
	var err error
	if ce.Type, err = xdr.DecodeUnionDiscriminant[ContractExecutableType](c); err != nil {
		return fmt.Errorf("decode contract executable type: %w", err)
	}
	switch ce.Type {
	case ContractExecutableTypeWasm:
		ce.WasmHash, err = xdr.DecodeArm[Hash](c)
	}
	if err != nil {
		return fmt.Errorf("decode contract executable %v: %w", ce.Type, err)
	}
	return nil
}

// SCBytes is an opaque contract value.
type SCBytes []byte

// Encode writes the bytes as variable opaque.
func (b *SCBytes) Encode(buf *bytes.Buffer) error {
	xdr.WriteOpaque(buf, *b)
	return nil
}

// Decode reads the bytes.
func (b *SCBytes) Decode(c *xdr.Cursor) error {
	v, err := xdr.DecodeOpaque(c)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// SCString is a contract string. It need not be valid UTF-8.
type SCString string

// Encode writes the string.
func (s *SCString) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, string(*s))
	return nil
}

// Decode reads the string.
func (s *SCString) Decode(c *xdr.Cursor) error {
	v, err := xdr.DecodeString(c)
	if err != nil {
		return err
	}
	*s = SCString(v)
	return nil
}

// SCSymbol is a contract identifier of at most 32 characters.
//
//	typedef string SCSymbol<SCSYMBOL_LIMIT>;
type SCSymbol string

// SCSymbolLimit is the maximum length of an SCSymbol.
const SCSymbolLimit = 32

// Encode writes the symbol.
func (s *SCSymbol) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, string(*s))
	return nil
}

// Decode reads the symbol.
func (s *SCSymbol) Decode(c *xdr.Cursor) error {
	v, err := xdr.DecodeString(c)
	if err != nil {
		return err
	}
	*s = SCSymbol(v)
	return nil
}

// SCVec is a list of contract values.
type SCVec []SCVal

// Encode writes an SCVec in XDR format.
func (scv *SCVec) Encode(buf *bytes.Buffer) error {
	return xdr.EncodeArray(buf, []SCVal(*scv))
}

// Decode reads an SCVec from XDR format.
func (scv *SCVec) Decode(c *xdr.Cursor) error {
	items, err := xdr.DecodeArray[SCVal](c)
	if err != nil {
		return fmt.Errorf("decode sc vec: %w", err)
	}
	*scv = items
	return nil
}

// SCMap is an ordered list of key/value pairs.
type SCMap []SCMapEntry

// Encode writes an SCMap in XDR format.
func (scm *SCMap) Encode(buf *bytes.Buffer) error {
	return xdr.EncodeArray(buf, []SCMapEntry(*scm))
}

// Decode reads an SCMap from XDR format.
func (scm *SCMap) Decode(c *xdr.Cursor) error {
	items, err := xdr.DecodeArray[SCMapEntry](c)
	if err != nil {
		return fmt.Errorf("decode sc map: %w", err)
	}
	*scm = items
	return nil
}

// SCMapEntry is one key/value pair of an SCMap.
type SCMapEntry struct {
	Key SCVal
	Val SCVal
}

// Encode writes an SCMapEntry in XDR format.
func (scm *SCMapEntry) Encode(buf *bytes.Buffer) error {
	if err := scm.Key.Encode(buf); err != nil {
		return fmt.Errorf("encode sc map entry key: %w", err)
	}
	if err := scm.Val.Encode(buf); err != nil {
		return fmt.Errorf("encode sc map entry val: %w", err)
	}
	return nil
}

// Decode reads an SCMapEntry from XDR format.
func (scm *SCMapEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = scm.Key.Decode(c); err != nil {
		return fmt.Errorf("decode sc map entry key: %w", err)
	}
	if err = scm.Val.Decode(c); err != nil {
		return fmt.Errorf("decode sc map entry val: %w", err)
	}
	return nil
}

// SCNonceKey is the ledger key of an authorization nonce.
type SCNonceKey struct {
	Nonce int64
}

// Encode writes an SCNonceKey in XDR format.
func (scn *SCNonceKey) Encode(buf *bytes.Buffer) error {
	xdr.WriteInt64(buf, scn.Nonce)
	return nil
}

// Decode reads an SCNonceKey from XDR format.
func (scn *SCNonceKey) Decode(c *xdr.Cursor) error {
	var err error
	if scn.Nonce, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode sc nonce key nonce: %w", err)
	}
	return nil
}

// SCContractInstance is the instance storage of a contract.
type SCContractInstance struct {
	Executable ContractExecutable
	Storage    *SCMap
}

// Encode writes an SCContractInstance in XDR format.
func (scc *SCContractInstance) Encode(buf *bytes.Buffer) error {
	if err := scc.Executable.Encode(buf); err != nil {
		return fmt.Errorf("encode sc contract instance executable: %w", err)
	}
	if err := xdr.EncodeOptional(buf, scc.Storage); err != nil {
		return fmt.Errorf("encode sc contract instance storage: %w", err)
	}
	return nil
}

// Decode reads an SCContractInstance from XDR format.
func (scc *SCContractInstance) Decode(c *xdr.Cursor) error {
	var err error
	if err = scc.Executable.Decode(c); err != nil {
		return fmt.Errorf("decode sc contract instance executable: %w", err)
	}
	if scc.Storage, err = xdr.DecodeOptional[SCMap](c); err != nil {
		return fmt.Errorf("decode sc contract instance storage: %w", err)
	}
	return nil
}

// SCVal is the tagged value type of the Soroban smart contract layer.
//
//	union SCVal switch (SCValType type) {
//	case SCV_BOOL:
//	    bool b;
//	case SCV_VOID:
//	    void;
//	case SCV_ERROR:
//	    SCError error;
//	...
//	case SCV_VEC:
//	    SCVec *vec;
//	case SCV_MAP:
//	    SCMap *map;
//	...
//	};
//
// Vec and Map are optional on the wire. With Type SCV_VEC or SCV_MAP a nil
// Vec or Map encodes an absent value, which is distinct from an empty one.
type SCVal struct {
	Type      SCValType
	B         *bool
	Error     *SCError
	U32       *uint32
	I32       *int32
	U64       *uint64
	I64       *int64
	Timepoint *TimePoint
	Duration  *Duration
	U128      *xdr.UInt128Parts
	I128      *xdr.Int128Parts
	U256      *xdr.UInt256Parts
	I256      *xdr.Int256Parts
	Bytes     *SCBytes
	Str       *SCString
	Sym       *SCSymbol
	Vec       *SCVec
	Map       *SCMap
	Address   *SCAddress
	Instance  *SCContractInstance
	NonceKey  *SCNonceKey
}

// Encode writes an SCVal in XDR format.
func (v *SCVal) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, v.Type)
	switch v.Type {
	case SCValTypeBool:
		return xdr.EncodeArmFunc(buf, v.B, xdr.WriteBool, "SCVal", v.Type)
	case SCValTypeError:
		return xdr.EncodeArm(buf, v.Error, "SCVal", v.Type)
	case SCValTypeU32:
		return xdr.EncodeArmFunc(buf, v.U32, xdr.WriteUint32, "SCVal", v.Type)
	case SCValTypeI32:
		return xdr.EncodeArmFunc(buf, v.I32, xdr.WriteInt32, "SCVal", v.Type)
	case SCValTypeU64:
		return xdr.EncodeArmFunc(buf, v.U64, xdr.WriteUint64, "SCVal", v.Type)
	case SCValTypeI64:
		return xdr.EncodeArmFunc(buf, v.I64, xdr.WriteInt64, "SCVal", v.Type)
	case SCValTypeTimepoint:
		return xdr.EncodeArmFunc(buf, v.Timepoint, xdr.WriteUint64, "SCVal", v.Type)
	case SCValTypeDuration:
		return xdr.EncodeArmFunc(buf, v.Duration, xdr.WriteUint64, "SCVal", v.Type)
	case SCValTypeU128:
		return xdr.EncodeArm(buf, v.U128, "SCVal", v.Type)
	case SCValTypeI128:
		return xdr.EncodeArm(buf, v.I128, "SCVal", v.Type)
	case SCValTypeU256:
		return xdr.EncodeArm(buf, v.U256, "SCVal", v.Type)
	case SCValTypeI256:
		return xdr.EncodeArm(buf, v.I256, "SCVal", v.Type)
	case SCValTypeBytes:
		return xdr.EncodeArm(buf, v.Bytes, "SCVal", v.Type)
	case SCValTypeString:
		return xdr.EncodeArm(buf, v.Str, "SCVal", v.Type)
	case SCValTypeSymbol:
		return xdr.EncodeArm(buf, v.Sym, "SCVal", v.Type)
	case SCValTypeVec:
		return xdr.EncodeOptional(buf, v.Vec)
	case SCValTypeMap:
		return xdr.EncodeOptional(buf, v.Map)
	case SCValTypeAddress:
		return xdr.EncodeArm(buf, v.Address, "SCVal", v.Type)
	case SCValTypeContractInstance:
		return xdr.EncodeArm(buf, v.Instance, "SCVal", v.Type)
	case SCValTypeLedgerKeyNonce:
		return xdr.EncodeArm(buf, v.NonceKey, "SCVal", v.Type)
	}
	return nil
}

// Decode reads an SCVal from XDR format.
func (v *SCVal) Decode(c *xdr.Cursor) error {
	*v = SCVal{}
	var err error
	if v.Type, err = xdr.DecodeUnionDiscriminant[SCValType](c); err != nil {
		return fmt.Errorf("decode sc val type: %w", err)
	}
	switch v.Type {
	case SCValTypeBool:
		v.B, err = xdr.DecodeArmFunc(c, xdr.DecodeBool)
	case SCValTypeError:
		v.Error, err = xdr.DecodeArm[SCError](c)
	case SCValTypeU32:
		v.U32, err = xdr.DecodeArmFunc(c, xdr.DecodeUint32)
	case SCValTypeI32:
		v.I32, err = xdr.DecodeArmFunc(c, xdr.DecodeInt32)
	case SCValTypeU64:
		v.U64, err = xdr.DecodeArmFunc(c, xdr.DecodeUint64)
	case SCValTypeI64:
		v.I64, err = xdr.DecodeArmFunc(c, xdr.DecodeInt64)
	case SCValTypeTimepoint:
		v.Timepoint, err = xdr.DecodeArmFunc(c, xdr.DecodeUint64)
	case SCValTypeDuration:
		v.Duration, err = xdr.DecodeArmFunc(c, xdr.DecodeUint64)
	case SCValTypeU128:
		v.U128, err = xdr.DecodeArm[xdr.UInt128Parts](c)
	case SCValTypeI128:
		v.I128, err = xdr.DecodeArm[xdr.Int128Parts](c)
	case SCValTypeU256:
		v.U256, err = xdr.DecodeArm[xdr.UInt256Parts](c)
	case SCValTypeI256:
		v.I256, err = xdr.DecodeArm[xdr.Int256Parts](c)
	case SCValTypeBytes:
		v.Bytes, err = xdr.DecodeArm[SCBytes](c)
	case SCValTypeString:
		v.Str, err = xdr.DecodeArm[SCString](c)
	case SCValTypeSymbol:
		v.Sym, err = xdr.DecodeArm[SCSymbol](c)
	case SCValTypeVec:
		v.Vec, err = xdr.DecodeOptional[SCVec](c)
	case SCValTypeMap:
		v.Map, err = xdr.DecodeOptional[SCMap](c)
	case SCValTypeAddress:
		v.Address, err = xdr.DecodeArm[SCAddress](c)
	case SCValTypeContractInstance:
		v.Instance, err = xdr.DecodeArm[SCContractInstance](c)
	case SCValTypeLedgerKeyNonce:
		v.NonceKey, err = xdr.DecodeArm[SCNonceKey](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc val %v: %w", v.Type, err)
	}
	return nil
}

// NewSCValBool wraps a bool.
func NewSCValBool(b bool) SCVal { return SCVal{Type: SCValTypeBool, B: &b} }

// NewSCValVoid returns the void value.
func NewSCValVoid() SCVal { return SCVal{Type: SCValTypeVoid} }

// NewSCValU32 wraps a uint32.
func NewSCValU32(n uint32) SCVal { return SCVal{Type: SCValTypeU32, U32: &n} }

// NewSCValI32 wraps an int32.
func NewSCValI32(n int32) SCVal { return SCVal{Type: SCValTypeI32, I32: &n} }

// NewSCValU64 wraps a uint64.
func NewSCValU64(n uint64) SCVal { return SCVal{Type: SCValTypeU64, U64: &n} }

// NewSCValI64 wraps an int64.
func NewSCValI64(n int64) SCVal { return SCVal{Type: SCValTypeI64, I64: &n} }

// NewSCValTimepoint wraps a UNIX timestamp.
func NewSCValTimepoint(t TimePoint) SCVal { return SCVal{Type: SCValTypeTimepoint, Timepoint: &t} }

// NewSCValDuration wraps a duration in seconds.
func NewSCValDuration(d Duration) SCVal { return SCVal{Type: SCValTypeDuration, Duration: &d} }

// NewSCValU128 wraps 128-bit unsigned parts.
func NewSCValU128(p xdr.UInt128Parts) SCVal { return SCVal{Type: SCValTypeU128, U128: &p} }

// NewSCValI128 wraps 128-bit signed parts.
func NewSCValI128(p xdr.Int128Parts) SCVal { return SCVal{Type: SCValTypeI128, I128: &p} }

// NewSCValU256 wraps 256-bit unsigned parts.
func NewSCValU256(p xdr.UInt256Parts) SCVal { return SCVal{Type: SCValTypeU256, U256: &p} }

// NewSCValI256 wraps 256-bit signed parts.
func NewSCValI256(p xdr.Int256Parts) SCVal { return SCVal{Type: SCValTypeI256, I256: &p} }

// NewSCValBytes wraps opaque bytes.
func NewSCValBytes(b []byte) SCVal {
	v := append(SCBytes{}, b...)
	return SCVal{Type: SCValTypeBytes, Bytes: &v}
}

// NewSCValString wraps a string.
func NewSCValString(s string) SCVal {
	v := SCString(s)
	return SCVal{Type: SCValTypeString, Str: &v}
}

// NewSCValSymbol wraps a symbol. Symbols longer than 32 bytes are rejected.
func NewSCValSymbol(s string) (SCVal, error) {
	if len(s) > SCSymbolLimit {
		return SCVal{}, xdr.NewError(xdr.ErrInvalidValue, "symbol %q longer than %d bytes", s, SCSymbolLimit)
	}
	v := SCSymbol(s)
	return SCVal{Type: SCValTypeSymbol, Sym: &v}, nil
}

// NewSCValVec wraps a copy of a list. A nil list still produces a present,
// empty vector.
func NewSCValVec(items ...SCVal) SCVal {
	v := append(SCVec{}, items...)
	return SCVal{Type: SCValTypeVec, Vec: &v}
}

// NewSCValMap wraps a copy of a map's entries.
func NewSCValMap(entries ...SCMapEntry) SCVal {
	m := append(SCMap{}, entries...)
	return SCVal{Type: SCValTypeMap, Map: &m}
}

// NewSCValAddress wraps an address.
func NewSCValAddress(a SCAddress) SCVal { return SCVal{Type: SCValTypeAddress, Address: &a} }

// NewSCValLedgerKeyContractInstance returns the instance storage key.
func NewSCValLedgerKeyContractInstance() SCVal {
	return SCVal{Type: SCValTypeLedgerKeyContractInstance}
}

// NewSCValU128FromString parses a decimal string into a u128 value.
func NewSCValU128FromString(s string) (SCVal, error) {
	p, err := xdr.ParseUInt128(s)
	if err != nil {
		return SCVal{}, err
	}
	return NewSCValU128(p), nil
}

// NewSCValI128FromString parses a decimal string into an i128 value.
func NewSCValI128FromString(s string) (SCVal, error) {
	p, err := xdr.ParseInt128(s)
	if err != nil {
		return SCVal{}, err
	}
	return NewSCValI128(p), nil
}

// NewSCValU256FromString parses a decimal string into a u256 value.
func NewSCValU256FromString(s string) (SCVal, error) {
	p, err := xdr.ParseUInt256(s)
	if err != nil {
		return SCVal{}, err
	}
	return NewSCValU256(p), nil
}

// NewSCValI256FromString parses a decimal string into an i256 value.
func NewSCValI256FromString(s string) (SCVal, error) {
	p, err := xdr.ParseInt256(s)
	if err != nil {
		return SCVal{}, err
	}
	return NewSCValI256(p), nil
}

// BigString renders a wide integer value in decimal. It reports false for
// any other kind of value.
func (v SCVal) BigString() (string, bool) {
	switch {
	case v.Type == SCValTypeU128 && v.U128 != nil:
		return v.U128.String(), true
	case v.Type == SCValTypeI128 && v.I128 != nil:
		return v.I128.String(), true
	case v.Type == SCValTypeU256 && v.U256 != nil:
		return v.U256.String(), true
	case v.Type == SCValTypeI256 && v.I256 != nil:
		return v.I256.String(), true
	}
	return "", false
}
