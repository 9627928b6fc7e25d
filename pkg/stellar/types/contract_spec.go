package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// SCSpecDocLimit is the maximum length of a doc string in a contract spec.
const SCSpecDocLimit = 1024

// SCSpecType is the kind of a type in a contract interface.
type SCSpecType int32

const (
	SpecTypeVal          SCSpecType = 0
	SpecTypeBool         SCSpecType = 1
	SpecTypeVoid         SCSpecType = 2
	SpecTypeError        SCSpecType = 3
	SpecTypeU32          SCSpecType = 4
	SpecTypeI32          SCSpecType = 5
	SpecTypeU64          SCSpecType = 6
	SpecTypeI64          SCSpecType = 7
	SpecTypeTimepoint    SCSpecType = 8
	SpecTypeDuration     SCSpecType = 9
	SpecTypeU128         SCSpecType = 10
	SpecTypeI128         SCSpecType = 11
	SpecTypeU256         SCSpecType = 12
	SpecTypeI256         SCSpecType = 13
	SpecTypeBytes        SCSpecType = 14
	SpecTypeString       SCSpecType = 16
	SpecTypeSymbol       SCSpecType = 17
	SpecTypeAddress      SCSpecType = 19
	SpecTypeMuxedAddress SCSpecType = 20
	SpecTypeOption       SCSpecType = 1000
	SpecTypeResult       SCSpecType = 1001
	SpecTypeVec          SCSpecType = 1002
	SpecTypeMap          SCSpecType = 1004
	SpecTypeTuple        SCSpecType = 1005
	SpecTypeBytesN       SCSpecType = 1006
	SpecTypeUDT          SCSpecType = 2000
)

var sCSpecTypeNames = map[SCSpecType]string{
	SpecTypeVal:          "SC_SPEC_TYPE_VAL",
	SpecTypeBool:         "SC_SPEC_TYPE_BOOL",
	SpecTypeVoid:         "SC_SPEC_TYPE_VOID",
	SpecTypeError:        "SC_SPEC_TYPE_ERROR",
	SpecTypeU32:          "SC_SPEC_TYPE_U32",
	SpecTypeI32:          "SC_SPEC_TYPE_I32",
	SpecTypeU64:          "SC_SPEC_TYPE_U64",
	SpecTypeI64:          "SC_SPEC_TYPE_I64",
	SpecTypeTimepoint:    "SC_SPEC_TYPE_TIMEPOINT",
	SpecTypeDuration:     "SC_SPEC_TYPE_DURATION",
	SpecTypeU128:         "SC_SPEC_TYPE_U128",
	SpecTypeI128:         "SC_SPEC_TYPE_I128",
	SpecTypeU256:         "SC_SPEC_TYPE_U256",
	SpecTypeI256:         "SC_SPEC_TYPE_I256",
	SpecTypeBytes:        "SC_SPEC_TYPE_BYTES",
	SpecTypeString:       "SC_SPEC_TYPE_STRING",
	SpecTypeSymbol:       "SC_SPEC_TYPE_SYMBOL",
	SpecTypeAddress:      "SC_SPEC_TYPE_ADDRESS",
	SpecTypeMuxedAddress: "SC_SPEC_TYPE_MUXED_ADDRESS",
	SpecTypeOption:       "SC_SPEC_TYPE_OPTION",
	SpecTypeResult:       "SC_SPEC_TYPE_RESULT",
	SpecTypeVec:          "SC_SPEC_TYPE_VEC",
	SpecTypeMap:          "SC_SPEC_TYPE_MAP",
	SpecTypeTuple:        "SC_SPEC_TYPE_TUPLE",
	SpecTypeBytesN:       "SC_SPEC_TYPE_BYTES_N",
	SpecTypeUDT:          "SC_SPEC_TYPE_UDT",
}

func (v SCSpecType) String() string { return enumString(sCSpecTypeNames, v, "SCSpecType") }

// MarshalText renders the protocol name of v.
func (v SCSpecType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCSpecType) IsKnown() bool {
	_, ok := sCSpecTypeNames[v]
	return ok
}

// SCSpecTypeOption describes Option<ValueType>.
type SCSpecTypeOption struct {
	ValueType SCSpecTypeDef
}

// Encode writes an SCSpecTypeOption in XDR format.
func (scs *SCSpecTypeOption) Encode(buf *bytes.Buffer) error {
	if err := scs.ValueType.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec type option value type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecTypeOption from XDR format.
func (scs *SCSpecTypeOption) Decode(c *xdr.Cursor) error {
	var err error
	if err = scs.ValueType.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec type option value type: %w", err)
	}
	return nil
}

// SCSpecTypeResult describes Result<OkType, ErrorType>.
type SCSpecTypeResult struct {
	OkType    SCSpecTypeDef
	ErrorType SCSpecTypeDef
}

// Encode writes an SCSpecTypeResult in XDR format.
func (scs *SCSpecTypeResult) Encode(buf *bytes.Buffer) error {
	if err := scs.OkType.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec type result ok type: %w", err)
	}
	if err := scs.ErrorType.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec type result error type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecTypeResult from XDR format.
func (scs *SCSpecTypeResult) Decode(c *xdr.Cursor) error {
	var err error
	if err = scs.OkType.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec type result ok type: %w", err)
	}
	if err = scs.ErrorType.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec type result error type: %w", err)
	}
	return nil
}

// SCSpecTypeVec describes Vec<ElementType>.
type SCSpecTypeVec struct {
	ElementType SCSpecTypeDef
}

// Encode writes an SCSpecTypeVec in XDR format.
func (scs *SCSpecTypeVec) Encode(buf *bytes.Buffer) error {
	if err := scs.ElementType.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec type vec element type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecTypeVec from XDR format.
func (scs *SCSpecTypeVec) Decode(c *xdr.Cursor) error {
	var err error
	if err = scs.ElementType.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec type vec element type: %w", err)
	}
	return nil
}

// SCSpecTypeMap describes Map<KeyType, ValueType>.
type SCSpecTypeMap struct {
	KeyType   SCSpecTypeDef
	ValueType SCSpecTypeDef
}

// Encode writes an SCSpecTypeMap in XDR format.
func (scs *SCSpecTypeMap) Encode(buf *bytes.Buffer) error {
	if err := scs.KeyType.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec type map key type: %w", err)
	}
	if err := scs.ValueType.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec type map value type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecTypeMap from XDR format.
func (scs *SCSpecTypeMap) Decode(c *xdr.Cursor) error {
	var err error
	if err = scs.KeyType.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec type map key type: %w", err)
	}
	if err = scs.ValueType.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec type map value type: %w", err)
	}
	return nil
}

// SCSpecTypeTuple describes a tuple of up to 12 value types.
type SCSpecTypeTuple struct {
	ValueTypes []SCSpecTypeDef
}

// Encode writes an SCSpecTypeTuple in XDR format.
func (scs *SCSpecTypeTuple) Encode(buf *bytes.Buffer) error {
	if err := xdr.EncodeArray(buf, scs.ValueTypes); err != nil {
		return fmt.Errorf("encode sc spec type tuple value types: %w", err)
	}
	return nil
}

// Decode reads an SCSpecTypeTuple from XDR format.
func (scs *SCSpecTypeTuple) Decode(c *xdr.Cursor) error {
	var err error
	if scs.ValueTypes, err = xdr.DecodeArray[SCSpecTypeDef](c); err != nil {
		return fmt.Errorf("decode sc spec type tuple value types: %w", err)
	}
	return nil
}

// SCSpecTypeBytesN describes BytesN<N>.
type SCSpecTypeBytesN struct {
	N uint32
}

// Encode writes an SCSpecTypeBytesN in XDR format.
func (scs *SCSpecTypeBytesN) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, scs.N)
	return nil
}

// Decode reads an SCSpecTypeBytesN from XDR format.
func (scs *SCSpecTypeBytesN) Decode(c *xdr.Cursor) error {
	var err error
	if scs.N, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode sc spec type bytes n n: %w", err)
	}
	return nil
}

// SCSpecTypeUDT refers to a user defined type by name.
type SCSpecTypeUDT struct {
	Name string
}

// Encode writes an SCSpecTypeUDT in XDR format.
func (scs *SCSpecTypeUDT) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Name)
	return nil
}

// Decode reads an SCSpecTypeUDT from XDR format.
func (scs *SCSpecTypeUDT) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec type udt name: %w", err)
	}
	return nil
}

// SCSpecTypeDef is a possibly nested type in a contract interface.
// Scalar kinds carry no payload.
type SCSpecTypeDef struct {
	Type   SCSpecType
	Option *SCSpecTypeOption
	Result *SCSpecTypeResult
	Vec    *SCSpecTypeVec
	Map    *SCSpecTypeMap
	Tuple  *SCSpecTypeTuple
	BytesN *SCSpecTypeBytesN
	UDT    *SCSpecTypeUDT
}

// Encode writes an SCSpecTypeDef in XDR format.
func (scs *SCSpecTypeDef) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, scs.Type)
	switch scs.Type {
	case SpecTypeOption:
		return xdr.EncodeArm(buf, scs.Option, "SCSpecTypeDef", scs.Type)
	case SpecTypeResult:
		return xdr.EncodeArm(buf, scs.Result, "SCSpecTypeDef", scs.Type)
	case SpecTypeVec:
		return xdr.EncodeArm(buf, scs.Vec, "SCSpecTypeDef", scs.Type)
	case SpecTypeMap:
		return xdr.EncodeArm(buf, scs.Map, "SCSpecTypeDef", scs.Type)
	case SpecTypeTuple:
		return xdr.EncodeArm(buf, scs.Tuple, "SCSpecTypeDef", scs.Type)
	case SpecTypeBytesN:
		return xdr.EncodeArm(buf, scs.BytesN, "SCSpecTypeDef", scs.Type)
	case SpecTypeUDT:
		return xdr.EncodeArm(buf, scs.UDT, "SCSpecTypeDef", scs.Type)
	}
	return nil
}

// Decode reads an SCSpecTypeDef from XDR format.
func (scs *SCSpecTypeDef) Decode(c *xdr.Cursor) error {
	*scs = SCSpecTypeDef{}
	var err error
	if scs.Type, err = xdr.DecodeUnionDiscriminant[SCSpecType](c); err != nil {
		return fmt.Errorf("decode sc spec type def type: %w", err)
	}
	switch scs.Type {
	case SpecTypeOption:
		scs.Option, err = xdr.DecodeArm[SCSpecTypeOption](c)
	case SpecTypeResult:
		scs.Result, err = xdr.DecodeArm[SCSpecTypeResult](c)
	case SpecTypeVec:
		scs.Vec, err = xdr.DecodeArm[SCSpecTypeVec](c)
	case SpecTypeMap:
		scs.Map, err = xdr.DecodeArm[SCSpecTypeMap](c)
	case SpecTypeTuple:
		scs.Tuple, err = xdr.DecodeArm[SCSpecTypeTuple](c)
	case SpecTypeBytesN:
		scs.BytesN, err = xdr.DecodeArm[SCSpecTypeBytesN](c)
	case SpecTypeUDT:
		scs.UDT, err = xdr.DecodeArm[SCSpecTypeUDT](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc spec type def %v: %w", scs.Type, err)
	}
	return nil
}

// SCSpecUDTStructFieldV0 is one named field of a user-defined struct.
type SCSpecUDTStructFieldV0 struct {
	Doc  string
	Name string
	Type SCSpecTypeDef
}

// Encode writes an SCSpecUDTStructFieldV0 in XDR format.
func (scs *SCSpecUDTStructFieldV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	if err := scs.Type.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec udt struct field v0 type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecUDTStructFieldV0 from XDR format.
func (scs *SCSpecUDTStructFieldV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt struct field v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt struct field v0 name: %w", err)
	}
	if err = scs.Type.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec udt struct field v0 type: %w", err)
	}
	return nil
}

// SCSpecUDTStructV0 declares a contract struct type.
type SCSpecUDTStructV0 struct {
	Doc    string
	Lib    string
	Name   string
	Fields []SCSpecUDTStructFieldV0
}

// Encode writes an SCSpecUDTStructV0 in XDR format.
func (scs *SCSpecUDTStructV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Lib)
	xdr.WriteString(buf, scs.Name)
	if err := xdr.EncodeArray(buf, scs.Fields); err != nil {
		return fmt.Errorf("encode sc spec udt struct v0 fields: %w", err)
	}
	return nil
}

// Decode reads an SCSpecUDTStructV0 from XDR format.
func (scs *SCSpecUDTStructV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt struct v0 doc: %w", err)
	}
	if scs.Lib, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt struct v0 lib: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt struct v0 name: %w", err)
	}
	if scs.Fields, err = xdr.DecodeArray[SCSpecUDTStructFieldV0](c); err != nil {
		return fmt.Errorf("decode sc spec udt struct v0 fields: %w", err)
	}
	return nil
}

// SCSpecUDTUnionCaseVoidV0 is a union case with no payload.
type SCSpecUDTUnionCaseVoidV0 struct {
	Doc  string
	Name string
}

// Encode writes an SCSpecUDTUnionCaseVoidV0 in XDR format.
func (scs *SCSpecUDTUnionCaseVoidV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	return nil
}

// Decode reads an SCSpecUDTUnionCaseVoidV0 from XDR format.
func (scs *SCSpecUDTUnionCaseVoidV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union case void v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union case void v0 name: %w", err)
	}
	return nil
}

// SCSpecUDTUnionCaseTupleV0 is a union case carrying a tuple.
type SCSpecUDTUnionCaseTupleV0 struct {
	Doc  string
	Name string
	Type []SCSpecTypeDef
}

// Encode writes an SCSpecUDTUnionCaseTupleV0 in XDR format.
func (scs *SCSpecUDTUnionCaseTupleV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	if err := xdr.EncodeArray(buf, scs.Type); err != nil {
		return fmt.Errorf("encode sc spec udt union case tuple v0 type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecUDTUnionCaseTupleV0 from XDR format.
func (scs *SCSpecUDTUnionCaseTupleV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union case tuple v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union case tuple v0 name: %w", err)
	}
	if scs.Type, err = xdr.DecodeArray[SCSpecTypeDef](c); err != nil {
		return fmt.Errorf("decode sc spec udt union case tuple v0 type: %w", err)
	}
	return nil
}

// SCSpecUDTUnionCaseV0Kind enumerates sc spec udt union case v0 kind values.
type SCSpecUDTUnionCaseV0Kind int32

const (
	SCSpecUDTUnionCaseV0KindVoidV0  SCSpecUDTUnionCaseV0Kind = 0
	SCSpecUDTUnionCaseV0KindTupleV0 SCSpecUDTUnionCaseV0Kind = 1
)

var sCSpecUDTUnionCaseV0KindNames = map[SCSpecUDTUnionCaseV0Kind]string{
	SCSpecUDTUnionCaseV0KindVoidV0:  "SC_SPEC_UDT_UNION_CASE_VOID_V0",
	SCSpecUDTUnionCaseV0KindTupleV0: "SC_SPEC_UDT_UNION_CASE_TUPLE_V0",
}

func (v SCSpecUDTUnionCaseV0Kind) String() string { return enumString(sCSpecUDTUnionCaseV0KindNames, v, "SCSpecUDTUnionCaseV0Kind") }

// MarshalText renders the protocol name of v.
func (v SCSpecUDTUnionCaseV0Kind) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCSpecUDTUnionCaseV0Kind) IsKnown() bool {
	_, ok := sCSpecUDTUnionCaseV0KindNames[v]
	return ok
}

// SCSpecUDTUnionCaseV0 selects a void or tuple union case.
type SCSpecUDTUnionCaseV0 struct {
	Kind      SCSpecUDTUnionCaseV0Kind
	VoidCase  *SCSpecUDTUnionCaseVoidV0
	TupleCase *SCSpecUDTUnionCaseTupleV0
}

// Encode writes an SCSpecUDTUnionCaseV0 in XDR format.
func (scs *SCSpecUDTUnionCaseV0) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, scs.Kind)
	switch scs.Kind {
	case SCSpecUDTUnionCaseV0KindVoidV0:
		return xdr.EncodeArm(buf, scs.VoidCase, "SCSpecUDTUnionCaseV0", scs.Kind)
	case SCSpecUDTUnionCaseV0KindTupleV0:
		return xdr.EncodeArm(buf, scs.TupleCase, "SCSpecUDTUnionCaseV0", scs.Kind)
	}
	return nil
}

// Decode reads an SCSpecUDTUnionCaseV0 from XDR format.
func (scs *SCSpecUDTUnionCaseV0) Decode(c *xdr.Cursor) error {
	*scs = SCSpecUDTUnionCaseV0{}
	var err error
	if scs.Kind, err = xdr.DecodeUnionDiscriminant[SCSpecUDTUnionCaseV0Kind](c); err != nil {
		return fmt.Errorf("decode sc spec udt union case v0 kind: %w", err)
	}
	switch scs.Kind {
	case SCSpecUDTUnionCaseV0KindVoidV0:
		scs.VoidCase, err = xdr.DecodeArm[SCSpecUDTUnionCaseVoidV0](c)
	case SCSpecUDTUnionCaseV0KindTupleV0:
		scs.TupleCase, err = xdr.DecodeArm[SCSpecUDTUnionCaseTupleV0](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc spec udt union case v0 %v: %w", scs.Kind, err)
	}
	return nil
}

// SCSpecUDTUnionV0 declares a contract union type.
type SCSpecUDTUnionV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []SCSpecUDTUnionCaseV0
}

// Encode writes an SCSpecUDTUnionV0 in XDR format.
func (scs *SCSpecUDTUnionV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Lib)
	xdr.WriteString(buf, scs.Name)
	if err := xdr.EncodeArray(buf, scs.Cases); err != nil {
		return fmt.Errorf("encode sc spec udt union v0 cases: %w", err)
	}
	return nil
}

// Decode reads an SCSpecUDTUnionV0 from XDR format.
func (scs *SCSpecUDTUnionV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union v0 doc: %w", err)
	}
	if scs.Lib, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union v0 lib: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt union v0 name: %w", err)
	}
	if scs.Cases, err = xdr.DecodeArray[SCSpecUDTUnionCaseV0](c); err != nil {
		return fmt.Errorf("decode sc spec udt union v0 cases: %w", err)
	}
	return nil
}

// SCSpecUDTEnumCaseV0 is one named value of a user-defined enum.
type SCSpecUDTEnumCaseV0 struct {
	Doc   string
	Name  string
	Value uint32
}

// Encode writes an SCSpecUDTEnumCaseV0 in XDR format.
func (scs *SCSpecUDTEnumCaseV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	xdr.WriteUint32(buf, scs.Value)
	return nil
}

// Decode reads an SCSpecUDTEnumCaseV0 from XDR format.
func (scs *SCSpecUDTEnumCaseV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt enum case v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt enum case v0 name: %w", err)
	}
	if scs.Value, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode sc spec udt enum case v0 value: %w", err)
	}
	return nil
}

// SCSpecUDTEnumV0 describes a user-defined integer enum.
type SCSpecUDTEnumV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []SCSpecUDTEnumCaseV0
}

// Encode writes an SCSpecUDTEnumV0 in XDR format.
func (scs *SCSpecUDTEnumV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Lib)
	xdr.WriteString(buf, scs.Name)
	if err := xdr.EncodeArray(buf, scs.Cases); err != nil {
		return fmt.Errorf("encode sc spec udt enum v0 cases: %w", err)
	}
	return nil
}

// Decode reads an SCSpecUDTEnumV0 from XDR format.
func (scs *SCSpecUDTEnumV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt enum v0 doc: %w", err)
	}
	if scs.Lib, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt enum v0 lib: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt enum v0 name: %w", err)
	}
	if scs.Cases, err = xdr.DecodeArray[SCSpecUDTEnumCaseV0](c); err != nil {
		return fmt.Errorf("decode sc spec udt enum v0 cases: %w", err)
	}
	return nil
}

// SCSpecUDTErrorEnumCaseV0 is one named contract error code.
type SCSpecUDTErrorEnumCaseV0 struct {
	Doc   string
	Name  string
	Value uint32
}

// Encode writes an SCSpecUDTErrorEnumCaseV0 in XDR format.
func (scs *SCSpecUDTErrorEnumCaseV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	xdr.WriteUint32(buf, scs.Value)
	return nil
}

// Decode reads an SCSpecUDTErrorEnumCaseV0 from XDR format.
func (scs *SCSpecUDTErrorEnumCaseV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum case v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum case v0 name: %w", err)
	}
	if scs.Value, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum case v0 value: %w", err)
	}
	return nil
}

// SCSpecUDTErrorEnumV0 describes a contract's error enum.
type SCSpecUDTErrorEnumV0 struct {
	Doc   string
	Lib   string
	Name  string
	Cases []SCSpecUDTErrorEnumCaseV0
}

// Encode writes an SCSpecUDTErrorEnumV0 in XDR format.
func (scs *SCSpecUDTErrorEnumV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Lib)
	xdr.WriteString(buf, scs.Name)
	if err := xdr.EncodeArray(buf, scs.Cases); err != nil {
		return fmt.Errorf("encode sc spec udt error enum v0 cases: %w", err)
	}
	return nil
}

// Decode reads an SCSpecUDTErrorEnumV0 from XDR format.
func (scs *SCSpecUDTErrorEnumV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum v0 doc: %w", err)
	}
	if scs.Lib, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum v0 lib: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum v0 name: %w", err)
	}
	if scs.Cases, err = xdr.DecodeArray[SCSpecUDTErrorEnumCaseV0](c); err != nil {
		return fmt.Errorf("decode sc spec udt error enum v0 cases: %w", err)
	}
	return nil
}

// SCSpecFunctionInputV0 is one named argument of a contract function.
type SCSpecFunctionInputV0 struct {
	Doc  string
	Name string
	Type SCSpecTypeDef
}

// Encode writes an SCSpecFunctionInputV0 in XDR format.
func (scs *SCSpecFunctionInputV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	if err := scs.Type.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec function input v0 type: %w", err)
	}
	return nil
}

// Decode reads an SCSpecFunctionInputV0 from XDR format.
func (scs *SCSpecFunctionInputV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec function input v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec function input v0 name: %w", err)
	}
	if err = scs.Type.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec function input v0 type: %w", err)
	}
	return nil
}

// SCSpecFunctionV0 declares an exported contract function.
type SCSpecFunctionV0 struct {
	Doc     string
	Name    SCSymbol
	Inputs  []SCSpecFunctionInputV0
	Outputs []SCSpecTypeDef // at most one
}

// Encode writes an SCSpecFunctionV0 in XDR format.
func (scs *SCSpecFunctionV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	if err := scs.Name.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec function v0 name: %w", err)
	}
	if err := xdr.EncodeArray(buf, scs.Inputs); err != nil {
		return fmt.Errorf("encode sc spec function v0 inputs: %w", err)
	}
	if err := xdr.EncodeArray(buf, scs.Outputs); err != nil {
		return fmt.Errorf("encode sc spec function v0 outputs: %w", err)
	}
	return nil
}

// Decode reads an SCSpecFunctionV0 from XDR format.
func (scs *SCSpecFunctionV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec function v0 doc: %w", err)
	}
	if err = scs.Name.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec function v0 name: %w", err)
	}
	if scs.Inputs, err = xdr.DecodeArray[SCSpecFunctionInputV0](c); err != nil {
		return fmt.Errorf("decode sc spec function v0 inputs: %w", err)
	}
	if scs.Outputs, err = xdr.DecodeArray[SCSpecTypeDef](c); err != nil {
		return fmt.Errorf("decode sc spec function v0 outputs: %w", err)
	}
	return nil
}

// SCSpecEventParamLocationV0 enumerates sc spec event param location v0 values.
type SCSpecEventParamLocationV0 int32

const (
	SCSpecEventParamLocationV0Data      SCSpecEventParamLocationV0 = 0
	SCSpecEventParamLocationV0TopicList SCSpecEventParamLocationV0 = 1
)

var sCSpecEventParamLocationV0Names = map[SCSpecEventParamLocationV0]string{
	SCSpecEventParamLocationV0Data:      "SC_SPEC_EVENT_PARAM_LOCATION_DATA",
	SCSpecEventParamLocationV0TopicList: "SC_SPEC_EVENT_PARAM_LOCATION_TOPIC_LIST",
}

func (v SCSpecEventParamLocationV0) String() string { return enumString(sCSpecEventParamLocationV0Names, v, "SCSpecEventParamLocationV0") }

// MarshalText renders the protocol name of v.
func (v SCSpecEventParamLocationV0) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCSpecEventParamLocationV0) IsKnown() bool {
	_, ok := sCSpecEventParamLocationV0Names[v]
	return ok
}

// SCSpecEventParamV0 is one parameter of a contract event and where it is stored.
type SCSpecEventParamV0 struct {
	Doc      string
	Name     string
	Type     SCSpecTypeDef
	Location SCSpecEventParamLocationV0
}

// Encode writes an SCSpecEventParamV0 in XDR format.
func (scs *SCSpecEventParamV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Name)
	if err := scs.Type.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec event param v0 type: %w", err)
	}
	xdr.WriteEnum(buf, scs.Location)
	return nil
}

// Decode reads an SCSpecEventParamV0 from XDR format.
func (scs *SCSpecEventParamV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec event param v0 doc: %w", err)
	}
	if scs.Name, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec event param v0 name: %w", err)
	}
	if err = scs.Type.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec event param v0 type: %w", err)
	}
	if scs.Location, err = xdr.DecodeEnum[SCSpecEventParamLocationV0](c); err != nil {
		return fmt.Errorf("decode sc spec event param v0 location: %w", err)
	}
	return nil
}

// SCSpecEventDataFormat enumerates sc spec event data format values.
type SCSpecEventDataFormat int32

const (
	SCSpecEventDataFormatSingleValue SCSpecEventDataFormat = 0
	SCSpecEventDataFormatVec         SCSpecEventDataFormat = 1
	SCSpecEventDataFormatMap         SCSpecEventDataFormat = 2
)

var sCSpecEventDataFormatNames = map[SCSpecEventDataFormat]string{
	SCSpecEventDataFormatSingleValue: "SC_SPEC_EVENT_DATA_FORMAT_SINGLE_VALUE",
	SCSpecEventDataFormatVec:         "SC_SPEC_EVENT_DATA_FORMAT_VEC",
	SCSpecEventDataFormatMap:         "SC_SPEC_EVENT_DATA_FORMAT_MAP",
}

func (v SCSpecEventDataFormat) String() string { return enumString(sCSpecEventDataFormatNames, v, "SCSpecEventDataFormat") }

// MarshalText renders the protocol name of v.
func (v SCSpecEventDataFormat) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCSpecEventDataFormat) IsKnown() bool {
	_, ok := sCSpecEventDataFormatNames[v]
	return ok
}

// SCSpecEventV0 declares an event a contract may emit.
type SCSpecEventV0 struct {
	Doc          string
	Lib          string
	Name         SCSymbol
	PrefixTopics []SCSymbol
	Params       []SCSpecEventParamV0
	DataFormat   SCSpecEventDataFormat
}

// Encode writes an SCSpecEventV0 in XDR format.
func (scs *SCSpecEventV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scs.Doc)
	xdr.WriteString(buf, scs.Lib)
	if err := scs.Name.Encode(buf); err != nil {
		return fmt.Errorf("encode sc spec event v0 name: %w", err)
	}
	if err := xdr.EncodeArray(buf, scs.PrefixTopics); err != nil {
		return fmt.Errorf("encode sc spec event v0 prefix topics: %w", err)
	}
	if err := xdr.EncodeArray(buf, scs.Params); err != nil {
		return fmt.Errorf("encode sc spec event v0 params: %w", err)
	}
	xdr.WriteEnum(buf, scs.DataFormat)
	return nil
}

// Decode reads an SCSpecEventV0 from XDR format.
func (scs *SCSpecEventV0) Decode(c *xdr.Cursor) error {
	var err error
	if scs.Doc, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec event v0 doc: %w", err)
	}
	if scs.Lib, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc spec event v0 lib: %w", err)
	}
	if err = scs.Name.Decode(c); err != nil {
		return fmt.Errorf("decode sc spec event v0 name: %w", err)
	}
	if scs.PrefixTopics, err = xdr.DecodeArray[SCSymbol](c); err != nil {
		return fmt.Errorf("decode sc spec event v0 prefix topics: %w", err)
	}
	if scs.Params, err = xdr.DecodeArray[SCSpecEventParamV0](c); err != nil {
		return fmt.Errorf("decode sc spec event v0 params: %w", err)
	}
	if scs.DataFormat, err = xdr.DecodeEnum[SCSpecEventDataFormat](c); err != nil {
		return fmt.Errorf("decode sc spec event v0 data format: %w", err)
	}
	return nil
}

// SCSpecEntryKind enumerates sc spec entry kind values.
type SCSpecEntryKind int32

const (
	SCSpecEntryKindFunctionV0     SCSpecEntryKind = 0
	SCSpecEntryKindUDTStructV0    SCSpecEntryKind = 1
	SCSpecEntryKindUDTUnionV0     SCSpecEntryKind = 2
	SCSpecEntryKindUDTEnumV0      SCSpecEntryKind = 3
	SCSpecEntryKindUDTErrorEnumV0 SCSpecEntryKind = 4
	SCSpecEntryKindEventV0        SCSpecEntryKind = 5
)

var sCSpecEntryKindNames = map[SCSpecEntryKind]string{
	SCSpecEntryKindFunctionV0:     "SC_SPEC_ENTRY_FUNCTION_V0",
	SCSpecEntryKindUDTStructV0:    "SC_SPEC_ENTRY_UDT_STRUCT_V0",
	SCSpecEntryKindUDTUnionV0:     "SC_SPEC_ENTRY_UDT_UNION_V0",
	SCSpecEntryKindUDTEnumV0:      "SC_SPEC_ENTRY_UDT_ENUM_V0",
	SCSpecEntryKindUDTErrorEnumV0: "SC_SPEC_ENTRY_UDT_ERROR_ENUM_V0",
	SCSpecEntryKindEventV0:        "SC_SPEC_ENTRY_EVENT_V0",
}

func (v SCSpecEntryKind) String() string { return enumString(sCSpecEntryKindNames, v, "SCSpecEntryKind") }

// MarshalText renders the protocol name of v.
func (v SCSpecEntryKind) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCSpecEntryKind) IsKnown() bool {
	_, ok := sCSpecEntryKindNames[v]
	return ok
}

// SCSpecEntry is one entry of a contract interface, as stored in the
// contractspecv0 custom section of the Wasm module.
type SCSpecEntry struct {
	Kind           SCSpecEntryKind
	FunctionV0     *SCSpecFunctionV0
	UDTStructV0    *SCSpecUDTStructV0
	UDTUnionV0     *SCSpecUDTUnionV0
	UDTEnumV0      *SCSpecUDTEnumV0
	UDTErrorEnumV0 *SCSpecUDTErrorEnumV0
	EventV0        *SCSpecEventV0
}

// Encode writes an SCSpecEntry in XDR format.
func (scs *SCSpecEntry) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, scs.Kind)
	switch scs.Kind {
	case SCSpecEntryKindFunctionV0:
		return xdr.EncodeArm(buf, scs.FunctionV0, "SCSpecEntry", scs.Kind)
	case SCSpecEntryKindUDTStructV0:
		return xdr.EncodeArm(buf, scs.UDTStructV0, "SCSpecEntry", scs.Kind)
	case SCSpecEntryKindUDTUnionV0:
		return xdr.EncodeArm(buf, scs.UDTUnionV0, "SCSpecEntry", scs.Kind)
	case SCSpecEntryKindUDTEnumV0:
		return xdr.EncodeArm(buf, scs.UDTEnumV0, "SCSpecEntry", scs.Kind)
	case SCSpecEntryKindUDTErrorEnumV0:
		return xdr.EncodeArm(buf, scs.UDTErrorEnumV0, "SCSpecEntry", scs.Kind)
	case SCSpecEntryKindEventV0:
		return xdr.EncodeArm(buf, scs.EventV0, "SCSpecEntry", scs.Kind)
	}
	return nil
}

// Decode reads an SCSpecEntry from XDR format.
func (scs *SCSpecEntry) Decode(c *xdr.Cursor) error {
	*scs = SCSpecEntry{}
	var err error
	if scs.Kind, err = xdr.DecodeUnionDiscriminant[SCSpecEntryKind](c); err != nil {
		return fmt.Errorf("decode sc spec entry kind: %w", err)
	}
	switch scs.Kind {
	case SCSpecEntryKindFunctionV0:
		scs.FunctionV0, err = xdr.DecodeArm[SCSpecFunctionV0](c)
	case SCSpecEntryKindUDTStructV0:
		scs.UDTStructV0, err = xdr.DecodeArm[SCSpecUDTStructV0](c)
	case SCSpecEntryKindUDTUnionV0:
		scs.UDTUnionV0, err = xdr.DecodeArm[SCSpecUDTUnionV0](c)
	case SCSpecEntryKindUDTEnumV0:
		scs.UDTEnumV0, err = xdr.DecodeArm[SCSpecUDTEnumV0](c)
	case SCSpecEntryKindUDTErrorEnumV0:
		scs.UDTErrorEnumV0, err = xdr.DecodeArm[SCSpecUDTErrorEnumV0](c)
	case SCSpecEntryKindEventV0:
		scs.EventV0, err = xdr.DecodeArm[SCSpecEventV0](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc spec entry %v: %w", scs.Kind, err)
	}
	return nil
}

// DecodeSCSpecEntries reads the concatenated entries of a contractspecv0
// section.
func DecodeSCSpecEntries(data []byte) ([]SCSpecEntry, error) {
	c := xdr.NewCursor(data)
	var entries []SCSpecEntry
	for c.Remaining() > 0 {
		var e SCSpecEntry
		if err := e.Decode(c); err != nil {
			return nil, fmt.Errorf("decode spec entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
