package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func specType(t SCSpecType) SCSpecTypeDef { return SCSpecTypeDef{Type: t} }

func TestSCSpecTypeDef_Nested(t *testing.T) {
	in := SCSpecTypeDef{
		Type: SpecTypeOption,
		Option: &SCSpecTypeOption{ValueType: SCSpecTypeDef{
			Type: SpecTypeMap,
			Map: &SCSpecTypeMap{
				KeyType: specType(SpecTypeSymbol),
				ValueType: SCSpecTypeDef{
					Type: SpecTypeVec,
					Vec: &SCSpecTypeVec{ElementType: SCSpecTypeDef{
						Type: SpecTypeTuple,
						Tuple: &SCSpecTypeTuple{ValueTypes: []SCSpecTypeDef{
							specType(SpecTypeU128),
							{Type: SpecTypeBytesN, BytesN: &SCSpecTypeBytesN{N: 32}},
							{Type: SpecTypeUDT, UDT: &SCSpecTypeUDT{Name: "Position"}},
						}},
					}},
				},
			},
		}},
	}
	out, _ := roundTrip(t, &in)
	tuple := out.Option.ValueType.Map.ValueType.Vec.ElementType.Tuple
	require.Len(t, tuple.ValueTypes, 3)
	assert.Equal(t, "Position", tuple.ValueTypes[2].UDT.Name)
}

func TestSCSpecTypeDef_Result(t *testing.T) {
	in := SCSpecTypeDef{Type: SpecTypeResult, Result: &SCSpecTypeResult{
		OkType:    specType(SpecTypeVoid),
		ErrorType: specType(SpecTypeError),
	}}
	_, data := roundTrip(t, &in)
	assert.Equal(t, []byte{0, 0, 0x03, 0xe9, 0, 0, 0, 2, 0, 0, 0, 3}, data)
}

func specEntries() []SCSpecEntry {
	return []SCSpecEntry{
		{Kind: SCSpecEntryKindFunctionV0, FunctionV0: &SCSpecFunctionV0{
			Doc:  "Transfers tokens.",
			Name: "transfer",
			Inputs: []SCSpecFunctionInputV0{
				{Name: "from", Type: specType(SpecTypeAddress)},
				{Name: "to", Type: specType(SpecTypeMuxedAddress)},
				{Name: "amount", Type: specType(SpecTypeI128)},
			},
			Outputs: []SCSpecTypeDef{},
		}},
		{Kind: SCSpecEntryKindUDTStructV0, UDTStructV0: &SCSpecUDTStructV0{
			Name:   "Position",
			Fields: []SCSpecUDTStructFieldV0{{Name: "x", Type: specType(SpecTypeI32)}},
		}},
		{Kind: SCSpecEntryKindUDTUnionV0, UDTUnionV0: &SCSpecUDTUnionV0{
			Name: "Shape",
			Cases: []SCSpecUDTUnionCaseV0{
				{Kind: SCSpecUDTUnionCaseV0KindVoidV0, VoidCase: &SCSpecUDTUnionCaseVoidV0{Name: "Empty"}},
				{Kind: SCSpecUDTUnionCaseV0KindTupleV0, TupleCase: &SCSpecUDTUnionCaseTupleV0{Name: "Circle", Type: []SCSpecTypeDef{specType(SpecTypeU32)}}},
			},
		}},
		{Kind: SCSpecEntryKindUDTEnumV0, UDTEnumV0: &SCSpecUDTEnumV0{
			Name:  "Color",
			Cases: []SCSpecUDTEnumCaseV0{{Name: "Red", Value: 0}, {Name: "Blue", Value: 1}},
		}},
		{Kind: SCSpecEntryKindUDTErrorEnumV0, UDTErrorEnumV0: &SCSpecUDTErrorEnumV0{
			Name:  "Error",
			Cases: []SCSpecUDTErrorEnumCaseV0{{Name: "InsufficientBalance", Value: 1}},
		}},
		{Kind: SCSpecEntryKindEventV0, EventV0: &SCSpecEventV0{
			Name:         "transfer",
			PrefixTopics: []SCSymbol{"transfer"},
			Params: []SCSpecEventParamV0{
				{Name: "from", Type: specType(SpecTypeAddress), Location: SCSpecEventParamLocationV0TopicList},
				{Name: "amount", Type: specType(SpecTypeI128), Location: SCSpecEventParamLocationV0Data},
			},
			DataFormat: SCSpecEventDataFormatSingleValue,
		}},
	}
}

func TestSCSpecEntry_Kinds(t *testing.T) {
	for _, e := range specEntries() {
		t.Run(e.Kind.String(), func(t *testing.T) {
			out, _ := roundTrip(t, &e)
			assert.Equal(t, 1, armCount(t, out))
		})
	}
}

func TestDecodeSCSpecEntries(t *testing.T) {
	entries := specEntries()
	var stream []byte
	for i := range entries {
		data, err := xdr.Marshal(&entries[i])
		require.NoError(t, err)
		stream = append(stream, data...)
	}

	got, err := DecodeSCSpecEntries(stream)
	require.NoError(t, err)
	require.Len(t, got, len(entries))
	assert.Equal(t, SCSpecEntryKindEventV0, got[5].Kind)
	assert.Equal(t, "Color", got[3].UDTEnumV0.Name)

	_, err = DecodeSCSpecEntries(stream[:len(stream)-2])
	assert.ErrorIs(t, err, xdr.ErrBounds)

	empty, err := DecodeSCSpecEntries(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSCMetaEntry_RoundTrip(t *testing.T) {
	in := SCMetaEntry{Kind: SCMetaKindV0, V0: &SCMetaV0{Key: "rsver", Val: "1.84.0"}}
	out, _ := roundTrip(t, &in)
	assert.Equal(t, "1.84.0", out.V0.Val)

	env := SCEnvMetaEntry{
		Kind:             SCEnvMetaKindInterfaceVersion,
		InterfaceVersion: &SCEnvMetaEntryInterfaceVersion{Protocol: 23},
	}
	_, data := roundTrip(t, &env)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 23, 0, 0, 0, 0}, data)
}
