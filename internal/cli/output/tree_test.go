package output

import (
	"bytes"
	"math"
	"testing"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_DropsUnselectedArms(t *testing.T) {
	got := Tree(types.NewNativeAsset())
	assert.Equal(t, Fields{{Name: "Type", Value: "ASSET_TYPE_NATIVE"}}, got)
}

func TestTree_Scalars(t *testing.T) {
	assert.Nil(t, Tree(nil))
	assert.Equal(t, int64(-3), Tree(int32(-3)))
	assert.Equal(t, uint64(7), Tree(uint32(7)))
	assert.Equal(t, true, Tree(true))
	assert.Equal(t, "0aff", Tree([]byte{0x0a, 0xff}))
	assert.Equal(t, "0102", Tree([2]byte{1, 2}))
	assert.Equal(t, []any{int64(1), int64(2)}, Tree([]int{1, 2}))
}

func TestTree_WideIntegersAsDecimal(t *testing.T) {
	v := types.NewSCValU128(xdr.UInt128Parts{Hi: math.MaxUint64, Lo: math.MaxUint64})
	got := Tree(v)
	assert.Equal(t, Fields{
		{Name: "Type", Value: "SCV_U128"},
		{Name: "U128", Value: "340282366920938463463374607431768211455"},
	}, got)
}

func TestTree_EmptyVecIsKept(t *testing.T) {
	got := Tree(types.NewSCValVec())
	require.IsType(t, Fields{}, got)
	fields := got.(Fields)
	require.Len(t, fields, 2)
	assert.Equal(t, "Vec", fields[1].Name)
	assert.Equal(t, []any{}, fields[1].Value)
}

func TestTree_MapSortedByKey(t *testing.T) {
	got := Tree(map[string]int{"b": 2, "a": 1})
	assert.Equal(t, Fields{{Name: "a", Value: int64(1)}, {Name: "b", Value: int64(2)}}, got)
}

func TestFields_OrderPreserved(t *testing.T) {
	f := Fields{{Name: "z", Value: 1}, {Name: "a", Value: Fields{}}, {Name: "m", Value: nil}}

	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, f))
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": {},\n  \"m\": null\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintYAML(&buf, f))
	assert.Equal(t, "z: 1\na: {}\nm: null\n", buf.String())
}

func TestFlatten_Paths(t *testing.T) {
	sym, err := types.NewSCValSymbol("hello")
	require.NoError(t, err)
	v := types.NewSCValVec(types.NewSCValU32(5), sym)

	rows := Flatten(v).Rows()
	assert.Equal(t, [][]string{
		{"Type", "SCV_VEC"},
		{"Vec[0].Type", "SCV_U32"},
		{"Vec[0].U32", "5"},
		{"Vec[1].Type", "SCV_SYMBOL"},
		{"Vec[1].Sym", "hello"},
	}, rows)
}

func TestFlatten_EdgeShapes(t *testing.T) {
	assert.Equal(t, [][]string{{"(value)", "-"}}, Flatten(nil).Rows())
	assert.Equal(t, [][]string{{"(value)", "{}"}}, Flatten(struct{}{}).Rows())
	assert.Equal(t, [][]string{{"Type", "SCV_VEC"}, {"Vec", "[]"}}, Flatten(types.NewSCValVec()).Rows())
}

func TestPrintKeyValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintKeyValue(&buf, [][2]string{{"network", "testnet"}, {"hash", "abcd"}}))
	assert.Contains(t, buf.String(), "network")
	assert.Contains(t, buf.String(), "abcd")
}
