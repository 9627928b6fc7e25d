package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invocation(name SCSymbol, subs ...SorobanAuthorizedInvocation) SorobanAuthorizedInvocation {
	return SorobanAuthorizedInvocation{
		Function: SorobanAuthorizedFunction{
			Type: SorobanAuthorizedFunctionTypeContractFn,
			ContractFn: &InvokeContractArgs{
				ContractAddress: NewContractAddress(ContractID(key(0xC0))),
				FunctionName:    name,
				Args:            []SCVal{},
			},
		},
		SubInvocations: subs,
	}
}

func TestSorobanAuthorizationEntry_RoundTrip(t *testing.T) {
	in := SorobanAuthorizationEntry{
		Credentials: SorobanCredentials{
			Type: SorobanCredentialsTypeAddress,
			Address: &SorobanAddressCredentials{
				Address:                   NewAccountAddress(account(1)),
				Nonce:                     -42,
				SignatureExpirationLedger: 1000,
				Signature:                 NewSCValVec(NewSCValMap(SCMapEntry{Key: NewSCValString("public_key"), Val: NewSCValBytes(make([]byte, 32))})),
			},
		},
		RootInvocation: invocation("swap", invocation("transfer"), invocation("transfer")),
	}
	out, _ := roundTrip(t, &in)
	require.NotNil(t, out.Credentials.Address)
	assert.Equal(t, int64(-42), out.Credentials.Address.Nonce)
	assert.Len(t, out.RootInvocation.SubInvocations, 2)
}

func TestSorobanAuthorizedFunction_CreateContract(t *testing.T) {
	native := NewNativeAsset()
	in := SorobanAuthorizedFunction{
		Type: SorobanAuthorizedFunctionTypeCreateContractHostFn,
		CreateContractHostFn: &CreateContractArgs{
			ContractIDPreimage: ContractIDPreimage{Type: ContractIDPreimageTypeFromAsset, FromAsset: &native},
			Executable:         ContractExecutable{Type: ContractExecutableTypeStellarAsset},
		},
	}
	out, _ := roundTrip(t, &in)
	assert.Equal(t, 1, armCount(t, out))
}

func TestSorobanAuthorizedInvocation_Walk(t *testing.T) {
	root := invocation("a",
		invocation("b", invocation("c")),
		invocation("d"),
	)

	var names []string
	var depths []int
	root.Walk(func(depth int, inv *SorobanAuthorizedInvocation) bool {
		names = append(names, string(inv.Function.ContractFn.FunctionName))
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)

	names = nil
	root.Walk(func(_ int, inv *SorobanAuthorizedInvocation) bool {
		names = append(names, string(inv.Function.ContractFn.FunctionName))
		return inv.Function.ContractFn.FunctionName != "b"
	})
	assert.Equal(t, []string{"a", "b"}, names)
}
