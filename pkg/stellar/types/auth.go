package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// SorobanAuthorizedFunctionType enumerates soroban authorized function type values.
type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeContractFn             SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeCreateContractHostFn   SorobanAuthorizedFunctionType = 1
	SorobanAuthorizedFunctionTypeCreateContractV2HostFn SorobanAuthorizedFunctionType = 2
)

var sorobanAuthorizedFunctionTypeNames = map[SorobanAuthorizedFunctionType]string{
	SorobanAuthorizedFunctionTypeContractFn:             "SOROBAN_AUTHORIZED_FUNCTION_TYPE_CONTRACT_FN",
	SorobanAuthorizedFunctionTypeCreateContractHostFn:   "SOROBAN_AUTHORIZED_FUNCTION_TYPE_CREATE_CONTRACT_HOST_FN",
	SorobanAuthorizedFunctionTypeCreateContractV2HostFn: "SOROBAN_AUTHORIZED_FUNCTION_TYPE_CREATE_CONTRACT_V2_HOST_FN",
}

func (v SorobanAuthorizedFunctionType) String() string { return enumString(sorobanAuthorizedFunctionTypeNames, v, "SorobanAuthorizedFunctionType") }

// MarshalText renders the protocol name of v.
func (v SorobanAuthorizedFunctionType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SorobanAuthorizedFunctionType) IsKnown() bool {
	_, ok := sorobanAuthorizedFunctionTypeNames[v]
	return ok
}

// SorobanAuthorizedFunction is the call an authorization entry approves: a
// contract function or a contract creation.
type SorobanAuthorizedFunction struct {
	Type                   SorobanAuthorizedFunctionType
	ContractFn             *InvokeContractArgs
	CreateContractHostFn   *CreateContractArgs
	CreateContractV2HostFn *CreateContractArgsV2
}

// Encode writes a SorobanAuthorizedFunction in XDR format.
func (saf *SorobanAuthorizedFunction) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, saf.Type)
	switch saf.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		return xdr.EncodeArm(buf, saf.ContractFn, "SorobanAuthorizedFunction", saf.Type)
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		return xdr.EncodeArm(buf, saf.CreateContractHostFn, "SorobanAuthorizedFunction", saf.Type)
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		return xdr.EncodeArm(buf, saf.CreateContractV2HostFn, "SorobanAuthorizedFunction", saf.Type)
	}
	return nil
}

// Decode reads a SorobanAuthorizedFunction from XDR format.
func (saf *SorobanAuthorizedFunction) Decode(c *xdr.Cursor) error {
	*saf = SorobanAuthorizedFunction{}
	var err error
	if saf.Type, err = xdr.DecodeUnionDiscriminant[SorobanAuthorizedFunctionType](c); err != nil {
		return fmt.Errorf("decode soroban authorized function type: %w", err)
	}
	switch saf.Type {
	case SorobanAuthorizedFunctionTypeContractFn:
		saf.ContractFn, err = xdr.DecodeArm[InvokeContractArgs](c)
	case SorobanAuthorizedFunctionTypeCreateContractHostFn:
		saf.CreateContractHostFn, err = xdr.DecodeArm[CreateContractArgs](c)
	case SorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		saf.CreateContractV2HostFn, err = xdr.DecodeArm[CreateContractArgsV2](c)
	}
	if err != nil {
		return fmt.Errorf("decode soroban authorized function %v: %w", saf.Type, err)
	}
	return nil
}

// SorobanAuthorizedInvocation is a node of the authorized call tree.
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

// Encode writes a SorobanAuthorizedInvocation in XDR format.
func (sai *SorobanAuthorizedInvocation) Encode(buf *bytes.Buffer) error {
	if err := sai.Function.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban authorized invocation function: %w", err)
	}
	if err := xdr.EncodeArray(buf, sai.SubInvocations); err != nil {
		return fmt.Errorf("encode soroban authorized invocation sub invocations: %w", err)
	}
	return nil
}

// Decode reads a SorobanAuthorizedInvocation from XDR format.
func (sai *SorobanAuthorizedInvocation) Decode(c *xdr.Cursor) error {
	var err error
	if err = sai.Function.Decode(c); err != nil {
		return fmt.Errorf("decode soroban authorized invocation function: %w", err)
	}
	if sai.SubInvocations, err = xdr.DecodeArray[SorobanAuthorizedInvocation](c); err != nil {
		return fmt.Errorf("decode soroban authorized invocation sub invocations: %w", err)
	}
	return nil
}

// Walk visits the invocation tree depth first, parents before children.
// Returning false from fn stops the walk.
func (sai *SorobanAuthorizedInvocation) Walk(fn func(depth int, inv *SorobanAuthorizedInvocation) bool) {
	sai.walk(0, fn)
}

func (sai *SorobanAuthorizedInvocation) walk(depth int, fn func(int, *SorobanAuthorizedInvocation) bool) bool {
	if !fn(depth, sai) {
		return false
	}
	for i := range sai.SubInvocations {
		if !sai.SubInvocations[i].walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// SorobanAddressCredentials authorize an invocation with a signature from
// Address, bounded by Nonce and SignatureExpirationLedger.
type SorobanAddressCredentials struct {
	Address                   SCAddress
	Nonce                     int64
	SignatureExpirationLedger uint32
	Signature                 SCVal
}

// Encode writes a SorobanAddressCredentials in XDR format.
func (sac *SorobanAddressCredentials) Encode(buf *bytes.Buffer) error {
	if err := sac.Address.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban address credentials address: %w", err)
	}
	xdr.WriteInt64(buf, sac.Nonce)
	xdr.WriteUint32(buf, sac.SignatureExpirationLedger)
	if err := sac.Signature.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban address credentials signature: %w", err)
	}
	return nil
}

// Decode reads a SorobanAddressCredentials from XDR format.
func (sac *SorobanAddressCredentials) Decode(c *xdr.Cursor) error {
	var err error
	if err = sac.Address.Decode(c); err != nil {
		return fmt.Errorf("decode soroban address credentials address: %w", err)
	}
	if sac.Nonce, err = xdr.DecodeInt64(c); err != nil {
		return fmt.Errorf("decode soroban address credentials nonce: %w", err)
	}
	if sac.SignatureExpirationLedger, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode soroban address credentials signature expiration ledger: %w", err)
	}
	if err = sac.Signature.Decode(c); err != nil {
		return fmt.Errorf("decode soroban address credentials signature: %w", err)
	}
	return nil
}

// SorobanCredentialsType enumerates soroban credentials type values.
type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeAddress       SorobanCredentialsType = 1
)

var sorobanCredentialsTypeNames = map[SorobanCredentialsType]string{
	SorobanCredentialsTypeSourceAccount: "SOROBAN_CREDENTIALS_SOURCE_ACCOUNT",
	SorobanCredentialsTypeAddress:       "SOROBAN_CREDENTIALS_ADDRESS",
}

func (v SorobanCredentialsType) String() string { return enumString(sorobanCredentialsTypeNames, v, "SorobanCredentialsType") }

// MarshalText renders the protocol name of v.
func (v SorobanCredentialsType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SorobanCredentialsType) IsKnown() bool {
	_, ok := sorobanCredentialsTypeNames[v]
	return ok
}

// SorobanCredentials is either the transaction source account (void) or
// address credentials.
type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

// Encode writes a SorobanCredentials in XDR format.
func (sc *SorobanCredentials) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, sc.Type)
	switch sc.Type {
	case SorobanCredentialsTypeAddress:
		return xdr.EncodeArm(buf, sc.Address, "SorobanCredentials", sc.Type)
	}
	return nil
}

// Decode reads a SorobanCredentials from XDR format.
func (sc *SorobanCredentials) Decode(c *xdr.Cursor) error {
	*sc = SorobanCredentials{}
	var err error
	if sc.Type, err = xdr.DecodeUnionDiscriminant[SorobanCredentialsType](c); err != nil {
		return fmt.Errorf("decode soroban credentials type: %w", err)
	}
	switch sc.Type {
	case SorobanCredentialsTypeAddress:
		sc.Address, err = xdr.DecodeArm[SorobanAddressCredentials](c)
	}
	if err != nil {
		return fmt.Errorf("decode soroban credentials %v: %w", sc.Type, err)
	}
	return nil
}

// SorobanAuthorizationEntry authorizes a tree of contract calls.
type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

// Encode writes a SorobanAuthorizationEntry in XDR format.
func (sae *SorobanAuthorizationEntry) Encode(buf *bytes.Buffer) error {
	if err := sae.Credentials.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban authorization entry credentials: %w", err)
	}
	if err := sae.RootInvocation.Encode(buf); err != nil {
		return fmt.Errorf("encode soroban authorization entry root invocation: %w", err)
	}
	return nil
}

// Decode reads a SorobanAuthorizationEntry from XDR format.
func (sae *SorobanAuthorizationEntry) Decode(c *xdr.Cursor) error {
	var err error
	if err = sae.Credentials.Decode(c); err != nil {
		return fmt.Errorf("decode soroban authorization entry credentials: %w", err)
	}
	if err = sae.RootInvocation.Decode(c); err != nil {
		return fmt.Errorf("decode soroban authorization entry root invocation: %w", err)
	}
	return nil
}
