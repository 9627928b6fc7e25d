package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// HostFunctionType enumerates host function type values.
type HostFunctionType int32

const (
	HostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeCreateContract     HostFunctionType = 1
	HostFunctionTypeUploadContractWasm HostFunctionType = 2
	HostFunctionTypeCreateContractV2   HostFunctionType = 3
)

var hostFunctionTypeNames = map[HostFunctionType]string{
	HostFunctionTypeInvokeContract:     "HOST_FUNCTION_TYPE_INVOKE_CONTRACT",
	HostFunctionTypeCreateContract:     "HOST_FUNCTION_TYPE_CREATE_CONTRACT",
	HostFunctionTypeUploadContractWasm: "HOST_FUNCTION_TYPE_UPLOAD_CONTRACT_WASM",
	HostFunctionTypeCreateContractV2:   "HOST_FUNCTION_TYPE_CREATE_CONTRACT_V2",
}

func (v HostFunctionType) String() string { return enumString(hostFunctionTypeNames, v, "HostFunctionType") }

// MarshalText renders the protocol name of v.
func (v HostFunctionType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v HostFunctionType) IsKnown() bool {
	_, ok := hostFunctionTypeNames[v]
	return ok
}

// ContractIDPreimageType enumerates contract id preimage type values.
type ContractIDPreimageType int32

const (
	ContractIDPreimageTypeFromAddress ContractIDPreimageType = 0
	ContractIDPreimageTypeFromAsset   ContractIDPreimageType = 1
)

var contractIDPreimageTypeNames = map[ContractIDPreimageType]string{
	ContractIDPreimageTypeFromAddress: "CONTRACT_ID_PREIMAGE_FROM_ADDRESS",
	ContractIDPreimageTypeFromAsset:   "CONTRACT_ID_PREIMAGE_FROM_ASSET",
}

func (v ContractIDPreimageType) String() string { return enumString(contractIDPreimageTypeNames, v, "ContractIDPreimageType") }

// MarshalText renders the protocol name of v.
func (v ContractIDPreimageType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v ContractIDPreimageType) IsKnown() bool {
	_, ok := contractIDPreimageTypeNames[v]
	return ok
}

// ContractIDPreimageFromAddress derives a contract id from a deployer and salt.
type ContractIDPreimageFromAddress struct {
	Address SCAddress
	Salt    Uint256
}

// Encode writes a ContractIDPreimageFromAddress in XDR format.
func (cid *ContractIDPreimageFromAddress) Encode(buf *bytes.Buffer) error {
	if err := cid.Address.Encode(buf); err != nil {
		return fmt.Errorf("encode contract id preimage from address address: %w", err)
	}
	if err := cid.Salt.Encode(buf); err != nil {
		return fmt.Errorf("encode contract id preimage from address salt: %w", err)
	}
	return nil
}

// Decode reads a ContractIDPreimageFromAddress from XDR format.
func (cid *ContractIDPreimageFromAddress) Decode(c *xdr.Cursor) error {
	var err error
	if err = cid.Address.Decode(c); err != nil {
		return fmt.Errorf("decode contract id preimage from address address: %w", err)
	}
	if err = cid.Salt.Decode(c); err != nil {
		return fmt.Errorf("decode contract id preimage from address salt: %w", err)
	}
	return nil
}

// ContractIDPreimage is hashed with the network id to derive a contract id.
type ContractIDPreimage struct {
	Type        ContractIDPreimageType
	FromAddress *ContractIDPreimageFromAddress
	FromAsset   *Asset
}

// Encode writes a ContractIDPreimage in XDR format.
func (cid *ContractIDPreimage) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, cid.Type)
	switch cid.Type {
	case ContractIDPreimageTypeFromAddress:
		return xdr.EncodeArm(buf, cid.FromAddress, "ContractIDPreimage", cid.Type)
	case ContractIDPreimageTypeFromAsset:
		return xdr.EncodeArm(buf, cid.FromAsset, "ContractIDPreimage", cid.Type)
	}
	return nil
}

// Decode reads a ContractIDPreimage from XDR format.
func (cid *ContractIDPreimage) Decode(c *xdr.Cursor) error {
	*cid = ContractIDPreimage{}
	var err error
	if cid.Type, err = xdr.DecodeUnionDiscriminant[ContractIDPreimageType](c); err != nil {
		return fmt.Errorf("decode contract id preimage type: %w", err)
	}
	switch cid.Type {
	case ContractIDPreimageTypeFromAddress:
		cid.FromAddress, err = xdr.DecodeArm[ContractIDPreimageFromAddress](c)
	case ContractIDPreimageTypeFromAsset:
		cid.FromAsset, err = xdr.DecodeArm[Asset](c)
	}
	if err != nil {
		return fmt.Errorf("decode contract id preimage %v: %w", cid.Type, err)
	}
	return nil
}

// CreateContractArgs creates a contract without constructor arguments.
type CreateContractArgs struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
}

// Encode writes a CreateContractArgs in XDR format.
func (cca *CreateContractArgs) Encode(buf *bytes.Buffer) error {
	if err := cca.ContractIDPreimage.Encode(buf); err != nil {
		return fmt.Errorf("encode create contract args contract id preimage: %w", err)
	}
	if err := cca.Executable.Encode(buf); err != nil {
		return fmt.Errorf("encode create contract args executable: %w", err)
	}
	return nil
}

// Decode reads a CreateContractArgs from XDR format.
func (cca *CreateContractArgs) Decode(c *xdr.Cursor) error {
	var err error
	if err = cca.ContractIDPreimage.Decode(c); err != nil {
		return fmt.Errorf("decode create contract args contract id preimage: %w", err)
	}
	if err = cca.Executable.Decode(c); err != nil {
		return fmt.Errorf("decode create contract args executable: %w", err)
	}
	return nil
}

// CreateContractArgsV2 creates a contract and passes arguments to its constructor.
type CreateContractArgsV2 struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
	ConstructorArgs    []SCVal
}

// Encode writes a CreateContractArgsV2 in XDR format.
func (cca *CreateContractArgsV2) Encode(buf *bytes.Buffer) error {
	if err := cca.ContractIDPreimage.Encode(buf); err != nil {
		return fmt.Errorf("encode create contract args v2 contract id preimage: %w", err)
	}
	if err := cca.Executable.Encode(buf); err != nil {
		return fmt.Errorf("encode create contract args v2 executable: %w", err)
	}
	if err := xdr.EncodeArray(buf, cca.ConstructorArgs); err != nil {
		return fmt.Errorf("encode create contract args v2 constructor args: %w", err)
	}
	return nil
}

// Decode reads a CreateContractArgsV2 from XDR format.
func (cca *CreateContractArgsV2) Decode(c *xdr.Cursor) error {
	var err error
	if err = cca.ContractIDPreimage.Decode(c); err != nil {
		return fmt.Errorf("decode create contract args v2 contract id preimage: %w", err)
	}
	if err = cca.Executable.Decode(c); err != nil {
		return fmt.Errorf("decode create contract args v2 executable: %w", err)
	}
	if cca.ConstructorArgs, err = xdr.DecodeArray[SCVal](c); err != nil {
		return fmt.Errorf("decode create contract args v2 constructor args: %w", err)
	}
	return nil
}

// InvokeContractArgs calls a function of a deployed contract.
type InvokeContractArgs struct {
	ContractAddress SCAddress
	FunctionName    SCSymbol
	Args            []SCVal
}

// Encode writes an InvokeContractArgs in XDR format.
func (ica *InvokeContractArgs) Encode(buf *bytes.Buffer) error {
	if err := ica.ContractAddress.Encode(buf); err != nil {
		return fmt.Errorf("encode invoke contract args contract address: %w", err)
	}
	if err := ica.FunctionName.Encode(buf); err != nil {
		return fmt.Errorf("encode invoke contract args function name: %w", err)
	}
	if err := xdr.EncodeArray(buf, ica.Args); err != nil {
		return fmt.Errorf("encode invoke contract args args: %w", err)
	}
	return nil
}

// Decode reads an InvokeContractArgs from XDR format.
func (ica *InvokeContractArgs) Decode(c *xdr.Cursor) error {
	var err error
	if err = ica.ContractAddress.Decode(c); err != nil {
		return fmt.Errorf("decode invoke contract args contract address: %w", err)
	}
	if err = ica.FunctionName.Decode(c); err != nil {
		return fmt.Errorf("decode invoke contract args function name: %w", err)
	}
	if ica.Args, err = xdr.DecodeArray[SCVal](c); err != nil {
		return fmt.Errorf("decode invoke contract args args: %w", err)
	}
	return nil
}

// HostFunction is the host call performed by an InvokeHostFunctionOp.
type HostFunction struct {
	Type             HostFunctionType
	InvokeContract   *InvokeContractArgs
	CreateContract   *CreateContractArgs
	Wasm             *[]byte
	CreateContractV2 *CreateContractArgsV2
}

// Encode writes a HostFunction in XDR format.
func (hf *HostFunction) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, hf.Type)
	switch hf.Type {
	case HostFunctionTypeInvokeContract:
		return xdr.EncodeArm(buf, hf.InvokeContract, "HostFunction", hf.Type)
	case HostFunctionTypeCreateContract:
		return xdr.EncodeArm(buf, hf.CreateContract, "HostFunction", hf.Type)
	case HostFunctionTypeUploadContractWasm:
		return xdr.EncodeArmFunc(buf, hf.Wasm, xdr.WriteOpaque, "HostFunction", hf.Type)
	case HostFunctionTypeCreateContractV2:
		return xdr.EncodeArm(buf, hf.CreateContractV2, "HostFunction", hf.Type)
	}
	return nil
}

// Decode reads a HostFunction from XDR format.
func (hf *HostFunction) Decode(c *xdr.Cursor) error {
	*hf = HostFunction{}
	var err error
	if hf.Type, err = xdr.DecodeUnionDiscriminant[HostFunctionType](c); err != nil {
		return fmt.Errorf("decode host function type: %w", err)
	}
	switch hf.Type {
	case HostFunctionTypeInvokeContract:
		hf.InvokeContract, err = xdr.DecodeArm[InvokeContractArgs](c)
	case HostFunctionTypeCreateContract:
		hf.CreateContract, err = xdr.DecodeArm[CreateContractArgs](c)
	case HostFunctionTypeUploadContractWasm:
		hf.Wasm, err = xdr.DecodeArmFunc(c, xdr.DecodeOpaque)
	case HostFunctionTypeCreateContractV2:
		hf.CreateContractV2, err = xdr.DecodeArm[CreateContractArgsV2](c)
	}
	if err != nil {
		return fmt.Errorf("decode host function %v: %w", hf.Type, err)
	}
	return nil
}
