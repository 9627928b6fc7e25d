package types

import (
	"bytes"
	"fmt"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

// SCEnvMetaKind enumerates sc env meta kind values.
type SCEnvMetaKind int32

const (
	SCEnvMetaKindInterfaceVersion SCEnvMetaKind = 0
)

var sCEnvMetaKindNames = map[SCEnvMetaKind]string{
	SCEnvMetaKindInterfaceVersion: "SC_ENV_META_KIND_INTERFACE_VERSION",
}

func (v SCEnvMetaKind) String() string { return enumString(sCEnvMetaKindNames, v, "SCEnvMetaKind") }

// MarshalText renders the protocol name of v.
func (v SCEnvMetaKind) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCEnvMetaKind) IsKnown() bool {
	_, ok := sCEnvMetaKindNames[v]
	return ok
}

// SCEnvMetaEntryInterfaceVersion is the host protocol a contract was built for.
type SCEnvMetaEntryInterfaceVersion struct {
	Protocol   uint32
	PreRelease uint32
}

// Encode writes an SCEnvMetaEntryInterfaceVersion in XDR format.
func (sce *SCEnvMetaEntryInterfaceVersion) Encode(buf *bytes.Buffer) error {
	xdr.WriteUint32(buf, sce.Protocol)
	xdr.WriteUint32(buf, sce.PreRelease)
	return nil
}

// Decode reads an SCEnvMetaEntryInterfaceVersion from XDR format.
func (sce *SCEnvMetaEntryInterfaceVersion) Decode(c *xdr.Cursor) error {
	var err error
	if sce.Protocol, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode sc env meta entry interface version protocol: %w", err)
	}
	if sce.PreRelease, err = xdr.DecodeUint32(c); err != nil {
		return fmt.Errorf("decode sc env meta entry interface version pre release: %w", err)
	}
	return nil
}

// SCEnvMetaEntry is an entry of the contractenvmetav0 custom section.
type SCEnvMetaEntry struct {
	Kind             SCEnvMetaKind
	InterfaceVersion *SCEnvMetaEntryInterfaceVersion
}

// Encode writes an SCEnvMetaEntry in XDR format.
func (sce *SCEnvMetaEntry) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, sce.Kind)
	switch sce.Kind {
	case SCEnvMetaKindInterfaceVersion:
		return xdr.EncodeArm(buf, sce.InterfaceVersion, "SCEnvMetaEntry", sce.Kind)
	}
	return nil
}

// Decode reads an SCEnvMetaEntry from XDR format.
func (sce *SCEnvMetaEntry) Decode(c *xdr.Cursor) error {
	*sce = SCEnvMetaEntry{}
	var err error
	if sce.Kind, err = xdr.DecodeUnionDiscriminant[SCEnvMetaKind](c); err != nil {
		return fmt.Errorf("decode sc env meta entry kind: %w", err)
	}
	switch sce.Kind {
	case SCEnvMetaKindInterfaceVersion:
		sce.InterfaceVersion, err = xdr.DecodeArm[SCEnvMetaEntryInterfaceVersion](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc env meta entry %v: %w", sce.Kind, err)
	}
	return nil
}

// SCMetaV0 is a free-form key/value pair embedded in a contract.
type SCMetaV0 struct {
	Key string
	Val string
}

// Encode writes an SCMetaV0 in XDR format.
func (scm *SCMetaV0) Encode(buf *bytes.Buffer) error {
	xdr.WriteString(buf, scm.Key)
	xdr.WriteString(buf, scm.Val)
	return nil
}

// Decode reads an SCMetaV0 from XDR format.
func (scm *SCMetaV0) Decode(c *xdr.Cursor) error {
	var err error
	if scm.Key, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc meta v0 key: %w", err)
	}
	if scm.Val, err = xdr.DecodeString(c); err != nil {
		return fmt.Errorf("decode sc meta v0 val: %w", err)
	}
	return nil
}

// SCMetaKind enumerates sc meta kind values.
type SCMetaKind int32

const (
	SCMetaKindV0 SCMetaKind = 0
)

var sCMetaKindNames = map[SCMetaKind]string{
	SCMetaKindV0: "SC_META_V0",
}

func (v SCMetaKind) String() string { return enumString(sCMetaKindNames, v, "SCMetaKind") }

// MarshalText renders the protocol name of v.
func (v SCMetaKind) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// IsKnown reports whether v is a value defined by the protocol.
func (v SCMetaKind) IsKnown() bool {
	_, ok := sCMetaKindNames[v]
	return ok
}

// SCMetaEntry is an entry of the contractmetav0 custom section.
type SCMetaEntry struct {
	Kind SCMetaKind
	V0   *SCMetaV0
}

// Encode writes an SCMetaEntry in XDR format.
func (scm *SCMetaEntry) Encode(buf *bytes.Buffer) error {
	xdr.EncodeUnionDiscriminant(buf, scm.Kind)
	switch scm.Kind {
	case SCMetaKindV0:
		return xdr.EncodeArm(buf, scm.V0, "SCMetaEntry", scm.Kind)
	}
	return nil
}

// Decode reads an SCMetaEntry from XDR format.
func (scm *SCMetaEntry) Decode(c *xdr.Cursor) error {
	*scm = SCMetaEntry{}
	var err error
	if scm.Kind, err = xdr.DecodeUnionDiscriminant[SCMetaKind](c); err != nil {
		return fmt.Errorf("decode sc meta entry kind: %w", err)
	}
	switch scm.Kind {
	case SCMetaKindV0:
		scm.V0, err = xdr.DecodeArm[SCMetaV0](c)
	}
	if err != nil {
		return fmt.Errorf("decode sc meta entry %v: %w", scm.Kind, err)
	}
	return nil
}
