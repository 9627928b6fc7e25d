package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func TestClaimPredicate_NestedRoundTrip(t *testing.T) {
	in := And(
		Or(Not(Unconditional()), BeforeAbsoluteTime(1700000000)),
		BeforeRelativeTime(86400),
	)

	out, data := roundTrip(t, &in)

	assert.Equal(t, ClaimPredicateTypeAnd, out.Type)
	require.NotNil(t, out.AndPredicates)
	require.Len(t, *out.AndPredicates, 2)

	or := (*out.AndPredicates)[0]
	assert.Equal(t, ClaimPredicateTypeOr, or.Type)
	require.NotNil(t, or.OrPredicates)
	require.Len(t, *or.OrPredicates, 2)

	not := (*or.OrPredicates)[0]
	assert.Equal(t, ClaimPredicateTypeNot, not.Type)
	require.NotNil(t, not.NotPredicate)
	assert.Equal(t, ClaimPredicateTypeUnconditional, not.NotPredicate.Type)

	abs := (*or.OrPredicates)[1]
	require.NotNil(t, abs.AbsBefore)
	assert.Equal(t, int64(1700000000), *abs.AbsBefore)

	rel := (*out.AndPredicates)[1]
	require.NotNil(t, rel.RelBefore)
	assert.Equal(t, int64(86400), *rel.RelBefore)

	// and(4) + count(4) + or(4) + count(4) + not(4) + flag(4) + uncond(4)
	// + abs(4+8) + rel(4+8)
	assert.Len(t, data, 52)
	assert.Equal(t, []byte{
		0, 0, 0, 1, 0, 0, 0, 2, // and, 2 children
		0, 0, 0, 2, 0, 0, 0, 2, // or, 2 children
		0, 0, 0, 3, 0, 0, 0, 1, // not, present
		0, 0, 0, 0, // unconditional
		0, 0, 0, 4, 0, 0, 0, 0, 0x65, 0x53, 0xf1, 0x00, // before absolute 1700000000
		0, 0, 0, 5, 0, 0, 0, 0, 0x00, 0x01, 0x51, 0x80, // before relative 86400
	}, data)
}

func TestClaimPredicate_NotAbsent(t *testing.T) {
	in := ClaimPredicate{Type: ClaimPredicateTypeNot}
	data, err := xdr.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 3, 0, 0, 0, 0}, data)

	var out ClaimPredicate
	require.NoError(t, xdr.Unmarshal(data, &out))
	assert.Equal(t, ClaimPredicateTypeNot, out.Type)
	assert.Nil(t, out.NotPredicate)
}

func TestClaimPredicate_ArmExclusive(t *testing.T) {
	preds := []ClaimPredicate{
		Unconditional(),
		And(Unconditional(), Unconditional()),
		Or(Unconditional(), Unconditional()),
		Not(Unconditional()),
		BeforeAbsoluteTime(1),
		BeforeRelativeTime(2),
	}
	for _, p := range preds {
		t.Run(p.Type.String(), func(t *testing.T) {
			out, _ := roundTrip(t, &p)
			want := 1
			if p.Type == ClaimPredicateTypeUnconditional {
				want = 0
			}
			assert.Equal(t, want, armCount(t, out))
		})
	}
}

func TestClaimPredicate_MissingArm(t *testing.T) {
	for _, typ := range []ClaimPredicateType{
		ClaimPredicateTypeAnd,
		ClaimPredicateTypeOr,
		ClaimPredicateTypeBeforeAbsoluteTime,
		ClaimPredicateTypeBeforeRelativeTime,
	} {
		p := ClaimPredicate{Type: typ}
		_, err := xdr.Marshal(&p)
		assert.ErrorIs(t, err, xdr.ErrInvalidValue, typ.String())
	}
}

func TestClaimableBalanceEntry_RoundTrip(t *testing.T) {
	id := Hash(key(9))
	in := ClaimableBalanceEntry{
		BalanceID: ClaimableBalanceID{Type: ClaimableBalanceIDTypeV0, V0: &id},
		Claimants: []Claimant{{
			Type: ClaimantTypeV0,
			V0: &ClaimantV0{
				Destination: account(3),
				Predicate:   BeforeRelativeTime(3600),
			},
		}},
		Asset:  usd(t),
		Amount: 1000000,
		Ext: ClaimableBalanceEntryExt{
			V:  1,
			V1: &ClaimableBalanceEntryExtensionV1{Flags: uint32(ClaimableBalanceFlagsClawbackEnabled)},
		},
	}
	out, _ := roundTrip(t, &in)
	assert.Equal(t, int64(1000000), out.Amount)
	assert.Equal(t, 1, armCount(t, &out.Ext))
}
