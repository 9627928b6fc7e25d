package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func sampleAccountEntry() AccountEntry {
	sponsor := account(0x55)
	dest := account(0x66)
	return AccountEntry{
		AccountID:     account(0x44),
		Balance:       100_0000000,
		SeqNum:        123456789,
		NumSubEntries: 2,
		InflationDest: &dest,
		Flags:         uint32(AccountFlagsAuthRequired),
		HomeDomain:    "example.com",
		Thresholds:    Thresholds{1, 0, 0, 0},
		Signers: []Signer{{
			Key:    SignerKey{Type: SignerKeyTypeEd25519, Ed25519: ptr(Uint256(key(0x77)))},
			Weight: 1,
		}},
		Ext: AccountEntryExt{
			V: 1,
			V1: &AccountEntryExtensionV1{
				Liabilities: Liabilities{Buying: 10, Selling: 20},
				Ext: AccountEntryExtensionV1Ext{
					V: 2,
					V2: &AccountEntryExtensionV2{
						NumSponsored:        1,
						SignerSponsoringIDs: []SponsorshipDescriptor{{Sponsor: &sponsor}, {}},
						Ext: AccountEntryExtensionV2Ext{
							V:  3,
							V3: &AccountEntryExtensionV3{SeqLedger: 77, SeqTime: 1700000000},
						},
					},
				},
			},
		},
	}
}

func TestAccountEntry_ExtensionChain(t *testing.T) {
	in := sampleAccountEntry()
	out, _ := roundTrip(t, &in)

	v2 := out.Ext.V1.Ext.V2
	require.NotNil(t, v2)
	require.Len(t, v2.SignerSponsoringIDs, 2)
	assert.NotNil(t, v2.SignerSponsoringIDs[0].Sponsor)
	assert.Nil(t, v2.SignerSponsoringIDs[1].Sponsor)
	assert.Equal(t, uint32(77), v2.Ext.V3.SeqLedger)
}

func TestAccountEntry_BadExtVersion(t *testing.T) {
	in := sampleAccountEntry()
	in.Ext.V1 = nil
	_, err := xdr.Marshal(&in)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestLedgerEntry_Sponsor(t *testing.T) {
	acct := sampleAccountEntry()
	sponsor := account(0x99)
	in := LedgerEntry{
		LastModifiedLedgerSeq: 1000,
		Data:                  LedgerEntryData{Type: LedgerEntryTypeAccount, Account: &acct},
		Ext: LedgerEntryExt{
			V:  1,
			V1: &LedgerEntryExtensionV1{SponsoringID: SponsorshipDescriptor{Sponsor: &sponsor}},
		},
	}
	out, _ := roundTrip(t, &in)
	got, ok := out.Sponsor()
	require.True(t, ok)
	assert.True(t, sponsor.Equal(got))

	in.Ext = LedgerEntryExt{}
	_, ok = in.Sponsor()
	assert.False(t, ok)
}

func TestLedgerEntryData_LedgerKey(t *testing.T) {
	acct := sampleAccountEntry()
	contract := NewContractAddress(ContractID(key(0xC1)))
	tests := []struct {
		name string
		data LedgerEntryData
	}{
		{"account", LedgerEntryData{Type: LedgerEntryTypeAccount, Account: &acct}},
		{"trustline", LedgerEntryData{Type: LedgerEntryTypeTrustline, TrustLine: &TrustLineEntry{
			AccountID: account(1),
			Asset:     usd(t).ToTrustLineAsset(),
			Balance:   5,
			Limit:     100,
		}}},
		{"offer", LedgerEntryData{Type: LedgerEntryTypeOffer, Offer: &OfferEntry{
			SellerID: account(4),
			OfferID:  12,
			Selling:  NewNativeAsset(),
			Buying:   usd(t),
			Amount:   500,
			Price:    Price{N: 1, D: 2},
		}}},
		{"data", LedgerEntryData{Type: LedgerEntryTypeData, Data: &DataEntry{
			AccountID: account(2),
			DataName:  "config",
			DataValue: DataValue("v"),
		}}},
		{"contract data", LedgerEntryData{Type: LedgerEntryTypeContractData, ContractData: &ContractDataEntry{
			Contract:   contract,
			Key:        NewSCValLedgerKeyContractInstance(),
			Durability: ContractDataDurabilityPersistent,
			Val:        NewSCValU32(1),
		}}},
		{"contract code", LedgerEntryData{Type: LedgerEntryTypeContractCode, ContractCode: &ContractCodeEntry{
			Hash: Hash(key(0xCC)),
			Code: []byte{0, 'a', 's', 'm'},
		}}},
		{"ttl", LedgerEntryData{Type: LedgerEntryTypeTTL, TTL: &TTLEntry{KeyHash: Hash(key(3)), LiveUntilLedgerSeq: 9}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, &tt.data)

			k, err := tt.data.LedgerKey()
			require.NoError(t, err)
			assert.Equal(t, tt.data.Type, k.Type)
			assert.Equal(t, 1, armCount(t, &k))
			roundTrip(t, &k)
		})
	}
}

func TestLedgerEntryData_LedgerKeyMissingArm(t *testing.T) {
	_, err := LedgerEntryData{Type: LedgerEntryTypeOffer}.LedgerKey()
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestLedgerKey_ContractDataRoundTrip(t *testing.T) {
	in := LedgerKey{
		Type: LedgerEntryTypeContractData,
		ContractData: &LedgerKeyContractData{
			Contract:   NewContractAddress(ContractID(key(1))),
			Key:        NewSCValVec(NewSCValString("Balance"), NewSCValAddress(NewAccountAddress(account(2)))),
			Durability: ContractDataDurabilityTemporary,
		},
	}
	out, _ := roundTrip(t, &in)
	assert.Equal(t, ContractDataDurabilityTemporary, out.ContractData.Durability)
}
