package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func allOperationBodies(t *testing.T) []OperationBody {
	t.Helper()
	a := usd(t)
	native := NewNativeAsset()
	dest := NewMuxedAccount(key(0x10))
	balanceID := ClaimableBalanceID{Type: ClaimableBalanceIDTypeV0, V0: ptr(Hash(key(0xB0)))}
	home := String32("stellar.org")
	fn, err := NewSCValSymbol("hello")
	require.NoError(t, err)
	wasm := []byte{0x00, 0x61, 0x73, 0x6d}
	preimage := ContractIDPreimage{
		Type:        ContractIDPreimageTypeFromAddress,
		FromAddress: &ContractIDPreimageFromAddress{Address: NewAccountAddress(account(1)), Salt: Uint256(key(2))},
	}

	return []OperationBody{
		{Type: OperationTypeCreateAccount, CreateAccountOp: &CreateAccountOp{Destination: account(1), StartingBalance: 10_0000000}},
		{Type: OperationTypePayment, PaymentOp: &PaymentOp{Destination: dest, Asset: native, Amount: 1}},
		{Type: OperationTypePathPaymentStrictReceive, PathPaymentStrictReceiveOp: &PathPaymentStrictReceiveOp{
			SendAsset: native, SendMax: 100, Destination: dest, DestAsset: a, DestAmount: 50, Path: []Asset{a, native},
		}},
		{Type: OperationTypeManageSellOffer, ManageSellOfferOp: &ManageSellOfferOp{Selling: native, Buying: a, Amount: 10, Price: Price{N: 1, D: 3}}},
		{Type: OperationTypeCreatePassiveSellOffer, CreatePassiveSellOfferOp: &CreatePassiveSellOfferOp{Selling: a, Buying: native, Amount: 5, Price: Price{N: 2, D: 1}}},
		{Type: OperationTypeSetOptions, SetOptionsOp: &SetOptionsOp{
			SetFlags:     ptr(uint32(AccountFlagsAuthRevocable)),
			MasterWeight: ptr(uint32(10)),
			HomeDomain:   &home,
			Signer:       &Signer{Key: SignerKey{Type: SignerKeyTypeHashX, HashX: ptr(Uint256(key(3)))}, Weight: 2},
		}},
		{Type: OperationTypeChangeTrust, ChangeTrustOp: &ChangeTrustOp{Line: a.ToChangeTrustAsset(), Limit: 1 << 40}},
		{Type: OperationTypeAllowTrust, AllowTrustOp: &AllowTrustOp{
			Trustor:   account(4),
			Asset:     AssetCode{Type: AssetTypeCreditAlphanum4, AssetCode4: &AssetCode4{'U', 'S', 'D'}},
			Authorize: 1,
		}},
		{Type: OperationTypeAccountMerge, Destination: &dest},
		{Type: OperationTypeInflation},
		{Type: OperationTypeManageData, ManageDataOp: &ManageDataOp{DataName: "k", DataValue: ptr(DataValue("v"))}},
		{Type: OperationTypeBumpSequence, BumpSequenceOp: &BumpSequenceOp{BumpTo: 1 << 33}},
		{Type: OperationTypeManageBuyOffer, ManageBuyOfferOp: &ManageBuyOfferOp{Selling: a, Buying: native, BuyAmount: 7, Price: Price{N: 1, D: 1}, OfferID: 99}},
		{Type: OperationTypePathPaymentStrictSend, PathPaymentStrictSendOp: &PathPaymentStrictSendOp{
			SendAsset: a, SendAmount: 10, Destination: dest, DestAsset: native, DestMin: 1,
		}},
		{Type: OperationTypeCreateClaimableBalance, CreateClaimableBalanceOp: &CreateClaimableBalanceOp{
			Asset:     native,
			Amount:    100,
			Claimants: []Claimant{{Type: ClaimantTypeV0, V0: &ClaimantV0{Destination: account(5), Predicate: Unconditional()}}},
		}},
		{Type: OperationTypeClaimClaimableBalance, ClaimClaimableBalanceOp: &ClaimClaimableBalanceOp{BalanceID: balanceID}},
		{Type: OperationTypeBeginSponsoringFutureReserves, BeginSponsoringFutureReservesOp: &BeginSponsoringFutureReservesOp{SponsoredID: account(6)}},
		{Type: OperationTypeEndSponsoringFutureReserves},
		{Type: OperationTypeRevokeSponsorship, RevokeSponsorshipOp: &RevokeSponsorshipOp{
			Type:   RevokeSponsorshipTypeSigner,
			Signer: &RevokeSponsorshipOpSigner{AccountID: account(7), SignerKey: SignerKey{Type: SignerKeyTypePreAuthTx, PreAuthTx: ptr(Uint256(key(8)))}},
		}},
		{Type: OperationTypeClawback, ClawbackOp: &ClawbackOp{Asset: a, From: dest, Amount: 3}},
		{Type: OperationTypeClawbackClaimableBalance, ClawbackClaimableBalanceOp: &ClawbackClaimableBalanceOp{BalanceID: balanceID}},
		{Type: OperationTypeSetTrustLineFlags, SetTrustLineFlagsOp: &SetTrustLineFlagsOp{Trustor: account(9), Asset: a, SetFlags: 1}},
		{Type: OperationTypeLiquidityPoolDeposit, LiquidityPoolDepositOp: &LiquidityPoolDepositOp{
			LiquidityPoolID: PoolID(key(0xD0)), MaxAmountA: 10, MaxAmountB: 20, MinPrice: Price{N: 1, D: 2}, MaxPrice: Price{N: 2, D: 1},
		}},
		{Type: OperationTypeLiquidityPoolWithdraw, LiquidityPoolWithdrawOp: &LiquidityPoolWithdrawOp{LiquidityPoolID: PoolID(key(0xD0)), Amount: 5}},
		{Type: OperationTypeInvokeHostFunction, InvokeHostFunctionOp: &InvokeHostFunctionOp{
			HostFunction: HostFunction{
				Type: HostFunctionTypeInvokeContract,
				InvokeContract: &InvokeContractArgs{
					ContractAddress: NewContractAddress(ContractID(key(0xC0))),
					FunctionName:    *fn.Sym,
					Args:            []SCVal{NewSCValU32(1), NewSCValString("x")},
				},
			},
			Auth: []SorobanAuthorizationEntry{{
				Credentials: SorobanCredentials{Type: SorobanCredentialsTypeSourceAccount},
				RootInvocation: SorobanAuthorizedInvocation{Function: SorobanAuthorizedFunction{
					Type:       SorobanAuthorizedFunctionTypeContractFn,
					ContractFn: &InvokeContractArgs{ContractAddress: NewContractAddress(ContractID(key(0xC0))), FunctionName: "hello"},
				}},
			}},
		}},
		{Type: OperationTypeExtendFootprintTTL, ExtendFootprintTTLOp: &ExtendFootprintTTLOp{ExtendTo: 100000}},
		{Type: OperationTypeRestoreFootprint, RestoreFootprintOp: &RestoreFootprintOp{}},
		{Type: OperationTypeInvokeHostFunction, InvokeHostFunctionOp: &InvokeHostFunctionOp{
			HostFunction: HostFunction{Type: HostFunctionTypeUploadContractWasm, Wasm: &wasm},
		}},
		{Type: OperationTypeInvokeHostFunction, InvokeHostFunctionOp: &InvokeHostFunctionOp{
			HostFunction: HostFunction{Type: HostFunctionTypeCreateContractV2, CreateContractV2: &CreateContractArgsV2{
				ContractIDPreimage: preimage,
				Executable:         ContractExecutable{Type: ContractExecutableTypeWasm, WasmHash: ptr(Hash(key(0xEE)))},
				ConstructorArgs:    []SCVal{NewSCValBool(true)},
			}},
		}},
	}
}

func TestOperationBody_AllTypes(t *testing.T) {
	seen := map[OperationType]bool{}
	for _, body := range allOperationBodies(t) {
		t.Run(body.Type.String(), func(t *testing.T) {
			op := Operation{Body: body}
			out, _ := roundTrip(t, &op)
			assert.Equal(t, body.Type, out.Body.Type)

			want := 1
			if body.Type == OperationTypeInflation || body.Type == OperationTypeEndSponsoringFutureReserves {
				want = 0
			}
			assert.Equal(t, want, armCount(t, &out.Body))
		})
		seen[body.Type] = true
	}
	for v := range operationTypeNames {
		assert.True(t, seen[v], "no sample for %v", v)
	}
}

func TestOperation_SourceAccount(t *testing.T) {
	src := NewMuxedAccountWithID(key(0x30), 7)
	op := Operation{SourceAccount: &src, Body: OperationBody{Type: OperationTypeInflation}}
	out, data := roundTrip(t, &op)
	// flag(4) + type(4) + id(8) + key(32) + body type(4)
	assert.Len(t, data, 52)
	require.NotNil(t, out.SourceAccount)
	assert.Equal(t, uint64(7), out.SourceAccount.Med25519.ID)
}

func TestOperationBody_MissingArm(t *testing.T) {
	body := OperationBody{Type: OperationTypeAccountMerge}
	_, err := xdr.Marshal(&body)
	assert.ErrorIs(t, err, xdr.ErrInvalidValue)
}

func TestOperationResult_Successful(t *testing.T) {
	tests := []struct {
		name string
		in   OperationResult
		want bool
	}{
		{"payment success", OperationResult{Code: OperationResultCodeInner, Tr: &OperationResultTr{
			Type: OperationTypePayment, PaymentResult: &PaymentResult{Code: PaymentResultCodeSuccess},
		}}, true},
		{"payment malformed", OperationResult{Code: OperationResultCodeInner, Tr: &OperationResultTr{
			Type: OperationTypePayment, PaymentResult: &PaymentResult{Code: PaymentResultCodeMalformed},
		}}, false},
		{"bad auth", OperationResult{Code: OperationResultCodeBadAuth}, false},
		{"account merge", OperationResult{Code: OperationResultCodeInner, Tr: &OperationResultTr{
			Type: OperationTypeAccountMerge,
			AccountMergeResult: &AccountMergeResult{Code: AccountMergeResultCodeSuccess, SourceAccountBalance: ptr(int64(99))},
		}}, true},
		{"invoke host function", OperationResult{Code: OperationResultCodeInner, Tr: &OperationResultTr{
			Type:                     OperationTypeInvokeHostFunction,
			InvokeHostFunctionResult: &InvokeHostFunctionResult{Code: InvokeHostFunctionResultCodeSuccess, Success: ptr(Hash(key(1)))},
		}}, true},
		{"manage sell offer", OperationResult{Code: OperationResultCodeInner, Tr: &OperationResultTr{
			Type: OperationTypeManageSellOffer,
			ManageSellOfferResult: &ManageSellOfferResult{Code: ManageSellOfferResultCodeSuccess, Success: &ManageOfferSuccessResult{
				OffersClaimed: []ClaimAtom{{Type: ClaimAtomTypeOrderBook, OrderBook: &ClaimOfferAtom{
					SellerID: account(1), OfferID: 5, AssetSold: NewNativeAsset(), AmountSold: 1, AssetBought: usd(t), AmountBought: 2,
				}}},
				Offer: ManageOfferSuccessResultOffer{Effect: ManageOfferEffectDeleted},
			}},
		}}, true},
		{"inflation", OperationResult{Code: OperationResultCodeInner, Tr: &OperationResultTr{
			Type:            OperationTypeInflation,
			InflationResult: &InflationResult{Code: InflationResultCodeSuccess, Payouts: &[]InflationPayout{{Destination: account(2), Amount: 10}}},
		}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := roundTrip(t, &tt.in)
			assert.Equal(t, tt.want, out.Successful())
		})
	}
}

func TestPathPaymentResult_NoIssuer(t *testing.T) {
	a := usd(t)
	in := PathPaymentStrictReceiveResult{Code: PathPaymentStrictReceiveResultCodeNoIssuer, NoIssuer: &a}
	out, _ := roundTrip(t, &in)
	assert.Equal(t, "USD", out.NoIssuer.Code())

	ok := PathPaymentStrictReceiveResult{
		Code:    PathPaymentStrictReceiveResultCodeSuccess,
		Success: &PathPaymentStrictReceiveResultSuccess{Last: SimplePaymentResult{Destination: account(1), Asset: a, Amount: 5}},
	}
	roundTrip(t, &ok)
}

func TestTransactionResult_FeeBump(t *testing.T) {
	ops := []OperationResult{{Code: OperationResultCodeInner, Tr: &OperationResultTr{
		Type: OperationTypePayment, PaymentResult: &PaymentResult{Code: PaymentResultCodeSuccess},
	}}}
	in := TransactionResult{
		FeeCharged: 200,
		Result: TransactionResultResult{
			Code: TransactionResultCodeFeeBumpInnerSuccess,
			InnerResultPair: &InnerTransactionResultPair{
				TransactionHash: Hash(key(0xAB)),
				Result: InnerTransactionResult{
					FeeCharged: 100,
					Result:     InnerTransactionResultResult{Code: TransactionResultCodeSuccess, Results: &ops},
				},
			},
		},
	}
	out, _ := roundTrip(t, &in)
	assert.True(t, out.Successful())
	got, ok := out.OperationResults()
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.True(t, got[0].Successful())
}

func TestTransactionResult_Failed(t *testing.T) {
	in := TransactionResult{
		FeeCharged: 100,
		Result:     TransactionResultResult{Code: TransactionResultCodeFailed, Results: &[]OperationResult{{Code: OperationResultCodeNoAccount}}},
	}
	out, _ := roundTrip(t, &in)
	assert.False(t, out.Successful())
	got, ok := out.OperationResults()
	require.True(t, ok)
	assert.False(t, got[0].Successful())

	bad := TransactionResult{Result: TransactionResultResult{Code: TransactionResultCode(-2)}}
	out, _ = roundTrip(t, &bad)
	_, ok = out.OperationResults()
	assert.False(t, ok)
}
