package registry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
)

func newAsset() Value { return new(types.Asset) }

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if reg.Count() != 0 {
		t.Errorf("Expected 0 types, got %d", reg.Count())
	}
}

func TestRegister(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register("Asset", FamilyAccounts, newAsset); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := reg.Register("asset", FamilyAccounts, newAsset); err == nil {
		t.Error("Expected error registering a case-insensitive duplicate")
	}
	if err := reg.Register("", FamilyAccounts, newAsset); err == nil {
		t.Error("Expected error for empty name")
	}
	if err := reg.Register("Memo", FamilyTransactions, nil); err == nil {
		t.Error("Expected error for nil factory")
	}
	if reg.Count() != 1 {
		t.Errorf("Expected 1 type, got %d", reg.Count())
	}
}

func TestAliases(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("Asset", FamilyAccounts, newAsset); err != nil {
		t.Fatal(err)
	}

	if err := reg.RegisterAlias("a", "Asset"); err != nil {
		t.Fatalf("RegisterAlias failed: %v", err)
	}
	if err := reg.RegisterAlias("b", "Missing"); err == nil {
		t.Error("Expected error aliasing an unknown type")
	}
	if err := reg.RegisterAlias("ASSET", "Asset"); err == nil {
		t.Error("Expected error for alias shadowing a type")
	}
	if err := reg.Register("A", FamilyAccounts, newAsset); err == nil {
		t.Error("Expected error registering a type named like an alias")
	}

	e, err := reg.Lookup(" A ")
	if err != nil {
		t.Fatalf("Lookup via alias failed: %v", err)
	}
	if e.Name != "Asset" {
		t.Errorf("Expected Asset, got %q", e.Name)
	}
}

func TestLookup_NotFound(t *testing.T) {
	reg := NewStellarRegistry()

	_, err := reg.Lookup("Nope")
	if err == nil {
		t.Fatal("Expected error for unknown type")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Unexpected error: %v", err)
	}
	if reg.Exists("Nope") {
		t.Error("Exists should be false for unknown type")
	}
}

func TestStellarRegistry_Contents(t *testing.T) {
	reg := NewStellarRegistry()

	if reg.Count() != len(stellarTypes) {
		t.Errorf("Expected %d types, got %d", len(stellarTypes), reg.Count())
	}
	for _, name := range []string{"TransactionEnvelope", "scval", "tx", "ENVELOPE", "ClaimPredicate", "ConfigSettingEntry"} {
		if !reg.Exists(name) {
			t.Errorf("Expected %q to resolve", name)
		}
	}

	families := map[string]int{}
	for _, e := range reg.List() {
		families[e.Family]++
		if v := e.New(); v == nil {
			t.Errorf("%s factory returned nil", e.Name)
		}
	}
	for _, f := range []string{FamilyAccounts, FamilyLedger, FamilyOperations, FamilyTransactions, FamilySoroban} {
		if families[f] == 0 {
			t.Errorf("Family %q has no types", f)
		}
	}

	names := reg.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names not sorted: %v", names)
		}
	}
}

func TestList_SortedByFamily(t *testing.T) {
	list := NewStellarRegistry().List()
	for i := 1; i < len(list); i++ {
		a, b := list[i-1], list[i]
		if a.Family > b.Family || (a.Family == b.Family && a.Name > b.Name) {
			t.Fatalf("List out of order at %d: %s/%s before %s/%s", i, a.Family, a.Name, b.Family, b.Name)
		}
	}
}

func TestDefault_Shared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same registry")
	}
}

func TestDecode(t *testing.T) {
	reg := NewStellarRegistry()

	v, err := reg.Decode("SCVal", "AAAAAwAAAAU=")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	val := v.(*types.SCVal)
	if val.Type != types.SCValTypeU32 || val.U32 == nil || *val.U32 != 5 {
		t.Errorf("Unexpected value %+v", val)
	}

	if _, err := reg.Decode("SCVal", "###"); !errors.Is(err, xdr.ErrInvalidBase64) {
		t.Errorf("Expected ErrInvalidBase64, got %v", err)
	}
	if _, err := reg.Decode("SCVal", "AAAA"); !errors.Is(err, xdr.ErrBounds) {
		t.Errorf("Expected ErrBounds, got %v", err)
	}
	if _, err := reg.Decode("Nope", "AAAA"); err == nil {
		t.Error("Expected error for unknown type")
	}
}

func TestCanonical(t *testing.T) {
	reg := NewStellarRegistry()

	_, ok, err := reg.Canonical("Asset", []byte{0, 0, 0, 0})
	if err != nil || !ok {
		t.Errorf("Native asset should be canonical: ok=%v err=%v", ok, err)
	}

	// A bool of 2 is rejected, not normalised.
	_, _, err = reg.Canonical("SCVal", []byte{0, 0, 0, 0, 0, 0, 0, 2})
	if !errors.Is(err, xdr.ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got %v", err)
	}

	_, _, err = reg.Canonical("Asset", []byte{0, 0, 0, 0, 0, 0, 0, 0})
	if !errors.Is(err, xdr.ErrTrailingData) {
		t.Errorf("Expected ErrTrailingData, got %v", err)
	}
}

func TestGuess(t *testing.T) {
	reg := NewStellarRegistry()

	matches, err := reg.Guess(context.Background(), "AAAAAA==")
	if err != nil {
		t.Fatalf("Guess failed: %v", err)
	}
	var names []string
	for _, m := range matches {
		names = append(names, m.Name)
	}
	want := []string{"Asset", "ClaimPredicate", "Memo"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Guess = %v, want %v", names, want)
	}

	matches, err = reg.Guess(context.Background(), "AAAAAwAAAAU=")
	if err != nil {
		t.Fatalf("Guess failed: %v", err)
	}
	found := false
	for _, m := range matches {
		if m.Name == "SCVal" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected SCVal among %v", matches)
	}
}

func TestGuess_InvalidBase64(t *testing.T) {
	_, err := NewStellarRegistry().Guess(context.Background(), "not base64!")
	if !errors.Is(err, xdr.ErrInvalidBase64) {
		t.Errorf("Expected ErrInvalidBase64, got %v", err)
	}
}

func TestGuess_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewStellarRegistry().Guess(ctx, "AAAAAA=="); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
