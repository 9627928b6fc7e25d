package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Soneso/stellar-php-sdk-sub004/cmd/xdrctl/cmdutil"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/stellar/types"
	"github.com/Soneso/stellar-php-sdk-sub004/pkg/xdr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes xdrctl with args and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDRCTL_LOGGING_OUTPUT", filepath.Join(dir, "xdrctl.log"))

	resetFlags(rootCmd)
	cmdutil.ResetConfig()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func envelopeBase64(t *testing.T) string {
	t.Helper()
	var k [32]byte
	k[0] = 7
	env := types.TransactionEnvelope{
		Type: types.EnvelopeTypeTx,
		V1: &types.TransactionV1Envelope{
			Tx: types.Transaction{
				SourceAccount: types.NewMuxedAccount(k),
				Fee:           100,
				SeqNum:        1,
			},
		},
	}
	s, err := env.ToBase64()
	require.NoError(t, err)
	require.Equal(t, minimalEnvelope, s)
	return s
}

// minimalEnvelope is a v1 envelope from source 0x07.., fee 100, sequence 1,
// no operations or signatures. The hashes are SHA-256 of its signature
// payload on each network.
const (
	minimalEnvelope = "AAAAAgAAAAAHAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAGQAAAAAAAAAAQAAAAAAAAAAAAAAAAAAAAAAAAAA"

	minimalEnvelopeTestnetHash    = "617b8a53b6413735c1ad69da56d15f3d7d3055fd873d227fc4ab398c3717c32c"
	minimalEnvelopePublicHash     = "ea82649870efb39b5f12c6a2a0ed240025c5015db91c9dda52ebd8ce1d8f979a"
	minimalEnvelopeStandaloneHash = "3bd3b8fcc8c8e4470534d0b2947a350a74584e10e39e53ca3dd576c7bb354cb3"
)

func TestDecode_JSON(t *testing.T) {
	out, err := run(t, "", "decode", "SCVal", "AAAAAwAAAAU=", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type":"SCV_U32","U32":5}`, out)
}

func TestDecode_StdinTable(t *testing.T) {
	out, err := run(t, "AAAA\nAwAAAAU=\n", "decode", "scval")
	require.NoError(t, err)
	assert.Contains(t, out, "SCV_U32")
	assert.Contains(t, out, "U32")
}

func TestDecode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asset.b64")
	require.NoError(t, os.WriteFile(path, []byte("AAAAAA==\n"), 0644))

	out, err := run(t, "", "decode", "Asset", "--file", path, "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "Type: ASSET_TYPE_NATIVE\n", out)
}

func TestDecode_Errors(t *testing.T) {
	_, err := run(t, "", "decode", "SCVal", "not base64!")
	assert.ErrorIs(t, err, xdr.ErrInvalidBase64)

	_, err = run(t, "", "decode", "SCVal", "AAAA")
	assert.ErrorIs(t, err, xdr.ErrBounds)

	_, err = run(t, "", "decode", "NoSuchType", "AAAA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, "  \n", "decode", "SCVal")
	assert.ErrorIs(t, err, cmdutil.ErrNoInput)
}

func TestDecode_BadOutputFlag(t *testing.T) {
	_, err := run(t, "", "decode", "Asset", "AAAAAA==", "-o", "xml")
	assert.Error(t, err)
}

func TestCheck_Canonical(t *testing.T) {
	out, err := run(t, "", "check", "Asset", "AAAAAA==")
	require.NoError(t, err)
	assert.Contains(t, out, "canonical")
	assert.Contains(t, out, "yes")
}

func TestCheck_NonCanonicalText(t *testing.T) {
	// Same bytes as AAAAAA== with stray bits in the final character.
	out, err := run(t, "", "check", "Asset", "AAAAAB==", "-o", "json")
	assert.ErrorIs(t, err, ErrNotCanonical)

	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Canonical)
	assert.Equal(t, "AAAAAA==", res.Base64)
	assert.Equal(t, 4, res.Bytes)
}

func TestCheck_TrailingData(t *testing.T) {
	out, err := run(t, "", "check", "Asset", "AAAAAAAAAAA=")
	assert.ErrorIs(t, err, xdr.ErrTrailingData)
	assert.Contains(t, out, "decode failed")
}

func TestGuess(t *testing.T) {
	out, err := run(t, "AAAAAA==", "guess", "-o", "json")
	require.NoError(t, err)

	var got []struct{ Type, Family string }
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	var names []string
	for _, m := range got {
		names = append(names, m.Type)
	}
	assert.Equal(t, []string{"Asset", "ClaimPredicate", "Memo"}, names)

	out, err = run(t, "", "guess", "AAAAAA==")
	require.NoError(t, err)
	assert.Contains(t, out, "ClaimPredicate")
	assert.Contains(t, out, "accounts")
}

func TestGuess_NoMatch(t *testing.T) {
	out, err := run(t, "", "guess", "AAA=")
	require.NoError(t, err)
	assert.Contains(t, out, "no type decodes")
}

func TestHash(t *testing.T) {
	s := envelopeBase64(t)

	out, err := run(t, "", "hash", s, "--network", "testnet", "-o", "json")
	require.NoError(t, err)

	var res struct {
		Network    string
		Passphrase string
		Envelope   string
		Hash       string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "testnet", res.Network)
	assert.Equal(t, types.TestNetworkPassphrase, res.Passphrase)
	assert.Equal(t, "ENVELOPE_TYPE_TX", res.Envelope)
	assert.Equal(t, minimalEnvelopeTestnetHash, res.Hash)
}

func TestHash_DefaultsToPublicNetwork(t *testing.T) {
	s := envelopeBase64(t)

	out, err := run(t, s, "hash")
	require.NoError(t, err)
	assert.Contains(t, out, minimalEnvelopePublicHash)
	assert.Contains(t, out, "public")
}

func TestHash_CustomPassphrase(t *testing.T) {
	s := envelopeBase64(t)

	out, err := run(t, "", "hash", s, "-n", "Standalone Network ; February 2017")
	require.NoError(t, err)
	assert.Contains(t, out, "custom")
	assert.Contains(t, out, minimalEnvelopeStandaloneHash)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "", "types", "-o", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "TransactionEnvelope")
	assert.Contains(t, names, "SCVal")
	assert.Len(t, names, cmdutil.Registry().Count())

	out, err = run(t, "", "types", "--family", "soroban")
	require.NoError(t, err)
	assert.Contains(t, out, "SorobanAuthorizationEntry")
	assert.NotContains(t, out, "LedgerEntry ")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "xdrctl dev")
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "xdrctl")

	_, err = run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xdrctl.yaml")

	out, err := run(t, "", "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = run(t, "", "config", "init", "--config", path)
	assert.Error(t, err)

	out, err = run(t, "", "config", "show", "--config", path, "-n", "futurenet")
	require.NoError(t, err)
	assert.Contains(t, out, "name: futurenet")
	assert.Contains(t, out, types.FutureNetworkPassphrase)

	out, err = run(t, "", "config", "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "configuration is valid")
}

func TestInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0644))

	_, err := run(t, "", "decode", "Asset", "AAAAAA==", "--config", path)
	assert.Error(t, err)

	// version does not need a valid configuration
	_, err = run(t, "", "version", "--config", path)
	assert.NoError(t, err)
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.b64")
	require.NoError(t, os.WriteFile(path, []byte("AAAAAA=="), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	changed := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 20*time.Millisecond, func() {
			calls.Add(1)
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("AAAAAwAAAAU="), 0644)
		select {
		case <-changed:
			return true
		default:
			return false
		}
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watchFile did not stop after cancel")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestWatchFile_MissingDirectory(t *testing.T) {
	err := watchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "v.b64"), 0, func() {})
	assert.Error(t, err)
}
