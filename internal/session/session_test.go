package session_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/idelchi/vigsig/internal/session"
)

// TestTranscript replays a scripted session and compares the output byte for byte with the
// recorded transcript.
func TestTranscript(t *testing.T) {
	t.Parallel()

	input, err := os.ReadFile("testdata/session.in")
	require.NoError(t, err)

	want, err := os.ReadFile("testdata/session.golden")
	require.NoError(t, err)

	var out bytes.Buffer

	sess := session.New(&out, session.Options{Dump: true}, zap.NewNop())
	require.NoError(t, sess.Run(t.Context(), bytes.NewReader(input)))

	assert.Equal(t, string(want), out.String())
}

func TestQuietWithoutDump(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sess := session.New(&out, session.Options{Quiet: true}, zap.NewNop())
	require.NoError(t, sess.Run(t.Context(), strings.NewReader("enc 0123456789abcdef 73\nquit\nenc 0123456789abcdef 05\n")))

	want := `
Encoding plaintext: 0123456789abcdef with key 73
Plaintext as hex number: 0123456789abcdef
Generate key from input: 73, Key length: 7 Keyword: 01110011
Keystream: e7cf9f3e7cf9f3e7
Ciphertext: e6ecda59f5523e08
B0 : 1
B1 : 0
B2 : 0
B3 : 1
Ciphertext with signature: e6ecda59f5523e08  73 9

`

	assert.Equal(t, want, out.String())
}

func TestEndOfInputSaysGoodbye(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sess := session.New(&out, session.Options{}, zap.NewNop())
	require.NoError(t, sess.Run(t.Context(), strings.NewReader("hello\n")))

	assert.True(t, strings.HasSuffix(out.String(), "# :hello\nGoodbye\n"))
}

func TestUntrustedRevealsNoPlaintext(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	sess := session.New(&out, session.Options{Quiet: true, Dump: true}, zap.NewNop())
	require.NoError(t, sess.Run(t.Context(), strings.NewReader("dec e6ecda59f5523e08 73 8\n")))

	assert.Contains(t, out.String(), "Message is not from a trusted source!\n")
	assert.NotContains(t, out.String(), "Plaintext")
	assert.NotContains(t, out.String(), "Original plaintext")
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var out bytes.Buffer

	sess := session.New(&out, session.Options{Quiet: true}, zap.NewNop())
	err := sess.Run(ctx, strings.NewReader("enc 0123456789abcdef 73\n"))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
