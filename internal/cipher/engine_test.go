package cipher_test

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"testing/quick"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/vigsig/internal/cipher"
)

// EncodeVector is one encode case from the golden file.
type EncodeVector struct {
	Description string `yaml:"description"`
	Plaintext   string `yaml:"plaintext"`
	Keyword     string `yaml:"keyword"`
	Keystream   string `yaml:"keystream"`
	Ciphertext  string `yaml:"ciphertext"`
	Signature   string `yaml:"signature"`
}

// DecodeVector is one decode case from the golden file.
type DecodeVector struct {
	Description string `yaml:"description"`
	Ciphertext  string `yaml:"ciphertext"`
	Keyword     string `yaml:"keyword"`
	Signature   string `yaml:"signature"`
	Trusted     bool   `yaml:"trusted"`
	Plaintext   string `yaml:"plaintext,omitempty"`
}

// Vectors is the golden file layout.
type Vectors struct {
	Encode  []EncodeVector `yaml:"encode"`
	Decode  []DecodeVector `yaml:"decode"`
	Invalid []string       `yaml:"invalid"`
}

func loadVectors(t *testing.T) Vectors {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	require.NoError(t, err)

	var vectors Vectors
	require.NoError(t, yaml.Unmarshal(data, &vectors))
	require.NotEmpty(t, vectors.Encode)
	require.NotEmpty(t, vectors.Decode)

	return vectors
}

func TestEncodeVectors(t *testing.T) {
	t.Parallel()

	engine := cipher.New()

	for _, tc := range loadVectors(t).Encode {
		t.Run(tc.Description, func(t *testing.T) {
			t.Parallel()

			key, err := cipher.ParseKeyword(tc.Keyword)
			require.NoError(t, err)
			assert.Equal(t, tc.Keystream, key.Keystream().String())

			got, err := engine.Encode(tc.Plaintext, tc.Keyword)
			require.NoError(t, err)

			assert.Equal(t, tc.Ciphertext, got.Ciphertext.String())
			assert.Equal(t, tc.Signature, got.Signature.String())
		})
	}
}

func TestDecodeVectors(t *testing.T) {
	t.Parallel()

	engine := cipher.New()

	for _, tc := range loadVectors(t).Decode {
		t.Run(tc.Description, func(t *testing.T) {
			t.Parallel()

			got, err := engine.Decode(tc.Ciphertext, tc.Keyword, tc.Signature)

			if !tc.Trusted {
				require.ErrorIs(t, err, cipher.ErrSignatureMismatch)
				assert.Zero(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.Plaintext, got.String())
		})
	}
}

func TestInvalidKeywordsRejected(t *testing.T) {
	t.Parallel()

	engine := cipher.New()

	for _, keyword := range loadVectors(t).Invalid {
		t.Run(keyword, func(t *testing.T) {
			t.Parallel()

			_, err := engine.Encode("0123456789abcdef", keyword)
			require.ErrorIs(t, err, cipher.ErrKeywordInvalid)

			var kerr *cipher.KeywordError
			require.ErrorAs(t, err, &kerr)
			assert.Equal(t, keyword, kerr.Keyword)
			assert.Equal(t, uint8(cipher.ParseHex(keyword, cipher.KeywordDigits)), kerr.Value)

			_, err = engine.Decode("0123456789abcdef", keyword, "0")
			require.ErrorIs(t, err, cipher.ErrKeywordInvalid)
		})
	}
}

func TestKeywordErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := cipher.New().Encode("0123456789abcdef", "FF")
	require.Error(t, err)
	assert.Equal(t, "keyword is invalid: FF, ff", err.Error())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	engine := cipher.New()

	roundTrip := func(plain uint64, keyByte uint8) bool {
		key, err := cipher.NewKey(keyByte)
		if err != nil {
			return true
		}

		plaintext := cipher.Block(plain).String()
		keyword := cipher.FormatHex(uint64(key.Value()), cipher.KeywordDigits)

		encoded, err := engine.Encode(plaintext, keyword)
		if err != nil {
			return false
		}

		decoded, err := engine.Decode(
			encoded.Ciphertext.String(),
			keyword,
			cipher.FormatHex(uint64(encoded.Signature), cipher.SignatureDigits),
		)

		return err == nil && decoded == cipher.Block(plain)
	}

	require.NoError(t, quick.Check(roundTrip, &quick.Config{MaxCount: 2000}))
}

func TestRoundTripEveryValidKeyword(t *testing.T) {
	t.Parallel()

	engine := cipher.New()
	plaintext := "0123456789abcdef"

	for value := range 256 {
		keyword := cipher.FormatHex(uint64(value), cipher.KeywordDigits)

		encoded, err := engine.Encode(plaintext, keyword)
		if errors.Is(err, cipher.ErrKeywordInvalid) {
			continue
		}

		require.NoError(t, err, keyword)

		decoded, err := engine.Decode(
			encoded.Ciphertext.String(),
			keyword,
			encoded.Signature.String(),
		)
		require.NoError(t, err, keyword)
		assert.Equal(t, plaintext, decoded.String(), keyword)
	}
}

func TestCorruptedSignatureRevealsNothing(t *testing.T) {
	t.Parallel()

	engine := cipher.New()

	encoded, err := engine.Encode("0123456789abcdef", "73")
	require.NoError(t, err)

	for digit := range 16 {
		if cipher.Signature(digit) == encoded.Signature {
			continue
		}

		recorder := &recordingTracer{}
		traced := cipher.New(cipher.WithTracer(recorder))

		got, err := traced.Decode(encoded.Ciphertext.String(), "73", fmt.Sprintf("%X", digit))
		require.ErrorIs(t, err, cipher.ErrSignatureMismatch)
		assert.Zero(t, got)

		for _, event := range recorder.events {
			assert.NotContains(t, event, "output", "plaintext must not be derived")
		}

		var serr *cipher.SignatureError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, encoded.Signature, serr.Expected)
		assert.Equal(t, cipher.Signature(digit), serr.Provided)
	}
}

func TestSignatureDependsOnCiphertextOnly(t *testing.T) {
	t.Parallel()

	engine := cipher.New()
	target := cipher.Block(0xe6ecda59f5523e08)

	var signatures []cipher.Signature

	for _, keyword := range []string{"73", "05", "a5", "12"} {
		key, err := cipher.ParseKeyword(keyword)
		require.NoError(t, err)

		plaintext := (target ^ key.Keystream()).String()

		encoded, err := engine.Encode(plaintext, keyword)
		require.NoError(t, err)
		require.Equal(t, target, encoded.Ciphertext)

		signatures = append(signatures, encoded.Signature)
	}

	for _, sig := range signatures {
		assert.Equal(t, cipher.Sign(target), sig)
	}
}

type recordingTracer struct {
	events []string
}

func (r *recordingTracer) Input(dir cipher.Direction, b cipher.Block) {
	r.events = append(r.events, "input:"+dir.String()+":"+b.String())
}

func (r *recordingTracer) Key(keyword string, k cipher.Key) {
	r.events = append(r.events, fmt.Sprintf("key:%s:%d", keyword, k.Length()))
}

func (r *recordingTracer) Keystream(b cipher.Block) {
	r.events = append(r.events, "keystream:"+b.String())
}

func (r *recordingTracer) Output(_ cipher.Direction, b cipher.Block) {
	r.events = append(r.events, "output:"+b.String())
}

func (r *recordingTracer) Signature(bits [cipher.SignatureBits]uint8, sig cipher.Signature) {
	r.events = append(r.events, fmt.Sprintf("signature:%v:%s", bits, sig))
}

func TestTracerOrder(t *testing.T) {
	t.Parallel()

	t.Run("encode", func(t *testing.T) {
		t.Parallel()

		recorder := &recordingTracer{}

		_, err := cipher.New(cipher.WithTracer(recorder)).Encode("0123456789abcdef", "73")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"input:encode:0123456789abcdef",
			"key:73:7",
			"keystream:e7cf9f3e7cf9f3e7",
			"output:e6ecda59f5523e08",
			"signature:[1 0 0 1]:9",
		}, recorder.events)
	})

	t.Run("decode", func(t *testing.T) {
		t.Parallel()

		recorder := &recordingTracer{}

		_, err := cipher.New(cipher.WithTracer(recorder)).Decode("f5fbc946ec523e08", "73", "F")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"key:73:7",
			"keystream:e7cf9f3e7cf9f3e7",
			"input:decode:f5fbc946ec523e08",
			"signature:[1 1 1 1]:F",
			"output:1234567890abcdef",
		}, recorder.events)
	})

	t.Run("invalid keyword on decode touches nothing", func(t *testing.T) {
		t.Parallel()

		recorder := &recordingTracer{}

		_, err := cipher.New(cipher.WithTracer(recorder)).Decode("f5fbc946ec523e08", "07", "F")
		require.ErrorIs(t, err, cipher.ErrKeywordInvalid)
		assert.Empty(t, recorder.events)
	})

	t.Run("invalid keyword on encode stops after input", func(t *testing.T) {
		t.Parallel()

		recorder := &recordingTracer{}

		_, err := cipher.New(cipher.WithTracer(recorder)).Encode("0123456789abcdef", "03")
		require.ErrorIs(t, err, cipher.ErrKeywordInvalid)
		assert.Equal(t, []string{"input:encode:0123456789abcdef"}, recorder.events)
	})
}
