package transcode

import (
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Transform_HexToBase32(t *testing.T) {
	out, err := Transform(enc.Hex, enc.Base32Rfc4648, []byte("616c6c796f75726261736561726562656c6f6e67746f7573"))
	require.NoError(t, err)
	require.Equal(t, "MFWGY6LPOVZGEYLTMVQXEZLCMVWG63THORXXK4Y=", string(out))
}

func Test_Transform_Base64ToRaw(t *testing.T) {
	out, err := Transform(enc.Base64Standard, enc.Raw, []byte("YWxseW91cmJhc2VhcmViZWxvbmd0b3VzIQ=="))
	require.NoError(t, err)
	require.Equal(t, "allyourbasearebelongtous!", string(out))
}

func Test_Transform_DecodeErrorStopsPipeline(t *testing.T) {
	out, err := Transform(enc.Hex, enc.Raw, []byte("abc"))
	require.Nil(t, out)
	require.True(t, errors.Is(err, enc.ErrMalformedHex))
}

func Test_Transform_EncodeError(t *testing.T) {
	out, err := Transform(enc.Hex, enc.UTF8, []byte("ff"))
	require.Nil(t, out)
	require.True(t, errors.Is(err, enc.ErrInvalidUtf8))

	out, err = Transform(enc.Raw, enc.ASCII, []byte("\x80"))
	require.Nil(t, out)
	require.True(t, errors.Is(err, enc.ErrNonAsciiOutput))
}

func Test_Transform_ErrorsSurfaceVerbatim(t *testing.T) {
	_, expected := enc.Decode(enc.Base64Standard, []byte("**"))
	_, err := Transform(enc.Base64Standard, enc.Hex, []byte("**"))
	require.Equal(t, expected.Error(), err.Error())
}

func Test_Transform_AllPairs(t *testing.T) {
	// every text-safe input can be carried between any two encodings
	raw := []byte("all your base are belong to us")
	level := log.GetLevel()
	log.SetLevel(log.TraceLevel)
	defer log.SetLevel(level)

	for _, source := range enc.All() {
		in, err := enc.Encode(source.Encoding, raw)
		require.NoError(t, err)

		for _, target := range enc.All() {
			expected, err := enc.Encode(target.Encoding, raw)
			require.NoError(t, err)

			p := NewPipeline(source.Encoding, target.Encoding)
			out, err := p.Run(in)
			require.NoErrorf(t, err, "Pipeline %v failed", p)
			require.Equal(t, expected, out, "Pipeline %v produced wrong output", p)
		}
	}
}

func Test_Pipeline_String(t *testing.T) {
	require.Equal(t, "base64:url|->base32:crockford", NewPipeline(enc.Base64UrlSafeNoPadding, enc.Base32Crockford).String())
}
