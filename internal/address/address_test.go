package address

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want Kind
	}{
		{name: "transparent", addr: "t1Kz5W7yBcrp2LWvWkvePJv9XQZj1PPLWJC", want: Transparent},
		{name: "sprout z-address", addr: "zcU1Cd6zYyZCd2VJF8yKgmzjxdiiU1rgTTjEwoN1CGUWCziPkUTXUjXmX7TMqdMNsTfuiGN1jQoVN4kGxUR4sAPN4XZ7pxb", want: Shielded},
		{name: "sapling z-address", addr: "zs1z7rejlpsa98s2rrrfkwmaxu53e4ue0ulcrw0h4x5g8jl04tak0d3mm47vdtahatqrlkngh9sly", want: Shielded},
		{name: "short z prefix", addr: "zabc", want: Transparent},
		{name: "empty", addr: "", want: Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.addr))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Z (Private)", Shielded.String())
	assert.Equal(t, "T (Transparent)", Transparent.String())
}

func TestCheckKey(t *testing.T) {
	wif := base58.CheckEncode(make([]byte, 33), 0x80)

	assert.NoError(t, CheckKey(wif))
	assert.NoError(t, CheckKey("  "+wif+"\n"))
	assert.NoError(t, CheckKey("secret-extended-key-main1qqqqqqqq"))
	assert.NoError(t, CheckKey("SKxny894fJe2rmZjeuoE6GVfNkWoXfPp8337VrLLNWG56FjqVUYR"))
	assert.ErrorIs(t, CheckKey(""), ErrEmptyKey)

	broken := wif[:len(wif)-1] + flipLast(wif)
	assert.ErrorIs(t, CheckKey(broken), ErrInvalidChecksum)
}

func TestCheckTransparent(t *testing.T) {
	addr := base58.CheckEncode(make([]byte, 20), 0x1c)
	assert.True(t, CheckTransparent(addr))
	assert.False(t, CheckTransparent(strings.ToUpper(addr)+"x"))
}

func flipLast(s string) string {
	if s[len(s)-1] == '1' {
		return "2"
	}
	return "1"
}
