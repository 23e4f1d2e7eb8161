package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/catasto/internal/encoding"
)

func TestDecode(t *testing.T) {
	header := "nome_completo;paternità\n"

	type testCase struct {
		name        string
		input       []byte
		wantCharset encoding.Charset
		want        string
	}

	tests := []testCase{
		{
			name:        "UTF8Passthrough",
			input:       []byte("nome_completo;paternità\nNicolò Sàvona;fu Giò\n"),
			wantCharset: encoding.UTF8,
			want:        "nome_completo;paternità\nNicolò Sàvona;fu Giò\n",
		},
		{
			name:        "UTF8BOMStripped",
			input:       append([]byte{0xEF, 0xBB, 0xBF}, header...),
			wantCharset: encoding.UTF8,
			want:        header,
		},
		{
			name: "Windows1252",
			// à = 0xE0
			input: []byte{
				'n', 'o', 'm', 'e', '_', 'c', 'o', 'm', 'p', 'l', 'e', 't', 'o', ';',
				'p', 'a', 't', 'e', 'r', 'n', 'i', 't', 0xE0, '\n',
			},
			wantCharset: encoding.Windows1252,
			want:        header,
		},
		{
			name:        "UTF16LE",
			input:       []byte{0xFF, 0xFE, 'a', 0x00, ';', 0x00, 0xE0, 0x00, '\n', 0x00},
			wantCharset: encoding.UTF16LE,
			want:        "a;à\n",
		},
		{
			name:        "Empty",
			input:       nil,
			wantCharset: encoding.UTF8,
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, charset, err := encoding.Decode(bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCharset, charset)

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNewUTF8Reader_LongInput(t *testing.T) {
	input := bytes.Repeat([]byte("Via Roma;12\n"), 1000)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestDecode_RuneSplitByPeekWindow(t *testing.T) {
	// 4095 ASCII bytes put the two-byte "à" across the 4096-byte window.
	input := append(bytes.Repeat([]byte("a"), 4095), "à\n"...)

	r, charset, err := encoding.Decode(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, encoding.UTF8, charset)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}
