package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docbr/pkg/checkdigit"
	dErrors "docbr/pkg/domain-errors"
	"docbr/pkg/platform/digits"
)

func TestNewDocument_InfersKind(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want checkdigit.Kind
	}{
		{"cpf fixture", fixtureCPF, checkdigit.CPF},
		{"cnpj fixture", fixtureCNPJ, checkdigit.CNPJ},
		// 191 is valid under both schemes; CPF is tried first.
		{"valid as both resolves to cpf", 191, checkdigit.CPF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDocument(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Kind())
			assert.Equal(t, tt.v, d.Number())
			assert.False(t, d.IsZero())
		})
	}
}

func TestNewDocument_RejectsNeither(t *testing.T) {
	for _, v := range []uint64{fixtureCPF + 1, fixtureCNPJ + 1, 100_000_000_000_000} {
		d, err := NewDocument(v)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeAmbiguousOrInvalid))
		assert.True(t, d.IsZero())
	}
}

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind checkdigit.Kind
		wantErr  bool
	}{
		{"cpf punctuated", fixtureCPFFormatted, checkdigit.CPF, false},
		{"cpf plain", fixtureCPFText, checkdigit.CPF, false},
		{"cnpj punctuated", fixtureCNPJFormatted, checkdigit.CNPJ, false},
		{"cnpj plain", fixtureCNPJText, checkdigit.CNPJ, false},
		{"loose punctuation is stripped", "111 444 777 / 35", checkdigit.CPF, false},
		{"no digits", "abc", checkdigit.Unknown, true},
		{"empty", "", checkdigit.Unknown, true},
		{"overflow", "123456789012345678901234567890", checkdigit.Unknown, true},
		{"bad check digits", "111.444.777-36", checkdigit.Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDocument(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeAmbiguousOrInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, d.Kind())
		})
	}
}

func TestDocument_Delegates(t *testing.T) {
	t.Run("cpf", func(t *testing.T) {
		d := DocumentFromCPF(MustCPF(fixtureCPFText))
		assert.Equal(t, fixtureCPFText, d.String())
		assert.Equal(t, fixtureCPFFormatted, d.Formatted())
		assert.Equal(t, "00011144477735", d.Canonical(14))
		assert.Equal(t, fixtureCPFText, d.Canonical(0), "widths below one never truncate")

		c, ok := d.CPF()
		assert.True(t, ok)
		assert.Equal(t, MustCPF(fixtureCPFText), c)

		_, ok = d.CNPJ()
		assert.False(t, ok)
	})

	t.Run("cnpj", func(t *testing.T) {
		d := DocumentFromCNPJ(MustCNPJ(fixtureCNPJText))
		assert.Equal(t, fixtureCNPJText, d.String())
		assert.Equal(t, fixtureCNPJFormatted, d.Formatted())
		assert.Equal(t, digits.Strip(d.Formatted()), d.String())

		_, ok := d.CPF()
		assert.False(t, ok)
	})

	t.Run("zero document renders empty", func(t *testing.T) {
		var d Document
		assert.True(t, d.IsZero())
		assert.Equal(t, "", d.String())
		assert.Equal(t, "", d.Formatted())
		assert.Equal(t, "", d.Canonical(5))
		assert.Equal(t, uint64(0), d.Number())
	})
}

// TestDocument_Equality encodes the equality invariant: same kind and same
// number. Mismatched kinds are unequal regardless of number.
func TestDocument_Equality(t *testing.T) {
	a, err := NewDocument(fixtureCPF)
	require.NoError(t, err)
	b := DocumentFromCPF(MustCPF(fixtureCPFFormatted))
	assert.True(t, a == b)

	cpf191, err := NewCPF(191)
	require.NoError(t, err)
	cnpj191, err := NewCNPJ(191)
	require.NoError(t, err)

	asCPF := DocumentFromCPF(cpf191)
	asCNPJ := DocumentFromCNPJ(cnpj191)
	assert.Equal(t, asCPF.Number(), asCNPJ.Number())
	assert.False(t, asCPF == asCNPJ)
	assert.NotEqual(t, asCPF, asCNPJ)

	seen := map[Document]bool{asCPF: true}
	assert.False(t, seen[asCNPJ], "map keys follow the same equality")
}

func TestDocument_JSON(t *testing.T) {
	type payload struct {
		Document Document `json:"document"`
	}

	out, err := json.Marshal(payload{Document: MustDocument(fixtureCNPJFormatted)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"document":"11222333000181"}`, string(out))

	var in payload
	require.NoError(t, json.Unmarshal([]byte(`{"document":"111.444.777-35"}`), &in))
	assert.Equal(t, checkdigit.CPF, in.Document.Kind())
}
