package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorizer_Features_FixedLength(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(VectorSize)

	inputs := []string{"", "hello", "!!!", strings.Repeat("word ", 250)}
	for _, input := range inputs {
		req.Len(v.Features(input), VectorSize)
	}
}

func TestVectorizer_Encode_CharacterCodeSum(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(VectorSize)

	vec := v.Encode([]string{"abc", "hello"})

	req.InDelta(0.294, vec[0], 1e-12)
	req.InDelta(0.532, vec[1], 1e-12)
	for _, slot := range vec[2:] {
		req.Zero(slot)
	}
}

func TestVectorizer_Encode_IgnoresTokensPastSize(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(3)

	vec := v.Encode([]string{"aaa", "bbb", "ccc", "ddd"})

	req.Equal([]float64{0.291, 0.294, 0.297}, vec)
}

func TestVectorizer_Features_Deterministic(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(VectorSize)

	req.Equal(v.Features("What are your opening hours?"), v.Features("What are your opening hours?"))
}

func TestVectorizer_Encode_PositionDependent(t *testing.T) {
	req := require.New(t)
	v := NewVectorizer(VectorSize)

	req.NotEqual(v.Encode([]string{"hello", "world"}), v.Encode([]string{"world", "hello"}))
}
