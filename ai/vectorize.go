package ai

// VectorSize is the input width of every persisted network.
const VectorSize = 100

// Vectorizer provides methods to transform text into numerical features.
type Vectorizer struct {
	size int
}

// NewVectorizer initializes a vectorizer with a fixed size.
// This size must match the input layer of the network it feeds.
func NewVectorizer(size int) *Vectorizer {
	if size <= 0 {
		size = VectorSize
	}
	return &Vectorizer{size: size}
}

// Features preprocesses a raw string and encodes its tokens.
func (v *Vectorizer) Features(text string) []float64 {
	return v.Encode(Preprocess(text))
}

// Encode maps the token at position i to slot i as the sum of its character
// codes divided by 1000. Tokens past the vector size are ignored and unused
// slots stay zero. Two different token lists may collide, any persisted model
// depends on this exact formula.
func (v *Vectorizer) Encode(tokens []string) []float64 {
	vec := make([]float64, v.size)
	for i, token := range tokens {
		if i >= v.size {
			break
		}
		sum := 0
		for _, c := range token {
			sum += int(c)
		}
		vec[i] = float64(sum) / 1000
	}
	return vec
}
