// Package matching computes semantic and combined match scores and
// ranks candidate pools against a subject.
package matching

// Weights for the combined score components. Semantic and skill
// weights sum to 1.
type Weights struct {
	Semantic float64
	Skill    float64
}

// DefaultWeights is the standard 60/40 semantic-vs-skill blend.
var DefaultWeights = Weights{Semantic: 0.6, Skill: 0.4}

// NeutralSemanticScore is substituted when the embedding provider is
// unavailable for a candidate. It is the value SemanticScore yields for
// orthogonal vectors, the midpoint of the rescaled range.
const NeutralSemanticScore = 50.0

// SemanticScore rescales a cosine similarity in [-1, 1] to [0, 100].
func SemanticScore(similarity float64) float64 {
	return clampScore((similarity + 1) / 2 * 100)
}

// Combine fuses the semantic score and skill-match percentage into a
// single combined score, clamped to [0, 100].
func (w Weights) Combine(semantic, skillPercentage float64) float64 {
	return clampScore(w.Semantic*semantic + w.Skill*skillPercentage)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
