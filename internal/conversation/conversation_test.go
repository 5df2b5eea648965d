package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talgya/tavern-cognition/internal/belief"
	"github.com/talgya/tavern-cognition/internal/social"
)

func TestConversationDeepensFriendship(t *testing.T) {
	g := social.NewGraph()
	r := g.Get("a", "b")
	r.Affinity = 0.55
	r.Trust = 0.4
	r.Respect = 0.3
	r.Familiarity = 0.6

	c := Start([]string{"a", "b"}, "feelings", 0)
	for i := 0; i < 6; i++ {
		speaker := "a"
		if i%2 == 1 {
			speaker = "b"
		}
		c.Exchange(speaker, "I feel a sense of hope", "warm", float64(i))
	}

	models := map[string]*belief.System{
		"a": belief.NewSystem(),
		"b": belief.NewSystem(),
	}
	q := c.End(10, g, models)

	assert.Equal(t, Positive, q)
	assert.GreaterOrEqual(t, c.Depth, 0.6)
	assert.GreaterOrEqual(t, r.Affinity, 0.55+0.1*0.6)
	assert.Equal(t, social.Friend, r.Type)
}

func TestTensionWordsRaiseTension(t *testing.T) {
	c := Start([]string{"a", "b"}, "argument", 0)
	c.Exchange("a", "you are wrong and I disagree", "sharp", 0)
	assert.InDelta(t, 0.15, c.Tension, 1e-9)
}

func TestNegativeConversationReducesAffinity(t *testing.T) {
	g := social.NewGraph()
	r := g.Get("a", "b")
	r.Affinity = 0.3

	c := Start([]string{"a", "b"}, "dispute", 0)
	for i := 0; i < 5; i++ {
		c.Exchange("a", "that is a lie and you are wrong, I feel cheated", "angry", float64(i))
	}
	q := c.End(10, g, nil)
	assert.Equal(t, Negative, q)
	assert.Less(t, r.Affinity, 0.3)
}

func TestDeepConversationBumpsModelConfidence(t *testing.T) {
	models := map[string]*belief.System{
		"a": belief.NewSystem(),
		"b": belief.NewSystem(),
	}
	c := Start([]string{"a", "b"}, "secrets", 0)
	for i := 0; i < 8; i++ {
		c.Exchange("a", "I'll tell you a secret truth", "hushed", float64(i))
	}
	c.End(10, nil, models)
	assert.Greater(t, models["a"].ModelOf("b").ModelConfidence, 0.0)
}
