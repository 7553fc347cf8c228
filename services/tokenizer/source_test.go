package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReadySubmitState(t *testing.T) {
	tests := []struct {
		state              State
		submitThenRedirect bool
		expected           bool
	}{
		{StateChargeable, false, true},
		{StatePendingFunds, false, true},
		{StateConsumed, false, true},
		{StatePendingRedirect, false, false},
		{StateFailed, false, false},
		{StateChargeable, true, true},
		{StatePendingFunds, true, true},
		{StateConsumed, true, true},
		{StatePendingRedirect, true, true},
		{StateFailed, true, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.state), func(t *testing.T) {
			assert.Equal(t, tc.expected, IsReadySubmitState(tc.state, tc.submitThenRedirect))
		})
	}
}

func TestAutoAppliesToCart(t *testing.T) {
	assert.True(t, Source{Flow: FlowStandard}.AutoAppliesToCart())
	assert.True(t, Source{Flow: FlowReceiver}.AutoAppliesToCart())
	assert.False(t, Source{Flow: FlowRedirect}.AutoAppliesToCart())
	assert.False(t, Source{Flow: "anything_else"}.AutoAppliesToCart())
}

func TestRegistry(t *testing.T) {
	// given
	fallback := &stripeTokenizer{}
	redirect := &mollieTokenizer{}
	registry := NewRegistry(fallback)
	registry.Register("alipay", redirect)

	// when/then
	assert.Equal(t, Tokenizer(redirect), registry.For("alipay"))
	assert.Equal(t, Tokenizer(fallback), registry.For("creditCard"))
}
