// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/core"
)

func TestParseCondition(t *testing.T) {
	for _, tag := range []string{"Good", "Fair", "Poor"} {
		c, err := core.ParseCondition(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, core.Condition(tag), c)
		assert.True(t, c.Valid())
	}

	for _, tag := range []string{"good", "POOR", "", "Bueno"} {
		_, err := core.ParseCondition(tag)
		assert.ErrorIs(t, err, core.ErrUnknownCondition, tag)
	}
}

func TestCondition_Multiplier(t *testing.T) {
	assert.Equal(t, 1.5, core.Poor.Multiplier())
	assert.Equal(t, 1.2, core.Fair.Multiplier())
	assert.Equal(t, 1.0, core.Good.Multiplier())
	assert.Equal(t, 1.0, core.Condition("Muddy").Multiplier(), "unknown tags weigh ×1.0")
	assert.False(t, core.Condition("Muddy").Valid())
}

func TestVia_Weights(t *testing.T) {
	v := core.Via{To: 1, Distance: 10, Condition: core.Poor}
	assert.Equal(t, 10.0, core.RawWeight(v))
	assert.Equal(t, 15.0, core.PenalizedWeight(v))
	assert.Equal(t, 15.0, v.Penalized())

	v.Condition = core.Fair
	assert.InDelta(t, 12.0, v.Penalized(), 1e-9)

	v.Condition = core.Good
	assert.Equal(t, v.Distance, v.Penalized())
}

func TestPenalties_Weight(t *testing.T) {
	p := core.DefaultPenalties()
	for _, c := range []core.Condition{core.Good, core.Fair, core.Poor} {
		v := core.Via{Distance: 40, Condition: c}
		assert.InDelta(t, core.PenalizedWeight(v), p.Weight(v), 1e-9, string(c))
	}

	custom := core.Penalties{core.Poor: 3}
	assert.Equal(t, 30.0, custom.Weight(core.Via{Distance: 10, Condition: core.Poor}))
	assert.Equal(t, 10.0, custom.Weight(core.Via{Distance: 10, Condition: core.Fair}), "missing entry weighs ×1.0")
}
