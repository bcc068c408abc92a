package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_OrdersByPriority(t *testing.T) {
	input := []Alert{
		{Priority: PriorityLow, Message: "low"},
		{Priority: PriorityMedium, Message: "medium"},
		{Priority: PriorityCritical, Message: "critical"},
		{Priority: PriorityHigh, Message: "high"},
	}

	ranked := Rank(input)
	require.Len(t, ranked, 4)
	assert.Equal(t, "critical", ranked[0].Message)
	assert.Equal(t, "high", ranked[1].Message)
	assert.Equal(t, "medium", ranked[2].Message)
	assert.Equal(t, "low", ranked[3].Message)
}

func TestRank_IsStable(t *testing.T) {
	input := []Alert{
		{Priority: PriorityHigh, Message: "first high"},
		{Priority: PriorityCritical, Message: "critical"},
		{Priority: PriorityHigh, Message: "second high"},
		{Priority: PriorityHigh, Message: "third high"},
	}

	ranked := Rank(input)
	require.Len(t, ranked, 4)
	assert.Equal(t, "critical", ranked[0].Message)
	assert.Equal(t, "first high", ranked[1].Message)
	assert.Equal(t, "second high", ranked[2].Message)
	assert.Equal(t, "third high", ranked[3].Message)
}

func TestRank_UnknownPrioritySinksToLow(t *testing.T) {
	input := []Alert{
		{Priority: "", Message: "blank"},
		{Priority: PriorityLow, Message: "low"},
		{Priority: "urgentísimo", Message: "unknown"},
		{Priority: PriorityMedium, Message: "medium"},
	}

	ranked := Rank(input)
	require.Len(t, ranked, 4)
	assert.Equal(t, "medium", ranked[0].Message)
	// Unknown values keep their emission order among the low-ranked.
	assert.Equal(t, "blank", ranked[1].Message)
	assert.Equal(t, "low", ranked[2].Message)
	assert.Equal(t, "unknown", ranked[3].Message)
}

func TestRank_EmptyAndNil(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]Alert{}))
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	input := []Alert{
		{Priority: PriorityLow, Message: "low"},
		{Priority: PriorityCritical, Message: "critical"},
	}

	_ = Rank(input)
	assert.Equal(t, "low", input[0].Message)
	assert.Equal(t, "critical", input[1].Message)
}
