package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearnModulesCatalog(t *testing.T) {
	modules := LearnModules()
	require.NotEmpty(t, modules)

	seen := map[string]bool{}
	for _, m := range modules {
		assert.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Sections)
		assert.NotEmpty(t, m.Takeaway)
	}
}

func TestExercisesCatalog(t *testing.T) {
	exercises := Exercises()
	require.NotEmpty(t, exercises)

	byID := map[string]Exercise{}
	for _, e := range exercises {
		assert.NotEmpty(t, e.Phases, e.ID)
		byID[e.ID] = e
	}

	breathing, ok := byID["breathing"]
	require.True(t, ok)
	assert.True(t, breathing.Looping)
	require.Len(t, breathing.Phases, 4)
	for _, p := range breathing.Phases {
		assert.Equal(t, 4, p.Seconds)
	}

	grounding, ok := byID["grounding"]
	require.True(t, ok)
	assert.Len(t, grounding.Phases, 5)
	assert.False(t, grounding.Looping)
}
