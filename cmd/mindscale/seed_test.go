package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFixtureToTest(t *testing.T) {
	raw := `
test_type: demo
title: Demo
questions:
  - text: first
    options:
      - { text: yes, score: 2 }
      - { text: no, score: 0 }
  - id: custom-q
    text: second
    options:
      - { id: custom-o, text: only, score: 1 }
results:
  - min_score: 0
    max_score: 1
    result_range: low
  - min_score: 2
    result_range: high
`
	var f fixture
	require.NoError(t, yaml.Unmarshal([]byte(raw), &f))

	test := f.toTest()
	assert.Equal(t, "demo", test.TestType)
	require.Len(t, test.Questions, 2)

	// Generated ids and 1-based order.
	assert.Equal(t, "demo-q1", test.Questions[0].ID)
	assert.Equal(t, 1, test.Questions[0].OrderIndex)
	assert.Equal(t, "demo-q1-o1", test.Questions[0].Options[0].ID)
	assert.Equal(t, 2, test.Questions[0].Options[0].Score)

	// Explicit ids survive.
	assert.Equal(t, "custom-q", test.Questions[1].ID)
	assert.Equal(t, "custom-o", test.Questions[1].Options[0].ID)

	require.Len(t, test.Results, 2)
	require.NotNil(t, test.Results[0].MaxScore)
	assert.Equal(t, 1, *test.Results[0].MaxScore)
	assert.Nil(t, test.Results[1].MaxScore)
}
