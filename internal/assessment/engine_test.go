package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBank() *Bank {
	return NewBank(DefaultQuestions())
}

func TestScoreDominantStyle(t *testing.T) {
	bank := defaultBank()

	// Two Visual weight-3 picks beat one Kinesthetic weight-3 pick.
	res, err := Score(bank, []Answer{
		{QuestionID: 1, SelectedOption: 0}, // Visual, 3
		{QuestionID: 2, SelectedOption: 0}, // Visual, 3
		{QuestionID: 4, SelectedOption: 2}, // Kinesthetic, 3
	})
	require.NoError(t, err)

	assert.Equal(t, "Visual", res.LearningStyle)
	assert.Equal(t, 6, res.StyleScores["Visual"])
	assert.Equal(t, 3, res.StyleScores["Kinesthetic"])
	assert.Equal(t, 0, res.StyleScores["Auditory"])
}

func TestScoreTieResolvesToEnumerationOrder(t *testing.T) {
	bank := defaultBank()

	// Auditory 3, Kinesthetic 3: Auditory appears first in the fixed
	// order, so it wins the tie.
	res, err := Score(bank, []Answer{
		{QuestionID: 1, SelectedOption: 2}, // Kinesthetic, 3
		{QuestionID: 2, SelectedOption: 1}, // Auditory, 3
		{QuestionID: 3, SelectedOption: 2}, // Intermediate, 3
	})
	require.NoError(t, err)

	assert.Equal(t, "Auditory", res.LearningStyle)
	assert.Equal(t, "Intermediate", res.SkillLevel)
	assert.Equal(t, map[string]int{"Visual": 0, "Auditory": 3, "Kinesthetic": 3}, res.StyleScores)
}

func TestScoreLevelDefaultsToBeginner(t *testing.T) {
	bank := defaultBank()

	// No level-tagged option selected anywhere.
	res, err := Score(bank, []Answer{
		{QuestionID: 1, SelectedOption: 1},
		{QuestionID: 2, SelectedOption: 0},
		{QuestionID: 5, SelectedOption: 0}, // category-only option
	})
	require.NoError(t, err)

	assert.Equal(t, "Beginner", res.SkillLevel)
	assert.Equal(t, map[string]int{"Beginner": 0, "Intermediate": 0, "Advanced": 0}, res.LevelScores)
}

func TestScoreLevelAccumulation(t *testing.T) {
	bank := defaultBank()

	res, err := Score(bank, []Answer{
		{QuestionID: 3, SelectedOption: 3}, // Advanced, 4
	})
	require.NoError(t, err)

	assert.Equal(t, "Advanced", res.SkillLevel)
	assert.Equal(t, 4, res.LevelScores["Advanced"])
}

func TestScoreUnknownQuestion(t *testing.T) {
	bank := defaultBank()

	_, err := Score(bank, []Answer{{QuestionID: 99, SelectedOption: 0}})
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestScoreInvalidOptionIndex(t *testing.T) {
	bank := defaultBank()

	_, err := Score(bank, []Answer{{QuestionID: 1, SelectedOption: 4}})
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = Score(bank, []Answer{{QuestionID: 1, SelectedOption: -1}})
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestScoreEmptyAnswers(t *testing.T) {
	bank := defaultBank()

	res, err := Score(bank, nil)
	require.NoError(t, err)

	// Nothing scored: both classifications fall back to the first
	// entry of their enumeration.
	assert.Equal(t, "Visual", res.LearningStyle)
	assert.Equal(t, "Beginner", res.SkillLevel)
}

func TestBankLookup(t *testing.T) {
	bank := defaultBank()

	q, ok := bank.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "Your programming experience level is:", q.Question)
	assert.Len(t, q.Options, 4)

	_, ok = bank.Lookup(42)
	assert.False(t, ok)
}
