package assessment

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuestion = errors.New("unknown question id")
	ErrInvalidOption   = errors.New("invalid option index")
)

// Answer is one submitted choice: the id of a bank question and the
// zero-based index of the selected option.
type Answer struct {
	QuestionID     int `json:"question_id"`
	SelectedOption int `json:"selected_option"`
}

// Result is the derived classification plus the raw accumulator tables
// it was decided from.
type Result struct {
	LearningStyle string         `json:"learning_style"`
	SkillLevel    string         `json:"skill_level"`
	StyleScores   map[string]int `json:"style_scores"`
	LevelScores   map[string]int `json:"level_scores"`
}

// Score tallies the weighted tags of every selected option and picks
// the dominant learning style and skill level. Winners are chosen by a
// max scan over the fixed Styles/Levels order, so ties resolve to the
// earlier entry. A level table that never got a contribution yields
// Beginner.
func Score(bank *Bank, answers []Answer) (Result, error) {
	styleScores := map[string]int{StyleVisual: 0, StyleAuditory: 0, StyleKinesthetic: 0}
	levelScores := map[string]int{LevelBeginner: 0, LevelIntermediate: 0, LevelAdvanced: 0}

	for _, a := range answers {
		q, ok := bank.Lookup(a.QuestionID)
		if !ok {
			return Result{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, a.QuestionID)
		}
		if a.SelectedOption < 0 || a.SelectedOption >= len(q.Options) {
			return Result{}, fmt.Errorf("%w: question %d has no option %d",
				ErrInvalidOption, a.QuestionID, a.SelectedOption)
		}
		opt := q.Options[a.SelectedOption]
		if opt.Style != "" {
			styleScores[opt.Style] += opt.Weight
		}
		if opt.Level != "" {
			levelScores[opt.Level] += opt.Weight
		}
	}

	style := Styles[0]
	for _, s := range Styles[1:] {
		if styleScores[s] > styleScores[style] {
			style = s
		}
	}

	level := Levels[0]
	for _, l := range Levels[1:] {
		if levelScores[l] > levelScores[level] {
			level = l
		}
	}

	return Result{
		LearningStyle: style,
		SkillLevel:    level,
		StyleScores:   styleScores,
		LevelScores:   levelScores,
	}, nil
}
