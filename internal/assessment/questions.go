package assessment

// Learning styles and skill levels in their fixed enumeration order.
// Tie-breaking during scoring depends on this order, so it must not change.
const (
	StyleVisual      = "Visual"
	StyleAuditory    = "Auditory"
	StyleKinesthetic = "Kinesthetic"

	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

var (
	Styles = [3]string{StyleVisual, StyleAuditory, StyleKinesthetic}
	Levels = [3]string{LevelBeginner, LevelIntermediate, LevelAdvanced}
)

// Option is one selectable answer for a question. Style, Level and
// Category are optional tags; an option may carry any combination of
// them, each contributing Weight to its accumulator when selected.
type Option struct {
	Text     string `json:"text"`
	Style    string `json:"style,omitempty"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
	Weight   int    `json:"weight"`
}

type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Bank is an id-indexed view over a fixed question list. Built once at
// startup and treated as read-only afterwards.
type Bank struct {
	questions []Question
	byID      map[int]Question
}

func NewBank(questions []Question) *Bank {
	byID := make(map[int]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return &Bank{questions: questions, byID: byID}
}

// Questions returns the bank in its original order.
func (b *Bank) Questions() []Question {
	return b.questions
}

func (b *Bank) Lookup(id int) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// DefaultQuestions is the built-in question bank served by
// GET /assessment/questions and scored by Score.
func DefaultQuestions() []Question {
	return []Question{
		{
			ID:       1,
			Question: "How do you prefer to learn new concepts?",
			Options: []Option{
				{Text: "Reading detailed explanations and documentation", Style: StyleVisual, Weight: 3},
				{Text: "Listening to lectures and discussions", Style: StyleAuditory, Weight: 3},
				{Text: "Hands-on practice and experimentation", Style: StyleKinesthetic, Weight: 3},
				{Text: "Watching video tutorials", Style: StyleVisual, Weight: 2},
			},
		},
		{
			ID:       2,
			Question: "When solving problems, you typically:",
			Options: []Option{
				{Text: "Draw diagrams or flowcharts", Style: StyleVisual, Weight: 3},
				{Text: "Talk through the problem aloud", Style: StyleAuditory, Weight: 3},
				{Text: "Jump in and try different solutions", Style: StyleKinesthetic, Weight: 3},
				{Text: "Think silently and methodically", Style: StyleVisual, Weight: 2},
			},
		},
		{
			ID:       3,
			Question: "Your programming experience level is:",
			Options: []Option{
				{Text: "Complete beginner", Level: LevelBeginner, Weight: 1},
				{Text: "Some basic knowledge", Level: LevelBeginner, Weight: 2},
				{Text: "Intermediate skills", Level: LevelIntermediate, Weight: 3},
				{Text: "Advanced programmer", Level: LevelAdvanced, Weight: 4},
			},
		},
		{
			ID:       4,
			Question: "Which learning environment motivates you most?",
			Options: []Option{
				{Text: "Quiet study with visual materials", Style: StyleVisual, Weight: 3},
				{Text: "Group discussions and study sessions", Style: StyleAuditory, Weight: 3},
				{Text: "Interactive workshops and labs", Style: StyleKinesthetic, Weight: 3},
				{Text: "Online self-paced courses", Style: StyleVisual, Weight: 2},
			},
		},
		{
			ID:       5,
			Question: "Your career goal is primarily in:",
			Options: []Option{
				{Text: "Software Development", Category: "Development", Weight: 3},
				{Text: "Data Science/AI", Category: "Data Science", Weight: 3},
				{Text: "Cybersecurity", Category: "Security", Weight: 3},
				{Text: "Product Management", Category: "Management", Weight: 3},
			},
		},
	}
}
