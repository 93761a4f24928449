package catalog

import "dancenavi/internal/model"

// Catalog is the immutable question/option set the diagnosis runs on. It is
// built once at startup and shared across requests without synchronization.
type Catalog struct {
	questions []model.Question
	byID      map[string]*model.Question
	messages  map[string]string
	fallback  string
}

// New builds a catalog from a question list and a concern messageKey table
func New(questions []model.Question, messages map[string]string, fallbackMessage string) *Catalog {
	c := &Catalog{
		questions: questions,
		byID:      make(map[string]*model.Question, len(questions)),
		messages:  messages,
		fallback:  fallbackMessage,
	}
	for i := range questions {
		c.byID[questions[i].ID] = &questions[i]
	}
	return c
}

// Default returns the built-in six-question diagnosis catalog
func Default() *Catalog {
	return New(defaultQuestions, concernMessages, defaultConcernMessage)
}

// Questions returns the ordered question list
func (c *Catalog) Questions() []model.Question {
	return c.questions
}

// Question looks up a question by id
func (c *Catalog) Question(id string) (*model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Option resolves the selected option of a question. Returns false when the
// question or option id is unknown.
func (c *Catalog) Option(questionID, optionID string) (*model.Option, bool) {
	q, ok := c.byID[questionID]
	if !ok {
		return nil, false
	}
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// ConcernMessage resolves a concern messageKey to display copy. Unknown or
// empty keys yield the neutral default so a response always carries a message.
func (c *Catalog) ConcernMessage(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return c.fallback
}
