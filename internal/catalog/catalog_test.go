package catalog

import (
	"testing"

	"dancenavi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()
	questions := cat.Questions()
	require.Len(t, questions, 6)

	order := []string{
		model.QuestionIDArea,
		model.QuestionIDLevel,
		model.QuestionIDAge,
		model.QuestionIDGenre,
		model.QuestionIDTeacher,
		model.QuestionIDConcern,
	}
	for i, q := range questions {
		assert.Equal(t, order[i], q.ID)
		assert.NotEmpty(t, q.Title)
		assert.NotEmpty(t, q.Options)
	}
}

// Every option consumed downstream must carry the field its question's logic
// expects: concern options a messageKey, all others a tag.
func TestOptionFieldInvariants(t *testing.T) {
	for _, q := range Default().Questions() {
		for _, opt := range q.Options {
			if q.Key == model.QuestionKeyConcern {
				assert.NotEmpty(t, opt.MessageKey, "concern option %s", opt.ID)
				assert.Empty(t, opt.Tag, "concern option %s", opt.ID)
			} else {
				assert.NotEmpty(t, opt.Tag, "option %s", opt.ID)
				assert.Empty(t, opt.MessageKey, "option %s", opt.ID)
			}
			if opt.IsOnline {
				assert.Equal(t, model.QuestionKeyArea, q.Key, "isOnline only belongs to area options")
			}
		}
	}
}

func TestOptionLookup(t *testing.T) {
	cat := Default()

	opt, ok := cat.Option(model.QuestionIDArea, "q1_shibuya")
	require.True(t, ok)
	assert.Equal(t, "shibuya", opt.Tag)

	_, ok = cat.Option(model.QuestionIDArea, "nope")
	assert.False(t, ok)

	_, ok = cat.Option("Q99", "q1_shibuya")
	assert.False(t, ok)
}

func TestConcernMessageFallback(t *testing.T) {
	cat := Default()

	known := cat.ConcernMessage("Concern_Beginner")
	assert.NotEmpty(t, known)

	unknown := cat.ConcernMessage("Concern_Nope")
	assert.Equal(t, cat.ConcernMessage(""), unknown)
	assert.NotEmpty(t, unknown)
	assert.NotEqual(t, known, unknown)
}
