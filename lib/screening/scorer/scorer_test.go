package scorer

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type fakeClient struct {
	responses []string
	err       error
	calls     int
	usage     dbmodels.TokenUsage
}

func (f *fakeClient) Complete(ctx context.Context, systemPrompt, text string) (string, dbmodels.TokenUsage, error) {
	f.calls++
	if f.err != nil {
		return "", dbmodels.TokenUsage{}, f.err
	}
	response := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return response, f.usage, nil
}

func newScorer(client *fakeClient, retries int) Provider {
	s := &impl{
		client:         client,
		retries:        retries,
		attemptTimeout: time.Second,
		backoffStart:   time.Millisecond,
	}
	return s
}

func TestScorer(t *testing.T) {
	weights := dbmodels.DefaultScreeningWeights()

	t.Run(`provider JSON parsed from surrounding prose`, func(t *testing.T) {
		client := &fakeClient{
			responses: []string{`Вот оценка кандидата: {"score": 72.4, "highlights": ["go", "postgres"], "gaps": ["kubernetes"], "rationale": "solid match"} Удачи!`},
			usage:     dbmodels.TokenUsage{TotalTokens: 42},
		}
		result, err := newScorer(client, 2).Score(context.Background(), "resume", "jd", weights)
		require.Nil(t, err)
		require.Equal(t, 72, result.Score)
		require.Equal(t, []string{"go", "postgres"}, result.Highlights)
		require.Equal(t, []string{"kubernetes"}, result.Gaps)
		require.Equal(t, "solid match", result.Rationale)
		require.Equal(t, 42, result.Tokens.TotalTokens)
		require.False(t, result.Fallback)
		require.Equal(t, 1, client.calls)
	})

	t.Run(`score clamped to 0..100`, func(t *testing.T) {
		client := &fakeClient{responses: []string{`{"score": 150, "rationale": "x"}`}}
		result, err := newScorer(client, 0).Score(context.Background(), "resume", "jd", weights)
		require.Nil(t, err)
		require.Equal(t, 100, result.Score)

		client = &fakeClient{responses: []string{`{"score": -5, "rationale": "x"}`}}
		result, err = newScorer(client, 0).Score(context.Background(), "resume", "jd", weights)
		require.Nil(t, err)
		require.Equal(t, 0, result.Score)
	})

	t.Run(`retries then falls back to heuristic`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("сервис недоступен")}
		resume := "опытный go разработчик, postgres, docker"
		jd := "ищем go разработчика со знанием postgres и kubernetes"
		result, err := newScorer(client, 2).Score(context.Background(), resume, jd, weights)
		require.Nil(t, err)
		require.Equal(t, 3, client.calls)
		require.True(t, result.Fallback)
		require.GreaterOrEqual(t, result.Score, 0)
		require.LessOrEqual(t, result.Score, 100)
	})

	t.Run(`non-JSON response also triggers fallback`, func(t *testing.T) {
		client := &fakeClient{responses: []string{"кандидат очень хороший"}}
		result, err := newScorer(client, 0).Score(context.Background(), "go postgres", "go postgres", weights)
		require.Nil(t, err)
		require.True(t, result.Fallback)
		require.Equal(t, 100, result.Score)
	})

	t.Run(`empty jd keywords is a provider error`, func(t *testing.T) {
		client := &fakeClient{err: errors.New("сервис недоступен")}
		_, err := newScorer(client, 0).Score(context.Background(), "resume text", "- - -", weights)
		require.NotNil(t, err)
		require.True(t, apperrors.IsProvider(err))
	})

	t.Run(`heuristic score proportional to keyword overlap`, func(t *testing.T) {
		result, err := heuristicScore("знаю postgres", "нужны postgres kubernetes terraform", nil)
		require.Nil(t, err)
		require.True(t, result.Fallback)
		// совпало 1 ключевое слово из 4
		require.Equal(t, 25, result.Score)
	})
}
