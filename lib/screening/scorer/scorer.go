package scorer

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	gptclient "hr-automation-hub/lib/screening/gpt-client"
	"hr-automation-hub/lib/utils/lock"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

// Result — результат одной попытки скоринга резюме против вакансии
type Result struct {
	Score      int
	Highlights []string
	Gaps       []string
	Rationale  string
	Tokens     dbmodels.TokenUsage
	// Fallback выставляется, когда оценку дала эвристика, а не провайдер
	Fallback bool
}

type Provider interface {
	Score(ctx context.Context, resumeText, jdText string, weights dbmodels.ScreeningWeights) (Result, error)
}

func NewInstance(client gptclient.Provider, retries int, attemptTimeout time.Duration) Provider {
	return &impl{
		client:         client,
		retries:        retries,
		attemptTimeout: attemptTimeout,
		backoffStart:   500 * time.Millisecond,
	}
}

type impl struct {
	client         gptclient.Provider
	retries        int
	attemptTimeout time.Duration
	backoffStart   time.Duration
}

func (i impl) Score(ctx context.Context, resumeText, jdText string, weights dbmodels.ScreeningWeights) (Result, error) {
	systemPrompt := buildPrompt(weights)
	text := fmt.Sprintf("RESUME:\n%s\n\nJOB DESCRIPTION:\n%s", resumeText, jdText)

	backoff := i.backoffStart
	var lastErr error
	for attempt := 0; attempt <= i.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
		result, err := i.attempt(ctx, systemPrompt, text)
		if err == nil {
			return result, nil
		}
		lastErr = err
		log.WithError(err).
			WithField("attempt", attempt).
			Warn("попытка скоринга через провайдера не удалась")
	}

	log.WithError(lastErr).Warn("провайдер скоринга исчерпал попытки, переходим на эвристику")
	return heuristicScore(resumeText, jdText, lastErr)
}

func (i impl) attempt(ctx context.Context, systemPrompt, text string) (Result, error) {
	if !lock.Resource.Acquire(ctx, "ResumeScore") {
		return Result{}, errors.New("контекст завершён в ожидании доступа к LLM")
	}
	defer lock.Resource.Release("ResumeScore")

	attemptCtx, cancel := context.WithTimeout(ctx, i.attemptTimeout)
	defer cancel()

	raw, usage, err := i.client.Complete(attemptCtx, systemPrompt, text)
	if err != nil {
		return Result{}, err
	}
	parsed, err := parseResponse(raw)
	if err != nil {
		return Result{}, err
	}
	parsed.Tokens = usage
	return parsed, nil
}

func buildPrompt(weights dbmodels.ScreeningWeights) string {
	return fmt.Sprintf("You are an expert technical recruiter. Evaluate the candidate against the JD. "+
		"Weights: projects=%.1f, skills=%.1f, experience=%.1f. "+
		"Respond with strict JSON only, keys: score(0-100), highlights[], gaps[], rationale.",
		weights.Projects, weights.Skills, weights.Experience)
}

type providerPayload struct {
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights"`
	Gaps       []string `json:"gaps"`
	Rationale  string   `json:"rationale"`
}

// parseResponse достаёт строгий JSON из ответа провайдера,
// терпимо к окружающей прозе — берётся первый блок {...}
func parseResponse(raw string) (Result, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return Result{}, apperrors.NewProviderError("в ответе провайдера нет JSON")
	}
	var payload providerPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return Result{}, errors.Wrap(err, "ошибка разбора JSON ответа провайдера")
	}
	score := int(math.Round(payload.Score))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Result{
		Score:      score,
		Highlights: payload.Highlights,
		Gaps:       payload.Gaps,
		Rationale:  payload.Rationale,
	}, nil
}

var wordRe = regexp.MustCompile(`[a-zA-Zа-яА-ЯёЁ0-9+#]{3,}`)

var stopWords = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {}, "you": {}, "are": {},
	"will": {}, "our": {}, "this": {}, "that": {}, "have": {}, "has": {},
}

func keywords(text string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, word := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, skip := stopWords[word]; skip {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

// heuristicScore — детерминированный fallback: доля ключевых слов вакансии,
// встретившихся в резюме. Ошибка только когда из jd нечего извлечь.
func heuristicScore(resumeText, jdText string, providerErr error) (Result, error) {
	jdWords := keywords(jdText)
	if len(jdWords) == 0 {
		return Result{}, apperrors.NewProviderError("скоринг недоступен: пустое описание вакансии")
	}
	resumeWords := keywords(resumeText)
	matched := 0
	for word := range jdWords {
		if _, ok := resumeWords[word]; ok {
			matched++
		}
	}
	score := int(math.Round(100 * float64(matched) / float64(len(jdWords))))
	rationale := "keyword-overlap fallback"
	if providerErr != nil {
		rationale = fmt.Sprintf("keyword-overlap fallback (provider: %v)", providerErr)
	}
	return Result{
		Score:     score,
		Rationale: rationale,
		Fallback:  true,
	}, nil
}
