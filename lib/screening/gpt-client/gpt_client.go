package gptclient

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	yandexgpt "github.com/sheeiavellie/go-yandexgpt"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Complete(ctx context.Context, systemPrompt, text string) (generatedText string, usage dbmodels.TokenUsage, err error)
}

type impl struct {
	client    *yandexgpt.YandexGPTClient
	catalogID string
}

func NewClient(apiKey, catalog string) Provider {
	return impl{
		client:    yandexgpt.NewYandexGPTClientWithAPIKey(apiKey),
		catalogID: catalog,
	}
}

func (i impl) Complete(ctx context.Context, systemPrompt, text string) (string, dbmodels.TokenUsage, error) {
	request := yandexgpt.YandexGPTRequest{
		ModelURI: yandexgpt.MakeModelURI(i.catalogID, yandexgpt.YandexGPTModelLite),
		CompletionOptions: yandexgpt.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   2000,
		},
		Messages: []yandexgpt.YandexGPTMessage{
			{
				Role: yandexgpt.YandexGPTMessageRoleSystem,
				Text: systemPrompt,
			},
			{
				Role: yandexgpt.YandexGPTMessageRoleUser,
				Text: text,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", dbmodels.TokenUsage{}, errors.Wrap(err, "Ошибка при отправке запроса на скоринг в API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", dbmodels.TokenUsage{}, errors.New("пустой ответ от YandexGPT")
	}
	return response.Result.Alternatives[0].Message.Text, convertUsage(response), nil
}

func convertUsage(response yandexgpt.YandexGPTResponse) dbmodels.TokenUsage {
	return dbmodels.TokenUsage{
		TotalTokens:      atoi(response.Result.Usage.TotalTokens),
		PromptTokens:     atoi(response.Result.Usage.InputTokens),
		CompletionTokens: atoi(response.Result.Usage.CompletionTokens),
	}
}

func atoi(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
