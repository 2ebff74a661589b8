package gptclient

import (
	"testing"

	yandexgpt "github.com/sheeiavellie/go-yandexgpt"
	"github.com/stretchr/testify/require"

	dbmodels "hr-automation-hub/models/db"
)

func TestConvertUsage(t *testing.T) {
	t.Run(`maps provider token counters`, func(t *testing.T) {
		response := yandexgpt.YandexGPTResponse{
			Result: yandexgpt.YandexGPTResult{
				Usage: yandexgpt.YandexGPTUsage{
					InputTokens:      "7",
					CompletionTokens: "3",
					TotalTokens:      "10",
				},
			},
		}
		require.Equal(t, dbmodels.TokenUsage{
			TotalTokens:      10,
			PromptTokens:     7,
			CompletionTokens: 3,
		}, convertUsage(response))
	})

	t.Run(`broken counters become zeroes`, func(t *testing.T) {
		response := yandexgpt.YandexGPTResponse{
			Result: yandexgpt.YandexGPTResult{
				Usage: yandexgpt.YandexGPTUsage{
					InputTokens:      "не число",
					CompletionTokens: "",
					TotalTokens:      "12",
				},
			},
		}
		usage := convertUsage(response)
		require.Equal(t, 12, usage.TotalTokens)
		require.Equal(t, 0, usage.PromptTokens)
		require.Equal(t, 0, usage.CompletionTokens)
	})
}
