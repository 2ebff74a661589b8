package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	t.Run(`plain text returned as is`, func(t *testing.T) {
		text, err := ExtractText([]byte("Опытный Go разработчик"), "text/plain")
		require.Nil(t, err)
		require.Equal(t, "Опытный Go разработчик", text)
	})

	t.Run(`unknown content type read as utf-8`, func(t *testing.T) {
		text, err := ExtractText([]byte("raw bytes"), "application/octet-stream")
		require.Nil(t, err)
		require.Equal(t, "raw bytes", text)
	})

	t.Run(`broken pdf returns error, not panic`, func(t *testing.T) {
		_, err := ExtractText([]byte("definitely not a pdf"), "application/pdf")
		require.NotNil(t, err)
	})

	t.Run(`broken docx returns error`, func(t *testing.T) {
		_, err := ExtractText([]byte("not a zip archive"), "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		require.NotNil(t, err)
	})
}
