package typeform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forms/form-id/responses", r.URL.Path)
		assert.Equal(t, "Bearer api-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"response_id": "resp-1",
					"submitted_at": "2024-03-01T10:30:00Z",
					"answers": [
						{"field": {"id": "first", "type": "short_text"}, "type": "text", "text": "Ada"},
						{"field": {"id": "qty", "type": "number"}, "type": "number", "number": 3}
					],
					"variables": [
						{"key": "discount_price", "type": "number", "number": 4.5}
					]
				}
			],
			"total_items": 1,
			"page_count": 1
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "api-key")

	page, err := client.FetchResponses(context.Background(), "form-id")
	require.NoError(t, err)

	assert.Equal(t, 1, page.TotalItems)
	require.Len(t, page.Items, 1)

	response := page.Items[0]
	assert.Equal(t, "resp-1", response.ResponseID)
	require.Len(t, response.Answers, 2)
	assert.Equal(t, "Ada", response.Answers[0].Text)
	require.NotNil(t, response.Answers[1].Number)
	assert.Equal(t, float64(3), *response.Answers[1].Number)
	require.Len(t, response.Variables, 1)
	assert.Equal(t, "discount_price", response.Variables[0].Key)
}

func TestFetchResponsesWithoutAPIKey(t *testing.T) {
	client := NewClient("http://localhost", "")

	_, err := client.FetchResponses(context.Background(), "form-id")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestFetchResponsesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "api-key")

	_, err := client.FetchResponses(context.Background(), "form-id")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestFetchResponsesTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "api-key")

	_, err := client.FetchResponses(context.Background(), "form-id")
	assert.ErrorIs(t, err, ErrRequestFailed)
}
