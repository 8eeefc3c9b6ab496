package services

import (
	"testing"
	"time"

	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/typeform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberPtr(v float64) *float64 {
	return &v
}

func fullResponse() typeform.Response {
	return typeform.Response{
		ResponseID:  "resp-1",
		SubmittedAt: "2024-03-01T10:30:00Z",
		Answers: []typeform.Answer{
			{Field: typeform.Field{ID: "first"}, Type: "text", Text: "Ada"},
			{Field: typeform.Field{ID: "last"}, Type: "text", Text: "Lovelace"},
			{Field: typeform.Field{ID: "phone"}, Type: "phone_number", PhoneNumber: "+15551234567"},
			{Field: typeform.Field{ID: "email"}, Type: "email", Email: "ada@example.com"},
			{Field: typeform.Field{ID: "Oh5JQY5PZFww"}, Type: "text", Text: "Analytical Engines Inc"},
			{Field: typeform.Field{ID: "cWlsB4bhhrqY"}, Type: "text", Text: "WELCOME10"},
			{Field: typeform.Field{ID: "ShAWyFsXRXQB"}, Type: "number", Number: numberPtr(1)},
			{Field: typeform.Field{ID: "q2"}, Type: "number", Number: numberPtr(2)},
			{Field: typeform.Field{ID: "q3"}, Type: "number", Number: numberPtr(3)},
			{Field: typeform.Field{ID: "q4"}, Type: "number", Number: numberPtr(4)},
			{Field: typeform.Field{ID: "q5"}, Type: "number", Number: numberPtr(5)},
		},
		Variables: []typeform.Variable{
			{Key: "discount_price", Type: "number", Number: numberPtr(4.5)},
			{Key: "price", Type: "number", Number: numberPtr(67.5)},
		},
	}
}

func TestMapResponse(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	order := mapper.MapResponse(fullResponse())
	require.NotNil(t, order)

	assert.Equal(t, "resp-1", order.UUID)
	assert.Equal(t, "resp-1", order.OrderID)
	assert.Equal(t, "ada@example.com", order.Email)
	assert.Equal(t, "Ada", order.FirstName)
	assert.Equal(t, "Lovelace", order.LastName)
	assert.Equal(t, "Ada Lovelace", order.Name)
	assert.Equal(t, "+15551234567", order.PhoneNumber)
	assert.Equal(t, "Analytical Engines Inc", order.Company)
	assert.Equal(t, "WELCOME10", order.DiscountCode)
	assert.Equal(t, 4.5, order.DiscountPrice)
	assert.Equal(t, 67.5, order.AmountPaid)
	assert.Equal(t, models.StatusInquiry, order.Status)
	assert.Equal(t, models.FlavorQuantities{
		Caramel:   1,
		Respresso: 2,
		Butter:    3,
		Cheddar:   4,
		Kettle:    5,
	}, order.PopcornQuantities)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), order.SubmittedAt.Time)
}

func TestMapResponseEmailFallback(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	response := fullResponse()
	// The fixed email slot holds something else; the email answer sits
	// further down the list.
	response.Answers[3] = typeform.Answer{Field: typeform.Field{ID: "extra"}, Type: "text", Text: "not an email"}
	response.Answers = append(response.Answers, typeform.Answer{
		Field: typeform.Field{ID: "email-late"},
		Type:  "email",
		Email: "late@example.com",
	})

	order := mapper.MapResponse(response)
	require.NotNil(t, order)
	assert.Equal(t, "late@example.com", order.Email)
}

func TestMapResponseUnmappable(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	t.Run("too few answers", func(t *testing.T) {
		response := fullResponse()
		response.Answers = response.Answers[:3]
		assert.Nil(t, mapper.MapResponse(response))
	})

	t.Run("no email anywhere", func(t *testing.T) {
		response := fullResponse()
		response.Answers[3] = typeform.Answer{Field: typeform.Field{ID: "extra"}, Type: "text", Text: "not an email"}
		assert.Nil(t, mapper.MapResponse(response))
	})

	t.Run("bad submission timestamp", func(t *testing.T) {
		response := fullResponse()
		response.SubmittedAt = "yesterday"
		assert.Nil(t, mapper.MapResponse(response))
	})
}

func TestMapResponseMissingAnchors(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	response := fullResponse()
	response.Answers = response.Answers[:4]
	response.Answers = append(response.Answers, typeform.Answer{
		Field: typeform.Field{ID: "unrelated"}, Type: "text", Text: "n/a",
	})

	order := mapper.MapResponse(response)
	require.NotNil(t, order)
	assert.Empty(t, order.Company)
	assert.Empty(t, order.DiscountCode)
	assert.Equal(t, models.FlavorQuantities{}, order.PopcornQuantities)
}

func TestMapResponseQuantitiesTruncated(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	// The quantities anchor is the last answer, so the remaining four
	// flavors have no answers to read.
	response := fullResponse()
	response.Answers = response.Answers[:7]

	order := mapper.MapResponse(response)
	require.NotNil(t, order)
	assert.Equal(t, models.FlavorQuantities{Caramel: 1}, order.PopcornQuantities)
}

func TestMapResponseNameFallsBackToEmail(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	response := fullResponse()
	response.Answers[0].Text = ""
	response.Answers[1].Text = ""

	order := mapper.MapResponse(response)
	require.NotNil(t, order)
	assert.Equal(t, "ada@example.com", order.Name)
}

func TestMapResponseVariablesByPosition(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	// Older forms published the variables without keys; position 0 is the
	// discount price and position 1 the amount paid.
	response := fullResponse()
	response.Variables = []typeform.Variable{
		{Key: "var1", Type: "number", Number: numberPtr(3.25)},
		{Key: "var2", Type: "number", Number: numberPtr(42)},
	}

	order := mapper.MapResponse(response)
	require.NotNil(t, order)
	assert.Equal(t, 3.25, order.DiscountPrice)
	assert.Equal(t, float64(42), order.AmountPaid)
}

func TestMapResponseNoVariables(t *testing.T) {
	mapper := NewMapperService(DefaultFieldMap())

	response := fullResponse()
	response.Variables = nil

	order := mapper.MapResponse(response)
	require.NotNil(t, order)
	assert.Zero(t, order.DiscountPrice)
	assert.Zero(t, order.AmountPaid)
}
