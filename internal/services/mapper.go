package services

import (
	"strings"
	"time"

	"github.com/popcornshop/dashboard/internal/logger"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/typeform"
	"github.com/popcornshop/dashboard/internal/utils"
	"go.uber.org/zap"
)

// FieldMap names the form field ids used as anchors when extracting
// answers that are not at a fixed position.
type FieldMap struct {
	Company      string
	DiscountCode string
	Quantities   string
}

// DefaultFieldMap returns the anchor ids of the current production form.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Company:      "Oh5JQY5PZFww",
		DiscountCode: "cWlsB4bhhrqY",
		Quantities:   "ShAWyFsXRXQB",
	}
}

// Keys of the computed form variables carrying the money fields. Older
// forms did not set keys, so extraction falls back to the historical
// positions (0 = discount price, 1 = amount paid).
const (
	discountPriceVariableKey = "discount_price"
	amountPaidVariableKey    = "price"

	discountPriceVariablePos = 0
	amountPaidVariablePos    = 1
)

// minAnswers is the number of leading fixed-position answers
// (first name, last name, phone, email).
const minAnswers = 4

// MapperService converts raw form responses into orders.
type MapperService struct {
	fields FieldMap
}

func NewMapperService(fields FieldMap) *MapperService {
	return &MapperService{fields: fields}
}

// MapResponse maps one provider response to an order, or returns nil when
// the response cannot be mapped. It never panics or propagates an error;
// every failure is logged and converted to a nil result.
func (m *MapperService) MapResponse(response typeform.Response) (order *models.Order) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("unexpected panic while mapping response",
				zap.String("responseID", response.ResponseID),
				zap.Any("panic", r),
			)
			order = nil
		}
	}()

	answers := response.Answers

	if len(answers) < minAnswers {
		logger.Log.Warn("not enough answers for response",
			zap.String("responseID", response.ResponseID),
			zap.Int("answersCount", len(answers)),
		)
		return nil
	}

	// The first four answers are positionally stable: first name, last
	// name, phone and email.
	firstName := answers[0].Text
	lastName := answers[1].Text
	phoneNumber := answers[2].PhoneNumber

	email := answers[3].Email
	if email == "" {
		for _, a := range answers {
			if a.Type == "email" {
				email = a.Email
				break
			}
		}
	}

	if email == "" {
		logger.Log.Error("no email found for response",
			zap.String("responseID", response.ResponseID),
			zap.Any("answers", answerDiagnostics(answers)),
		)
		return nil
	}

	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		name = email
	}

	var company string
	if i := findAnswerIndex(answers, m.fields.Company); i != -1 {
		company = answers[i].Text
	}

	var discountCode string
	if i := findAnswerIndex(answers, m.fields.DiscountCode); i != -1 {
		discountCode = answers[i].Text
	}

	// The five flavor questions sit at consecutive positions starting at
	// the quantities anchor, in this fixed order.
	var quantities models.FlavorQuantities
	if start := findAnswerIndex(answers, m.fields.Quantities); start != -1 {
		quantities.Caramel = answerNumber(answers, start)
		quantities.Respresso = answerNumber(answers, start+1)
		quantities.Butter = answerNumber(answers, start+2)
		quantities.Cheddar = answerNumber(answers, start+3)
		quantities.Kettle = answerNumber(answers, start+4)
	}

	discountPrice := variableValue(response.Variables, discountPriceVariableKey, discountPriceVariablePos)
	amountPaid := variableValue(response.Variables, amountPaidVariableKey, amountPaidVariablePos)

	submittedAt, err := time.Parse(time.RFC3339, response.SubmittedAt)
	if err != nil {
		logger.Log.Error("failed to parse submission timestamp",
			zap.String("responseID", response.ResponseID),
			zap.String("submittedAt", response.SubmittedAt),
			zap.Error(err),
		)
		return nil
	}

	return &models.Order{
		OrderID:           response.ResponseID,
		UUID:              response.ResponseID,
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		Name:              name,
		PhoneNumber:       phoneNumber,
		Company:           company,
		DiscountCode:      discountCode,
		DiscountPrice:     discountPrice,
		AmountPaid:        amountPaid,
		Status:            models.StatusInquiry,
		PopcornQuantities: quantities,
		SubmittedAt:       utils.RFC3339Date{Time: submittedAt},
	}
}

// findAnswerIndex returns the index of the answer whose field id equals
// fieldID, or -1.
func findAnswerIndex(answers []typeform.Answer, fieldID string) int {
	for i, a := range answers {
		if a.Field.ID == fieldID {
			return i
		}
	}
	return -1
}

// answerNumber reads a numeric answer at the given index, defaulting to 0
// when the index is out of range or the answer isn't numeric.
func answerNumber(answers []typeform.Answer, i int) int {
	if i < 0 || i >= len(answers) || answers[i].Number == nil {
		return 0
	}
	return int(*answers[i].Number)
}

// variableValue resolves a numeric form variable by key, falling back to
// the given position, and finally to 0.
func variableValue(variables []typeform.Variable, key string, pos int) float64 {
	for _, v := range variables {
		if v.Key == key && v.Number != nil {
			return *v.Number
		}
	}
	if pos >= 0 && pos < len(variables) && variables[pos].Number != nil {
		return *variables[pos].Number
	}
	return 0
}

type answerDiagnostic struct {
	Index     int    `json:"index"`
	Type      string `json:"type"`
	FieldType string `json:"fieldType"`
	FieldID   string `json:"fieldId"`
	HasText   bool   `json:"hasText"`
	HasEmail  bool   `json:"hasEmail"`
	HasPhone  bool   `json:"hasPhone"`
}

// answerDiagnostics describes the answer list shape for skip logging.
func answerDiagnostics(answers []typeform.Answer) []answerDiagnostic {
	result := make([]answerDiagnostic, len(answers))
	for i, a := range answers {
		result[i] = answerDiagnostic{
			Index:     i,
			Type:      a.Type,
			FieldType: a.Field.Type,
			FieldID:   a.Field.ID,
			HasText:   a.Text != "",
			HasEmail:  a.Email != "",
			HasPhone:  a.PhoneNumber != "",
		}
	}
	return result
}
