package services

import (
	"context"
	"testing"

	"github.com/popcornshop/dashboard/internal/database"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCodeStorage struct {
	codes map[string]database.DiscountCodeDB
}

func newFakeCodeStorage() *fakeCodeStorage {
	return &fakeCodeStorage{codes: map[string]database.DiscountCodeDB{}}
}

func (s *fakeCodeStorage) CreateDiscountCode(_ context.Context, code database.DiscountCodeDB) error {
	for _, existing := range s.codes {
		if existing.Code == code.Code {
			return database.ErrDuplicateCode
		}
	}
	s.codes[code.ID] = code
	return nil
}

func (s *fakeCodeStorage) FindDiscountCode(_ context.Context, id string) (*database.DiscountCodeDB, error) {
	code, ok := s.codes[id]
	if !ok {
		return nil, nil
	}
	return &code, nil
}

func (s *fakeCodeStorage) FindDiscountCodeByCode(_ context.Context, codeStr string) (*database.DiscountCodeDB, error) {
	for _, code := range s.codes {
		if code.Code == codeStr {
			return &code, nil
		}
	}
	return nil, nil
}

func (s *fakeCodeStorage) FindAllDiscountCodes(_ context.Context) ([]database.DiscountCodeDB, error) {
	result := []database.DiscountCodeDB{}
	for _, code := range s.codes {
		result = append(result, code)
	}
	return result, nil
}

func (s *fakeCodeStorage) UpdateDiscountCode(_ context.Context, code database.DiscountCodeDB) error {
	for id, existing := range s.codes {
		if id != code.ID && existing.Code == code.Code {
			return database.ErrDuplicateCode
		}
	}
	s.codes[code.ID] = code
	return nil
}

func (s *fakeCodeStorage) DeleteDiscountCode(_ context.Context, id string) (bool, error) {
	if _, ok := s.codes[id]; !ok {
		return false, nil
	}
	delete(s.codes, id)
	return true, nil
}

func strPtr(v string) *string {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestCreateCodeWithFlavorPrices(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	code, err := service.CreateCode(context.Background(), models.DiscountCodeInput{
		Code: strPtr("WHOLESALE"),
		PopcornPrices: &models.FlavorPrices{
			Caramel:   4,
			Respresso: 5,
			Butter:    6,
			Cheddar:   7,
			Kettle:    8,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "WHOLESALE", code.Code)
	// The single price tracks the mean of the per-flavor prices.
	assert.Equal(t, float64(6), code.Price)
	assert.True(t, code.IsActive)
	assert.NotEmpty(t, code.ID)
}

func TestCreateCodeWithSinglePrice(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	code, err := service.CreateCode(context.Background(), models.DiscountCodeInput{
		Code:  strPtr("FLAT4"),
		Price: numberPtr(4.25),
	})
	require.NoError(t, err)

	assert.Equal(t, 4.25, code.Price)
	assert.Equal(t, models.UniformFlavorPrices(4.25), code.PopcornPrices)
}

func TestCreateCodeDefaults(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	code, err := service.CreateCode(context.Background(), models.DiscountCodeInput{})
	require.NoError(t, err)

	// Without a code string a random one is generated; without pricing the
	// default applies across the board.
	assert.NotEmpty(t, code.Code)
	assert.Equal(t, models.DefaultFlavorPrice, code.Price)
	assert.Equal(t, models.UniformFlavorPrices(models.DefaultFlavorPrice), code.PopcornPrices)
}

func TestCreateCodeRejectsDuplicates(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	_, err := service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("TWICE")})
	require.NoError(t, err)

	_, err = service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("TWICE")})
	assert.ErrorIs(t, err, ErrDiscountCodeExists)
}

func TestCreateCodeRejectsNegativePrices(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	_, err := service.CreateCode(context.Background(), models.DiscountCodeInput{
		Price: numberPtr(-1),
	})
	assert.ErrorIs(t, err, ErrNegativeDiscountPrice)

	_, err = service.CreateCode(context.Background(), models.DiscountCodeInput{
		PopcornPrices: &models.FlavorPrices{Caramel: -0.5},
	})
	assert.ErrorIs(t, err, ErrNegativeDiscountPrice)
}

func TestUpdateCode(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	created, err := service.CreateCode(context.Background(), models.DiscountCodeInput{
		Code:  strPtr("SPRING"),
		Price: numberPtr(5),
	})
	require.NoError(t, err)

	updated, err := service.UpdateCode(context.Background(), created.ID, models.DiscountCodeInput{
		Description: strPtr("spring promotion"),
		IsActive:    boolPtr(false),
		PopcornPrices: &models.FlavorPrices{
			Caramel:   1,
			Respresso: 2,
			Butter:    3,
			Cheddar:   4,
			Kettle:    5,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "SPRING", updated.Code)
	assert.Equal(t, "spring promotion", updated.Description)
	assert.False(t, updated.IsActive)
	assert.Equal(t, float64(3), updated.Price)
}

func TestUpdateCodeRejectsTakenCode(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	_, err := service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("FIRST")})
	require.NoError(t, err)
	second, err := service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("SECOND")})
	require.NoError(t, err)

	_, err = service.UpdateCode(context.Background(), second.ID, models.DiscountCodeInput{Code: strPtr("FIRST")})
	assert.ErrorIs(t, err, ErrDiscountCodeExists)
}

func TestUpdateCodeNotFound(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	_, err := service.UpdateCode(context.Background(), "missing", models.DiscountCodeInput{})
	assert.ErrorIs(t, err, ErrDiscountCodeNotFound)
}

func TestDeleteCode(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	created, err := service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("GONE")})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCode(context.Background(), created.ID))

	_, err = service.GetCode(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrDiscountCodeNotFound)

	assert.ErrorIs(t, service.DeleteCode(context.Background(), created.ID), ErrDiscountCodeNotFound)
}

func TestGetCodes(t *testing.T) {
	service := NewDiscountCodeService(newFakeCodeStorage())

	_, err := service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("A")})
	require.NoError(t, err)
	_, err = service.CreateCode(context.Background(), models.DiscountCodeInput{Code: strPtr("B")})
	require.NoError(t, err)

	codes, err := service.GetCodes(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes, 2)
}
