package services

import (
	"context"
	"errors"

	"github.com/popcornshop/dashboard/internal/database"
	"github.com/popcornshop/dashboard/internal/logger"
	"github.com/popcornshop/dashboard/internal/models"
	"github.com/popcornshop/dashboard/internal/typeform"
	"go.uber.org/zap"
)

var (
	ErrNoFormID = errors.New("form ID is required")
)

// IngestService synchronizes the order store with the form provider's
// current response set. One call runs to completion within the calling
// request; there is no internal parallelism or background schedule.
type IngestService struct {
	storage ingestStorage
	client  responseFetcher
	mapper  responseMapper
}

type ingestStorage interface {
	FindOrder(ctx context.Context, uuid string) (*database.OrderDB, error)

	CreateOrder(ctx context.Context, order database.OrderDB) error

	CountOrders(ctx context.Context) (int64, error)
}

type responseFetcher interface {
	FetchResponses(ctx context.Context, formID string) (*typeform.ResponsePage, error)
}

type responseMapper interface {
	MapResponse(response typeform.Response) *models.Order
}

func NewIngestService(storage ingestStorage, client responseFetcher, mapper responseMapper) *IngestService {
	return &IngestService{
		storage: storage,
		client:  client,
		mapper:  mapper,
	}
}

// Ingest fetches all pending responses for the form and stores the ones
// not seen before. Responses whose uuid already exists are skipped without
// being refreshed. Mapping and persistence failures skip the single item
// and never abort the batch; a fetch failure aborts the whole run.
func (s *IngestService) Ingest(ctx context.Context, formID string) (*models.IngestResult, error) {
	if formID == "" {
		return nil, ErrNoFormID
	}

	page, err := s.client.FetchResponses(ctx, formID)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("ingesting orders",
		zap.String("formID", formID),
		zap.Int("responsesCount", len(page.Items)),
	)

	newOrders := []models.IngestedOrder{}
	skippedUUIDs := []string{}

	for i, item := range page.Items {
		logger.Log.Info("processing response",
			zap.Int("index", i+1),
			zap.Int("total", len(page.Items)),
			zap.String("responseID", item.ResponseID),
			zap.String("submittedAt", item.SubmittedAt),
			zap.Int("answersCount", len(item.Answers)),
		)

		existing, err := s.storage.FindOrder(ctx, item.ResponseID)
		if err != nil {
			return nil, err
		}

		if existing != nil {
			logger.Log.Info("order already exists, skipping",
				zap.String("responseID", item.ResponseID),
				zap.String("email", existing.Email),
			)
			skippedUUIDs = append(skippedUUIDs, item.ResponseID)
			continue
		}

		order := s.mapper.MapResponse(item)
		if order == nil {
			logger.Log.Warn("failed to map response, skipping",
				zap.String("responseID", item.ResponseID),
			)
			skippedUUIDs = append(skippedUUIDs, item.ResponseID)
			continue
		}

		if err := s.storage.CreateOrder(ctx, database.OrderDB{
			UUID:          order.UUID,
			Email:         order.Email,
			FirstName:     order.FirstName,
			LastName:      order.LastName,
			Name:          order.Name,
			PhoneNumber:   order.PhoneNumber,
			Company:       order.Company,
			DiscountCode:  order.DiscountCode,
			DiscountPrice: order.DiscountPrice,
			AmountPaid:    order.AmountPaid,
			Status:        database.OrderStatusDB{OrderStatus: order.Status},
			Quantities:    order.PopcornQuantities,
			SubmittedAt:   order.SubmittedAt.Time,
		}); err != nil {
			// A duplicate here means another ingestion run won the race;
			// either way the item is skipped and the batch continues.
			logger.Log.Error("failed to save order, skipping",
				zap.String("responseID", item.ResponseID),
				zap.Bool("duplicate", errors.Is(err, database.ErrDuplicateOrder)),
				zap.Error(err),
			)
			skippedUUIDs = append(skippedUUIDs, item.ResponseID)
			continue
		}

		logger.Log.Info("order saved",
			zap.String("responseID", item.ResponseID),
			zap.String("email", order.Email),
			zap.String("name", order.Name),
		)
		newOrders = append(newOrders, models.IngestedOrder{
			UUID:  order.UUID,
			Email: order.Email,
			Name:  order.Name,
		})
	}

	total, err := s.storage.CountOrders(ctx)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("ingestion complete",
		zap.Int("newOrders", len(newOrders)),
		zap.Int("skipped", len(skippedUUIDs)),
		zap.Int64("totalInDatabase", total),
	)

	return &models.IngestResult{
		Message:         "Orders ingested successfully",
		NewOrdersCount:  len(newOrders),
		SkippedCount:    len(skippedUUIDs),
		TotalInDatabase: total,
		NewOrders:       newOrders,
		SkippedUUIDs:    skippedUUIDs,
	}, nil
}
