package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_app/internal/core/ports/repositories"
	portssvc "github.com/bizbooks/bizbooks_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// agingBucketLabels are the age bands, in days, used by the stock aging report.
var agingBucketLabels = []string{"0-30", "31-60", "61-90", "90+"}

// inventoryService implements the InventoryReportingService interface.
// Like the financial generators it is a pure read model: stock and value
// are always reconstructed from the movement ledger, never read from a
// mutable running total.
type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepository
}

// InventoryServiceOption is a functional option for configuring the inventory service
type InventoryServiceOption func(*inventoryService)

// WithInventoryBusinessAuthorizer sets the business authorizer for the inventory service.
func WithInventoryBusinessAuthorizer(authorizer portssvc.BusinessAuthorizerSvc) InventoryServiceOption {
	return func(s *inventoryService) {
		s.BusinessAuthorizer = authorizer
	}
}

// NewInventoryService creates a new inventory reporting service.
func NewInventoryService(repo portsrepo.InventoryRepository, options ...InventoryServiceOption) portssvc.InventoryReportingService {
	svc := &inventoryService{
		inventoryRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.InventoryReportingService = (*inventoryService)(nil)

// StockAging buckets every active lot by its age in days, summing
// quantity * cost_price per bucket.
func (s *inventoryService) StockAging(ctx context.Context, businessID string, now time.Time, userID string) (*domain.StockAgingReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view stock aging report",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, err
	}

	lots, err := s.inventoryRepo.ListActiveLots(ctx, businessID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve active lots",
			slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to retrieve active lots: %w", err)
	}

	report := &domain.StockAgingReport{
		Buckets:    make([]domain.StockAgingBucket, len(agingBucketLabels)),
		TotalValue: decimal.Zero,
	}
	for i, label := range agingBucketLabels {
		report.Buckets[i] = domain.StockAgingBucket{
			Label:    label,
			Lots:     []domain.AgedLot{},
			Quantity: decimal.Zero,
			Value:    decimal.Zero,
		}
	}

	for _, lot := range lots {
		ageDays := int(now.Sub(lot.CreatedAt).Hours() / 24)
		if ageDays < 0 {
			ageDays = 0
		}
		aged := domain.AgedLot{
			LotID:     lot.LotID,
			ProductID: lot.ProductID,
			AgeDays:   ageDays,
			Quantity:  lot.Quantity,
			CostPrice: lot.CostPrice,
			Value:     lot.Quantity.Mul(lot.CostPrice),
		}

		idx := agingBucketIndex(ageDays)
		bucket := &report.Buckets[idx]
		bucket.Lots = append(bucket.Lots, aged)
		bucket.Quantity = bucket.Quantity.Add(aged.Quantity)
		bucket.Value = bucket.Value.Add(aged.Value)
		report.TotalValue = report.TotalValue.Add(aged.Value)
	}

	s.LogInfo(ctx, "Stock aging report generated successfully",
		slog.String("business_id", businessID),
		slog.Int("lot_count", len(lots)))
	return report, nil
}

// agingBucketIndex maps an age in days to its bucket.
func agingBucketIndex(ageDays int) int {
	switch {
	case ageDays <= 30:
		return 0
	case ageDays <= 60:
		return 1
	case ageDays <= 90:
		return 2
	default:
		return 3
	}
}

// Valuation reconstructs per-product stock and value as of a date by
// replaying the movement ledger to the cutoff. Products whose cumulative
// quantity is exactly zero are excluded from the report.
func (s *inventoryService) Valuation(ctx context.Context, businessID string, asOf time.Time, userID string) (*domain.ValuationReport, error) {
	if err := s.AuthorizeUser(ctx, userID, businessID, domain.RoleReadOnly); err != nil {
		s.LogError(ctx, err, "User not authorized to view inventory valuation",
			slog.String("user_id", userID),
			slog.String("business_id", businessID))
		return nil, err
	}

	positions, err := s.inventoryRepo.ReplayMovements(ctx, businessID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to replay inventory movements",
			slog.String("business_id", businessID),
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to replay inventory movements: %w", err)
	}

	report := &domain.ValuationReport{
		Products:      []domain.ProductValuation{},
		TotalQuantity: decimal.Zero,
		TotalValue:    decimal.Zero,
	}
	for _, position := range positions {
		if position.Quantity.IsZero() {
			continue
		}
		report.Products = append(report.Products, position)
		report.TotalQuantity = report.TotalQuantity.Add(position.Quantity)
		report.TotalValue = report.TotalValue.Add(position.Value)
	}

	s.LogInfo(ctx, "Inventory valuation generated successfully",
		slog.String("business_id", businessID),
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("product_count", len(report.Products)))
	return report, nil
}
