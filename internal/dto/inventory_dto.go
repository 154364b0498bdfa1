package dto

import (
	"time"

	"github.com/bizbooks/bizbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AgedLotResponse is one lot inside a stock aging bucket.
type AgedLotResponse struct {
	LotID     string          `json:"lotID"`
	ProductID string          `json:"productID"`
	AgeDays   int             `json:"ageDays"`
	Quantity  decimal.Decimal `json:"quantity"`
	CostPrice decimal.Decimal `json:"costPrice"`
	Value     decimal.Decimal `json:"value"`
}

// StockAgingBucketResponse groups lots falling inside one age band.
type StockAgingBucketResponse struct {
	Label    string            `json:"label"`
	Lots     []AgedLotResponse `json:"lots"`
	Quantity decimal.Decimal   `json:"quantity"`
	Value    decimal.Decimal   `json:"value"`
}

// StockAgingResponse represents the stock aging report response
type StockAgingResponse struct {
	Success    bool                       `json:"success"`
	Buckets    []StockAgingBucketResponse `json:"buckets"`
	TotalValue decimal.Decimal            `json:"totalValue"`
}

// ProductValuationResponse is one product's position in the valuation report.
type ProductValuationResponse struct {
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
}

// ValuationResponse represents the point-in-time valuation report response
type ValuationResponse struct {
	Success       bool                       `json:"success"`
	AsOf          string                     `json:"asOf"`
	Products      []ProductValuationResponse `json:"products"`
	TotalQuantity decimal.Decimal            `json:"totalQuantity"`
	TotalValue    decimal.Decimal            `json:"totalValue"`
}

// ToStockAgingResponse converts a domain stock aging report to a DTO response
func ToStockAgingResponse(report *domain.StockAgingReport) StockAgingResponse {
	response := StockAgingResponse{
		Success:    true,
		Buckets:    make([]StockAgingBucketResponse, len(report.Buckets)),
		TotalValue: report.TotalValue,
	}

	for i, bucket := range report.Buckets {
		lots := make([]AgedLotResponse, len(bucket.Lots))
		for j, lot := range bucket.Lots {
			lots[j] = AgedLotResponse{
				LotID:     lot.LotID,
				ProductID: lot.ProductID,
				AgeDays:   lot.AgeDays,
				Quantity:  lot.Quantity,
				CostPrice: lot.CostPrice,
				Value:     lot.Value,
			}
		}
		response.Buckets[i] = StockAgingBucketResponse{
			Label:    bucket.Label,
			Lots:     lots,
			Quantity: bucket.Quantity,
			Value:    bucket.Value,
		}
	}

	return response
}

// ToValuationResponse converts a domain valuation report to a DTO response
func ToValuationResponse(report *domain.ValuationReport, asOf time.Time) ValuationResponse {
	response := ValuationResponse{
		Success:       true,
		AsOf:          asOf.Format("2006-01-02"),
		Products:      make([]ProductValuationResponse, len(report.Products)),
		TotalQuantity: report.TotalQuantity,
		TotalValue:    report.TotalValue,
	}

	for i, product := range report.Products {
		response.Products[i] = ProductValuationResponse{
			ProductID: product.ProductID,
			Quantity:  product.Quantity,
			Value:     product.Value,
		}
	}

	return response
}
