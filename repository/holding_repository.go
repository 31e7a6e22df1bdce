package repository

import (
	"context"
	"fmt"
	"os"
	"portfolio/customerrors"
	"portfolio/model"
	"portfolio/util"
	"portfolio/validator"

	"github.com/jinzhu/copier"
)

type HoldingRepository interface {
	FindAll(ctx context.Context) ([]model.Holding, error)
}

// DefaultHoldings is the built-in portfolio used when no holdings file is configured.
var DefaultHoldings = []model.Holding{
	{Symbol: "TCS", Name: "Tata Consultancy Services", Exchange: model.ExchangeNSE, Sector: "IT", PurchasePrice: 3200, Quantity: 10},
	{Symbol: "INFY", Name: "Infosys", Exchange: model.ExchangeNSE, Sector: "IT", PurchasePrice: 1500, Quantity: 20},
	{Symbol: "HDFCBANK", Name: "HDFC Bank", Exchange: model.ExchangeNSE, Sector: "Financials", PurchasePrice: 1450, Quantity: 15},
	{Symbol: "ICICIBANK", Name: "ICICI Bank", Exchange: model.ExchangeNSE, Sector: "Financials", PurchasePrice: 950, Quantity: 25},
	{Symbol: "RELIANCE", Name: "Reliance Industries", Exchange: model.ExchangeNSE, Sector: "Energy", PurchasePrice: 2400, Quantity: 8},
	{Symbol: "ITC", Name: "ITC", Exchange: model.ExchangeBSE, Sector: "Consumer", PurchasePrice: 410, Quantity: 50},
}

// StaticHoldingRepository serves a fixed list that is validated once at construction.
type StaticHoldingRepository struct {
	holdings []model.Holding
}

func NewStaticHoldingRepository(holdings []model.Holding) (*StaticHoldingRepository, error) {
	var stored []model.Holding
	if err := copier.Copy(&stored, &holdings); err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrHoldingsUnavailable, err)
	}

	for i := range stored {
		if err := validator.ValidateHolding(&stored[i]); err != nil {
			return nil, err
		}
	}

	return &StaticHoldingRepository{holdings: stored}, nil
}

// NewCsvHoldingRepository loads the holdings file once. The list is static for
// the lifetime of the process.
func NewCsvHoldingRepository(path string) (*StaticHoldingRepository, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrHoldingsUnavailable, err)
	}
	defer file.Close()

	holdings, err := util.ReadHoldings(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", customerrors.ErrHoldingsUnavailable, path, err)
	}

	return NewStaticHoldingRepository(holdings)
}

// FindAll returns a copy so callers cannot change the stored list.
func (r *StaticHoldingRepository) FindAll(ctx context.Context) ([]model.Holding, error) {
	var out []model.Holding
	if err := copier.Copy(&out, &r.holdings); err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrHoldingsUnavailable, err)
	}
	return out, nil
}
