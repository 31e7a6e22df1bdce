package validator

import (
	"fmt"
	"portfolio/customerrors"
	"portfolio/model"
	"sort"
	"strings"

	"github.com/Oudwins/zog"
)

var HoldingShape = zog.Shape{
	"Symbol":        zog.String().Trim().Required(),
	"Name":          zog.String().Required(),
	"Sector":        zog.String().Trim().Required(),
	"PurchasePrice": zog.Float64().Required().GT(0),
	"Quantity":      zog.Int().Required().GT(0),
}

var HoldingSchema = zog.Struct(HoldingShape)

// ValidateHolding checks a single holding and returns an error wrapping
// customerrors.ErrInvalidHolding describing every failed field.
func ValidateHolding(h *model.Holding) error {
	var problems []string

	if errs := HoldingSchema.Validate(h); len(errs) > 0 {
		for field, issues := range errs {
			for _, issue := range issues {
				problems = append(problems, field+": "+issue.Message)
			}
		}
	}

	if h.Exchange != model.ExchangeNSE && h.Exchange != model.ExchangeBSE {
		problems = append(problems, fmt.Sprintf("exchange: must be NSE or BSE, got %q", h.Exchange))
	}

	if len(problems) == 0 {
		return nil
	}

	sort.Strings(problems)
	return fmt.Errorf("%w %s: %s", customerrors.ErrInvalidHolding, h.Symbol, strings.Join(problems, "; "))
}
