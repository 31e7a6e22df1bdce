package customerrors

import "errors"

var (
	ErrPriceUnavailable    = errors.New("price not present in provider response")
	ErrInvalidHolding      = errors.New("invalid holding")
	ErrNonFiniteTotal      = errors.New("portfolio total is not a finite number")
	ErrHoldingsUnavailable = errors.New("holdings could not be loaded")
)
