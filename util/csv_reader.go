package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"portfolio/model"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var holdingColumns = []string{"symbol", "name", "exchange", "sector", "purchasePrice", "quantity"}

// ReadHoldings parses a holdings CSV. The header row must name every column in
// holdingColumns; column order is free.
func ReadHoldings(r io.Reader) ([]model.Holding, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int)
	for i, name := range header {
		headerMap[strings.TrimSpace(name)] = i
	}

	for _, col := range holdingColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var holdings []model.Holding
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("error reading csv record: %w", err)
		}

		row := make(map[string]any, len(holdingColumns))
		for _, col := range holdingColumns {
			row[col] = strings.TrimSpace(record[headerMap[col]])
		}
		row["symbol"] = strings.ToUpper(row["symbol"].(string))
		row["exchange"] = strings.ToUpper(row["exchange"].(string))

		var holding model.Holding
		if err := decodeHolding(row, &holding); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		holdings = append(holdings, holding)
	}

	return holdings, nil
}

// decodeHolding maps a CSV row onto a Holding by its json tags. Numbers are
// parsed as plain decimals.
func decodeHolding(row map[string]any, out *model.Holding) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		DecodeHook: decimalStringHook,
		Result:     out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(row)
}

func decimalStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int:
		n, err := strconv.Atoi(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", to, data)
		}
		return n, nil
	case reflect.Float64:
		f, err := strconv.ParseFloat(data.(string), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", to, data)
		}
		return f, nil
	}
	return data, nil
}
