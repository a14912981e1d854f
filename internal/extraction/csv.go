package extraction

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyCSV means the file had no data rows to work with.
	ErrEmptyCSV = errors.New("csv file is empty")

	// ErrCSVMissingColumns means no name or price column could be
	// recognized in the header row.
	ErrCSVMissingColumns = errors.New("csv must have a name/item column and a price/cost column")
)

// csvColumns holds the detected header positions, -1 when absent.
type csvColumns struct {
	name     int
	price    int
	category int
	desc     int
}

// ParseCSV reads a tabular menu export. The header row is matched by
// keyword (name/item, price/cost, category/type, desc/detail); rows
// missing a name or a non-zero price are skipped. Fails immediately on
// an empty file or unrecognized columns; there is no fallback path for
// tabular input.
func ParseCSV(data []byte, currency CurrencyCode) ([]ParsedCategory, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyCSV
	}

	cols := detectColumns(rows[0])
	if cols.name < 0 || cols.price < 0 {
		return nil, ErrCSVMissingColumns
	}

	order := []string{}
	grouped := map[string][]ParsedItem{}

	for _, row := range rows[1:] {
		name := cell(row, cols.name)
		priceStr := strings.ReplaceAll(cell(row, cols.price), ",", "")
		price, perr := strconv.ParseFloat(priceStr, 64)
		if name == "" || perr != nil || price <= 0 || price >= maxItemPrice {
			continue
		}

		category := cell(row, cols.category)
		if category == "" {
			category = "Main Menu"
		}

		item := ParsedItem{
			Name:         name,
			Description:  cell(row, cols.desc),
			Price:        NormalizePrice(price, currency),
			CategoryName: category,
		}

		if _, ok := grouped[category]; !ok {
			order = append(order, category)
		}
		grouped[category] = append(grouped[category], item)
	}

	categories := make([]ParsedCategory, 0, len(order))
	for _, name := range order {
		categories = append(categories, ParsedCategory{
			Name:  name,
			Items: grouped[name],
		})
	}
	return categories, nil
}

func detectColumns(header []string) csvColumns {
	cols := csvColumns{name: -1, price: -1, category: -1, desc: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case cols.name < 0 && (strings.Contains(h, "name") || strings.Contains(h, "item")):
			cols.name = i
		case cols.price < 0 && (strings.Contains(h, "price") || strings.Contains(h, "cost")):
			cols.price = i
		case cols.category < 0 && (strings.Contains(h, "category") || strings.Contains(h, "type")):
			cols.category = i
		case cols.desc < 0 && (strings.Contains(h, "desc") || strings.Contains(h, "detail")):
			cols.desc = i
		}
	}
	return cols
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
