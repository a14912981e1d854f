package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xuri/excelize/v2"

	"menuflow/internal/core"
	"menuflow/internal/menu"
)

// MenuSource is the slice of the menu repository the exporter needs.
type MenuSource interface {
	ListCategories(ctx context.Context, restaurantID string) ([]menu.Category, error)
	ListItems(ctx context.Context, restaurantID string) ([]menu.Item, error)
}

// Service produces XLSX workbooks for approved menus.
type Service struct {
	restaurants core.RestaurantReader
	menus       MenuSource
}

func NewService(restaurants core.RestaurantReader, menus MenuSource) *Service {
	return &Service{restaurants: restaurants, menus: menus}
}

func slugify(name string) string {
	var b []rune
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b = append(b, r)
		case r >= 'A' && r <= 'Z':
			b = append(b, r+('a'-'A'))
		case r == ' ' || r == '-' || r == '_':
			if len(b) > 0 && b[len(b)-1] != '-' {
				b = append(b, '-')
			}
		}
	}
	if len(b) == 0 {
		return "menu"
	}
	return string(b)
}

// ExportMenuXLSX renders the restaurant's live menu as a one-sheet
// workbook, one row per item, grouped by category order.
func (s *Service) ExportMenuXLSX(ctx context.Context, restaurantID string) ([]byte, string, error) {
	info, err := s.restaurants.GetInfo(ctx, restaurantID)
	if err != nil {
		return nil, "", err
	}

	categories, err := s.menus.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, "", fmt.Errorf("query categories: %w", err)
	}
	items, err := s.menus.ListItems(ctx, restaurantID)
	if err != nil {
		return nil, "", fmt.Errorf("query items: %w", err)
	}

	byCategory := make(map[string][]menu.Item)
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}

	f := excelize.NewFile()
	const sheet = "Menu"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{"Category", "Item", "Description", "Price", "Currency", "Available"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for _, cat := range categories {
		for _, it := range byCategory[cat.ID] {
			write(1, cat.Name)
			write(2, it.Name)
			write(3, it.Description)
			write(4, it.Price)
			write(5, it.Currency)
			write(6, it.Available)
			row++
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	filename := fmt.Sprintf("menu-%s-%s.xlsx", slugify(info.Name), time.Now().UTC().Format("2006-01-02"))
	log.Printf("EXPORT_DONE restaurant=%s rows=%d", restaurantID, row-2)

	return buf.Bytes(), filename, nil
}
