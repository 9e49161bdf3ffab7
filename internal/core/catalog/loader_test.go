package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"soup-catalog/internal/infrastructure/config"

	"github.com/xuri/excelize/v2"
)

func testCSV() string {
	return strings.Join([]string{
		header,
		sampleRows["Herbal Chicken Soup"],
		sampleRows["ABC Soup"],
		`Borscht,Medium,beets,60,Boil.,Internet`,
	}, "\n")
}

func TestLoaderLocalFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "soups.csv")
	if err := os.WriteFile(path, []byte(testCSV()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := NewLoader(config.CatalogConfig{Source: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.Join(names(got), "|") != "ABC Soup|Herbal Chicken Soup" {
		t.Fatalf("unexpected records: %v", names(got))
	}
}

func TestLoaderMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(config.CatalogConfig{Source: filepath.Join(t.TempDir(), "nope.csv")}).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoaderRemote(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/EhCookWhat_Soup_Recipe.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(testCSV()))
	}))
	defer srv.Close()

	loader := NewLoader(config.CatalogConfig{
		Source:       srv.URL + "/EhCookWhat_Soup_Recipe.csv",
		FetchTimeout: 5 * time.Second,
	})
	got, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
}

func TestLoaderRemoteErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewLoader(config.CatalogConfig{Source: srv.URL, FetchTimeout: 5 * time.Second}).Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestLoaderWorkbook(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "soups.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"soup_name", "difficulty", "ingredients", "cook_time_minutes", "instructions", "source"},
		{"Old Cucumber Soup", "Easy", "old cucumber, dates", 45, "Cut cucumber. Boil.", "Aunt"},
		{"Lotus Root with Peanut Soup", " Medium ", "lotus root, peanuts", 150, "1) Soak. 2) Boil.", "Grandma"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = f.Close()

	got, err := NewLoader(config.CatalogConfig{Source: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if strings.Join(names(got), "|") != "Lotus Root with Peanut Soup|Old Cucumber Soup" {
		t.Fatalf("unexpected records: %v", names(got))
	}
	if got[0].Difficulty != "Medium" || got[0].CookTime != 150 {
		t.Fatalf("unexpected first record: %+v", got[0])
	}

	_, err = NewLoader(config.CatalogConfig{Source: path, Sheet: "Missing"}).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for missing sheet")
	}
}

func TestLoaderWorkbookEmptyTrailingCell(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "soups.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"soup_name", "difficulty", "ingredients", "cook_time_minutes", "instructions", "source"},
		{"ABC Soup", "Easy", "corn", "90", "Boil.", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = f.Close()

	got, err := NewLoader(config.CatalogConfig{Source: path}).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Build("soup_name,difficulty,ingredients,cook_time_minutes,instructions,source\nABC Soup,Easy,corn,90,Boil.,")
	if len(got) != 1 || len(want) != 1 {
		t.Fatalf("expected one record from both sources, got workbook=%d text=%d", len(got), len(want))
	}
	if got[0] != want[0] {
		t.Fatalf("workbook record %+v differs from text record %+v", got[0], want[0])
	}
	if got[0].Source != "" {
		t.Fatalf("expected empty source, got %q", got[0].Source)
	}
}

func TestLoaderLegacyWorkbook(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(config.CatalogConfig{Source: "soups.xls"}).Load(context.Background())
	if !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
}
