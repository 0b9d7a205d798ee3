package insee

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestDatasetList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dataflow" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "IPC-2015", "Name": "Consumer price index", "n_series": 42},
			{"id": "CHOMAGE", "Name": "Unemployment"}
		]`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	catalog, err := client.DatasetList(context.Background())
	if err != nil {
		t.Fatalf("DatasetList failed: %v", err)
	}

	if catalog.NumRows() != 2 {
		t.Fatalf("expected 2 catalog rows, got %d", catalog.NumRows())
	}
	if catalog.Cell(0, "id") != "IPC-2015" {
		t.Errorf("unexpected first dataset: %q", catalog.Cell(0, "id"))
	}
	if catalog.Cell(0, "n_series") != "42" {
		t.Errorf("numeric cell should stringify, got %q", catalog.Cell(0, "n_series"))
	}
	if len(catalog.Columns) == 0 || catalog.Columns[0] != "id" {
		t.Errorf("id column should lead, got %v", catalog.Columns)
	}
}

func TestDatasetListUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	_, err := client.DatasetList(context.Background())
	if err == nil {
		t.Fatal("expected error for failing catalog endpoint")
	}
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got: %v", err)
	}
}

func TestSeriesListSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	if _, err := client.SeriesList(context.Background(), "IPC-2015"); err == nil {
		t.Fatal("expected error for failing series endpoint")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("failed call must not be retried, got %d attempts", got)
	}
}

func TestSeriesListEscapesDataset(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[{"idbank": "001759970", "SEXE": "F"}]`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL})
	tbl, err := client.SeriesList(context.Background(), "IPC 2015")
	if err != nil {
		t.Fatalf("SeriesList failed: %v", err)
	}
	if gotPath != "/series/IPC%202015" {
		t.Errorf("dataset id should be path-escaped, got %q", gotPath)
	}
	if tbl.Cell(0, "SEXE") != "F" {
		t.Errorf("unexpected dimension cell: %q", tbl.Cell(0, "SEXE"))
	}
}
