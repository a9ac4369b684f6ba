package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"ResearchDigest/internal/collector"
	"ResearchDigest/internal/logger"
	"ResearchDigest/internal/summary"
)

// ErrStockDirNotFound is returned when the stock directory does not exist.
var ErrStockDirNotFound = errors.New("stock directory not found")

// Result describes one generated summary.
type Result struct {
	StockCode   string
	StockDir    string
	SummaryPath string
	ReportCount int
}

// Generator builds and writes the comparison summary for stocks under StocksDir.
type Generator struct {
	Collector  *collector.Collector
	StocksDir  string
	OutputFile string
	Now        func() time.Time
}

// NewGenerator creates a new Generator.
func NewGenerator(col *collector.Collector, stocksDir, outputFile string) *Generator {
	if outputFile == "" {
		outputFile = summary.DefaultFileName
	}
	return &Generator{Collector: col, StocksDir: stocksDir, OutputFile: outputFile, Now: time.Now}
}

// StockDir returns the directory holding stockCode's data.
func (g *Generator) StockDir(stockCode string) string {
	return filepath.Join(g.StocksDir, stockCode)
}

// Generate writes the summary for one stock, overwriting any previous one.
func (g *Generator) Generate(stockCode string) (*Result, error) {
	stockDir := g.StockDir(stockCode)
	info, err := os.Stat(stockDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStockDirNotFound, stockDir)
		}
		return nil, fmt.Errorf("stat stock dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrStockDirNotFound, stockDir)
	}

	reports, err := g.Collector.Collect(stockDir)
	if err != nil {
		return nil, fmt.Errorf("collect reports: %w", err)
	}

	content := summary.Format(stockCode, reports, g.Now())
	path := filepath.Join(stockDir, g.OutputFile)
	if err := summary.WriteFile(path, content); err != nil {
		return nil, fmt.Errorf("write summary: %w", err)
	}

	logger.Log.WithField("stock", stockCode).WithField("reports", len(reports)).WithField("path", path).Info("summary generated")
	return &Result{StockCode: stockCode, StockDir: stockDir, SummaryPath: path, ReportCount: len(reports)}, nil
}

// ListStocks returns the stock codes (sub-directory names) under StocksDir, sorted.
func (g *Generator) ListStocks() ([]string, error) {
	entries, err := os.ReadDir(g.StocksDir)
	if err != nil {
		return nil, fmt.Errorf("read stocks dir: %w", err)
	}
	var codes []string
	for _, e := range entries {
		if e.IsDir() && e.Name()[0] != '.' {
			codes = append(codes, e.Name())
		}
	}
	sort.Strings(codes)
	return codes, nil
}

// GenerateMany runs Generate for each code. Failures are logged and counted;
// the remaining stocks are still processed.
func (g *Generator) GenerateMany(codes []string) ([]*Result, int) {
	var (
		results []*Result
		failed  int
	)
	for _, code := range codes {
		res, err := g.Generate(code)
		if err != nil {
			logger.Log.WithField("stock", code).WithError(err).Error("generate summary failed")
			failed++
			continue
		}
		results = append(results, res)
	}
	return results, failed
}

// GenerateAll runs GenerateMany over every stock under StocksDir.
func (g *Generator) GenerateAll() ([]*Result, int, error) {
	codes, err := g.ListStocks()
	if err != nil {
		return nil, 0, err
	}
	results, failed := g.GenerateMany(codes)
	return results, failed, nil
}
