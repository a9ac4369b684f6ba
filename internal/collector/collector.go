package collector

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"ResearchDigest/internal/logger"
	"ResearchDigest/internal/model"
	"ResearchDigest/internal/parser"
)

// DefaultResearchDir is the sub-directory of a stock dir holding its reports.
const DefaultResearchDir = "research"

// Collector discovers, parses and orders the research reports of a stock.
type Collector struct {
	Source      Source
	Extractor   *parser.Extractor
	ResearchDir string
}

// NewCollector creates a new Collector.
func NewCollector(source Source, extractor *parser.Extractor, researchDir string) *Collector {
	if researchDir == "" {
		researchDir = DefaultResearchDir
	}
	return &Collector{Source: source, Extractor: extractor, ResearchDir: researchDir}
}

// Collect returns the valid reports under stockDir sorted by ascending version.
// Reports with equal versions keep their listing order. A missing research
// directory yields an empty result, not an error.
func (c *Collector) Collect(stockDir string) ([]*model.Report, error) {
	dir := filepath.Join(stockDir, c.ResearchDir)
	log := logger.Log.WithField("dir", dir)

	names, err := c.Source.List(dir)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	if len(names) == 0 {
		log.Debug("no research reports found")
		return []*model.Report{}, nil
	}

	parsed := make([]*model.Report, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()

			content, err := c.Source.Read(dir, name)
			if err != nil {
				log.WithField("file", name).WithError(err).Warn("read report failed, treating as empty")
				content = ""
			}

			report, meta := c.Extractor.ParseReport(name, content)
			if !meta.Valid() {
				log.WithField("file", name).Debug("skipping report without version or date")
				return
			}
			parsed[i] = report
		}(i, name)
	}
	wg.Wait()

	reports := make([]*model.Report, 0, len(parsed))
	for _, r := range parsed {
		if r != nil {
			reports = append(reports, r)
		}
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Version < reports[j].Version
	})

	log.WithField("count", len(reports)).Debug("reports collected")
	return reports, nil
}
