package export

import (
	"context"
	"path/filepath"
	"time"

	"github.com/omaratef3221/omaratef3221.github.io/internal/gateway"
	"github.com/omaratef3221/omaratef3221.github.io/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	ScholarFile = "scholar.json"
	GitHubFile  = "github.json"

	githubPerPage = 100
	githubSort    = "updated"
)

// Result reports one written artifact or the reason it was skipped
type Result struct {
	Name  string
	Path  string
	Count int
	Err   error
}

// Exporter refreshes the static data files the site falls back to when
// it runs without the API
type Exporter struct {
	scholar gateway.ScholarGateway
	github  gateway.GitHubGateway
	outDir  string
	now     func() time.Time
}

func NewExporter(scholar gateway.ScholarGateway, github gateway.GitHubGateway, outDir string) *Exporter {
	return &Exporter{
		scholar: scholar,
		github:  github,
		outDir:  outDir,
		now:     time.Now,
	}
}

// Run exports both sources and, when workbook is set, an xlsx file with
// whatever succeeded. A failing source does not stop the others.
func (e *Exporter) Run(ctx context.Context, authorID, username, workbook string) []Result {
	now := e.now()
	var results []Result

	scholar, res := e.exportScholar(ctx, authorID, now)
	results = append(results, res)

	gh, res := e.exportGitHub(ctx, username, now)
	results = append(results, res)

	if workbook != "" {
		res := Result{Name: "workbook", Path: workbook}
		if scholar != nil {
			res.Count += len(scholar.Publications)
		}
		if gh != nil {
			res.Count += len(gh.Repositories)
		}
		res.Err = WriteWorkbook(workbook, scholar, gh)
		results = append(results, res)
	}

	for _, r := range results {
		entry := logger.WithFields(logrus.Fields{"export": r.Name, "path": r.Path, "count": r.Count})
		if r.Err != nil {
			entry.WithError(r.Err).Warn("Export failed")
			continue
		}
		entry.Info("Export written")
	}
	return results
}

func (e *Exporter) exportScholar(ctx context.Context, authorID string, now time.Time) (*ScholarSnapshot, Result) {
	res := Result{Name: "scholar", Path: filepath.Join(e.outDir, ScholarFile)}

	raw, err := e.scholar.GetAuthor(ctx, authorID)
	if err != nil {
		res.Err = err
		return nil, res
	}

	snapshot := BuildScholarSnapshot(authorID, raw, now)
	res.Count = snapshot.TotalPublications
	if err := WriteJSON(res.Path, snapshot); err != nil {
		res.Err = err
		return nil, res
	}
	return &snapshot, res
}

func (e *Exporter) exportGitHub(ctx context.Context, username string, now time.Time) (*GitHubSnapshot, Result) {
	res := Result{Name: "github", Path: filepath.Join(e.outDir, GitHubFile)}

	repos, err := e.github.ListRepositories(ctx, username, githubPerPage, githubSort)
	if err != nil {
		res.Err = err
		return nil, res
	}

	snapshot := BuildGitHubSnapshot(repos, now)
	res.Count = len(snapshot.Repositories)
	if err := WriteJSON(res.Path, snapshot); err != nil {
		res.Err = err
		return nil, res
	}
	return &snapshot, res
}

// Succeeded reports whether every result is free of errors
func Succeeded(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return false
		}
	}
	return true
}
