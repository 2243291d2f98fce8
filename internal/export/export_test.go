package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/omaratef3221/omaratef3221.github.io/internal/gateway"
	"github.com/omaratef3221/omaratef3221.github.io/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var exportNow = time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

type stubScholar struct {
	resp *models.ScholarAuthorResponse
	err  error
}

func (s stubScholar) GetAuthor(context.Context, string) (*models.ScholarAuthorResponse, error) {
	return s.resp, s.err
}

type stubGitHub struct {
	repos []*github.Repository
	err   error
}

func (s stubGitHub) GetUser(context.Context, string) (*github.User, error) { return nil, s.err }

func (s stubGitHub) ListRepositories(context.Context, string, int, string) ([]*github.Repository, error) {
	return s.repos, s.err
}

func (s stubGitHub) ListStarred(context.Context, string, int) ([]*github.StarredRepository, error) {
	return nil, s.err
}

func scholarResponse(citations ...int) *models.ScholarAuthorResponse {
	resp := &models.ScholarAuthorResponse{Author: &models.ScholarAuthorInfo{Name: "Ada"}}
	for i, c := range citations {
		a := &models.ScholarArticle{Title: "Paper " + string(rune('A'+i)), Year: "2024"}
		a.CitedBy.Value = c
		resp.Articles = append(resp.Articles, a)
	}
	return resp
}

func repositories(n int) []*github.Repository {
	repos := make([]*github.Repository, 0, n+1)
	for i := 0; i < n; i++ {
		repos = append(repos, &github.Repository{
			Name:            github.String("repo" + string(rune('a'+i))),
			StargazersCount: github.Int(i),
			Topics:          []string{"go"},
		})
	}
	repos = append(repos, &github.Repository{Name: github.String("fork"), StargazersCount: github.Int(1000), Fork: github.Bool(true)})
	return repos
}

func newExporter(scholar gateway.ScholarGateway, gh gateway.GitHubGateway, dir string) *Exporter {
	e := NewExporter(scholar, gh, dir)
	e.now = func() time.Time { return exportNow }
	return e
}

func readJSON(t *testing.T, path string, out interface{}) {
	t.Helper()
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestBuildScholarSnapshotKeepsAllPublications(t *testing.T) {
	snapshot := BuildScholarSnapshot("abc", scholarResponse(1, 9, 4, 7, 2), exportNow)

	require.Len(t, snapshot.Publications, 5)
	assert.Equal(t, 5, snapshot.TotalPublications)
	assert.Equal(t, 9, snapshot.Publications[0].Citations)
	assert.Equal(t, 1, snapshot.Publications[4].Citations)
	assert.Equal(t, "Ada", snapshot.Profile.Name)
	assert.Equal(t, "2025-03-15", snapshot.LastUpdated)
}

func TestBuildGitHubSnapshotTopSix(t *testing.T) {
	snapshot := BuildGitHubSnapshot(repositories(8), exportNow)

	require.Len(t, snapshot.Repositories, 6)
	assert.Equal(t, "repoh", snapshot.Repositories[0].Name)
	for _, r := range snapshot.Repositories {
		assert.NotEqual(t, "fork", r.Name)
	}
}

func TestExporterRun(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "portfolio.xlsx")
	e := newExporter(stubScholar{resp: scholarResponse(3, 5)}, stubGitHub{repos: repositories(2)}, dir)

	results := e.Run(context.Background(), "abc", "octo", workbook)
	require.Len(t, results, 3)
	assert.True(t, Succeeded(results))

	var scholar ScholarSnapshot
	readJSON(t, filepath.Join(dir, ScholarFile), &scholar)
	assert.Equal(t, 2, scholar.TotalPublications)
	assert.Equal(t, "2025-03-15", scholar.LastUpdated)

	var gh GitHubSnapshot
	readJSON(t, filepath.Join(dir, GitHubFile), &gh)
	assert.Len(t, gh.Repositories, 2)

	f, err := excelize.OpenFile(workbook)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{publicationsSheet, repositoriesSheet}, f.GetSheetList())

	rows, err := f.GetRows(publicationsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][0])
	assert.Equal(t, "5", rows[1][4])

	rows, err = f.GetRows(repositoriesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "go", rows[1][5])
}

func TestExporterPartialFailure(t *testing.T) {
	dir := t.TempDir()
	e := newExporter(gateway.DisabledScholar{}, stubGitHub{repos: repositories(1)}, dir)

	results := e.Run(context.Background(), "abc", "octo", "")
	require.Len(t, results, 2)
	assert.False(t, Succeeded(results))

	assert.Equal(t, "scholar", results[0].Name)
	assert.True(t, gateway.Unavailable(results[0].Err))
	assert.NoFileExists(t, filepath.Join(dir, ScholarFile))

	assert.NoError(t, results[1].Err)
	assert.FileExists(t, filepath.Join(dir, GitHubFile))
}

func TestWriteJSONCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")

	require.NoError(t, WriteJSON(path, map[string]string{"name": "<Ada & co>"}))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<Ada & co>")
	assert.Contains(t, string(body), "\n  \"name\"")
}
