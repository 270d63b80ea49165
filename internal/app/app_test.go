package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"econmap/internal/config"
	"econmap/internal/dbclient"
	"econmap/internal/domain"
)

const gdpCSV = `country,year,gdp,state
Russia,1990,80,Europe
Russia,1991,100,Europe
Ghana,1991,20,Africa
`

const inflationCSV = `country_name,indicator_name,1990,1991
Russian Federation,Annual average inflation,5,10
Ghana,Annual average inflation,,15
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.Input.GDP = filepath.Join(dir, "gdp.csv")
	cfg.Input.Inflation = filepath.Join(dir, "inflation.csv")
	cfg.Output.Path = filepath.Join(dir, "out", "economic_data.csv")
	cfg.Map.Output = filepath.Join(dir, "map.html")
	require.NoError(t, os.WriteFile(cfg.Input.GDP, []byte(gdpCSV), 0o644))
	require.NoError(t, os.WriteFile(cfg.Input.Inflation, []byte(inflationCSV), 0o644))
	return cfg
}

func TestApp_RunWithSQLiteMirror(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Mirror.Driver = "sqlite"
	cfg.Mirror.Host = filepath.Join(t.TempDir(), "mirror.db")
	cfg.Map.FromMirror = true
	require.NoError(t, cfg.Validate())

	a := New(cfg)
	require.NoError(t, a.Startup(ctx))
	t.Cleanup(a.Shutdown)

	res, err := a.PipelineService().RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Rows)
	require.Len(t, res.Loads, 2)
	assert.Equal(t, "mirror", res.Loads[1].Name)
	assert.Equal(t, 3, res.Loads[1].RowsWritten)

	page, err := a.mirrorConn().ReadTable(ctx, "economic_data")
	require.NoError(t, err)
	assert.Len(t, page.Rows, 3)
	assert.Equal(t, "Country", page.Columns[0])

	gen, err := a.MapGenerator()
	require.NoError(t, err)
	rep, err := gen.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Rows)
	assert.Equal(t, []int{1990, 1991}, rep.Years)
	assert.Equal(t, 2, rep.Countries)
}

func TestApp_MapFromCSV(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	a := New(cfg)
	require.NoError(t, a.Startup(ctx))

	_, err := a.MapGenerator()
	assert.ErrorIs(t, err, os.ErrNotExist, "map needs the pipeline output")

	_, err = a.Pipeline().Run(ctx)
	require.NoError(t, err)

	gen, err := a.MapGenerator()
	require.NoError(t, err)
	_, err = gen.Generate(ctx)
	require.NoError(t, err)

	body, err := os.ReadFile(cfg.Map.Output)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `"GHA"`))
}

func TestApp_StartupPassesSecretToConnector(t *testing.T) {
	t.Setenv("ECONMAP_SECRET_PG_MAIN", "s3cret")
	cfg := testConfig(t)
	cfg.Mirror.Driver = "postgres"
	cfg.Mirror.Host = "db.internal"
	cfg.Mirror.PasswordKey = "pg-main"

	var gotPassword string
	var gotConn *domain.MirrorConnection
	a := New(cfg)
	a.connect = func(conn *domain.MirrorConnection, password string) (dbclient.Connector, error) {
		gotConn, gotPassword = conn, password
		return nil, errors.New("no network in tests")
	}

	err := a.Startup(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open mirror")
	assert.Equal(t, "s3cret", gotPassword)
	assert.Equal(t, domain.MirrorDriverPostgres, gotConn.Driver)
	assert.NotContains(t, err.Error(), "s3cret")
}

func TestApp_ExactResolutionOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.Resolve.Fuzzy = false
	a := New(cfg)

	code, ok := a.Pipeline().Resolver.Resolve("Ghana")
	assert.True(t, ok)
	assert.Equal(t, "GHA", code)

	_, ok = a.Pipeline().Resolver.Resolve("Republic of Ghana")
	assert.False(t, ok)
}

func TestApp_RecordsRunHistory(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.History.Path = filepath.Join(t.TempDir(), "runs.db")

	a := New(cfg)
	assert.Nil(t, a.History())
	require.NoError(t, a.Startup(ctx))
	t.Cleanup(a.Shutdown)

	svc := a.PipelineService()
	_, err := svc.RunOnce(ctx)
	require.NoError(t, err)

	require.NoError(t, os.Remove(cfg.Input.GDP))
	_, err = svc.RunOnce(ctx)
	require.Error(t, err)

	logs, err := a.History().ListRunLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	statuses := []domain.RunStatus{logs[0].Status, logs[1].Status}
	assert.ElementsMatch(t, []domain.RunStatus{domain.RunStatusCompleted, domain.RunStatusFailed}, statuses)
	for _, l := range logs {
		if l.Status == domain.RunStatusCompleted {
			assert.Equal(t, 3, l.Rows)
			assert.Equal(t, 2, l.Countries)
		}
	}
}
