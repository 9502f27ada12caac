package integrationtests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/patrolgrid/internal/app"
	"github.com/vk/patrolgrid/internal/hcl"
	"github.com/vk/patrolgrid/internal/testutil"
)

// harnessResult captures everything a full application run produced.
type harnessResult struct {
	App       *app.App
	Err       error
	Output    string
	LogOutput string
}

// runApp writes files below a temporary directory and runs the application
// against gridPath, which is relative to that directory.
func runApp(t *testing.T, files map[string]string, gridPath string, mutate ...func(*app.Config)) *harnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)

	cfg := app.Config{
		GridPath:    filepath.Join(dir, gridPath),
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testApp := app.NewApp(out, logs, appConfig, hcl.NewLoader())

	runErr := testApp.Run(context.Background())
	if os.Getenv("PATROLGRID_TEST_LOGS") == "true" {
		t.Logf("--- APP LOGS ---\n%s", logs.String())
	}

	return &harnessResult{
		App:       testApp,
		Err:       runErr,
		Output:    out.String(),
		LogOutput: logs.String(),
	}
}
