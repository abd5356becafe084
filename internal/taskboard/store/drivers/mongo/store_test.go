package mongo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startMongo runs a throwaway MongoDB and returns its connection URI.
func startMongo(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping MongoDB container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor: wait.ForListeningPort("27017/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

func TestConformance(t *testing.T) {
	uri := startMongo(t)

	storetest.Run(t, func(t *testing.T) store.Store {
		ctx := context.Background()

		// One database per subtest keeps counts independent.
		name := "taskboard_" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
		s, err := NewStore(ctx, uri, name)
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = s.db.Drop(context.Background())
			_ = s.Close()
		})

		require.NoError(t, s.ApplyMigrations(ctx))
		return s
	})
}
