package postgres_test

import (
	"ayurdeploy/pkg/domain"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Deployments(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	runID := uuid.New()

	newDeployment := func(name string, block uint64) domain.Deployment {
		return domain.Deployment{
			RunID:           runID,
			ContractName:    name,
			ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			Deployer:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
			TxHash:          "0x" + uuid.NewString(),
			ChainID:         1337,
			BlockNumber:     block,
			GasUsed:         21000 + block,
			CompilerVersion: "0.8.20+commit.a1b79de6",
		}
	}

	t.Run("store nothing", func(t *testing.T) {
		res, err := pgSQL.StoreDeployments(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("store and list", func(t *testing.T) {
		stored, err := pgSQL.StoreDeployments(ctx,
			newDeployment("FarmerBatches", 1),
			newDeployment("Manufacturer", 2),
		)
		require.NoError(t, err)
		require.Len(t, stored, 2)
		for _, d := range stored {
			require.NotEqual(t, uuid.Nil, uuid.UUID(d.ID))
			require.False(t, d.CreatedAt.IsZero())
			require.Equal(t, runID, d.RunID)
			require.Equal(t, uint64(1337), d.ChainID)
		}

		_, err = pgSQL.StoreDeployments(ctx, newDeployment("FarmerBatches", 3))
		require.NoError(t, err)

		all, err := pgSQL.Deployments(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, all, 3)

		farmer, err := pgSQL.Deployments(ctx, "FarmerBatches", 0)
		require.NoError(t, err)
		require.Len(t, farmer, 2)
		require.Equal(t, uint64(3), farmer[0].BlockNumber, "newest first")
		require.Equal(t, uint64(21003), farmer[0].GasUsed)

		limited, err := pgSQL.Deployments(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)
	})
}
