package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/ldraw"
	"github.com/fwojciec/ldraw/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *ldraw.Document {
	stud := &ldraw.Document{
		PartType: "Primitive",
		Tris:     []*ldraw.Tri{{Color: ldraw.Int(16)}},
	}
	brick := &ldraw.Document{
		PartType: "Part",
		Subparts: []*ldraw.PartReference{
			{Color: ldraw.Int(16), Matrix: ldraw.Identity, PartID: "stud.dat"},
			{Color: ldraw.Int(16), Matrix: ldraw.Identity, PartID: "stud.dat"},
		},
		Quads: []*ldraw.Quad{{Color: ldraw.Int(16)}, {Color: ldraw.Int(16)}},
		Lines: []*ldraw.Line{{Color: ldraw.Int(24)}},
	}
	moved := ldraw.Identity
	moved[3], moved[7], moved[11] = 10, -24.5, 0
	return &ldraw.Document{
		PartType: "Model",
		Subparts: []*ldraw.PartReference{
			{Color: ldraw.Int(4), Matrix: ldraw.Identity, PartID: "3001.dat"},
			{Color: ldraw.Text("0x2FF0000"), Matrix: moved, PartID: "3001.dat"},
			{Color: ldraw.Int(1), Matrix: ldraw.Identity, PartID: "missing.dat"},
		},
		Parts: map[string]*ldraw.Document{
			"3001.dat": brick,
			"stud.dat": stud,
		},
	}
}

func TestModelService_CreateModel(t *testing.T) {
	t.Parallel()

	t.Run("creates model with generated ID and counts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		m := &ldraw.Model{Name: "car.ldr"}

		err := svc.CreateModel(context.Background(), m, testModel())

		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, "Model", m.PartType)
		assert.Equal(t, 2, m.PartCount)
		assert.Equal(t, 3, m.Subparts)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("returns error for invalid model", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)

		err := svc.CreateModel(context.Background(), &ldraw.Model{}, testModel())

		require.Error(t, err)
		assert.Equal(t, ldraw.EINVALID, ldraw.ErrorCode(err))
	})

	t.Run("returns error for missing document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)

		err := svc.CreateModel(context.Background(), &ldraw.Model{Name: "car.ldr"}, nil)

		assert.Equal(t, ldraw.EINVALID, ldraw.ErrorCode(err))
	})

	t.Run("stores a model without parts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		m := &ldraw.Model{Name: "empty.ldr"}

		require.NoError(t, svc.CreateModel(context.Background(), m, &ldraw.Document{}))

		parts, err := svc.FindModelParts(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Empty(t, parts)
	})
}

func TestModelService_FindModelByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored model", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		ctx := context.Background()
		m := &ldraw.Model{Name: "car.ldr"}
		require.NoError(t, svc.CreateModel(ctx, m, testModel()))

		got, err := svc.FindModelByID(ctx, m.ID)

		require.NoError(t, err)
		assert.Equal(t, m.ID, got.ID)
		assert.Equal(t, "car.ldr", got.Name)
		assert.Equal(t, "Model", got.PartType)
		assert.Equal(t, 2, got.PartCount)
		assert.Equal(t, 3, got.Subparts)
		assert.WithinDuration(t, m.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)

		_, err := svc.FindModelByID(context.Background(), "nonexistent")

		require.Error(t, err)
		assert.Equal(t, ldraw.ENOTFOUND, ldraw.ErrorCode(err))
	})
}

func TestModelService_FindModelParts(t *testing.T) {
	t.Parallel()

	t.Run("returns parts ordered by ID with counts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		ctx := context.Background()
		m := &ldraw.Model{Name: "car.ldr"}
		require.NoError(t, svc.CreateModel(ctx, m, testModel()))

		parts, err := svc.FindModelParts(ctx, m.ID)

		require.NoError(t, err)
		require.Len(t, parts, 2)

		brick := parts[0]
		assert.Equal(t, "3001.dat", brick.PartID)
		assert.Equal(t, "Part", brick.PartType)
		assert.Equal(t, 2, brick.Subparts)
		assert.Equal(t, 1, brick.Lines)
		assert.Equal(t, 0, brick.Tris)
		assert.Equal(t, 2, brick.Quads)
		assert.Equal(t, 0, brick.OptLines)
		assert.Len(t, brick.Hash, 16)

		stud := parts[1]
		assert.Equal(t, "stud.dat", stud.PartID)
		assert.Equal(t, 1, stud.Tris)
		assert.NotEqual(t, brick.Hash, stud.Hash)
	})

	t.Run("equal geometry hashes equally across models", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		ctx := context.Background()
		first := &ldraw.Model{Name: "car.ldr"}
		second := &ldraw.Model{Name: "truck.ldr"}
		require.NoError(t, svc.CreateModel(ctx, first, testModel()))
		require.NoError(t, svc.CreateModel(ctx, second, testModel()))

		a, err := svc.FindModelParts(ctx, first.ID)
		require.NoError(t, err)
		b, err := svc.FindModelParts(ctx, second.ID)
		require.NoError(t, err)

		require.Len(t, a, 2)
		require.Len(t, b, 2)
		assert.Equal(t, a[0].Hash, b[0].Hash)
		assert.Equal(t, a[1].Hash, b[1].Hash)
	})

	t.Run("returns ENOTFOUND for unknown model", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)

		_, err := svc.FindModelParts(context.Background(), "nonexistent")

		assert.Equal(t, ldraw.ENOTFOUND, ldraw.ErrorCode(err))
	})
}

func TestModelService_FindModelRefs(t *testing.T) {
	t.Parallel()

	t.Run("returns root references in file order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		ctx := context.Background()
		doc := testModel()
		m := &ldraw.Model{Name: "car.ldr"}
		require.NoError(t, svc.CreateModel(ctx, m, doc))

		refs, err := svc.FindModelRefs(ctx, m.ID, "")

		require.NoError(t, err)
		assert.Equal(t, doc.Subparts, refs)
	})

	t.Run("returns references of a part", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		ctx := context.Background()
		m := &ldraw.Model{Name: "car.ldr"}
		require.NoError(t, svc.CreateModel(ctx, m, testModel()))

		refs, err := svc.FindModelRefs(ctx, m.ID, "3001.dat")

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "stud.dat", refs[0].PartID)
	})

	t.Run("returns nothing for a leaf part", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewModelService(db)
		ctx := context.Background()
		m := &ldraw.Model{Name: "car.ldr"}
		require.NoError(t, svc.CreateModel(ctx, m, testModel()))

		refs, err := svc.FindModelRefs(ctx, m.ID, "stud.dat")

		require.NoError(t, err)
		assert.Empty(t, refs)
	})
}
