package cattle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/repository/memory"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), nil)

	created, err := svc.Register(ctx, models.Cattle{Name: "Bessie", Age: "3", Breed: "Holstein", Gender: "female"})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "Bessie", created.Name)
	assert.Equal(t, "Holstein", created.Breed)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestRegisterMissingFields(t *testing.T) {
	valid := models.Cattle{Name: "Bessie", Age: "3", Breed: "Holstein", Gender: "female"}

	cases := map[string]func(c *models.Cattle){
		"name":   func(c *models.Cattle) { c.Name = "" },
		"age":    func(c *models.Cattle) { c.Age = " " },
		"breed":  func(c *models.Cattle) { c.Breed = "" },
		"gender": func(c *models.Cattle) { c.Gender = "" },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewStore()
			svc := NewService(store, nil)

			record := valid
			mutate(&record)

			_, err := svc.Register(ctx, record)
			require.ErrorIs(t, err, ErrMissingFields)

			all, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}
