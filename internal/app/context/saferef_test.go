package appctx_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	appctx "github.com/jsamuelsen11/mentorship-admin/internal/app/context"
)

func TestSafeRef_GetSetUpdate(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(map[string]int{})
	ref.Set(map[string]int{"positive": 1})
	ref.Update(func(m *map[string]int) { (*m)["positive"]++ })

	assert.Equal(t, 2, ref.Get()["positive"])
}

func TestSafeRef_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(0)
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			ref.Update(func(n *int) { *n++ })
			_ = ref.Get()
		})
	}
	wg.Wait()

	assert.Equal(t, 100, ref.Get())
}
