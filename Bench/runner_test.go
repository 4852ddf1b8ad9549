package Bench

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Size:     3000,
		Steps:    3,
		Dataset:  Uniform,
		MaxValue: 5000,
		Searches: 200,
		Seed:     1,
		Engines:  EngineNames(),
		Format:   "json",
	}
}

func TestStepSizes(t *testing.T) {
	assert.Equal(t, []int{3, 6, 10}, StepSizes(10, 3))
	assert.Equal(t, []int{1, 2, 3}, StepSizes(3, 3))
	assert.Equal(t, []int{7}, StepSizes(7, 1))
}

func TestRunner_Run(t *testing.T) {
	cfg := testConfig()
	require.NoError(t, cfg.Validate())
	for _, k := range Kinds() {
		t.Run(string(k), func(t *testing.T) {
			data, err := Generate(k, cfg.Size, cfg.MaxValue, cfg.Seed)
			require.NoError(t, err)
			var logs bytes.Buffer
			res, err := NewRunner(cfg, slog.New(slog.NewTextHandler(&logs, nil))).Run(context.Background(), data)
			require.NoError(t, err)

			assert.Equal(t, []int{1000, 2000, 3000}, res.DataSizes)
			assert.Equal(t, cfg.Engines, res.Engines())
			for _, e := range cfg.Engines {
				require.Len(t, res.InsertTimes[e], 3, e)
				require.Len(t, res.ExecTimes[e], 3, e)
				for i := 1; i < 3; i++ {
					assert.GreaterOrEqual(t, res.InsertTimes[e][i], res.InsertTimes[e][i-1], "cumulative insert time of %s", e)
				}
			}
			assert.Contains(t, logs.String(), "engine done")
		})
	}
}

func TestRunner_NoSearches(t *testing.T) {
	cfg := testConfig()
	cfg.Searches = 0
	cfg.Engines = []string{"Treap"}
	data, err := Generate(Skewed, cfg.Size, cfg.MaxValue, 2)
	require.NoError(t, err)
	res, err := NewRunner(cfg, nil).Run(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, res.ExecTimes["Treap"])
}

func TestRunner_Canceled(t *testing.T) {
	cfg := testConfig()
	data, err := Generate(Uniform, cfg.Size, cfg.MaxValue, 3)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewRunner(cfg, nil).Run(ctx, data)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_ShortData(t *testing.T) {
	_, err := NewRunner(testConfig(), nil).Run(context.Background(), []int{1, 2})
	assert.Error(t, err)
}

// blind never finds a key.
type blind struct {
	Engine
}

func (blind) Search(int) (bool, error) {
	return false, nil
}

func TestRunner_Mismatch(t *testing.T) {
	factories["broken"] = func(seed uint64) Engine {
		e, _ := NewEngine("AVL", seed)
		return blind{e}
	}
	t.Cleanup(func() { delete(factories, "broken") })

	cfg := testConfig()
	cfg.Engines = []string{"broken", "AVL"}
	data, err := Generate(Uniform, cfg.Size, cfg.MaxValue, 4)
	require.NoError(t, err)
	res, err := NewRunner(cfg, nil).Run(context.Background(), data)
	require.Error(t, err)
	assert.Nil(t, res)
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "broken", me.Engine)
	assert.False(t, me.Found)
	assert.Equal(t, 1000, me.Size)
}

// recorder keeps the keys it's asked for.
type recorder struct {
	Engine
	asked *[]int
}

func (u recorder) Search(key int) (bool, error) {
	*u.asked = append(*u.asked, key)
	return u.Engine.Search(key)
}

func TestRunner_SameQueries(t *testing.T) {
	asked := map[string]*[]int{"first": new([]int), "second": new([]int)}
	for name, s := range asked {
		factories[name] = func(seed uint64) Engine {
			e, _ := NewEngine("RB", seed)
			return recorder{e, s}
		}
	}
	t.Cleanup(func() {
		delete(factories, "first")
		delete(factories, "second")
	})

	cfg := testConfig()
	data, err := Generate(Uniform, cfg.Size, cfg.MaxValue, 5)
	require.NoError(t, err)
	cfg.Engines = []string{"first", "second"}
	_, err = NewRunner(cfg, nil).Run(context.Background(), data)
	require.NoError(t, err)
	want := *asked["first"]
	require.Len(t, want, cfg.Steps*cfg.Searches)
	assert.Equal(t, want, *asked["second"])

	// the order of the engines doesn't change what they're asked.
	*asked["first"], *asked["second"] = nil, nil
	cfg.Engines = []string{"second", "first"}
	_, err = NewRunner(cfg, nil).Run(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, want, *asked["first"])
	assert.Equal(t, want, *asked["second"])
}

func TestNewEngine(t *testing.T) {
	for _, name := range EngineNames() {
		e, err := NewEngine(name, 5)
		require.NoError(t, err)
		require.NoError(t, e.Insert(3))
		has, err := e.Search(3)
		require.NoError(t, err)
		assert.True(t, has, name)
	}
	_, err := NewEngine("Splay", 0)
	assert.Error(t, err)
}
