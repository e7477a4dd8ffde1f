package catalog

import (
	"fmt"
	"testing"

	"github.com/jacksmith/pcat/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainProject is a variant with neither tasks nor cost.
type plainProject struct {
	title string
}

func (p *plainProject) Title() string        { return p.title }
func (p *plainProject) EstimatedHours() int  { return 0 }
func (p *plainProject) Kind() model.Kind     { return model.Kind("plain") }
func (p *plainProject) DisplayLabel() string { return "Plain" }
func (p *plainProject) Describe() string     { return "[Plain] " + p.title }

func TestAdd(t *testing.T) {
	c := &Catalog{}
	assert.Equal(t, 0, c.Len())

	c.Add(model.NewWebProject("Site", 40))
	c.Add(model.NewMobileProject("App", 60))
	require.Equal(t, 2, c.Len())

	entries := c.List()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Index)
	assert.Equal(t, "Site", entries[0].Project.Title())
	assert.Equal(t, 2, entries[1].Index)
	assert.Equal(t, "App", entries[1].Project.Title())
}

func TestList(t *testing.T) {
	t.Run("empty catalog lists nothing", func(t *testing.T) {
		assert.Empty(t, New().List())
	})

	t.Run("listing does not mutate", func(t *testing.T) {
		c := New(model.NewWebProject("a", 1), model.NewWebProject("b", 2))
		entries := c.List()
		entries[0] = Entry{Index: 9, Project: model.NewMobileProject("x", 0)}

		p, err := c.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "a", p.Title())
	})
}

func TestGet(t *testing.T) {
	c := New(model.NewWebProject("a", 1), model.NewMobileProject("b", 2))

	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Title())

	p, err = c.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "b", p.Title())
}

func TestOutOfRange(t *testing.T) {
	sizes := []int{0, 1, 3}
	for _, size := range sizes {
		c := &Catalog{}
		for i := 0; i < size; i++ {
			c.Add(model.NewWebProject(fmt.Sprintf("p%d", i+1), i))
		}

		for _, index := range []int{0, -1, -100, size + 1, size + 50} {
			name := fmt.Sprintf("size %d index %d", size, index)
			t.Run(name, func(t *testing.T) {
				_, err := c.Get(index)
				assert.ErrorIs(t, err, ErrNotFound)

				err = c.AddTaskTo(index, "task")
				assert.ErrorIs(t, err, ErrNotFound)

				_, err = c.CostOf(index, decimal.NewFromInt(10))
				assert.ErrorIs(t, err, ErrNotFound)

				_, err = c.TasksOf(index)
				assert.ErrorIs(t, err, ErrNotFound)

				var nf *NotFoundError
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, index, nf.Index)
				assert.Equal(t, size, nf.Size)
			})
		}
	}
}

func TestAddTaskTo(t *testing.T) {
	t.Run("appends in order", func(t *testing.T) {
		c := New(model.NewWebProject("Site", 40))
		require.NoError(t, c.AddTaskTo(1, "A"))
		require.NoError(t, c.AddTaskTo(1, "B"))

		tasks, err := c.TasksOf(1)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, tasks)
	})

	t.Run("only touches the addressed project", func(t *testing.T) {
		c := New(model.NewWebProject("a", 1), model.NewMobileProject("b", 1))
		require.NoError(t, c.AddTaskTo(2, "only b"))

		tasks, err := c.TasksOf(1)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("project without tasks is rejected", func(t *testing.T) {
		c := New(&plainProject{title: "bare"})
		err := c.AddTaskTo(1, "A")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCapabilityUnsupported)
		assert.NotErrorIs(t, err, ErrNotFound)

		var ce *CapabilityError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, CapabilityTasks, ce.Capability)
		assert.Equal(t, "project 1 (Plain) does not support tasks", err.Error())

		_, err = c.TasksOf(1)
		assert.ErrorIs(t, err, ErrCapabilityUnsupported)
	})
}

func TestCostOf(t *testing.T) {
	t.Run("prices by hours", func(t *testing.T) {
		c := New(model.NewWebProject("Site", 40), model.NewMobileProject("App", 60))
		cost, err := c.CostOf(2, decimal.NewFromInt(15))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(900).Equal(cost), "got %s", cost)
	})

	t.Run("project without cost is rejected", func(t *testing.T) {
		c := New(model.NewWebProject("Site", 40), &plainProject{title: "bare"})
		_, err := c.CostOf(2, decimal.NewFromInt(15))
		assert.ErrorIs(t, err, ErrCapabilityUnsupported)

		var ce *CapabilityError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 2, ce.Index)
		assert.Equal(t, CapabilityCost, ce.Capability)
	})
}

func TestCostedAt(t *testing.T) {
	c := New(model.NewMobileProject("App", 10), &plainProject{title: "bare"})

	cp, err := c.CostedAt(1)
	require.NoError(t, err)
	cost := cp.CalculateCost(decimal.RequireFromString("25.50"))
	assert.True(t, decimal.NewFromInt(255).Equal(cost), "got %s", cost)

	_, err = c.CostedAt(2)
	assert.ErrorIs(t, err, ErrCapabilityUnsupported)

	_, err = c.CostedAt(3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplace(t *testing.T) {
	c := New(model.NewWebProject("old", 1))
	loaded := []model.Project{model.NewMobileProject("x", 1), model.NewWebProject("y", 2)}
	c.Replace(loaded)

	require.Equal(t, 2, c.Len())
	p, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "x", p.Title())

	loaded[0] = model.NewWebProject("mutated", 0)
	p, err = c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "x", p.Title(), "catalog keeps its own slice")
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "project 3 not found (catalog is empty)", (&NotFoundError{Index: 3}).Error())
	assert.Equal(t, "project 0 not found (expected 1-2)", (&NotFoundError{Index: 0, Size: 2}).Error())
}
