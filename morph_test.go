package morph_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/morph"
	"github.com/syssam/morph/event"
	"github.com/syssam/morph/inflection"
	"github.com/syssam/morph/model"
)

// planet is the minimal record implementation used across the tests.
type planet struct {
	id string
}

func (p *planet) ModelType() string { return "planet" }
func (p *planet) ID() string        { return p.id }
func (p *planet) SetID(id string)   { p.id = id }

var _ morph.Record = (*planet)(nil)

func solarDefs() model.Definitions {
	return model.Definitions{
		"planet": model.Define().
			Attribute("name", model.Attr("string")).
			Relationship("moons", model.ToMany("moon").Ref("planet")),
		"moon": model.Define().
			Attribute("name", model.Attr("string")).
			Relationship("planet", model.ToOne("planet").Ref("moons")),
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s, err := morph.New()
	require.NoError(t, err)
	assert.EqualValues(t, 1, s.Version())
	assert.Empty(t, s.ModelNames())
	assert.Equal(t, "cows", s.Pluralize("cow"))
	assert.Equal(t, "cow", s.Singularize("cows"))

	id := s.GenerateID("planet")
	assert.NotEmpty(t, id)
	assert.NotEqual(t, id, s.GenerateID("planet"))
}

func TestNew_WithModels(t *testing.T) {
	t.Parallel()

	s, err := morph.New(morph.WithModels(solarDefs()))
	require.NoError(t, err)
	assert.Equal(t, []string{"moon", "planet"}, s.ModelNames())
	assert.True(t, s.HasModel("planet"))
	assert.False(t, s.HasModel("asteroid"))

	m, err := s.Model("planet")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, m.AttributeNames())
	assert.Equal(t, []string{"moons"}, m.RelationshipNames())
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { morph.MustNew() })
	require.Panics(t, func() { morph.MustNew(morph.WithVersion(0)) })
}

func TestSchema_VersionAdvances(t *testing.T) {
	t.Parallel()

	s := morph.MustNew()
	require.EqualValues(t, 1, s.Version())

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Upgrade(ctx, nil))
		assert.EqualValues(t, 1+i, s.Version())
	}
}

func TestSchema_UpgradeMerges(t *testing.T) {
	t.Parallel()

	s := morph.MustNew(morph.WithModels(solarDefs()))
	err := s.Upgrade(context.Background(), model.Definitions{
		"planet": model.Define().Attribute("rings", model.Attr("bool")),
		"comet":  model.Define().Attribute("period", model.Attr("number")),
	})
	require.NoError(t, err)

	// Mentioned names were added, everything else survived.
	assert.True(t, s.HasAttribute("planet", "rings"))
	assert.True(t, s.HasAttribute("planet", "name"))
	assert.True(t, s.HasRelationship("planet", "moons"))
	assert.True(t, s.HasAttribute("comet", "period"))
	assert.True(t, s.HasAttribute("moon", "name"))
	assert.Equal(t, []string{"moon", "planet", "comet"}, s.ModelNames())
}

func TestSchema_ListenerObservesNewState(t *testing.T) {
	t.Parallel()

	s := morph.MustNew(morph.WithModels(solarDefs()))
	var (
		gotVersion int64
		sawRings   bool
	)
	s.OnUpgrade(func(_ context.Context, version int64) error {
		gotVersion = version
		sawRings = s.HasAttribute("planet", "rings")
		return nil
	})

	err := s.Upgrade(context.Background(), model.Definitions{
		"planet": model.Define().Attribute("rings", model.Attr("bool")),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, gotVersion)
	assert.True(t, sawRings, "listener must observe the merged shape")
}

func TestSchema_UpgradeRunsListenersConcurrently(t *testing.T) {
	t.Parallel()

	s := morph.MustNew()
	var ran atomic.Int32
	listener := func(context.Context, int64) error {
		time.Sleep(50 * time.Millisecond)
		ran.Add(1)
		return nil
	}
	s.OnUpgrade(listener)
	s.OnUpgrade(listener)

	start := time.Now()
	require.NoError(t, s.Upgrade(context.Background(), nil))
	elapsed := time.Since(start)

	assert.EqualValues(t, 2, ran.Load())
	assert.Less(t, elapsed, 100*time.Millisecond, "listeners must not run serially")
}

func TestSchema_UpgradeListenerFailure(t *testing.T) {
	t.Parallel()

	s := morph.MustNew(morph.WithModels(solarDefs()))
	boom := errors.New("boom")
	var siblingRan atomic.Bool
	s.OnUpgrade(func(context.Context, int64) error { return boom })
	s.OnUpgrade(func(context.Context, int64) error { siblingRan.Store(true); return nil })

	err := s.Upgrade(context.Background(), model.Definitions{
		"planet": model.Define().Attribute("rings", model.Attr("bool")),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, event.ErrListenerFailed)
	var le *event.ListenerError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 0, le.Listener)
	assert.EqualValues(t, 2, le.Version)

	// The failure concerns notification only.
	assert.True(t, siblingRan.Load())
	assert.EqualValues(t, 2, s.Version())
	assert.True(t, s.HasAttribute("planet", "rings"))
}

func TestSchema_Lookups(t *testing.T) {
	t.Parallel()

	s := morph.MustNew(morph.WithModels(solarDefs()))

	_, err := s.Model("unknown")
	require.Error(t, err)
	assert.True(t, model.IsNotFound(err))
	assert.ErrorContains(t, err, "unknown")

	a, err := s.Attribute("planet", "name")
	require.NoError(t, err)
	assert.Equal(t, "string", a.Type)

	r, err := s.Relationship("moon", "planet")
	require.NoError(t, err)
	assert.Equal(t, model.HasOne, r.Kind)

	assert.False(t, s.HasAttribute("planet", "unknown"))
	assert.False(t, s.HasAttribute("unknown", "name"))
	assert.False(t, s.HasRelationship("planet", "unknown"))

	var visits int
	s.EachAttribute("unknown", func(string, *model.Attribute) { visits++ })
	s.EachRelationship("unknown", func(string, *model.Relationship) { visits++ })
	assert.Zero(t, visits)

	var names []string
	s.EachAttribute("planet", func(name string, _ *model.Attribute) { names = append(names, name) })
	assert.Equal(t, []string{"name"}, names)
}

func TestSchema_Inflection(t *testing.T) {
	t.Parallel()

	t.Run("NaiveDefault", func(t *testing.T) {
		s := morph.MustNew()
		assert.Equal(t, "cows", s.Pluralize("cow"))
		assert.Equal(t, "cow", s.Singularize("cows"))
		// Deliberately untouched: no trailing "s" to strip.
		assert.Equal(t, "data", s.Singularize("data"))
	})

	t.Run("Override", func(t *testing.T) {
		s := morph.MustNew(
			morph.WithPluralize(func(w string) string { return w + "en" }),
			morph.WithSingularize(func(w string) string { return w }),
		)
		assert.Equal(t, "oxen", s.Pluralize("ox"))
		assert.Equal(t, "data", s.Singularize("data"))
	})

	t.Run("Rules", func(t *testing.T) {
		s := morph.MustNew(morph.WithInflector(inflection.Rules()))
		assert.Equal(t, "people", s.Pluralize("person"))
		assert.Equal(t, "person", s.Singularize("people"))
	})
}

func TestSchema_GenerateID(t *testing.T) {
	t.Parallel()

	s := morph.MustNew(morph.WithIDFunc(func(modelName string) string {
		return modelName + "-1"
	}))
	assert.Equal(t, "planet-1", s.GenerateID("planet"))
}

func TestSchema_InitializeRecord(t *testing.T) {
	t.Parallel()

	t.Run("AssignsWhenEmpty", func(t *testing.T) {
		var next atomic.Int32
		s := morph.MustNew(morph.WithIDFunc(func(modelName string) string {
			return modelName + "-" + string(rune('0'+next.Add(1)))
		}))
		rec := &planet{}
		s.InitializeRecord(rec)
		assert.Equal(t, "planet-1", rec.ID())

		// Idempotent: a second pass leaves the identifier alone.
		s.InitializeRecord(rec)
		assert.Equal(t, "planet-1", rec.ID())
	})

	t.Run("KeepsExisting", func(t *testing.T) {
		s := morph.MustNew()
		rec := &planet{id: "mars"}
		s.InitializeRecord(rec)
		assert.Equal(t, "mars", rec.ID())
	})

	t.Run("DefaultGenerator", func(t *testing.T) {
		s := morph.MustNew()
		a, b := &planet{}, &planet{}
		s.InitializeRecord(a)
		s.InitializeRecord(b)
		assert.NotEmpty(t, a.ID())
		assert.NotEmpty(t, b.ID())
		assert.NotEqual(t, a.ID(), b.ID())
	})
}
