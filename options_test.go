package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/morph/inflection"
	"github.com/syssam/morph/model"
)

func TestDefaults(t *testing.T) {
	c := defaults()
	assert.EqualValues(t, 1, c.version)
	assert.Empty(t, c.models)
	assert.NotNil(t, c.inflector.Pluralize)
	assert.NotNil(t, c.inflector.Singularize)
	assert.NotNil(t, c.idFunc)
}

func TestWithVersion(t *testing.T) {
	t.Run("sets version", func(t *testing.T) {
		c := defaults()
		err := WithVersion(7)(c)

		require.NoError(t, err)
		assert.EqualValues(t, 7, c.version)
	})

	t.Run("zero returns error", func(t *testing.T) {
		c := defaults()
		err := WithVersion(0)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative returns error", func(t *testing.T) {
		c := defaults()
		err := WithVersion(-2)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithModels(t *testing.T) {
	t.Run("collects payloads in option order", func(t *testing.T) {
		c := defaults()
		first := model.Definitions{"user": model.Define()}
		second := model.Definitions{"post": model.Define()}
		require.NoError(t, WithModels(first)(c))
		require.NoError(t, WithModels(second)(c))

		require.Len(t, c.models, 2)
		assert.Contains(t, c.models[0], "user")
		assert.Contains(t, c.models[1], "post")
	})

	t.Run("later payloads overwrite", func(t *testing.T) {
		s, err := New(
			WithModels(model.Definitions{
				"user": model.Define().Attribute("name", model.Attr("string")),
			}),
			WithModels(model.Definitions{
				"user": model.Define().Attribute("name", model.Attr("text")),
			}),
		)
		require.NoError(t, err)
		a, err := s.Attribute("user", "name")
		require.NoError(t, err)
		assert.Equal(t, "text", a.Type)
	})
}

func TestWithInflector(t *testing.T) {
	t.Run("replaces both strategies", func(t *testing.T) {
		c := defaults()
		err := WithInflector(inflection.Rules())(c)

		require.NoError(t, err)
		assert.Equal(t, "people", c.inflector.Pluralize("person"))
	})

	t.Run("nil strategies fall back to naive", func(t *testing.T) {
		s, err := New(WithInflector(inflection.Inflector{}))
		require.NoError(t, err)
		assert.Equal(t, "cows", s.Pluralize("cow"))
		assert.Equal(t, "cow", s.Singularize("cows"))
	})
}

func TestWithPluralize(t *testing.T) {
	t.Run("replaces strategy", func(t *testing.T) {
		c := defaults()
		err := WithPluralize(func(w string) string { return w + "en" })(c)

		require.NoError(t, err)
		assert.Equal(t, "oxen", c.inflector.Pluralize("ox"))
		assert.Equal(t, "cow", c.inflector.Singularize("cows"))
	})

	t.Run("nil returns error", func(t *testing.T) {
		c := defaults()
		err := WithPluralize(nil)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithSingularize(t *testing.T) {
	t.Run("replaces strategy", func(t *testing.T) {
		c := defaults()
		err := WithSingularize(func(w string) string { return w })(c)

		require.NoError(t, err)
		assert.Equal(t, "data", c.inflector.Singularize("data"))
		assert.Equal(t, "cows", c.inflector.Pluralize("cow"))
	})

	t.Run("nil returns error", func(t *testing.T) {
		c := defaults()
		err := WithSingularize(nil)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithIDFunc(t *testing.T) {
	t.Run("replaces generator", func(t *testing.T) {
		c := defaults()
		err := WithIDFunc(func(modelName string) string { return modelName + "-0" })(c)

		require.NoError(t, err)
		assert.Equal(t, "moon-0", c.idFunc("moon"))
	})

	t.Run("nil returns error", func(t *testing.T) {
		c := defaults()
		err := WithIDFunc(nil)(c)

		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestConfigApply(t *testing.T) {
	c := defaults()
	err := c.apply(
		WithVersion(3),
		WithVersion(0), // fails; apply stops at the first error
		WithVersion(9),
	)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.EqualValues(t, 3, c.version)
}
