package config_test

import (
	"testing"

	"github.com/lestrrat-go/xni/config"
	"github.com/stretchr/testify/require"
)

func TestInfosetSubsetsAreDisjoint(t *testing.T) {
	require.Zero(t, config.InfosetTrue&config.InfosetFalse)
}

func TestFeatures(t *testing.T) {
	var f config.Features
	f.Set(config.Comments | config.CDATA)
	require.True(t, f.IsSet(config.Comments))
	require.True(t, f.IsSet(config.CDATA))
	require.False(t, f.IsSet(config.Entities))

	f.Apply(config.CDATA, false)
	require.False(t, f.IsSet(config.CDATA))
	f.Clear(config.Comments)
	require.Zero(t, f)
}

func TestDatatypeNormalizationImpliesValidate(t *testing.T) {
	var f config.Features
	f.SetDatatypeNormalization(true)
	require.True(t, f.IsSet(config.DatatypeNormalization))
	require.True(t, f.IsSet(config.Validate))

	f.SetDatatypeNormalization(false)
	require.False(t, f.IsSet(config.DatatypeNormalization))
	require.True(t, f.IsSet(config.Validate), "turning it off leaves validate alone")
}

func TestInfoset(t *testing.T) {
	f := config.DefaultFeatures
	require.False(t, f.Infoset())

	f.SetInfoset(true)
	require.True(t, f.Infoset())
	require.False(t, f.IsSet(config.Entities))
	require.False(t, f.IsSet(config.CDATA))
	require.True(t, f.IsSet(config.SplitCDATA), "flags outside the infoset mask are untouched")

	f.SetInfoset(false)
	require.True(t, f.Infoset(), "infoset=false is a no-op")

	f.Set(config.Entities)
	require.False(t, f.Infoset())
}
