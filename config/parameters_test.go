package config_test

import (
	"testing"

	"github.com/lestrrat-go/xni/config"
	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/settings"
	"github.com/stretchr/testify/require"
)

type nopResolver struct{}

func (nopResolver) ResolveEntity(*event.ResourceIdentifier) (*event.InputSource, error) {
	return nil, nil
}

func TestParameterDefaults(t *testing.T) {
	c := config.New()
	expected := map[string]bool{
		config.ParamComments:                    true,
		config.ParamNamespaces:                  true,
		config.ParamEntities:                    true,
		config.ParamCDATASections:               true,
		config.ParamSplitCDATASections:          true,
		config.ParamWellFormed:                  true,
		config.ParamNamespaceDeclarations:       true,
		config.ParamValidate:                    false,
		config.ParamDatatypeNormalization:       false,
		config.ParamInfoset:                     false,
		config.ParamNormalizeCharacters:         false,
		config.ParamCanonicalForm:               false,
		config.ParamCheckCharacterNormalization: false,
		config.ParamElementContentWhitespace:    true,
	}
	for name, want := range expected {
		v, err := c.Parameter(name)
		require.NoError(t, err, name)
		require.Equal(t, want, v, name)
	}
}

func TestParameterCaseInsensitive(t *testing.T) {
	c := config.New()
	require.NoError(t, c.SetParameter("COMMENTS", false))
	v, err := c.Parameter("Comments")
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestParameterNotFound(t *testing.T) {
	c := config.New()
	err := c.SetParameter("no-such-thing", true)
	require.ErrorIs(t, err, config.ErrParameterNotFound)

	_, err = c.Parameter("no-such-thing")
	require.ErrorIs(t, err, config.ErrParameterNotFound)
}

func TestParameterTypeMismatch(t *testing.T) {
	c := config.New()
	require.ErrorIs(t, c.SetParameter(config.ParamComments, "yes"), config.ErrTypeMismatch)
	require.ErrorIs(t, c.SetParameter(config.ParamErrorHandler, 42), config.ErrTypeMismatch)
	require.ErrorIs(t, c.SetParameter(config.ParamSchemaLocation, true), config.ErrTypeMismatch)
	require.ErrorIs(t, c.SetParameter(config.ParamEntityResolver, "resolver"), config.ErrTypeMismatch)
}

func TestParameterFixedValues(t *testing.T) {
	c := config.New()
	for _, name := range []string{config.ParamNormalizeCharacters, config.ParamCanonicalForm, config.ParamCheckCharacterNormalization} {
		require.NoError(t, c.SetParameter(name, false), name)
		require.ErrorIs(t, c.SetParameter(name, true), config.ErrNotSupported, name)
	}
	require.NoError(t, c.SetParameter(config.ParamElementContentWhitespace, true))
	require.ErrorIs(t, c.SetParameter(config.ParamElementContentWhitespace, false), config.ErrNotSupported)
}

func TestInfosetParameter(t *testing.T) {
	c := config.New()
	require.NoError(t, c.SetParameter(config.ParamDatatypeNormalization, true))
	require.NoError(t, c.SetParameter(config.ParamInfoset, true))

	for _, name := range []string{config.ParamComments, config.ParamNamespaces, config.ParamWellFormed, config.ParamNamespaceDeclarations, config.ParamInfoset} {
		v, err := c.Parameter(name)
		require.NoError(t, err)
		require.Equal(t, true, v, name)
	}
	for _, name := range []string{config.ParamEntities, config.ParamDatatypeNormalization, config.ParamCDATASections} {
		v, err := c.Parameter(name)
		require.NoError(t, err)
		require.Equal(t, false, v, name)
	}
	normalize, err := c.Feature(settings.FeatureNormalizeData)
	require.NoError(t, err)
	require.False(t, normalize)

	require.NoError(t, c.SetParameter(config.ParamInfoset, false))
	v, err := c.Parameter(config.ParamInfoset)
	require.NoError(t, err)
	require.Equal(t, true, v, "infoset=false does not undo infoset=true")

	require.NoError(t, c.SetParameter(config.ParamCDATASections, true))
	v, err = c.Parameter(config.ParamInfoset)
	require.NoError(t, err)
	require.Equal(t, false, v)
}

func TestDatatypeNormalizationParameter(t *testing.T) {
	c := config.New()
	require.NoError(t, c.SetParameter(config.ParamDatatypeNormalization, true))

	v, err := c.Parameter(config.ParamValidate)
	require.NoError(t, err)
	require.Equal(t, true, v)

	normalize, err := c.Feature(settings.FeatureNormalizeData)
	require.NoError(t, err)
	require.True(t, normalize)
}

func TestSchemaLocationParameter(t *testing.T) {
	c := config.New()

	v, err := c.Parameter(config.ParamSchemaLocation)
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, c.SetParameter(config.ParamSchemaLocation, " a.xsd\tb.xsd\n c.xsd "))
	v, err = c.Parameter(config.ParamSchemaLocation)
	require.NoError(t, err)
	require.Equal(t, " a.xsd\tb.xsd\n c.xsd ", v)

	src, err := c.Property(settings.PropertySchemaSource)
	require.NoError(t, err)
	require.Equal(t, []string{"a.xsd", "b.xsd", "c.xsd"}, src)

	require.NoError(t, c.SetParameter(config.ParamSchemaLocation, "  "))
	src, err = c.Property(settings.PropertySchemaSource)
	require.NoError(t, err)
	require.Equal(t, []string{"  "}, src)

	require.NoError(t, c.SetParameter(config.ParamSchemaLocation, nil))
	src, err = c.Property(settings.PropertySchemaSource)
	require.NoError(t, err)
	require.Nil(t, src)
}

func TestSchemaTypeParameter(t *testing.T) {
	c := config.New()
	require.NoError(t, c.SetParameter(config.ParamSchemaType, settings.NSXMLSchema))
	v, err := c.Parameter(config.ParamSchemaType)
	require.NoError(t, err)
	require.Equal(t, settings.NSXMLSchema, v)

	require.NoError(t, c.SetParameter(config.ParamSchemaType, settings.NSDTD))
	require.ErrorIs(t, c.SetParameter(config.ParamSchemaType, "http://relaxng.org/ns/structure/1.0"), config.ErrNotSupported)
	v, err = c.Parameter(config.ParamSchemaType)
	require.NoError(t, err)
	require.Equal(t, settings.NSDTD, v)

	require.NoError(t, c.SetParameter(config.ParamSchemaType, nil))
	v, err = c.Parameter(config.ParamSchemaType)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestHandlerParameters(t *testing.T) {
	c := config.New()

	var seen []*config.Diagnostic
	handler := config.ErrorHandlerFunc(func(d *config.Diagnostic) bool {
		seen = append(seen, d)
		return true
	})
	require.NoError(t, c.SetParameter(config.ParamErrorHandler, handler))
	v, err := c.Parameter(config.ParamErrorHandler)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.NotNil(t, c.ErrorHandler(), "installed as an event.ErrorHandler")

	require.NoError(t, c.ErrorHandler().Warning(config.DomainXML, "key", &event.ParseError{Message: "careful", Line: 1, Column: 2}))
	require.Len(t, seen, 1)
	require.Equal(t, config.SeverityWarning, seen[0].Severity)
	require.Equal(t, "careful", seen[0].Message)
	require.Equal(t, 2, seen[0].Location.Column)

	resolver := config.ResourceResolverFunc(func(_, _, _, systemID, _ string) (*event.InputSource, error) {
		return &event.InputSource{SystemID: "resolved:" + systemID}, nil
	})
	require.NoError(t, c.SetParameter(config.ParamResourceResolver, resolver))
	v, err = c.Parameter(config.ParamResourceResolver)
	require.NoError(t, err)
	require.NotNil(t, v)
	in, err := c.EntityResolver().ResolveEntity(&event.ResourceIdentifier{LiteralSystemID: "x.ent"})
	require.NoError(t, err)
	require.Equal(t, "resolved:x.ent", in.SystemID)

	require.NoError(t, c.SetParameter(config.ParamEntityResolver, nopResolver{}))
	v, err = c.Parameter(config.ParamEntityResolver)
	require.NoError(t, err)
	require.Equal(t, nopResolver{}, v)
	v, err = c.Parameter(config.ParamResourceResolver)
	require.NoError(t, err)
	require.Nil(t, v, "a plain entity resolver is not a resource resolver")

	require.NoError(t, c.SetParameter(config.ParamEntityResolver, nil))
	require.Nil(t, c.EntityResolver())
}

func TestCanSetParameter(t *testing.T) {
	c := config.New()

	for _, name := range append(c.ParameterNames(), "no-such-thing") {
		require.True(t, c.CanSetParameter(name, nil), name)
	}

	require.True(t, c.CanSetParameter("Comments", false))
	require.True(t, c.CanSetParameter(config.ParamInfoset, true))
	require.False(t, c.CanSetParameter(config.ParamCanonicalForm, true))
	require.True(t, c.CanSetParameter(config.ParamCanonicalForm, false))
	require.True(t, c.CanSetParameter(config.ParamElementContentWhitespace, true))
	require.False(t, c.CanSetParameter(config.ParamElementContentWhitespace, false))
	require.False(t, c.CanSetParameter("no-such-thing", true))
	require.False(t, c.CanSetParameter(config.ParamErrorHandler, true))
	require.True(t, c.CanSetParameter(config.ParamSchemaLocation, "a.xsd"))
	require.True(t, c.CanSetParameter(config.ParamSchemaType, settings.NSXMLSchema))
	require.False(t, c.CanSetParameter(config.ParamSchemaType, "urn:other"))
	require.True(t, c.CanSetParameter(config.ParamEntityResolver, nopResolver{}))

	before := c.Features()
	require.True(t, c.CanSetParameter(config.ParamComments, false))
	require.Equal(t, before, c.Features(), "CanSetParameter does not mutate")
}

func TestParameterNames(t *testing.T) {
	c := config.New()
	names := c.ParameterNames()
	require.Len(t, names, 19)
	require.Equal(t, config.ParamComments, names[0])
	require.Equal(t, settings.PropertyEntityResolver, names[len(names)-1])

	names[0] = "mutated"
	require.Equal(t, config.ParamComments, c.ParameterNames()[0])
}
