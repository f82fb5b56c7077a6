package config

import (
	"slices"
	"strings"

	"github.com/lestrrat-go/xni/event"
	"github.com/lestrrat-go/xni/settings"
)

// Named parameters.
const (
	ParamComments                    = "comments"
	ParamDatatypeNormalization       = "datatype-normalization"
	ParamCDATASections               = "cdata-sections"
	ParamEntities                    = "entities"
	ParamSplitCDATASections          = "split-cdata-sections"
	ParamNamespaces                  = "namespaces"
	ParamValidate                    = "validate"
	ParamInfoset                     = "infoset"
	ParamNormalizeCharacters         = "normalize-characters"
	ParamCanonicalForm               = "canonical-form"
	ParamCheckCharacterNormalization = "check-character-normalization"
	ParamWellFormed                  = "well-formed"
	ParamNamespaceDeclarations       = "namespace-declarations"
	ParamElementContentWhitespace    = "element-content-whitespace"
	ParamErrorHandler                = "error-handler"
	ParamSchemaType                  = "schema-type"
	ParamSchemaLocation              = "schema-location"
	ParamResourceResolver            = "resource-resolver"
	ParamEntityResolver              = settings.PropertyEntityResolver
)

var parameterNames = []string{
	ParamComments,
	ParamDatatypeNormalization,
	ParamCDATASections,
	ParamEntities,
	ParamSplitCDATASections,
	ParamNamespaces,
	ParamValidate,
	ParamInfoset,
	ParamNormalizeCharacters,
	ParamCanonicalForm,
	ParamCheckCharacterNormalization,
	ParamWellFormed,
	ParamNamespaceDeclarations,
	ParamElementContentWhitespace,
	ParamErrorHandler,
	ParamSchemaType,
	ParamSchemaLocation,
	ParamResourceResolver,
	ParamEntityResolver,
}

// boolean parameters backed by a single flag
var featureParameters = map[string]Features{
	ParamComments:              Comments,
	ParamNamespaces:            Namespaces,
	ParamCDATASections:         CDATA,
	ParamEntities:              Entities,
	ParamSplitCDATASections:    SplitCDATA,
	ParamValidate:              Validate,
	ParamWellFormed:            WellFormed,
	ParamNamespaceDeclarations: NamespaceDeclarations,
}

// canonicalParameter matches name against the vocabulary, ignoring case.
func canonicalParameter(name string) (string, bool) {
	for _, n := range parameterNames {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}

func isBooleanParameter(name string) bool {
	if _, ok := featureParameters[name]; ok {
		return true
	}
	switch name {
	case ParamDatatypeNormalization, ParamInfoset,
		ParamNormalizeCharacters, ParamCanonicalForm, ParamCheckCharacterNormalization,
		ParamElementContentWhitespace:
		return true
	}
	return false
}

// ParameterNames lists the named parameters, in a fixed order.
func (c *Configuration) ParameterNames() []string {
	return slices.Clone(parameterNames)
}

// SetParameter sets a named parameter. Names are matched ignoring case.
// A schema-type URI other than XML Schema or DTD is rejected with
// NotSupported rather than ignored.
func (c *Configuration) SetParameter(name string, value any) error {
	pname, ok := canonicalParameter(name)
	if !ok {
		return parameterNotFound(name)
	}

	if isBooleanParameter(pname) {
		state, ok := value.(bool)
		if !ok {
			return typeMismatch(name)
		}
		return c.setBooleanParameter(pname, state)
	}

	switch pname {
	case ParamErrorHandler:
		if value == nil {
			c.errorHandler.handler = nil
		} else if h, ok := value.(ErrorHandler); ok {
			c.errorHandler.handler = h
		} else {
			return typeMismatch(name)
		}
		c.SetErrorHandler(c.errorHandler)
	case ParamResourceResolver:
		if value == nil {
			c.SetEntityResolver(&resourceResolverWrapper{})
		} else if r, ok := value.(ResourceResolver); ok {
			c.SetEntityResolver(&resourceResolverWrapper{resolver: r})
		} else {
			return typeMismatch(name)
		}
	case ParamSchemaLocation:
		if value == nil {
			c.schemaLocation = nil
			return c.SetProperty(settings.PropertySchemaSource, nil)
		}
		loc, ok := value.(string)
		if !ok {
			return typeMismatch(name)
		}
		c.schemaLocation = &loc
		return c.SetProperty(settings.PropertySchemaSource, schemaSources(loc))
	case ParamSchemaType:
		if value == nil {
			return c.SetProperty(settings.PropertySchemaLanguage, nil)
		}
		lang, ok := value.(string)
		if !ok {
			return typeMismatch(name)
		}
		if lang != settings.NSXMLSchema && lang != settings.NSDTD {
			return parameterNotSupported(name)
		}
		return c.SetProperty(settings.PropertySchemaLanguage, lang)
	case ParamEntityResolver:
		if value == nil {
			c.SetEntityResolver(nil)
		} else if r, ok := value.(event.EntityResolver); ok {
			c.SetEntityResolver(r)
		} else {
			return typeMismatch(name)
		}
	}
	return nil
}

func (c *Configuration) setBooleanParameter(name string, state bool) error {
	if flag, ok := featureParameters[name]; ok {
		c.features.Apply(flag, state)
		return nil
	}

	switch name {
	case ParamDatatypeNormalization:
		if err := c.SetFeature(settings.FeatureNormalizeData, state); err != nil {
			return err
		}
		c.features.SetDatatypeNormalization(state)
	case ParamInfoset:
		if !state {
			return nil
		}
		c.features.SetInfoset(true)
		return c.SetFeature(settings.FeatureNormalizeData, false)
	case ParamNormalizeCharacters, ParamCanonicalForm, ParamCheckCharacterNormalization:
		if state {
			return parameterNotSupported(name)
		}
	case ParamElementContentWhitespace:
		if !state {
			return parameterNotSupported(name)
		}
	}
	return nil
}

// schemaSources splits a schema-location value on whitespace. A value
// without any token is kept as is.
func schemaSources(loc string) []string {
	fields := strings.FieldsFunc(loc, func(r rune) bool {
		switch r {
		case ' ', '\n', '\t', '\r':
			return true
		}
		return false
	})
	if len(fields) == 0 {
		return []string{loc}
	}
	return fields
}

// Parameter returns the value of a named parameter. Names are matched
// ignoring case.
func (c *Configuration) Parameter(name string) (any, error) {
	pname, ok := canonicalParameter(name)
	if !ok {
		return nil, parameterNotFound(name)
	}

	if flag, ok := featureParameters[pname]; ok {
		return c.features.IsSet(flag), nil
	}

	switch pname {
	case ParamDatatypeNormalization:
		return c.features.IsSet(DatatypeNormalization), nil
	case ParamInfoset:
		return c.features.Infoset(), nil
	case ParamNormalizeCharacters, ParamCanonicalForm, ParamCheckCharacterNormalization:
		return false, nil
	case ParamElementContentWhitespace:
		return true, nil
	case ParamErrorHandler:
		if h := c.errorHandler.handler; h != nil {
			return h, nil
		}
		return nil, nil
	case ParamResourceResolver:
		if w, ok := c.EntityResolver().(*resourceResolverWrapper); ok && w.resolver != nil {
			return w.resolver, nil
		}
		return nil, nil
	case ParamSchemaType:
		return c.Property(settings.PropertySchemaLanguage)
	case ParamSchemaLocation:
		if c.schemaLocation == nil {
			return nil, nil
		}
		return *c.schemaLocation, nil
	case ParamEntityResolver:
		if r := c.EntityResolver(); r != nil {
			return r, nil
		}
		return nil, nil
	}
	return nil, parameterNotFound(name)
}

// CanSetParameter reports whether SetParameter(name, value) would
// succeed, without changing anything. A nil value is reported as
// settable for every name, including names that are not recognized.
func (c *Configuration) CanSetParameter(name string, value any) bool {
	if value == nil {
		return true
	}

	pname, ok := canonicalParameter(name)
	if !ok {
		return false
	}

	if state, ok := value.(bool); ok {
		if _, ok := featureParameters[pname]; ok {
			return true
		}
		switch pname {
		case ParamDatatypeNormalization, ParamInfoset:
			return true
		case ParamNormalizeCharacters, ParamCanonicalForm, ParamCheckCharacterNormalization:
			return !state
		case ParamElementContentWhitespace:
			return state
		}
		return false
	}

	switch pname {
	case ParamErrorHandler:
		_, ok := value.(ErrorHandler)
		return ok
	case ParamResourceResolver:
		_, ok := value.(ResourceResolver)
		return ok
	case ParamSchemaLocation:
		_, ok := value.(string)
		return ok
	case ParamSchemaType:
		lang, ok := value.(string)
		return ok && (lang == settings.NSXMLSchema || lang == settings.NSDTD)
	case ParamEntityResolver:
		_, ok := value.(event.EntityResolver)
		return ok
	}
	return false
}
