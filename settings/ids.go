package settings

// Identifier prefixes.
const (
	SAXFeaturePrefix     = "http://xml.org/sax/features/"
	SAXPropertyPrefix    = "http://xml.org/sax/properties/"
	XercesFeaturePrefix  = "http://apache.org/xml/features/"
	XercesPropertyPrefix = "http://apache.org/xml/properties/"
	JAXPPropertyPrefix   = "http://java.sun.com/xml/jaxp/properties/"
)

// SAX features.
const (
	FeatureNamespaces                      = SAXFeaturePrefix + "namespaces"
	FeatureNamespacePrefixes               = SAXFeaturePrefix + "namespace-prefixes"
	FeatureStringInterning                 = SAXFeaturePrefix + "string-interning"
	FeatureValidation                      = SAXFeaturePrefix + "validation"
	FeatureLexicalHandlerParameterEntities = SAXFeaturePrefix + "lexical-handler/parameter-entities"
	FeatureResolveDTDURIs                  = SAXFeaturePrefix + "resolve-dtd-uris"
	FeatureUnicodeNormalizationChecking    = SAXFeaturePrefix + "unicode-normalization-checking"
	FeatureXMLNSURIs                       = SAXFeaturePrefix + "xmlns-uris"
	FeatureUseEntityResolver2              = SAXFeaturePrefix + "use-entity-resolver2"
	FeatureIsStandalone                    = SAXFeaturePrefix + "is-standalone"
	FeatureUseAttributes2                  = SAXFeaturePrefix + "use-attributes2"
	FeatureUseLocator2                     = SAXFeaturePrefix + "use-locator2"
)

// Parser implementation features.
const (
	FeatureSchema                       = XercesFeaturePrefix + "validation/schema"
	FeatureSchemaFullChecking           = XercesFeaturePrefix + "validation/schema-full-checking"
	FeatureDynamicValidation            = XercesFeaturePrefix + "validation/dynamic"
	FeatureNormalizeData                = XercesFeaturePrefix + "validation/schema/normalized-value"
	FeatureSchemaElementDefault         = XercesFeaturePrefix + "validation/schema/element-default"
	FeatureGenerateSyntheticAnnotations = XercesFeaturePrefix + "generate-synthetic-annotations"
	FeatureValidateAnnotations          = XercesFeaturePrefix + "validate-annotations"
	FeatureHonourAllSchemaLocations     = XercesFeaturePrefix + "honour-all-schemaLocations"
	FeatureDisallowDoctypeDecl          = XercesFeaturePrefix + "disallow-doctype-decl"
	FeatureBalanceSyntaxTrees           = XercesFeaturePrefix + "validation/balance-syntax-trees"
	FeatureWarnOnDuplicateAttdef        = XercesFeaturePrefix + "validation/warn-on-duplicate-attdef"
	FeatureParserSettings               = XercesFeaturePrefix + "internal/parser-settings"
	FeatureNamespaceGrowth              = XercesFeaturePrefix + "namespace-growth"
	FeatureTolerateDuplicates           = XercesFeaturePrefix + "internal/tolerate-duplicates"
	FeatureContinueAfterFatalError      = XercesFeaturePrefix + "continue-after-fatal-error"
)

// Properties.
const (
	PropertyLexicalHandler     = SAXPropertyPrefix + "lexical-handler"
	PropertyDOMNode            = SAXPropertyPrefix + "dom-node"
	PropertyXMLString          = SAXPropertyPrefix + "xml-string"
	PropertyDocumentXMLVersion = SAXPropertyPrefix + "document-xml-version"
	PropertyErrorReporter      = XercesPropertyPrefix + "internal/error-reporter"
	PropertyErrorHandler       = XercesPropertyPrefix + "internal/error-handler"
	PropertyEntityResolver     = XercesPropertyPrefix + "internal/entity-resolver"
	PropertySchemaDVFactory    = XercesPropertyPrefix + "internal/validation/schema/dv-factory"
	PropertySchemaLanguage     = JAXPPropertyPrefix + "schemaLanguage"
	PropertySchemaSource       = JAXPPropertyPrefix + "schemaSource"
)

// Schema languages accepted by the schema-type parameter.
const (
	NSXMLSchema = "http://www.w3.org/2001/XMLSchema"
	NSDTD       = "http://www.w3.org/TR/REC-xml"
)
