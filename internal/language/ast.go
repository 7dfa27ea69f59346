package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

type (
	Schema         = ast.Schema
	SchemaDocument = ast.SchemaDocument
	Definition     = ast.Definition
	Error          = gqlerror.Error
	ErrorList      = gqlerror.List
)

type DefinitionKind = ast.DefinitionKind

const (
	Object      DefinitionKind = ast.Object
	Interface   DefinitionKind = ast.Interface
	Union       DefinitionKind = ast.Union
	Scalar      DefinitionKind = ast.Scalar
	Enum        DefinitionKind = ast.Enum
	InputObject DefinitionKind = ast.InputObject
)
