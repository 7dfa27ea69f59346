package protoexport

import (
	"strings"

	"google.golang.org/protobuf/reflect/protoreflect"
)

func nameProtoField(graphQLName string) protoreflect.Name {
	return protoreflect.Name(snakeCase(graphQLName))
}

func nameProtoEnumValue(graphQLEnumName string, graphQLEnumValueName string) protoreflect.Name {
	return protoreflect.Name(upper(snakeCase(graphQLEnumName)) + "_" + upper(graphQLEnumValueName))
}

func upper(s string) string { return strings.ToUpper(s) }

// snakeCase converts a string from CamelCase or PascalCase to snake_case. Runs of
// capitals stay together, so "userID" becomes "user_id".
func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		isUpper := r >= 'A' && r <= 'Z'
		if i > 0 && isUpper {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z' || runes[i-1] >= '0' && runes[i-1] <= '9'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || (nextLower && runes[i-1] != '_') {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
