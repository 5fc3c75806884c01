// Package api embeds the MyRegistry OpenAPI document.
package api

import _ "embed"

// Spec is the OpenAPI 3 document served by the registry.
//
//go:embed registry.openapi.yaml
var Spec []byte
