// Package oas holds the ogen-generated server for api/openapi.yaml.
package oas

//go:generate go run github.com/ogen-go/ogen/cmd/ogen --target . --package oas --clean ../../api/openapi.yaml
