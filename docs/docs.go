// Package docs provides Swagger API documentation for the items service
//
//	@title			Items API
//	@version		1.0.0
//	@description	Instructional REST API demonstrating request body, path and query
//	@description	parameter binding with declarative validation.
//	@description
//	@description	## Error Handling
//	@description	The API returns standard HTTP status codes and JSON error responses:
//	@description	```json
//	@description	{
//	@description		"error": "VALIDATION_ERROR",
//	@description		"message": "validation failed",
//	@description		"fields": [{"field": "q", "rule": "min"}],
//	@description		"trace_id": "..."
//	@description	}
//	@description	```
//	@host		localhost:8080
//	@basePath	/
//	@schemes	http
package docs

import (
	"github.com/swaggo/swag"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {},
    "definitions": {}
}`

func init() {
	swag.Register("swagger", &swag.Spec{
		Version:          "1.0.0",
		Host:             "localhost:8080",
		BasePath:         "/",
		Schemes:          []string{"http"},
		Title:            "Items API",
		Description:      "Instructional REST API demonstrating request binding and validation",
		InfoInstanceName: "swagger",
		SwaggerTemplate:  docTemplate,
	})
}
