// Package docs registers the API document with swag so echo-swagger can serve it at /swagger/*.
package docs

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/",
	Title:            "Carrier Service Eligibility",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// Register publishes swagger as the document behind swag.ReadDoc.
func Register(swagger *openapi3.T) error {
	raw, err := json.Marshal(swagger)
	if err != nil {
		return err
	}

	SwaggerInfo.Title = swagger.Info.Title
	SwaggerInfo.Description = swagger.Info.Description
	SwaggerInfo.Version = swagger.Info.Version
	SwaggerInfo.SwaggerTemplate = string(raw)
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	return nil
}
