// Package docs registers the swagger spec for the reporting API.
// Code generated by swag; regenerate with `swag init` after changing
// handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/businesses/{business_id}/reports/trial-balance": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate trial balance report",
                "parameters": [
                    {"type": "string", "name": "business_id", "in": "path", "required": true},
                    {"type": "string", "name": "asOf", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/businesses/{business_id}/reports/income-statement": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate income statement report",
                "parameters": [
                    {"type": "string", "name": "business_id", "in": "path", "required": true},
                    {"type": "string", "name": "fromDate", "in": "query"},
                    {"type": "string", "name": "toDate", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/businesses/{business_id}/reports/balance-sheet": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate balance sheet report",
                "parameters": [
                    {"type": "string", "name": "business_id", "in": "path", "required": true},
                    {"type": "string", "name": "asOf", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/businesses/{business_id}/reports/monthly-trend": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Generate monthly trend report",
                "parameters": [
                    {"type": "string", "name": "business_id", "in": "path", "required": true},
                    {"type": "integer", "name": "months", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/businesses/{business_id}/inventory/stock-aging": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Generate stock aging report",
                "parameters": [
                    {"type": "string", "name": "business_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/businesses/{business_id}/inventory/valuation": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Generate point-in-time inventory valuation",
                "parameters": [
                    {"type": "string", "name": "business_id", "in": "path", "required": true},
                    {"type": "string", "name": "asOf", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "BizBooks Reporting API",
	Description:      "Ledger-based financial and inventory reporting engine.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
