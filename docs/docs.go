// Package docs registers the OpenAPI definition served under /swagger.
// The template is maintained by hand against the route table; run
// `swag init -g cmd/api/main.go` to regenerate it from the handler
// annotations instead.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/backfill/vehicle-links": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Link legacy orders to vehicles by normalized plate",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/admin/import/orders": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Insert a legacy order batch as-is",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/admin/import/vehicles": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["admin"],
                "summary": "Upsert a vehicle batch keyed by licence plate",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/orders": {
            "get": {
                "tags": ["orders"],
                "summary": "List orders with optional search/overdue/licencePlate/vehicleId filters",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "boolean", "name": "overdue", "in": "query"},
                    {"type": "string", "name": "licencePlate", "in": "query"},
                    {"type": "string", "name": "vehicleId", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["orders"],
                "summary": "Create an order",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/orders/stats": {
            "get": {
                "tags": ["orders"],
                "summary": "Order counters for the dashboard",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/orders/{id}": {
            "get": {
                "tags": ["orders"],
                "summary": "Get an order by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["orders"],
                "summary": "Patch an order in place",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["orders"],
                "summary": "Delete an order",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/ping": {
            "get": {
                "tags": ["ping"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/vehicles": {
            "get": {
                "tags": ["vehicles"],
                "summary": "List vehicles with an optional search substring",
                "parameters": [{"type": "string", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["vehicles"],
                "summary": "Create a vehicle",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/vehicles/plate/{licencePlate}": {
            "get": {
                "tags": ["vehicles"],
                "summary": "Resolve a vehicle by licence plate (normalization-aware)",
                "parameters": [{"type": "string", "name": "licencePlate", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/vehicles/{id}": {
            "get": {
                "tags": ["vehicles"],
                "summary": "Get a vehicle by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["vehicles"],
                "summary": "Patch a vehicle in place",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["vehicles"],
                "summary": "Delete a vehicle (orders keep their reference)",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/vehicles/{id}/orders": {
            "get": {
                "tags": ["vehicles"],
                "summary": "Order history for a vehicle, newest first",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Autoservis SPZ API",
	Description:      "Vehicle register and service orders (zakázky) backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
