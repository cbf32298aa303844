// Package docs registers the OpenAPI document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

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
    "paths": {
        "/signup": {
            "post": {"tags": ["auth"], "summary": "Register a new account", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/login": {
            "post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}}}
        },
        "/logout": {
            "post": {"tags": ["auth"], "summary": "Logout", "responses": {"200": {"description": "OK"}}}
        },
        "/image": {
            "post": {"tags": ["images"], "summary": "Create a new listing", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}}
        },
        "/image/{id}": {
            "get": {"tags": ["images"], "summary": "Get one of the caller's listings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["images"], "summary": "Update one of the caller's listings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["images"], "summary": "Delete one of the caller's listings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/images": {
            "get": {"tags": ["images"], "summary": "List the caller's listings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/gallery": {
            "get": {"tags": ["gallery"], "summary": "Browse the public gallery", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/gallery/{id}": {
            "get": {"tags": ["gallery"], "summary": "Get a public listing", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/artists/{id}": {
            "get": {"tags": ["profile"], "summary": "Get a public artist profile", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/me": {
            "get": {"tags": ["profile"], "summary": "Get the current identity", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}},
            "patch": {"tags": ["profile"], "summary": "Update bio or avatar", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/orders": {
            "post": {"tags": ["orders"], "summary": "Place an order", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}},
            "get": {"tags": ["orders"], "summary": "List the caller's orders", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Marketplace API",
	Description:      "Art marketplace backend: accounts, listings, gallery, orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
