// Package docs registers the OpenAPI description served at /swagger/*.
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
        "/v1/session/token": {
            "get": {
                "tags": ["session"],
                "summary": "Read the auth token",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}}}
            }
        },
        "/v1/session/snapshot": {
            "get": {
                "tags": ["session"],
                "summary": "Read the stored identity",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.AuthSnapshot"}},
                    "409": {"description": "stored user session is corrupted", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/v1/session/entries/{key}": {
            "put": {
                "tags": ["session"],
                "summary": "Write a session entry",
                "consumes": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "authToken, user-session or auth-checking", "name": "key", "in": "path", "required": true},
                    {"description": "Entry value", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.putEntryRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}, "422": {"description": "Unprocessable Entity"}}
            },
            "delete": {
                "tags": ["session"],
                "summary": "Remove a session entry",
                "parameters": [{"type": "string", "name": "key", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/session": {
            "delete": {
                "tags": ["session"],
                "summary": "Clear the browser session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}}}
            }
        },
        "/v1/identity": {
            "get": {
                "tags": ["identity"],
                "summary": "Avatar initials and color for a display name",
                "parameters": [{"type": "string", "name": "name", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.DerivedIdentity"}}}
            }
        },
        "/v1/identity/super-admin": {
            "post": {
                "tags": ["identity"],
                "summary": "Whether a client record belongs to the platform owner",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Client"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.superAdminResponse"}}}
            }
        },
        "/v1/countries/{code}": {
            "get": {
                "tags": ["countries"],
                "summary": "Flag and display name for a country code",
                "parameters": [
                    {"type": "string", "name": "code", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CountryLookupResult"}}}
            }
        },
        "/v1/authorization": {
            "get": {
                "tags": ["authorization"],
                "summary": "Gate state for a dashboard route",
                "parameters": [{"type": "string", "name": "route", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authorizationResponse"}}}
            }
        },
        "/admin/{route}": {
            "get": {
                "tags": ["admin"],
                "summary": "Header data for an admin page",
                "parameters": [{"type": "string", "name": "route", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.adminShellResponse"}},
                    "202": {"description": "auth still loading"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "domain.AuthSnapshot": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"type": "object"},
                "role_id": {},
                "display_name": {"type": "string"},
                "avatar_url": {"type": "string"}
            }
        },
        "domain.Client": {
            "type": "object",
            "properties": {"account_type": {"type": "string"}, "id": {}}
        },
        "domain.CountryLookupResult": {
            "type": "object",
            "properties": {"flag_glyph": {"type": "string"}, "display_name": {"type": "string"}}
        },
        "domain.DerivedIdentity": {
            "type": "object",
            "properties": {"initials": {"type": "string"}, "avatar_color_class": {"type": "string"}}
        },
        "handler.adminShellResponse": {
            "type": "object",
            "properties": {
                "route": {"type": "string"},
                "display_name": {"type": "string"},
                "avatar_url": {"type": "string"},
                "role_id": {},
                "super_admin": {"type": "boolean"},
                "identity": {"$ref": "#/definitions/domain.DerivedIdentity"}
            }
        },
        "handler.authorizationResponse": {
            "type": "object",
            "properties": {"route": {"type": "string"}, "state": {"type": "string", "enum": ["checking", "authorized", "unauthorized"]}}
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.putEntryRequest": {
            "type": "object",
            "properties": {"value": {"type": "string"}}
        },
        "handler.superAdminResponse": {
            "type": "object",
            "properties": {"super_admin": {"type": "boolean"}}
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SMS Console Gateway API",
	Description:      "Session, identity and route authorization services for the SMS admin dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
