package api

import "github.com/swaggo/swag"

// docTemplate is the OpenAPI 2 document for the routes in NewRouter. It is
// maintained alongside the handler annotations; SwaggerInfo fills in the
// host and info fields when swag renders it.
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
        "/health": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/{kind}/decode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json", "application/yaml"],
                "tags": ["records"],
                "summary": "Decode a binary record",
                "parameters": [
                    {"type": "string", "description": "Record kind (gearpc, gearcontroller)", "name": "kind", "in": "path", "required": true},
                    {"type": "string", "description": "yaml for a YAML response", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Unknown kind", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "413": {"description": "Body too large", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Truncated record, or NaN/infinity without format=yaml", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/{kind}/encode": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/octet-stream"],
                "tags": ["records"],
                "summary": "Encode a JSON record",
                "parameters": [
                    {"type": "string", "description": "Record kind (gearpc, gearcontroller)", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Binary record"},
                    "400": {"description": "Invalid JSON", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Invalid block size", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/{kind}/verify": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Check that a record survives a decode/encode cycle",
                "parameters": [
                    {"type": "string", "description": "Record kind (gearpc, gearcontroller)", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.VerifyResponse"}},
                    "422": {"description": "Truncated record", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/records/{kind}/snapshots": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Archive a binary record",
                "parameters": [
                    {"type": "string", "description": "Record kind (gearpc, gearcontroller)", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SnapshotResponse"}},
                    "422": {"description": "Truncated record", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/snapshots": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "List snapshots, oldest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/snapshots/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/octet-stream"],
                "tags": ["snapshots"],
                "summary": "Fetch the archived bytes",
                "parameters": [
                    {"type": "string", "description": "Snapshot KSUID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Binary record"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Delete a snapshot",
                "parameters": [
                    {"type": "string", "description": "Snapshot KSUID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/snapshots/{id}/record": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Fetch a snapshot decoded",
                "parameters": [
                    {"type": "string", "description": "Snapshot KSUID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "yaml for a YAML response", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SnapshotResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "422": {"description": "Record holds NaN or infinity, use format=yaml", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "api.SnapshotResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "record": {},
                "size": {"type": "integer"}
            }
        },
        "api.VerifyResponse": {
            "type": "object",
            "properties": {
                "input_size": {"type": "integer"},
                "offset": {"type": "integer"},
                "ok": {"type": "boolean"},
                "output_size": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "gearsave REST API",
	Description:      "Decode, encode, verify and archive GearPC and GearController records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
