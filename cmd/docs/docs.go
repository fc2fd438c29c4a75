// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/till_backend/main.go -o cmd/docs
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a local user",
                "parameters": [
                    {"description": "User credentials", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in and obtain a bearer token",
                "parameters": [
                    {"description": "User credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/reconcile": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reconciliation"],
                "summary": "Split a drawer count into drawer and deposit",
                "parameters": [
                    {"description": "Drawer count", "name": "count", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReconcileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ReconcileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List supported currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListCurrenciesResponse"}}
                }
            }
        },
        "/currencies/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get the denomination legend of a currency",
                "parameters": [
                    {"type": "string", "description": "ISO 4217 code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/submit": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Reconcile and store a drawer count",
                "parameters": [
                    {"description": "Drawer count", "name": "submission", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SubmitHistoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SubmissionReportEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/{submissionID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Get a stored submission with its reconciliation",
                "parameters": [
                    {"type": "string", "description": "Submission ID", "name": "submissionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmissionReportEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/{submissionID}/add-note": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Replace the note of a submission",
                "parameters": [
                    {"type": "string", "description": "Submission ID", "name": "submissionID", "in": "path", "required": true},
                    {"description": "Note", "name": "note", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddNoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SubmissionRecordEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/{submissionID}/delete": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Delete a submission",
                "parameters": [
                    {"type": "string", "description": "Submission ID", "name": "submissionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/user/{username}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "List the submissions of a user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListHistoryResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/history/user/{username}/delete-history": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Delete every submission of a user",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete the current user and their history",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}}
                }
            }
        },
        "/users/me/password": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Change the password of the current user",
                "parameters": [
                    {"description": "New password", "name": "password", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AddNoteRequest": {
            "type": "object",
            "required": ["note"],
            "properties": {"note": {"type": "string", "maxLength": 500}}
        },
        "dto.ChangePasswordRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {"password": {"type": "string", "maxLength": 72, "minLength": 5}}
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "maxLength": 72, "minLength": 5},
                "username": {"type": "string", "maxLength": 30, "minLength": 3}
            }
        },
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "currencyCode": {"type": "string"},
                "name": {"type": "string"},
                "symbol": {"type": "string"},
                "denominations": {"type": "array", "items": {"$ref": "#/definitions/dto.DenominationResponse"}}
            }
        },
        "dto.DenominationResponse": {
            "type": "object",
            "properties": {
                "coin": {"type": "boolean"},
                "eligibleForDrawer": {"type": "boolean"},
                "name": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "dto.DenominationValue": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "value": {"type": "number"}
            }
        },
        "dto.ListCurrenciesResponse": {
            "type": "object",
            "properties": {"currencies": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyResponse"}}}
        },
        "dto.ListHistoryResponse": {
            "type": "object",
            "properties": {"history": {"type": "array", "items": {"$ref": "#/definitions/dto.SubmissionSummaryResponse"}}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.ReconcileRequest": {
            "type": "object",
            "required": ["currencyCode", "denominations", "drawerAmount"],
            "properties": {
                "currencyCode": {"type": "string", "example": "USD"},
                "denominations": {"type": "array", "items": {"type": "integer"}},
                "drawerAmount": {"type": "number", "example": 100}
            }
        },
        "dto.ReconcileResponse": {
            "type": "object",
            "properties": {"submission": {"$ref": "#/definitions/dto.ReconciliationResponse"}}
        },
        "dto.ReconciliationResponse": {
            "type": "object",
            "properties": {
                "currencyCode": {"type": "string"},
                "depositValues": {"$ref": "#/definitions/dto.VectorTotalsResponse"},
                "drawerAmount": {"type": "number"},
                "drawerValues": {"$ref": "#/definitions/dto.VectorTotalsResponse"},
                "overage": {"type": "number"},
                "symbol": {"type": "string"},
                "total": {"type": "number"},
                "values": {"type": "array", "items": {"$ref": "#/definitions/dto.DenominationValue"}}
            }
        },
        "dto.SubmissionRecordEnvelope": {
            "type": "object",
            "properties": {"submission": {"$ref": "#/definitions/dto.SubmissionRecordResponse"}}
        },
        "dto.SubmissionRecordResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "currencyCode": {"type": "string"},
                "denominations": {"type": "array", "items": {"type": "integer"}},
                "drawerAmount": {"type": "number"},
                "historyColor": {"type": "integer"},
                "id": {"type": "string"},
                "note": {"type": "string"}
            }
        },
        "dto.SubmissionReportEnvelope": {
            "type": "object",
            "properties": {"submission": {"$ref": "#/definitions/dto.SubmissionReportResponse"}}
        },
        "dto.SubmissionReportResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "currencyCode": {"type": "string"},
                "depositValues": {"$ref": "#/definitions/dto.VectorTotalsResponse"},
                "drawerAmount": {"type": "number"},
                "drawerValues": {"$ref": "#/definitions/dto.VectorTotalsResponse"},
                "historyColor": {"type": "integer"},
                "id": {"type": "string"},
                "note": {"type": "string"},
                "overage": {"type": "number"},
                "symbol": {"type": "string"},
                "total": {"type": "number"},
                "values": {"type": "array", "items": {"$ref": "#/definitions/dto.DenominationValue"}}
            }
        },
        "dto.SubmissionSummaryResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "historyColor": {"type": "integer"},
                "id": {"type": "string"}
            }
        },
        "dto.SubmitHistoryRequest": {
            "type": "object",
            "required": ["currencyCode", "denominations", "drawerAmount"],
            "properties": {
                "currencyCode": {"type": "string", "example": "USD"},
                "denominations": {"type": "array", "items": {"type": "integer"}},
                "drawerAmount": {"type": "number", "example": 100},
                "note": {"type": "string", "maxLength": 500}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "authProvider": {"type": "string"},
                "createdAt": {"type": "string"},
                "userID": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.VectorTotalsResponse": {
            "type": "object",
            "properties": {
                "changeTotal": {"type": "number"},
                "denominations": {"type": "array", "items": {"type": "integer"}},
                "total": {"type": "number"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Till Reconciliation API",
	Description:      "Splits a cash drawer count into the float left in the till and the bank deposit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
