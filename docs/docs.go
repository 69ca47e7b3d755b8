// Package docs registers the OpenAPI description of the console API with swag.
// It is kept in step with the godoc annotations on internal/api/handlers.
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
        "/session/login": {
            "post": {
                "description": "Signs the operator in against the identity provider and returns a bearer token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in", "schema": {"$ref": "#/definitions/models.LoginResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too many sign-in attempts", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/session/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Create an operator account and sign in",
                "parameters": [
                    {"description": "New account", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registered and signed in", "schema": {"$ref": "#/definitions/models.LoginResponse"}},
                    "400": {"description": "Validation error or email taken", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/session/password-reset": {
            "post": {
                "description": "With only an email, mails a reset code to that address. The code is never returned. With a code and new password, redeems the code.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Request or redeem a password reset",
                "parameters": [
                    {"description": "Reset request", "name": "reset", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PasswordResetRequest"}}
                ],
                "responses": {
                    "200": {"description": "Accepted", "schema": {"$ref": "#/definitions/models.PasswordResetResponse"}},
                    "400": {"description": "Invalid or expired code", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "503": {"description": "Mail delivery is not configured", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/session/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Current session state",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Session state", "schema": {"$ref": "#/definitions/services.AuthState"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/session/logout": {
            "post": {
                "tags": ["Session"],
                "summary": "Sign out and clear the products-area grant",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "204": {"description": "Signed out"},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/session/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Signed-in operator profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Update display name or photo",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"description": "Changed fields", "name": "profile", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProfileUpdate"}}
                ],
                "responses": {
                    "200": {"description": "Updated profile", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/gate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Gate"],
                "summary": "Products-area grant of the current session",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Granted or denied", "schema": {"$ref": "#/definitions/models.GateStatus"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/gate/challenge": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gate"],
                "summary": "Unlock the products area",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"description": "Shared products-area credentials", "name": "challenge", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.GateChallenge"}}
                ],
                "responses": {
                    "200": {"description": "Granted", "schema": {"$ref": "#/definitions/models.GateStatus"}},
                    "401": {"description": "Invalid products-area credentials", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Dashboard figures, remote or aggregated from local collections",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "boolean", "description": "false returns the last view without loading", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Dashboard view", "schema": {"$ref": "#/definitions/models.DashboardView"}},
                    "502": {"description": "Backend failure", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/{resource}": {
            "get": {
                "description": "Products, categories and brands also require a products-area grant.",
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "Search, filter and page a collection",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "string", "description": "Case-insensitive search term", "name": "search", "in": "query"},
                    {"type": "string", "description": "Products only", "name": "category", "in": "query"},
                    {"type": "string", "description": "Products only", "name": "brand", "in": "query"},
                    {"type": "integer", "description": "1-based page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "pageSize", "in": "query"},
                    {"type": "boolean", "description": "false skips the backend fetch", "name": "refresh", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "One page", "schema": {"$ref": "#/definitions/views.Page"}},
                    "400": {"description": "Invalid page or page size", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Products area is locked", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "Create a record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"description": "Draft of the record", "name": "draft", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created record", "schema": {"type": "object"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/{resource}/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "Local collection state without a fetch",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/resource"}],
                "responses": {
                    "200": {"description": "Collection state", "schema": {"$ref": "#/definitions/store.State"}}
                }
            }
        },
        "/{resource}/error": {
            "delete": {
                "tags": ["Collections"],
                "summary": "Clear the recorded error",
                "security": [{"BearerAuth": []}],
                "parameters": [{"$ref": "#/parameters/resource"}],
                "responses": {
                    "204": {"description": "Cleared"}
                }
            }
        },
        "/{resource}/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "One record, local copy first",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Record", "schema": {"type": "object"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Collections"],
                "summary": "Replace a record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true},
                    {"description": "Draft of the record", "name": "draft", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated record", "schema": {"type": "object"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Collections"],
                "summary": "Delete a record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"type": "string", "description": "Record id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "System entries cannot be deleted", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "parameters": {
        "resource": {
            "enum": ["products", "categories", "brands", "sellers", "sales", "purchases", "users"],
            "type": "string",
            "description": "Collection",
            "name": "resource",
            "in": "path",
            "required": true
        }
    },
    "definitions": {
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/response.ErrorResponse"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "displayName": {"type": "string", "maxLength": 100}
            }
        },
        "models.PasswordResetRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"},
                "code": {"type": "string"},
                "newPassword": {"type": "string", "minLength": 6}
            }
        },
        "models.PasswordResetResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "email": {"type": "string"},
                "displayName": {"type": "string"},
                "photoURL": {"type": "string"},
                "emailVerified": {"type": "boolean"}
            }
        },
        "models.ProfileUpdate": {
            "type": "object",
            "properties": {
                "displayName": {"type": "string", "maxLength": 100},
                "photoURL": {"type": "string"}
            }
        },
        "models.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "user": {"$ref": "#/definitions/models.Profile"}
            }
        },
        "models.GateChallenge": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.GateStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["granted", "denied"]},
                "expiresAt": {"type": "string", "format": "date-time"}
            }
        },
        "services.AuthState": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/models.Profile"},
                "isAuthenticated": {"type": "boolean"},
                "loading": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "models.DashboardStats": {
            "type": "object",
            "properties": {
                "totalProducts": {"type": "integer"},
                "totalSellers": {"type": "integer"},
                "totalSales": {"type": "integer"},
                "totalPurchases": {"type": "integer"},
                "totalRevenue": {"type": "string", "example": "0.00"},
                "totalProfit": {"type": "string", "example": "0.00"},
                "monthlyData": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "month": {"type": "string", "example": "2024-01"},
                            "sales": {"type": "string", "example": "0.00"},
                            "purchases": {"type": "string", "example": "0.00"}
                        }
                    }
                }
            }
        },
        "models.DashboardView": {
            "type": "object",
            "properties": {
                "source": {"type": "string", "enum": ["remote", "local"]},
                "stats": {"$ref": "#/definitions/models.DashboardStats"},
                "loading": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "views.Page": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"type": "object"}},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "pageCount": {"type": "integer"},
                "total": {"type": "integer"},
                "filtered": {"type": "integer"}
            }
        },
        "store.State": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "items": {"type": "array", "items": {"type": "object"}},
                "status": {"type": "string", "enum": ["idle", "loading", "settled", "failed"]},
                "loading": {"type": "boolean"},
                "error": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token from /session/login, sent as \"Bearer <token>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Menvy Console API",
	Description:      "Session, products-area gate, inventory collections and dashboard of the Menvy inventory console. Every body is wrapped in response.APIResponse: documented schemas describe its data or error member.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
