// Package docs holds the OpenAPI document served under /swagger.
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
        "/api/users": {
            "post": {
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserInput"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}}
            }
        },
        "/api/users/count": {
            "get": {
                "tags": ["stats"],
                "summary": "Total registered users",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Fetch a user",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"description": "User not found"}}
            }
        },
        "/api/users/{id}/household": {
            "post": {
                "tags": ["household"],
                "summary": "Get or create the user's household QR token",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Household"}}, "404": {"description": "User not found"}}
            }
        },
        "/api/users/{id}/qr": {
            "get": {
                "tags": ["household"],
                "summary": "QR image for a user id",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "PNG data URL under qr"}}
            }
        },
        "/api/users/{id}/activity": {
            "post": {
                "tags": ["activity"],
                "summary": "Record a waste disposal activity",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RecordActivityRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User not found"}}
            }
        },
        "/api/users/{id}/activity/ws": {
            "get": {
                "tags": ["activity"],
                "summary": "Live activity feed",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"101": {"description": "Switching Protocols"}, "404": {"description": "User not found"}, "503": {"description": "Feed unavailable"}}
            }
        },
        "/api/users/{id}/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Points, streak and segregation totals for a user",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User not found"}}
            }
        },
        "/api/users/{id}/streak-calendar": {
            "get": {
                "tags": ["stats"],
                "summary": "Daily activity calendar ending today",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true},
                    {"in": "query", "name": "days", "type": "integer", "description": "Number of days (default 30)"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "User not found"}}
            }
        },
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in by email",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginInput"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials or missing password"}}
            }
        },
        "/api/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserInput"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "User already exists"}}
            }
        },
        "/api/report": {
            "post": {
                "tags": ["reports"],
                "summary": "Report illegal dumping with a geotagged photo",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"in": "formData", "name": "photo", "type": "file", "required": true},
                    {"in": "formData", "name": "lat", "type": "number"},
                    {"in": "formData", "name": "lng", "type": "number"},
                    {"in": "formData", "name": "accuracy", "type": "number"},
                    {"in": "formData", "name": "timestamp", "type": "string"}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Photo is required."}}
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "Household": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "qrCode": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "CreateUserInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "RecordActivityRequest": {
            "type": "object",
            "properties": {
                "activityType": {"type": "string"},
                "wasteType": {"type": "string"},
                "amount": {"type": "number"},
                "points": {"type": "integer"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Civic Waste API",
	Description:      "Households, waste disposal activities, points and streaks",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
