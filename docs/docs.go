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
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    },
    "paths": {
        "/users": {
            "post": {
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string"},
                                "email": {"type": "string"},
                                "password": {"type": "string"},
                                "isTeacher": {"type": "boolean"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing field or duplicate email"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "summary": "Issue a session token for Basic credentials",
                "security": [{"BasicAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "summary": "Clear the session cookie",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tests": {
            "get": {
                "summary": "List tests visible to the caller",
                "security": [{"BasicAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/tests/create": {
            "post": {
                "summary": "Upload a base64 CSV test file (teachers only)",
                "security": [{"BasicAuth": []}],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {"type": "string"},
                                "file": {"type": "string", "format": "base64"},
                                "maxTime": {"type": "integer"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad payload or malformed record file"},
                    "403": {"description": "Teacher role required"}
                }
            }
        },
        "/tests/{id}": {
            "get": {
                "summary": "Get a test with its parsed questions",
                "security": [{"BasicAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/results": {
            "post": {
                "summary": "Submit a score for a test",
                "security": [{"BasicAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Test not found"}
                }
            },
            "get": {
                "summary": "List results for the teacher's tests",
                "security": [{"BasicAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Teacher role required"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Prova API",
	Description:      "Online quiz platform: teachers upload CSV test files, students take tests, scores are recorded.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
