// Package docs holds the swagger document served at /swagger/doc.json.
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
        "/api/v1/tasks/parse": {
            "post": {
                "description": "Extracts title, due date, priority and project from free text. Failed, partial and degraded outcomes are still returned with status 200.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Parser"],
                "summary": "Parse a task from natural language",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.parseReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/suggest-subtasks": {
            "post": {
                "description": "Asks the model for up to five subtask titles.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Parser"],
                "summary": "Suggest subtasks for a task",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.suggestReq"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.suggestResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Model returned an unusable answer", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Model unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{taskId}/subtasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Subtasks"],
                "summary": "List the subtasks of a task",
                "parameters": [{"type": "string", "name": "taskId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/tasks/{taskId}/subtasks/order": {
            "put": {
                "tags": ["Subtasks"],
                "summary": "Reorder the subtasks of a task",
                "parameters": [{"type": "string", "name": "taskId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/tasks/{taskId}/subtasks/complete-all": {
            "post": {
                "tags": ["Subtasks"],
                "summary": "Complete every subtask of a task",
                "parameters": [{"type": "string", "name": "taskId", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/subtasks": {
            "post": {
                "tags": ["Subtasks"],
                "summary": "Create a subtask",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/v1/subtasks/{id}": {
            "put": {
                "tags": ["Subtasks"],
                "summary": "Update a subtask",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Subtasks"],
                "summary": "Delete a subtask",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/tasks/{taskId}/completions": {
            "get": {
                "tags": ["Recurring"],
                "summary": "List recurring completions in a date range",
                "parameters": [
                    {"type": "string", "name": "taskId", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "from", "in": "query", "required": true},
                    {"type": "string", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            },
            "post": {
                "tags": ["Recurring"],
                "summary": "Complete one occurrence of a recurring task",
                "parameters": [
                    {"type": "string", "name": "taskId", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/tasks/{taskId}/completions/{date}": {
            "delete": {
                "tags": ["Recurring"],
                "summary": "Undo the completion of one occurrence",
                "parameters": [
                    {"type": "string", "name": "taskId", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "path", "required": true},
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        }
    },
    "definitions": {
        "http.parseReq": {
            "type": "object",
            "required": ["input"],
            "properties": {
                "input": {"type": "string"},
                "projects": {"type": "array", "items": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}}}}
            }
        },
        "http.parseResp": {
            "type": "object",
            "properties": {
                "outcome": {"type": "string"},
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "partialData": {"type": "object"},
                "error": {"type": "string"},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.suggestReq": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}}
        },
        "http.suggestResp": {
            "type": "object",
            "properties": {"subtasks": {"type": "array", "items": {"type": "string"}}}
        },
        "response.Resp": {
            "type": "object",
            "properties": {"error_code": {"type": "integer"}, "message": {"type": "string"}, "data": {}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Smart Task Manager API",
	Description:      "Natural-language task parsing, subtasks and recurring completions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
