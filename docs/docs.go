// Package docs registers the OpenAPI description served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/sign-up": {
            "post": {
                "description": "Registers a new user. Emails are unique and compared case-sensitively.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "User Registration",
                "parameters": [
                    {"description": "User registration details", "name": "signUpBody", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.SignUpRequest"}}
                ],
                "responses": {
                    "200": {"description": "User created", "schema": {"$ref": "#/definitions/auth.MessageResponse"}},
                    "400": {"description": "Invalid input or email already registered", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "description": "Verifies credentials and returns a bearer token with the user's public profile.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "User Sign-in",
                "parameters": [
                    {"description": "User credentials", "name": "signInBody", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.SignInRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in", "schema": {"$ref": "#/definitions/auth.SignInResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one page of the caller's tasks in creation order.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 10, max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.ListResponse"}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/tasks/create-task": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a pending task owned by the caller.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"description": "Task details", "name": "createTaskBody", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tasks.CreateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.TaskResponse"}},
                    "400": {"description": "Invalid title or due date", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/tasks/update-task": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Applies the fields present in the body. Omitting dueDate clears it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"description": "Task id and fields to change", "name": "updateTaskBody", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tasks.Patch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.TaskResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "401": {"description": "Cannot find task.", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/tasks/delete-task/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Permanently deletes one of the caller's tasks and returns it.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "description": "Task id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.Task"}},
                    "400": {"description": "Missing id", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "401": {"description": "Cannot find task.", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/dashboard/metrics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Task counts by status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.Counts"}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/dashboard/month-metrics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Months of the given year with at least one task, in calendar order.",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Tasks created per month",
                "parameters": [
                    {"type": "integer", "description": "Calendar year (default: current year)", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dashboard.MonthCount"}}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        },
        "/dashboard/year-metrics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Tasks created in a year",
                "parameters": [
                    {"type": "integer", "description": "Calendar year (default: current year)", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.YearCount"}},
                    "403": {"description": "Access denied or Unauthorized", "schema": {"$ref": "#/definitions/apperror.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperror.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "auth.SignUpRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "example": "Jane Doe"},
                "email": {"type": "string", "example": "jane@example.com"},
                "password": {"type": "string", "minLength": 8, "example": "correct-horse"}
            }
        },
        "auth.SignInRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "jane@example.com"},
                "password": {"type": "string", "minLength": 8, "example": "correct-horse"}
            }
        },
        "auth.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "User creation successful."}}
        },
        "auth.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "auth.SignInResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/auth.UserResponse"}
            }
        },
        "tasks.CreateTaskRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string", "maxLength": 256, "example": "Write report"},
                "dueDate": {"type": "string", "example": "2024-12-31"},
                "description": {"type": "string", "example": "Quarterly numbers"}
            }
        },
        "tasks.Patch": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "dueDate": {"type": "string", "example": "2024-12-31"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "hold", "completed"]}
            }
        },
        "tasks.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "example": "2024-12-31"},
                "status": {"type": "string", "enum": ["pending", "hold", "completed"]},
                "updatedAt": {"type": "string"}
            }
        },
        "tasks.TaskListItem": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "example": "2024-12-31"},
                "status": {"type": "string", "enum": ["pending", "hold", "completed"]}
            }
        },
        "tasks.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "example": "2024-12-31"},
                "status": {"type": "string", "enum": ["pending", "hold", "completed"]},
                "userId": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "tasks.Pagination": {
            "type": "object",
            "properties": {
                "totalDocs": {"type": "integer"},
                "limit": {"type": "integer"},
                "page": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasNextPage": {"type": "boolean"},
                "hasPrevPage": {"type": "boolean"},
                "nextPage": {"type": "integer"},
                "prevPage": {"type": "integer"},
                "pagingCounter": {"type": "integer"}
            }
        },
        "tasks.ListResponse": {
            "type": "object",
            "properties": {
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/tasks.TaskListItem"}},
                "pagination": {"$ref": "#/definitions/tasks.Pagination"}
            }
        },
        "dashboard.Counts": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "pending": {"type": "integer"},
                "hold": {"type": "integer"},
                "completed": {"type": "integer"}
            }
        },
        "dashboard.MonthCount": {
            "type": "object",
            "properties": {
                "month": {"type": "string", "example": "January"},
                "tasks": {"type": "integer", "example": 4}
            }
        },
        "dashboard.YearCount": {
            "type": "object",
            "properties": {
                "year": {"type": "integer", "example": 2024},
                "tasks": {"type": "integer", "example": 31}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize",
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Taskboard API",
	Description:      "Personal task management: sign-up, bearer-token auth, task CRUD and dashboard metrics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
