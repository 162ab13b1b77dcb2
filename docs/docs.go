// Package docs is the swagger document served at /swagger.
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
        "/login": {
            "post": {
                "description": "Checks the credentials, sets the session cookie and returns the token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/api.Response"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/logout": {
            "post": {
                "description": "Clears the session cookie",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {
                    "200": {"description": "Signed out", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/get_user_stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Training progress, completed tests, success rate and rank of the caller",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "Statistics", "schema": {"$ref": "#/definitions/api.Response"}},
                    "401": {"description": "Authorization required", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/update_profile": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Updates the full name, e-mail and security level of the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update profile",
                "parameters": [
                    {"description": "Profile fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ProfileUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "401": {"description": "Authorization required", "schema": {"$ref": "#/definitions/api.Response"}},
                    "409": {"description": "E-mail already in use", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/change_password": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Replaces the caller's password after checking the current one",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Change password",
                "parameters": [
                    {"description": "Current and new password", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.PasswordChangeRequest"}}
                ],
                "responses": {
                    "200": {"description": "Changed", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Current password is incorrect", "schema": {"$ref": "#/definitions/api.Response"}},
                    "401": {"description": "Authorization required", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/tests": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Active phishing tests, newest first, with the caller's status on each",
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Active tests",
                "responses": {
                    "200": {"description": "Tests", "schema": {"$ref": "#/definitions/controller.TestListResponse"}},
                    "401": {"description": "Authorization required", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/test/{id}/submit": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Grades the answers, records the attempt and updates the caller's progress",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Submit test answers",
                "parameters": [
                    {"type": "integer", "description": "Test ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answers keyed by question id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.TestSubmission"}}
                ],
                "responses": {
                    "200": {"description": "Graded", "schema": {"$ref": "#/definitions/api.SubmitResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "401": {"description": "Authorization required", "schema": {"$ref": "#/definitions/api.Response"}},
                    "404": {"description": "Test not found", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/create_user": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admins create any role; organizers create test subjects in their own organization",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "parameters": [
                    {"description": "New account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/api.Response"}},
                    "409": {"description": "Username or e-mail taken", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/test_results": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "The caller's attempts, newest first, with the graded answers",
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Test history",
                "parameters": [
                    {"type": "integer", "description": "Maximum number of attempts (default and cap 200)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Attempts", "schema": {"$ref": "#/definitions/controller.HistoryResponse"}},
                    "401": {"description": "Authorization required", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/create_test": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admin only. Adds an active test with its questions",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Create a test",
                "parameters": [
                    {"description": "Test and questions", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CreateTestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/api.CreateTestResponse"}},
                    "400": {"description": "Invalid test", "schema": {"$ref": "#/definitions/api.Response"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/delete_test/{id}": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admin only. Retires the test; recorded results are kept",
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Delete a test",
                "parameters": [
                    {"type": "integer", "description": "Test ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/api.Response"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/api.Response"}},
                    "404": {"description": "Test not found", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admins see every other active account; organizers see the test subjects they created",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Managed users",
                "responses": {
                    "200": {"description": "Users", "schema": {"$ref": "#/definitions/controller.UserListResponse"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/organization_users/{organization}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admin only",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Test subjects of an organization",
                "parameters": [
                    {"type": "string", "description": "Organization", "name": "organization", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Users", "schema": {"$ref": "#/definitions/controller.UserListResponse"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/delete_user/{id}": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admins delete any other account; organizers delete the test subjects they created",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Own account", "schema": {"$ref": "#/definitions/api.Response"}},
                    "403": {"description": "Insufficient permissions", "schema": {"$ref": "#/definitions/api.Response"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "description": "Reports whether the database and, when enabled, Redis respond",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "api.CreateTestRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "description": {"type": "string"},
                "difficulty": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/api.QuestionInput"}},
                "time_limit": {"type": "integer", "minimum": 0},
                "title": {"type": "string", "maxLength": 255}
            }
        },
        "api.CreateTestResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "success": {"type": "boolean"},
                "test_id": {"type": "integer"}
            }
        },
        "api.QuestionInput": {
            "type": "object",
            "required": ["question_text"],
            "properties": {
                "correct_answer": {"type": "array", "items": {"type": "integer"}},
                "explanation": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "points": {"type": "integer"},
                "question_text": {"type": "string"},
                "question_type": {"type": "string"}
            }
        },
        "controller.HistoryResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/model.HistoryEntry"}},
                "success": {"type": "boolean"}
            }
        },
        "controller.UserListResponse": {
            "type": "object",
            "properties": {
                "organization": {"type": "string"},
                "success": {"type": "boolean"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/model.UserSummary"}}
            }
        },
        "model.HistoryEntry": {
            "type": "object",
            "properties": {
                "answers": {"type": "object", "additionalProperties": true},
                "completedAt": {"type": "string"},
                "difficulty": {"type": "string"},
                "id": {"type": "integer"},
                "maxScore": {"type": "integer"},
                "percentage": {"type": "integer"},
                "score": {"type": "integer"},
                "testId": {"type": "integer"},
                "timeSpent": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "model.UserSummary": {
            "type": "object",
            "properties": {
                "createdByName": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "integer"},
                "lastLogin": {"type": "string"},
                "organization": {"type": "string"},
                "registeredAt": {"type": "string"},
                "role": {"type": "string"},
                "securityLevel": {"type": "string"},
                "testsCompleted": {"type": "integer"},
                "trainingProgress": {"type": "integer"},
                "username": {"type": "string"}
            }
        },
        "api.CreateUserRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "organization": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string"},
                "username": {"type": "string", "maxLength": 50}
            }
        },
        "api.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "api.PasswordChangeRequest": {
            "type": "object",
            "required": ["current_password", "new_password"],
            "properties": {
                "current_password": {"type": "string"},
                "new_password": {"type": "string"}
            }
        },
        "api.ProfileUpdateRequest": {
            "type": "object",
            "required": ["email", "security_level"],
            "properties": {
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "security_level": {"type": "string", "enum": ["beginner", "intermediate", "advanced", "expert"]}
            }
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "stats": {"$ref": "#/definitions/api.UserStats"},
                "success": {"type": "boolean"},
                "token": {"type": "string"}
            }
        },
        "api.SubmitResponse": {
            "type": "object",
            "properties": {
                "max_score": {"type": "integer"},
                "message": {"type": "string"},
                "percentage": {"type": "integer"},
                "score": {"type": "integer"},
                "success": {"type": "boolean"}
            }
        },
        "api.TestSubmission": {
            "type": "object",
            "properties": {
                "answers": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "integer"}}},
                "time_spent": {"type": "integer"}
            }
        },
        "api.UserStats": {
            "type": "object",
            "properties": {
                "rank": {"type": "string"},
                "success_rate": {"type": "integer"},
                "tests_completed": {"type": "integer"},
                "training_progress": {"type": "integer"}
            }
        },
        "controller.TestListResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "tests": {"type": "array", "items": {"$ref": "#/definitions/model.TestSummary"}}
            }
        },
        "model.TestSummary": {
            "type": "object",
            "properties": {
                "attempts": {"type": "integer"},
                "description": {"type": "string"},
                "difficulty": {"type": "string"},
                "id": {"type": "integer"},
                "questionCount": {"type": "integer"},
                "score": {"type": "integer"},
                "status": {"type": "string"},
                "timeLimit": {"type": "integer"},
                "title": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Phishing Trainer API",
	Description:      "Backend of the phishing awareness trainer dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
