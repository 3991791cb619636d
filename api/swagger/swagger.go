package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SignVibe API",
        "description": "Role-based school management backend with accessible STEM help",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Signup, login, session handling"},
        {"name": "Academics", "description": "Role-scoped academic record access"},
        {"name": "Help", "description": "Accessible STEM help via LLM"}
    ],
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Invalid field", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate a user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK, sets the token cookie"},
                    "401": {"description": "Invalid email, password, or role", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK, clears the token cookie"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current identity",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/acad/student": {
            "get": {
                "tags": ["Academics"],
                "summary": "List all academic records (admin/teacher)",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/acad/teacher": {
            "post": {
                "tags": ["Academics"],
                "summary": "Assign or update a student's record (teacher)",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpsertAcademicRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid field", "schema": {"$ref": "#/definitions/APIError"}},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/acad/student/{id}": {
            "get": {
                "tags": ["Academics"],
                "summary": "Get one student's record (self/teacher/admin)",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Record not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/acad/teacher/students": {
            "get": {
                "tags": ["Academics"],
                "summary": "List all students (teacher)",
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/acad/teacher/student/{id}": {
            "get": {
                "tags": ["Academics"],
                "summary": "Teacher view of one student's record",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student or record not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/acad/teacher/student/{id}/report": {
            "get": {
                "tags": ["Academics"],
                "summary": "Download a student's report card PDF (teacher)",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF report"},
                    "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student or record not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/help": {
            "post": {
                "tags": ["Help"],
                "summary": "Ask the STEM help assistant",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/HelpRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing query", "schema": {"$ref": "#/definitions/APIError"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "SignupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string", "enum": ["student", "teacher", "parent", "admin"]},
                "studentClass": {"type": "integer"},
                "studentParent": {"type": "string"},
                "teacherSubjects": {"type": "array", "items": {"type": "string"}},
                "parentChild": {"type": "string"}
            },
            "required": ["name", "email", "password", "phone", "role"]
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"}
            },
            "required": ["email", "password", "role"]
        },
        "UpsertAcademicRequest": {
            "type": "object",
            "properties": {
                "student": {"type": "string"},
                "assignedVideos": {"type": "integer"},
                "watchedVideos": {"type": "integer"},
                "grades": {"type": "array", "items": {"$ref": "#/definitions/Grade"}},
                "subjectsEnrolled": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["student"]
        },
        "Grade": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "grade": {"type": "string"}
            },
            "required": ["subject", "grade"]
        },
        "HelpRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string"}
            },
            "required": ["query"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
