// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o internal/docs
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/healthz": {
            "get": {"tags": ["health"], "summary": "Liveness check", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}}
        },
        "/readyz": {
            "get": {"tags": ["health"], "summary": "Readiness check", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }}
        },
        "/version": {
            "get": {"tags": ["health"], "summary": "Build version", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionInfo"}}}}
        },
        "/api/v1/progress": {
            "get": {"tags": ["progress"], "summary": "Get user progress", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "user_id", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserProgress"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }}
        },
        "/api/v1/progress/award": {
            "post": {"tags": ["progress"], "summary": "Award XP", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AwardXPRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ProgressResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }}
        },
        "/api/v1/progress/achievements": {
            "get": {"tags": ["progress"], "summary": "Get achievements", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "user_id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AchievementsResponse"}}}}
        },
        "/api/v1/progress/activity": {
            "get": {"tags": ["progress"], "summary": "Get activity log", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ActivityResponse"}}}}
        },
        "/api/v1/progress/stream": {
            "get": {"tags": ["progress"], "summary": "Stream progress events", "produces": ["text/event-stream"],
                "parameters": [
                    {"type": "string", "name": "user_id", "in": "query", "required": true},
                    {"type": "string", "name": "types", "in": "query", "description": "Comma separated event types"}
                ],
                "responses": {"200": {"description": "event stream"}, "400": {"description": "Bad Request"}, "503": {"description": "Service Unavailable"}}}
        },
        "/api/v1/leaderboard": {
            "get": {"tags": ["leaderboard"], "summary": "XP leaderboard", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LeaderboardResponse"}}}}
        },
        "/api/v1/tasks": {
            "get": {"tags": ["tasks"], "summary": "List tasks", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "user_id", "in": "query", "required": true},
                    {"type": "boolean", "name": "include_completed", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TasksResponse"}}}},
            "post": {"tags": ["tasks"], "summary": "Create task", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTaskRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Task"}}}}
        },
        "/api/v1/tasks/{id}/complete": {
            "post": {"tags": ["tasks"], "summary": "Complete task", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "X-User-ID", "in": "header", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.TaskCompletionResult"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }}
        },
        "/api/v1/admin/streak-freezes": {
            "post": {"tags": ["admin"], "summary": "Grant streak freezes", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GrantFreezesRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GrantFreezesResponse"}}}}
        },
        "/api/v1/admin/catalog/reload": {
            "post": {"tags": ["admin"], "summary": "Reload achievement catalog", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CatalogReloadResponse"}}}}
        }
    },
    "definitions": {
        "handler.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "handler.VersionInfo": {"type": "object", "properties": {
            "version": {"type": "string"}, "go_version": {"type": "string"}, "build_time": {"type": "string"}, "git_commit": {"type": "string"}}},
        "handler.AwardXPRequest": {"type": "object", "required": ["user_id"], "properties": {
            "user_id": {"type": "string", "maxLength": 100}, "xp": {"type": "integer", "minimum": 0, "maximum": 1000000}}},
        "handler.CreateTaskRequest": {"type": "object", "required": ["user_id", "title"], "properties": {
            "user_id": {"type": "string", "maxLength": 100}, "title": {"type": "string", "maxLength": 200},
            "priority": {"type": "string", "enum": ["low", "medium", "high"]}}},
        "handler.GrantFreezesRequest": {"type": "object", "required": ["user_id"], "properties": {
            "user_id": {"type": "string"}, "count": {"type": "integer", "minimum": 1, "maximum": 10}}},
        "handler.GrantFreezesResponse": {"type": "object", "properties": {"user_id": {"type": "string"}, "streak_freezes": {"type": "integer"}}},
        "handler.CatalogReloadResponse": {"type": "object", "properties": {"message": {"type": "string"}, "count": {"type": "integer"}}},
        "handler.AchievementsResponse": {"type": "object", "properties": {
            "user_id": {"type": "string"}, "achievements": {"type": "array", "items": {"$ref": "#/definitions/domain.AchievementWithStatus"}}}},
        "handler.ActivityResponse": {"type": "object", "properties": {
            "user_id": {"type": "string"}, "entries": {"type": "array", "items": {"$ref": "#/definitions/domain.ActivityLogEntry"}}}},
        "handler.LeaderboardResponse": {"type": "object", "properties": {
            "entries": {"type": "array", "items": {"$ref": "#/definitions/domain.LeaderboardEntry"}}}},
        "handler.TasksResponse": {"type": "object", "properties": {
            "user_id": {"type": "string"}, "tasks": {"type": "array", "items": {"$ref": "#/definitions/domain.Task"}}}},
        "domain.UserStats": {"type": "object", "properties": {
            "user_id": {"type": "string"}, "xp": {"type": "integer"}, "level": {"type": "integer"},
            "current_streak": {"type": "integer"}, "longest_streak": {"type": "integer"}, "streak_freezes": {"type": "integer"},
            "last_login": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "domain.LevelInfo": {"type": "object", "properties": {
            "level": {"type": "integer"}, "xp": {"type": "integer"}, "level_start_xp": {"type": "integer"},
            "next_level_xp": {"type": "integer"}, "xp_to_next_level": {"type": "integer"}, "progress_percent": {"type": "integer"}}},
        "domain.UserProgress": {"type": "object", "properties": {
            "stats": {"$ref": "#/definitions/domain.UserStats"}, "level_info": {"$ref": "#/definitions/domain.LevelInfo"}}},
        "domain.StreakSummary": {"type": "object", "properties": {
            "current": {"type": "integer"}, "updated": {"type": "boolean"}, "frozen": {"type": "boolean"}}},
        "domain.UnlockedAchievement": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "xp_reward": {"type": "integer"}}},
        "domain.ProgressResult": {"type": "object", "properties": {
            "user_id": {"type": "string"}, "xp_gained": {"type": "integer"}, "new_xp": {"type": "integer"},
            "new_level": {"type": "integer"}, "leveled_up": {"type": "boolean"},
            "streak": {"$ref": "#/definitions/domain.StreakSummary"},
            "unlocked": {"type": "array", "items": {"$ref": "#/definitions/domain.UnlockedAchievement"}}}},
        "domain.AchievementWithStatus": {"type": "object", "properties": {
            "id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}, "icon": {"type": "string"},
            "condition_type": {"type": "string", "enum": ["count_total", "count_daily", "streak"]},
            "condition_value": {"type": "integer"}, "xp_reward": {"type": "integer"},
            "unlocked": {"type": "boolean"}, "unlocked_at": {"type": "string"}}},
        "domain.ActivityLogEntry": {"type": "object", "properties": {
            "id": {"type": "string"}, "user_id": {"type": "string"},
            "kind": {"type": "string", "enum": ["achievement_unlocked", "streak_increased", "streak_frozen", "level_up"]},
            "message": {"type": "string"}, "created_at": {"type": "string"}}},
        "domain.LeaderboardEntry": {"type": "object", "properties": {
            "rank": {"type": "integer"}, "user_id": {"type": "string"}, "xp": {"type": "integer"}, "level": {"type": "integer"}}},
        "domain.Task": {"type": "object", "properties": {
            "id": {"type": "string"}, "user_id": {"type": "string"}, "title": {"type": "string"},
            "priority": {"type": "string", "enum": ["low", "medium", "high"]},
            "completed_at": {"type": "string"}, "created_at": {"type": "string"}}},
        "domain.TaskCompletionResult": {"type": "object", "properties": {
            "task": {"$ref": "#/definitions/domain.Task"}, "xp_award": {"type": "integer"},
            "progress": {"$ref": "#/definitions/domain.ProgressResult"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TaskQuest API",
	Description:      "XP, levels, daily streaks and achievements for a to-do app.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
