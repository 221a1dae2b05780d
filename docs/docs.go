// Package docs registers the Swagger document served under /swagger/.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
            "post": {"tags": ["auth"], "summary": "Register a dojang account", "responses": {"201": {"description": "Created user"}, "409": {"description": "Email already in use"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in and receive a JWT", "responses": {"200": {"description": "Token and user"}, "401": {"description": "Invalid credentials"}}}
        },
        "/users/{userID}/dojang": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Bind a dojang account to its dojang", "parameters": [{"type": "integer", "name": "userID", "in": "path", "required": true}], "responses": {"200": {"description": "Updated user"}, "404": {"description": "User or dojang not found"}}}
        },
        "/competitions": {
            "get": {"tags": ["competitions"], "summary": "List competitions", "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "Competitions"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["competitions"], "summary": "Create a competition", "responses": {"201": {"description": "Created competition"}}}
        },
        "/competitions/{competitionID}": {
            "get": {"tags": ["competitions"], "summary": "Get a competition with its classes", "parameters": [{"type": "integer", "name": "competitionID", "in": "path", "required": true}], "responses": {"200": {"description": "Competition"}, "404": {"description": "Not found"}}}
        },
        "/competitions/{competitionID}/classes": {
            "get": {"tags": ["classes"], "summary": "List championship classes", "parameters": [{"type": "integer", "name": "competitionID", "in": "path", "required": true}], "responses": {"200": {"description": "Classes"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["classes"], "summary": "Create a championship class", "parameters": [{"type": "integer", "name": "competitionID", "in": "path", "required": true}], "responses": {"201": {"description": "Created class"}}}
        },
        "/competitions/{competitionID}/medal-tally": {
            "get": {"tags": ["medals"], "summary": "Medal tally per dojang", "parameters": [{"type": "integer", "name": "competitionID", "in": "path", "required": true}], "responses": {"200": {"description": "Medal tally"}}}
        },
        "/medal-tally": {
            "get": {"tags": ["medals"], "summary": "Medal tallies of several competitions", "parameters": [{"type": "array", "items": {"type": "integer"}, "collectionFormat": "multi", "name": "competition_id", "in": "query", "required": true}], "responses": {"200": {"description": "Medal tallies"}}}
        },
        "/classes/{classID}/bracket": {
            "get": {"tags": ["classes"], "summary": "Bracket matches of a class", "parameters": [{"type": "integer", "name": "classID", "in": "path", "required": true}], "responses": {"200": {"description": "Bracket"}}}
        },
        "/classes/{classID}/placements": {
            "get": {"tags": ["medals"], "summary": "Placement of every participant in a class", "parameters": [{"type": "integer", "name": "classID", "in": "path", "required": true}], "responses": {"200": {"description": "Placements"}}}
        },
        "/classes/{classID}/participants": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["participants"], "summary": "Register an athlete into a class", "parameters": [{"type": "integer", "name": "classID", "in": "path", "required": true}], "responses": {"201": {"description": "Participant"}}}
        },
        "/dojangs": {
            "get": {"tags": ["dojangs"], "summary": "List dojangs", "responses": {"200": {"description": "Dojangs"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["dojangs"], "summary": "Create a dojang", "responses": {"201": {"description": "Created dojang"}}}
        },
        "/dojangs/{dojangID}": {
            "get": {"tags": ["dojangs"], "summary": "Get a dojang", "parameters": [{"type": "integer", "name": "dojangID", "in": "path", "required": true}], "responses": {"200": {"description": "Dojang"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["dojangs"], "summary": "Update a dojang", "parameters": [{"type": "integer", "name": "dojangID", "in": "path", "required": true}], "responses": {"200": {"description": "Dojang"}}}
        },
        "/dojangs/{dojangID}/logo": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["dojangs"], "summary": "Upload a dojang logo", "consumes": ["multipart/form-data"], "parameters": [{"type": "integer", "name": "dojangID", "in": "path", "required": true}, {"type": "file", "name": "logo", "in": "formData", "required": true}], "responses": {"200": {"description": "Dojang"}, "503": {"description": "Uploads disabled"}}}
        },
        "/dojangs/{dojangID}/athletes": {
            "get": {"tags": ["athletes"], "summary": "List athletes of a dojang", "parameters": [{"type": "integer", "name": "dojangID", "in": "path", "required": true}], "responses": {"200": {"description": "Athletes"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["athletes"], "summary": "Register an athlete to a dojang", "parameters": [{"type": "integer", "name": "dojangID", "in": "path", "required": true}], "responses": {"201": {"description": "Athlete"}}}
        },
        "/athletes/{athleteID}/certificates": {
            "get": {"tags": ["certificates"], "summary": "Certificates of an athlete", "parameters": [{"type": "integer", "name": "athleteID", "in": "path", "required": true}], "responses": {"200": {"description": "Certificates"}}}
        },
        "/athletes/{athleteID}/certificates/{classID}": {
            "get": {"tags": ["certificates"], "summary": "Render a certificate as HTML", "produces": ["text/html"], "parameters": [{"type": "integer", "name": "athleteID", "in": "path", "required": true}, {"type": "integer", "name": "classID", "in": "path", "required": true}], "responses": {"200": {"description": "HTML certificate"}}}
        },
        "/athletes/{athleteID}/certificates/{classID}/publish": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["certificates"], "summary": "Publish a certificate to object storage", "parameters": [{"type": "integer", "name": "athleteID", "in": "path", "required": true}, {"type": "integer", "name": "classID", "in": "path", "required": true}], "responses": {"201": {"description": "Public URL"}, "503": {"description": "Uploads disabled"}}}
        },
        "/dashboard/stats": {
            "get": {"tags": ["dashboard"], "summary": "Championship totals", "responses": {"200": {"description": "Stats"}}}
        },
        "/ws/competitions/{competitionID}": {
            "get": {"tags": ["websocket"], "summary": "Live medal tally stream", "parameters": [{"type": "integer", "name": "competitionID", "in": "path", "required": true}], "responses": {"101": {"description": "Switching protocols"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	Title:            "Pemuda Berprestasi Championship API",
	Description:      "Taekwondo championship backend: brackets, medal placements, medal tallies and certificates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
