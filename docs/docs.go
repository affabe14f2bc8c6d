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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Autentica pelo e-mail cadastrado",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.LoginResponse"}},
                    "400": {"description": "E-mail inválido"},
                    "401": {"description": "Usuário não encontrado."},
                    "502": {"description": "Falha ao conectar com o servidor."}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Encerra a sessão do usuário autenticado",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Não autenticado"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Usuário da sessão atual",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/user.User"}}, "401": {"description": "Não autenticado"}}
            }
        },
        "/questions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["questions"],
                "summary": "Lista questões filtradas",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "author", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "tags", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/question.ListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["questions"],
                "summary": "Cadastra uma questão",
                "parameters": [{"in": "body", "name": "form", "required": true, "schema": {"$ref": "#/definitions/editor.QuestionForm"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/question.Question"}}, "400": {"description": "Campos obrigatórios"}}
            }
        },
        "/questions/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["questions"],
                "summary": "Exporta as questões filtradas em CSV",
                "produces": ["text/csv"],
                "responses": {"200": {"description": "CSV"}, "422": {"description": "Nenhuma questão para exportar."}}
            }
        },
        "/questions/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["questions"], "summary": "Busca uma questão", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/question.Question"}}, "404": {"description": "Não encontrada"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["questions"], "summary": "Edita uma questão", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "form", "required": true, "schema": {"$ref": "#/definitions/editor.QuestionForm"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Campos obrigatórios"}, "404": {"description": "Não encontrada"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["questions"], "summary": "Exclui uma questão", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "404": {"description": "Não encontrada"}}}
        },
        "/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Disciplinas disponíveis", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/subject.Category"}}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["categories"], "summary": "Cria uma disciplina a partir do formulário", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/subject.SubjectRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/subject.Category"}}}}
        },
        "/editor/format": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["editor"], "summary": "Aplica negrito, itálico ou sublinhado", "responses": {"200": {"description": "OK"}, "400": {"description": "Seleção inválida"}}}
        },
        "/editor/image": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["editor"], "summary": "Insere imagem por URL", "responses": {"200": {"description": "OK"}}}
        },
        "/editor/upload": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["editor"], "summary": "Incorpora imagem enviada", "consumes": ["multipart/form-data"], "responses": {"200": {"description": "OK"}, "413": {"description": "A imagem deve ter no máximo 5MB."}, "415": {"description": "Por favor, selecione apenas arquivos de imagem."}}}
        },
        "/editor/validate": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["editor"], "summary": "Valida o formulário de questão", "responses": {"204": {"description": "No Content"}, "400": {"description": "Campos obrigatórios"}}}
        },
        "/admin/subjects": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Lista disciplinas", "responses": {"200": {"description": "OK"}, "403": {"description": "Apenas coordenadores"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Cria disciplina", "responses": {"201": {"description": "Created"}}}
        },
        "/admin/subjects/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Renomeia disciplina", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Exclui disciplina", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/admin/teachers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Lista professores", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Cadastra professor", "responses": {"201": {"description": "Created"}}}
        },
        "/admin/teachers/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Edita professor", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Exclui professor", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        }
    },
    "definitions": {
        "editor.QuestionForm": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "statement": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}, "minItems": 5, "maxItems": 5},
                "correctOption": {"type": "integer", "minimum": 0, "maximum": 4}
            }
        },
        "question.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "authorId": {"type": "string"},
                "authorName": {"type": "string"},
                "category": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "statement": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "correctOption": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "question.ListResponse": {
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/question.Question"}},
                "total": {"type": "integer"},
                "hasActiveFilters": {"type": "boolean"}
            }
        },
        "subject.Category": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "subject.SubjectRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "user.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}}
        },
        "user.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/user.User"}}
        },
        "user.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["professor", "coordenador"]}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Banco de Questões API",
	Description:      "Cadastro, filtro e exportação de questões de múltipla escolha.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
