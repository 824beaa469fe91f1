// Package docs registra el documento OpenAPI que sirve /swagger/*.
// Sigue las anotaciones swag de los handlers y de cmd/api/main.go; si cambian,
// regenerar con: swag init -g cmd/api/main.go
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
        "/auth/login": {
            "post": {
                "description": "Valida credenciales y devuelve un JWT (HS256, sub = id de usuario) para usar como Bearer.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Credenciales",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.loginResponse"
                        }
                    },
                    "400": {
                        "description": "User does not exist / Invalid credentials",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Crea un usuario. El email se guarda en minúsculas y la password como hash bcrypt.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Registro",
                "parameters": [
                    {
                        "description": "Datos de registro",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.registerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.registerResponse"
                        }
                    },
                    "400": {
                        "description": "User already exists / validación",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/events/add": {
            "post": {
                "description": "Crea un evento de cuidado. type por defecto es other.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Agendar evento",
                "parameters": [
                    {
                        "description": "Evento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/events.createEventRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/events.eventResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/events/{id}": {
            "get": {
                "description": "Lista eventos ordenados por fecha ascendente.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Eventos del usuario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "CSV de tipos (ej: vet,grooming)",
                        "name": "types",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Fecha mínima (RFC3339 o YYYY-MM-DD)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Fecha máxima (RFC3339 o YYYY-MM-DD)",
                        "name": "to",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Solo no completados",
                        "name": "pending",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Máximo de eventos (1-200)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/events.eventResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Parámetros de filtro inválidos",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "put": {
                "description": "Update parcial (title, date, type, isCompleted).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Actualizar evento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del evento",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/events.updateEventRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/events.eventResponse"
                        }
                    },
                    "404": {
                        "description": "Event not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Borrar evento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del evento",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Event removed",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Event not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/medical/add": {
            "post": {
                "description": "Vacuna, medicación, signo vital o visita. dateGiven por defecto es ahora.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Agregar registro médico",
                "parameters": [
                    {
                        "description": "Registro",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medical.createRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medical.recordResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/medical/{userID}": {
            "get": {
                "description": "Registros del usuario, más recientes primero.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medical"
                ],
                "summary": "Historial médico",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "vaccine | medication | vital | visit",
                        "name": "category",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/medical.recordResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "categoría inválida",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/activity/{userID}": {
            "get": {
                "description": "Entradas del usuario ordenadas por fecha ascendente. from/to son inclusivos; una fecha YYYY-MM-DD en to cubre el día completo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Historial de actividad",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "walk | sleep | meal",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "RFC3339 o YYYY-MM-DD",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "RFC3339 o YYYY-MM-DD",
                        "name": "to",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/activity.logResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "filtro inválido",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/activity/{userID}/export": {
            "get": {
                "description": "Igual que el historial pero como planilla .xlsx (hoja \"Activity\").",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Exportar historial",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "walk | sleep | meal",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "RFC3339 o YYYY-MM-DD",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "RFC3339 o YYYY-MM-DD",
                        "name": "to",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/pets/add": {
            "post": {
                "description": "Crea la mascota del usuario. Un usuario tiene una sola mascota; los contadores diarios arrancan en 0.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Registrar mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "description": "Datos de la mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.createPetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.PetResponse"
                        }
                    },
                    "400": {
                        "description": "validación / pet already exists for owner",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/log-activity": {
            "post": {
                "description": "Agrega una entrada al historial (walk, sleep, meal). Si la fecha cae hoy, actualiza los contadores diarios de la mascota del usuario: walk suma duration, sleep suma value, meal suma 1. Si el usuario no tiene mascota la entrada se guarda igual.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Registrar actividad",
                "parameters": [
                    {
                        "description": "Entrada de actividad",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/activity.logRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/activity.logResponse"
                        }
                    },
                    "400": {
                        "description": "validación",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/photo/{petID}": {
            "post": {
                "description": "Recibe la foto como data URL base64 y actualiza photoUrl.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Subir foto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Imagen",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.photoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.PetResponse"
                        }
                    },
                    "400": {
                        "description": "invalid base64 image",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "413": {
                        "description": "request body too large",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "503": {
                        "description": "photo storage not configured",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/rebuild-daily/{userID}": {
            "post": {
                "description": "Recalcula dailyWalkMinutes, dailySleep y dailyMeals desde el historial de hoy y los pisa en la mascota.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Recalcular contadores del día",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.PetResponse"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/tasks/{petID}": {
            "put": {
                "description": "Marca o desmarca tareas del día (breakfast, morningWalk, dinner, medication). Se resetean a medianoche.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Checklist diario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Flags a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.tasksRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.PetResponse"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/update/{petID}": {
            "put": {
                "description": "Update parcial de petName, species, breed, age y weight.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Actualizar mascota",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pets.updatePetRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.PetResponse"
                        }
                    },
                    "400": {
                        "description": "invalid input",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/weekly-stats/{userID}/{type}": {
            "get": {
                "description": "Totales de los últimos 7 días agrupados por día de semana (1 = domingo). walk suma minutos, meal cuenta entradas, el resto suma value. Los días sin datos no aparecen.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Estadística semanal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Tipo de actividad",
                        "name": "type",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/activity.dayTotalResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/pets/{userID}": {
            "get": {
                "description": "Devuelve la mascota del usuario con sus contadores del día, o null si todavía no registró ninguna.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Mascota del usuario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "userID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/pets.PetResponse"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/user/change-password": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "user"
                ],
                "summary": "Cambiar password",
                "parameters": [
                    {
                        "description": "userId + newPassword",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.changePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Password Updated",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/user/settings": {
            "put": {
                "description": "Reemplaza el mapa de settings del usuario.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "user"
                ],
                "summary": "Actualizar settings",
                "parameters": [
                    {
                        "description": "userId + settings",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.settingsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.userResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/user/{id}": {
            "get": {
                "description": "Usuario con sus settings, sin password.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "user"
                ],
                "summary": "Perfil",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del usuario",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.userResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "activity.dayTotalResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "integer"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "activity.logRequest": {
            "type": "object",
            "required": [
                "userId",
                "type",
                "value"
            ],
            "properties": {
                "userId": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "subType": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "duration": {
                    "type": "number"
                },
                "date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "activity.logResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "subType": {
                    "type": "string"
                },
                "value": {
                    "type": "number"
                },
                "duration": {
                    "type": "number"
                },
                "date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "events.createEventRequest": {
            "type": "object",
            "required": [
                "userId",
                "title",
                "date"
            ],
            "properties": {
                "userId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "events.eventResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "isCompleted": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "events.updateEventRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "isCompleted": {
                    "type": "boolean"
                }
            }
        },
        "medical.createRecordRequest": {
            "type": "object",
            "required": [
                "userId",
                "category",
                "title"
            ],
            "properties": {
                "userId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "dateGiven": {
                    "type": "string"
                },
                "nextDueDate": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                }
            }
        },
        "medical.recordResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "dateGiven": {
                    "type": "string"
                },
                "nextDueDate": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "pets.PetResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "ownerId": {
                    "type": "string"
                },
                "petName": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "age": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                },
                "photoUrl": {
                    "type": "string"
                },
                "tasks": {
                    "$ref": "#/definitions/pets.tasksResponse"
                },
                "dailySteps": {
                    "type": "integer"
                },
                "dailySleep": {
                    "type": "number"
                },
                "dailyMeals": {
                    "type": "integer"
                },
                "dailyWalkMinutes": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "pets.createPetRequest": {
            "type": "object",
            "required": [
                "petName",
                "species"
            ],
            "properties": {
                "ownerId": {
                    "type": "string"
                },
                "petName": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "age": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "pets.photoRequest": {
            "type": "object",
            "required": [
                "image"
            ],
            "properties": {
                "image": {
                    "type": "string"
                }
            }
        },
        "pets.tasksRequest": {
            "type": "object",
            "properties": {
                "breakfast": {
                    "type": "boolean"
                },
                "morningWalk": {
                    "type": "boolean"
                },
                "dinner": {
                    "type": "boolean"
                },
                "medication": {
                    "type": "boolean"
                }
            }
        },
        "pets.tasksResponse": {
            "type": "object",
            "properties": {
                "breakfast": {
                    "type": "boolean"
                },
                "morningWalk": {
                    "type": "boolean"
                },
                "dinner": {
                    "type": "boolean"
                },
                "medication": {
                    "type": "boolean"
                }
            }
        },
        "pets.updatePetRequest": {
            "type": "object",
            "properties": {
                "petName": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "age": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "respond.MessageBody": {
            "type": "object",
            "properties": {
                "msg": {
                    "type": "string"
                }
            }
        },
        "users.changePasswordRequest": {
            "type": "object",
            "required": [
                "userId",
                "newPassword"
            ],
            "properties": {
                "userId": {
                    "type": "string"
                },
                "newPassword": {
                    "type": "string"
                }
            }
        },
        "users.loginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "users.loginResponse": {
            "type": "object",
            "properties": {
                "msg": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/users.loginUser"
                }
            }
        },
        "users.loginUser": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "users.registerRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "users.registerResponse": {
            "type": "object",
            "properties": {
                "msg": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "users.settingsRequest": {
            "type": "object",
            "required": [
                "userId"
            ],
            "properties": {
                "userId": {
                    "type": "string"
                },
                "settings": {
                    "type": "object",
                    "additionalProperties": true
                }
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "_id": {
                    "type": "string"
                },
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "settings": {
                    "type": "object",
                    "additionalProperties": true
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
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

// SwaggerInfo expone la metadata del documento (title, basePath, ...).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "TailTime API",
	Description:      "Backend de TailTime: mascotas, actividad diaria, eventos y registros médicos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
