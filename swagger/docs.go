// Package swagger holds the OpenAPI document served under /swagger. It is
// maintained by hand; running go generate in cmd/bookstore replaces it with
// swag output built from the handler annotations.
package swagger

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
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a customer account",
                "parameters": [
                    {"description": "account", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.AuthResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "parameters": [
                    {"description": "credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/authors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List authors",
                "parameters": [
                    {"type": "integer", "description": "page, 1-based", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create author",
                "parameters": [
                    {"description": "author", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.AuthorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/book-to-rent": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List rent books",
                "parameters": [
                    {"type": "string", "description": "title contains", "name": "q", "in": "query"},
                    {"type": "integer", "description": "author", "name": "author_id", "in": "query"},
                    {"type": "integer", "description": "category", "name": "category_id", "in": "query"},
                    {"type": "string", "description": "available, rented or reserved", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/users/{id}/cart/checkout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commerce"],
                "summary": "Turn the user's cart into a pending order",
                "parameters": [
                    {"type": "integer", "description": "user id", "name": "id", "in": "path", "required": true},
                    {"description": "shipping override", "name": "payload", "in": "body", "schema": {"$ref": "#/definitions/model.CheckoutRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/transactions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commerce"],
                "summary": "Pay for an order",
                "parameters": [
                    {"description": "payment", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/reservations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rental"],
                "summary": "Reserve a rent book with a membership card",
                "parameters": [
                    {"description": "reservation", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/reservations/{id}/pickup": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["rental"],
                "summary": "Hand a reserved book to the customer",
                "parameters": [
                    {"type": "integer", "description": "reservation id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/rentals": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rental"],
                "summary": "Close an active rental",
                "parameters": [
                    {"description": "return", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Revoke every token of the caller",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/membership-cards/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["identity"],
                "summary": "Change a card's validity; number and start date are kept when omitted",
                "parameters": [
                    {"type": "integer", "description": "card id", "name": "id", "in": "path", "required": true},
                    {"description": "card", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.MembershipCardRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/cart-items/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commerce"],
                "summary": "Change the quantity of an item in the caller's cart",
                "parameters": [
                    {"type": "integer", "description": "cart item id", "name": "id", "in": "path", "required": true},
                    {"description": "quantity", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UpdateCartItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["commerce"],
                "summary": "Remove an item from the caller's cart",
                "parameters": [
                    {"type": "integer", "description": "cart item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/orders/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commerce"],
                "summary": "Move an order through its statuses or edit a pending address",
                "parameters": [
                    {"type": "integer", "description": "order id", "name": "id", "in": "path", "required": true},
                    {"description": "changes", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.OrderUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/echo.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/echo.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/wishlists": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["commerce"],
                "summary": "Add a sell book to a wishlist",
                "parameters": [
                    {"description": "entry", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.WishlistRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/reservations/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rental"],
                "summary": "Change the payment details of a waiting reservation",
                "parameters": [
                    {"type": "integer", "description": "reservation id", "name": "id", "in": "path", "required": true},
                    {"description": "payment", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.PaymentDetails"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["rental"],
                "summary": "Delete a reservation, returning a held unit to stock",
                "parameters": [
                    {"type": "integer", "description": "reservation id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/active-rentals/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["rental"],
                "summary": "Delete an active rental, returning an unreturned unit to stock",
                "parameters": [
                    {"type": "integer", "description": "active rental id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/overdues/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rental"],
                "summary": "Flag an overdue penalty paid or returned",
                "parameters": [
                    {"type": "integer", "description": "overdue id", "name": "id", "in": "path", "required": true},
                    {"description": "flags", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.OverdueUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/echo.HTTPError"}}
                }
            }
        },
        "/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reporting"],
                "summary": "Rental event aggregates per event type",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["reporting"],
                "summary": "Admin counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "echo.HTTPError": {
            "type": "object",
            "properties": {
                "message": {}
            }
        },
        "errs.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "model.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "token_type": {"type": "string"},
                "user": {"type": "object"}
            }
        },
        "model.AuthorRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "biography": {"type": "string"},
                "birth_date": {"type": "string"},
                "name": {"type": "string", "maxLength": 255},
                "nationality": {"type": "string", "maxLength": 100}
            }
        },
        "model.CheckoutRequest": {
            "type": "object",
            "properties": {
                "shipping_address": {"type": "string"}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "model.MembershipCardRequest": {
            "type": "object",
            "required": ["user_id", "valid_until"],
            "properties": {
                "card_number": {"type": "string", "maxLength": 50},
                "user_id": {"type": "integer"},
                "valid_from": {"type": "string"},
                "valid_until": {"type": "string"}
            }
        },
        "model.OrderUpdateRequest": {
            "type": "object",
            "properties": {
                "shipping_address": {"type": "string"},
                "status": {"type": "string", "enum": ["Pending", "Paid", "Shipped", "Cancelled"]}
            }
        },
        "model.OverdueUpdateRequest": {
            "type": "object",
            "properties": {
                "is_paid": {"type": "boolean"},
                "is_returned": {"type": "boolean"}
            }
        },
        "model.PaymentDetails": {
            "type": "object",
            "required": ["payment_method"],
            "properties": {
                "card_expiry": {"type": "string"},
                "card_holder_name": {"type": "string", "maxLength": 255},
                "card_last_four": {"type": "string"},
                "payment_method": {"type": "string", "enum": ["cash", "card"]}
            }
        },
        "model.RegisterRequest": {
            "type": "object",
            "required": ["cin", "email", "name", "password"],
            "properties": {
                "address": {"type": "string"},
                "cin": {"type": "string", "maxLength": 50},
                "email": {"type": "string", "maxLength": 255},
                "name": {"type": "string", "maxLength": 255},
                "password": {"type": "string"},
                "phone": {"type": "string", "maxLength": 30}
            }
        },
        "model.UpdateCartItemRequest": {
            "type": "object",
            "required": ["quantity"],
            "properties": {
                "quantity": {"type": "integer", "minimum": 1}
            }
        },
        "model.WishlistRequest": {
            "type": "object",
            "required": ["book_id", "user_id"],
            "properties": {
                "book_id": {"type": "integer"},
                "user_id": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Use:  Bearer <token>",
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
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Bookstore API",
	Description:      "Library and bookstore backend: catalog, identity, commerce and rentals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
