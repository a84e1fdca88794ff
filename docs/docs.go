// Package docs is generated by swaggo/swag from the handler annotations.
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
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/upload": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipeline"
                ],
                "summary": "Upload a document",
                "parameters": [
                    {
                        "type": "file",
                        "description": "A .docx, .txt or .pdf file (field \"file\" is also accepted)",
                        "name": "document",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.uploadResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/analyze": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipeline"
                ],
                "summary": "Analyze document content",
                "parameters": [
                    {
                        "description": "Document content and id",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.analyzeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.analyzeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/visual-specs": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipeline"
                ],
                "summary": "Generate visual specs and CSS",
                "parameters": [
                    {
                        "description": "Analysis and document id",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.visualSpecsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.visualSpecsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/documents/{id}/status": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pipeline"
                ],
                "summary": "Pipeline status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Document id returned by /upload",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/status.Snapshot"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {
                    "type": "string"
                },
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {
                            "type": "string"
                        },
                        "message": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "handler.uploadResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "document": {
                    "$ref": "#/definitions/model.Document"
                }
            }
        },
        "handler.analyzeRequest": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string"
                },
                "documentId": {
                    "type": "string"
                }
            }
        },
        "handler.analyzeResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "documentId": {
                    "type": "string"
                },
                "analysis": {
                    "$ref": "#/definitions/model.DocumentAnalysis"
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "handler.visualSpecsRequest": {
            "type": "object",
            "properties": {
                "analysis": {
                    "type": "object"
                },
                "documentId": {
                    "type": "string"
                }
            }
        },
        "handler.visualSpecsResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "documentId": {
                    "type": "string"
                },
                "visualSpecs": {
                    "$ref": "#/definitions/model.VisualSpecs"
                },
                "cssStyles": {
                    "type": "string"
                },
                "inlineStyles": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "additionalProperties": {
                            "type": "string"
                        }
                    }
                },
                "timestamp": {
                    "type": "string"
                }
            }
        },
        "model.Document": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "originalName": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "mimeType": {
                    "type": "string"
                },
                "uploadedAt": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "wordCount": {
                    "type": "integer"
                },
                "pages": {
                    "type": "integer"
                }
            }
        },
        "model.DocumentAnalysis": {
            "type": "object",
            "properties": {
                "documentType": {
                    "type": "string"
                },
                "tone": {
                    "type": "string"
                },
                "mood": {
                    "type": "string"
                },
                "keyThemes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "targetAudience": {
                    "type": "string"
                },
                "primaryColors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "structure": {
                    "type": "object",
                    "properties": {
                        "hasHeadings": {
                            "type": "boolean"
                        },
                        "hasList": {
                            "type": "boolean"
                        },
                        "hasTables": {
                            "type": "boolean"
                        },
                        "sections": {
                            "type": "integer"
                        }
                    }
                }
            }
        },
        "model.VisualSpecs": {
            "type": "object",
            "properties": {
                "colorPalette": {
                    "type": "object",
                    "properties": {
                        "primary": {
                            "type": "string"
                        },
                        "secondary": {
                            "type": "string"
                        },
                        "accent": {
                            "type": "string"
                        },
                        "background": {
                            "type": "string"
                        },
                        "text": {
                            "type": "string"
                        }
                    }
                },
                "typography": {
                    "type": "object",
                    "properties": {
                        "headingFont": {
                            "type": "string"
                        },
                        "bodyFont": {
                            "type": "string"
                        },
                        "headingSize": {
                            "type": "string"
                        },
                        "bodySize": {
                            "type": "string"
                        }
                    }
                },
                "layout": {
                    "type": "object",
                    "properties": {
                        "maxWidth": {
                            "type": "string"
                        },
                        "spacing": {
                            "type": "string"
                        },
                        "borderRadius": {
                            "type": "string"
                        }
                    }
                },
                "background": {
                    "type": "object",
                    "properties": {
                        "type": {
                            "type": "string"
                        },
                        "value": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "model.StageEvent": {
            "type": "object",
            "properties": {
                "documentId": {
                    "type": "string"
                },
                "stage": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "at": {
                    "type": "string"
                }
            }
        },
        "status.Snapshot": {
            "type": "object",
            "properties": {
                "documentId": {
                    "type": "string"
                },
                "stage": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "history": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.StageEvent"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Document Styling API",
	Description:      "Upload documents, classify their content and generate matching visual styles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
