package openapi

import (
	"github.com/mycolab/genbank/models/constants"
	s "github.com/mycolab/genbank/models/constants/sort"
	sk "github.com/mycolab/genbank/models/constants/sort-key"
	serviceInfo "github.com/mycolab/genbank/models/constants/service-info"
	"github.com/mycolab/genbank/models/dtos"
)

type Document map[string]interface{}

var defaults = dtos.NewSearchRequestDto()

var idResponse = map[string]interface{}{
	"200": map[string]interface{}{
		"description": "Identifier derived from the request body",
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{"$ref": "#/components/schemas/Id"},
			},
		},
	},
}

var notImplemented = map[string]interface{}{
	"501": map[string]interface{}{"description": "Not implemented"},
}

var idParameter = []map[string]interface{}{
	{"name": "id", "in": "path", "required": true, "schema": map[string]interface{}{"type": "string"}},
}

func resource(tag string) map[string]interface{} {
	return map[string]interface{}{
		"post": map[string]interface{}{
			"tags":        []string{tag},
			"summary":     "Derive the identifier of a " + tag,
			"requestBody": map[string]interface{}{"required": true, "content": jsonBody("#/components/schemas/Query")},
			"responses":   idResponse,
		},
	}
}

func stubs(tag string) map[string]interface{} {
	op := map[string]interface{}{
		"tags":       []string{tag},
		"parameters": idParameter,
		"responses":  notImplemented,
	}
	return map[string]interface{}{"put": op, "get": op, "delete": op}
}

func jsonBody(ref string) map[string]interface{} {
	return map[string]interface{}{
		"application/json": map[string]interface{}{
			"schema": map[string]interface{}{"$ref": ref},
		},
	}
}

var OPENAPI_DOCUMENT Document = map[string]interface{}{
	"openapi": "3.0.0",
	"info": map[string]interface{}{
		"title":       serviceInfo.SERVICE_NAME,
		"description": serviceInfo.SERVICE_DESCRIPTION,
		"version":     serviceInfo.SERVICE_VERSION,
	},
	"paths": map[string]interface{}{
		"/sequence":      resource("sequence"),
		"/sequence/{id}": stubs("sequence"),
		"/sequence/query": map[string]interface{}{
			"post": map[string]interface{}{
				"tags":        []string{"sequence"},
				"summary":     "BLAST a sequence and annotate the matching GenBank records",
				"requestBody": map[string]interface{}{"required": true, "content": jsonBody("#/components/schemas/Query")},
				"responses": map[string]interface{}{
					"200": map[string]interface{}{
						"description": "The query followed by one record per matching hit",
						"content": map[string]interface{}{
							"application/json": map[string]interface{}{
								"schema": map[string]interface{}{
									"type":  "array",
									"items": map[string]interface{}{"$ref": "#/components/schemas/Result"},
								},
							},
						},
					},
					"400": map[string]interface{}{"description": "Invalid request body"},
					"500": map[string]interface{}{"description": "Unreadable alignment report"},
					"502": map[string]interface{}{"description": "Alignment failed"},
				},
			},
		},
		"/specimen":      resource("specimen"),
		"/specimen/{id}": stubs("specimen"),
	},
	"components": map[string]interface{}{
		"schemas": map[string]interface{}{
			"Id": map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{"id": map[string]interface{}{"type": "string"}},
			},
			"Query": map[string]interface{}{
				"type":     "object",
				"required": []string{"sequence"},
				"properties": map[string]interface{}{
					"sequence":  map[string]interface{}{"type": "string", "description": "FASTA text or bare nucleotides"},
					"location":  map[string]interface{}{"type": "boolean", "default": defaults.Location},
					"clean":     map[string]interface{}{"type": "boolean", "default": defaults.Clean},
					"accession": map[string]interface{}{"type": "boolean", "default": defaults.Accession},
					"hsp":       map[string]interface{}{"type": "boolean", "default": defaults.Hsp},
					"stamp":     map[string]interface{}{"type": "boolean", "default": defaults.Stamp},
					"results":   map[string]interface{}{"type": "integer", "default": defaults.Results},
					"match":     map[string]interface{}{"type": "number", "default": defaults.Match},
					"coverage":  map[string]interface{}{"type": "number", "default": defaults.Coverage},
					"sort_key": map[string]interface{}{
						"type":        "string",
						"default":     defaults.SortKey,
						"description": "comma separated; each key re-sorts the previous order",
						"enum":        sk.All,
					},
					"sort_dir": map[string]interface{}{
						"type":    "string",
						"default": defaults.SortDir,
						"enum":    []constants.SortDirection{s.Ascending, s.Descending},
					},
					"filters": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":     "object",
							"required": []string{"key"},
							"properties": map[string]interface{}{
								"key":      map[string]interface{}{"type": "string", "enum": sk.All},
								"min":      map[string]interface{}{"type": "number"},
								"max":      map[string]interface{}{"type": "number"},
								"value":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "number"}},
								"modifier": map[string]interface{}{"type": "number"},
							},
						},
					},
				},
			},
			"Result": map[string]interface{}{
				"type":     "object",
				"required": []string{"description", "sequence"},
				"properties": map[string]interface{}{
					"description": map[string]interface{}{"type": "string"},
					"sequence":    map[string]interface{}{"type": "string"},
					"accession":   map[string]interface{}{"type": "object"},
					"hsp":         map[string]interface{}{"type": "object"},
				},
			},
		},
	},
}
